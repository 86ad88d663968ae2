package widget

import (
	"fmt"
	"image/color"

	"gioui.org/unit"
	"gioui.org/widget"
	"git.sr.ht/~gioverse/swipe/machine"
)

// DefaultButtonWidth is used for buttons that were never given a width.
const DefaultButtonWidth = unit.Dp(60)

// Handler responds to an ActionButton being activated, by tap or by
// swipe-to-commit. The row is the one the button was activated within.
type Handler func(button *ActionButton, row *SwipeRow)

// NoAction is the explicit do-nothing Handler.
func NoAction(*ActionButton, *SwipeRow) {}

// ActionButton holds the state of one action revealed behind a SwipeRow.
//
// Buttons do not reference the row that contains them; the row is provided
// to the handler at dispatch time.
type ActionButton struct {
	// Clickable tracks taps on the button.
	widget.Clickable

	title   string
	color   color.NRGBA
	handler Handler
	width   unit.Dp
}

// NewActionButton constructs a button. Handler must be non-nil; use NoAction
// for a button that does nothing.
func NewActionButton(title string, col color.NRGBA, handler Handler) *ActionButton {
	if handler == nil {
		panic(fmt.Errorf("action button %q: must provide a Handler", title))
	}
	return &ActionButton{
		title:   title,
		color:   col,
		handler: handler,
	}
}

// Title of the button.
func (b *ActionButton) Title() string {
	return b.title
}

// Color is the button's background color.
func (b *ActionButton) Color() color.NRGBA {
	return b.color
}

// Handler returns the button's handler.
func (b *ActionButton) Handler() Handler {
	return b.handler
}

// Width of the button, DefaultButtonWidth if none was set.
func (b *ActionButton) Width() unit.Dp {
	if b.width <= 0 {
		return DefaultButtonWidth
	}
	return b.width
}

// SetWidth overrides the button width. A row picks up the new width the next
// time the button is added to it.
func (b *ActionButton) SetWidth(w unit.Dp) error {
	if err := machine.ValidWidth(float32(w)); err != nil {
		return fmt.Errorf("action button %q: %w", b.title, err)
	}
	b.width = w
	return nil
}

// Activate invokes the handler on behalf of row.
func (b *ActionButton) Activate(row *SwipeRow) {
	b.handler(b, row)
}
