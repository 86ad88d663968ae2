package material

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	swipelayout "git.sr.ht/~gioverse/swipe/layout"
	swipewidget "git.sr.ht/~gioverse/swipe/widget"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// ActionButtonStyle configures the presentation of a button revealed behind
// a swipe row. The button fills whatever exact size the row gives it.
type ActionButtonStyle struct {
	Button *swipewidget.ActionButton
	// Title is the label drawn centered on the button.
	Title material.LabelStyle
	// Background fills the button.
	Background color.NRGBA
	// Inset keeps the title off the button edges.
	Inset layout.Inset
}

// ActionButton constructs an ActionButtonStyle whose title contrasts with the
// button color.
func ActionButton(th *material.Theme, b *swipewidget.ActionButton) ActionButtonStyle {
	title := material.Body2(th, b.Title())
	title.Color = Contrast(b.Color())
	title.Alignment = text.Middle
	title.MaxLines = 1
	return ActionButtonStyle{
		Button:     b,
		Title:      title,
		Background: b.Color(),
		Inset:      layout.UniformInset(unit.Dp(4)),
	}
}

// Layout the button.
func (s ActionButtonStyle) Layout(gtx C) D {
	return material.Clickable(gtx, &s.Button.Clickable, func(gtx C) D {
		return swipelayout.Surface(s.Background).Layout(gtx, func(gtx C) D {
			return layout.Center.Layout(gtx, func(gtx C) D {
				return s.Inset.Layout(gtx, s.Title.Layout)
			})
		})
	})
}

// Contrast picks black or white, whichever reads better atop bg.
func Contrast(bg color.NRGBA) color.NRGBA {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return black
	}
	if l, _, _ := c.Lab(); l > 0.6 {
		return black
	}
	return white
}
