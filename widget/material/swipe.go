package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
	swipelayout "git.sr.ht/~gioverse/swipe/layout"
	swipewidget "git.sr.ht/~gioverse/swipe/widget"
)

// SwipeRowStyle presents a swipe row: its action buttons pinned to the row
// edges, with the foreground content sliding over them.
type SwipeRowStyle struct {
	Theme *material.Theme
	Row   *swipewidget.SwipeRow
	// Content is the foreground of the row. It is laid out across the full
	// available width.
	Content layout.Widget
	// Surface is painted beneath Content so the buttons never show through
	// it.
	Surface color.NRGBA
	// Button optionally overrides how each action button is styled. By
	// default ActionButton is used with Theme.
	Button func(b *swipewidget.ActionButton) ActionButtonStyle
}

// SwipeRow constructs a SwipeRowStyle with the theme's background as the
// foreground surface.
func SwipeRow(th *material.Theme, row *swipewidget.SwipeRow, content layout.Widget) SwipeRowStyle {
	return SwipeRowStyle{
		Theme:   th,
		Row:     row,
		Content: content,
		Surface: th.Bg,
	}
}

// Layout the row, processing its input first.
func (s SwipeRowStyle) Layout(gtx C) D {
	s.Row.Update(gtx)
	offset, animating := s.Row.Tick(gtx.Now)
	if animating {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	macro := op.Record(gtx.Ops)
	dims := swipelayout.Surface(s.Surface).Layout(gtx, s.Content)
	content := macro.Stop()

	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	px := gtx.Dp(offset)
	switch {
	case px > 0:
		s.layoutButtons(gtx, swipewidget.Left, dims.Size)
	case px < 0:
		s.layoutButtons(gtx, swipewidget.Right, dims.Size)
	}
	// Register the drag in row coordinates so pointer positions do not move
	// with the foreground.
	foreground := image.Rectangle{
		Min: image.Pt(px, 0),
		Max: image.Pt(px+dims.Size.X, dims.Size.Y),
	}.Intersect(image.Rectangle{Max: dims.Size})
	area := clip.Rect(foreground).Push(gtx.Ops)
	s.Row.AddGesture(gtx.Ops)
	area.Pop()
	return swipelayout.Slide{Offset: px}.Layout(gtx, func(gtx C) D {
		content.Add(gtx.Ops)
		return dims
	})
}

// layoutButtons lays the buttons of side against that edge of the row.
// Index 0 sits nearest the foreground, so the left side is laid out from its
// outermost button inward.
func (s SwipeRowStyle) layoutButtons(gtx C, side swipewidget.Side, size image.Point) {
	var (
		buttons = s.Row.Buttons(side)
		widths  = make([]int, len(buttons))
		total   int
	)
	for i := range buttons {
		widths[i] = gtx.Dp(s.Row.ButtonWidth(side, i))
		total += widths[i]
	}
	x := 0
	if side == swipewidget.Right {
		x = size.X - total
	}
	style := s.Button
	if style == nil {
		style = func(b *swipewidget.ActionButton) ActionButtonStyle {
			return ActionButton(s.Theme, b)
		}
	}
	order := make([]int, len(buttons))
	for i := range order {
		order[i] = i
	}
	for _, i := range swipelayout.Reverse(side == swipewidget.Left, order...) {
		stack := op.Offset(image.Pt(x, 0)).Push(gtx.Ops)
		bgtx := gtx
		bgtx.Constraints = layout.Exact(image.Pt(widths[i], size.Y))
		style(buttons[i]).Layout(bgtx)
		stack.Pop()
		x += widths[i]
	}
}
