package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/component"
)

// DividerStyle separates stacked rows with a hairline drawn beneath each one.
type DividerStyle struct {
	Thickness unit.Dp
	Color     color.NRGBA
}

// Divider configures a one dp divider of the given color.
func Divider(c color.NRGBA) DividerStyle {
	return DividerStyle{
		Thickness: unit.Dp(1),
		Color:     c,
	}
}

// Layout w with the divider below it and return their combined dimensions.
func (d DividerStyle) Layout(gtx C, w layout.Widget) D {
	dims := w(gtx)
	h := gtx.Dp(d.Thickness)
	if h <= 0 {
		return dims
	}
	stack := op.Offset(image.Pt(0, dims.Size.Y)).Push(gtx.Ops)
	component.Rect{
		Size:  image.Pt(dims.Size.X, h),
		Color: d.Color,
	}.Layout(gtx)
	stack.Pop()
	dims.Size.Y += h
	return dims
}
