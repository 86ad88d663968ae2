package layout

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
)

// Surface lays out a widget atop a solid color that covers the widget's
// dimensions.
type Surface color.NRGBA

// Layout w over the surface.
func (s Surface) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	component.Rect{
		Size:  dims.Size,
		Color: color.NRGBA(s),
	}.Layout(gtx)
	call.Add(gtx.Ops)
	return dims
}
