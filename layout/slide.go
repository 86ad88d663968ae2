package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Slide lays out a widget translated horizontally, clipped to its own
// dimensions so that the area it uncovers stays visible.
type Slide struct {
	// Offset in pixels. Positive values move the widget right.
	Offset int
}

// Layout w at the slide offset. The returned dimensions are those of w, as
// if it had not moved.
func (s Slide) Layout(gtx C, w layout.Widget) D {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	defer op.Offset(image.Pt(s.Offset, 0)).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
	return dims
}
