package layout

import (
	"image"
	"image/color"
	"reflect"
	"testing"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func newContext(ops *op.Ops) layout.Context {
	return layout.NewContext(ops, system.FrameEvent{
		Now: time.Now(),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Size: image.Pt(400, 100),
	})
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3, 4}
	if got := Reverse(true, in...); !reflect.DeepEqual(got, []int{4, 3, 2, 1}) {
		t.Errorf("reversed: got %v", got)
	}
	if got := Reverse(false, in...); !reflect.DeepEqual(got, in) {
		t.Errorf("unreversed: got %v", got)
	}
	if !reflect.DeepEqual(in, []int{1, 2, 3, 4}) {
		t.Errorf("input was modified: %v", in)
	}
	if got := Reverse[string](true); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
}

func TestSlideKeepsDimensions(t *testing.T) {
	var ops op.Ops
	gtx := newContext(&ops)
	want := image.Pt(120, 40)
	fixed := func(gtx C) D { return D{Size: want} }
	for _, offset := range []int{-60, 0, 60} {
		dims := Slide{Offset: offset}.Layout(gtx, fixed)
		if dims.Size != want {
			t.Errorf("offset %d: got %v, want %v", offset, dims.Size, want)
		}
	}
	dims := Surface(color.NRGBA{A: 255}).Layout(gtx, fixed)
	if dims.Size != want {
		t.Errorf("surface: got %v, want %v", dims.Size, want)
	}
}

func TestDividerAddsThickness(t *testing.T) {
	var ops op.Ops
	gtx := newContext(&ops)
	fixed := func(gtx C) D { return D{Size: image.Pt(200, 30)} }
	for _, tc := range []struct {
		thickness unit.Dp
		want      image.Point
	}{
		{0, image.Pt(200, 30)},
		{1, image.Pt(200, 31)},
		{4, image.Pt(200, 34)},
	} {
		d := Divider(color.NRGBA{A: 255})
		d.Thickness = tc.thickness
		if dims := d.Layout(gtx, fixed); dims.Size != tc.want {
			t.Errorf("thickness %v: got %v, want %v", tc.thickness, dims.Size, tc.want)
		}
	}
}

func TestRoundedKeepsDimensions(t *testing.T) {
	var ops op.Ops
	gtx := newContext(&ops)
	want := image.Pt(36, 36)
	dims := Rounded(18).Layout(gtx, func(gtx C) D { return D{Size: want} })
	if dims.Size != want {
		t.Errorf("got %v, want %v", dims.Size, want)
	}
}
