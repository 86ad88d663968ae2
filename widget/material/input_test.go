package material

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/swipe/machine"
	swipewidget "git.sr.ht/~gioverse/swipe/widget"
)

// pointerRow lays out a swipe row against a real input router. The row is
// 800x100px at two pixels per dp, with buttons "inner" and "outer" on the
// left and "delete" on the right, 60dp each.
type pointerRow struct {
	router router.Router
	ops    op.Ops
	row    swipewidget.SwipeRow
	style  SwipeRowStyle
	calls  []string
}

func newPointerRow(t *testing.T) *pointerRow {
	p := &pointerRow{}
	p.row.Duration = -1
	record := func(b *swipewidget.ActionButton, row *swipewidget.SwipeRow) {
		p.calls = append(p.calls, b.Title())
	}
	gray := color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	left := []*swipewidget.ActionButton{
		swipewidget.NewActionButton("inner", gray, record),
		swipewidget.NewActionButton("outer", gray, record),
	}
	if err := p.row.AddButtons(left, swipewidget.Left); err != nil {
		t.Fatal(err)
	}
	right := []*swipewidget.ActionButton{
		swipewidget.NewActionButton("delete", gray, record),
	}
	if err := p.row.AddButtons(right, swipewidget.Right); err != nil {
		t.Fatal(err)
	}
	p.style = SwipeRow(material.NewTheme(gofont.Collection()), &p.row, func(gtx C) D {
		return D{Size: image.Pt(gtx.Constraints.Min.X, 100)}
	})
	return p
}

// frame processes queued input, lays the row out and registers its handlers.
func (p *pointerRow) frame() {
	gtx := layout.NewContext(&p.ops, system.FrameEvent{
		Now: time.Unix(100, 0),
		Metric: unit.Metric{
			PxPerDp: 2,
			PxPerSp: 2,
		},
		Size:  image.Pt(800, 600),
		Queue: &p.router,
	})
	p.style.Layout(gtx)
	p.router.Frame(&p.ops)
}

func (p *pointerRow) queue(typ pointer.Type, x float32, buttons pointer.Buttons) {
	p.router.Queue(pointer.Event{
		Type:     typ,
		Source:   pointer.Mouse,
		Buttons:  buttons,
		Position: f32.Pt(x, 50),
	})
}

func (p *pointerRow) press(x float32) { p.queue(pointer.Press, x, pointer.ButtonPrimary) }
func (p *pointerRow) move(x float32)  { p.queue(pointer.Move, x, pointer.ButtonPrimary) }
func (p *pointerRow) release(x float32) {
	p.queue(pointer.Release, x, 0)
}

func TestPointerDragCommits(t *testing.T) {
	p := newPointerRow(t)
	p.frame()

	p.press(100)
	p.move(200)
	p.frame()
	if p.row.State() != machine.Dragging || p.row.Offset() != 50 {
		t.Fatalf("100px at 2px/dp: got %v at %v, want dragging at 50", p.row.State(), p.row.Offset())
	}

	p.move(400)
	p.frame()
	if p.row.Offset() != 120 {
		t.Fatalf("drag past the buttons: got %v, want 120", p.row.Offset())
	}

	p.release(400)
	p.frame()
	if p.row.State() != machine.Pinned || p.row.Offset() != 120 {
		t.Fatalf("release: got %v at %v, want pinned at 120", p.row.State(), p.row.Offset())
	}
	if len(p.calls) != 1 || p.calls[0] != "outer" {
		t.Fatalf("commit activated %v, want [outer]", p.calls)
	}
}

func TestPointerIgnoredAfterReset(t *testing.T) {
	p := newPointerRow(t)
	p.frame()

	p.press(100)
	p.move(200)
	p.frame()
	if p.row.State() != machine.Dragging {
		t.Fatalf("setup: got %v", p.row.State())
	}

	p.row.Reset()
	p.move(700)
	p.release(700)
	p.frame()
	if p.row.State() != machine.Idle || p.row.Offset() != 0 || len(p.calls) != 0 {
		t.Fatalf("after reset: %v at %v, calls %v", p.row.State(), p.row.Offset(), p.calls)
	}

	// The next gesture is tracked again.
	p.press(100)
	p.move(160)
	p.frame()
	if p.row.State() != machine.Dragging || p.row.Offset() != 30 {
		t.Fatalf("next gesture: got %v at %v", p.row.State(), p.row.Offset())
	}
}

func TestTapRevealedButton(t *testing.T) {
	for _, tc := range []struct {
		name string
		// hide closes the row after the tap lands but before the row
		// consumes it.
		hide bool
		want []string
	}{
		{name: "revealed", want: []string{"outer"}},
		{name: "hidden", hide: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := newPointerRow(t)
			p.row.Apply(machine.Update{Phase: machine.Began})
			p.row.Apply(machine.Update{Phase: machine.Changed, Delta: 90})
			p.row.Apply(machine.Update{Phase: machine.Ended})
			if !p.row.Revealed(swipewidget.Left) {
				t.Fatalf("setup: left side not revealed")
			}
			p.frame()

			// The outermost left button spans the first 120px.
			p.queue(pointer.Move, 60, 0)
			p.press(60)
			p.release(60)
			p.frame()
			if tc.hide {
				p.row.Reset()
			}
			p.frame()
			if len(p.calls) != len(tc.want) || (len(tc.want) > 0 && p.calls[0] != tc.want[0]) {
				t.Fatalf("tap activated %v, want %v", p.calls, tc.want)
			}
			if !tc.hide && (p.row.State() != machine.Idle || p.row.Offset() != 120) {
				t.Fatalf("tap moved the row: %v at %v", p.row.State(), p.row.Offset())
			}
		})
	}
}
