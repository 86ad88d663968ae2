package swipe

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/swipe/machine"
	"git.sr.ht/~gioverse/swipe/widget"
)

type message string

func (m message) ID() RowID {
	return RowID(m)
}

func TestRowManagerRecycles(t *testing.T) {
	var (
		ops     op.Ops
		gtx     = layout.NewContext(&ops, system.FrameEvent{Now: time.Now(), Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}, Size: image.Pt(300, 300)})
		bound   = map[RowID]int{}
		shown   int
		archive = widget.NewActionButton("Archive", color.NRGBA{G: 200, A: 255}, widget.NoAction)
	)
	m := NewManager(
		func(r Row, state *widget.SwipeRow) {
			bound[r.ID()]++
			if state.State() != machine.Idle || state.Offset() != 0 {
				t.Errorf("row %s bound to open state %v at %v", r.ID(), state.State(), state.Offset())
			}
			if err := state.AddButtons([]*widget.ActionButton{archive}, widget.Left); err != nil {
				t.Errorf("configuring %s: %v", r.ID(), err)
			}
		},
		func(r Row, state *widget.SwipeRow) layout.Widget {
			return func(gtx layout.Context) layout.Dimensions {
				shown++
				return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, 10)}
			}
		},
	)
	m.Rows = []Row{message("a"), message("b")}
	for i := 0; i < m.Len(); i++ {
		m.Layout(gtx, i)
	}
	for i := 0; i < m.Len(); i++ {
		m.Layout(gtx, i)
	}
	if shown != 4 || bound["a"] != 1 || bound["b"] != 1 {
		t.Fatalf("shown=%d bound=%v", shown, bound)
	}

	a, ok := m.State("a")
	if !ok {
		t.Fatalf("no state for a")
	}
	a.Apply(machine.Update{Phase: machine.Changed, Delta: 60})
	a.Apply(machine.Update{Phase: machine.Ended})
	if a.State() != machine.Pinned {
		t.Fatalf("setup: a is %v", a.State())
	}

	m.Rows = []Row{message("b"), message("c")}
	m.Prune()
	if _, ok := m.State("a"); ok {
		t.Fatalf("a was not released")
	}
	m.Layout(gtx, 1)
	c, _ := m.State("c")
	if c != a {
		t.Fatalf("released state was not reused")
	}
	if bound["c"] != 1 {
		t.Fatalf("c bound %d times", bound["c"])
	}
}

func TestNewManagerRequiresHooks(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewManager(nil, nil)
}

func TestReleasedStateForgetsPreviousRow(t *testing.T) {
	var (
		ops     op.Ops
		gtx     = layout.NewContext(&ops, system.FrameEvent{Now: time.Now(), Metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}, Size: image.Pt(300, 300)})
		deleted = map[RowID]bool{}
	)
	m := NewManager(
		func(r Row, state *widget.SwipeRow) {
			if r.ID() != "a" {
				// Rows other than a have no actions.
				return
			}
			remove := widget.NewActionButton("Delete", color.NRGBA{R: 200, A: 255}, func(*widget.ActionButton, *widget.SwipeRow) {
				deleted[r.ID()] = true
			})
			if err := state.AddButtons([]*widget.ActionButton{remove}, widget.Right); err != nil {
				t.Errorf("configuring a: %v", err)
			}
			if err := state.SetThresholds(machine.Thresholds{Reveal: 0.1, Commit: 0.2}); err != nil {
				t.Errorf("configuring a: %v", err)
			}
			state.Duration = time.Second
		},
		func(r Row, state *widget.SwipeRow) layout.Widget {
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, 10)}
			}
		},
	)
	m.Rows = []Row{message("a")}
	m.Layout(gtx, 0)
	a, _ := m.State("a")

	m.Rows = []Row{message("b")}
	m.Prune()
	m.Layout(gtx, 0)
	b, _ := m.State("b")
	if b != a {
		t.Fatalf("released state was not reused")
	}
	switch {
	case len(b.Buttons(widget.Right)) != 0:
		t.Fatalf("b inherited %d right buttons", len(b.Buttons(widget.Right)))
	case b.Thresholds() != machine.DefaultThresholds:
		t.Fatalf("b inherited thresholds %+v", b.Thresholds())
	case b.Duration != 0:
		t.Fatalf("b inherited duration %v", b.Duration)
	}

	b.Apply(machine.Update{Phase: machine.Began})
	b.Apply(machine.Update{Phase: machine.Changed, Delta: -300})
	b.Apply(machine.Update{Phase: machine.Ended})
	if b.State() != machine.Idle || b.Offset() != 0 || len(deleted) != 0 {
		t.Fatalf("swiping b: %v at %v, deleted %v", b.State(), b.Offset(), deleted)
	}
}
