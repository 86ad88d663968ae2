package widget

import (
	"fmt"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/swipe/anim"
	"git.sr.ht/~gioverse/swipe/machine"
)

// Side selects the left or right set of buttons.
type Side = machine.Side

const (
	Left  = machine.Left
	Right = machine.Right
)

// DefaultSnapDuration is how long a released row takes to settle.
const DefaultSnapDuration = 200 * time.Millisecond

// Delegate is notified when a swipe commits the outermost action of a side.
type Delegate interface {
	// LeftMostButtonSwipeCompleted is called once the row is dragged fully
	// open to the right, committing the leftmost button.
	LeftMostButtonSwipeCompleted(row *SwipeRow)
	// RightMostButtonSwipeCompleted is called once the row is dragged fully
	// open to the left, committing the rightmost button.
	RightMostButtonSwipeCompleted(row *SwipeRow)
}

// SwipeListener is an optional capability of a Delegate. Each method is
// called at most once per drag, when the foreground first leaves its resting
// position in that direction.
type SwipeListener interface {
	SwipingRight(row *SwipeRow)
	SwipingLeft(row *SwipeRow)
}

// SwipeRow holds the state of a row whose foreground can be dragged
// horizontally to reveal ActionButtons.
//
// A SwipeRow may be reused for different row content; call Reset or
// ResetImmediately before binding it to new data.
type SwipeRow struct {
	// Delegate receives commit and swipe notifications. The row does not
	// manage its lifetime.
	Delegate Delegate
	// Duration of the snap animation. Zero uses DefaultSnapDuration,
	// negative values disable animation.
	Duration time.Duration
	// Curve eases the snap animation. Defaults to anim.EaseOut.
	Curve anim.Curve

	thresholds  machine.Thresholds
	left, right buttonSide
	m           machine.Machine
	snap        anim.Snap
	drag        gesture.Drag
	// pressX is the pointer position, in pixels, when the drag began.
	pressX float32
	// tracking is false once a reset has taken the row away from the
	// pointer gesture in progress.
	tracking bool
}

type buttonSide struct {
	buttons []*ActionButton
	group   machine.Group
}

// AddButtons installs buttons on the given side using each button's own
// width, replacing whatever that side held before. An empty slice clears
// the side. The other side is left untouched.
func (r *SwipeRow) AddButtons(buttons []*ActionButton, side Side) error {
	if err := checkButtons(buttons); err != nil {
		return fmt.Errorf("add %v buttons: %w", side, err)
	}
	widths := make([]float32, len(buttons))
	for i, b := range buttons {
		widths[i] = float32(b.Width())
	}
	return r.install(buttons, widths, side)
}

// AddButtonsWidth installs buttons like AddButtons, laying every button out
// at width on this row. The buttons' own widths are left unchanged.
func (r *SwipeRow) AddButtonsWidth(buttons []*ActionButton, width unit.Dp, side Side) error {
	if err := checkSide(side); err != nil {
		return err
	}
	if err := checkButtons(buttons); err != nil {
		return fmt.Errorf("add %v buttons: %w", side, err)
	}
	if err := machine.ValidWidth(float32(width)); err != nil {
		return fmt.Errorf("add %v buttons: %w", side, err)
	}
	widths := make([]float32, len(buttons))
	for i := range buttons {
		widths[i] = float32(width)
	}
	return r.install(buttons, widths, side)
}

func checkButtons(buttons []*ActionButton) error {
	for i, b := range buttons {
		if b == nil {
			return &machine.ConfigurationError{
				Op:     "add buttons",
				Reason: fmt.Sprintf("button %d is nil", i),
			}
		}
	}
	return nil
}

func checkSide(side Side) error {
	if side != Left && side != Right {
		return &machine.ConfigurationError{
			Op:     "add buttons",
			Reason: fmt.Sprintf("unknown side %v", side),
		}
	}
	return nil
}

func (r *SwipeRow) install(buttons []*ActionButton, widths []float32, side Side) error {
	if err := checkSide(side); err != nil {
		return err
	}
	g, err := machine.NewGroup(widths...)
	if err != nil {
		return fmt.Errorf("add %v buttons: %w", side, err)
	}
	installed := buttonSide{
		buttons: append([]*ActionButton(nil), buttons...),
		group:   g,
	}
	if side == Left {
		r.left = installed
	} else {
		r.right = installed
	}
	if next := machine.Reconfigure(r.m, side); next != r.m {
		r.m = next
		r.tracking = false
		r.snap.Jump(0)
	}
	return nil
}

// SetThresholds changes the reveal and commit thresholds. The zero value
// restores machine.DefaultThresholds.
func (r *SwipeRow) SetThresholds(t machine.Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.thresholds = t
	return nil
}

// Thresholds in effect for the row.
func (r *SwipeRow) Thresholds() machine.Thresholds {
	if r.thresholds == (machine.Thresholds{}) {
		return machine.DefaultThresholds
	}
	return r.thresholds
}

// Buttons returns the buttons installed on side, nearest the foreground
// first.
func (r *SwipeRow) Buttons(side Side) []*ActionButton {
	return r.side(side).buttons
}

// ButtonWidth is the width the i'th button of side was installed with.
func (r *SwipeRow) ButtonWidth(side Side, i int) unit.Dp {
	return unit.Dp(r.side(side).group.Width(i))
}

// TotalWidth of the buttons installed on side.
func (r *SwipeRow) TotalWidth(side Side) unit.Dp {
	return unit.Dp(r.side(side).group.Total())
}

func (r *SwipeRow) side(side Side) *buttonSide {
	if side == Left {
		return &r.left
	}
	return &r.right
}

// State of the row's gesture.
func (r *SwipeRow) State() machine.State {
	return r.m.State
}

// Offset is the logical foreground offset. While settling it already holds
// the resting position; see Tick for the animated value.
func (r *SwipeRow) Offset() unit.Dp {
	return unit.Dp(r.m.Offset)
}

// Dragging reports whether the row is following a pointer.
func (r *SwipeRow) Dragging() bool {
	return r.m.State == machine.Dragging
}

// Revealed reports whether the buttons of side are showing at rest.
func (r *SwipeRow) Revealed(side Side) bool {
	if r.m.State != machine.Idle && r.m.State != machine.Pinned {
		return false
	}
	if side == Left {
		return r.m.Offset > 0
	}
	return r.m.Offset < 0
}

func (r *SwipeRow) config() machine.Config {
	return machine.Config{
		Left:       r.left.group,
		Right:      r.right.group,
		Thresholds: r.thresholds,
	}
}

// shown is the offset currently on screen.
func (r *SwipeRow) shown() float32 {
	if r.snap.Active() {
		return r.snap.Current()
	}
	return r.m.Offset
}

// Apply feeds one step of drag input to the row and dispatches whatever it
// triggers. Delta is the cumulative drag since the gesture began, in dp.
func (r *SwipeRow) Apply(u machine.Update) {
	grab := u.Phase == machine.Began ||
		(u.Phase == machine.Changed && r.m.State != machine.Dragging)
	if grab && r.snap.Active() {
		// Catch the foreground where it is rather than where it was going.
		r.m.Offset = r.snap.Current()
		r.snap.Stop()
	}
	from := r.shown()
	next, events := machine.Step(r.m, r.config(), u)
	r.m = next
	if next.State == machine.Dragging {
		r.snap.Stop()
	} else if next.Offset != from {
		r.animate(from, next.Offset)
	}
	r.dispatch(events)
}

// Reset closes the row and returns it to Idle, keeping its buttons. It may be
// called in any state; a drag in progress is abandoned.
func (r *SwipeRow) Reset() {
	from := r.shown()
	r.m = machine.Reset(r.m)
	r.tracking = false
	r.animate(from, 0)
}

// ResetImmediately is Reset without animation, for rows being rebound to new
// content.
func (r *SwipeRow) ResetImmediately() {
	r.m = machine.Reset(r.m)
	r.tracking = false
	r.snap.Jump(0)
}

// Clear returns the row to its zero configuration: closed, with no buttons,
// no delegate and default thresholds and animation.
func (r *SwipeRow) Clear() {
	r.ResetImmediately()
	r.left, r.right = buttonSide{}, buttonSide{}
	r.thresholds = machine.Thresholds{}
	r.Delegate = nil
	r.Duration = 0
	r.Curve = nil
}

// CompletePin closes a Pinned row once the host has finished acting on its
// commit. It does nothing in any other state.
func (r *SwipeRow) CompletePin() {
	if r.m.State != machine.Pinned {
		return
	}
	from := r.shown()
	r.m = machine.CompletePin(r.m)
	r.animate(from, 0)
}

// Tick advances the snap animation to now and returns the offset to draw.
// The flag reports whether another frame is needed.
func (r *SwipeRow) Tick(now time.Time) (unit.Dp, bool) {
	if !r.snap.Active() {
		return unit.Dp(r.m.Offset), false
	}
	v, running := r.snap.Sample(now)
	if !running {
		r.m = machine.Settle(r.m)
		return unit.Dp(r.m.Offset), false
	}
	return unit.Dp(v), true
}

func (r *SwipeRow) animate(from, to float32) {
	duration := r.Duration
	if duration == 0 {
		duration = DefaultSnapDuration
	}
	if duration < 0 || from == to {
		r.snap.Jump(to)
		r.m = machine.Settle(r.m)
		return
	}
	r.snap.Duration = duration
	r.snap.Curve = r.Curve
	r.snap.Begin(from, to)
}

func (r *SwipeRow) dispatch(events []machine.Event) {
	for _, e := range events {
		switch e {
		case machine.SwipingRight:
			if l, ok := r.Delegate.(SwipeListener); ok {
				l.SwipingRight(r)
			}
		case machine.SwipingLeft:
			if l, ok := r.Delegate.(SwipeListener); ok {
				l.SwipingLeft(r)
			}
		case machine.LeftCommitted:
			if b := r.outermost(Left); b != nil {
				b.Activate(r)
			}
			if r.Delegate != nil {
				r.Delegate.LeftMostButtonSwipeCompleted(r)
			}
		case machine.RightCommitted:
			if b := r.outermost(Right); b != nil {
				b.Activate(r)
			}
			if r.Delegate != nil {
				r.Delegate.RightMostButtonSwipeCompleted(r)
			}
		}
	}
}

func (r *SwipeRow) outermost(side Side) *ActionButton {
	buttons := r.side(side).buttons
	if len(buttons) == 0 {
		return nil
	}
	return buttons[len(buttons)-1]
}

// Update processes pointer input and button taps delivered since the last
// frame. Call it once per frame before laying the row out.
func (r *SwipeRow) Update(gtx layout.Context) {
	scale := gtx.Metric.PxPerDp
	if scale <= 0 {
		scale = 1
	}
	for _, e := range r.drag.Events(gtx.Metric, gtx, gesture.Horizontal) {
		switch e.Type {
		case pointer.Press:
			r.pressX = e.Position.X
			r.tracking = true
			r.Apply(machine.Update{Phase: machine.Began})
		case pointer.Drag:
			if !r.tracking {
				continue
			}
			r.Apply(machine.Update{
				Phase: machine.Changed,
				Delta: (e.Position.X - r.pressX) / scale,
			})
		case pointer.Release, pointer.Cancel:
			if !r.tracking {
				continue
			}
			r.tracking = false
			phase := machine.Ended
			if e.Type == pointer.Cancel {
				phase = machine.Cancelled
			}
			r.Apply(machine.Update{Phase: phase})
		}
	}
	for _, side := range [...]Side{Left, Right} {
		for _, b := range r.side(side).buttons {
			for b.Clicked() {
				if r.Revealed(side) {
					b.Activate(r)
				}
			}
		}
	}
}

// AddGesture registers the row's drag handler for the current clip area,
// which should cover the visible foreground. The area must not move with the
// foreground, since drag deltas are measured from where the pointer pressed.
func (r *SwipeRow) AddGesture(ops *op.Ops) {
	r.drag.Add(ops)
}
