// Package machine implements the swipe gesture state machine independent of
// any toolkit. All offsets are expressed in the same unit as the button
// widths (the widget package uses dp).
package machine

import (
	"fmt"
	"math"
)

// Side identifies one edge of a row.
type Side uint8

const (
	// Left buttons are revealed by dragging the foreground to the right.
	Left Side = iota
	// Right buttons are revealed by dragging the foreground to the left.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// State of a row's gesture.
type State uint8

const (
	// Idle rows are at rest, either closed or with buttons revealed.
	Idle State = iota
	// Dragging rows are following a pointer.
	Dragging
	// Pinned rows were dragged past the commit threshold and rest fully
	// open until the host closes them.
	Pinned
	// Completing rows are animating closed after a commit.
	Completing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Pinned:
		return "pinned"
	case Completing:
		return "completing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Phase of a single continuous drag.
type Phase uint8

const (
	Began Phase = iota
	Changed
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Update is one step of pointer input. Delta is the cumulative horizontal
// translation since the gesture began; it is ignored for every phase but
// Changed.
type Update struct {
	Phase Phase
	Delta float32
}

// Event is emitted by Step for the widget layer to dispatch.
type Event uint8

const (
	// SwipingRight fires the first time the offset leaves 0 toward the
	// positive side during a gesture.
	SwipingRight Event = iota
	// SwipingLeft fires the first time the offset leaves 0 toward the
	// negative side during a gesture.
	SwipingLeft
	// LeftCommitted fires when a drag ends past the commit threshold of the
	// left buttons.
	LeftCommitted
	// RightCommitted fires when a drag ends past the commit threshold of
	// the right buttons.
	RightCommitted
)

func (e Event) String() string {
	switch e {
	case SwipingRight:
		return "swiping-right"
	case SwipingLeft:
		return "swiping-left"
	case LeftCommitted:
		return "left-committed"
	case RightCommitted:
		return "right-committed"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

// Machine is the complete gesture state of one row. The zero value is an
// idle, closed row.
type Machine struct {
	State State
	// Offset is the logical horizontal translation of the foreground.
	// Positive values reveal the left buttons, negative values reveal the
	// right buttons. After a release it holds the settle target.
	Offset float32
	// Reference is the offset recorded when the current gesture began.
	Reference float32
	// notified tracks which swiping events this gesture already emitted.
	notified notified
}

type notified uint8

const (
	notifiedRight notified = 1 << iota
	notifiedLeft
)

// Config is the geometry and policy a row steps against.
type Config struct {
	Left, Right Group
	Thresholds  Thresholds
}

// Range reports the legal offset interval.
func (c Config) Range() (min, max float32) {
	return -c.Right.Total(), c.Left.Total()
}

// Clamp x into the legal offset interval.
func (c Config) Clamp(x float32) float32 {
	min, max := c.Range()
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// group returns the buttons revealed by the given offset.
func (c Config) group(offset float32) Group {
	if offset < 0 {
		return c.Right
	}
	return c.Left
}

// Step advances m by one pointer update. It is pure: the returned events
// describe what the caller must dispatch.
func Step(m Machine, cfg Config, u Update) (Machine, []Event) {
	th := cfg.Thresholds.resolve()
	switch u.Phase {
	case Began:
		return begin(m), nil
	case Changed:
		if m.State != Dragging {
			m = begin(m)
		}
		var events []Event
		next := cfg.Clamp(m.Reference + u.Delta)
		if next > 0 && m.Offset <= 0 && m.notified&notifiedRight == 0 {
			m.notified |= notifiedRight
			events = append(events, SwipingRight)
		}
		if next < 0 && m.Offset >= 0 && m.notified&notifiedLeft == 0 {
			m.notified |= notifiedLeft
			events = append(events, SwipingLeft)
		}
		m.Offset = next
		return m, events
	case Ended:
		if m.State != Dragging {
			return m, nil
		}
		return release(m, cfg.group(m.Offset), th)
	case Cancelled:
		if m.State != Dragging {
			return m, nil
		}
		return Reset(m), nil
	}
	return m, nil
}

func begin(m Machine) Machine {
	m.State = Dragging
	m.Reference = m.Offset
	m.notified = 0
	return m
}

// release decides where a finished drag settles.
func release(m Machine, g Group, th Thresholds) (Machine, []Event) {
	var (
		total     = g.Total()
		magnitude = float32(math.Abs(float64(m.Offset)))
		sign      = float32(1)
		commit    = LeftCommitted
	)
	if m.Offset < 0 {
		sign = -1
		commit = RightCommitted
	}
	switch {
	case total <= 0 || magnitude < th.Reveal*total:
		return Reset(m), nil
	case magnitude < th.Commit*total:
		m.State = Idle
		m.Offset = sign * total
		return m, nil
	default:
		m.State = Pinned
		m.Offset = sign * total
		return m, []Event{commit}
	}
}

// Reset closes the row from any state.
func Reset(m Machine) Machine {
	return Machine{State: Idle}
}

// CompletePin starts closing a pinned row. Rows in any other state are
// returned unchanged.
func CompletePin(m Machine) Machine {
	if m.State != Pinned {
		return m
	}
	return Machine{State: Completing}
}

// Settle finishes a completing row once its closing animation is done.
func Settle(m Machine) Machine {
	if m.State != Completing {
		return m
	}
	return Machine{State: Idle}
}

// Reconfigure accounts for the buttons of side being replaced: when the
// foreground is displaced toward that side it is closed, otherwise m is
// returned unchanged.
func Reconfigure(m Machine, side Side) Machine {
	switch {
	case side == Left && m.Offset > 0, side == Right && m.Offset < 0:
		return Reset(m)
	}
	return m
}
