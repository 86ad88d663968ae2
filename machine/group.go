package machine

import (
	"fmt"
	"math"
)

// ConfigurationError reports a row or button configuration that cannot be
// honoured.
type ConfigurationError struct {
	// Op names the operation that rejected the configuration.
	Op string
	// Reason describes what was wrong.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Op, e.Reason)
}

// Group is the geometry of the buttons on one side of a row. Index 0 is the
// button nearest the foreground edge, the last index is the outermost button.
type Group struct {
	widths []float32
	total  float32
}

// NewGroup validates the provided widths and returns their group. No widths
// yields the empty group, which never reveals.
func NewGroup(widths ...float32) (Group, error) {
	g := Group{widths: make([]float32, len(widths))}
	for i, w := range widths {
		if err := ValidWidth(w); err != nil {
			return Group{}, fmt.Errorf("button %d: %w", i, err)
		}
		g.widths[i] = w
		g.total += w
	}
	return g, nil
}

// ValidWidth returns a ConfigurationError unless w is a finite, positive width.
func ValidWidth(w float32) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) || w <= 0 {
		return &ConfigurationError{
			Op:     "width",
			Reason: fmt.Sprintf("must be positive and finite, got %v", w),
		}
	}
	return nil
}

// Len is the number of buttons.
func (g Group) Len() int {
	return len(g.widths)
}

// Width of the button at index i.
func (g Group) Width(i int) float32 {
	return g.widths[i]
}

// Total width of all buttons.
func (g Group) Total() float32 {
	return g.total
}

// Outermost returns the width of the button farthest from the foreground
// edge, or 0 for an empty group.
func (g Group) Outermost() float32 {
	if len(g.widths) == 0 {
		return 0
	}
	return g.widths[len(g.widths)-1]
}

// Thresholds configures how far a drag must travel, as a fraction of the
// revealed side's total width, before a release reveals or commits.
//
// The zero value resolves to DefaultThresholds.
type Thresholds struct {
	// Reveal is the fraction at or past which the buttons snap fully open.
	Reveal float32
	// Commit is the fraction at or past which the outermost button's action
	// commits.
	Commit float32
}

// DefaultThresholds reveal at half the total width and commit at the full
// width.
var DefaultThresholds = Thresholds{Reveal: 0.5, Commit: 1}

// Validate reports whether 0 < Reveal <= Commit <= 1, after defaults.
func (t Thresholds) Validate() error {
	t = t.resolve()
	if !(t.Reveal > 0 && t.Reveal <= t.Commit && t.Commit <= 1) {
		return &ConfigurationError{
			Op:     "thresholds",
			Reason: fmt.Sprintf("need 0 < reveal <= commit <= 1, got reveal=%v commit=%v", t.Reveal, t.Commit),
		}
	}
	return nil
}

func (t Thresholds) resolve() Thresholds {
	if t.Reveal == 0 {
		t.Reveal = DefaultThresholds.Reveal
	}
	if t.Commit == 0 {
		t.Commit = DefaultThresholds.Commit
	}
	return t
}
