package core

import "math"

// Interval is a closed range [Min, Max] on the reals. Intervals are value
// types and never alias.
type Interval struct {
	Min, Max float64
}

func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Empty and Universe are the two canonical degenerate/unbounded intervals.
var (
	Empty    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains tests closed-interval membership.
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds tests open-interval membership.
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand inflates the interval symmetrically by d/2 on each end.
func (iv Interval) Expand(d float64) Interval {
	padding := d / 2
	return Interval{Min: iv.Min - padding, Max: iv.Max + padding}
}

// Union returns the smallest interval containing both operands.
func (iv Interval) Union(o Interval) Interval {
	return Interval{Min: math.Min(iv.Min, o.Min), Max: math.Max(iv.Max, o.Max)}
}
