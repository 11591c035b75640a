// Package regime labels logistic-map parameters with their qualitative
// long-run behavior.
//
// The band edges are empirical landmarks of the bifurcation structure:
// period doubling sets in at 3.0, the cascade accumulates near 3.5699 and
// the period-3 window opens near 3.83. They are fixed constants, and
// existing displays depend on the exact values and labels.
package regime

import "math"

type Regime int

const (
	StableFixedPoint Regime = iota
	LowPeriodCycles
	PeriodDoubling
	ChaoticWindows
	StrongChaos
)

// Band edges; each is the inclusive lower bound of the next regime.
const (
	PeriodDoublingOnset = 3.0
	CascadeOnset        = 3.45
	ChaosOnset          = 3.57
	StrongChaosOnset    = 3.83
)

var labels = [...]string{
	StableFixedPoint: "Stable fixed point (deterministic convergence)",
	LowPeriodCycles:  "Low-period cycles (regular oscillations)",
	PeriodDoubling:   "Period-doubling cascade (increasing complexity)",
	ChaoticWindows:   "Chaotic dynamics with embedded periodic windows",
	StrongChaos:      "Strong chaos (high sensitivity to initial conditions)",
}

var names = [...]string{
	StableFixedPoint: "stable",
	LowPeriodCycles:  "cycles",
	PeriodDoubling:   "cascade",
	ChaoticWindows:   "chaotic",
	StrongChaos:      "strong-chaos",
}

// Classify returns the regime for r. Comparisons run low to high and the
// first match wins, so NaN lands in StrongChaos.
func Classify(r float64) Regime {
	switch {
	case r < PeriodDoublingOnset:
		return StableFixedPoint
	case r < CascadeOnset:
		return LowPeriodCycles
	case r < ChaosOnset:
		return PeriodDoubling
	case r < StrongChaosOnset:
		return ChaoticWindows
	default:
		return StrongChaos
	}
}

// Label is Classify(r).String().
func Label(r float64) string {
	return Classify(r).String()
}

func (g Regime) String() string {
	if g < 0 || int(g) >= len(labels) {
		return "unknown"
	}
	return labels[g]
}

// Name is a short identifier suitable for file names and CSV columns.
func (g Regime) Name() string {
	if g < 0 || int(g) >= len(names) {
		return "unknown"
	}
	return names[g]
}

// Bounds returns the half-open band [lo, hi) the regime covers.
func (g Regime) Bounds() (lo, hi float64) {
	edges := [...]float64{math.Inf(-1), PeriodDoublingOnset, CascadeOnset, ChaosOnset, StrongChaosOnset, math.Inf(1)}
	if g < 0 || int(g) >= len(labels) {
		return math.NaN(), math.NaN()
	}
	return edges[g], edges[g+1]
}

// All lists the regimes in band order.
func All() []Regime {
	return []Regime{StableFixedPoint, LowPeriodCycles, PeriodDoubling, ChaoticWindows, StrongChaos}
}
