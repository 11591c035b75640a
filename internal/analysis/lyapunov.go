package analysis

import (
	"math"

	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
)

// LogisticLyapunov estimates the Lyapunov exponent of the logistic map as
// the orbit average of ln|f'(x)| = ln|r(1-2x)| over iters iterates after
// burnIn discarded ones. Negative values mean attracting cycles, positive
// values mean chaos. Orbits landing exactly on x=0.5 give -Inf.
func LogisticLyapunov(r, x0 float64, iters, burnIn int) float64 {
	if iters <= 0 {
		return 0
	}
	x := x0
	for i := 0; i < burnIn; i++ {
		x = chaos.LogisticStep(x, r)
	}

	sum := 0.0
	for i := 0; i < iters; i++ {
		sum += math.Log(math.Abs(chaos.LogisticDerivative(x, r)))
		x = chaos.LogisticStep(x, r)
	}
	return sum / float64(iters)
}

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence over time
// 3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|), renormalizing the separation each step
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || perturbation <= 0 || dt <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	ctrl := make(dynamo.Control, dyn.ControlDim())
	t := 0.0

	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()
		if sep == 0 || !finite(sep) {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		// Pull the shadow trajectory back to distance d0 along the separation.
		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if count == 0 {
		return 0
	}

	return sumLog / (float64(count) * dt)
}
