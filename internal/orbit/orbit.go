// Package orbit iterates maps and integrates flows into eager trajectories.
//
// Every function returns a freshly allocated slice. Entry 0 is always the
// initial condition, so an orbit of n steps has n+1 entries.
package orbit

import (
	"fmt"
	"math"

	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/integrators"
)

// Point is one planar state.
type Point struct{ X, Y float64 }

func checkSteps(steps int) error {
	switch {
	case steps < 0:
		return fmt.Errorf("steps=%d: %w", steps, dynamo.ErrNegativeSteps)
	case steps == math.MaxInt:
		return fmt.Errorf("steps=%d: orbit length overflows int: %w", steps, dynamo.ErrParameterBounds)
	}
	return nil
}

// Iterate applies f under parameter r, steps times, starting from x0.
func Iterate(f chaos.Map1D, r, x0 float64, steps int) ([]float64, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	xs := make([]float64, steps+1)
	xs[0] = x0
	for i := 0; i < steps; i++ {
		xs[i+1] = f(xs[i], r)
	}
	return xs, nil
}

// IterateLogisticMap is Iterate for the logistic map.
func IterateLogisticMap(r, x0 float64, steps int) ([]float64, error) {
	return Iterate(chaos.Logistic, r, x0, steps)
}

// Iterate2D is Iterate for planar maps.
func Iterate2D(m chaos.Map2D, x0, y0 float64, steps int) ([]Point, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	pts := make([]Point, steps+1)
	pts[0] = Point{x0, y0}
	for i := 0; i < steps; i++ {
		x, y := m.Step(pts[i].X, pts[i].Y)
		pts[i+1] = Point{x, y}
	}
	return pts, nil
}

// Trajectory integrates sys from x0 with a fixed step dt.
func Trajectory(sys dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt float64, steps int) ([]dynamo.State, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if len(x0) == 0 || len(x0) != sys.StateDim() {
		return nil, fmt.Errorf("initial state has %d components, system wants %d: %w",
			len(x0), sys.StateDim(), dynamo.ErrDimensionMismatch)
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("dt=%v: %w", dt, dynamo.ErrParameterBounds)
	}

	ctrl := make(dynamo.Control, sys.ControlDim())
	states := make([]dynamo.State, steps+1)
	states[0] = x0.Clone()
	t := 0.0
	for i := 0; i < steps; i++ {
		states[i+1] = integ.Step(sys, states[i], ctrl, t, dt)
		t += dt
	}
	return states, nil
}

// LorenzTrajectory integrates l with explicit Euler.
func LorenzTrajectory(l *chaos.Lorenz, x0 dynamo.State, dt float64, steps int) ([]dynamo.State, error) {
	return Trajectory(l, integrators.NewEuler(), x0, dt, steps)
}
