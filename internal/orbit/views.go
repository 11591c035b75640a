package orbit

import (
	"fmt"
	"math"

	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
)

// TimeSeries returns the logistic orbit of the given length with the first
// burnIn entries dropped. A burn-in covering the whole orbit yields an empty
// slice.
func TimeSeries(r, x0 float64, steps, burnIn int) ([]float64, error) {
	xs, err := IterateLogisticMap(r, x0, steps)
	if err != nil {
		return nil, err
	}
	return DropBurnIn(xs, burnIn), nil
}

// DropBurnIn returns xs without its first burnIn entries. Negative burnIn
// keeps everything; a burn-in covering the whole orbit yields an empty slice.
func DropBurnIn(xs []float64, burnIn int) []float64 {
	burnIn = max(burnIn, 0)
	if burnIn >= len(xs) {
		return []float64{}
	}
	return xs[burnIn:]
}

// Cobweb returns the staircase vertices of the logistic map's graphical
// iteration: (x0, 0), then for each step a vertical move to (x, f(x)) and a
// horizontal move to the diagonal at (f(x), f(x)).
func Cobweb(r, x0 float64, steps int) ([]Point, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if steps > (math.MaxInt-1)/2 {
		return nil, fmt.Errorf("steps=%d: cobweb length overflows int: %w", steps, dynamo.ErrParameterBounds)
	}
	pts := make([]Point, 0, 2*steps+1)
	pts = append(pts, Point{x0, 0})
	x := x0
	for i := 0; i < steps; i++ {
		y := chaos.LogisticStep(x, r)
		pts = append(pts, Point{x, y}, Point{y, y})
		x = y
	}
	return pts, nil
}

// Curve samples f over [0, 1] at n+1 evenly spaced points.
func Curve(f chaos.Map1D, r float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n)
		pts[i] = Point{x, f(x, r)}
	}
	return pts
}
