package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
)

// Sample is one long-run iterate tagged with the parameter that produced it.
type Sample struct {
	R float64 `json:"r"`
	X float64 `json:"x"`
}

// BifurcationPoint groups the long-run values recorded for one parameter.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// SweepConfig describes a bifurcation sweep over [RMin, RMax].
//
// Each of the RSteps+1 grid values restarts from X0, discards Iters-Keep
// transient iterates and records the following Keep. When Keep >= Iters
// there is no transient phase; the Keep recorded iterates still run.
type SweepConfig struct {
	RMin   float64 `yaml:"r_min" json:"r_min"`
	RMax   float64 `yaml:"r_max" json:"r_max"`
	RSteps int     `yaml:"r_steps" json:"r_steps"`
	Iters  int     `yaml:"iters" json:"iters"`
	Keep   int     `yaml:"keep" json:"keep"`
	X0     float64 `yaml:"x0" json:"x0"`
}

// DefaultSweepConfig returns the reference bifurcation diagram settings.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{RMin: 2.5, RMax: 4.0, RSteps: 260, Iters: 420, Keep: 60, X0: 0.2}
}

// Validate rejects negative counts and grids whose sample count does not fit
// in an int.
func (c SweepConfig) Validate() error {
	switch {
	case c.RSteps < 0:
		return fmt.Errorf("r_steps=%d: %w", c.RSteps, dynamo.ErrParameterBounds)
	case c.Iters < 0:
		return fmt.Errorf("iters=%d: %w", c.Iters, dynamo.ErrParameterBounds)
	case c.Keep < 0:
		return fmt.Errorf("keep=%d: %w", c.Keep, dynamo.ErrParameterBounds)
	case c.RSteps == math.MaxInt:
		return fmt.Errorf("r_steps=%d: grid size overflows int: %w", c.RSteps, dynamo.ErrParameterBounds)
	case c.Keep > 0 && c.RSteps+1 > math.MaxInt/c.Keep:
		return fmt.Errorf("r_steps=%d keep=%d: sample count overflows int: %w", c.RSteps, c.Keep, dynamo.ErrParameterBounds)
	}
	return nil
}

// Len is the number of samples the sweep produces.
func (c SweepConfig) Len() int {
	return (c.RSteps + 1) * c.Keep
}

// BurnIn is the number of discarded iterates per parameter value.
func (c SweepConfig) BurnIn() int {
	if c.Keep >= c.Iters {
		return 0
	}
	return c.Iters - c.Keep
}

// ParamAt returns the i-th grid value. RSteps == 0 collapses the grid to RMin.
func (c SweepConfig) ParamAt(i int) float64 {
	if c.RSteps == 0 {
		return c.RMin
	}
	return c.RMin + (float64(i)/float64(c.RSteps))*(c.RMax-c.RMin)
}

// Sweep records the long-run behavior of f across the parameter grid.
// Samples are grouped by parameter in ascending grid order.
func Sweep(f chaos.Map1D, cfg SweepConfig) ([]Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]Sample, cfg.Len())
	sweepRange(f, cfg, 0, cfg.RSteps+1, out)
	return out, nil
}

// SweepBifurcation sweeps the logistic map.
func SweepBifurcation(rMin, rMax float64, rSteps, iters, keep int, x0 float64) ([]Sample, error) {
	return Sweep(chaos.Logistic, SweepConfig{
		RMin: rMin, RMax: rMax, RSteps: rSteps, Iters: iters, Keep: keep, X0: x0,
	})
}

// SweepParallel partitions the parameter grid across workers. Each grid
// index owns a fixed slot range of the output, so the result is identical
// to Sweep regardless of scheduling. workers <= 0 uses every CPU.
func SweepParallel(f chaos.Map1D, cfg SweepConfig, workers int) ([]Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]Sample, cfg.Len())
	if cfg.Keep == 0 {
		return out, nil
	}
	n := cfg.RSteps + 1
	fn := func(start, end int) { sweepRange(f, cfg, start, end, out) }
	if workers <= 0 {
		dynamo.ParallelFor(n, 8, fn)
	} else {
		dynamo.ParallelForN(n, 8, workers, fn)
	}
	return out, nil
}

// sweepRange fills the output slots of grid indices [start, end).
func sweepRange(f chaos.Map1D, cfg SweepConfig, start, end int, out []Sample) {
	burn := cfg.BurnIn()
	for i := start; i < end; i++ {
		r := cfg.ParamAt(i)
		x := cfg.X0
		for k := 0; k < burn; k++ {
			x = f(x, r)
		}
		base := i * cfg.Keep
		for k := 0; k < cfg.Keep; k++ {
			x = f(x, r)
			out[base+k] = Sample{R: r, X: x}
		}
	}
}

// Group collapses runs of consecutive samples sharing a parameter.
func Group(samples []Sample) []BifurcationPoint {
	var points []BifurcationPoint
	for _, s := range samples {
		if n := len(points); n > 0 && points[n-1].Param == s.R {
			points[n-1].Values = append(points[n-1].Values, s.X)
			continue
		}
		points = append(points, BifurcationPoint{Param: s.R, Values: []float64{s.X}})
	}
	return points
}

// BifurcationToASCII converts bifurcation data to ASCII art
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Find value range - need at least one finite value
	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !finite(v) {
				continue
			}
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
			} else {
				if v < minVal {
					minVal = v
				}
				if v > maxVal {
					maxVal = v
				}
			}
		}
	}
	if !foundFirst {
		return ""
	}

	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := newCanvas(width, height)

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}

		for _, v := range p.Values {
			if !finite(v) {
				continue
			}
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height && col >= 0 && col < width {
				canvas[row][col] = '•'
			}
		}
	}

	return canvasString(canvas)
}

func newCanvas(width, height int) [][]rune {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	return canvas
}

func canvasString(canvas [][]rune) string {
	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
