package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/config"
	"github.com/san-kum/atlas/internal/orbit"
	"github.com/san-kum/atlas/internal/regime"
	"github.com/san-kum/atlas/internal/storage"
	"github.com/san-kum/atlas/internal/viz"
)

const periodTol = 1e-6

func orbitFields(c *config.Config) map[string]any {
	return map[string]any{
		"map":     &c.Map,
		"x0":      &c.Orbit.X0,
		"steps":   &c.Orbit.Steps,
		"burn-in": &c.Orbit.BurnIn,
	}
}

func newOrbitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit [r]",
		Short: "iterate a 1-D map and plot its time series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOrbit,
	}
	d := config.DefaultConfig()
	cmd.Flags().String("map", d.Map, "map (logistic, tent)")
	cmd.Flags().Float64("x0", d.Orbit.X0, "initial state")
	cmd.Flags().Int("steps", d.Orbit.Steps, "iterations")
	cmd.Flags().Int("burn-in", d.Orbit.BurnIn, "leading iterates hidden from the plot")
	return cmd
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "orbit", orbitFields)
	if err != nil {
		return err
	}
	if err := paramArg(args, &cfg.Orbit.R); err != nil {
		return err
	}
	f, err := mapByName(cfg.Map)
	if err != nil {
		return err
	}

	oc := cfg.Orbit
	xs, err := orbit.Iterate(f, oc.R, oc.X0, oc.Steps)
	if err != nil {
		return err
	}
	visible := orbit.DropBurnIn(xs, oc.BurnIn)
	final := xs[len(xs)-1]

	fmt.Println(viz.Header(fmt.Sprintf("%s orbit", cfg.Map)))
	if cfg.Map == "logistic" {
		fmt.Println(viz.RegimeLine(oc.R))
	} else {
		fmt.Println(viz.Metric("r", oc.R))
	}
	fmt.Println(viz.Metric("x0", oc.X0))
	fmt.Println(viz.Metric("steps", oc.Steps))
	fmt.Println(viz.Metric("final x", final))
	if d, ok := fixedPointDistance(cfg.Map, oc.R, final); ok {
		fmt.Println(viz.Metric("|x - x*|", d))
	}
	warnDiverged(xs)

	if plot := finiteSeries(visible); len(plot) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(plot,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("x_n after %d burn-in steps", oc.BurnIn)),
		))
	}

	return persist(storage.Run{
		Kind:    "orbit",
		Params:  map[string]float64{"r": oc.R, "x0": oc.X0, "steps": float64(oc.Steps)},
		Summary: map[string]string{"map": cfg.Map, "regime": regime.Classify(oc.R).Name()},
		Table:   storage.OrbitTable(xs),
	})
}

func newCobwebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cobweb [r]",
		Short: "graphical iteration of the logistic map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "orbit", func(c *config.Config) map[string]any {
				return map[string]any{"x0": &c.Orbit.X0, "steps": &c.Orbit.CobwebSteps}
			})
			if err != nil {
				return err
			}
			if err := paramArg(args, &cfg.Orbit.R); err != nil {
				return err
			}

			oc := cfg.Orbit
			pts, err := orbit.Cobweb(oc.R, oc.X0, oc.CobwebSteps)
			if err != nil {
				return err
			}

			fmt.Println(viz.Header("cobweb"))
			fmt.Println(viz.RegimeLine(oc.R))
			fmt.Println(analysis.PhasePortraitToASCII(append(orbit.Curve(chaos.Logistic, oc.R, 200), pts...), 80, 24))

			return persist(storage.Run{
				Kind:   "cobweb",
				Params: map[string]float64{"r": oc.R, "x0": oc.X0, "steps": float64(oc.CobwebSteps)},
				Table:  storage.PointTable(pts),
			})
		},
	}
	d := config.DefaultConfig()
	cmd.Flags().Float64("x0", d.Orbit.X0, "initial state")
	cmd.Flags().Int("steps", d.Orbit.CobwebSteps, "staircase steps")
	return cmd
}

func newRegimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regime [r]",
		Short: "classify a logistic parameter, or list the regime bands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(viz.RegimeLegend())
				return nil
			}
			var r float64
			if err := paramArg(args, &r); err != nil {
				return err
			}
			fmt.Println(viz.RegimeLine(r))
			return nil
		},
	}
}

func newLyapunovCmd() *cobra.Command {
	var iters, burnIn int
	cmd := &cobra.Command{
		Use:   "lyapunov [r]",
		Short: "Lyapunov exponent of the logistic map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "orbit", func(c *config.Config) map[string]any {
				return map[string]any{"x0": &c.Orbit.X0}
			})
			if err != nil {
				return err
			}
			if err := paramArg(args, &cfg.Orbit.R); err != nil {
				return err
			}
			r := cfg.Orbit.R
			lambda := analysis.LogisticLyapunov(r, cfg.Orbit.X0, iters, burnIn)

			fmt.Println(viz.Header("lyapunov exponent"))
			fmt.Println(viz.RegimeLine(r))
			fmt.Println(viz.Metric("lambda", lambda))
			switch {
			case lambda > 0:
				fmt.Println(viz.Subtle.Render("positive: nearby orbits separate exponentially"))
			case lambda < 0:
				fmt.Println(viz.Subtle.Render("negative: orbits settle onto an attracting cycle"))
			}
			return nil
		},
	}
	cmd.Flags().Float64("x0", config.DefaultX0, "initial state")
	cmd.Flags().IntVar(&iters, "iters", 5000, "averaged iterates")
	cmd.Flags().IntVar(&burnIn, "burn-in", 500, "discarded iterates")
	return cmd
}

func newBifurcationCmd() *cobra.Command {
	var periods bool
	cmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "sweep r and sample long-run behavior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "bifurcation", func(c *config.Config) map[string]any {
				return map[string]any{
					"map":     &c.Map,
					"r-min":   &c.Sweep.RMin,
					"r-max":   &c.Sweep.RMax,
					"r-steps": &c.Sweep.RSteps,
					"iters":   &c.Sweep.Iters,
					"keep":    &c.Sweep.Keep,
					"x0":      &c.Sweep.X0,
					"workers": &c.Workers,
				}
			})
			if err != nil {
				return err
			}
			return runBifurcation(cfg, periods)
		},
	}
	d := config.DefaultConfig()
	cmd.Flags().String("map", d.Map, "map (logistic, tent)")
	cmd.Flags().Float64("r-min", d.Sweep.RMin, "lowest parameter")
	cmd.Flags().Float64("r-max", d.Sweep.RMax, "highest parameter")
	cmd.Flags().Int("r-steps", d.Sweep.RSteps, "grid intervals (grid has r-steps+1 values)")
	cmd.Flags().Int("iters", d.Sweep.Iters, "iterations per parameter")
	cmd.Flags().Int("keep", d.Sweep.Keep, "trailing iterations recorded per parameter")
	cmd.Flags().Float64("x0", d.Sweep.X0, "initial state for every parameter")
	cmd.Flags().Int("workers", d.Workers, "parallel workers (0 = all CPUs)")
	cmd.Flags().BoolVar(&periods, "periods", false, "report detected cycle lengths")
	return cmd
}

func runBifurcation(cfg *config.Config, periods bool) error {
	f, err := mapByName(cfg.Map)
	if err != nil {
		return err
	}
	sc := cfg.Sweep
	if sc.Keep >= sc.Iters {
		log.Printf("keep=%d >= iters=%d: no burn-in, samples include transients", sc.Keep, sc.Iters)
	}

	start := time.Now()
	samples, err := analysis.SweepParallel(f, sc, cfg.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	points := analysis.Group(samples)

	fmt.Println(viz.Header(fmt.Sprintf("%s bifurcation diagram", cfg.Map)))
	fmt.Println(viz.Metric("r range", fmt.Sprintf("[%g, %g]", sc.RMin, sc.RMax)))
	fmt.Println(viz.Metric("grid", sc.RSteps+1))
	fmt.Println(viz.Metric("burn-in", sc.BurnIn()))
	fmt.Println(viz.Metric("samples", len(samples)))
	fmt.Println(viz.Metric("elapsed", elapsed.Round(time.Microsecond)))
	fmt.Println()
	fmt.Println(analysis.BifurcationToASCII(points, 100, 24))

	if periods {
		for i, label := range periodLabels(points, sc.Keep) {
			fmt.Printf("  r=%-10.6g %s\n", points[i].Param, label)
		}
	}

	return persist(storage.Run{
		Kind: "bifurcation",
		Params: map[string]float64{
			"r_min": sc.RMin, "r_max": sc.RMax, "r_steps": float64(sc.RSteps),
			"iters": float64(sc.Iters), "keep": float64(sc.Keep), "x0": sc.X0,
		},
		Summary: map[string]string{"map": cfg.Map},
		Table:   storage.SweepTable(samples),
	})
}

// periodLabels names the cycle each grouped point settles on, searching
// only periods the keep-long tail can confirm.
func periodLabels(points []analysis.BifurcationPoint, keep int) []string {
	labels := make([]string, len(points))
	for i, p := range analysis.Periods(points, periodTol, analysis.MaxPeriodFor(keep)) {
		labels[i] = "chaotic"
		if p > 0 {
			labels[i] = fmt.Sprintf("period %d", p)
		}
	}
	return labels
}

func mapByName(name string) (chaos.Map1D, error) {
	f, ok := chaos.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown map %q", name)
	}
	return f, nil
}

// fixedPointDistance reports how far x is from the logistic fixed point
// 1 - 1/r. It applies only in the stable fixed point band.
func fixedPointDistance(mapName string, r, x float64) (float64, bool) {
	if mapName != "logistic" || regime.Classify(r) != regime.StableFixedPoint || r < 1 {
		return 0, false
	}
	return math.Abs(x - chaos.LogisticFixedPoint(r)), true
}

func finiteSeries(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

func warnDiverged(xs []float64) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			log.Printf("orbit diverged at step %d (x=%v)", i, x)
			return
		}
	}
}
