package main

import (
	"fmt"
	"log"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/config"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/integrators"
	"github.com/san-kum/atlas/internal/orbit"
	"github.com/san-kum/atlas/internal/storage"
	"github.com/san-kum/atlas/internal/viz"
)

func newHenonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "henon",
		Short: "iterate the Hénon map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "henon", func(c *config.Config) map[string]any {
				return map[string]any{
					"a": &c.Henon.A, "b": &c.Henon.B,
					"x0": &c.Henon.X0, "y0": &c.Henon.Y0, "steps": &c.Henon.Steps,
				}
			})
			if err != nil {
				return err
			}
			hc := cfg.Henon
			h := &chaos.Henon{A: hc.A, B: hc.B}
			return runPlanar("henon", h, h.GetParams(), hc.X0, hc.Y0, hc.Steps)
		},
	}
	d := config.DefaultConfig().Henon
	cmd.Flags().Float64("a", d.A, "quadratic coefficient")
	cmd.Flags().Float64("b", d.B, "contraction")
	cmd.Flags().Float64("x0", d.X0, "initial x")
	cmd.Flags().Float64("y0", d.Y0, "initial y")
	cmd.Flags().Int("steps", d.Steps, "iterations")
	return cmd
}

func newIkedaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ikeda",
		Short: "iterate the Ikeda map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "ikeda", func(c *config.Config) map[string]any {
				return map[string]any{
					"u": &c.Ikeda.U, "a": &c.Ikeda.A, "b": &c.Ikeda.B, "c": &c.Ikeda.C,
					"x0": &c.Ikeda.X0, "y0": &c.Ikeda.Y0, "steps": &c.Ikeda.Steps,
				}
			})
			if err != nil {
				return err
			}
			ic := cfg.Ikeda
			k := &chaos.Ikeda{U: ic.U, A: ic.A, B: ic.B, C: ic.C}
			return runPlanar("ikeda", k, k.GetParams(), ic.X0, ic.Y0, ic.Steps)
		},
	}
	d := config.DefaultConfig().Ikeda
	cmd.Flags().Float64("u", d.U, "radial factor")
	cmd.Flags().Float64("a", d.A, "phase amplitude")
	cmd.Flags().Float64("b", d.B, "accepted for compatibility, does not affect the map")
	cmd.Flags().Float64("c", d.C, "phase offset")
	cmd.Flags().Float64("x0", d.X0, "initial x")
	cmd.Flags().Float64("y0", d.Y0, "initial y")
	cmd.Flags().Int("steps", d.Steps, "iterations")
	return cmd
}

func runPlanar(kind string, m chaos.Map2D, params map[string]float64, x0, y0 float64, steps int) error {
	pts, err := orbit.Iterate2D(m, x0, y0, steps)
	if err != nil {
		return err
	}
	last := pts[len(pts)-1]
	if !(dynamo.State{last.X, last.Y}).IsValid() {
		log.Printf("%s orbit left the attractor basin", kind)
	}

	fmt.Println(viz.Header(kind + " attractor"))
	for _, name := range sortedKeys(params) {
		fmt.Println(viz.Metric(name, params[name]))
	}
	fmt.Println(viz.Metric("steps", steps))
	fmt.Println(analysis.PhasePortraitToASCII(pts, 80, 28))

	params["x0"], params["y0"], params["steps"] = x0, y0, float64(steps)
	return persist(storage.Run{Kind: kind, Params: params, Table: storage.PointTable(pts)})
}

func newLorenzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lorenz",
		Short: "integrate the Lorenz system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "lorenz", func(c *config.Config) map[string]any {
				return map[string]any{
					"sigma": &c.Lorenz.Sigma, "rho": &c.Lorenz.Rho, "beta": &c.Lorenz.Beta,
					"dt": &c.Lorenz.Dt, "steps": &c.Lorenz.Steps, "integrator": &c.Lorenz.Integrator,
					"x0": &c.Lorenz.InitState[0], "y0": &c.Lorenz.InitState[1], "z0": &c.Lorenz.InitState[2],
				}
			})
			if err != nil {
				return err
			}
			return runLorenz(cfg.Lorenz)
		},
	}
	d := config.DefaultConfig().Lorenz
	cmd.Flags().Float64("sigma", d.Sigma, "Prandtl number")
	cmd.Flags().Float64("rho", d.Rho, "Rayleigh number")
	cmd.Flags().Float64("beta", d.Beta, "geometric factor")
	cmd.Flags().Float64("dt", d.Dt, "timestep")
	cmd.Flags().Int("steps", d.Steps, "integration steps")
	cmd.Flags().String("integrator", d.Integrator, fmt.Sprintf("integrator %v", integrators.Names()))
	cmd.Flags().Float64("x0", d.InitState[0], "initial x")
	cmd.Flags().Float64("y0", d.InitState[1], "initial y")
	cmd.Flags().Float64("z0", d.InitState[2], "initial z")
	return cmd
}

func runLorenz(lc config.LorenzConfig) error {
	lz := &chaos.Lorenz{Sigma: lc.Sigma, Rho: lc.Rho, Beta: lc.Beta}
	integ, err := integrators.ByName(lc.Integrator)
	if err != nil {
		return err
	}

	x0 := dynamo.State(lc.InitState[:]).Clone()
	states, err := orbit.Trajectory(lz, integ, x0, lc.Dt, lc.Steps)
	if err != nil {
		return err
	}
	for i, s := range states {
		if err := s.Validate(i); err != nil {
			log.Printf("trajectory diverged at step %d; reduce --dt", i)
			break
		}
	}

	lambda := analysis.LyapunovExponent(lz, integ, x0, lc.Dt, float64(lc.Steps)*lc.Dt, 1e-8)

	fmt.Println(viz.Header("lorenz attractor"))
	fmt.Println(viz.Metric("sigma", lc.Sigma))
	fmt.Println(viz.Metric("rho", lc.Rho))
	fmt.Println(viz.Metric("beta", lc.Beta))
	fmt.Println(viz.Metric("integrator", lc.Integrator))
	fmt.Println(viz.Metric("lambda", lambda))
	fmt.Println()

	xs := make([]float64, len(states))
	for i, s := range states {
		xs[i] = s[0]
	}
	if plot := finiteSeries(xs); len(plot) > 1 {
		fmt.Println(asciigraph.Plot(plot,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("x(t)"),
		))
		fmt.Println()
	}
	fmt.Println(analysis.PhasePortraitToASCII(analysis.Project(states, 0, 2), 80, 28))

	return persist(storage.Run{
		Kind: "lorenz",
		Params: map[string]float64{
			"sigma": lc.Sigma, "rho": lc.Rho, "beta": lc.Beta, "dt": lc.Dt, "steps": float64(lc.Steps),
		},
		Summary: map[string]string{"integrator": lc.Integrator},
		Table:   storage.StateTable(states, "x", "y", "z"),
	})
}
