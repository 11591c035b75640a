package config

import (
	"sort"

	"github.com/san-kum/atlas/internal/analysis"
)

// Presets holds named overlays keyed by view kind, then preset name. Each
// preset is applied on top of DefaultConfig.
var Presets = map[string]map[string]func(*Config){
	"bifurcation": {
		"reference": func(c *Config) {
			c.Sweep = analysis.DefaultSweepConfig()
		},
		"zoom": func(c *Config) {
			c.Sweep = analysis.SweepConfig{RMin: 3.4, RMax: 4.0, RSteps: 600, Iters: 1000, Keep: 120, X0: 0.2}
		},
		"window": func(c *Config) {
			c.Sweep = analysis.SweepConfig{RMin: 3.82, RMax: 3.86, RSteps: 400, Iters: 2000, Keep: 100, X0: 0.2}
		},
		"tent": func(c *Config) {
			c.Map = "tent"
			c.Sweep = analysis.SweepConfig{RMin: 1.0, RMax: 2.0, RSteps: 200, Iters: 500, Keep: 80, X0: 0.2}
		},
	},
	"orbit": {
		"stable": func(c *Config) {
			c.Orbit.R = 2.5
		},
		"two-cycle": func(c *Config) {
			c.Orbit.R = 3.2
		},
		"chaos": func(c *Config) {
			c.Orbit.R = 3.9
		},
	},
	"lorenz": {
		"classic": func(c *Config) {
			c.Lorenz = DefaultConfig().Lorenz
		},
		"rk4": func(c *Config) {
			c.Lorenz.Integrator = "rk4"
			c.Lorenz.Dt = 0.02
		},
		"transient": func(c *Config) {
			c.Lorenz.Rho = 15
			c.Lorenz.Steps = 5000
		},
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	apply, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Apply overlays the named preset onto cfg. It reports whether the preset exists.
func Apply(cfg *Config, kind, preset string) bool {
	apply, ok := Presets[kind][preset]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListKinds() []string {
	kinds := make([]string, 0, len(Presets))
	for k := range Presets {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
