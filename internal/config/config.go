package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/integrators"
)

const (
	DefaultR           = 3.7
	DefaultX0          = 0.2
	DefaultOrbitSteps  = 180
	DefaultBurnIn      = 30
	DefaultCobwebSteps = 40
	DefaultDt          = 0.01
	DefaultLorenzSteps = 10000
	DefaultMapSteps    = 5000
	DefaultWorkers     = 0
)

type Config struct {
	Map     string               `yaml:"map"`
	Orbit   OrbitConfig          `yaml:"orbit"`
	Sweep   analysis.SweepConfig `yaml:"sweep"`
	Workers int                  `yaml:"workers"`
	Henon   HenonConfig          `yaml:"henon"`
	Ikeda   IkedaConfig          `yaml:"ikeda"`
	Lorenz  LorenzConfig         `yaml:"lorenz"`
}

type OrbitConfig struct {
	R           float64 `yaml:"r"`
	X0          float64 `yaml:"x0"`
	Steps       int     `yaml:"steps"`
	BurnIn      int     `yaml:"burn_in"`
	CobwebSteps int     `yaml:"cobweb_steps"`
}

type HenonConfig struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	Steps int     `yaml:"steps"`
}

type IkedaConfig struct {
	U     float64 `yaml:"u"`
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	Steps int     `yaml:"steps"`
}

type LorenzConfig struct {
	Sigma      float64    `yaml:"sigma"`
	Rho        float64    `yaml:"rho"`
	Beta       float64    `yaml:"beta"`
	Dt         float64    `yaml:"dt"`
	Steps      int        `yaml:"steps"`
	Integrator string     `yaml:"integrator"`
	InitState  [3]float64 `yaml:"init_state,flow"`
}

func DefaultConfig() *Config {
	h, ik, lz := chaos.NewHenon(), chaos.NewIkeda(), chaos.NewLorenz()
	return &Config{
		Map: "logistic",
		Orbit: OrbitConfig{
			R:           DefaultR,
			X0:          DefaultX0,
			Steps:       DefaultOrbitSteps,
			BurnIn:      DefaultBurnIn,
			CobwebSteps: DefaultCobwebSteps,
		},
		Sweep:   analysis.DefaultSweepConfig(),
		Workers: DefaultWorkers,
		Henon:   HenonConfig{A: h.A, B: h.B, Steps: DefaultMapSteps},
		Ikeda:   IkedaConfig{U: ik.U, A: ik.A, B: ik.B, C: ik.C, Steps: DefaultMapSteps},
		Lorenz: LorenzConfig{
			Sigma:      lz.Sigma,
			Rho:        lz.Rho,
			Beta:       lz.Beta,
			Dt:         DefaultDt,
			Steps:      DefaultLorenzSteps,
			Integrator: "euler",
			InitState:  [3]float64(lz.DefaultState()),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects counts the engine cannot run. Parameter values are not
// range-checked; out-of-range maps diverge, which is valid output.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := chaos.ByName(c.Map); !ok {
		errs = append(errs, fmt.Errorf("map %q: %w", c.Map, dynamo.ErrParameterBounds))
	}
	if _, err := integrators.ByName(c.Lorenz.Integrator); err != nil {
		errs = append(errs, fmt.Errorf("lorenz.integrator: %w", err))
	}
	if err := c.Sweep.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sweep: %w", err))
	}
	for name, n := range map[string]int{
		"orbit.steps":        c.Orbit.Steps,
		"orbit.cobweb_steps": c.Orbit.CobwebSteps,
		"henon.steps":        c.Henon.Steps,
		"ikeda.steps":        c.Ikeda.Steps,
		"lorenz.steps":       c.Lorenz.Steps,
	} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s=%d: %w", name, n, dynamo.ErrNegativeSteps))
		}
	}
	if !(c.Lorenz.Dt > 0) {
		errs = append(errs, fmt.Errorf("lorenz.dt=%v: %w", c.Lorenz.Dt, dynamo.ErrParameterBounds))
	}
	return errors.Join(errs...)
}
