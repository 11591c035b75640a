package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/chaos"
	"github.com/san-kum/atlas/internal/config"
)

func TestParamArg(t *testing.T) {
	r := 1.0
	if err := paramArg(nil, &r); err != nil || r != 1.0 {
		t.Errorf("empty args changed r to %v (err %v)", r, err)
	}
	if err := paramArg([]string{"3.57"}, &r); err != nil || r != 3.57 {
		t.Errorf("got %v, %v", r, err)
	}
	if err := paramArg([]string{"chaos"}, &r); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.yaml")
	if err := os.WriteFile(path, []byte("sweep:\n  keep: 12\n  iters: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile, preset = path, "zoom"
	defer func() { configFile, preset = "", "" }()

	cmd := newBifurcationCmd()
	if err := cmd.ParseFlags([]string{"--keep", "7"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd, "bifurcation", func(c *config.Config) map[string]any {
		return map[string]any{"keep": &c.Sweep.Keep, "iters": &c.Sweep.Iters}
	})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	// preset replaces the file's sweep, then the explicit flag wins.
	if cfg.Sweep.Keep != 7 {
		t.Errorf("keep = %d, want 7", cfg.Sweep.Keep)
	}
	if cfg.Sweep.Iters != 1000 {
		t.Errorf("iters = %d, want preset value 1000", cfg.Sweep.Iters)
	}
}

func TestLoadConfig_UnknownPreset(t *testing.T) {
	preset = "nope"
	defer func() { preset = "" }()

	if _, err := loadConfig(&cobra.Command{}, "orbit", nil); err == nil {
		t.Error("expected unknown preset error")
	}
}

func TestApplyFlags_UnsupportedType(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("fast", false, "")
	if err := cmd.ParseFlags([]string{"--fast"}); err != nil {
		t.Fatal(err)
	}
	var b bool
	if err := applyFlags(cmd.Flags(), map[string]any{"fast": &b}); err == nil {
		t.Error("expected error for unsupported field type")
	}
}

func TestPeriodLabels_ReferenceSweep(t *testing.T) {
	sc := config.DefaultConfig().Sweep
	samples, err := analysis.Sweep(chaos.Logistic, sc)
	if err != nil {
		t.Fatal(err)
	}
	points := analysis.Group(samples)
	labels := periodLabels(points, sc.Keep)
	if len(labels) != len(points) {
		t.Fatalf("got %d labels for %d points", len(labels), len(points))
	}

	for _, tc := range []struct {
		index int
		want  string
	}{
		{0, "period 1"},   // r = 2.5
		{130, "period 2"}, // r = 3.25
	} {
		if got := labels[tc.index]; got != tc.want {
			t.Errorf("r=%g: got %q, want %q", points[tc.index].Param, got, tc.want)
		}
	}
}

func TestPeriodLabels_ShortTail(t *testing.T) {
	points := []analysis.BifurcationPoint{{Param: 2.5, Values: []float64{0.6}}}
	if got := periodLabels(points, 1); got[0] != "chaotic" {
		t.Errorf("single-value tail labeled %q", got[0])
	}
}

func TestFixedPointDistance(t *testing.T) {
	tests := []struct {
		name   string
		mapKey string
		r, x   float64
		want   float64
		ok     bool
	}{
		{"on the fixed point", "logistic", 2.5, 0.6, 0, true},
		{"off the fixed point", "logistic", 2.0, 0.25, 0.25, true},
		{"two-cycle band", "logistic", 3.2, 0.5, 0, false},
		{"below r=1", "logistic", 0.5, 0, 0, false},
		{"tent map", "tent", 2.5, 0.6, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fixedPointDistance(tt.mapKey, tt.r, tt.x)
			if ok != tt.ok || math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapByName(t *testing.T) {
	if _, err := mapByName("tent"); err != nil {
		t.Errorf("tent: %v", err)
	}
	if _, err := mapByName("ikeda"); err == nil {
		t.Error("expected error for planar map name")
	}
}
