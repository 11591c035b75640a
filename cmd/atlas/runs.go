package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/config"
	"github.com/san-kum/atlas/internal/orbit"
	"github.com/san-kum/atlas/internal/storage"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [kind]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := config.ListKinds()
			if len(args) > 0 {
				kinds = args
			}
			for _, kind := range kinds {
				presets := config.ListPresets(kind)
				if len(presets) == 0 {
					fmt.Printf("no presets for: %s\n", kind)
					continue
				}
				fmt.Printf("presets for %s:\n", kind)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tROWS\tPARAMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
			formatParams(run.Params),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	table, err := st.LoadTable(runID)
	if err != nil {
		return err
	}

	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("samples: %d\n\n", len(table.Rows))

	switch meta.Kind {
	case "bifurcation":
		rs, _ := table.Column("r")
		xs, _ := table.Column("x")
		samples := make([]analysis.Sample, len(rs))
		for i := range rs {
			samples[i] = analysis.Sample{R: rs[i], X: xs[i]}
		}
		fmt.Println(analysis.BifurcationToASCII(analysis.Group(samples), 100, 24))
		return nil
	case "henon", "ikeda", "cobweb":
		xs, _ := table.Column("x")
		ys, _ := table.Column("y")
		pts := make([]orbit.Point, len(xs))
		for i := range xs {
			pts[i] = orbit.Point{X: xs[i], Y: ys[i]}
		}
		fmt.Println(analysis.PhasePortraitToASCII(pts, 80, 28))
		return nil
	}

	for _, col := range table.Columns {
		if col == "step" {
			continue
		}
		data, _ := table.Column(col)
		data = finiteSeries(data)
		if len(data) < 2 {
			continue
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(col+" vs step"),
		))
		fmt.Println()
	}

	return nil
}

func formatParams(params map[string]float64) string {
	s := ""
	for i, k := range sortedKeys(params) {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%g", k, params[k])
	}
	return s
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
