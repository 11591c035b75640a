package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/atlas/internal/config"
	"github.com/san-kum/atlas/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	save       bool
)

// main registers the atlas commands and executes the root command,
// exiting with status 1 on error.
func main() {
	log.SetFlags(0)
	log.SetPrefix("atlas: ")

	rootCmd := &cobra.Command{
		Use:           "atlas",
		Short:         "chaos and bifurcation explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atlas", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "store the run under --data")

	rootCmd.AddCommand(
		newOrbitCmd(),
		newCobwebCmd(),
		newRegimeCmd(),
		newLyapunovCmd(),
		newBifurcationCmd(),
		newHenonCmd(),
		newIkedaCmd(),
		newLorenzCmd(),
		newListCmd(),
		newPlotCmd(),
		newExportCmd(),
		newPresetsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the --config file, the --preset for kind and
// finally every flag the user set explicitly. fields maps flag names to the
// config field they override.
func loadConfig(cmd *cobra.Command, kind string, fields func(*config.Config) map[string]any) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !config.Apply(cfg, kind, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind))
	}

	if fields != nil {
		if err := applyFlags(cmd.Flags(), fields(cfg)); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

func applyFlags(flags *pflag.FlagSet, fields map[string]any) error {
	for name, dst := range fields {
		if !flags.Changed(name) {
			continue
		}
		var err error
		switch p := dst.(type) {
		case *float64:
			*p, err = flags.GetFloat64(name)
		case *int:
			*p, err = flags.GetInt(name)
		case *string:
			*p, err = flags.GetString(name)
		default:
			err = fmt.Errorf("flag %s: unsupported field type %T", name, dst)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// paramArg parses an optional positional parameter into dst.
func paramArg(args []string, dst *float64) error {
	if len(args) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid parameter %q: %w", args[0], err)
	}
	*dst = v
	return nil
}

// persist stores the run when --save is set and reports the id.
func persist(run storage.Run) error {
	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(run)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}
