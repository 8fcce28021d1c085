package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/nucentropy/dataset"
	"github.com/katalvlaran/nucentropy/entropy"
	"github.com/katalvlaran/nucentropy/grid"
)

// rootFlags holds the command-line flags of one invocation.
type rootFlags struct {
	base         string
	yes          []float64
	temperatures []float64
	densities    []float64
	stages       []string
	skipMissing  bool
	verbose      bool
}

// newLogger builds the process logger; tests replace it.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// newRootCmd builds the command; each call has its own flag state.
func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "nucentropy",
		Short: "Entropy per baryon of nucleosynthesis compositions",
		Long: `nucentropy loads the composition files of a nucleosynthesis run and
computes, for every grid cell (Ye × T × rho × stage), the radiation,
electron-degeneracy and ideal nuclear gas entropies and their sum.

Files are looked up as
  <base>/Ye<key>/data/<stage>_Ye_<key>_T0_<T>_rho0_<rho>.txt

Example:
  nucentropy --base ./runs --ye 0.23 --temperature 4e9 --density 1e10 --stage freezeout`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(f.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), f, logger)
		},
	}

	defaultStages := make([]string, 0, len(grid.DefaultStages))
	for _, s := range grid.DefaultStages {
		defaultStages = append(defaultStages, s.FileLabel())
	}

	fl := cmd.Flags()
	fl.StringVar(&f.base, "base", ".", "directory holding the Ye<key>/data/ dataset trees")
	fl.Float64SliceVar(&f.yes, "ye", grid.DefaultElectronFractions, "electron fractions")
	fl.Float64SliceVar(&f.temperatures, "temperature", grid.DefaultTemperatures, "temperatures in K")
	fl.Float64SliceVar(&f.densities, "density", grid.DefaultDensities, "densities")
	fl.StringSliceVar(&f.stages, "stage", defaultStages, "stages: NSE, freezeout, last, Information")
	fl.BoolVar(&f.skipMissing, "skip-missing", false, "skip cells whose dataset file is missing")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging and cell labels on each result line")

	return cmd
}

// run evaluates the grid described by f and prints one line per cell.
func run(out io.Writer, f *rootFlags, logger *zap.Logger) error {
	stages := make([]dataset.Stage, 0, len(f.stages))
	for _, label := range f.stages {
		s, err := dataset.ParseStage(label)
		if err != nil {
			return err
		}
		stages = append(stages, s)
	}

	g, err := grid.New(f.yes, f.temperatures, f.densities, stages)
	if err != nil {
		return err
	}

	runner := grid.NewRunner(f.base,
		grid.WithLogger(logger),
		grid.WithSkipMissing(f.skipMissing))

	_, err = runner.Run(g, func(o grid.Outcome) error {
		if f.verbose {
			if _, err := fmt.Fprintf(out, "%s: ", o.Cell); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(out, formatResult(o.Result))

		return err
	})

	return err
}

// formatResult renders a Result as the one-line report.
func formatResult(r entropy.Result) string {
	return fmt.Sprintf("S_rad = %s, S_deg = %s, S_ideal = %s, S_sum = %s",
		formatFloat(r.Radiation), formatFloat(r.Degeneracy), formatFloat(r.Ideal), formatFloat(r.Total))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
