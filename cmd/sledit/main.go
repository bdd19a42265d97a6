// Package main implements sledit, the solution-log editing CLI.
// Each subcommand is a stateless file-to-file batch transform over the
// logs produced by the external network-design search process.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sledit/internal/config"
	"sledit/internal/sollog"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Shared state built by the root command
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sledit",
	Short: "sledit - solution log editing toolkit",
	Long: `sledit maintains and transforms the solution logs produced by the
network-design search process.

A solution log maps candidate solutions (integer vectors) to evaluation
results: a feasibility status, an objective value, and user cost
components. sledit merges logs from parallel trials, re-evaluates
feasibility under revised user cost parameters, reshapes the solution
vector encoding, prunes unevaluated entries, looks up single solutions,
and rewinds search-state logs to an earlier iteration.

Every operation reads existing files and writes new ones; nothing is
edited in place.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newEditor builds the solution-log editor from the loaded record shape.
func newEditor() *sollog.Editor {
	return sollog.NewEditor(newCodec(), logger)
}

// newCodec maps the loaded config onto the record codec.
func newCodec() sollog.Codec {
	return sollog.Codec{
		Delimiter: cfg.Delimiter,
		Width:     cfg.CostComponents,
		Precision: cfg.Precision,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "record shape config file (YAML)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
