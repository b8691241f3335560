package main

import (
	"fmt"
	"io"
	"os"

	"deedles.dev/slist/internal/config"
	"deedles.dev/slist/internal/scenario"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	only    string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slist",
	Short: "Replay singly linked list scenarios",
	Long: `slist replays scripted operations against a singly linked list of ints
and prints what each operation returned along with the resulting list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
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
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), scenario.Default())
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the scenarios in a YAML file",
	Long: `Loads and validates a YAML scenario file and runs its scenarios in order.

Example:
  slist run scenarios.yaml --scenario unordered`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		return run(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every step")
	rootCmd.PersistentFlags().StringVar(&only, "scenario", "", "Only run the named scenario")

	rootCmd.AddCommand(demoCmd, runCmd)
}

func run(w io.Writer, cfg *config.Config) error {
	if only != "" {
		sc, ok := cfg.Find(only)
		if !ok {
			return fmt.Errorf("no scenario named %q", only)
		}
		cfg = &config.Config{Scenarios: []config.Scenario{sc}}
	}

	runner := scenario.Runner{Logger: logger}
	reports, err := runner.RunAll(cfg)
	for _, r := range reports {
		if _, werr := r.WriteTo(w); werr != nil {
			return werr
		}
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
