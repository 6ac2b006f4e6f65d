package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/battlecalc/internal/config"
	"github.com/cory-johannsen/battlecalc/internal/content"
	"github.com/cory-johannsen/battlecalc/internal/observability"
)

// cliEnv carries state shared by every subcommand once the root has run.
type cliEnv struct {
	configPath string
	contentDir string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}
	root := &cobra.Command{
		Use:           "battlecalc",
		Short:         "Forecast duels between two combatants",
		Long:          `battlecalc resolves battle scenarios against a library of classes, items and skills and prints the resulting combat forecast.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.logger != nil {
				_ = env.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&env.configPath, "config", "", "configuration file (defaults and BATTLECALC_ environment when unset)")
	root.PersistentFlags().StringVar(&env.contentDir, "content", "", "content library directory; overrides content.dir")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	root.AddCommand(
		newForecastCmd(env),
		newRangeCmd(env),
		newLevelCmd(env),
		newVersionCmd(),
	)
	return root
}

func (e *cliEnv) init() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	if e.contentDir != "" {
		cfg.Content.Dir = e.contentDir
	}
	opts := []observability.Option{
		observability.WithOutputPaths("stderr"),
	}
	if !e.verbose {
		opts = append(opts, observability.WithMinLevel(zapcore.WarnLevel))
	}
	logger, err := observability.NewLogger(cfg.Logging, opts...)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	e.cfg = cfg
	e.logger = logger.Named(string(observability.SubsystemCLI))
	return nil
}

func (e *cliEnv) library(cmd *cobra.Command) (*content.Library, error) {
	return content.Load(cmd.Context(), e.cfg.Content.Dir, observability.Component(e.logger, observability.SubsystemContent))
}
