package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
	"github.com/vovakirdan/cyberrunner/internal/registry"
)

// newLogger builds the CLI logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cyberrunner",
		Level:           level,
	}), nil
}

// loadConfig loads the runner config and applies --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// sessionOptions collects the global flags into frontend options.
func sessionOptions(cmd *cobra.Command) (registry.Options, error) {
	if flagFPS <= 0 {
		return registry.Options{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	logger, err := newLogger()
	if err != nil {
		return registry.Options{}, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return registry.Options{}, err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	return registry.Options{
		Config:    cfg,
		Runtime:   rt,
		AssetsDir: flagAssets,
		Logger:    logger,
		LogFile:   flagLogFile,
		Out:       cmd.OutOrStdout(),
	}, nil
}

// launch creates the frontend and runs it.
func launch(cmd *cobra.Command, id string, opts registry.Options) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q; run 'cyberrunner list' to see available frontends", id)
	}
	fe, err := registry.Create(id)
	if err != nil {
		return err
	}
	opts.Logger.Debug("launching", "frontend", id, "period", opts.Config.Difficulty.Period, "escalation", opts.Config.Difficulty.Enabled)
	return fe.Run(cmd.Context(), opts)
}
