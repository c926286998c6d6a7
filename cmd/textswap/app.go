package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/config"
	"github.com/ironsheep/textswap/internal/logging"
	"github.com/ironsheep/textswap/internal/models"
	"github.com/ironsheep/textswap/internal/pipeline"
	"github.com/ironsheep/textswap/internal/version"
)

// app is everything a subcommand needs, built once per process.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	pipeline *pipeline.Pipeline
}

// newApp loads configuration, the logger and the models.
func newApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	mode := cfg.Server.Mode
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		mode = "debug"
	}
	logger, err := logging.New(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	info := version.Get()
	logger.Info("starting textswap",
		zap.String("command", cmd.Name()),
		zap.String("version", info.Version),
		zap.String("git_commit", info.GitCommit),
	)

	set, err := models.Load(cfg, logger)
	if err != nil {
		logging.Sync(logger)
		return nil, fmt.Errorf("failed to load models: %w", err)
	}

	p := pipeline.New(set,
		pipeline.WithLogger(logger),
		pipeline.WithZoom(cfg.Preprocess.Zoom),
		pipeline.WithMinConfidence(cfg.Detector.MinConfidence),
		pipeline.WithStrict(cfg.Pipeline.Strict),
	)

	return &app{cfg: cfg, logger: logger, pipeline: p}, nil
}

func (a *app) close() {
	logging.Sync(a.logger)
}
