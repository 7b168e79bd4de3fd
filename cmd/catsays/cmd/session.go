package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/catsays/internal/app"
	"github.com/dbmrq/catsays/internal/catapi"
	"github.com/dbmrq/catsays/internal/config"
	apperrors "github.com/dbmrq/catsays/internal/errors"
	"github.com/dbmrq/catsays/internal/logging"
	"github.com/dbmrq/catsays/internal/store"
	"github.com/dbmrq/catsays/internal/version"
)

// session is everything a command needs to talk to the controller.
type session struct {
	ctx        context.Context
	cfg        *config.Config
	logger     *logging.Logger
	store      *store.Store
	controller *app.Controller
}

// loadConfig reads the --config file, or the default one, tolerating a missing file.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, path, apperrors.InvalidConfig(path, err)
	}
	return cfg, path, nil
}

// openSession loads configuration, starts file logging, opens the store
// and builds the controller.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		cfg.Log.Level = "debug"
	}

	ctx := logging.WithSessionID(cmd.Context(), logging.NewSessionID())
	if err := logging.InitGlobal(ctx, cfg.Logging()); err != nil {
		// Non-fatal: continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	}
	logger := logging.Global()
	if path := logger.LogPath(); verbose && path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s\n", path)
	}
	logger.Info("catsays starting",
		"version", version.Version,
		"command", cmd.Name(),
		"backend", string(cfg.Storage.Backend),
	)

	backend, err := store.OpenBackend(string(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.Storage.Path, "error", err)
		_ = logging.CloseGlobal()
		return nil, err
	}
	st := store.New(backend, logger)

	client := catapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	client.UserAgent = version.Current().UserAgent()

	controller := app.New(st, client, app.Options{
		DefaultImage:   cfg.API.DefaultImage,
		DefaultCaption: cfg.API.DefaultCaption,
		Logger:         logger,
	})

	return &session{
		ctx:        ctx,
		cfg:        cfg,
		logger:     logger,
		store:      st,
		controller: controller,
	}, nil
}

// Close tears down the controller, the store and the global logger.
func (s *session) Close() {
	s.controller.Close()
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close store", "error", err)
	}
	s.logger.Info("catsays exiting")
	_ = logging.CloseGlobal()
}
