// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/starford/drafts/internal/draft"
	"github.com/starford/drafts/internal/models"
	"github.com/starford/drafts/internal/storage"
)

// Run creates the draft directory for noteName and prints its path.
func Run(ctx context.Context, noteName string, opts ...Option) error {
	app := &application{
		clock:  time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.New(newLogHandler(app.stderr, cfg.App))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("drafts_dir", cfg.Drafts.Dir),
		slog.String("readme_policy", cfg.Drafts.Readme),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Drafts.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	scaffolder := draft.NewScaffolder(cfg.Drafts.Dir, store, app.clock, cfg.Drafts.Readme, logger)

	_, err = scaffolder.Scaffold(ctx, noteName, func(d *models.Draft) error {
		if _, err := fmt.Fprintln(app.stdout, d.Dir); err != nil {
			return fmt.Errorf("print draft path: %w", err)
		}
		return nil
	})
	return err
}

func newLogHandler(w io.Writer, cfg ApplicationConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
