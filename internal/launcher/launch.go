package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swatch/internal/app"
	"github.com/thenoetrevino/swatch/internal/config"
	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/logging"
	"github.com/thenoetrevino/swatch/internal/remote"
	"github.com/thenoetrevino/swatch/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logging goes to a file; the terminal belongs to the TUI
	if err := logging.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	opts := []app.Option{
		app.WithSyncTarget(cfg.Sync.Collection, cfg.Sync.Document),
	}

	// Live updates are optional
	var eventChan <-chan events.Event
	eventClient, err := events.ConnectDefault(ctx)
	if err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
	} else {
		defer func() {
			if err := eventClient.Close(); err != nil {
				slog.Error("error closing event client", "error", err)
			}
		}()
		opts = append(opts, app.WithEventPublisher(eventClient))

		eventChan, err = eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("failed to subscribe to daemon events", "error", err)
			eventChan = nil
		}
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	store, err := remote.Open(ctx, remote.FirestoreConfig{
		CredentialsPath: cfg.Sync.CredentialsFile,
		ProjectID:       cfg.Sync.ProjectID,
	})
	switch {
	case err == nil:
		opts = append(opts, app.WithDocumentStore(store))
	case errors.Is(err, remote.ErrNotConfigured):
		slog.Info("sync disabled", "reason", err)
	default:
		slog.Warn("failed to open document store, sync disabled", "error", err)
	}

	application := app.New(database.NewRepository(db), opts...)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application, cfg, eventChan)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// in-flight commands get a moment before the database closes
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}
