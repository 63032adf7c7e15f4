package app

import (
	"log/slog"

	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/remote"
	colorservice "github.com/thenoetrevino/swatch/internal/services/color"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher

	// Remote document store, nil when sync is not configured
	store remote.DocumentStore

	logger *slog.Logger

	// Service layer (business logic)
	ColorService colorservice.Service
}

// New creates a new App with all services initialized.
// The App does not own repo; callers close the database themselves.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		repo:        repo,
		eventClient: cfg.eventClient,
		store:       cfg.store,
		logger:      logger,
		ColorService: colorservice.NewService(repo, cfg.store, cfg.eventClient, colorservice.Options{
			Generator:      cfg.generator,
			SyncCollection: cfg.syncCollection,
			SyncDocument:   cfg.syncDocument,
		}),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// EventClient returns the daemon connection, or nil when running without one
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// SyncEnabled reports whether a document store was configured
func (a *App) SyncEnabled() bool {
	return a.store != nil
}

// Close releases the document store. The event client and database are
// owned by whoever created them.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing document store", "error", err)
		return err
	}
	return nil
}
