package app

import (
	"log/slog"

	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/remote"
	colorservice "github.com/thenoetrevino/swatch/internal/services/color"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient    events.EventPublisher
	store          remote.DocumentStore
	generator      *colorservice.Generator
	syncCollection string
	syncDocument   string
	logger         *slog.Logger
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithDocumentStore enables sync against the given store
func WithDocumentStore(store remote.DocumentStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithSyncTarget overrides the collection and document written by sync
func WithSyncTarget(collection, document string) Option {
	return func(cfg *appConfig) {
		cfg.syncCollection = collection
		cfg.syncDocument = document
	}
}

// WithGenerator replaces the random color generator
func WithGenerator(gen *colorservice.Generator) Option {
	return func(cfg *appConfig) {
		cfg.generator = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
