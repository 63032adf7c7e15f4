package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/swatch/internal/app"
	"github.com/thenoetrevino/swatch/internal/config"
	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/remote"
)

// CLI represents the CLI application context
type CLI struct {
	App         *app.App // Application container with services
	eventClient events.EventPublisher
	db          *sql.DB // nil when the App was injected
}

// NewCLI opens the database, the optional Firestore store and the optional
// daemon connection described by cfg.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := []app.Option{
		app.WithSyncTarget(cfg.Sync.Collection, cfg.Sync.Document),
	}

	store, err := remote.Open(ctx, remote.FirestoreConfig{
		CredentialsPath: cfg.Sync.CredentialsFile,
		ProjectID:       cfg.Sync.ProjectID,
	})
	switch {
	case err == nil:
		opts = append(opts, app.WithDocumentStore(store))
	case errors.Is(err, remote.ErrNotConfigured):
		slog.Debug("sync disabled", "reason", err)
	default:
		slog.Warn("failed to open document store, sync disabled", "error", err)
	}

	// Try to connect to daemon (optional - silent fallback)
	var eventClient events.EventPublisher
	if client, err := events.ConnectDefault(ctx); err == nil {
		eventClient = client
		opts = append(opts, app.WithEventPublisher(client))
	} else {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Debug("running without daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
	}

	return &CLI{
		App:         app.New(database.NewRepository(db), opts...),
		eventClient: eventClient,
		db:          db,
	}, nil
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}

	var errs []error
	if c.eventClient != nil {
		errs = append(errs, c.eventClient.Close())
	}
	errs = append(errs, c.App.Close(), c.db.Close())
	return errors.Join(errs...)
}

type appKey struct{}

// ContextWithApp makes GetCLIFromContext reuse application instead of
// opening the user's database. Used by tests.
func ContextWithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, application)
}

// GetCLIFromContext returns a CLI around an injected App if there is one,
// otherwise it loads the configuration and builds a new CLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if application, ok := ctx.Value(appKey{}).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewCLI(ctx, cfg)
}
