package color

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/models"
	"github.com/thenoetrevino/swatch/internal/remote"
)

// Default location of the sync placeholder
const (
	DefaultSyncCollection = "cities"
	DefaultSyncDocument   = "LA"
)

// SyncPlaceholder is the constant value written by SyncColors.
// It is not derived from the stored colors.
const SyncPlaceholder = "colorItem"

// Service defines all color-related business operations
type Service interface {
	// Read operations
	FetchAll(ctx context.Context) ([]*models.ColorRecord, error)
	Unsynced() []*models.ColorRecord
	UnsyncedCount() int

	// Write operations
	AddColor(ctx context.Context) (*models.ColorRecord, error)
	SyncColors(ctx context.Context) error
}

// Options tunes a color service. Zero values fall back to defaults.
type Options struct {
	Generator      *Generator
	SyncCollection string
	SyncDocument   string
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	store       remote.DocumentStore
	eventClient events.Publisher
	gen         *Generator
	collection  string
	document    string

	mu       sync.Mutex
	unsynced []*models.ColorRecord
}

// NewService creates a new color service. store and eventClient may be nil.
func NewService(repo database.DataStore, store remote.DocumentStore, eventClient events.Publisher, opts Options) Service {
	s := &service{
		repo:        repo,
		store:       store,
		eventClient: eventClient,
		gen:         opts.Generator,
		collection:  opts.SyncCollection,
		document:    opts.SyncDocument,
	}
	if s.gen == nil {
		s.gen = NewGenerator()
	}
	if s.collection == "" {
		s.collection = DefaultSyncCollection
	}
	if s.document == "" {
		s.document = DefaultSyncDocument
	}
	return s
}

// FetchAll returns every stored record in insertion order
func (s *service) FetchAll(ctx context.Context) ([]*models.ColorRecord, error) {
	colors, err := s.repo.GetAllColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch colors: %w", err)
	}
	return colors, nil
}

// AddColor generates a record, remembers it as unsynced and persists it.
// The unsynced list is not rolled back if the insert fails.
func (s *service) AddColor(ctx context.Context) (*models.ColorRecord, error) {
	record := s.gen.Generate()

	s.mu.Lock()
	s.unsynced = append(s.unsynced, record)
	s.mu.Unlock()

	stored, err := s.repo.InsertColor(ctx, record.Code, record.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to add color: %w", err)
	}

	s.mu.Lock()
	record.ID = stored.ID
	s.mu.Unlock()

	s.publishColorEvent(stored.ID)

	return stored, nil
}

// SyncColors writes the placeholder document to the remote store.
// Local records are neither read nor changed.
func (s *service) SyncColors(ctx context.Context) error {
	if s.store == nil {
		return ErrSyncNotConfigured
	}

	payload := map[string]interface{}{"value": SyncPlaceholder}
	if err := s.store.SetDocument(ctx, s.collection, s.document, payload); err != nil {
		slog.Warn("error writing document",
			"collection", s.collection,
			"document", s.document,
			"error", err)
		return fmt.Errorf("failed to sync colors: %w", err)
	}

	slog.Debug("document written",
		"collection", s.collection,
		"document", s.document)
	return nil
}

// UnsyncedCount returns how many records were added during this session
func (s *service) UnsyncedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsynced)
}

// Unsynced returns a copy of the records added during this session
func (s *service) Unsynced() []*models.ColorRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.ColorRecord, len(s.unsynced))
	for i, r := range s.unsynced {
		c := *r
		out[i] = &c
	}
	return out
}

// publishColorEvent tells other instances to refresh their grids
func (s *service) publishColorEvent(colorID int) {
	if s.eventClient == nil {
		return
	}

	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:    events.EventColorsChanged,
		ColorID: colorID,
	}, 3)
}
