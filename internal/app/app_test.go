package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/remote"
	"github.com/thenoetrevino/swatch/internal/testutil"
)

type failingCloseStore struct {
	*remote.MemoryStore
}

func (failingCloseStore) Close() error { return errors.New("close failed") }

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(database.NewRepository(db))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ColorService == nil {
		t.Error("Expected ColorService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be set")
	}
	if app.EventClient() != nil {
		t.Error("Expected no event client by default")
	}
	if app.SyncEnabled() {
		t.Error("Sync should be disabled without a document store")
	}
}

func TestNew_WithOptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := remote.NewMemoryStore()
	publisher := testutil.NewMockEventPublisher()

	app := New(database.NewRepository(db),
		WithDocumentStore(store),
		WithEventPublisher(publisher),
		WithSyncTarget("palettes", "shared"),
	)

	if !app.SyncEnabled() {
		t.Fatal("Expected sync to be enabled")
	}

	ctx := context.Background()
	if _, err := app.ColorService.AddColor(ctx); err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}
	if err := app.ColorService.SyncColors(ctx); err != nil {
		t.Fatalf("SyncColors failed: %v", err)
	}

	if _, ok := store.Document("palettes", "shared"); !ok {
		t.Error("Expected sync target option to be honored")
	}
	if len(publisher.Sent()) != 1 {
		t.Errorf("Expected 1 published event, got %d", len(publisher.Sent()))
	}
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(database.NewRepository(db))
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got %v", err)
	}

	app = New(database.NewRepository(db), WithDocumentStore(failingCloseStore{remote.NewMemoryStore()}))
	if err := app.Close(); err == nil {
		t.Error("Expected Close to report the store error")
	}
}

// Two apps sharing a daemon: an add in one is announced to the other.
func TestLiveRefreshThroughDaemon(t *testing.T) {
	_, socketPath := testutil.SetupTestDaemon(t)

	writerClient := testutil.SetupTestClient(t, socketPath)
	readerClient := testutil.SetupTestClient(t, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventsCh, err := readerClient.Listen(ctx)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	db := testutil.SetupTestDB(t)
	writer := New(database.NewRepository(db), WithEventPublisher(writerClient))

	record, err := writer.ColorService.AddColor(ctx)
	if err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}

	event := testutil.WaitForEvent(t, eventsCh, 3*time.Second)
	if event.Type != events.EventColorsChanged {
		t.Errorf("Expected %s, got %s", events.EventColorsChanged, event.Type)
	}
	if event.ColorID != record.ID {
		t.Errorf("Expected ColorID %d, got %d", record.ID, event.ColorID)
	}
}
