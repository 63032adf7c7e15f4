package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/swatch/internal/app"
	"github.com/thenoetrevino/swatch/internal/database"
	"github.com/thenoetrevino/swatch/internal/remote"
	"github.com/thenoetrevino/swatch/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App syncs into an in-memory document store.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App, *remote.MemoryStore) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := remote.NewMemoryStore()

	// Note: EventPublisher is nil - event publishing is tested elsewhere
	appInstance := app.New(database.NewRepository(db), app.WithDocumentStore(store))

	return db, appInstance, store
}

// SetupCLITestWithoutSync is SetupCLITest with no document store configured
func SetupCLITestWithoutSync(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(database.NewRepository(db))
}

// CreateTestColor wraps testutil.CreateTestColor for CLI tests
func CreateTestColor(t *testing.T, db *sql.DB, code string, timeMillis int64) int {
	t.Helper()
	return testutil.CreateTestColor(t, db, code, timeMillis)
}
