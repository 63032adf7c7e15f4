package color

import "errors"

// Color-related errors
var (
	// ErrSyncNotConfigured is returned by SyncColors when no document store is wired in
	ErrSyncNotConfigured = errors.New("sync is not configured")
)
