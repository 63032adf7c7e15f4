// Package remote writes documents to the cloud document store used for sync.
package remote

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Open when neither credentials nor a project ID are set
var ErrNotConfigured = errors.New("remote document store is not configured")

// DocumentStore writes whole documents addressed by collection and document ID.
type DocumentStore interface {
	SetDocument(ctx context.Context, collection, document string, data map[string]interface{}) error
	Close() error
}

// Compile-time verification of the implementations
var (
	_ DocumentStore = (*FirestoreStore)(nil)
	_ DocumentStore = (*MemoryStore)(nil)
)
