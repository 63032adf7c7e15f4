package remote

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirestoreConfig holds what is needed to reach a Firestore database
type FirestoreConfig struct {
	CredentialsPath string
	ProjectID       string
}

// FirestoreStore is a DocumentStore backed by Cloud Firestore
type FirestoreStore struct {
	client *firestore.Client
}

// Open initializes the Firebase Admin SDK and returns a Firestore-backed store.
// Returns ErrNotConfigured when cfg is empty.
func Open(ctx context.Context, cfg FirestoreConfig) (*FirestoreStore, error) {
	if cfg.CredentialsPath == "" && cfg.ProjectID == "" {
		return nil, ErrNotConfigured
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

// SetDocument overwrites collection/document with data
func (s *FirestoreStore) SetDocument(ctx context.Context, collection, document string, data map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(document).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, document, err)
	}
	return nil
}

// Close releases the Firestore client
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
