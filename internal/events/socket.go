package events

import (
	"context"
	"os"
	"path/filepath"
)

// SocketPath returns the daemon socket location, ~/.swatch/swatch.sock.
// SWATCH_SOCKET overrides it.
func SocketPath() (string, error) {
	if p := os.Getenv("SWATCH_SOCKET"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".swatch", "swatch.sock"), nil
}

// ConnectDefault dials the daemon at SocketPath. The returned client is
// already closed when err is non-nil.
func ConnectDefault(ctx context.Context) (*Client, error) {
	socketPath, err := SocketPath()
	if err != nil {
		return nil, err
	}

	client := NewClient(socketPath)
	if err := client.Connect(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
