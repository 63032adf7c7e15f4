package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/thenoetrevino/swatch/internal/daemon"
	"github.com/thenoetrevino/swatch/internal/events"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	socketPath, err := events.SocketPath()
	if err != nil {
		slog.Error("failed to resolve socket path", "error", err)
		os.Exit(1)
	}

	// Socket directory is private to the user
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		slog.Error("failed to create socket directory", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("swatch daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("swatch daemon shutting down gracefully")
}
