package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/swatch/internal/events"
)

func setupTestDaemon(t *testing.T) (*Server, string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "test-swatch.sock")

	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}
	t.Cleanup(func() { _ = server.Shutdown() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = server.Start(ctx) }()

	return server, socketPath
}

func connectRawClient(t *testing.T, socketPath string) (net.Conn, *json.Encoder, *json.Decoder) {
	t.Helper()

	conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", socketPath)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn, json.NewEncoder(conn), json.NewDecoder(conn)
}

// waitForClients polls until the daemon has registered n clients
func waitForClients(t *testing.T, server *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if server.getClientCount() == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d clients, have %d", n, server.getClientCount())
}

func readEvent(t *testing.T, conn net.Conn, decoder *json.Decoder) events.Message {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("Failed to set deadline: %v", err)
	}
	var msg events.Message
	if err := decoder.Decode(&msg); err != nil {
		t.Fatalf("Failed to decode message: %v", err)
	}
	return msg
}

func TestServer_RelaysEventToOtherClients(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	senderConn, senderEnc, senderDec := connectRawClient(t, socketPath)
	receiverConn, _, receiverDec := connectRawClient(t, socketPath)
	waitForClients(t, server, 2)

	err := senderEnc.Encode(events.Message{
		Version: events.ProtocolVersion,
		Type:    "event",
		Event:   &events.Event{Type: events.EventColorsChanged, ColorID: 5},
	})
	if err != nil {
		t.Fatalf("Failed to send event: %v", err)
	}

	msg := readEvent(t, receiverConn, receiverDec)
	if msg.Type != "event" || msg.Event == nil {
		t.Fatalf("Expected event message, got %+v", msg)
	}
	if msg.Event.ColorID != 5 {
		t.Errorf("Expected color ID 5, got %d", msg.Event.ColorID)
	}
	if msg.Event.SequenceID != 1 {
		t.Errorf("Expected sequence 1, got %d", msg.Event.SequenceID)
	}

	// the publisher does not get its own event back
	if err := senderConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)); err != nil {
		t.Fatalf("Failed to set deadline: %v", err)
	}
	var echo events.Message
	err = senderDec.Decode(&echo)
	var netErr net.Error
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Errorf("Expected read timeout on sender, got msg=%+v err=%v", echo, err)
	}

	if got := server.Metrics().EventsReceived.Load(); got != 1 {
		t.Errorf("Expected 1 event received, got %d", got)
	}
}

func TestServer_BroadcastReachesEveryClient(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	conn1, _, dec1 := connectRawClient(t, socketPath)
	conn2, _, dec2 := connectRawClient(t, socketPath)
	waitForClients(t, server, 2)

	if err := server.Broadcast(events.Event{Type: events.EventColorsChanged}); err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	for i, pair := range []struct {
		conn net.Conn
		dec  *json.Decoder
	}{{conn1, dec1}, {conn2, dec2}} {
		msg := readEvent(t, pair.conn, pair.dec)
		if msg.Event == nil || msg.Event.Type != events.EventColorsChanged {
			t.Errorf("Client %d: expected colors_changed, got %+v", i, msg)
		}
	}
}

func TestServer_SequenceIncreases(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	conn, _, dec := connectRawClient(t, socketPath)
	waitForClients(t, server, 1)

	for i := 0; i < 3; i++ {
		if err := server.Broadcast(events.Event{Type: events.EventColorsChanged}); err != nil {
			t.Fatalf("Broadcast failed: %v", err)
		}
	}

	var last int64
	for i := 0; i < 3; i++ {
		msg := readEvent(t, conn, dec)
		if msg.Event.SequenceID <= last {
			t.Errorf("Expected increasing sequence, got %d after %d", msg.Event.SequenceID, last)
		}
		last = msg.Event.SequenceID
	}
}

func TestServer_ClientDisconnectUnregisters(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	conn, _, _ := connectRawClient(t, socketPath)
	waitForClients(t, server, 1)

	_ = conn.Close()
	waitForClients(t, server, 0)

	if got := server.Metrics().ConnectedClients.Load(); got != 0 {
		t.Errorf("Expected 0 connected clients in metrics, got %d", got)
	}
}

func TestServer_ShutdownRemovesSocket(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	if err := server.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := server.Shutdown(); err != nil {
		t.Fatalf("Second shutdown failed: %v", err)
	}

	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Errorf("Expected socket file removed, stat err = %v", err)
	}
}

func TestNewServer_RemovesStaleSocket(t *testing.T) {
	t.Parallel()
	socketPath := filepath.Join(t.TempDir(), "stale.sock")
	if err := os.WriteFile(socketPath, []byte("stale"), 0o600); err != nil {
		t.Fatalf("Failed to write stale file: %v", err)
	}

	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("Expected stale socket to be replaced, got %v", err)
	}
	_ = server.Shutdown()
}

func TestEventsClientThroughDaemon(t *testing.T) {
	t.Parallel()
	server, socketPath := setupTestDaemon(t)

	publisher := events.NewClient(socketPath)
	if err := publisher.Connect(context.Background()); err != nil {
		t.Fatalf("Publisher connect failed: %v", err)
	}
	defer publisher.Close()

	listener := events.NewClient(socketPath)
	if err := listener.Connect(context.Background()); err != nil {
		t.Fatalf("Listener connect failed: %v", err)
	}
	defer listener.Close()
	waitForClients(t, server, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := listener.Listen(ctx)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	if err := publisher.SendEvent(events.Event{Type: events.EventColorsChanged, ColorID: 9}); err != nil {
		t.Fatalf("SendEvent failed: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type != events.EventColorsChanged || evt.ColorID != 9 {
			t.Errorf("Unexpected event: %+v", evt)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for relayed event")
	}
}
