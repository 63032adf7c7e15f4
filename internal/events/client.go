package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// Client represents a connection to the swatch daemon for live updates.
// It handles event sending, receiving, batching and reconnection.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherOnce sync.Once
	batcherDone chan struct{}
}

// NewClient creates a new event client but does not connect.
// SWATCH_EVENT_DEBOUNCE_MS overrides the 100ms batching window.
func NewClient(socketPath string) *Client {
	debounceMs := 100
	if envVal := os.Getenv("SWATCH_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
}

// Connect dials the daemon socket and starts the batching goroutine.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	// reconnects reuse the running batcher
	c.batcherOnce.Do(func() {
		go c.startBatcher()
	})

	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are coalesced within the debounce window. Non-blocking: returns an
// error when the queue is full or the client is closed.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("client closed")
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return fmt.Errorf("event queue full")
	}
}

// startBatcher drains the queue and sends at most one event per debounce tick.
// A batch holding a single record keeps its ColorID; larger batches send 0.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var pending int
	var colorID int

	flushPending := func() {
		if pending == 0 {
			return
		}
		id := colorID
		if pending > 1 {
			id = 0
		}
		if err := c.sendToSocket(Event{
			Type:      EventColorsChanged,
			ColorID:   id,
			Timestamp: time.Now(),
		}); err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err, "pending", pending)
		}
		pending = 0
		colorID = 0
	}

	for {
		select {
		case <-c.ctx.Done():
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flushPending()
				return
			}
			pending++
			colorID = event.ColorID

		case <-ticker.C:
			flushPending()
		}
	}
}

// sendToSocket encodes a single event message onto the connection.
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("not connected to daemon")
	}

	// Short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msgType := "event"
	if event.Type == EventPong {
		msgType = "pong"
	}

	return c.encoder.Encode(Message{
		Version: ProtocolVersion,
		Type:    msgType,
		Event:   &event,
	})
}

// Listen returns a channel of events from the daemon. Reconnection is handled
// internally; the channel is closed when ctx is done or reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.ctx.Done():
			return
		default:
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}

		slog.Warn("daemon connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			slog.Warn("giving up on daemon reconnect", "attempts", c.maxRetries)
			return
		}
	}
}

// readEvents forwards daemon events to eventChan and answers pings.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return fmt.Errorf("connection closed")
		}
		// Longer than the daemon ping interval, so a silent daemon is detected
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			if c.ctx.Err() != nil {
				return context.Canceled
			}
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			// drop duplicates and replays
			if msg.Event != nil && msg.Event.SequenceID > c.lastSequence {
				c.lastSequence = msg.Event.SequenceID
				select {
				case eventChan <- *msg.Event:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case "ping":
			if err := c.sendToSocket(Event{Type: EventPong}); err != nil && !isConnectionError(err) {
				slog.Debug("failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError reports whether err is an expected disconnect
func isConnectionError(err error) bool {
	return errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}

// reconnect retries Connect with exponential backoff: 1s, 2s, 4s, 8s, 16s.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !isConnectionError(err) {
					slog.Debug("error closing connection during reconnect", "error", err)
				}
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				slog.Info("reconnected to daemon", "attempt", i+1, "max_attempts", c.maxRetries)
				return true
			}

			slog.Debug("reconnect attempt failed", "attempt", i+1, "max_attempts", c.maxRetries, "retry_in", delay)
			delay *= 2
		}
	}

	return false
}

// Close flushes pending events, closes the connection and stops all goroutines.
// Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	started := c.conn != nil
	c.mu.Unlock()

	// batcher flushes on queue close before the connection goes away
	if started {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
