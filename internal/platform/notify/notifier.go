package notify

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Sink delivers a single alert message.
type Sink interface {
	Deliver(ctx context.Context, message string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, message string) error

func (f SinkFunc) Deliver(ctx context.Context, message string) error {
	return f(ctx, message)
}

const defaultDedupWindow = 3 * time.Second

// Notifier suppresses duplicate alerts: an identical message seen again
// within the dedup window is dropped. Keyed by exact message text.
type Notifier struct {
	sink   Sink
	window time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu       sync.Mutex
	lastSent map[string]time.Time
}

type Option func(*Notifier)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

func WithWindow(window time.Duration) Option {
	return func(n *Notifier) {
		if window > 0 {
			n.window = window
		}
	}
}

func NewNotifier(sink Sink, logger *slog.Logger, opts ...Option) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Notifier{
		sink:     sink,
		window:   defaultDedupWindow,
		now:      time.Now,
		logger:   logger,
		lastSent: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify delivers the message unless an identical one went out within the
// dedup window. Delivery failures are logged and dropped, never returned.
func (n *Notifier) Notify(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}

	if !n.shouldSend(message) {
		return
	}

	if n.sink == nil {
		return
	}
	if err := n.sink.Deliver(ctx, message); err != nil {
		n.logger.WarnContext(ctx, "alert delivery failed", "error", err)
	}
}

func (n *Notifier) shouldSend(message string) bool {
	now := n.now()

	n.mu.Lock()
	defer n.mu.Unlock()

	if sentAt, ok := n.lastSent[message]; ok && now.Sub(sentAt) < n.window {
		return false
	}

	n.pruneLocked(now)
	n.lastSent[message] = now
	return true
}

// pruneLocked drops entries older than the window so the map stays bounded
// by the number of distinct messages seen within one window.
func (n *Notifier) pruneLocked(now time.Time) {
	for msg, sentAt := range n.lastSent {
		if now.Sub(sentAt) >= n.window {
			delete(n.lastSent, msg)
		}
	}
}
