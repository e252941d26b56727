package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type recordingSink struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (s *recordingSink) Deliver(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return s.err
}

func (s *recordingSink) delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func TestNotifier_DedupWithinWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sink := &recordingSink{}
	notifier := NewNotifier(sink, slog.Default(), WithClock(clock), WithWindow(3*time.Second))

	notifier.Notify(context.Background(), "upstream accounts unavailable")
	now = now.Add(time.Second)
	notifier.Notify(context.Background(), "upstream accounts unavailable")
	now = now.Add(time.Second)
	notifier.Notify(context.Background(), "upstream accounts unavailable")

	if got := sink.delivered(); len(got) != 1 {
		t.Fatalf("expected single delivery within window, got %d: %v", len(got), got)
	}
}

func TestNotifier_DeliversAgainAfterWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sink := &recordingSink{}
	notifier := NewNotifier(sink, slog.Default(), WithClock(clock), WithWindow(3*time.Second))

	notifier.Notify(context.Background(), "upstream accounts unavailable")
	now = now.Add(3 * time.Second)
	notifier.Notify(context.Background(), "upstream accounts unavailable")

	if got := sink.delivered(); len(got) != 2 {
		t.Fatalf("expected redelivery after window, got %d: %v", len(got), got)
	}
}

func TestNotifier_DistinctMessagesNotSuppressed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sink := &recordingSink{}
	notifier := NewNotifier(sink, slog.Default(), WithClock(clock))

	notifier.Notify(context.Background(), "summary fetch failed")
	notifier.Notify(context.Background(), "metrics fetch failed")

	if got := sink.delivered(); len(got) != 2 {
		t.Fatalf("expected both distinct messages delivered, got %d: %v", len(got), got)
	}
}

func TestNotifier_PrunesStaleEntries(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sink := &recordingSink{}
	notifier := NewNotifier(sink, slog.Default(), WithClock(clock), WithWindow(3*time.Second))

	for i := 0; i < 100; i++ {
		notifier.Notify(context.Background(), fmt.Sprintf("alert %d", i))
	}
	now = now.Add(10 * time.Second)
	notifier.Notify(context.Background(), "fresh alert")

	notifier.mu.Lock()
	tracked := len(notifier.lastSent)
	notifier.mu.Unlock()
	if tracked != 1 {
		t.Fatalf("expected stale entries pruned, still tracking %d", tracked)
	}
}

func TestNotifier_SinkFailureIsSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("webhook down")}
	notifier := NewNotifier(sink, slog.Default())

	notifier.Notify(context.Background(), "upstream accounts unavailable")

	if got := sink.delivered(); len(got) != 1 {
		t.Fatalf("expected delivery attempt despite sink error, got %d", len(got))
	}
}

func TestNotifier_EmptyMessageIgnored(t *testing.T) {
	sink := &recordingSink{}
	notifier := NewNotifier(sink, slog.Default())

	notifier.Notify(context.Background(), "   ")

	if got := sink.delivered(); len(got) != 0 {
		t.Fatalf("expected no delivery for blank message, got %v", got)
	}
}

func TestWebhookSink_Deliver(t *testing.T) {
	t.Run("posts json with bearer token", func(t *testing.T) {
		var gotAuth string
		var gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		sink, err := NewWebhookSink(WebhookSinkConfig{
			Endpoint: server.URL,
			Token:    "ops-token",
			Service:  "clubdesk-api",
			Env:      "dev",
		})
		if err != nil {
			t.Fatalf("new webhook sink: %v", err)
		}
		if err := sink.Deliver(context.Background(), "upstream accounts unavailable"); err != nil {
			t.Fatalf("deliver: %v", err)
		}
		if gotAuth != "Bearer ops-token" {
			t.Fatalf("unexpected Authorization header: %q", gotAuth)
		}
		if gotContentType != "application/json" {
			t.Fatalf("unexpected Content-Type header: %q", gotContentType)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		sink, err := NewWebhookSink(WebhookSinkConfig{Endpoint: server.URL})
		if err != nil {
			t.Fatalf("new webhook sink: %v", err)
		}
		if err := sink.Deliver(context.Background(), "msg"); err == nil {
			t.Fatalf("expected error for non-2xx response")
		}
	})

	t.Run("empty endpoint rejected", func(t *testing.T) {
		if _, err := NewWebhookSink(WebhookSinkConfig{Endpoint: "  "}); err == nil {
			t.Fatalf("expected error for empty endpoint")
		}
	})
}
