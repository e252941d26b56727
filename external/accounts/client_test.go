package accounts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/clubdeskhq/clubdesk/internal/platform/resilience"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) Notify(_ context.Context, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *recordingAlerter) delivered() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.messages))
	copy(out, a.messages)
	return out
}

func newTestClient(t *testing.T, handler http.HandlerFunc, alerter Alerter) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		Token:          "accounts-token",
		MaxRetries:     0,
		Alerter:        alerter,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
	return client, server
}

func TestClient_FetchSummary(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/reports/summary" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"statusCode": 200,
			"status": "OK",
			"message": "success",
			"content": {"totalCollected": 125000, "totalExpenses": 40000, "balance": 85000, "pendingPlayers": 3}
		}`))
	}, nil)

	summary, err := client.FetchSummary(context.Background())
	if err != nil {
		t.Fatalf("fetch summary: %v", err)
	}
	if gotAuth != "Bearer accounts-token" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if summary.TotalCollected != 125000 {
		t.Fatalf("unexpected total collected: %v", summary.TotalCollected)
	}
	if summary.Balance != 85000 {
		t.Fatalf("unexpected balance: %v", summary.Balance)
	}
	if summary.PendingPlayers != 3 {
		t.Fatalf("unexpected pending players: %d", summary.PendingPlayers)
	}
}

func TestClient_FetchPlayerCollectionMetrics(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("year"); got != "2025" {
			t.Errorf("unexpected year query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"statusCode": 200,
			"status": "OK",
			"message": "success",
			"content": {
				"players": [
					{
						"playerId": "p-1",
						"playerName": "Dimas",
						"employeeId": "E-100",
						"active": true,
						"contributions": [
							{"year": 2025, "month": 1, "amount": 500},
							{"year": 2025, "month": 13, "amount": 999}
						]
					}
				],
				"availableYears": [2024, 2025]
			}
		}`))
	}, nil)

	report, err := client.FetchPlayerCollectionMetrics(context.Background(), 2025)
	if err != nil {
		t.Fatalf("fetch metrics: %v", err)
	}
	if len(report.Players) != 1 {
		t.Fatalf("expected one player, got %d", len(report.Players))
	}
	player := report.Players[0]
	if player.PlayerID != "p-1" || player.EmployeeID != "E-100" {
		t.Fatalf("unexpected player identity: %+v", player)
	}
	// The month-13 row is invalid and must be dropped, not surfaced.
	if len(player.Amounts) != 1 {
		t.Fatalf("expected invalid month rows dropped, got %d rows", len(player.Amounts))
	}
	if len(report.AvailableYears) != 2 {
		t.Fatalf("unexpected available years: %v", report.AvailableYears)
	}
}

func TestClient_FetchPlayerCollectionMetrics_RejectsNonPositiveYear(t *testing.T) {
	client := NewClient(ClientConfig{CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false}})
	if _, err := client.FetchPlayerCollectionMetrics(context.Background(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_ErrorMessagePrecedence(t *testing.T) {
	t.Run("field errors joined first", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"statusCode": 400,
				"status": "BAD_REQUEST",
				"message": "validation failed",
				"errors": [
					{"field": "name", "message": "name is required"},
					{"field": "address", "message": "address is required"}
				]
			}`))
		}, nil)

		_, err := client.FetchSummary(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
		if !strings.Contains(err.Error(), "name is required, address is required") {
			t.Fatalf("expected joined field errors, got %q", err.Error())
		}
	})

	t.Run("top-level message second", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"statusCode": 409, "status": "CONFLICT", "message": "venue already exists"}`))
		}, nil)

		_, err := client.FetchSummary(context.Background())
		if err == nil || !strings.Contains(err.Error(), "venue already exists") {
			t.Fatalf("expected top-level message, got %v", err)
		}
	})

	t.Run("bare 500 synthesizes endpoint message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, nil)

		_, err := client.FetchSummary(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
		if !strings.Contains(err.Error(), "internal server error for API /reports/summary") {
			t.Fatalf("expected synthesized 500 message, got %q", err.Error())
		}
	})

	t.Run("status text fallback", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{}`))
		}, nil)

		_, err := client.FetchSummary(context.Background())
		if err == nil || !strings.Contains(err.Error(), http.StatusText(http.StatusUnprocessableEntity)) {
			t.Fatalf("expected status text fallback, got %v", err)
		}
	})
}

func TestClient_UpstreamStatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "401 maps to unauthorized", status: http.StatusUnauthorized, sentinel: usecase.ErrUnauthorized},
		{name: "403 maps to forbidden", status: http.StatusForbidden, sentinel: usecase.ErrForbidden},
		{name: "404 maps to not found", status: http.StatusNotFound, sentinel: usecase.ErrNotFound},
		{name: "400 maps to invalid input", status: http.StatusBadRequest, sentinel: usecase.ErrInvalidInput},
		{name: "503 maps to dependency unavailable", status: http.StatusServiceUnavailable, sentinel: usecase.ErrDependencyUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}, nil)

			_, err := client.FetchSummary(context.Background())
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected sentinel %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestClient_FailuresRaiseAlerts(t *testing.T) {
	alerter := &recordingAlerter{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, alerter)

	if _, err := client.FetchSummary(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if got := alerter.delivered(); len(got) != 1 {
		t.Fatalf("expected one alert, got %d: %v", len(got), got)
	}
}
