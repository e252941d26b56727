package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clubdeskhq/clubdesk/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogging_AccessLogReachesPlatformMirror(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	previous := logging.Default()
	logging.SetDefault(logging.FromZap(zap.New(core)))
	t.Cleanup(func() { logging.SetDefault(previous) })

	type mirroredEntry struct {
		msg  string
		args []any
	}
	var captured []mirroredEntry
	logging.SetMirror(func(_ context.Context, _ logging.Level, msg string, args ...any) {
		captured = append(captured, mirroredEntry{msg: msg, args: args})
	})
	t.Cleanup(func() { logging.SetMirror(nil) })

	handler := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/venues", nil))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if got := logs.FilterMessage("http_request").Len(); got != 1 {
		t.Fatalf("expected one access log entry, got %d", got)
	}
	if len(captured) != 1 {
		t.Fatalf("expected the access log to reach the mirror, got %d entries", len(captured))
	}
	if captured[0].msg != "http_request" {
		t.Fatalf("unexpected mirrored message: %q", captured[0].msg)
	}

	path := ""
	method := ""
	for i := 0; i+1 < len(captured[0].args); i += 2 {
		key, ok := captured[0].args[i].(string)
		if !ok {
			continue
		}
		switch key {
		case "http_path":
			path, _ = captured[0].args[i+1].(string)
		case "http_method":
			method, _ = captured[0].args[i+1].(string)
		}
	}
	if path != "/v1/venues" {
		t.Fatalf("expected http_path field on the mirrored access log, got %q", path)
	}
	if method != http.MethodGet {
		t.Fatalf("expected http_method field on the mirrored access log, got %q", method)
	}
}
