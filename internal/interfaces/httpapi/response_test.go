package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["statusCode"].(float64); int(got) != http.StatusOK {
		t.Fatalf("expected statusCode=200, got %v", body["statusCode"])
	}
	if got, _ := body["status"].(string); got != "OK" {
		t.Fatalf("expected status OK, got %v", body["status"])
	}
	if got, _ := body["message"].(string); got != "success" {
		t.Fatalf("expected message success, got %v", body["message"])
	}
	if _, ok := body["content"]; !ok {
		t.Fatal("expected content key in success response")
	}
	if _, ok := body["errors"]; ok {
		t.Fatal("did not expect errors key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantHTTP   int
		wantStatus string
	}{
		{"invalid input", fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"not found", fmt.Errorf("%w: venue=ghost", usecase.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", fmt.Errorf("%w: missing token", usecase.ErrUnauthorized), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", fmt.Errorf("%w: not allowed", usecase.ErrForbidden), http.StatusForbidden, "PERMISSION_DENIED"},
		{"dependency unavailable", fmt.Errorf("%w: accounts down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tc.err)

			if rec.Code != tc.wantHTTP {
				t.Fatalf("expected status %d, got %d", tc.wantHTTP, rec.Code)
			}

			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if got, _ := body["status"].(string); got != tc.wantStatus {
				t.Fatalf("expected status %s, got %v", tc.wantStatus, body["status"])
			}
		})
	}
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused"))

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["message"].(string); got != "internal server error" {
		t.Fatalf("internal errors must not leak details, got %q", got)
	}
}

func TestWriteFieldErrors_CarriesFieldsVerbatim(t *testing.T) {
	rec := httptest.NewRecorder()
	fields := []fieldError{
		{Field: "name", Message: "name is required"},
		{Field: "address", Message: "address is required"},
	}
	writeFieldErrors(context.Background(), rec, fmt.Errorf("%w: validation failed", usecase.ErrInvalidInput), fields)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body struct {
		Errors []fieldError `json:"errors"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Errors))
	}
	if body.Errors[0].Field != "name" || body.Errors[0].Message != "name is required" {
		t.Fatalf("unexpected first field error: %+v", body.Errors[0])
	}
}
