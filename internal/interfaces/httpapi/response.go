package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type responseEnvelope struct {
	StatusCode int          `json:"statusCode"`
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Content    any          `json:"content,omitempty"`
	Errors     []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, content any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		StatusCode: status,
		Status:     "OK",
		Message:    "success",
		Content:    content,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeFieldErrors(ctx, w, err, nil)
}

// writeFieldErrors emits the error envelope. Field errors, when present,
// are carried verbatim so API consumers can attach them to form inputs.
func writeFieldErrors(ctx context.Context, w http.ResponseWriter, err error, fields []fieldError) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	msg := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError {
		msg = "internal server error"
	}
	writeJSON(ctx, w, mapped.HTTPStatus, responseEnvelope{
		StatusCode: mapped.HTTPStatus,
		Status:     mapped.Status,
		Message:    msg,
		Errors:     fields,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, responseEnvelope{
		StatusCode: http.StatusInternalServerError,
		Status:     "INTERNAL",
		Message:    "internal server error",
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{
			HTTPStatus: http.StatusForbidden,
			Status:     "PERMISSION_DENIED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Status:     "INTERNAL",
		}
	}
}
