package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type refreshMetricsJobRequest struct {
	Years      []int `json:"years" validate:"max=20,dive,min=1"`
	MaxWorkers int   `json:"maxWorkers" validate:"min=0,max=32"`
}

func (h *Handler) RunRefreshMetricsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshMetricsJob")
	defer span.End()

	if h.metricsRefreshService == nil {
		writeError(ctx, w, fmt.Errorf("%w: metrics refresh service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodeRefreshMetricsJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	result, err := h.metricsRefreshService.Run(ctx, usecase.RefreshMetricsInput{
		Years:      req.Years,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run refresh metrics job failed", "years", req.Years, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// decodeRefreshMetricsJobRequest tolerates an empty body so schedulers can
// POST without a payload.
func decodeRefreshMetricsJobRequest(r *http.Request) (refreshMetricsJobRequest, error) {
	var req refreshMetricsJobRequest

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return refreshMetricsJobRequest{}, nil
		}
		return refreshMetricsJobRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
