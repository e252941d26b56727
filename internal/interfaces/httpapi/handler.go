package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type Handler struct {
	reportService         *usecase.ReportService
	venueService          *usecase.VenueService
	clubRuleService       *usecase.ClubRuleService
	prizeService          *usecase.PrizeService
	roleService           *usecase.RoleService
	metricsRefreshService *usecase.MetricsRefreshService
	logger                *slog.Logger
	validator             *validator.Validate
}

func NewHandler(
	reportService *usecase.ReportService,
	venueService *usecase.VenueService,
	clubRuleService *usecase.ClubRuleService,
	prizeService *usecase.PrizeService,
	roleService *usecase.RoleService,
	metricsRefreshService *usecase.MetricsRefreshService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		reportService:         reportService,
		venueService:          venueService,
		clubRuleService:       clubRuleService,
		prizeService:          prizeService,
		roleService:           roleService,
		metricsRefreshService: metricsRefreshService,
		logger:                logger,
		validator:             v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeRequest(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func invalidQueryParam(name, value string) error {
	return fmt.Errorf("%w: invalid %s query parameter: %s", usecase.ErrInvalidInput, name, value)
}

// validateRequest writes the field-error envelope itself on failure so
// every handler reports validation problems identically.
func (h *Handler) validateRequest(ctx context.Context, w http.ResponseWriter, payload any) bool {
	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return true
	}

	var fields []fieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields = make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	}

	writeFieldErrors(ctx, w, fmt.Errorf("%w: validation failed", usecase.ErrInvalidInput), fields)
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " is too long"
	case "min":
		return fe.Field() + " is too small"
	case "oneof":
		return fe.Field() + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}
