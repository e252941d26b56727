package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type venueUpsertRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Address string `json:"address" validate:"required,max=250"`
	Active  bool   `json:"active"`
}

type venueDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	venues, err := h.venueService.ListVenues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueDTO, 0, len(venues))
	for _, item := range venues {
		items = append(items, venueToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVenue")
	defer span.End()

	venueID := strings.TrimSpace(r.PathValue("venueID"))
	item, err := h.venueService.GetVenue(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get venue failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(item))
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVenue")
	defer span.End()

	var req venueUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	created, err := h.venueService.CreateVenue(ctx, usecase.CreateVenueInput{
		Name:    req.Name,
		Address: req.Address,
		Active:  req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create venue failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, venueToDTO(created))
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateVenue")
	defer span.End()

	venueID := strings.TrimSpace(r.PathValue("venueID"))
	var req venueUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	updated, err := h.venueService.UpdateVenue(ctx, usecase.UpdateVenueInput{
		VenueID: venueID,
		Name:    req.Name,
		Address: req.Address,
		Active:  req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update venue failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(updated))
}

func venueToDTO(item venue.Venue) venueDTO {
	return venueDTO{
		ID:        item.ID,
		Name:      item.Name,
		Address:   item.Address,
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
