package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type clubRuleUpsertRequest struct {
	Description string `json:"description" validate:"required,max=500"`
}

type clubRuleDTO struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *Handler) ListClubRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubRules")
	defer span.End()

	rules, err := h.clubRuleService.ListClubRules(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list club rules failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubRuleDTO, 0, len(rules))
	for _, item := range rules {
		items = append(items, clubRuleToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClubRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubRule")
	defer span.End()

	ruleID := strings.TrimSpace(r.PathValue("ruleID"))
	item, err := h.clubRuleService.GetClubRule(ctx, ruleID)
	if err != nil {
		h.logger.WarnContext(ctx, "get club rule failed", "rule_id", ruleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubRuleToDTO(item))
}

func (h *Handler) CreateClubRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClubRule")
	defer span.End()

	var req clubRuleUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	created, err := h.clubRuleService.CreateClubRule(ctx, usecase.CreateClubRuleInput{
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club rule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubRuleToDTO(created))
}

func (h *Handler) UpdateClubRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClubRule")
	defer span.End()

	ruleID := strings.TrimSpace(r.PathValue("ruleID"))
	var req clubRuleUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	updated, err := h.clubRuleService.UpdateClubRule(ctx, usecase.UpdateClubRuleInput{
		RuleID:      ruleID,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update club rule failed", "rule_id", ruleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubRuleToDTO(updated))
}

func clubRuleToDTO(item clubrule.ClubRule) clubRuleDTO {
	return clubRuleDTO{
		ID:          item.ID,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
