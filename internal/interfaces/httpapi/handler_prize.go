package httpapi

import (
	"net/http"
	"strings"

	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type prizeUpsertRequest struct {
	Type         string   `json:"type" validate:"required,oneof=TEAM PLAYER"`
	TeamID       string   `json:"teamId,omitempty"`
	TeamName     string   `json:"teamName,omitempty"`
	PlayerID     string   `json:"playerId,omitempty"`
	PlayerName   string   `json:"playerName,omitempty"`
	EmployeeID   string   `json:"employeeId,omitempty"`
	PositionRank int      `json:"positionRank" validate:"required,min=1"`
	Amount       float64  `json:"amount" validate:"min=0"`
	Category     string   `json:"category" validate:"max=100"`
	Description  string   `json:"description" validate:"max=500"`
	ImageLinks   []string `json:"imageLinks" validate:"max=10,dive,required,max=500"`
}

type prizeBadgeDTO struct {
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Label    string `json:"label"`
	ShowRank bool   `json:"showRank"`
}

type prizeDTO struct {
	ID           string        `json:"id"`
	TournamentID string        `json:"tournamentId"`
	Type         string        `json:"type"`
	TeamID       string        `json:"teamId,omitempty"`
	TeamName     string        `json:"teamName,omitempty"`
	PlayerID     string        `json:"playerId,omitempty"`
	PlayerName   string        `json:"playerName,omitempty"`
	EmployeeID   string        `json:"employeeId,omitempty"`
	PositionRank int           `json:"positionRank"`
	Amount       float64       `json:"amount"`
	Category     string        `json:"category,omitempty"`
	Description  string        `json:"description,omitempty"`
	ImageLinks   []string      `json:"imageLinks,omitempty"`
	Badge        prizeBadgeDTO `json:"badge"`
}

func (h *Handler) ListTournamentPrizes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentPrizes")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	filter := prize.ListFilter{
		Type:     prize.Type(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type")))),
		TeamID:   strings.TrimSpace(r.URL.Query().Get("teamId")),
		PlayerID: strings.TrimSpace(r.URL.Query().Get("playerId")),
	}

	prizes, err := h.prizeService.ListTournamentPrizes(ctx, tournamentID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list tournament prizes failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]prizeDTO, 0, len(prizes))
	for _, item := range prizes {
		items = append(items, prizeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournamentPrize(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentPrize")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	prizeID := strings.TrimSpace(r.PathValue("prizeID"))
	item, err := h.prizeService.GetTournamentPrize(ctx, tournamentID, prizeID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament prize failed", "tournament_id", tournamentID, "prize_id", prizeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizeToDTO(item))
}

func (h *Handler) CreateTournamentPrize(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournamentPrize")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	var req prizeUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	created, err := h.prizeService.CreateTournamentPrize(ctx, usecase.CreatePrizeInput{
		TournamentID: tournamentID,
		Type:         prize.Type(req.Type),
		TeamID:       req.TeamID,
		TeamName:     req.TeamName,
		PlayerID:     req.PlayerID,
		PlayerName:   req.PlayerName,
		EmployeeID:   req.EmployeeID,
		PositionRank: req.PositionRank,
		Amount:       req.Amount,
		Category:     prize.Category(req.Category),
		Description:  req.Description,
		ImageLinks:   req.ImageLinks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament prize failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, prizeToDTO(created))
}

func (h *Handler) UpdateTournamentPrize(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournamentPrize")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	prizeID := strings.TrimSpace(r.PathValue("prizeID"))
	var req prizeUpsertRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	updated, err := h.prizeService.UpdateTournamentPrize(ctx, usecase.UpdatePrizeInput{
		TournamentID: tournamentID,
		PrizeID:      prizeID,
		Type:         prize.Type(req.Type),
		TeamID:       req.TeamID,
		TeamName:     req.TeamName,
		PlayerID:     req.PlayerID,
		PlayerName:   req.PlayerName,
		EmployeeID:   req.EmployeeID,
		PositionRank: req.PositionRank,
		Amount:       req.Amount,
		Category:     prize.Category(req.Category),
		Description:  req.Description,
		ImageLinks:   req.ImageLinks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update tournament prize failed", "tournament_id", tournamentID, "prize_id", prizeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prizeToDTO(updated))
}

func (h *Handler) DeleteTournamentPrize(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournamentPrize")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	prizeID := strings.TrimSpace(r.PathValue("prizeID"))
	if err := h.prizeService.DeleteTournamentPrize(ctx, tournamentID, prizeID); err != nil {
		h.logger.WarnContext(ctx, "delete tournament prize failed", "tournament_id", tournamentID, "prize_id", prizeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nil)
}

func prizeToDTO(item prize.Prize) prizeDTO {
	badge := prize.BadgeFor(item.Category, item.PositionRank)

	return prizeDTO{
		ID:           item.ID,
		TournamentID: item.TournamentID,
		Type:         string(item.Type),
		TeamID:       item.TeamID,
		TeamName:     item.TeamName,
		PlayerID:     item.PlayerID,
		PlayerName:   item.PlayerName,
		EmployeeID:   item.EmployeeID,
		PositionRank: item.PositionRank,
		Amount:       item.Amount,
		Category:     string(item.Category),
		Description:  item.Description,
		ImageLinks:   item.ImageLinks,
		Badge: prizeBadgeDTO{
			Icon:     badge.Icon,
			Color:    badge.Color,
			Label:    badge.Label,
			ShowRank: badge.ShowRank,
		},
	}
}
