package httpapi

import (
	"net/http"
	"strconv"

	"github.com/clubdeskhq/clubdesk/internal/domain/contribution"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type accountSummaryDTO struct {
	TotalCollected float64 `json:"totalCollected"`
	TotalExpenses  float64 `json:"totalExpenses"`
	Balance        float64 `json:"balance"`
	PendingPlayers int     `json:"pendingPlayers"`
}

type monthlyAmountDTO struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

type playerMetricRowDTO struct {
	PlayerID           string             `json:"playerId"`
	PlayerName         string             `json:"playerName"`
	EmployeeID         string             `json:"employeeId,omitempty"`
	Active             bool               `json:"active"`
	TotalContribution  float64            `json:"totalContribution"`
	ActiveMonths       int                `json:"activeMonths"`
	CurrentMonthAmount float64            `json:"currentMonthAmount"`
	Status             string             `json:"status"`
	Due                bool               `json:"due"`
	Contributions      []monthlyAmountDTO `json:"contributions"`
}

type contributionStatsDTO struct {
	TotalPlayers        int     `json:"totalPlayers"`
	ActivePlayers       int     `json:"activePlayers"`
	TotalContributions  float64 `json:"totalContributions"`
	AveragePerPlayer    float64 `json:"averagePerPlayer"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

type playerMetricsReportDTO struct {
	Year           int                  `json:"year"`
	Month          int                  `json:"month"`
	Filter         string               `json:"filter"`
	Players        []playerMetricRowDTO `json:"players"`
	Stats          contributionStatsDTO `json:"stats"`
	AvailableYears []int                `json:"availableYears"`
}

type clubDashboardDTO struct {
	Summary accountSummaryDTO      `json:"summary"`
	Metrics playerMetricsReportDTO `json:"metrics"`
}

func (h *Handler) GetReportSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReportSummary")
	defer span.End()

	summary, err := h.reportService.GetSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get report summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountSummaryToDTO(summary))
}

func (h *Handler) GetPlayerCollectionMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCollectionMetrics")
	defer span.End()

	query, err := metricsQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.GetPlayerCollectionMetrics(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "get player collection metrics failed", "year", query.Year, "month", query.Month, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, metricsReportToDTO(report))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	query, err := metricsQueryFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.reportService.GetDashboard(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "get dashboard failed", "year", query.Year, "month", query.Month, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubDashboardDTO{
		Summary: accountSummaryToDTO(dashboard.Summary),
		Metrics: metricsReportToDTO(dashboard.Metrics),
	})
}

func metricsQueryFromRequest(r *http.Request) (usecase.PlayerMetricsQuery, error) {
	query := usecase.PlayerMetricsQuery{
		Filter: contribution.FilterMode(r.URL.Query().Get("filter")),
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.PlayerMetricsQuery{}, invalidQueryParam("year", raw)
		}
		query.Year = year
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.PlayerMetricsQuery{}, invalidQueryParam("month", raw)
		}
		query.Month = month
	}

	return query, nil
}

func accountSummaryToDTO(summary usecase.AccountSummary) accountSummaryDTO {
	return accountSummaryDTO{
		TotalCollected: summary.TotalCollected,
		TotalExpenses:  summary.TotalExpenses,
		Balance:        summary.Balance,
		PendingPlayers: summary.PendingPlayers,
	}
}

func metricsReportToDTO(report usecase.PlayerMetricsReport) playerMetricsReportDTO {
	players := make([]playerMetricRowDTO, 0, len(report.Rows))
	for _, row := range report.Rows {
		contributions := make([]monthlyAmountDTO, 0, len(row.Player.Amounts))
		for _, entry := range contribution.History(row.Player, report.Year) {
			contributions = append(contributions, monthlyAmountDTO{
				Year:   entry.Year,
				Month:  entry.Month,
				Amount: entry.Amount,
			})
		}

		players = append(players, playerMetricRowDTO{
			PlayerID:           row.Player.PlayerID,
			PlayerName:         row.Player.PlayerName,
			EmployeeID:         row.Player.EmployeeID,
			Active:             row.Player.Active,
			TotalContribution:  row.Stats.TotalContribution,
			ActiveMonths:       row.Stats.ActiveMonths,
			CurrentMonthAmount: row.Stats.CurrentMonthAmount,
			Status:             row.Stats.Status,
			Due:                row.Due,
			Contributions:      contributions,
		})
	}

	return playerMetricsReportDTO{
		Year:    report.Year,
		Month:   report.Month,
		Filter:  string(report.Filter),
		Players: players,
		Stats: contributionStatsDTO{
			TotalPlayers:        report.Stats.TotalPlayers,
			ActivePlayers:       report.Stats.ActivePlayers,
			TotalContributions:  report.Stats.TotalContributions,
			AveragePerPlayer:    report.Stats.AveragePerPlayer,
			MonthlyContribution: report.Stats.MonthlyContribution,
		},
		AvailableYears: report.AvailableYears,
	}
}
