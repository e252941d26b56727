package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubdeskhq/clubdesk/internal/domain/contribution"
	"github.com/clubdeskhq/clubdesk/internal/domain/user"
	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/memory"
	basecache "github.com/clubdeskhq/clubdesk/internal/platform/cache"
	idgen "github.com/clubdeskhq/clubdesk/internal/platform/id"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type fixedAccountsProvider struct{}

func (fixedAccountsProvider) FetchSummary(_ context.Context) (usecase.AccountSummary, error) {
	return usecase.AccountSummary{TotalCollected: 900000, TotalExpenses: 400000, Balance: 500000, PendingPlayers: 1}, nil
}

func (fixedAccountsProvider) FetchPlayerCollectionMetrics(_ context.Context, year int) (usecase.AccountMetricsReport, error) {
	return usecase.AccountMetricsReport{
		Players: []contribution.PlayerMetric{
			{
				PlayerID:   "player-dimas",
				PlayerName: "Dimas Prasetyo",
				Active:     true,
				Amounts: []contribution.MonthlyAmount{
					{Year: year, Month: 1, Amount: 50000},
				},
			},
		},
		AvailableYears: []int{year},
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	generator := idgen.NewRandomGenerator()

	reportService := usecase.NewReportService(fixedAccountsProvider{}, basecache.NewStore(time.Minute))
	handler := NewHandler(
		reportService,
		usecase.NewVenueService(memory.NewVenueRepository(memory.SeedVenues()), generator),
		usecase.NewClubRuleService(memory.NewClubRuleRepository(memory.SeedClubRules()), generator),
		usecase.NewPrizeService(memory.NewPrizeRepository(memory.SeedPrizes()), generator),
		usecase.NewRoleService(memory.NewRoleRepository(memory.SeedRoles())),
		usecase.NewMetricsRefreshService(reportService, 2),
		logger,
	)

	verifier := staticVerifier{
		token:     "valid-token",
		principal: user.Principal{UserID: "user-admin", Roles: []string{"ADMIN"}},
	}

	return NewRouter(handler, verifier, logger, []string{"*"}, "job-secret")
}

func doJSONRequest(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope from %s %s: %v", method, path, err)
	}
	return rec, envelope
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got, _ := envelope["status"].(string); got != "OK" {
		t.Fatalf("unexpected status: %v", envelope["status"])
	}
}

func TestRouter_VenueRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/v1/venues", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if got, _ := envelope["status"].(string); got != "UNAUTHENTICATED" {
		t.Fatalf("unexpected status: %v", envelope["status"])
	}
}

func TestRouter_ListVenues(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/v1/venues", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	content, ok := envelope["content"].([]any)
	if !ok {
		t.Fatalf("expected content array, got %T", envelope["content"])
	}
	if len(content) != 3 {
		t.Fatalf("expected 3 seeded venues, got %d", len(content))
	}
}

func TestRouter_CreateVenue_ValidationFieldErrors(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodPost, "/v1/venues", "valid-token", `{"name":"","address":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	fields, ok := envelope["errors"].([]any)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", envelope["errors"])
	}
	first, _ := fields[0].(map[string]any)
	if got, _ := first["field"].(string); got != "name" {
		t.Fatalf("expected json field names in errors, got %v", first["field"])
	}
	if got, _ := first["message"].(string); got != "name is required" {
		t.Fatalf("unexpected field message: %v", first["message"])
	}
}

func TestRouter_CreateVenue_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSONRequest(t, router, http.MethodPost, "/v1/venues", "valid-token", `{"name":"A","address":"B","surprise":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_VenueCreateThenGet(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodPost, "/v1/venues", "valid-token",
		`{"name":"Gelora Mini","address":"Jl. Merdeka 17, Bandung","active":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	content, _ := envelope["content"].(map[string]any)
	venueID, _ := content["id"].(string)
	if venueID == "" {
		t.Fatalf("expected generated venue id, got %v", content)
	}

	rec, envelope = doJSONRequest(t, router, http.MethodGet, "/v1/venues/"+venueID, "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	content, _ = envelope["content"].(map[string]any)
	if got, _ := content["name"].(string); got != "Gelora Mini" {
		t.Fatalf("unexpected venue name: %v", content["name"])
	}
}

func TestRouter_GetVenue_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/v1/venues/ghost", "valid-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got, _ := envelope["status"].(string); got != "NOT_FOUND" {
		t.Fatalf("unexpected status: %v", envelope["status"])
	}
}

func TestRouter_PrizeListCarriesBadges(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/v1/tournaments/"+memory.TournamentIDAnniversaryCup+"/prizes", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	content, _ := envelope["content"].([]any)
	if len(content) != 3 {
		t.Fatalf("expected 3 seeded prizes, got %d", len(content))
	}

	first, _ := content[0].(map[string]any)
	badge, _ := first["badge"].(map[string]any)
	if got, _ := badge["label"].(string); got != "1st Place" {
		t.Fatalf("champion prize must carry the 1st place badge, got %v", badge)
	}
}

func TestRouter_PrizeListFilterByType(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet,
		"/v1/tournaments/"+memory.TournamentIDAnniversaryCup+"/prizes?type=player", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	content, _ := envelope["content"].([]any)
	if len(content) != 1 {
		t.Fatalf("expected 1 player prize, got %d", len(content))
	}
}

func TestRouter_ReportSummary(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSONRequest(t, router, http.MethodGet, "/v1/reports/summary", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	content, _ := envelope["content"].(map[string]any)
	if got, _ := content["balance"].(float64); got != 500000 {
		t.Fatalf("unexpected balance: %v", content["balance"])
	}
}

func TestRouter_PlayerCollectionMetrics_BadMonth(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSONRequest(t, router, http.MethodGet, "/v1/reports/player-collection-metrics?month=13", "valid-token", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_RefreshMetricsJob_InternalToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-metrics", strings.NewReader(`{"years":[2026]}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Content usecase.RefreshMetricsResult `json:"content"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal refresh result: %v", err)
	}
	if envelope.Content.SuccessCount != 1 {
		t.Fatalf("expected one refreshed year, got %+v", envelope.Content)
	}
}

func TestRouter_RefreshMetricsJob_RejectsWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/refresh-metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
