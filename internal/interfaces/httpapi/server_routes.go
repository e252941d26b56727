package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedReportRoutes(mux, handler, verifier)
	registerAuthorizedVenueRoutes(mux, handler, verifier)
	registerAuthorizedClubRuleRoutes(mux, handler, verifier)
	registerAuthorizedPrizeRoutes(mux, handler, verifier)
	registerAuthorizedRoleRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/refresh-metrics", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshMetricsJob)))
}

func registerAuthorizedReportRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/reports/summary", RequireAuth(verifier, http.HandlerFunc(handler.GetReportSummary)))
	mux.Handle("GET /v1/reports/player-collection-metrics", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerCollectionMetrics)))
	mux.Handle("GET /v1/reports/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
}

func registerAuthorizedVenueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/venues", RequireAuth(verifier, http.HandlerFunc(handler.ListVenues)))
	mux.Handle("POST /v1/venues", RequireAuth(verifier, http.HandlerFunc(handler.CreateVenue)))
	mux.Handle("GET /v1/venues/{venueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetVenue)))
	mux.Handle("PUT /v1/venues/{venueID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateVenue)))
}

func registerAuthorizedClubRuleRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/club-rules", RequireAuth(verifier, http.HandlerFunc(handler.ListClubRules)))
	mux.Handle("POST /v1/club-rules", RequireAuth(verifier, http.HandlerFunc(handler.CreateClubRule)))
	mux.Handle("GET /v1/club-rules/{ruleID}", RequireAuth(verifier, http.HandlerFunc(handler.GetClubRule)))
	mux.Handle("PUT /v1/club-rules/{ruleID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateClubRule)))
}

func registerAuthorizedPrizeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/tournaments/{tournamentID}/prizes", RequireAuth(verifier, http.HandlerFunc(handler.ListTournamentPrizes)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/prizes", RequireAuth(verifier, http.HandlerFunc(handler.CreateTournamentPrize)))
	mux.Handle("GET /v1/tournaments/{tournamentID}/prizes/{prizeID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTournamentPrize)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}/prizes/{prizeID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTournamentPrize)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}/prizes/{prizeID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTournamentPrize)))
}

func registerAuthorizedRoleRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/roles", RequireAuth(verifier, http.HandlerFunc(handler.ListRoles)))
	mux.Handle("PUT /v1/roles/{roleID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateRole)))
	mux.Handle("POST /v1/roles/assign", RequireAuth(verifier, http.HandlerFunc(handler.AssignPlayerRoles)))
	mux.Handle("GET /v1/players/{playerID}/roles", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayerRoles)))
}
