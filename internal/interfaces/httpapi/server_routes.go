package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)

	mux.HandleFunc("GET /v1/league", handler.GetLeague)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/standings/leader", handler.GetLeader)
	mux.HandleFunc("GET /v1/standings/chances/{teamID}", handler.GetTitleChances)
	mux.HandleFunc("GET /v1/topscorers", handler.GetTopScorers)
	mux.HandleFunc("GET /v1/season", handler.GetSeason)
	mux.HandleFunc("GET /v1/season/stats", handler.GetSeasonStats)
	mux.HandleFunc("GET /v1/archives", handler.ListArchives)
	mux.HandleFunc("GET /v1/archives/hall-of-fame", handler.GetHallOfFame)
	mux.HandleFunc("GET /v1/cups", handler.ListCups)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("PUT /v1/settings", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateSettings)))

	mux.Handle("POST /v1/seasons", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSeason)))
	mux.Handle("POST /v1/season/complete", RequireAdmin(verifier, http.HandlerFunc(handler.CompleteSeason)))
	mux.Handle("POST /v1/season/players", RequireAdmin(verifier, http.HandlerFunc(handler.AddPlayer)))
	mux.Handle("DELETE /v1/season/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.RemovePlayer)))
	mux.Handle("POST /v1/season/matches", RequireAdmin(verifier, http.HandlerFunc(handler.AddMatch)))
	mux.Handle("PUT /v1/season/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/season/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("PUT /v1/season/teams/{teamID}/logo", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateTeamLogo)))

	mux.Handle("POST /v1/cups", RequireAdmin(verifier, http.HandlerFunc(handler.CreateCup)))
	mux.Handle("PUT /v1/cups/{cupID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateCup)))
	mux.Handle("DELETE /v1/cups/{cupID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteCup)))

	// Bulk re-push of the season archive to the external backup endpoint.
	mux.Handle("POST /v1/admin/archives/export", RequireAdmin(verifier, http.HandlerFunc(handler.ExportArchives)))
}
