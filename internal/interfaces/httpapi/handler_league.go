package httpapi

import (
	"net/http"
	"strings"
)

// leagueDTO is the public league view. The admin password stays out of every
// response even though it lives on the same settings struct.
type leagueDTO struct {
	LeagueName      string `json:"leagueName"`
	BackgroundVideo string `json:"backgroundVideo,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	HasActiveSeason bool   `json:"hasActiveSeason"`
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	settings := h.queryService.Settings(ctx)
	_, hasSeason := h.queryService.CurrentSeason(ctx)

	writeSuccess(ctx, w, http.StatusOK, leagueDTO{
		LeagueName:      settings.LeagueName,
		BackgroundVideo: settings.BackgroundVideo,
		BackgroundImage: settings.BackgroundImage,
		HasActiveSeason: hasSeason,
	})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	standings, err := h.queryService.GetStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standings)
}

func (h *Handler) GetLeader(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeader")
	defer span.End()

	leader, err := h.queryService.GetLeaderInfo(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get leader failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leader)
}

func (h *Handler) GetTitleChances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTitleChances")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	writeSuccess(ctx, w, http.StatusOK, h.queryService.GetProbability(ctx, teamID))
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
	defer span.End()

	scorers, err := h.queryService.GetTopScorers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorers)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	current, ok := h.queryService.CurrentSeason(ctx)
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, current)
}

func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStats")
	defer span.End()

	stats, err := h.statsService.SeasonStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get season stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}
