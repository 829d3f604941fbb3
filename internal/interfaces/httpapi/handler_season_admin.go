package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/usecase"
)

type createSeasonRequest struct {
	Name  string              `json:"name" validate:"required,max=100"`
	Teams []createTeamRequest `json:"teams" validate:"required,min=2,dive"`
}

type createTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Logo string `json:"logo"`
}

type addPlayerRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	TeamID string `json:"teamId" validate:"required"`
}

type goalEventRequest struct {
	PlayerID       string `json:"playerId" validate:"required"`
	TeamID         string `json:"teamId" validate:"required"`
	Minute         int    `json:"minute" validate:"gte=1,lte=120"`
	IsOwnGoal      bool   `json:"isOwnGoal"`
	AssistPlayerID string `json:"assistPlayerId"`
}

type cardEventRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Minute   int    `json:"minute" validate:"gte=1,lte=120"`
	Kind     string `json:"type" validate:"required,oneof=yellow red"`
}

type matchRequest struct {
	HomeTeamID string             `json:"homeTeamId" validate:"required"`
	AwayTeamID string             `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	HomeScore  int                `json:"homeScore" validate:"gte=0"`
	AwayScore  int                `json:"awayScore" validate:"gte=0"`
	Date       string             `json:"date" validate:"required"`
	Played     bool               `json:"played"`
	Goals      []goalEventRequest `json:"goals" validate:"dive"`
	Cards      []cardEventRequest `json:"cards" validate:"dive"`
	Notes      string             `json:"notes"`
	Matchday   int                `json:"matchday" validate:"gte=0"`
}

type matchUpdateRequest struct {
	HomeTeamID *string             `json:"homeTeamId" validate:"omitempty,min=1"`
	AwayTeamID *string             `json:"awayTeamId" validate:"omitempty,min=1"`
	HomeScore  *int                `json:"homeScore" validate:"omitempty,gte=0"`
	AwayScore  *int                `json:"awayScore" validate:"omitempty,gte=0"`
	Date       *string             `json:"date" validate:"omitempty,min=1"`
	Played     *bool               `json:"played"`
	Goals      *[]goalEventRequest `json:"goals" validate:"omitempty,dive"`
	Cards      *[]cardEventRequest `json:"cards" validate:"omitempty,dive"`
	Notes      *string             `json:"notes"`
	Matchday   *int                `json:"matchday" validate:"omitempty,gte=0"`
}

type updateLogoRequest struct {
	Logo string `json:"logo"`
}

type updateSettingsRequest struct {
	LeagueName      *string `json:"leagueName" validate:"omitempty,min=1,max=100"`
	BackgroundVideo *string `json:"backgroundVideo"`
	BackgroundImage *string `json:"backgroundImage"`
	AdminPassword   *string `json:"adminPassword" validate:"omitempty,min=4"`
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams := make([]usecase.TeamInput, 0, len(req.Teams))
	for _, team := range req.Teams {
		teams = append(teams, usecase.TeamInput{Name: team.Name, Logo: team.Logo})
	}

	created, err := h.seasonService.CreateSeason(ctx, req.Name, teams)
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, created)
}

func (h *Handler) CompleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteSeason")
	defer span.End()

	result, err := h.seasonService.CompleteSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "complete season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"season":            result.Archived,
		"remainingUnplayed": result.RemainingUnplayed,
	})
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.seasonService.AddPlayer(ctx, usecase.PlayerInput{Name: req.Name, TeamID: req.TeamID})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, player)
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.seasonService.RemovePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) AddMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	added, err := h.seasonService.AddMatch(ctx, usecase.MatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Date:       req.Date,
		Played:     req.Played,
		Goals:      goalEventsFromRequest(req.Goals),
		Cards:      cardEventsFromRequest(req.Cards),
		Notes:      req.Notes,
		Matchday:   req.Matchday,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, added)
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req matchUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.HomeTeamID != nil && req.AwayTeamID != nil && *req.HomeTeamID == *req.AwayTeamID {
		writeError(ctx, w, fmt.Errorf("%w: a team cannot play itself", usecase.ErrInvalidInput))
		return
	}

	update := usecase.MatchUpdate{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Date:       req.Date,
		Played:     req.Played,
		Notes:      req.Notes,
		Matchday:   req.Matchday,
	}
	if req.Goals != nil {
		goals := goalEventsFromRequest(*req.Goals)
		update.Goals = &goals
	}
	if req.Cards != nil {
		cards := cardEventsFromRequest(*req.Cards)
		update.Cards = &cards
	}

	updated, err := h.seasonService.UpdateMatch(ctx, matchID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updated)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.seasonService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) UpdateTeamLogo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeamLogo")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req updateLogoRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.seasonService.UpdateTeamLogo(ctx, teamID, req.Logo); err != nil {
		h.logger.WarnContext(ctx, "update team logo failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	var req updateSettingsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings, err := h.seasonService.UpdateSettings(ctx, usecase.SettingsUpdate{
		LeagueName:      req.LeagueName,
		BackgroundVideo: req.BackgroundVideo,
		BackgroundImage: req.BackgroundImage,
		AdminPassword:   req.AdminPassword,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	_, hasSeason := h.queryService.CurrentSeason(ctx)
	writeSuccess(ctx, w, http.StatusOK, leagueDTO{
		LeagueName:      settings.LeagueName,
		BackgroundVideo: settings.BackgroundVideo,
		BackgroundImage: settings.BackgroundImage,
		HasActiveSeason: hasSeason,
	})
}

func goalEventsFromRequest(items []goalEventRequest) []season.GoalEvent {
	goals := make([]season.GoalEvent, 0, len(items))
	for _, item := range items {
		goals = append(goals, season.GoalEvent{
			PlayerID:       item.PlayerID,
			TeamID:         item.TeamID,
			Minute:         item.Minute,
			IsOwnGoal:      item.IsOwnGoal,
			AssistPlayerID: item.AssistPlayerID,
		})
	}
	return goals
}

func cardEventsFromRequest(items []cardEventRequest) []season.CardEvent {
	cards := make([]season.CardEvent, 0, len(items))
	for _, item := range items {
		cards = append(cards, season.CardEvent{
			PlayerID: item.PlayerID,
			TeamID:   item.TeamID,
			Minute:   item.Minute,
			Kind:     season.CardKind(item.Kind),
		})
	}
	return cards
}
