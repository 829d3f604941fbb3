package httpapi

import (
	"net/http"
	"strings"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/usecase"
)

type cupMatchRequest struct {
	HomeTeamName string `json:"homeTeamName" validate:"required"`
	AwayTeamName string `json:"awayTeamName" validate:"required"`
	HomeScore    int    `json:"homeScore" validate:"gte=0"`
	AwayScore    int    `json:"awayScore" validate:"gte=0"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
}

type createCupRequest struct {
	Name        string            `json:"name" validate:"required,max=100"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Image       string            `json:"image"`
	Winner      string            `json:"winner"`
	RunnerUp    string            `json:"runnerUp"`
	Matches     []cupMatchRequest `json:"matches" validate:"dive"`
}

type updateCupRequest struct {
	Name        *string            `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string            `json:"description"`
	Date        *string            `json:"date"`
	Image       *string            `json:"image"`
	Winner      *string            `json:"winner"`
	RunnerUp    *string            `json:"runnerUp"`
	Matches     *[]cupMatchRequest `json:"matches" validate:"omitempty,dive"`
}

func (h *Handler) ListCups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCups")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.cupService.ListCups(ctx))
}

func (h *Handler) CreateCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCup")
	defer span.End()

	var req createCupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.cupService.AddCup(ctx, usecase.CupInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Image:       req.Image,
		Winner:      req.Winner,
		RunnerUp:    req.RunnerUp,
		Matches:     cupMatchesFromRequest(req.Matches),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create cup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, created)
}

func (h *Handler) UpdateCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCup")
	defer span.End()

	cupID := strings.TrimSpace(r.PathValue("cupID"))
	var req updateCupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	update := usecase.CupUpdate{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Image:       req.Image,
		Winner:      req.Winner,
		RunnerUp:    req.RunnerUp,
	}
	if req.Matches != nil {
		matches := cupMatchesFromRequest(*req.Matches)
		update.Matches = &matches
	}

	updated, err := h.cupService.UpdateCup(ctx, cupID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update cup failed", "cup_id", cupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updated)
}

func (h *Handler) DeleteCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCup")
	defer span.End()

	cupID := strings.TrimSpace(r.PathValue("cupID"))
	if err := h.cupService.DeleteCup(ctx, cupID); err != nil {
		h.logger.WarnContext(ctx, "delete cup failed", "cup_id", cupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Cup matches are display records, so only the name snapshots matter here.
func cupMatchesFromRequest(items []cupMatchRequest) []season.Match {
	matches := make([]season.Match, 0, len(items))
	for _, item := range items {
		matches = append(matches, season.Match{
			HomeTeamName: item.HomeTeamName,
			AwayTeamName: item.AwayTeamName,
			HomeScore:    item.HomeScore,
			AwayScore:    item.AwayScore,
			Date:         item.Date,
			Played:       true,
			Notes:        item.Notes,
			Goals:        []season.GoalEvent{},
			Cards:        []season.CardEvent{},
		})
	}
	return matches
}
