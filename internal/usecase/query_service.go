package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/cache"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

// LeaderView is the title-race summary for the table leader. MagicNumber is
// nil once the title is confirmed, and Leader is nil when the race is
// undefined (no active season, or fewer than two teams).
type LeaderView struct {
	Leader            *season.Team `json:"leader"`
	IsConfirmedWinner bool         `json:"isConfirmedWinner"`
	MagicNumber       *int         `json:"magicNumber"`
}

// ChanceView answers "can this team still win the title" in words a fan can
// read. Missing teams and missing seasons report through the description
// instead of failing.
type ChanceView struct {
	CanWin              bool   `json:"canWin"`
	WinsNeeded          int    `json:"winsNeeded"`
	ScenarioDescription string `json:"scenarioDescription"`
}

// QueryService serves read-only views over the league state. Standings and
// top-scorer reads go through a TTL cache keyed on the store revision, so a
// mutation invalidates every derived view at once.
type QueryService struct {
	store *store.Store
	cache *cache.Store
}

func NewQueryService(st *store.Store, cacheStore *cache.Store) *QueryService {
	return &QueryService{store: st, cache: cacheStore}
}

func (s *QueryService) Settings(context.Context) leaguestate.Settings {
	return s.store.View().Settings
}

func (s *QueryService) CurrentSeason(context.Context) (season.Season, bool) {
	state := s.store.View()
	if state.CurrentSeason == nil {
		return season.Season{}, false
	}
	return *state.CurrentSeason, true
}

// GetStandings returns the ranked table of the active season, or an empty
// slice when no season is running.
func (s *QueryService) GetStandings(ctx context.Context) ([]season.Team, error) {
	value, err := s.cached(ctx, "standings", func(context.Context) (any, error) {
		state := s.store.View()
		if state.CurrentSeason == nil {
			return []season.Team{}, nil
		}
		return season.Rank(state.CurrentSeason.Teams), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]season.Team), nil
}

// GetTopScorers returns players with at least one goal, most goals first.
// Players tied on goals keep roster order.
func (s *QueryService) GetTopScorers(ctx context.Context) ([]season.Player, error) {
	value, err := s.cached(ctx, "topscorers", func(context.Context) (any, error) {
		state := s.store.View()
		if state.CurrentSeason == nil {
			return []season.Player{}, nil
		}

		scorers := make([]season.Player, 0, len(state.CurrentSeason.Players))
		for _, p := range state.CurrentSeason.Players {
			if p.Goals > 0 {
				scorers = append(scorers, p)
			}
		}
		sort.SliceStable(scorers, func(i, j int) bool {
			return scorers[i].Goals > scorers[j].Goals
		})
		return scorers, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]season.Player), nil
}

// GetLeaderInfo degrades to a null leader when no season is running, the
// same way standings degrade to an empty table.
func (s *QueryService) GetLeaderInfo(ctx context.Context) (LeaderView, error) {
	state := s.store.View()
	if state.CurrentSeason == nil {
		return LeaderView{}, nil
	}

	current := *state.CurrentSeason
	ranked := season.Rank(current.Teams)
	info, ok := season.ComputeLeaderInfo(ranked, current.MatchesPerTeam())
	if !ok {
		return LeaderView{}, nil
	}

	view := LeaderView{
		Leader:            &info.Leader,
		IsConfirmedWinner: info.IsConfirmedWinner,
	}
	if !info.IsConfirmedWinner {
		magic := info.MagicNumber
		view.MagicNumber = &magic
	}
	return view, nil
}

func (s *QueryService) GetProbability(ctx context.Context, teamID string) ChanceView {
	state := s.store.View()
	if state.CurrentSeason == nil {
		return ChanceView{ScenarioDescription: "No active season"}
	}

	current := *state.CurrentSeason
	ranked := season.Rank(current.Teams)
	chance, ok := season.TeamChance(ranked, current.MatchesPerTeam(), teamID)
	if !ok {
		return ChanceView{ScenarioDescription: "Team not found"}
	}

	return ChanceView{
		CanWin:              chance.CanWin,
		WinsNeeded:          chance.WinsNeeded,
		ScenarioDescription: chance.Scenario,
	}
}

func (s *QueryService) cached(ctx context.Context, name string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	key := fmt.Sprintf("%s:%d", name, s.store.Revision())
	return s.cache.GetOrLoad(ctx, key, loader)
}
