package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/cache"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

type TeamCardTally struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Yellow   int    `json:"yellow"`
	Red      int    `json:"red"`
}

type TeamCleanSheets struct {
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	CleanSheets int    `json:"cleanSheets"`
}

// NotableMatch singles out one played match, with the margin or goal total
// that made it notable.
type NotableMatch struct {
	MatchID      string `json:"matchId"`
	HomeTeamName string `json:"homeTeamName"`
	AwayTeamName string `json:"awayTeamName"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	Margin       int    `json:"margin"`
	TotalGoals   int    `json:"totalGoals"`
}

// ProgressionPoint is one step of the points race: the running total per team
// name after the n-th played match in date order. Step zero is all zeroes.
type ProgressionPoint struct {
	Step   int            `json:"step"`
	Points map[string]int `json:"points"`
}

type SeasonStats struct {
	MatchesPlayed    int                `json:"matchesPlayed"`
	TotalGoals       int                `json:"totalGoals"`
	AvgGoalsPerMatch float64            `json:"avgGoalsPerMatch"`
	TotalCards       int                `json:"totalCards"`
	HomeWins         int                `json:"homeWins"`
	AwayWins         int                `json:"awayWins"`
	Draws            int                `json:"draws"`
	CleanSheets      []TeamCleanSheets  `json:"cleanSheets"`
	Cards            []TeamCardTally    `json:"cards"`
	Progression      []ProgressionPoint `json:"progression"`
	BiggestWin       *NotableMatch      `json:"biggestWin,omitempty"`
	HighestScoring   *NotableMatch      `json:"highestScoring,omitempty"`
}

// StatsService aggregates a season into chart-ready numbers. Everything here
// derives from played matches only; scheduled fixtures contribute nothing.
type StatsService struct {
	store *store.Store
	cache *cache.Store
}

func NewStatsService(st *store.Store, cacheStore *cache.Store) *StatsService {
	return &StatsService{store: st, cache: cacheStore}
}

func (s *StatsService) SeasonStats(ctx context.Context) (SeasonStats, error) {
	// No active season degrades to zeroed stats, not an error.
	loader := func(context.Context) (any, error) {
		state := s.store.View()
		if state.CurrentSeason == nil {
			return SeasonStats{}, nil
		}
		return computeSeasonStats(*state.CurrentSeason), nil
	}

	var value any
	var err error
	if s.cache != nil {
		key := fmt.Sprintf("stats:%d", s.store.Revision())
		value, err = s.cache.GetOrLoad(ctx, key, loader)
	} else {
		value, err = loader(ctx)
	}
	if err != nil {
		return SeasonStats{}, err
	}
	return value.(SeasonStats), nil
}

func computeSeasonStats(current season.Season) SeasonStats {
	played := make([]season.Match, 0, len(current.Matches))
	for _, m := range current.Matches {
		if m.Played {
			played = append(played, m)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Date < played[j].Date
	})

	stats := SeasonStats{MatchesPlayed: len(played)}

	for _, m := range played {
		stats.TotalGoals += m.HomeScore + m.AwayScore
		stats.TotalCards += len(m.Cards)
		switch {
		case m.HomeScore > m.AwayScore:
			stats.HomeWins++
		case m.AwayScore > m.HomeScore:
			stats.AwayWins++
		default:
			stats.Draws++
		}
	}
	if len(played) > 0 {
		stats.AvgGoalsPerMatch = float64(stats.TotalGoals) / float64(len(played))
	}

	ranked := season.Rank(current.Teams)

	stats.CleanSheets = make([]TeamCleanSheets, 0, len(ranked))
	stats.Cards = make([]TeamCardTally, 0, len(ranked))
	for _, team := range ranked {
		sheets := 0
		tally := TeamCardTally{TeamID: team.ID, TeamName: team.Name}
		for _, m := range played {
			if (m.HomeTeamID == team.ID && m.AwayScore == 0) ||
				(m.AwayTeamID == team.ID && m.HomeScore == 0) {
				sheets++
			}
			for _, card := range m.Cards {
				if card.TeamID != team.ID {
					continue
				}
				switch card.Kind {
				case season.CardYellow:
					tally.Yellow++
				case season.CardRed:
					tally.Red++
				}
			}
		}
		stats.CleanSheets = append(stats.CleanSheets, TeamCleanSheets{
			TeamID:      team.ID,
			TeamName:    team.Name,
			CleanSheets: sheets,
		})
		stats.Cards = append(stats.Cards, tally)
	}

	stats.Progression = pointsProgression(current, played)
	stats.BiggestWin, stats.HighestScoring = notableMatches(played)

	return stats
}

// pointsProgression replays the played matches in date order and records the
// running points per team name after each one. Matches against teams missing
// from the roster still emit a step so every team's series stays aligned.
func pointsProgression(current season.Season, played []season.Match) []ProgressionPoint {
	running := make(map[string]int, len(current.Teams))
	teamName := make(map[string]string, len(current.Teams))
	for _, team := range current.Teams {
		running[team.Name] = 0
		teamName[team.ID] = team.Name
	}

	snapshot := func(step int) ProgressionPoint {
		points := make(map[string]int, len(running))
		for name, pts := range running {
			points[name] = pts
		}
		return ProgressionPoint{Step: step, Points: points}
	}

	progression := make([]ProgressionPoint, 0, len(played)+1)
	progression = append(progression, snapshot(0))

	for i, m := range played {
		home, homeOK := teamName[m.HomeTeamID]
		away, awayOK := teamName[m.AwayTeamID]
		if homeOK && awayOK {
			switch {
			case m.HomeScore > m.AwayScore:
				running[home] += 3
			case m.AwayScore > m.HomeScore:
				running[away] += 3
			default:
				running[home]++
				running[away]++
			}
		}
		progression = append(progression, snapshot(i+1))
	}

	return progression
}

func notableMatches(played []season.Match) (biggestWin, highestScoring *NotableMatch) {
	for _, m := range played {
		margin := m.HomeScore - m.AwayScore
		if margin < 0 {
			margin = -margin
		}
		total := m.HomeScore + m.AwayScore

		if margin > 0 && (biggestWin == nil || margin > biggestWin.Margin) {
			biggestWin = notable(m, margin, total)
		}
		if total > 0 && (highestScoring == nil || total > highestScoring.TotalGoals) {
			highestScoring = notable(m, margin, total)
		}
	}
	return biggestWin, highestScoring
}

func notable(m season.Match, margin, total int) *NotableMatch {
	return &NotableMatch{
		MatchID:      m.ID,
		HomeTeamName: m.HomeTeamName,
		AwayTeamName: m.AwayTeamName,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		Margin:       margin,
		TotalGoals:   total,
	}
}
