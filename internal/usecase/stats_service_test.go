package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/cache"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

func newStatsFixture(t *testing.T) (*StatsService, *SeasonService) {
	t.Helper()
	st := store.New(&memorySnapshots{}, logging.NewNop())
	seasons := NewSeasonService(st, &seqIDs{}, nil, logging.NewNop())
	seasons.now = func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }
	return NewStatsService(st, cache.NewStore(time.Minute)), seasons
}

func TestSeasonStats_NoActiveSeasonDegradesToZeroStats(t *testing.T) {
	t.Parallel()

	stats, _ := newStatsFixture(t)
	got, err := stats.SeasonStats(context.Background())
	if err != nil {
		t.Fatalf("season stats without a season must not fail: %v", err)
	}
	if got.MatchesPlayed != 0 || got.TotalGoals != 0 {
		t.Fatalf("expected zeroed stats, got %+v", got)
	}
	if got.BiggestWin != nil || got.HighestScoring != nil {
		t.Fatalf("notable matches must be nil without a season")
	}
}

func TestSeasonStats_Aggregates(t *testing.T) {
	t.Parallel()

	statsSvc, seasons := newStatsFixture(t)
	created := seedSeason(t, seasons, "Alpha", "Beta", "Gamma")

	beta, gamma := created.Teams[1], created.Teams[2]

	play := func(matchID string, home, away int, date string, cards []season.CardEvent) {
		t.Helper()
		if _, err := seasons.UpdateMatch(context.Background(), matchID, MatchUpdate{
			HomeScore: intPtr(home),
			AwayScore: intPtr(away),
			Date:      strPtr(date),
			Played:    boolPtr(true),
			Cards:     cardsPtr(cards),
		}); err != nil {
			t.Fatalf("UpdateMatch: %v", err)
		}
	}

	// Alpha-Beta 3-0, Alpha-Gamma 1-1, Beta-Gamma 0-2.
	play(created.Matches[0].ID, 3, 0, "2025-08-02", []season.CardEvent{
		{PlayerID: "pX", TeamID: beta.ID, Minute: 40, Kind: season.CardYellow},
		{PlayerID: "pX", TeamID: beta.ID, Minute: 77, Kind: season.CardRed},
	})
	play(created.Matches[1].ID, 1, 1, "2025-08-09", nil)
	play(created.Matches[2].ID, 0, 2, "2025-08-16", []season.CardEvent{
		{PlayerID: "pY", TeamID: gamma.ID, Minute: 12, Kind: season.CardYellow},
	})

	stats, err := statsSvc.SeasonStats(context.Background())
	if err != nil {
		t.Fatalf("SeasonStats: %v", err)
	}

	if stats.MatchesPlayed != 3 {
		t.Fatalf("matches played = %d", stats.MatchesPlayed)
	}
	if stats.TotalGoals != 7 {
		t.Fatalf("total goals = %d", stats.TotalGoals)
	}
	if math.Abs(stats.AvgGoalsPerMatch-7.0/3.0) > 1e-9 {
		t.Fatalf("avg goals = %v", stats.AvgGoalsPerMatch)
	}
	if stats.TotalCards != 3 {
		t.Fatalf("total cards = %d", stats.TotalCards)
	}
	if stats.HomeWins != 1 || stats.AwayWins != 1 || stats.Draws != 1 {
		t.Fatalf("result split = %d/%d/%d", stats.HomeWins, stats.AwayWins, stats.Draws)
	}

	cardsByName := map[string]TeamCardTally{}
	for _, tally := range stats.Cards {
		cardsByName[tally.TeamName] = tally
	}
	if got := cardsByName["Beta"]; got.Yellow != 1 || got.Red != 1 {
		t.Fatalf("beta cards = %+v", got)
	}
	if got := cardsByName["Gamma"]; got.Yellow != 1 || got.Red != 0 {
		t.Fatalf("gamma cards = %+v", got)
	}

	sheetsByName := map[string]int{}
	for _, cs := range stats.CleanSheets {
		sheetsByName[cs.TeamName] = cs.CleanSheets
	}
	// Alpha kept Beta at 0; Gamma kept Beta at 0; Beta never kept anyone out.
	if sheetsByName["Alpha"] != 1 || sheetsByName["Gamma"] != 1 || sheetsByName["Beta"] != 0 {
		t.Fatalf("clean sheets = %v", sheetsByName)
	}

	if stats.BiggestWin == nil || stats.BiggestWin.Margin != 3 {
		t.Fatalf("biggest win = %+v", stats.BiggestWin)
	}
	if stats.HighestScoring == nil || stats.HighestScoring.TotalGoals != 3 {
		t.Fatalf("highest scoring = %+v", stats.HighestScoring)
	}
}

func TestSeasonStats_PointsProgression(t *testing.T) {
	t.Parallel()

	statsSvc, seasons := newStatsFixture(t)
	created := seedSeason(t, seasons, "Alpha", "Beta", "Gamma")

	// Play the fixtures out of schedule order; progression must follow dates.
	if _, err := seasons.UpdateMatch(context.Background(), created.Matches[2].ID, MatchUpdate{
		HomeScore: intPtr(1),
		AwayScore: intPtr(0),
		Date:      strPtr("2025-08-02"),
		Played:    boolPtr(true),
	}); err != nil {
		t.Fatalf("UpdateMatch: %v", err)
	}
	if _, err := seasons.UpdateMatch(context.Background(), created.Matches[0].ID, MatchUpdate{
		HomeScore: intPtr(2),
		AwayScore: intPtr(2),
		Date:      strPtr("2025-08-09"),
		Played:    boolPtr(true),
	}); err != nil {
		t.Fatalf("UpdateMatch: %v", err)
	}

	stats, err := statsSvc.SeasonStats(context.Background())
	if err != nil {
		t.Fatalf("SeasonStats: %v", err)
	}

	if len(stats.Progression) != 3 {
		t.Fatalf("progression steps = %d, want 3", len(stats.Progression))
	}
	for _, pts := range stats.Progression[0].Points {
		if pts != 0 {
			t.Fatalf("step 0 points = %v", stats.Progression[0].Points)
		}
	}
	// Step 1 is Beta 1-0 Gamma (earliest date), step 2 adds Alpha 2-2 Beta.
	if got := stats.Progression[1].Points; got["Beta"] != 3 || got["Alpha"] != 0 || got["Gamma"] != 0 {
		t.Fatalf("step 1 points = %v", got)
	}
	if got := stats.Progression[2].Points; got["Beta"] != 4 || got["Alpha"] != 1 || got["Gamma"] != 0 {
		t.Fatalf("step 2 points = %v", got)
	}
}

func cardsPtr(v []season.CardEvent) *[]season.CardEvent { return &v }
