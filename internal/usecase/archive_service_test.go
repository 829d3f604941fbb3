package usecase

import (
	"context"
	"testing"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

func newArchiveFixture(t *testing.T, archived ...season.Season) *ArchiveService {
	t.Helper()
	st := store.New(&memorySnapshots{}, logging.NewNop())
	if len(archived) > 0 {
		if err := st.Update(context.Background(), func(state *leaguestate.State) error {
			state.ArchivedSeasons = archived
			return nil
		}); err != nil {
			t.Fatalf("seed archive: %v", err)
		}
	}
	return NewArchiveService(st)
}

func TestListArchivedSeasons_KeepsCompletionOrder(t *testing.T) {
	t.Parallel()

	svc := newArchiveFixture(t,
		season.Season{ID: "s1", Name: "Season 1"},
		season.Season{ID: "s2", Name: "Season 2"},
	)

	archived := svc.ListArchivedSeasons(context.Background())
	if len(archived) != 2 || archived[0].ID != "s1" || archived[1].ID != "s2" {
		t.Fatalf("archive order = %+v", archived)
	}
}

func TestHallOfFame_CountsTitlesAndSkipsWinnerlessSeasons(t *testing.T) {
	t.Parallel()

	svc := newArchiveFixture(t,
		season.Season{ID: "s1", Name: "Season 1", Winner: "Alpha", EndDate: "2024-05-01T00:00:00Z"},
		season.Season{ID: "s2", Name: "Season 2", StartDate: "2024-08-01T00:00:00Z"},
		season.Season{ID: "s3", Name: "Season 3", Winner: "Beta", StartDate: "2025-01-01T00:00:00Z"},
		season.Season{ID: "s4", Name: "Season 4", Winner: "Alpha", EndDate: "2025-06-01T00:00:00Z"},
	)

	fame := svc.HallOfFame(context.Background())

	if len(fame.Champions) != 3 {
		t.Fatalf("champions = %d, want 3", len(fame.Champions))
	}
	if fame.Champions[0].SeasonID != "s1" || fame.Champions[1].SeasonID != "s3" {
		t.Fatalf("timeline = %+v", fame.Champions)
	}
	// End date when present, start date as the fallback.
	if fame.Champions[1].Date != "2025-01-01T00:00:00Z" {
		t.Fatalf("fallback date = %q", fame.Champions[1].Date)
	}

	if len(fame.TitleCounts) != 2 {
		t.Fatalf("title counts = %+v", fame.TitleCounts)
	}
	if fame.TitleCounts[0].Team != "Alpha" || fame.TitleCounts[0].Titles != 2 {
		t.Fatalf("top titles = %+v", fame.TitleCounts[0])
	}
	if fame.TitleCounts[1].Team != "Beta" || fame.TitleCounts[1].Titles != 1 {
		t.Fatalf("second titles = %+v", fame.TitleCounts[1])
	}
}

func TestHallOfFame_EmptyArchive(t *testing.T) {
	t.Parallel()

	svc := newArchiveFixture(t)
	fame := svc.HallOfFame(context.Background())
	if len(fame.Champions) != 0 || len(fame.TitleCounts) != 0 {
		t.Fatalf("fame = %+v, want empty", fame)
	}
}
