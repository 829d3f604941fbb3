package usecase

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/iter"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

// ChampionEntry is one line of the winners timeline.
type ChampionEntry struct {
	SeasonID   string `json:"seasonId"`
	SeasonName string `json:"seasonName"`
	Winner     string `json:"winner"`
	Date       string `json:"date"`
}

type TitleCount struct {
	Team   string `json:"team"`
	Titles int    `json:"titles"`
}

// HallOfFame is the winners timeline plus a title leaderboard. Seasons
// archived without a winner are skipped.
type HallOfFame struct {
	Champions   []ChampionEntry `json:"champions"`
	TitleCounts []TitleCount    `json:"titleCounts"`
}

// ArchiveService serves the season archive read models.
type ArchiveService struct {
	store *store.Store
}

func NewArchiveService(st *store.Store) *ArchiveService {
	return &ArchiveService{store: st}
}

// ListArchivedSeasons returns the archive in completion order.
func (s *ArchiveService) ListArchivedSeasons(context.Context) []season.Season {
	return s.store.View().ArchivedSeasons
}

func (s *ArchiveService) HallOfFame(context.Context) HallOfFame {
	archived := s.store.View().ArchivedSeasons

	entries := iter.Map(archived, func(past *season.Season) ChampionEntry {
		if past.Winner == "" {
			return ChampionEntry{}
		}
		date := past.EndDate
		if date == "" {
			date = past.StartDate
		}
		return ChampionEntry{
			SeasonID:   past.ID,
			SeasonName: past.Name,
			Winner:     past.Winner,
			Date:       date,
		}
	})

	fame := HallOfFame{
		Champions:   make([]ChampionEntry, 0, len(entries)),
		TitleCounts: []TitleCount{},
	}
	titles := make(map[string]int)
	for _, entry := range entries {
		if entry.Winner == "" {
			continue
		}
		fame.Champions = append(fame.Champions, entry)
		titles[entry.Winner]++
	}

	for team, count := range titles {
		fame.TitleCounts = append(fame.TitleCounts, TitleCount{Team: team, Titles: count})
	}
	sort.SliceStable(fame.TitleCounts, func(i, j int) bool {
		if fame.TitleCounts[i].Titles != fame.TitleCounts[j].Titles {
			return fame.TitleCounts[i].Titles > fame.TitleCounts[j].Titles
		}
		return fame.TitleCounts[i].Team < fame.TitleCounts[j].Team
	})

	return fame
}
