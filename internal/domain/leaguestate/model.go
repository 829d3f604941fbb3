package leaguestate

import (
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/cup"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
)

// Settings holds league-wide presentation and the admin shared secret.
type Settings struct {
	LeagueName      string `json:"leagueName"`
	BackgroundVideo string `json:"backgroundVideo,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	AdminPassword   string `json:"adminPassword"`
}

// State is exactly the persisted snapshot layout. The admin session flag is
// deliberately absent: it lives in memory only.
type State struct {
	Settings        Settings        `json:"settings"`
	CurrentSeason   *season.Season  `json:"currentSeason"`
	ArchivedSeasons []season.Season `json:"archivedSeasons"`
	Cups            []cup.Cup       `json:"cups"`
}

func Default() State {
	return State{
		Settings: Settings{
			LeagueName:    "Cosmus League",
			AdminPassword: "2604",
		},
		ArchivedSeasons: []season.Season{},
		Cups:            []cup.Cup{},
	}
}

func (s State) Clone() State {
	out := s
	if s.CurrentSeason != nil {
		cloned := s.CurrentSeason.Clone()
		out.CurrentSeason = &cloned
	}
	out.ArchivedSeasons = make([]season.Season, len(s.ArchivedSeasons))
	for i, archived := range s.ArchivedSeasons {
		out.ArchivedSeasons[i] = archived.Clone()
	}
	out.Cups = make([]cup.Cup, len(s.Cups))
	for i, c := range s.Cups {
		out.Cups[i] = c.Clone()
	}
	return out
}
