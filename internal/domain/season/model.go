package season

// FormLength caps the recent-result history kept per team.
const FormLength = 5

// Outcome is a single recent-result symbol in a team's form.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

type CardKind string

const (
	CardYellow CardKind = "yellow"
	CardRed    CardKind = "red"
)

// Team carries identity plus the aggregate block. Every aggregate field is
// derived from the season's played matches by Recalculate and is never
// edited directly.
type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Logo         string    `json:"logo,omitempty"`
	Played       int       `json:"played"`
	Won          int       `json:"won"`
	Drawn        int       `json:"drawn"`
	Lost         int       `json:"lost"`
	GoalsFor     int       `json:"goalsFor"`
	GoalsAgainst int       `json:"goalsAgainst"`
	Points       int       `json:"points"`
	Form         []Outcome `json:"form"`
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// Player aggregates are derived the same way as Team aggregates.
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TeamID        string `json:"teamId"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	OwnGoals      int    `json:"ownGoals"`
	YellowCards   int    `json:"yellowCards"`
	RedCards      int    `json:"redCards"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

// GoalEvent references its players by id. The name fields are display
// caches resynced whenever the id changes; identity always comes from the id.
type GoalEvent struct {
	PlayerID         string `json:"playerId"`
	PlayerName       string `json:"playerName"`
	TeamID           string `json:"teamId"`
	Minute           int    `json:"minute"`
	IsOwnGoal        bool   `json:"isOwnGoal"`
	AssistPlayerID   string `json:"assistPlayerId,omitempty"`
	AssistPlayerName string `json:"assistPlayerName,omitempty"`
}

type CardEvent struct {
	PlayerID   string   `json:"playerId"`
	PlayerName string   `json:"playerName"`
	TeamID     string   `json:"teamId"`
	Minute     int      `json:"minute"`
	Kind       CardKind `json:"type"`
}

// Match is the unit of record. An unplayed match contributes nothing to any
// aggregate regardless of its score fields. Date is an ISO timestamp string,
// empty for unscheduled fixtures.
type Match struct {
	ID           string      `json:"id"`
	HomeTeamID   string      `json:"homeTeamId"`
	AwayTeamID   string      `json:"awayTeamId"`
	HomeTeamName string      `json:"homeTeamName"`
	AwayTeamName string      `json:"awayTeamName"`
	HomeScore    int         `json:"homeScore"`
	AwayScore    int         `json:"awayScore"`
	Date         string      `json:"date"`
	Played       bool        `json:"played"`
	Goals        []GoalEvent `json:"goals"`
	Cards        []CardEvent `json:"cards"`
	Notes        string      `json:"notes,omitempty"`
	Matchday     int         `json:"matchday,omitempty"`
}

func (m Match) Clone() Match {
	out := m
	out.Goals = append([]GoalEvent(nil), m.Goals...)
	out.Cards = append([]CardEvent(nil), m.Cards...)
	return out
}

// Season owns its teams and players; neither exists outside it.
type Season struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Teams       []Team   `json:"teams"`
	Players     []Player `json:"players"`
	Matches     []Match  `json:"matches"`
	IsActive    bool     `json:"isActive"`
	IsCompleted bool     `json:"isCompleted"`
	Winner      string   `json:"winner,omitempty"`
}

func (s Season) Clone() Season {
	out := s
	out.Teams = make([]Team, len(s.Teams))
	for i, t := range s.Teams {
		t.Form = append([]Outcome(nil), t.Form...)
		out.Teams[i] = t
	}
	out.Players = append([]Player(nil), s.Players...)
	out.Matches = make([]Match, len(s.Matches))
	for i, m := range s.Matches {
		out.Matches[i] = m.Clone()
	}
	return out
}

// UnplayedCount reports how many fixtures are still open.
func (s Season) UnplayedCount() int {
	count := 0
	for _, m := range s.Matches {
		if !m.Played {
			count++
		}
	}
	return count
}

// MatchesPerTeam is the round-robin length per team.
func (s Season) MatchesPerTeam() int {
	if len(s.Teams) == 0 {
		return 0
	}
	return len(s.Teams) - 1
}
