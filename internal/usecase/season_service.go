package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/id"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

// ArchiveExporter ships a completed season to an external backup endpoint.
type ArchiveExporter interface {
	PushSeason(ctx context.Context, archived season.Season) error
}

type TeamInput struct {
	Name string
	Logo string
}

type PlayerInput struct {
	Name   string
	TeamID string
}

// MatchInput is a full match record without an id.
type MatchInput struct {
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
	Date       string
	Played     bool
	Goals      []season.GoalEvent
	Cards      []season.CardEvent
	Notes      string
	Matchday   int
}

// MatchUpdate is a partial update; nil fields keep their current value.
type MatchUpdate struct {
	HomeTeamID *string
	AwayTeamID *string
	HomeScore  *int
	AwayScore  *int
	Date       *string
	Played     *bool
	Goals      *[]season.GoalEvent
	Cards      *[]season.CardEvent
	Notes      *string
	Matchday   *int
}

type SettingsUpdate struct {
	LeagueName      *string
	BackgroundVideo *string
	BackgroundImage *string
	AdminPassword   *string
}

// CompletionResult reports what was archived. RemainingUnplayed lets callers
// warn about early completion; the operation itself never rejects on it.
type CompletionResult struct {
	Archived          season.Season
	RemainingUnplayed int
}

// SeasonService is the season lifecycle manager: creation with round-robin
// fixtures, completion into the archive, and every match and roster
// mutation. Match mutations run the full recompute before the state is
// stored; roster mutations do not, since team aggregates derive from match
// events rather than player rows.
type SeasonService struct {
	store    *store.Store
	ids      id.Generator
	exporter ArchiveExporter
	logger   *logging.Logger
	now      func() time.Time
}

func NewSeasonService(st *store.Store, ids id.Generator, exporter ArchiveExporter, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{
		store:    st,
		ids:      ids,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SeasonService) CreateSeason(ctx context.Context, name string, teams []TeamInput) (season.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return season.Season{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if len(teams) < 2 {
		return season.Season{}, fmt.Errorf("%w: a season needs at least 2 teams", ErrInvalidInput)
	}
	for _, team := range teams {
		if strings.TrimSpace(team.Name) == "" {
			return season.Season{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
		}
	}

	seasonID, err := s.ids.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	roster := make([]season.Team, 0, len(teams))
	for _, team := range teams {
		teamID, err := s.ids.NewID()
		if err != nil {
			return season.Season{}, fmt.Errorf("generate team id: %w", err)
		}
		roster = append(roster, season.Team{
			ID:   teamID,
			Name: strings.TrimSpace(team.Name),
			Logo: team.Logo,
			Form: []season.Outcome{},
		})
	}

	matches, err := season.RoundRobin(roster, s.ids.NewID)
	if err != nil {
		return season.Season{}, err
	}

	created := season.Season{
		ID:        seasonID,
		Name:      name,
		StartDate: s.now().UTC().Format(time.RFC3339),
		Teams:     roster,
		Players:   []season.Player{},
		Matches:   matches,
		IsActive:  true,
	}

	err = s.store.Update(ctx, func(state *leaguestate.State) error {
		if state.CurrentSeason != nil {
			// Auto-archival closes the old season without naming a winner;
			// only explicit completion does that.
			previous := state.CurrentSeason.Clone()
			previous.IsActive = false
			previous.IsCompleted = true
			state.ArchivedSeasons = append(state.ArchivedSeasons, previous)
		}
		fresh := created.Clone()
		state.CurrentSeason = &fresh
		return nil
	})
	if err != nil {
		return season.Season{}, err
	}

	s.logger.InfoContext(ctx, "season created",
		"season_id", created.ID, "teams", len(roster), "fixtures", len(matches))
	return created, nil
}

func (s *SeasonService) CompleteSeason(ctx context.Context) (CompletionResult, error) {
	var result CompletionResult

	err := s.store.Update(ctx, func(state *leaguestate.State) error {
		if state.CurrentSeason == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}

		completed := state.CurrentSeason.Clone()
		standings := season.Rank(completed.Teams)
		if len(standings) > 0 {
			completed.Winner = standings[0].Name
		}
		completed.IsActive = false
		completed.IsCompleted = true
		completed.EndDate = s.now().UTC().Format(time.RFC3339)

		state.ArchivedSeasons = append(state.ArchivedSeasons, completed)
		state.CurrentSeason = nil

		result = CompletionResult{
			Archived:          completed,
			RemainingUnplayed: completed.UnplayedCount(),
		}
		return nil
	})
	if err != nil {
		return CompletionResult{}, err
	}

	s.logger.InfoContext(ctx, "season completed",
		"season_id", result.Archived.ID,
		"winner", result.Archived.Winner,
		"remaining_unplayed", result.RemainingUnplayed,
	)

	// Backup export is best effort: a dead endpoint must not undo the
	// completion that already happened.
	if s.exporter != nil {
		if err := s.exporter.PushSeason(ctx, result.Archived); err != nil {
			s.logger.WarnContext(ctx, "archive export failed",
				"season_id", result.Archived.ID, "error", err)
		}
	}

	return result, nil
}

func (s *SeasonService) AddPlayer(ctx context.Context, input PlayerInput) (season.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return season.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	teamID := strings.TrimSpace(input.TeamID)
	if teamID == "" {
		return season.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return season.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	player := season.Player{ID: playerID, Name: name, TeamID: teamID}

	err = s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}
		if findTeam(current.Teams, teamID) == nil {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		current.Players = append(current.Players, player)
		return nil
	})
	if err != nil {
		return season.Player{}, err
	}

	return player, nil
}

// RemovePlayer drops the player row only. Match events keep referencing the
// removed id; they simply stop resolving, and team aggregates are untouched
// because they derive from match events.
func (s *SeasonService) RemovePlayer(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	return s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}

		kept := current.Players[:0]
		found := false
		for _, p := range current.Players {
			if p.ID == playerID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		current.Players = kept
		return nil
	})
}

func (s *SeasonService) AddMatch(ctx context.Context, input MatchInput) (season.Match, error) {
	if err := validateMatchInput(input); err != nil {
		return season.Match{}, err
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return season.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	var added season.Match
	err = s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}

		match := season.Match{
			ID:         matchID,
			HomeTeamID: input.HomeTeamID,
			AwayTeamID: input.AwayTeamID,
			HomeScore:  input.HomeScore,
			AwayScore:  input.AwayScore,
			Date:       input.Date,
			Played:     input.Played,
			Goals:      append([]season.GoalEvent{}, input.Goals...),
			Cards:      append([]season.CardEvent{}, input.Cards...),
			Notes:      input.Notes,
			Matchday:   input.Matchday,
		}
		if findTeam(current.Teams, match.HomeTeamID) == nil {
			return fmt.Errorf("%w: team=%s", ErrNotFound, match.HomeTeamID)
		}
		if findTeam(current.Teams, match.AwayTeamID) == nil {
			return fmt.Errorf("%w: team=%s", ErrNotFound, match.AwayTeamID)
		}
		syncNameSnapshots(&match, *current)

		current.Matches = append(current.Matches, match)
		recalculated := season.Recalculate(*current)
		state.CurrentSeason = &recalculated
		added = match
		return nil
	})
	if err != nil {
		return season.Match{}, err
	}

	return added, nil
}

func (s *SeasonService) UpdateMatch(ctx context.Context, matchID string, update MatchUpdate) (season.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return season.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	var updated season.Match
	err := s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}

		idx := -1
		for i, m := range current.Matches {
			if m.ID == matchID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}

		match := current.Matches[idx].Clone()
		applyMatchUpdate(&match, update)
		if match.HomeScore < 0 || match.AwayScore < 0 {
			return fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
		}
		syncNameSnapshots(&match, *current)

		current.Matches[idx] = match
		recalculated := season.Recalculate(*current)
		state.CurrentSeason = &recalculated
		updated = match
		return nil
	})
	if err != nil {
		return season.Match{}, err
	}

	return updated, nil
}

func (s *SeasonService) DeleteMatch(ctx context.Context, matchID string) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	return s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}

		kept := current.Matches[:0]
		found := false
		for _, m := range current.Matches {
			if m.ID == matchID {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		if !found {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}

		current.Matches = kept
		recalculated := season.Recalculate(*current)
		state.CurrentSeason = &recalculated
		return nil
	})
}

func (s *SeasonService) UpdateTeamLogo(ctx context.Context, teamID, logo string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	return s.store.Update(ctx, func(state *leaguestate.State) error {
		current := state.CurrentSeason
		if current == nil {
			return fmt.Errorf("%w: no active season", ErrNotFound)
		}
		team := findTeam(current.Teams, teamID)
		if team == nil {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		team.Logo = logo
		return nil
	})
}

func (s *SeasonService) UpdateSettings(ctx context.Context, update SettingsUpdate) (leaguestate.Settings, error) {
	if update.LeagueName != nil && strings.TrimSpace(*update.LeagueName) == "" {
		return leaguestate.Settings{}, fmt.Errorf("%w: league name cannot be empty", ErrInvalidInput)
	}
	if update.AdminPassword != nil && strings.TrimSpace(*update.AdminPassword) == "" {
		return leaguestate.Settings{}, fmt.Errorf("%w: admin password cannot be empty", ErrInvalidInput)
	}

	var settings leaguestate.Settings
	err := s.store.Update(ctx, func(state *leaguestate.State) error {
		if update.LeagueName != nil {
			state.Settings.LeagueName = strings.TrimSpace(*update.LeagueName)
		}
		if update.BackgroundVideo != nil {
			state.Settings.BackgroundVideo = *update.BackgroundVideo
		}
		if update.BackgroundImage != nil {
			state.Settings.BackgroundImage = *update.BackgroundImage
		}
		if update.AdminPassword != nil {
			state.Settings.AdminPassword = *update.AdminPassword
		}
		settings = state.Settings
		return nil
	})
	if err != nil {
		return leaguestate.Settings{}, err
	}

	return settings, nil
}

func validateMatchInput(input MatchInput) error {
	if strings.TrimSpace(input.HomeTeamID) == "" || strings.TrimSpace(input.AwayTeamID) == "" {
		return fmt.Errorf("%w: both match teams are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}
	return nil
}

func applyMatchUpdate(match *season.Match, update MatchUpdate) {
	if update.HomeTeamID != nil {
		match.HomeTeamID = *update.HomeTeamID
	}
	if update.AwayTeamID != nil {
		match.AwayTeamID = *update.AwayTeamID
	}
	if update.HomeScore != nil {
		match.HomeScore = *update.HomeScore
	}
	if update.AwayScore != nil {
		match.AwayScore = *update.AwayScore
	}
	if update.Date != nil {
		match.Date = *update.Date
	}
	if update.Played != nil {
		match.Played = *update.Played
	}
	if update.Goals != nil {
		match.Goals = append([]season.GoalEvent{}, (*update.Goals)...)
	}
	if update.Cards != nil {
		match.Cards = append([]season.CardEvent{}, (*update.Cards)...)
	}
	if update.Notes != nil {
		match.Notes = *update.Notes
	}
	if update.Matchday != nil {
		match.Matchday = *update.Matchday
	}
}

// syncNameSnapshots refreshes the denormalized display names on a match and
// its events from the current rosters. Names of ids that no longer resolve
// are left as provided; ids stay the source of truth either way.
func syncNameSnapshots(match *season.Match, current season.Season) {
	if team := findTeam(current.Teams, match.HomeTeamID); team != nil {
		match.HomeTeamName = team.Name
	}
	if team := findTeam(current.Teams, match.AwayTeamID); team != nil {
		match.AwayTeamName = team.Name
	}

	for i := range match.Goals {
		goal := &match.Goals[i]
		if p := findPlayer(current.Players, goal.PlayerID); p != nil {
			goal.PlayerName = p.Name
		}
		if goal.AssistPlayerID != "" {
			if p := findPlayer(current.Players, goal.AssistPlayerID); p != nil {
				goal.AssistPlayerName = p.Name
			}
		}
	}
	for i := range match.Cards {
		card := &match.Cards[i]
		if p := findPlayer(current.Players, card.PlayerID); p != nil {
			card.PlayerName = p.Name
		}
	}
}

func findTeam(teams []season.Team, teamID string) *season.Team {
	for i := range teams {
		if teams[i].ID == teamID {
			return &teams[i]
		}
	}
	return nil
}

func findPlayer(players []season.Player, playerID string) *season.Player {
	for i := range players {
		if players[i].ID == playerID {
			return &players[i]
		}
	}
	return nil
}
