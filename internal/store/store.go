package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
)

// Store owns the process-wide league state: hydrated once at start, held in
// memory, and flushed to the snapshot backend synchronously after every
// mutation. Readers always get deep copies, so the state handed out can
// never alias the state being mutated.
type Store struct {
	mu        sync.RWMutex
	state     leaguestate.State
	revision  uint64
	snapshots leaguestate.Snapshots
	logger    *logging.Logger
}

func New(snapshots leaguestate.Snapshots, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		state:     leaguestate.Default(),
		snapshots: snapshots,
		logger:    logger,
	}
}

// Hydrate replaces the in-memory state with the persisted snapshot, or keeps
// the defaults when none exists yet.
func (s *Store) Hydrate(ctx context.Context) error {
	state, found, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("load league snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found {
		s.logger.InfoContext(ctx, "no league snapshot found, starting from defaults")
		return nil
	}

	s.state = state
	s.revision++
	s.logger.InfoContext(ctx, "league snapshot hydrated",
		"archived_seasons", len(state.ArchivedSeasons),
		"cups", len(state.Cups),
		"has_current_season", state.CurrentSeason != nil,
	)
	return nil
}

// Seed overrides the default league settings before any snapshot exists.
// Hydrated state always wins: once a snapshot was loaded the seeds are
// ignored, so env values never clobber a live league.
func (s *Store) Seed(leagueName, adminPassword string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.revision != 0 {
		return
	}
	if name := strings.TrimSpace(leagueName); name != "" {
		s.state.Settings.LeagueName = name
	}
	if pass := strings.TrimSpace(adminPassword); pass != "" {
		s.state.Settings.AdminPassword = pass
	}
}

// View returns a deep copy of the current state.
func (s *Store) View() leaguestate.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Revision increments on every applied mutation; query caches key on it.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Update applies mutate to a copy of the state and, when it succeeds, swaps
// the copy in, bumps the revision, and flushes the snapshot. A failed mutate
// leaves both memory and disk untouched.
func (s *Store) Update(ctx context.Context, mutate func(state *leaguestate.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := mutate(&next); err != nil {
		return err
	}

	if err := s.snapshots.Save(ctx, next); err != nil {
		return fmt.Errorf("save league snapshot: %w", err)
	}

	s.state = next
	s.revision++
	return nil
}
