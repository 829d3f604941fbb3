package store

import (
	"context"
	"errors"
	"testing"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
)

type stubSnapshots struct {
	state   leaguestate.State
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (s *stubSnapshots) Load(_ context.Context) (leaguestate.State, bool, error) {
	return s.state, s.found, s.loadErr
}

func (s *stubSnapshots) Save(_ context.Context, state leaguestate.State) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.state = state
	s.found = true
	s.saves++
	return nil
}

func TestStore_HydrateKeepsDefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	s := New(&stubSnapshots{}, nil)
	if err := s.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}

	state := s.View()
	if state.Settings.LeagueName != "Cosmus League" {
		t.Fatalf("expected default settings, got %+v", state.Settings)
	}
}

func TestStore_UpdateFlushesAndBumpsRevision(t *testing.T) {
	t.Parallel()

	snapshots := &stubSnapshots{}
	s := New(snapshots, nil)

	before := s.Revision()
	err := s.Update(context.Background(), func(state *leaguestate.State) error {
		state.Settings.LeagueName = "Harbor League"
		return nil
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if s.Revision() != before+1 {
		t.Fatalf("expected revision bump, got %d -> %d", before, s.Revision())
	}
	if snapshots.saves != 1 {
		t.Fatalf("expected a synchronous flush, got %d saves", snapshots.saves)
	}
	if snapshots.state.Settings.LeagueName != "Harbor League" {
		t.Fatalf("snapshot not updated: %+v", snapshots.state.Settings)
	}
}

func TestStore_FailedMutationLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	snapshots := &stubSnapshots{}
	s := New(snapshots, nil)
	boom := errors.New("boom")

	err := s.Update(context.Background(), func(state *leaguestate.State) error {
		state.Settings.LeagueName = "should not stick"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutation error, got %v", err)
	}

	if s.View().Settings.LeagueName != "Cosmus League" {
		t.Fatalf("failed mutation leaked into state")
	}
	if snapshots.saves != 0 {
		t.Fatalf("failed mutation must not flush")
	}
}

func TestStore_SaveFailureRollsBack(t *testing.T) {
	t.Parallel()

	snapshots := &stubSnapshots{saveErr: errors.New("disk full")}
	s := New(snapshots, nil)

	err := s.Update(context.Background(), func(state *leaguestate.State) error {
		state.Settings.LeagueName = "lost"
		return nil
	})
	if err == nil {
		t.Fatalf("expected save error")
	}
	if s.View().Settings.LeagueName != "Cosmus League" {
		t.Fatalf("state must not change when the flush fails")
	}
}

func TestStore_SeedAppliesOnlyBeforeFirstSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("fresh store takes the seeds", func(t *testing.T) {
		t.Parallel()

		s := New(&stubSnapshots{}, nil)
		if err := s.Hydrate(context.Background()); err != nil {
			t.Fatalf("hydrate failed: %v", err)
		}
		s.Seed("Harbor League", "secret-99")

		settings := s.View().Settings
		if settings.LeagueName != "Harbor League" || settings.AdminPassword != "secret-99" {
			t.Fatalf("seeds not applied: %+v", settings)
		}
	})

	t.Run("hydrated state wins", func(t *testing.T) {
		t.Parallel()

		persisted := leaguestate.Default()
		persisted.Settings.LeagueName = "Live League"
		persisted.Settings.AdminPassword = "live-pass"

		s := New(&stubSnapshots{state: persisted, found: true}, nil)
		if err := s.Hydrate(context.Background()); err != nil {
			t.Fatalf("hydrate failed: %v", err)
		}
		s.Seed("Harbor League", "secret-99")

		settings := s.View().Settings
		if settings.LeagueName != "Live League" || settings.AdminPassword != "live-pass" {
			t.Fatalf("seeds clobbered hydrated state: %+v", settings)
		}
	})

	t.Run("blank seeds keep defaults", func(t *testing.T) {
		t.Parallel()

		s := New(&stubSnapshots{}, nil)
		s.Seed("  ", "")

		settings := s.View().Settings
		if settings.LeagueName != "Cosmus League" || settings.AdminPassword != "2604" {
			t.Fatalf("blank seeds must be ignored: %+v", settings)
		}
	})
}

func TestStore_ViewIsACopy(t *testing.T) {
	t.Parallel()

	s := New(&stubSnapshots{}, nil)

	view := s.View()
	view.Settings.LeagueName = "mutated copy"

	if s.View().Settings.LeagueName != "Cosmus League" {
		t.Fatalf("View must hand out copies")
	}
}
