package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/cup"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
	"github.com/hasysamur-cmd/cosmus-league/internal/domain/season"
	"github.com/hasysamur-cmd/cosmus-league/internal/platform/id"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

type CupInput struct {
	Name        string
	Description string
	Date        string
	Image       string
	Winner      string
	RunnerUp    string
	Matches     []season.Match
}

// CupUpdate is a partial update; nil fields keep their current value.
type CupUpdate struct {
	Name        *string
	Description *string
	Date        *string
	Image       *string
	Winner      *string
	RunnerUp    *string
	Matches     *[]season.Match
}

// CupService manages the standalone cup records. Cup match lists are kept as
// given; they never feed the league recompute.
type CupService struct {
	store *store.Store
	ids   id.Generator
}

func NewCupService(st *store.Store, ids id.Generator) *CupService {
	return &CupService{store: st, ids: ids}
}

func (s *CupService) ListCups(context.Context) []cup.Cup {
	return s.store.View().Cups
}

func (s *CupService) AddCup(ctx context.Context, input CupInput) (cup.Cup, error) {
	if strings.TrimSpace(input.Name) == "" {
		return cup.Cup{}, fmt.Errorf("%w: cup name is required", ErrInvalidInput)
	}

	cupID, err := s.ids.NewID()
	if err != nil {
		return cup.Cup{}, fmt.Errorf("generate cup id: %w", err)
	}

	created := cup.Cup{
		ID:          cupID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Date:        input.Date,
		Image:       input.Image,
		Winner:      input.Winner,
		RunnerUp:    input.RunnerUp,
		Matches:     append([]season.Match{}, input.Matches...),
	}

	err = s.store.Update(ctx, func(state *leaguestate.State) error {
		state.Cups = append(state.Cups, created)
		return nil
	})
	if err != nil {
		return cup.Cup{}, err
	}

	return created, nil
}

func (s *CupService) UpdateCup(ctx context.Context, cupID string, update CupUpdate) (cup.Cup, error) {
	cupID = strings.TrimSpace(cupID)
	if cupID == "" {
		return cup.Cup{}, fmt.Errorf("%w: cup id is required", ErrInvalidInput)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return cup.Cup{}, fmt.Errorf("%w: cup name cannot be empty", ErrInvalidInput)
	}

	var updated cup.Cup
	err := s.store.Update(ctx, func(state *leaguestate.State) error {
		idx := -1
		for i, c := range state.Cups {
			if c.ID == cupID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: cup=%s", ErrNotFound, cupID)
		}

		current := state.Cups[idx].Clone()
		if update.Name != nil {
			current.Name = strings.TrimSpace(*update.Name)
		}
		if update.Description != nil {
			current.Description = *update.Description
		}
		if update.Date != nil {
			current.Date = *update.Date
		}
		if update.Image != nil {
			current.Image = *update.Image
		}
		if update.Winner != nil {
			current.Winner = *update.Winner
		}
		if update.RunnerUp != nil {
			current.RunnerUp = *update.RunnerUp
		}
		if update.Matches != nil {
			current.Matches = append([]season.Match{}, (*update.Matches)...)
		}

		state.Cups[idx] = current
		updated = current
		return nil
	})
	if err != nil {
		return cup.Cup{}, err
	}

	return updated, nil
}

func (s *CupService) DeleteCup(ctx context.Context, cupID string) error {
	cupID = strings.TrimSpace(cupID)
	if cupID == "" {
		return fmt.Errorf("%w: cup id is required", ErrInvalidInput)
	}

	return s.store.Update(ctx, func(state *leaguestate.State) error {
		kept := state.Cups[:0]
		found := false
		for _, c := range state.Cups {
			if c.ID == cupID {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return fmt.Errorf("%w: cup=%s", ErrNotFound, cupID)
		}
		state.Cups = kept
		return nil
	})
}
