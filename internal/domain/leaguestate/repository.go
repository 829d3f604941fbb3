package leaguestate

import "context"

// Snapshots persists the whole league state as one named blob. Load reports
// found=false when no snapshot exists yet.
type Snapshots interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
}
