package postgres

import (
	"context"
	"database/sql"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
)

// DefaultSnapshotName is the blob key the store persists under.
const DefaultSnapshotName = "cosmus-league-storage"

type snapshotRow struct {
	Name      string    `db:"name"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Snapshots keeps the whole league state in one JSONB row.
type Snapshots struct {
	db   *sqlx.DB
	name string
}

func NewSnapshots(db *sqlx.DB, name string) *Snapshots {
	if name == "" {
		name = DefaultSnapshotName
	}
	return &Snapshots{db: db, name: name}
}

func (s *Snapshots) Load(ctx context.Context) (leaguestate.State, bool, error) {
	var row snapshotRow
	err := s.db.GetContext(ctx, &row,
		`SELECT name, payload, updated_at FROM league_snapshots WHERE name = $1`, s.name)
	if err != nil {
		if crerr.Is(err, sql.ErrNoRows) {
			return leaguestate.State{}, false, nil
		}
		return leaguestate.State{}, false, crerr.Wrapf(err, "get snapshot %s", s.name)
	}

	var state leaguestate.State
	if err := sonic.Unmarshal(row.Payload, &state); err != nil {
		return leaguestate.State{}, false, crerr.Wrapf(err, "decode snapshot %s", s.name)
	}

	return state, true, nil
}

func (s *Snapshots) Save(ctx context.Context, state leaguestate.State) error {
	payload, err := sonic.Marshal(state)
	if err != nil {
		return crerr.Wrap(err, "encode snapshot")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO league_snapshots (name, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.name, payload)
	if err != nil {
		return crerr.Wrapf(err, "upsert snapshot %s", s.name)
	}

	return nil
}
