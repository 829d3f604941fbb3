package file

import (
	"context"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/hasysamur-cmd/cosmus-league/internal/domain/leaguestate"
)

// Snapshots keeps the league state in a single JSON file. Saves go through a
// temp file and a rename, so a crash mid-write never leaves a torn snapshot.
type Snapshots struct {
	path string
}

func NewSnapshots(path string) *Snapshots {
	return &Snapshots{path: path}
}

func (s *Snapshots) Load(_ context.Context) (leaguestate.State, bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return leaguestate.State{}, false, nil
		}
		return leaguestate.State{}, false, crerr.Wrapf(err, "read snapshot %s", s.path)
	}

	var state leaguestate.State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		return leaguestate.State{}, false, crerr.Wrapf(err, "decode snapshot %s", s.path)
	}

	return state, true, nil
}

func (s *Snapshots) Save(_ context.Context, state leaguestate.State) error {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return crerr.Wrap(err, "encode snapshot")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return crerr.Wrapf(err, "create temp snapshot in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "write temp snapshot %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "close temp snapshot %s", tmpName)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return crerr.Wrapf(err, "replace snapshot %s", s.path)
	}

	return nil
}
