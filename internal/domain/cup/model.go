package cup

import "github.com/hasysamur-cmd/cosmus-league/internal/domain/season"

// Cup is a pure record-keeping entity, independent of any season. Its match
// list is kept for display only and never feeds the recompute engine.
type Cup struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Date        string         `json:"date"`
	Image       string         `json:"image,omitempty"`
	Winner      string         `json:"winner,omitempty"`
	RunnerUp    string         `json:"runnerUp,omitempty"`
	Matches     []season.Match `json:"matches"`
}

func (c Cup) Clone() Cup {
	out := c
	out.Matches = make([]season.Match, len(c.Matches))
	for i, m := range c.Matches {
		out.Matches[i] = m.Clone()
	}
	return out
}
