package season

import "fmt"

// RoundRobin builds the full fixture set for a fresh season: each unordered
// team pair appears exactly once, with the earlier team in input order at
// home. Fixtures start unplayed with a zero score and no date.
func RoundRobin(teams []Team, nextID func() (string, error)) ([]Match, error) {
	matches := make([]Match, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			id, err := nextID()
			if err != nil {
				return nil, fmt.Errorf("generate match id: %w", err)
			}
			matches = append(matches, Match{
				ID:           id,
				HomeTeamID:   teams[i].ID,
				AwayTeamID:   teams[j].ID,
				HomeTeamName: teams[i].Name,
				AwayTeamName: teams[j].Name,
				Goals:        []GoalEvent{},
				Cards:        []CardEvent{},
			})
		}
	}
	return matches, nil
}
