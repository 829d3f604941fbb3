package season

import "sort"

// Rank orders teams by points, then goal difference, then goals scored, all
// descending. The sort is stable, so teams tied on all three keys keep their
// input order; no further tie-break is applied.
func Rank(teams []Team) []Team {
	ranked := make([]Team, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		return a.GoalsFor > b.GoalsFor
	})

	return ranked
}
