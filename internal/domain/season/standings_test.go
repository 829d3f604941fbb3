package season

import "testing"

func TestRank_OrdersByPointsGoalDifferenceGoalsFor(t *testing.T) {
	t.Parallel()

	teams := []Team{
		{ID: "a", Points: 10, GoalsFor: 12, GoalsAgainst: 8},
		{ID: "b", Points: 12, GoalsFor: 9, GoalsAgainst: 9},
		{ID: "c", Points: 10, GoalsFor: 15, GoalsAgainst: 11},
		{ID: "d", Points: 10, GoalsFor: 16, GoalsAgainst: 12},
	}

	ranked := Rank(teams)

	want := []string{"b", "d", "c", "a"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Fatalf("rank %d: expected %s, got %s", i+1, id, ranked[i].ID)
		}
	}
}

func TestRank_FullTiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	teams := []Team{
		{ID: "first", Points: 7, GoalsFor: 5, GoalsAgainst: 3},
		{ID: "second", Points: 7, GoalsFor: 5, GoalsAgainst: 3},
		{ID: "third", Points: 7, GoalsFor: 5, GoalsAgainst: 3},
	}

	ranked := Rank(teams)

	for i, id := range []string{"first", "second", "third"} {
		if ranked[i].ID != id {
			t.Fatalf("tied teams reordered: position %d is %s", i, ranked[i].ID)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	teams := []Team{
		{ID: "low", Points: 1},
		{ID: "high", Points: 9},
	}

	_ = Rank(teams)

	if teams[0].ID != "low" {
		t.Fatalf("input slice was reordered")
	}
}
