package season

import "fmt"

// LeaderInfo describes the title race seen from the top of the table.
type LeaderInfo struct {
	Leader            Team
	IsConfirmedWinner bool
	MagicNumber       int
}

// Chance describes whether a team can still take the title and what it
// would minimally require.
type Chance struct {
	CanWin     bool
	WinsNeeded int
	Scenario   string
}

// ComputeLeaderInfo compares the leader against the runner-up's best
// reachable total. The magic number is how many more points the leader needs
// to be out of reach regardless of other results. It reports ok=false with
// fewer than two ranked teams, where the race is undefined.
func ComputeLeaderInfo(ranked []Team, matchesPerTeam int) (LeaderInfo, bool) {
	if len(ranked) < 2 {
		return LeaderInfo{}, false
	}

	leader := ranked[0]
	second := ranked[1]
	secondMax := second.Points + (matchesPerTeam-second.Played)*3

	magic := secondMax - leader.Points + 1
	if magic < 0 {
		magic = 0
	}

	return LeaderInfo{
		Leader:            leader,
		IsConfirmedWinner: leader.Points > secondMax,
		MagicNumber:       magic,
	}, true
}

// TeamChance works out the minimal title scenario for one team: the wins it
// needs to pass the leader's current total and, when it cannot collect that
// many on its own, how many of the leader's remaining matches must yield the
// leader fewer than three points. It reports ok=false when the team is not
// in the ranked slice.
func TeamChance(ranked []Team, matchesPerTeam int, teamID string) (Chance, bool) {
	if len(ranked) == 0 {
		return Chance{}, false
	}

	leader := ranked[0]
	var team Team
	found := false
	for _, t := range ranked {
		if t.ID == teamID {
			team = t
			found = true
			break
		}
	}
	if !found {
		return Chance{}, false
	}

	if team.ID == leader.ID {
		return Chance{
			CanWin:   true,
			Scenario: fmt.Sprintf("%s is currently leading!", team.Name),
		}, true
	}

	remaining := matchesPerTeam - team.Played
	maxPoints := team.Points + remaining*3

	if maxPoints < leader.Points {
		return Chance{
			WinsNeeded: remaining + 1,
			Scenario:   fmt.Sprintf("%s cannot mathematically overtake %s", team.Name, leader.Name),
		}, true
	}

	pointsNeeded := leader.Points - team.Points + 1
	winsNeeded := (pointsNeeded + 2) / 3
	leaderMustDrop := winsNeeded - remaining
	if leaderMustDrop < 0 {
		leaderMustDrop = 0
	}

	scenario := fmt.Sprintf("%s needs %d win(s) from %d remaining", team.Name, winsNeeded, remaining)
	if leaderMustDrop > 0 {
		scenario += fmt.Sprintf(" AND %s must drop points in %d match(es)", leader.Name, leaderMustDrop)
	}

	return Chance{
		CanWin:     true,
		WinsNeeded: winsNeeded,
		Scenario:   scenario,
	}, true
}
