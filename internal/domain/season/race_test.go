package season

import (
	"strings"
	"testing"
)

func TestComputeLeaderInfo_TitleStillOpen(t *testing.T) {
	t.Parallel()

	// Leader on 15 with one match left (max 18), second on 13 with one left
	// (max 16): not confirmed, magic number 16-15+1 = 2.
	ranked := []Team{
		{ID: "lead", Name: "Lead", Points: 15, Played: 5},
		{ID: "chase", Name: "Chase", Points: 13, Played: 5},
	}

	info, ok := ComputeLeaderInfo(ranked, 6)
	if !ok {
		t.Fatalf("expected leader info for two teams")
	}
	if info.IsConfirmedWinner {
		t.Fatalf("title must still be open")
	}
	if info.MagicNumber != 2 {
		t.Fatalf("expected magic number 2, got %d", info.MagicNumber)
	}
	if info.Leader.ID != "lead" {
		t.Fatalf("unexpected leader %s", info.Leader.ID)
	}
}

func TestComputeLeaderInfo_Confirmed(t *testing.T) {
	t.Parallel()

	ranked := []Team{
		{ID: "lead", Points: 20, Played: 6},
		{ID: "chase", Points: 13, Played: 5},
	}

	info, ok := ComputeLeaderInfo(ranked, 6)
	if !ok || !info.IsConfirmedWinner {
		t.Fatalf("leader on 20 vs max 16 must be confirmed: %+v", info)
	}
	if info.MagicNumber != 0 {
		t.Fatalf("confirmed leader needs 0 more points, got %d", info.MagicNumber)
	}
}

func TestComputeLeaderInfo_UndefinedBelowTwoTeams(t *testing.T) {
	t.Parallel()

	if _, ok := ComputeLeaderInfo([]Team{{ID: "solo"}}, 0); ok {
		t.Fatalf("single-team league has no race")
	}
	if _, ok := ComputeLeaderInfo(nil, 0); ok {
		t.Fatalf("empty league has no race")
	}
}

func TestTeamChance_LeaderIsTriviallyAlive(t *testing.T) {
	t.Parallel()

	ranked := []Team{
		{ID: "lead", Name: "Lead", Points: 10, Played: 3},
		{ID: "chase", Name: "Chase", Points: 7, Played: 3},
	}

	chance, ok := TeamChance(ranked, 5, "lead")
	if !ok || !chance.CanWin || chance.WinsNeeded != 0 {
		t.Fatalf("leader must be in contention with no scenario: %+v", chance)
	}
	if !strings.Contains(chance.Scenario, "leading") {
		t.Fatalf("unexpected scenario: %q", chance.Scenario)
	}
}

func TestTeamChance_Eliminated(t *testing.T) {
	t.Parallel()

	// No matches left, zero points, leader ahead on current points.
	ranked := []Team{
		{ID: "lead", Name: "Lead", Points: 12, Played: 5},
		{ID: "out", Name: "Out", Points: 0, Played: 5},
	}

	chance, ok := TeamChance(ranked, 5, "out")
	if !ok {
		t.Fatalf("expected chance for known team")
	}
	if chance.CanWin {
		t.Fatalf("team with max 0 vs leader 12 cannot win")
	}
	if chance.WinsNeeded != 1 {
		t.Fatalf("eliminated team reports remaining+1 wins needed, got %d", chance.WinsNeeded)
	}
}

func TestTeamChance_AliveNeedsLeaderToDropPoints(t *testing.T) {
	t.Parallel()

	// Chaser is 6 behind with 2 left: needs 7 points, 3 wins, but only 2
	// matches remain, so the leader must drop points in at least one.
	ranked := []Team{
		{ID: "lead", Name: "Lead", Points: 12, Played: 4},
		{ID: "chase", Name: "Chase", Points: 6, Played: 4},
	}

	chance, ok := TeamChance(ranked, 6, "chase")
	if !ok || !chance.CanWin {
		t.Fatalf("chaser able to reach 12 must still be alive: %+v", chance)
	}
	if chance.WinsNeeded != 3 {
		t.Fatalf("expected 3 wins needed, got %d", chance.WinsNeeded)
	}
	if !strings.Contains(chance.Scenario, "drop points in 1 match(es)") {
		t.Fatalf("scenario must carry the leader-drop count: %q", chance.Scenario)
	}
}

func TestTeamChance_UnknownTeam(t *testing.T) {
	t.Parallel()

	ranked := []Team{{ID: "lead", Points: 3}}
	if _, ok := TeamChance(ranked, 3, "nobody"); ok {
		t.Fatalf("unknown team id must report ok=false")
	}
}
