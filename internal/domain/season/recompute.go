package season

import "sort"

// Recalculate rebuilds every team and player aggregate from the season's
// played matches. It is a pure function: aggregates are zeroed first and
// derived from the match log alone, so running it on its own output is a
// no-op. Events referencing unknown player ids are skipped, and a match
// referencing an unknown team id is skipped entirely.
func Recalculate(s Season) Season {
	out := s.Clone()

	teams := make(map[string]*Team, len(out.Teams))
	for i := range out.Teams {
		t := &out.Teams[i]
		t.Played, t.Won, t.Drawn, t.Lost = 0, 0, 0, 0
		t.GoalsFor, t.GoalsAgainst, t.Points = 0, 0, 0
		t.Form = nil
		teams[t.ID] = t
	}

	players := make(map[string]*Player, len(out.Players))
	for i := range out.Players {
		p := &out.Players[i]
		p.Goals, p.Assists, p.OwnGoals = 0, 0, 0
		p.YellowCards, p.RedCards, p.MatchesPlayed = 0, 0, 0
		players[p.ID] = p
	}

	played := make([]Match, 0, len(out.Matches))
	for _, m := range out.Matches {
		if m.Played {
			played = append(played, m)
		}
	}
	// Dates are ISO strings, so lexicographic order is chronological. The
	// stable sort keeps insertion order for equal dates, which fixes the
	// order form symbols are appended in.
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Date < played[j].Date
	})

	for _, m := range played {
		home := teams[m.HomeTeamID]
		away := teams[m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeScore
		home.GoalsAgainst += m.AwayScore
		away.GoalsFor += m.AwayScore
		away.GoalsAgainst += m.HomeScore

		switch {
		case m.HomeScore > m.AwayScore:
			home.Won++
			home.Points += 3
			home.Form = append(home.Form, OutcomeWin)
			away.Lost++
			away.Form = append(away.Form, OutcomeLoss)
		case m.HomeScore < m.AwayScore:
			away.Won++
			away.Points += 3
			away.Form = append(away.Form, OutcomeWin)
			home.Lost++
			home.Form = append(home.Form, OutcomeLoss)
		default:
			home.Drawn++
			home.Points++
			home.Form = append(home.Form, OutcomeDraw)
			away.Drawn++
			away.Points++
			away.Form = append(away.Form, OutcomeDraw)
		}

		involved := make(map[string]struct{}, len(m.Goals)+len(m.Cards))

		for _, g := range m.Goals {
			involved[g.PlayerID] = struct{}{}
			if p := players[g.PlayerID]; p != nil {
				// Team goalsFor/Against already reflect the match score; an
				// own goal only moves the scorer's personal tally.
				if g.IsOwnGoal {
					p.OwnGoals++
				} else {
					p.Goals++
				}
			}
			if g.AssistPlayerID != "" {
				involved[g.AssistPlayerID] = struct{}{}
				if a := players[g.AssistPlayerID]; a != nil {
					a.Assists++
				}
			}
		}

		for _, c := range m.Cards {
			involved[c.PlayerID] = struct{}{}
			p := players[c.PlayerID]
			if p == nil {
				continue
			}
			if c.Kind == CardRed {
				p.RedCards++
			} else {
				p.YellowCards++
			}
		}

		// One appearance per match however many events a player shows up in.
		for id := range involved {
			if p := players[id]; p != nil {
				p.MatchesPlayed++
			}
		}
	}

	for i := range out.Teams {
		if form := out.Teams[i].Form; len(form) > FormLength {
			out.Teams[i].Form = form[len(form)-FormLength:]
		}
	}

	return out
}
