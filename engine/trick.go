package engine

// bestPlay returns the index of the play of the given suit with the highest
// effective value, or -1 when no play matches. Earlier plays win ties.
func bestPlay(plays []Play, suit Suit) int {
	best, bestValue := -1, 0
	for i, p := range plays {
		if p.Card.Suit != suit {
			continue
		}
		if v := p.Card.EffectiveValue(); best < 0 || v > bestValue {
			best, bestValue = i, v
		}
	}
	return best
}

// resolveTrick closes the full current trick: picks a winner (trump scan
// first, then lead suit), applies the Last Quarter rank-tie cancellation,
// credits the winner, and seats the next leader.
func (s *Session) resolveTrick() {
	trick := s.CurrentTrick
	winIdx := -1

	if !trick.Voided {
		if s.Trump != nil {
			winIdx = bestPlay(trick.Plays, *s.Trump)
		}
		if winIdx < 0 {
			winIdx = bestPlay(trick.Plays, *trick.LeadSuit)
		}

		// Last Quarter: any other play matching the provisional winner's
		// rank cancels the trick outright. Checked on rank alone, whichever
		// suit scan produced the winner.
		if winIdx >= 0 && s.LunarPhase == LastQuarter {
			winRank := trick.Plays[winIdx].Card.Rank
			for i, p := range trick.Plays {
				if i != winIdx && p.Card.Rank == winRank {
					winIdx = -1
					break
				}
			}
		}
	}

	nextLeader := -1
	if winIdx >= 0 {
		play := trick.Plays[winIdx]
		pi := s.playerIndex(play.PlayerID)
		p := &s.Players[pi]
		p.Tricks++
		p.LunarFavor++
		p.CardsWon = append(p.CardsWon, play.Card)
		if modeConfigs[s.Mode].TeamsEnabled {
			s.TeamScore++
		}
		id := play.PlayerID
		trick.Winner = &id
		nextLeader = pi
	} else {
		// No winner: the seat after the trick's leader opens the next one.
		nextLeader = (s.playerIndex(trick.leadPlayerID()) + 1) % len(s.Players)
	}

	s.CompletedTricks = append(s.CompletedTricks, *trick)
	s.CurrentTrick = &Trick{}
	s.Current = nextLeader
}
