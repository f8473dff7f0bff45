package engine

// scoreRound runs once the round's card supply is exhausted: applies the
// mode's scoring family plus flat lunar favor, pays doubled-trick bonuses,
// then either redeals the next round or finalizes the game.
func (s *Session) scoreRound() {
	s.Phase = PhaseScoring
	s.CurrentTrick = nil

	for i := range s.Players {
		p := &s.Players[i]
		p.Score += s.roundScore(p) + p.LunarFavor
	}

	// A doubled trick pays its winner a flat +10, the value of one made bid.
	for _, t := range s.CompletedTricks {
		if t.Doubled && t.Winner != nil {
			s.Players[s.playerIndex(*t.Winner)].Score += 10
		}
	}

	if s.Round < s.TotalRounds {
		s.Round++
		s.startRound()
		return
	}
	s.finalize()
}

func (s *Session) roundScore(p *Player) int {
	switch modeConfigs[s.Mode].Scoring {
	case scoreBid:
		return s.bidScore(p)
	case scoreBalance:
		return s.balanceScore(p)
	case scoreCooperative:
		if s.roleConditionMet(p) {
			return 15
		}
		return 0
	}
	return 0
}

// bidScore is the standard-family formula: made bids pay bid×10 plus one per
// overtrick, missed bids cost bid×5. An exact nonzero bid earns a bonus,
// doubled under the New Moon.
func (s *Session) bidScore(p *Player) int {
	bid := 0
	if p.Bid != nil {
		bid = *p.Bid
	}
	if p.Tricks < bid {
		return -bid * 5
	}
	pts := bid*10 + (p.Tricks - bid)
	if p.Tricks == bid && bid > 0 {
		bonus := 10
		if s.LunarPhase == NewMoon {
			bonus = 20
		}
		pts += bonus
	}
	return pts
}

// balanceScore (equinox) pays for landing near exactly half the round's
// tricks, with a flat bonus for hitting the midpoint.
func (s *Session) balanceScore(p *Player) int {
	half := len(s.CompletedTricks) / 2
	diff := p.Tricks - half
	if diff < 0 {
		diff = -diff
	}
	pts := 20 - 5*diff
	if pts < 0 {
		pts = 0
	}
	if p.Tricks == half {
		pts += 20
	}
	return pts
}

// roleConditionMet checks the cooperative role contract for one player.
func (s *Session) roleConditionMet(p *Player) bool {
	switch p.Role {
	case RoleNavigator:
		return p.Bid != nil && p.Tricks == *p.Bid
	case RoleGuardian:
		return p.Tricks >= 1
	case RoleChanneler:
		return p.LunarFavor >= 3
	case RoleDiviner:
		return p.Bid != nil && *p.Bid == 0 && p.Tricks == 0
	}
	return false
}
