package engine

import "fmt"

// placeBid validates and records a bid, then advances the turn index.
//
// Bid order is deliberately loose: any known player may submit in any order
// (supporting simultaneous or hidden bidding at the application layer), and
// the turn index advances once per accepted bid regardless of who bid. Only
// the phase, the player's existence, and the [0, hand size] range are
// enforced. Once every player holds a bid the session enters Playing.
func (s *Session) placeBid(playerID string, amount int) error {
	if s.Phase != PhaseBidding {
		return fmt.Errorf("%w: bid during %s phase", ErrPhaseViolation, s.Phase)
	}
	idx := s.playerIndex(playerID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, playerID)
	}
	p := &s.Players[idx]
	if amount < 0 || amount > len(p.Hand) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidBid, amount, len(p.Hand))
	}

	p.Bid = &amount

	for i := range s.Players {
		if s.Players[i].Bid == nil {
			s.Current = (s.Current + 1) % len(s.Players)
			return nil
		}
	}

	// All bids in: open play with a fresh trick.
	s.Phase = PhasePlaying
	s.CurrentTrick = &Trick{}
	s.Current = s.roundLeader()
	return nil
}

// playCard validates a play, moves the card from hand to trick, fires its
// power effect immediately, and resolves the trick once it is full.
func (s *Session) playCard(playerID, cardID string) error {
	if s.Phase != PhasePlaying {
		return fmt.Errorf("%w: play during %s phase", ErrPhaseViolation, s.Phase)
	}
	idx := s.playerIndex(playerID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, playerID)
	}
	if idx != s.Current {
		return fmt.Errorf("%w: turn belongs to %q", ErrNotPlayersTurn, s.Players[s.Current].ID)
	}
	p := &s.Players[idx]
	ci := p.cardIndex(cardID)
	if ci < 0 {
		return fmt.Errorf("%w: %q", ErrCardNotInHand, cardID)
	}
	card := p.Hand[ci]

	trick := s.CurrentTrick
	if len(trick.Plays) > 0 && card.Suit != *trick.LeadSuit && p.hasSuit(*trick.LeadSuit) {
		return fmt.Errorf("%w: %s led", ErrSuitViolation, trick.LeadSuit)
	}

	// Validation done; mutate.
	p.Hand = append(p.Hand[:ci], p.Hand[ci+1:]...)
	if len(trick.Plays) == 0 {
		lead := card.Suit
		trick.LeadSuit = &lead
	}
	trick.Plays = append(trick.Plays, Play{PlayerID: playerID, Card: card})

	// Powers fire at play time so nullify/double are visible to later players.
	if card.Power != PowerNone {
		s.applyPower(card.Power, playContext{actorIdx: idx, playIdx: len(trick.Plays) - 1})
	}

	if len(trick.Plays) == len(s.Players) {
		s.resolveTrick()
		if s.handsEmpty() {
			s.scoreRound()
		}
		return nil
	}

	s.Current = (s.Current + 1) % len(s.Players)
	return nil
}

func (s *Session) handsEmpty() bool {
	for i := range s.Players {
		if len(s.Players[i].Hand) > 0 {
			return false
		}
	}
	return true
}
