package engine

// CurrentPlayerID returns the id of the turn holder.
func CurrentPlayerID(s Session) string {
	return s.Players[s.Current].ID
}

// LegalPlays returns the cards the player could legally play right now, or
// nil outside the Playing phase or for an unknown player. Bots and UIs use
// this; PlayCard revalidates regardless.
func LegalPlays(s Session, playerID string) []Card {
	if s.Phase != PhasePlaying {
		return nil
	}
	idx := s.playerIndex(playerID)
	if idx < 0 {
		return nil
	}
	hand := s.Players[idx].Hand
	trick := s.CurrentTrick
	if trick == nil || len(trick.Plays) == 0 {
		return append([]Card(nil), hand...)
	}
	lead := *trick.LeadSuit
	if !s.Players[idx].hasSuit(lead) {
		return append([]Card(nil), hand...)
	}
	var out []Card
	for _, c := range hand {
		if c.Suit == lead {
			out = append(out, c)
		}
	}
	return out
}
