// Package engine implements the Moon Bid rules engine: deck assembly, the
// bidding/playing/scoring state machine, trick resolution, power-card
// effects, and per-mode scoring and reward evaluation.
//
// The engine is deterministic and synchronous. Every public operation takes
// a Session snapshot and returns a new snapshot reflecting one complete
// state transition; the input is never mutated, and a rejected action
// returns the input unchanged alongside a typed error. Randomness (shuffle,
// reward drop rolls) comes from an xorshift64 state carried inside the
// session and seeded at init, so whole games replay exactly from a seed.
package engine

import "fmt"

// Config describes one game to initialize. PlayerIDs and PlayerNames are
// parallel; the roster is supplied pre-validated by the world engine.
type Config struct {
	PlayerIDs   []string
	PlayerNames []string
	LunarPhase  LunarPhase
	Season      Season
	Mode        Mode
	Seed        uint64
}

// RewardGrant is one granted reward line in the final report.
type RewardGrant struct {
	Item     string
	Quantity int
}

// WinnerReport is the engine's final output, valid once a session is
// finalized.
type WinnerReport struct {
	WinnerIDs []string
	Scores    map[string]int
	TeamWin   bool
	Rewards   map[string][]RewardGrant
}

// Session is the aggregate root holding all mutable game state. Treat it as
// an opaque snapshot: read it freely, but advance it only through PlaceBid
// and PlayCard.
type Session struct {
	Players         []Player
	Phase           Phase
	Current         int // index into Players of the turn holder
	Round           int
	TotalRounds     int
	DrawPile        []Card
	CurrentTrick    *Trick // nil outside the Playing phase
	CompletedTricks []Trick
	Trump           *Suit
	Mode            Mode
	BidStyle        BidStyle // how the application should reveal bids
	LunarPhase      LunarPhase
	Season          Season
	PhaseBonus      string
	Rewards         []Reward
	Earned          map[string][]RewardGrant
	LunarEnergy     int
	TeamScore       int

	rng uint64
}

// NewSession initializes a game: roster, mode rules, reward catalog, and the
// first round's shuffle and deal. It fails if the player count is outside
// the mode's bounds.
func NewSession(cfg Config) (Session, error) {
	mc, ok := modeConfigs[cfg.Mode]
	if !ok {
		return Session{}, fmt.Errorf("unknown game mode %d", cfg.Mode)
	}
	n := len(cfg.PlayerIDs)
	if n != len(cfg.PlayerNames) {
		return Session{}, fmt.Errorf("roster mismatch: %d ids, %d names", n, len(cfg.PlayerNames))
	}
	if n < mc.MinPlayers || n > mc.MaxPlayers {
		return Session{}, fmt.Errorf("%w: %s mode takes %d-%d players, got %d",
			ErrInvalidPlayerCount, cfg.Mode, mc.MinPlayers, mc.MaxPlayers, n)
	}

	s := Session{
		Players:     make([]Player, n),
		Round:       1,
		TotalRounds: mc.TotalRounds,
		Trump:       mc.Trump(cfg.LunarPhase, cfg.Season),
		Mode:        cfg.Mode,
		BidStyle:    mc.BidStyle,
		LunarPhase:  cfg.LunarPhase,
		Season:      cfg.Season,
		PhaseBonus:  phaseModifiers[cfg.LunarPhase].Rule,
		Rewards:     buildRewardCatalog(cfg.Mode, cfg.LunarPhase, cfg.Season),
		rng:         cfg.Seed,
	}
	if s.rng == 0 {
		s.rng = 1 // xorshift cannot start at 0
	}

	for i := range s.Players {
		s.Players[i] = Player{ID: cfg.PlayerIDs[i], Name: cfg.PlayerNames[i]}
		if mc.TeamsEnabled {
			s.Players[i].Role = coopRoles[i%len(coopRoles)]
		}
	}

	s.startRound()
	return s, nil
}

// startRound resets per-round player state, redeals, and enters Bidding.
func (s *Session) startRound() {
	for i := range s.Players {
		p := &s.Players[i]
		p.Bid = nil
		p.Tricks = 0
		p.PowerUsed = false
		p.Protected = false
		p.CardsWon = nil
	}
	s.CompletedTricks = nil
	s.CurrentTrick = nil
	s.dealRound()
	s.Phase = PhaseBidding
	s.Current = s.roundLeader()
}

// roundLeader rotates the opening seat with the round number.
func (s *Session) roundLeader() int {
	return (s.Round - 1) % len(s.Players)
}

func (s *Session) playerIndex(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, carried in the session so snapshots replay identically
// ---------------------------------------------------------------------------

func (s *Session) nextRand() uint64 {
	x := s.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.rng = x
	return x
}

// randN returns a random number in [0, n).
func (s *Session) randN(n uint64) uint64 {
	return s.nextRand() % n
}

// ---------------------------------------------------------------------------
// Snapshot copying
// ---------------------------------------------------------------------------

func cloneTrick(t Trick) Trick {
	c := t
	c.Plays = append([]Play(nil), t.Plays...)
	if t.LeadSuit != nil {
		ls := *t.LeadSuit
		c.LeadSuit = &ls
	}
	if t.Winner != nil {
		w := *t.Winner
		c.Winner = &w
	}
	return c
}

// Clone returns a deep copy sharing no mutable state with the receiver.
// Observers that want to hold or hand out a session use this; the engine's
// own operations clone internally.
func (s Session) Clone() Session {
	return s.clone()
}

func (s *Session) clone() Session {
	c := *s
	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Hand = append([]Card(nil), p.Hand...)
		p.CardsWon = append([]Card(nil), p.CardsWon...)
		if p.Bid != nil {
			b := *p.Bid
			p.Bid = &b
		}
		c.Players[i] = p
	}
	c.DrawPile = append([]Card(nil), s.DrawPile...)
	c.CompletedTricks = make([]Trick, len(s.CompletedTricks))
	for i, t := range s.CompletedTricks {
		c.CompletedTricks[i] = cloneTrick(t)
	}
	if s.CurrentTrick != nil {
		t := cloneTrick(*s.CurrentTrick)
		c.CurrentTrick = &t
	}
	if s.Trump != nil {
		tr := *s.Trump
		c.Trump = &tr
	}
	c.Rewards = append([]Reward(nil), s.Rewards...)
	if s.Earned != nil {
		c.Earned = make(map[string][]RewardGrant, len(s.Earned))
		for k, v := range s.Earned {
			c.Earned[k] = append([]RewardGrant(nil), v...)
		}
	}
	return c
}

// ---------------------------------------------------------------------------
// Public snapshot operations
// ---------------------------------------------------------------------------

// PlaceBid records one player's bid. See placeBid for the accepted-order
// semantics.
func PlaceBid(s Session, playerID string, amount int) (Session, error) {
	next := s.clone()
	if err := next.placeBid(playerID, amount); err != nil {
		return s, err
	}
	return next, nil
}

// PlayCard plays one card from the current player's hand into the trick,
// applying any power effect immediately and resolving the trick when full.
func PlayCard(s Session, playerID, cardID string) (Session, error) {
	next := s.clone()
	if err := next.playCard(playerID, cardID); err != nil {
		return s, err
	}
	return next, nil
}

// Winners produces the final report. Valid only once the session has reached
// the Finalized phase.
func Winners(s Session) (WinnerReport, error) {
	if s.Phase != PhaseFinalized {
		return WinnerReport{}, fmt.Errorf("%w: winners requested in %s phase", ErrPhaseViolation, s.Phase)
	}

	report := WinnerReport{
		Scores:  make(map[string]int, len(s.Players)),
		Rewards: make(map[string][]RewardGrant, len(s.Earned)),
	}
	for _, p := range s.Players {
		report.Scores[p.ID] = p.Score
	}
	for id, grants := range s.Earned {
		report.Rewards[id] = append([]RewardGrant(nil), grants...)
	}

	if modeConfigs[s.Mode].TeamsEnabled {
		if s.TeamScore >= len(s.Players)*3 {
			report.TeamWin = true
			for _, p := range s.Players {
				report.WinnerIDs = append(report.WinnerIDs, p.ID)
			}
		}
		return report, nil
	}

	best := s.Players[0].Score
	for _, p := range s.Players[1:] {
		if p.Score > best {
			best = p.Score
		}
	}
	for _, p := range s.Players {
		if p.Score == best {
			report.WinnerIDs = append(report.WinnerIDs, p.ID)
		}
	}
	return report, nil
}
