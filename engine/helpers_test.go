package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkCard builds a standard card the way the catalog does. Tests must not
// reuse the same suit/rank pair within one session.
func mkCard(s Suit, r Rank) Card {
	return Card{
		ID:      fmt.Sprintf("%s-%d", slug(suitNames[s]), r),
		Suit:    s,
		Rank:    r,
		Special: r > 10,
	}
}

// mkPowerCard builds a special power-carrying card with a synthetic id.
func mkPowerCard(s Suit, r Rank, p Power) Card {
	return Card{
		ID:      fmt.Sprintf("%s-%d-%s", slug(suitNames[s]), r, p),
		Suit:    s,
		Rank:    r,
		Power:   p,
		Special: true,
	}
}

// playSession builds a session already in the Playing phase with the given
// hands, bypassing bidding. Player ids are p1, p2, ...
func playSession(mode Mode, lunar LunarPhase, hands ...[]Card) Session {
	players := make([]Player, len(hands))
	for i, h := range hands {
		players[i] = Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
			Hand: append([]Card(nil), h...),
		}
	}
	return Session{
		Players:      players,
		Phase:        PhasePlaying,
		Round:        1,
		TotalRounds:  3,
		Mode:         mode,
		LunarPhase:   lunar,
		Season:       Spring,
		CurrentTrick: &Trick{},
		rng:          7,
	}
}

// testConfig returns a Config with n generated players.
func testConfig(mode Mode, lunar LunarPhase, season Season, n int) Config {
	cfg := Config{LunarPhase: lunar, Season: season, Mode: mode, Seed: 42}
	for i := 1; i <= n; i++ {
		cfg.PlayerIDs = append(cfg.PlayerIDs, fmt.Sprintf("p%d", i))
		cfg.PlayerNames = append(cfg.PlayerNames, fmt.Sprintf("Player %d", i))
	}
	return cfg
}

func mustSession(t *testing.T, cfg Config) Session {
	t.Helper()
	s, err := NewSession(cfg)
	require.NoError(t, err)
	return s
}

// mustPlay applies a sequence of (player, card) plays, failing on any error.
func mustPlay(t *testing.T, s Session, plays ...[2]string) Session {
	t.Helper()
	for _, pc := range plays {
		var err error
		s, err = PlayCard(s, pc[0], pc[1])
		require.NoError(t, err, "play %s by %s", pc[1], pc[0])
	}
	return s
}

// cardCount totals every card tracked by the session: hands, draw pile, the
// in-progress trick, and completed tricks.
func cardCount(s Session) int {
	n := len(s.DrawPile)
	for _, p := range s.Players {
		n += len(p.Hand)
	}
	if s.CurrentTrick != nil {
		n += len(s.CurrentTrick.Plays)
	}
	for _, t := range s.CompletedTricks {
		n += len(t.Plays)
	}
	return n
}
