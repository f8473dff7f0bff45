// Package sim provides a seeded random player used by the simulation driver
// and integration tests.
package sim

import (
	"math/rand"

	"github.com/pointlesslygaychipmunk/coven-sub003/engine"
)

// Bot picks uniformly among legal moves. Not smart, but always legal, which
// is what playout tests need.
type Bot struct {
	rng *rand.Rand
}

func New(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Bid returns a bid in [0, hand size] for the player.
func (b *Bot) Bid(s engine.Session, playerID string) int {
	for _, p := range s.Players {
		if p.ID == playerID {
			return b.rng.Intn(len(p.Hand) + 1)
		}
	}
	return 0
}

// Play returns the id of a random legal card, or false when the player has
// no legal play (wrong phase or empty hand).
func (b *Bot) Play(s engine.Session, playerID string) (string, bool) {
	legal := engine.LegalPlays(s, playerID)
	if len(legal) == 0 {
		return "", false
	}
	return legal[b.rng.Intn(len(legal))].ID, true
}
