package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerHandlerTableIsComplete(t *testing.T) {
	for p := PowerNullify; p <= PowerReveal; p++ {
		assert.Contains(t, powerHandlers, p, "power %s has no handler", p)
	}
}

func TestPowerDoubleMarksTrick(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerDouble), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})

	s = mustPlay(t, s, [2]string{"p1", "stars-5-double"}, [2]string{"p2", "stars-9"})

	assert.True(t, s.CompletedTricks[0].Doubled)
	assert.True(t, s.Players[0].PowerUsed)
}

func TestPowerStealRespectsProtection(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerSteal), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)},
		[]Card{mkCard(SuitStars, 4), mkCard(SuitStars, 6)})
	s.Players[1].LunarFavor = 3
	s.Players[2].LunarFavor = 3
	s.Players[2].Protected = true

	s2, err := PlayCard(s, "p1", "stars-5-steal")
	require.NoError(t, err)

	assert.Equal(t, 1, s2.Players[0].LunarFavor)
	assert.Equal(t, 2, s2.Players[1].LunarFavor)
	assert.Equal(t, 3, s2.Players[2].LunarFavor, "protected player keeps favor")
}

func TestPowerStealSkipsEmptyPools(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerSteal), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})

	s2, err := PlayCard(s, "p1", "stars-5-steal")
	require.NoError(t, err)
	assert.Zero(t, s2.Players[0].LunarFavor)
	assert.Zero(t, s2.Players[1].LunarFavor)
}

func TestPowerPredictOnlyWhileBidHolds(t *testing.T) {
	bid := 1
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerPredict), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})
	s.Players[0].Bid = &bid

	s2, err := PlayCard(s, "p1", "stars-5-predict")
	require.NoError(t, err)
	assert.Equal(t, 2, s2.Players[0].LunarFavor)

	// Overshot bid: no bonus.
	over := s.Clone()
	over.Players[0].Tricks = 2
	over2, err := PlayCard(over, "p1", "stars-5-predict")
	require.NoError(t, err)
	assert.Zero(t, over2.Players[0].LunarFavor)
}

func TestPowerSwapExchangesLowestWithPileTop(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerSwap), mkCard(SuitStars, 2), mkCard(SuitCharms, 9)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3), mkCard(SuitStars, 4)})
	pileCard := mkCard(SuitMoons, 11)
	s.DrawPile = []Card{mkCard(SuitMoons, 4), pileCard}

	s2, err := PlayCard(s, "p1", "stars-5-swap")
	require.NoError(t, err)

	// The lowest remaining hand card (stars-2) went to the pile top.
	assert.Equal(t, "stars-2", s2.DrawPile[len(s2.DrawPile)-1].ID)
	ids := cardIDs(s2.Players[0].Hand)
	assert.Contains(t, ids, pileCard.ID)
	assert.NotContains(t, ids, "stars-2")
}

func cardIDs(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestPowerIlluminateFeedsEveryone(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerIlluminate), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})

	s2, err := PlayCard(s, "p1", "stars-5-illuminate")
	require.NoError(t, err)
	assert.Equal(t, 1, s2.Players[0].LunarFavor)
	assert.Equal(t, 1, s2.Players[1].LunarFavor)
	assert.Equal(t, 5, s2.LunarEnergy)
}

func TestPowerDuplicateRepeatsPreviousPower(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerIlluminate), mkCard(SuitStars, 2)},
		[]Card{mkPowerCard(SuitStars, 9, PowerDuplicate), mkCard(SuitStars, 3)})

	s = mustPlay(t, s, [2]string{"p1", "stars-5-illuminate"}, [2]string{"p2", "stars-9-duplicate"})

	// Illuminate fired twice: once directly, once via duplicate.
	assert.Equal(t, 10, s.LunarEnergy)
}

func TestPowerDuplicateAsLeadDoesNothing(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerDuplicate), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})

	s2, err := PlayCard(s, "p1", "stars-5-duplicate")
	require.NoError(t, err)
	assert.Zero(t, s2.LunarEnergy)
	assert.True(t, s2.Players[0].PowerUsed, "a fizzled power still spends the round's use")
}

func TestPowerTransformRewritesSuitToTrump(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 2)},
		[]Card{mkPowerCard(SuitMoons, 3, PowerTransform), mkCard(SuitMoons, 4)})
	trump := SuitCharms
	s.Trump = &trump

	s = mustPlay(t, s, [2]string{"p1", "stars-9"}, [2]string{"p2", "moons-3-transform"})

	trick := s.CompletedTricks[0]
	assert.Equal(t, SuitCharms, trick.Plays[1].Card.Suit)
	require.NotNil(t, trick.Winner)
	assert.Equal(t, "p2", *trick.Winner, "transformed card wins as trump")
}

func TestPowerTransformWithoutTrumpIsInert(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 2)},
		[]Card{mkPowerCard(SuitMoons, 3, PowerTransform), mkCard(SuitMoons, 4)})

	s = mustPlay(t, s, [2]string{"p1", "stars-9"}, [2]string{"p2", "moons-3-transform"})

	assert.Equal(t, SuitMoons, s.CompletedTricks[0].Plays[1].Card.Suit)
}

func TestPowerRevealCountsSpecialsInHand(t *testing.T) {
	s := playSession(ModeStandard, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerReveal), mkCard(SuitStars, 12), mkCard(SuitStars, 13), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3), mkCard(SuitStars, 4), mkCard(SuitStars, 6)})

	s2, err := PlayCard(s, "p1", "stars-5-reveal")
	require.NoError(t, err)
	assert.Equal(t, 2, s2.Players[0].LunarFavor, "one favor per special still held")
}

func TestPowerOncePerRoundExceptFullMoon(t *testing.T) {
	hands := func() [][]Card {
		return [][]Card{
			{mkPowerCard(SuitStars, 5, PowerIlluminate), mkPowerCard(SuitStars, 6, PowerIlluminate), mkCard(SuitStars, 2)},
			{mkCard(SuitStars, 9), mkCard(SuitStars, 10), mkCard(SuitStars, 3)},
		}
	}

	// p1 wins the first trick (special beats plain) and leads the second.
	h := hands()
	s := playSession(ModeStandard, NewMoon, h[0], h[1])
	s = mustPlay(t, s,
		[2]string{"p1", "stars-5-illuminate"}, [2]string{"p2", "stars-9"},
		[2]string{"p1", "stars-6-illuminate"}, [2]string{"p2", "stars-10"})
	assert.Equal(t, 5, s.LunarEnergy, "second power of the round is spent unused")

	h = hands()
	full := playSession(ModeStandard, FullMoon, h[0], h[1])
	full = mustPlay(t, full,
		[2]string{"p1", "stars-5-illuminate"}, [2]string{"p2", "stars-9"},
		[2]string{"p1", "stars-6-illuminate"}, [2]string{"p2", "stars-10"})
	assert.Equal(t, 10, full.LunarEnergy, "Full Moon lifts the one-power limit")
}

func TestPowersDisabledInEquinox(t *testing.T) {
	s := playSession(ModeEquinox, NewMoon,
		[]Card{mkPowerCard(SuitStars, 5, PowerIlluminate), mkCard(SuitStars, 2)},
		[]Card{mkCard(SuitStars, 9), mkCard(SuitStars, 3)})

	s2, err := PlayCard(s, "p1", "stars-5-illuminate")
	require.NoError(t, err)
	assert.Zero(t, s2.LunarEnergy)
	assert.False(t, s2.Players[0].PowerUsed)
}
