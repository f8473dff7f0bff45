package engine

// Reward is one entry of the session's reward catalog. Condition is the
// natural-language predicate key the crafting tables also display verbatim;
// Chance is a drop percentage rolled on the session RNG at finalization.
type Reward struct {
	Item       string
	Quantity   int
	Condition  string
	PhaseBound *LunarPhase
	Chance     int
}

// Predicate keys. Unknown keys evaluate to false rather than erroring, so
// the surrounding application can ship reward text ahead of engine support.
const (
	CondWinThreeTricks = "Win at least 3 tricks"
	CondWinOneTrick    = "Win at least 1 trick"
	CondExactBid       = "Make your exact bid"
	CondLowestCardWin  = "Win a trick with the lowest card"
	CondThreeInARow    = "Win 3 tricks in a row"
	CondFiveFavor      = "Accumulate 5 lunar favor"
	CondUsePower       = "Use a power card"
	CondZeroBid        = "Bid zero and win no tricks"
	CondNoTricks       = "Win no tricks"
	CondScoreThirty    = "Score 30 or more points"
)

var rewardPredicates = map[string]func(s *Session, p *Player) bool{
	CondWinThreeTricks: func(_ *Session, p *Player) bool { return p.Tricks >= 3 },
	CondWinOneTrick:    func(_ *Session, p *Player) bool { return p.Tricks >= 1 },
	CondExactBid: func(_ *Session, p *Player) bool {
		return p.Bid != nil && *p.Bid > 0 && p.Tricks == *p.Bid
	},
	CondLowestCardWin: wonWithLowestCard,
	CondThreeInARow:   wonThreeInARow,
	CondFiveFavor:     func(_ *Session, p *Player) bool { return p.LunarFavor >= 5 },
	CondUsePower:      func(_ *Session, p *Player) bool { return p.PowerUsed },
	CondZeroBid: func(_ *Session, p *Player) bool {
		return p.Bid != nil && *p.Bid == 0 && p.Tricks == 0
	},
	CondNoTricks:    func(_ *Session, p *Player) bool { return p.Tricks == 0 },
	CondScoreThirty: func(_ *Session, p *Player) bool { return p.Score >= 30 },
}

// wonWithLowestCard: the player took a trick whose winning card carried the
// lowest rank in that trick (possible when every other play was off suit).
func wonWithLowestCard(s *Session, p *Player) bool {
	for _, t := range s.CompletedTricks {
		if t.Winner == nil || *t.Winner != p.ID {
			continue
		}
		var winRank Rank
		lowest := true
		for _, play := range t.Plays {
			if play.PlayerID == p.ID {
				winRank = play.Card.Rank
			}
		}
		for _, play := range t.Plays {
			if play.PlayerID != p.ID && play.Card.Rank < winRank {
				lowest = false
				break
			}
		}
		if lowest {
			return true
		}
	}
	return false
}

// wonThreeInARow slides a window over the final round's winner sequence.
// Voided and cancelled tricks break the streak.
func wonThreeInARow(s *Session, p *Player) bool {
	streak := 0
	for _, t := range s.CompletedTricks {
		if t.Winner != nil && *t.Winner == p.ID {
			streak++
			if streak >= 3 {
				return true
			}
		} else {
			streak = 0
		}
	}
	return false
}

var phaseRewards = map[LunarPhase]Reward{
	NewMoon:        {Item: "shadow-salt", Quantity: 1, Condition: CondZeroBid, Chance: 100},
	WaxingCrescent: {Item: "sprouting-fern", Quantity: 1, Condition: CondWinOneTrick, Chance: 80},
	FirstQuarter:   {Item: "half-silvered-glass", Quantity: 1, Condition: CondExactBid, Chance: 100},
	WaxingGibbous:  {Item: "gibbous-wax", Quantity: 2, Condition: CondWinThreeTricks, Chance: 80},
	FullMoon:       {Item: "lunar-essence", Quantity: 2, Condition: CondThreeInARow, Chance: 100},
	WaningGibbous:  {Item: "dimming-censer", Quantity: 1, Condition: CondFiveFavor, Chance: 100},
	LastQuarter:    {Item: "quartered-coin", Quantity: 1, Condition: CondNoTricks, Chance: 100},
	WaningCrescent: {Item: "crescent-thorn", Quantity: 1, Condition: CondUsePower, Chance: 80},
}

var seasonRewards = map[Season]Reward{
	Spring: {Item: "dew-vial", Quantity: 1, Condition: CondWinOneTrick, Chance: 100},
	Summer: {Item: "sun-dried-petal", Quantity: 2, Condition: CondScoreThirty, Chance: 100},
	Autumn: {Item: "amber-resin", Quantity: 1, Condition: CondExactBid, Chance: 100},
	Winter: {Item: "frost-bloom", Quantity: 1, Condition: CondFiveFavor, Chance: 60},
}

// buildRewardCatalog assembles the fixed reward list for one game: the base
// set, the active phase's and season's rewards, and mode extras.
func buildRewardCatalog(mode Mode, phase LunarPhase, season Season) []Reward {
	rewards := []Reward{
		{Item: "moondust", Quantity: 2, Condition: CondWinThreeTricks, Chance: 100},
		{Item: "silver-charm", Quantity: 1, Condition: CondExactBid, Chance: 100},
		{Item: "night-herb", Quantity: 1, Condition: CondLowestCardWin, Chance: 60},
	}

	pr := phaseRewards[phase]
	bound := phase
	pr.PhaseBound = &bound
	rewards = append(rewards, pr, seasonRewards[season])

	switch mode {
	case ModeCooperative:
		rewards = append(rewards, Reward{Item: "coven-sigil", Quantity: 1, Condition: CondWinOneTrick, Chance: 100})
	case ModeEclipse:
		rewards = append(rewards, Reward{Item: "umbral-shard", Quantity: 1, Condition: CondFiveFavor, Chance: 100})
	}
	return rewards
}

// finalize evaluates every reward predicate against every player's final
// stats, rolls drop chances, doubles Full-Moon-bound quantities, and moves
// the session to its terminal phase.
func (s *Session) finalize() {
	s.Earned = make(map[string][]RewardGrant)
	for _, r := range s.Rewards {
		pred, ok := rewardPredicates[r.Condition]
		if !ok {
			continue
		}
		for i := range s.Players {
			p := &s.Players[i]
			if !pred(s, p) {
				continue
			}
			if r.Chance < 100 && int(s.randN(100)) >= r.Chance {
				continue
			}
			qty := r.Quantity
			if r.PhaseBound != nil && *r.PhaseBound == s.LunarPhase && s.LunarPhase == FullMoon {
				qty *= 2
			}
			s.Earned[p.ID] = append(s.Earned[p.ID], RewardGrant{Item: r.Item, Quantity: qty})
		}
	}
	s.Phase = PhaseFinalized
}
