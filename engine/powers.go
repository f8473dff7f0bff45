package engine

// playContext locates the play that carried a power: the acting player and
// the play's position in the current trick.
type playContext struct {
	actorIdx int
	playIdx  int
}

type powerHandler func(s *Session, ctx playContext)

// powerHandlers is the closed dispatch table for power effects. Adding a
// Power constant without a handler here makes the card inert, which the
// power tests guard against.
var powerHandlers map[Power]powerHandler

func init() {
	// Built in init so handlers (duplicate in particular) can reference the
	// table itself.
	powerHandlers = map[Power]powerHandler{
		PowerNullify:    powerNullify,
		PowerDouble:     powerDouble,
		PowerSteal:      powerSteal,
		PowerPredict:    powerPredict,
		PowerSwap:       powerSwap,
		PowerIlluminate: powerIlluminate,
		PowerDuplicate:  powerDuplicate,
		PowerTransform:  powerTransform,
		PowerProtect:    powerProtect,
		PowerReveal:     powerReveal,
	}
}

// applyPower fires a power effect at play time. Each player gets one power
// per round, except under the Full Moon phase, where the restriction is
// lifted for everyone. Modes may disable powers entirely.
func (s *Session) applyPower(p Power, ctx playContext) {
	if !modeConfigs[s.Mode].PowersEnabled {
		return
	}
	actor := &s.Players[ctx.actorIdx]
	if actor.PowerUsed && s.LunarPhase != FullMoon {
		return
	}
	h, ok := powerHandlers[p]
	if !ok {
		return
	}
	h(s, ctx)
	actor.PowerUsed = true
}

// powerNullify voids the trick: it resolves with no winner and credits no
// one.
func powerNullify(s *Session, _ playContext) {
	s.CurrentTrick.Voided = true
}

// powerDouble marks the trick doubled; scoring pays a bonus for winning it.
func powerDouble(s *Session, _ playContext) {
	s.CurrentTrick.Doubled = true
}

// powerSteal drains one lunar favor from every unprotected opponent into the
// actor.
func powerSteal(s *Session, ctx playContext) {
	actor := &s.Players[ctx.actorIdx]
	for i := range s.Players {
		if i == ctx.actorIdx {
			continue
		}
		other := &s.Players[i]
		if other.Protected || other.LunarFavor == 0 {
			continue
		}
		other.LunarFavor--
		actor.LunarFavor++
	}
}

// powerPredict rewards a bid still on track: +2 favor while tricks won have
// not overshot the bid.
func powerPredict(s *Session, ctx playContext) {
	actor := &s.Players[ctx.actorIdx]
	if actor.Bid != nil && actor.Tricks <= *actor.Bid {
		actor.LunarFavor += 2
	}
}

// powerSwap exchanges the actor's lowest-ranked hand card with the top of
// the draw pile.
func powerSwap(s *Session, ctx playContext) {
	actor := &s.Players[ctx.actorIdx]
	if len(actor.Hand) == 0 || len(s.DrawPile) == 0 {
		return
	}
	low := 0
	for i, c := range actor.Hand {
		if c.Rank < actor.Hand[low].Rank {
			low = i
		}
	}
	top := len(s.DrawPile) - 1
	actor.Hand[low], s.DrawPile[top] = s.DrawPile[top], actor.Hand[low]
}

// powerIlluminate grants every player +1 favor and feeds the shared energy
// pool.
func powerIlluminate(s *Session, _ playContext) {
	for i := range s.Players {
		s.Players[i].LunarFavor++
	}
	s.LunarEnergy += 5
}

// powerDuplicate re-applies the power of the play immediately before this
// one in the trick. It never chains into another duplicate.
func powerDuplicate(s *Session, ctx playContext) {
	if ctx.playIdx == 0 {
		return
	}
	prev := s.CurrentTrick.Plays[ctx.playIdx-1].Card.Power
	if prev == PowerNone || prev == PowerDuplicate {
		return
	}
	if h, ok := powerHandlers[prev]; ok {
		h(s, ctx)
	}
}

// powerTransform rewrites the just-played card's suit to the trump suit.
// Without a trump suit it does nothing.
func powerTransform(s *Session, ctx playContext) {
	if s.Trump == nil {
		return
	}
	s.CurrentTrick.Plays[ctx.playIdx].Card.Suit = *s.Trump
}

// powerProtect shields the actor from steal for the rest of the round.
func powerProtect(s *Session, ctx playContext) {
	s.Players[ctx.actorIdx].Protected = true
}

// powerReveal converts held special cards into favor, one each.
func powerReveal(s *Session, ctx playContext) {
	actor := &s.Players[ctx.actorIdx]
	for _, c := range actor.Hand {
		if c.Special {
			actor.LunarFavor++
		}
	}
}
