package engine

import "fmt"

// Suit is one of the four Moon Bid suits.
type Suit int

const (
	SuitStars Suit = iota
	SuitMoons
	SuitHerbs
	SuitCharms

	numSuits = 4
)

var suitNames = map[Suit]string{
	SuitStars:  "Stars",
	SuitMoons:  "Moons",
	SuitHerbs:  "Herbs",
	SuitCharms: "Charms",
}

func (s Suit) String() string { return suitNames[s] }

// Rank runs 1 (Ace) through 13 (Crone). Ranks above 10 are face cards.
type Rank int

const (
	RankAce   Rank = 1
	RankPage  Rank = 11
	RankSage  Rank = 12
	RankCrone Rank = 13

	maxRank Rank = 13
)

var rankNames = map[Rank]string{
	1: "Ace", 2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six",
	7: "Seven", 8: "Eight", 9: "Nine", 10: "Ten",
	RankPage: "Page", RankSage: "Sage", RankCrone: "Crone",
}

func (r Rank) String() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// LunarPhase is the active moon phase for a session, set by the world engine.
type LunarPhase int

const (
	NewMoon LunarPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent

	numLunarPhases = 8
)

var lunarPhaseNames = map[LunarPhase]string{
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

func (p LunarPhase) String() string { return lunarPhaseNames[p] }

// Season is the active season for a session.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

var seasonNames = map[Season]string{
	Spring: "Spring", Summer: "Summer", Autumn: "Autumn", Winter: "Winter",
}

func (s Season) String() string { return seasonNames[s] }

// Element is one of the five crafting elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water

	numElements = 5
)

var elementNames = map[Element]string{
	Wood: "Wood", Fire: "Fire", Earth: "Earth", Metal: "Metal", Water: "Water",
}

func (e Element) String() string { return elementNames[e] }

// Mode selects the rule variant for a session.
type Mode int

const (
	ModeStandard Mode = iota
	ModeEclipse
	ModeSolstice
	ModeEquinox
	ModeAncestral
	ModeCooperative
)

var modeNames = map[Mode]string{
	ModeStandard:    "standard",
	ModeEclipse:     "eclipse",
	ModeSolstice:    "solstice",
	ModeEquinox:     "equinox",
	ModeAncestral:   "ancestral",
	ModeCooperative: "cooperative",
}

func (m Mode) String() string { return modeNames[m] }

// Power identifies a special-card effect. The set is closed.
type Power int

const (
	PowerNone Power = iota
	PowerNullify
	PowerDouble
	PowerSteal
	PowerPredict
	PowerSwap
	PowerIlluminate
	PowerDuplicate
	PowerTransform
	PowerProtect
	PowerReveal
)

var powerNames = map[Power]string{
	PowerNone:       "none",
	PowerNullify:    "nullify",
	PowerDouble:     "double",
	PowerSteal:      "steal",
	PowerPredict:    "predict",
	PowerSwap:       "swap",
	PowerIlluminate: "illuminate",
	PowerDuplicate:  "duplicate",
	PowerTransform:  "transform",
	PowerProtect:    "protect",
	PowerReveal:     "reveal",
}

func (p Power) String() string { return powerNames[p] }

// Role tags a player in cooperative mode.
type Role int

const (
	RoleNone Role = iota
	RoleNavigator
	RoleGuardian
	RoleChanneler
	RoleDiviner
)

var roleNames = map[Role]string{
	RoleNone:      "none",
	RoleNavigator: "Navigator",
	RoleGuardian:  "Guardian",
	RoleChanneler: "Channeler",
	RoleDiviner:   "Diviner",
}

func (r Role) String() string { return roleNames[r] }

// BidStyle describes how a mode collects bids. The engine treats all styles
// except BidNone identically; hidden/team styles only change how the
// surrounding application reveals bids to other players.
type BidStyle int

const (
	BidStandard BidStyle = iota
	BidHidden
	BidTeam
	BidNone
)

var bidStyleNames = map[BidStyle]string{
	BidStandard: "standard",
	BidHidden:   "hidden",
	BidTeam:     "team",
	BidNone:     "none",
}

func (b BidStyle) String() string { return bidStyleNames[b] }

// Phase is the session state-machine phase.
type Phase int

const (
	PhaseBidding Phase = iota
	PhasePlaying
	PhaseScoring
	PhaseFinalized
)

var phaseNames = map[Phase]string{
	PhaseBidding:   "bidding",
	PhasePlaying:   "playing",
	PhaseScoring:   "scoring",
	PhaseFinalized: "finalized",
}

func (p Phase) String() string { return phaseNames[p] }

// Card is an immutable value. Affinity pointers are nil for the 52 standard
// cards and set on the extra phase/element cards.
type Card struct {
	ID              string
	Suit            Suit
	Rank            Rank
	Power           Power
	PhaseAffinity   *LunarPhase
	ElementAffinity *Element
	SeasonAffinity  *Season
	Special         bool
}

// EffectiveValue is the rank plus a +10 bonus for special cards, used when
// comparing plays during trick resolution.
func (c Card) EffectiveValue() int {
	v := int(c.Rank)
	if c.Special {
		v += 10
	}
	return v
}

func (c Card) Name() string {
	if c.PhaseAffinity != nil {
		return c.PhaseAffinity.String()
	}
	if c.ElementAffinity != nil {
		return fmt.Sprintf("Sigil of %s", c.ElementAffinity)
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Play is one card laid into a trick by one player.
type Play struct {
	PlayerID string
	Card     Card
}

// Trick holds the in-progress or completed plays of one trick. Winner stays
// nil for voided or rank-tie-cancelled tricks.
type Trick struct {
	LeadSuit *Suit
	Plays    []Play
	Winner   *string
	Doubled  bool
	Voided   bool
}

func (t Trick) leadPlayerID() string {
	if len(t.Plays) == 0 {
		return ""
	}
	return t.Plays[0].PlayerID
}

// Player holds per-player session state. Bid is nil until the player has bid
// in the current round.
type Player struct {
	ID         string
	Name       string
	Hand       []Card
	Bid        *int
	Tricks     int
	Score      int
	LunarFavor int
	PowerUsed  bool
	Protected  bool
	CardsWon   []Card
	Role       Role
}

func (p *Player) hasSuit(s Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// cardIndex returns the position of the card with the given id, or -1.
func (p *Player) cardIndex(cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}
