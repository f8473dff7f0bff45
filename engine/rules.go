package engine

// modeConfig is the static rule record for one game mode, selected once at
// session init and threaded through dealing, play, and scoring.
type modeConfig struct {
	MinPlayers    int
	MaxPlayers    int
	TotalRounds   int
	BidStyle      BidStyle
	PowersEnabled bool
	TeamsEnabled  bool
	HandSize      func(players int) int
	Trump         func(phase LunarPhase, season Season) *Suit
	Scoring       scoringFamily
}

type scoringFamily int

const (
	scoreBid scoringFamily = iota
	scoreBalance
	scoreCooperative
)

func cappedHand(deckShare, cap int) func(int) int {
	return func(players int) int {
		h := deckShare / players
		if h > cap {
			h = cap
		}
		return h
	}
}

func fixedHand(n int) func(int) int {
	return func(int) int { return n }
}

func noTrump(LunarPhase, Season) *Suit { return nil }

func phaseBonusTrump(phase LunarPhase, _ Season) *Suit {
	s := phaseModifiers[phase].BonusSuit
	return &s
}

func seasonElementTrump(_ LunarPhase, season Season) *Suit {
	s := elementCardSuits[seasonModifiers[season].DominantElement]
	return &s
}

func moonsTrump(LunarPhase, Season) *Suit {
	s := SuitMoons
	return &s
}

var modeConfigs = map[Mode]modeConfig{
	ModeStandard: {
		MinPlayers: 2, MaxPlayers: 6, TotalRounds: 3,
		BidStyle: BidStandard, PowersEnabled: true,
		HandSize: cappedHand(52, 13), Trump: noTrump, Scoring: scoreBid,
	},
	ModeEclipse: {
		MinPlayers: 3, MaxPlayers: 6, TotalRounds: 3,
		BidStyle: BidHidden, PowersEnabled: true,
		HandSize: cappedHand(52, 13), Trump: phaseBonusTrump, Scoring: scoreBid,
	},
	ModeSolstice: {
		MinPlayers: 2, MaxPlayers: 6, TotalRounds: 3,
		BidStyle: BidStandard, PowersEnabled: true,
		HandSize: cappedHand(52, 13), Trump: seasonElementTrump, Scoring: scoreBid,
	},
	ModeEquinox: {
		MinPlayers: 2, MaxPlayers: 6, TotalRounds: 8,
		BidStyle: BidStandard, PowersEnabled: false,
		HandSize: fixedHand(8), Trump: noTrump, Scoring: scoreBalance,
	},
	ModeAncestral: {
		MinPlayers: 3, MaxPlayers: 5, TotalRounds: 7,
		BidStyle: BidHidden, PowersEnabled: true,
		HandSize: fixedHand(7), Trump: moonsTrump, Scoring: scoreBid,
	},
	ModeCooperative: {
		MinPlayers: 3, MaxPlayers: 5, TotalRounds: 3,
		BidStyle: BidTeam, PowersEnabled: true, TeamsEnabled: true,
		HandSize: cappedHand(60, 16), Trump: noTrump, Scoring: scoreCooperative,
	},
}

// PhaseModifier is the environmental effect table for a lunar phase.
type PhaseModifier struct {
	BonusSuit Suit
	Rule      string
}

var phaseModifiers = map[LunarPhase]PhaseModifier{
	NewMoon:        {SuitCharms, "Exact bids earn a doubled bonus"},
	WaxingCrescent: {SuitHerbs, "Herbs wax with the crescent"},
	FirstQuarter:   {SuitStars, "Stars steady the half-lit sky"},
	WaxingGibbous:  {SuitHerbs, "Gathering light favors the garden"},
	FullMoon:       {SuitMoons, "Powers may be used without limit"},
	WaningGibbous:  {SuitCharms, "Charms hold the fading light"},
	LastQuarter:    {SuitStars, "Matched ranks cancel the trick"},
	WaningCrescent: {SuitMoons, "The thin moon keeps its secrets"},
}

// SeasonModifier is the environmental effect table for a season.
type SeasonModifier struct {
	DominantElement Element
	Rule            string
}

var seasonModifiers = map[Season]SeasonModifier{
	Spring: {Wood, "Wood rises with the thaw"},
	Summer: {Fire, "Fire crowns the long days"},
	Autumn: {Metal, "Metal rings in the harvest"},
	Winter: {Water, "Water sleeps beneath the ice"},
}

// Lookup tables binding the extra catalog cards to suits and powers.
var phaseCardPowers = map[LunarPhase]Power{
	NewMoon:        PowerPredict,
	WaxingCrescent: PowerReveal,
	FirstQuarter:   PowerSteal,
	WaxingGibbous:  PowerDuplicate,
	FullMoon:       PowerIlluminate,
	WaningGibbous:  PowerProtect,
	LastQuarter:    PowerNullify,
	WaningCrescent: PowerSwap,
}

var elementCardPowers = map[Element]Power{
	Wood:  PowerTransform,
	Fire:  PowerDouble,
	Earth: PowerProtect,
	Metal: PowerSteal,
	Water: PowerSwap,
}

var elementCardSuits = map[Element]Suit{
	Wood:  SuitHerbs,
	Fire:  SuitStars,
	Earth: SuitHerbs,
	Metal: SuitCharms,
	Water: SuitMoons,
}

// All phase cards share one printed suit.
const phaseCardSuit = SuitMoons

var coopRoles = [...]Role{RoleNavigator, RoleGuardian, RoleChanneler, RoleDiviner}
