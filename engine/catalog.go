package engine

import (
	"fmt"
	"strings"
)

// CatalogSize is the fixed size of a full catalog: 4 suits of 13 ranks plus
// one card per lunar phase and one per element.
const CatalogSize = numSuits*int(maxRank) + numLunarPhases + numElements

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// buildCatalog produces the full, duplicate-free card set for one round.
// The active phase and season only decorate affinities; the set itself is
// deterministic and always CatalogSize cards.
func buildCatalog(phase LunarPhase, season Season) []Card {
	cards := make([]Card, 0, CatalogSize)

	for s := Suit(0); s < numSuits; s++ {
		for r := RankAce; r <= maxRank; r++ {
			cards = append(cards, Card{
				ID:      fmt.Sprintf("%s-%d", slug(suitNames[s]), r),
				Suit:    s,
				Rank:    r,
				Special: r > 10,
			})
		}
	}

	for p := LunarPhase(0); p < numLunarPhases; p++ {
		affinity := p
		cards = append(cards, Card{
			ID:            "phase-" + slug(lunarPhaseNames[p]),
			Suit:          phaseCardSuit,
			Rank:          maxRank,
			Power:         phaseCardPowers[p],
			PhaseAffinity: &affinity,
			Special:       true,
		})
	}

	dominant := seasonModifiers[season].DominantElement
	for e := Element(0); e < numElements; e++ {
		affinity := e
		c := Card{
			ID:              "element-" + slug(elementNames[e]),
			Suit:            elementCardSuits[e],
			Rank:            maxRank,
			Power:           elementCardPowers[e],
			ElementAffinity: &affinity,
			Special:         true,
		}
		if e == dominant {
			sn := season
			c.SeasonAffinity = &sn
		}
		cards = append(cards, c)
	}

	return cards
}

// shuffle performs a Fisher-Yates shuffle using the session RNG.
func (s *Session) shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(s.randN(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// dealRound rebuilds, reshuffles, and redeals the catalog. Hands never carry
// over between rounds.
func (s *Session) dealRound() {
	catalog := buildCatalog(s.LunarPhase, s.Season)
	s.shuffle(catalog)

	handSize := modeConfigs[s.Mode].HandSize(len(s.Players))

	// Deal round-robin, popping from the top (end) of the shuffled pile.
	for i := range s.Players {
		s.Players[i].Hand = make([]Card, 0, handSize)
	}
	for c := 0; c < handSize; c++ {
		for i := range s.Players {
			top := catalog[len(catalog)-1]
			catalog = catalog[:len(catalog)-1]
			s.Players[i].Hand = append(s.Players[i].Hand, top)
		}
	}
	s.DrawPile = catalog
}
