// Package game hosts Moon Bid engine sessions for the surrounding
// application: it keys players by UUID, serializes access to the snapshot
// engine behind a mutex, logs transitions, and broadcasts match events.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pointlesslygaychipmunk/coven-sub003/engine"
)

// OnGameEndFunc runs once when a match finalizes, receiving the final
// winner/reward report. The world engine applies rewards to inventories.
type OnGameEndFunc func(matchID uuid.UUID, report engine.WinnerReport)

// Seat pairs a player's UUID with a display name.
type Seat struct {
	ID   uuid.UUID
	Name string
}

// MatchConfig carries everything needed to open a match.
type MatchConfig struct {
	Mode       engine.Mode
	LunarPhase engine.LunarPhase
	Season     engine.Season
	Seed       uint64
	Logger     *logrus.Logger
	Broadcast  BroadcastFunc
	OnGameEnd  OnGameEndFunc
}

// Match is one hosted game. All methods are safe for concurrent use; the
// engine itself stays single-threaded behind the mutex.
type Match struct {
	ID uuid.UUID

	mu        sync.Mutex
	state     engine.Session
	seats     map[string]uuid.UUID // engine player id -> seat UUID
	log       *logrus.Entry
	broadcast BroadcastFunc
	onEnd     OnGameEndFunc
	ended     bool
}

// NewMatch initializes the engine session for the given seats. Seat UUIDs
// double as engine player ids.
func NewMatch(seats []Seat, cfg MatchConfig) (*Match, error) {
	ids := make([]string, len(seats))
	names := make([]string, len(seats))
	seatMap := make(map[string]uuid.UUID, len(seats))
	for i, seat := range seats {
		ids[i] = seat.ID.String()
		names[i] = seat.Name
		seatMap[ids[i]] = seat.ID
	}

	session, err := engine.NewSession(engine.Config{
		PlayerIDs:   ids,
		PlayerNames: names,
		LunarPhase:  cfg.LunarPhase,
		Season:      cfg.Season,
		Mode:        cfg.Mode,
		Seed:        cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("init session: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := &Match{
		ID:        uuid.New(),
		state:     session,
		seats:     seatMap,
		broadcast: cfg.Broadcast,
		onEnd:     cfg.OnGameEnd,
	}
	m.log = logger.WithFields(logrus.Fields{
		"match":  m.ID,
		"mode":   cfg.Mode.String(),
		"bids":   session.BidStyle.String(),
		"lunar":  cfg.LunarPhase.String(),
		"season": cfg.Season.String(),
	})
	m.log.WithField("players", len(seats)).Info("match opened")
	return m, nil
}

// PlaceBid submits one player's bid.
func (m *Match) PlaceBid(player uuid.UUID, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := engine.PlaceBid(m.state, player.String(), amount)
	if err != nil {
		m.log.WithError(err).WithField("player", player).Debug("bid rejected")
		return err
	}
	m.state = next

	m.log.WithFields(logrus.Fields{
		"player": player,
		"bid":    amount,
		"round":  next.Round,
	}).Info("bid placed")
	m.emit(MatchEvent{Type: EventBidPlaced, Player: player, Amount: amount, Round: next.Round})
	return nil
}

// PlayCard plays one card for the player, emitting trick/round/game events
// for every transition the play caused.
func (m *Match) PlayCard(player uuid.UUID, cardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.state
	next, err := engine.PlayCard(m.state, player.String(), cardID)
	if err != nil {
		m.log.WithError(err).WithFields(logrus.Fields{
			"player": player,
			"card":   cardID,
		}).Debug("play rejected")
		return err
	}
	m.state = next

	ev := MatchEvent{Type: EventCardPlayed, Player: player, Card: cardID, Round: prev.Round}
	if c, ok := findInHand(prev, player.String(), cardID); ok && c.Power != engine.PowerNone {
		ev.Power = c.Power.String()
	}
	m.emit(ev)

	if n := len(next.CompletedTricks); n > len(prev.CompletedTricks) {
		trick := next.CompletedTricks[n-1]
		tev := MatchEvent{Type: EventTrickResolved, Round: next.Round}
		if trick.Winner != nil {
			w := m.seats[*trick.Winner]
			tev.Winner = &w
		}
		m.emit(tev)
	}

	if next.Round > prev.Round || next.Phase == engine.PhaseFinalized {
		m.emit(MatchEvent{Type: EventRoundScored, Round: prev.Round, Scores: scoreMap(next)})
		m.log.WithField("round", prev.Round).Info("round scored")
	}

	if next.Phase == engine.PhaseFinalized && !m.ended {
		m.finishLocked()
	}
	return nil
}

// finishLocked publishes the final report. Caller holds the mutex.
func (m *Match) finishLocked() {
	m.ended = true
	report, err := engine.Winners(m.state)
	if err != nil {
		m.log.WithError(err).Error("winner report unavailable at finalization")
		return
	}

	m.log.WithFields(logrus.Fields{
		"winners":  report.WinnerIDs,
		"team_win": report.TeamWin,
	}).Info("match finished")
	m.emit(MatchEvent{Type: EventGameEnd, Round: m.state.Round, Scores: report.Scores})

	if m.onEnd != nil {
		m.onEnd(m.ID, report)
	}
}

func (m *Match) emit(ev MatchEvent) {
	if m.broadcast == nil {
		return
	}
	ev.Match = m.ID
	m.broadcast(ev)
}

// Snapshot returns a copy of the current session for observers. Safe to read
// without holding anything; mutating it has no effect on the match.
func (m *Match) Snapshot() engine.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// CurrentPlayer returns the UUID of the turn holder.
func (m *Match) CurrentPlayer() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seats[engine.CurrentPlayerID(m.state)]
}

// LegalPlays lists the cards the player may play right now.
func (m *Match) LegalPlays(player uuid.UUID) []engine.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	return engine.LegalPlays(m.state, player.String())
}

// Finished reports whether the match has reached its terminal phase.
func (m *Match) Finished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ended
}

// Report returns the final winner report once the match has finished.
func (m *Match) Report() (engine.WinnerReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return engine.Winners(m.state)
}

func findInHand(s engine.Session, playerID, cardID string) (engine.Card, bool) {
	for _, p := range s.Players {
		if p.ID != playerID {
			continue
		}
		for _, c := range p.Hand {
			if c.ID == cardID {
				return c, true
			}
		}
	}
	return engine.Card{}, false
}

func scoreMap(s engine.Session) map[string]int {
	out := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		out[p.ID] = p.Score
	}
	return out
}
