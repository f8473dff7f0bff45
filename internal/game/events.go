package game

import "github.com/google/uuid"

// MatchEventType labels match events broadcast to observers.
type MatchEventType string

const (
	EventBidPlaced     MatchEventType = "bid_placed"
	EventCardPlayed    MatchEventType = "card_played"
	EventTrickResolved MatchEventType = "trick_resolved"
	EventRoundScored   MatchEventType = "round_scored"
	EventGameEnd       MatchEventType = "game_end"
)

// MatchEvent is the broadcast payload for one match state change. Fields are
// populated per type; unset fields keep zero values.
type MatchEvent struct {
	Type   MatchEventType         `json:"type"`
	Match  uuid.UUID              `json:"match"`
	Player uuid.UUID              `json:"player,omitempty"`
	Card   string                 `json:"card,omitempty"`
	Power  string                 `json:"power,omitempty"`
	Amount int                    `json:"amount,omitempty"`
	Round  int                    `json:"round,omitempty"`
	Winner *uuid.UUID             `json:"winner,omitempty"`
	Scores map[string]int         `json:"scores,omitempty"`
	Extra  map[string]interface{} `json:"extra,omitempty"`
}

// BroadcastFunc delivers a match event to all observers. The hosting
// application supplies an implementation.
type BroadcastFunc func(ev MatchEvent)
