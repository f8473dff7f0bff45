package engine

import "errors"

// Validation failures are detected before any mutation, so a session is
// always left unchanged when one of these is returned. All are recoverable;
// callers match on them with errors.Is.
var (
	ErrPhaseViolation     = errors.New("action not valid in current phase")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrInvalidBid         = errors.New("bid out of range")
	ErrNotPlayersTurn     = errors.New("not this player's turn")
	ErrCardNotInHand      = errors.New("card not in hand")
	ErrSuitViolation      = errors.New("must follow lead suit")
	ErrInvalidPlayerCount = errors.New("player count outside mode bounds")
)
