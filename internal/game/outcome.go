// Package game implements the core's external interface: applying user
// moves, asking the engine for its move, undo, and FEN import/export. It
// layers turn bookkeeping, repetition detection, and draw rules on top of
// internal/board's make/undo core.
package game

import (
	"errors"
	"fmt"
)

// MoveOutcome describes what applying a move resulted in. A move can match
// more than one category in spirit (a capture that also delivers check);
// the reported outcome is the first that applies in this order: Checkmate,
// Stalemate, DrawInsufficient, DrawFiftyMove, DrawRepetition, then Castle,
// EnPassant, Promotion, then Check, then Capture, and Normal otherwise.
type MoveOutcome int

const (
	Normal MoveOutcome = iota
	Capture
	Castle
	EnPassant
	Promotion
	Check
	Checkmate
	Stalemate
	DrawInsufficient
	DrawFiftyMove
	DrawRepetition
)

func (o MoveOutcome) String() string {
	switch o {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case Castle:
		return "Castle"
	case EnPassant:
		return "EnPassant"
	case Promotion:
		return "Promotion"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawInsufficient:
		return "DrawInsufficient"
	case DrawFiftyMove:
		return "DrawFiftyMove"
	case DrawRepetition:
		return "DrawRepetition"
	default:
		return "Unknown"
	}
}

// RejectionReason sentinels. Callers match against these with errors.Is;
// ParseError and InvariantViolation wrap an underlying cause via %w, so
// errors.Is still matches through the wrapping.
var (
	// ErrIllegalMove: the (from, to) pair is not in the legal move list
	// for the side to move. Recovered locally — rejected, state unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionRequired: legal move but ambiguous — it is a pawn
	// promotion and no piece was selected. The caller re-submits with a
	// promotion choice.
	ErrPromotionRequired = errors.New("promotion choice required")

	// ErrInvariantViolation: make/undo detected state divergence. This is
	// fatal — it means the search or move application has corrupted
	// state, and should be surfaced rather than swallowed.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrParseError: FEN input malformed. Surfaced to the caller; no
	// state change occurs.
	ErrParseError = errors.New("parse error")

	// ErrNoHistory: undo_last was called with no move to undo.
	ErrNoHistory = errors.New("no move to undo")
)

func invariantViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
