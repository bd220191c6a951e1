package game

import "github.com/hailam/chesscore/internal/board"

// drawOutcome checks insufficient material, the fifty-move rule, and
// threefold repetition, in that order, and returns the first one that
// applies along with true. It returns (0, false) if none apply — the game
// is not a draw by any of these rules at pos.
func drawOutcome(pos *board.Position, rep *repetitionHash) (MoveOutcome, bool) {
	if pos.IsInsufficientMaterial() {
		return DrawInsufficient, true
	}
	if pos.HalfMoveClock >= 100 {
		return DrawFiftyMove, true
	}
	if rep.isThreefold(pos.Hash) {
		return DrawRepetition, true
	}
	return 0, false
}
