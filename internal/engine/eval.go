// Package engine implements the chess AI search engine.
package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Evaluation constants. Material values follow the spec's table exactly
// (Queen is 950, not the more common 900) and the king carries no material
// weight of its own since mate is handled as a terminal substitution rather
// than a material term.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 950
)

// CheckmateMax is the terminal score magnitude returned for a mated side,
// large enough to dominate any material/positional sum.
const CheckmateMax = 1000000

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, 0}

// Piece-square tables, one 64-entry array per piece type, White's
// perspective. Black looks up the same table at index 63-square, a
// point mirror of the board.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// The king's PST blends the teacher's two tables (castling encouraged in
// the middlegame, centralization in the endgame) since the spec calls for
// a single table per piece type, not a phase-tapered pair.
var kingPST = [64]int{
	-40, -40, -35, -45, -45, -35, -40, -40,
	-30, -30, -25, -35, -35, -25, -30, -30,
	-30, -25, -10, -25, -25, -10, -25, -30,
	-30, -25, 0, 10, 10, 0, -25, -30,
	-25, -20, 10, 20, 20, 10, -20, -25,
	-20, -5, 15, 25, 25, 15, -5, -20,
	10, 10, 5, 0, 0, 5, 10, 10,
	0, 15, 5, 0, 0, 5, 15, 0,
}

var psts = [6][64]int{pawnPST, knightPST, bishopPST, rookPST, queenPST, kingPST}

// pstIndex maps a square to its piece-square-table lookup index for side c:
// White reads the table directly, Black reads it at the point-mirrored
// index 63-square.
func pstIndex(sq board.Square, c board.Color) board.Square {
	if c == board.White {
		return sq
	}
	return 63 - sq
}

// Evaluate returns the static evaluation of pos from the side-to-move's
// perspective, as required by negamax: positive favors the side to move.
//
// It substitutes terminal scores for checkmate, stalemate, and
// insufficient material rather than walking pieces in those cases, then
// otherwise sums (material + PST) for White minus the same for Black and
// negates the result when Black is to move.
func Evaluate(pos *board.Position) int {
	if pos.IsInsufficientMaterial() {
		return 0
	}
	if pos.GenerateLegalMoves().Len() == 0 {
		if pos.InCheck() {
			// Side to move is mated: a loss from its own perspective.
			return -CheckmateMax
		}
		return 0 // stalemate
	}

	score := evaluateMaterialAndPST(pos)

	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// evaluateMaterialAndPST sums material and piece-square values from
// White's perspective (positive favors White), with no terminal or
// side-to-move adjustment.
func evaluateMaterialAndPST(pos *board.Position) int {
	var score int

	for c := board.White; c <= board.Black; c++ {
		sign := 1
		if c == board.Black {
			sign = -1
		}

		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				if pt != board.King {
					score += sign * pieceValues[pt]
				}
				score += sign * psts[pt][pstIndex(sq, c)]
			}
		}
	}

	return score
}
