package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Infinity bounds the initial alpha-beta window. It is kept well clear of
// CheckmateMax so mate scores are never mistaken for the window edges.
const Infinity = CheckmateMax + 1

// MaxQuiescencePly caps quiescence recursion so a position with an endless
// chain of checks or recaptures cannot blow the call stack.
const MaxQuiescencePly = 32

// Searcher performs negamax search with alpha-beta pruning and a
// capture-only quiescence search at the leaves. It carries no transposition
// table, move ordering, or time manager: those are explicitly outside this
// engine's scope, so a search call always runs to the requested depth.
type Searcher struct {
	pos        *board.Position
	nodes      uint64
	quiescence bool
}

// NewSearcher creates a searcher with quiescence enabled and no position
// bound yet; call Search to run it against a specific position.
func NewSearcher() *Searcher {
	return &Searcher{quiescence: true}
}

// SetQuiescence toggles whether depth-0 nodes extend through captures
// (spec-standard behavior) or evaluate immediately. Disabling it trades
// tactical accuracy for a search whose node count is a pure function of
// depth, useful for deterministic tests.
func (s *Searcher) SetQuiescence(on bool) {
	s.quiescence = on
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs negamax to depth and returns the best root move together with
// its score from the side-to-move's perspective. It returns board.NoMove if
// pos has no legal moves; the caller is expected to have already checked
// DrawRules and checkmate/stalemate before calling.
func (s *Searcher) Search(pos *board.Position, depth int) (board.Move, int) {
	s.pos = pos
	s.nodes = 0

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return board.NoMove, Evaluate(pos)
	}

	best := board.NoMove
	bestScore := -Infinity
	alpha, beta := -Infinity, Infinity
	kingSq := pos.KingSquare[pos.SideToMove.Other()]

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.To() == kingSq {
			continue // king capture is never searched
		}

		undo := pos.MakeMove(m)
		score := -s.negamax(depth-1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, bestScore
}

// negamax implements the alpha-beta negamax recursion: at depth 0 it hands
// off to quiescence, otherwise it walks every legal move, skipping any move
// that would capture the opponent's king (own-king safety is already
// guaranteed by GenerateLegalMoves), and fail-soft cuts at beta.
func (s *Searcher) negamax(depth int, alpha, beta int) int {
	s.nodes++

	if depth == 0 {
		if s.quiescence {
			return s.quiesce(alpha, beta, 0)
		}
		return Evaluate(s.pos)
	}

	pos := s.pos
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return Evaluate(pos)
	}

	best := -Infinity
	kingSq := pos.KingSquare[pos.SideToMove.Other()]

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.To() == kingSq {
			continue
		}

		undo := pos.MakeMove(m)
		score := -s.negamax(depth-1, -beta, -alpha)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return score // fail-soft beta cutoff
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
	}

	return best
}

// quiesce extends the search through capture sequences only, so a position
// where the last move searched merely hangs a piece isn't misjudged (the
// horizon effect). ply bounds the recursion independently of the caller's
// depth budget.
func (s *Searcher) quiesce(alpha, beta int, ply int) int {
	s.nodes++

	pos := s.pos
	stand := Evaluate(pos)
	if ply >= MaxQuiescencePly {
		return stand
	}
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	moves := pos.GenerateCaptures()
	kingSq := pos.KingSquare[pos.SideToMove.Other()]

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.To() == kingSq {
			continue
		}

		undo := pos.MakeMove(m)
		score := -s.quiesce(-beta, -alpha, ply+1)
		pos.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
