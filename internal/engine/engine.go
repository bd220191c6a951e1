// Package engine implements the chess AI search engine.
package engine

import (
	"github.com/hailam/chesscore/internal/applog"
	"github.com/hailam/chesscore/internal/board"
)

// Engine wraps a Searcher with the tunables loaded from Config. It is
// single-threaded and stateless between calls: no transposition table,
// worker pool, opening book, or tablebase, since none of those are part of
// this engine's scope.
type Engine struct {
	cfg      Config
	searcher *Searcher
}

// NewEngine builds an Engine from cfg.
func NewEngine(cfg Config) *Engine {
	s := NewSearcher()
	s.SetQuiescence(cfg.QuiescenceOn)
	return &Engine{cfg: cfg, searcher: s}
}

// ChooseMove runs choose_move(depth): negamax once per legal root move,
// keeping the maximizing one. It returns board.NoMove if pos has no legal
// moves (checkmate or stalemate) — callers should check DrawRules and
// terminal status before calling, per the termination rule that search
// must not recurse past a position already declared over at the root.
func (e *Engine) ChooseMove(pos *board.Position) board.Move {
	move, score := e.searcher.Search(pos, e.cfg.SearchDepth)
	applog.L().Debugw("search complete",
		"depth", e.cfg.SearchDepth,
		"nodes", e.searcher.Nodes(),
		"score", score,
		"move", move.String(),
	)
	return move
}

// ChooseMoveAtDepth is like ChooseMove but overrides the configured depth,
// used by callers that want to probe shallower or deeper without building
// a new Engine (e.g. an interactive driver offering a difficulty knob).
func (e *Engine) ChooseMoveAtDepth(pos *board.Position, depth int) board.Move {
	move, _ := e.searcher.Search(pos, depth)
	return move
}

// Evaluate returns the static evaluation of pos (spec §4.10), exposed for
// callers that want a position's score without running a search.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos)
}

// Nodes returns the number of nodes visited by the most recent search.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}
