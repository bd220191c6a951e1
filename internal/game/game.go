package game

import (
	"fmt"

	"github.com/hailam/chesscore/internal/applog"
	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
)

// record captures what is needed to undo one applied move, beyond what
// board.UndoInfo already carries: the move itself (UnmakeMove needs both).
type record struct {
	move board.Move
	undo board.UndoInfo
}

// Game is the external-facing surface over a single live position: it owns
// the board, the move/undo journal, and the Zobrist repetition multiset,
// and reports MoveOutcome/RejectionReason the way a GUI host expects (§6,
// §7). The board package itself never reports outcomes or logs; Game is
// where that narrative layer lives.
type Game struct {
	pos     *board.Position
	history []record
	rep     *repetitionHash
}

// New starts a Game from the standard opening position.
func New() *Game {
	g := &Game{pos: board.NewPosition(), rep: newRepetitionHash()}
	g.rep.push(g.pos.Hash)
	return g
}

// NewFromFEN starts a Game from fen, returning ErrParseError on malformed
// input.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseError, err)
	}
	g := &Game{pos: pos, rep: newRepetitionHash()}
	g.rep.push(g.pos.Hash)
	return g, nil
}

// PieceAt returns the piece occupying sq, or board.NoPiece if empty.
func (g *Game) PieceAt(sq board.Square) board.Piece {
	return g.pos.PieceAt(sq)
}

// LegalMovesFrom returns every legal move whose From() is sq.
func (g *Game) LegalMovesFrom(sq board.Square) []board.Move {
	all := g.pos.GenerateLegalMoves()
	out := make([]board.Move, 0, 8)
	for i := 0; i < all.Len(); i++ {
		m := all.Get(i)
		if m.From() == sq {
			out = append(out, m)
		}
	}
	return out
}

// Position exposes the underlying board position read-only access, for
// callers (cmd/chesscore, tests) that need to inspect state this narrow
// interface doesn't cover directly.
func (g *Game) Position() *board.Position {
	return g.pos
}

// ExportFEN renders the current position as Forsyth-Edwards notation.
func (g *Game) ExportFEN() string {
	return g.pos.ToFEN()
}

// ImportFEN replaces the current position with fen, resetting the move
// journal and repetition multiset — importing a position starts a new line
// of play, not a continuation of the old one.
func (g *Game) ImportFEN(fen string) error {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseError, err)
	}
	g.pos = pos
	g.history = g.history[:0]
	g.rep.reset()
	g.rep.push(g.pos.Hash)
	return nil
}

// findLegalMove looks up the unique legal move matching (from, to,
// promotion). Move equality is (from, to) per the data model; promotion
// disambiguates among the four promotion moves sharing that (from, to).
func (g *Game) findLegalMove(from, to board.Square, promotion board.PieceType) (board.Move, bool, error) {
	legal := g.pos.GenerateLegalMoves()
	var sawPromotionAmbiguity bool

	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.IsPromotion() {
			return m, true, nil
		}
		sawPromotionAmbiguity = true
		if promotion != board.NoPieceType && m.Promotion() == promotion {
			return m, true, nil
		}
	}

	if sawPromotionAmbiguity && promotion == board.NoPieceType {
		return board.NoMove, false, ErrPromotionRequired
	}
	return board.NoMove, false, nil
}

// ApplyUserMove validates and applies a user-submitted (from, to,
// promotion) move. promotion is board.NoPieceType when the move isn't a
// promotion or the caller hasn't chosen yet.
func (g *Game) ApplyUserMove(from, to board.Square, promotion board.PieceType) (MoveOutcome, error) {
	m, ok, err := g.findLegalMove(from, to, promotion)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrIllegalMove
	}
	return g.applyMove(m)
}

// EngineMove asks eng to choose and apply a move for the side to move,
// per the §6 `engine_move(depth) -> Option<Move>` interface. It returns
// (nil, outcome, nil) when the game is already over, where outcome is the
// terminal outcome (Checkmate, Stalemate or one of the Draw kinds) and
// there is no move to make.
func (g *Game) EngineMove(eng *engine.Engine) (*board.Move, MoveOutcome, error) {
	if outcome, over := g.terminalOutcome(); over {
		return nil, outcome, nil
	}

	move := eng.ChooseMove(g.pos)
	if move == board.NoMove {
		return nil, 0, invariantViolation("engine returned no move on a non-terminal position")
	}

	outcome, err := g.applyMove(move)
	if err != nil {
		return nil, 0, err
	}
	return &move, outcome, nil
}

// applyMove makes m on the board, updates the journal and repetition
// multiset, and classifies the resulting outcome. The termination rule in
// §4.11 — search must not recurse past a position already declared over at
// the root — means this is the single place new moves enter play.
func (g *Game) applyMove(m board.Move) (MoveOutcome, error) {
	wasCapture := m.IsCapture(g.pos)
	wasCastle := m.IsCastling()
	wasEnPassant := m.IsEnPassant()
	wasPromotion := m.IsPromotion()

	undo := g.pos.MakeMove(m)
	if !undo.Valid {
		return 0, invariantViolation("make(%s) failed on a move from the legal move list", m)
	}

	g.history = append(g.history, record{move: m, undo: undo})
	g.rep.push(g.pos.Hash)

	if outcome, over := g.terminalOutcome(); over {
		return outcome, nil
	}

	switch {
	case wasCastle:
		return Castle, nil
	case wasEnPassant:
		return EnPassant, nil
	case wasPromotion:
		return Promotion, nil
	}

	if g.pos.InCheck() {
		return Check, nil
	}
	if wasCapture {
		return Capture, nil
	}
	return Normal, nil
}

// terminalOutcome reports the game-ending MoveOutcome for the current
// position, if any: checkmate/stalemate take priority over the draw rules
// since they are themselves absolute (a mated side has no moves to have
// triggered fifty-move or repetition with).
func (g *Game) terminalOutcome() (MoveOutcome, bool) {
	if g.pos.IsCheckmate() {
		return Checkmate, true
	}
	if g.pos.IsStalemate() {
		return Stalemate, true
	}
	if outcome, draw := drawOutcome(g.pos, g.rep); draw {
		return outcome, true
	}
	return 0, false
}

// UndoLast reverses the most recently applied move. It returns
// ErrNoHistory if no move has been applied since the last New/ImportFEN.
func (g *Game) UndoLast() error {
	if len(g.history) == 0 {
		return ErrNoHistory
	}

	last := g.history[len(g.history)-1]
	g.rep.pop(g.pos.Hash)
	g.pos.UnmakeMove(last.move, last.undo)
	g.history = g.history[:len(g.history)-1]

	applog.L().Debugw("undo", "move", last.move.String())
	return nil
}
