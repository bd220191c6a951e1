package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/stretchr/testify/require"
)

func TestChooseMoveFromStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine(Config{SearchDepth: 3, QuiescenceOn: true})

	move := eng.ChooseMove(pos)
	require.NotEqual(t, board.NoMove, move)
}

func TestChooseMoveNeverCapturesKing(t *testing.T) {
	// A position one ply from mate: White can deliver Ra8#, not capture a king.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	eng := NewEngine(Config{SearchDepth: 3, QuiescenceOn: true})
	move := eng.ChooseMove(pos)
	require.NotEqual(t, board.NoMove, move)
	require.NotEqual(t, pos.KingSquare[board.Black], move.To())
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	pos, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1") // checkmate
	require.NoError(t, err)
	require.True(t, pos.IsCheckmate())

	eng := NewEngine(DefaultConfig())
	move := eng.ChooseMove(pos)
	require.Equal(t, board.NoMove, move)
}

func TestChooseMoveFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate in one: Ra8#.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	eng := NewEngine(Config{SearchDepth: 2, QuiescenceOn: false})
	move := eng.ChooseMove(pos)
	require.NotEqual(t, board.NoMove, move)

	undo := pos.MakeMove(move)
	defer pos.UnmakeMove(move, undo)
	require.True(t, pos.IsCheckmate())
}

func TestSearcherQuiescenceToggle(t *testing.T) {
	pos := board.NewPosition()

	withQ := NewSearcher()
	withQ.SetQuiescence(true)
	_, scoreWithQ := withQ.Search(pos, 1)

	withoutQ := NewSearcher()
	withoutQ.SetQuiescence(false)
	_, scoreWithoutQ := withoutQ.Search(pos, 1)

	// Both should find a legal move's score; in the symmetric starting
	// position with no captures available, the two should agree.
	require.Equal(t, scoreWithQ, scoreWithoutQ)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/chessrc.toml")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
