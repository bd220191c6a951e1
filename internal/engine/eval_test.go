package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	pos := board.NewPosition()
	require.Equal(t, 0, Evaluate(pos))
}

func TestEvaluateMaterialValues(t *testing.T) {
	// A lone extra White queen versus a bare-bones position, to check the
	// spec's 950 material value (not the more common 900) is what's used.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)

	score := evaluateMaterialAndPST(pos)
	require.Equal(t, QueenValue+queenPST[pstIndex(board.H1, board.White)], score)
}

func TestEvaluateNegatesForBlackToMove(t *testing.T) {
	white, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)
	black, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K2Q b - - 0 1")
	require.NoError(t, err)

	require.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestEvaluateCheckmateIsTerminal(t *testing.T) {
	pos, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, -CheckmateMax, Evaluate(pos))
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	pos, err := board.ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, 0, Evaluate(pos))
}

func TestEvaluateInsufficientMaterialIsZero(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KB2 w - - 0 1")
	require.NoError(t, err)
	require.Equal(t, 0, Evaluate(pos))
}

func TestPstIndexMirrorsForBlack(t *testing.T) {
	require.Equal(t, board.A1, pstIndex(board.A1, board.White))
	require.Equal(t, board.H8, pstIndex(board.A1, board.Black))
}
