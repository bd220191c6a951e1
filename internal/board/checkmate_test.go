package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckmate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8, pawns on g7/h7 blocking escape — back-rank mate.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)

	require.True(t, pos.InCheck())
	require.Equal(t, 0, pos.GenerateLegalMoves().Len())
	require.True(t, pos.IsCheckmate())
	require.False(t, pos.IsStalemate())
}

func TestNotCheckmate(t *testing.T) {
	// King can capture the checking rook — not checkmate.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)

	require.False(t, pos.IsCheckmate())
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on h8 has no legal move and is not in check.
	pos, err := ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	require.False(t, pos.InCheck())
	require.Equal(t, 0, pos.GenerateLegalMoves().Len())
	require.True(t, pos.IsStalemate())
	require.False(t, pos.IsCheckmate())
}
