package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPerftStartingPosition cross-validates move generation from the
// standard starting position against the published reference counts
// (spec §8).
func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// depth 5 (4,865,609) is exercised in perft_slow_test.go
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		require.Equalf(t, tc.expected, got, "perft(%d)", tc.depth)
	}
}

// TestPerftKiwipete exercises castling, en passant, promotion, and pinned
// pieces in combination (the "Kiwipete" reference position).
func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		require.Equalf(t, tc.expected, got, "perft(%d)", tc.depth)
	}
}

// TestPerftPosition3 exercises en-passant edge cases along a rank shared
// by a king and a rook (horizontal pin interactions).
func TestPerftPosition3(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		require.Equalf(t, tc.expected, got, "perft(%d)", tc.depth)
	}
}

// TestPerftEnPassantPin exercises the specific en-passant horizontal-pin
// edge case: a black pawn capturing en passant would expose its own king
// to a rook along the vacated rank, so the capture must not appear in the
// legal move list.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		require.Falsef(t, moves.Get(i).IsEnPassant(), "en passant %v should be illegal (horizontal pin)", moves.Get(i))
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		require.Equalf(t, tc.expected, got, "perft(%d)", tc.depth)
	}
}

// TestPerftDivideSumsToTotal checks that PerftDivide's per-root-move counts
// sum to the same total as Perft at the same depth (§6 cross-validation
// invariant).
func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := NewPosition()
	entries := PerftDivide(pos, 3)

	var sum int64
	for _, e := range entries {
		sum += e.Nodes
	}

	require.Equal(t, Perft(pos, 3), sum)
}
