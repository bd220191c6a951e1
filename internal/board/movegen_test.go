package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPromotionYieldsFourMoves checks that a pawn one step from queening
// generates exactly one move per promotable piece (§8 boundary 8).
func TestPromotionYieldsFourMoves(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	var promotions []Move
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == A7 && m.To() == A8 {
			promotions = append(promotions, m)
		}
	}

	require.Len(t, promotions, 4)
	seen := map[PieceType]bool{}
	for _, m := range promotions {
		seen[m.Promotion()] = true
	}
	require.True(t, seen[Knight])
	require.True(t, seen[Bishop])
	require.True(t, seen[Rook])
	require.True(t, seen[Queen])
}

// TestCastlingRefusedThroughCheck checks that castling is refused when the
// king's transit square is attacked, even though the destination square
// itself is safe (§8 boundary 9).
func TestCastlingRefusedThroughCheck(t *testing.T) {
	// White Ke1/Ra1/Rh1, king still has both rights. A black rook on f8
	// attacks f1, the kingside king-transit square, so O-O must be illegal
	// even though g1 itself is unattacked.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	// Sanity: with nothing attacking, both castles are legal.
	moves := pos.GenerateLegalMoves()
	require.True(t, hasCastle(moves, E1, G1))
	require.True(t, hasCastle(moves, E1, C1))

	attacked, err := ParseFEN("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	moves = attacked.GenerateLegalMoves()
	require.False(t, hasCastle(moves, E1, G1), "O-O must be refused: f1 (transit) is attacked by the rook on f8")
}

// TestEnPassantRefusedAfterNonDoublePush checks that en passant is only
// available on the ply immediately following a two-square pawn push (§8
// boundary 10).
func TestEnPassantRefusedAfterNonDoublePush(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/Pp6/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, NoSquare, pos.EnPassant, "no en-passant target without a preceding double push")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		require.False(t, moves.Get(i).IsEnPassant())
	}
}

func TestInsufficientMaterialSameColorBishops(t *testing.T) {
	// Both sides have a single bishop, both on light squares: draw.
	pos, err := ParseFEN("4k3/8/8/8/8/8/4B3/3bK3 w - - 0 1")
	require.NoError(t, err)
	require.True(t, pos.IsInsufficientMaterial())
}

func TestSufficientMaterialOppositeColorBishops(t *testing.T) {
	// Bishops on opposite-colored squares: not covered by the draw rule.
	pos, err := ParseFEN("4k3/8/8/8/8/8/3bK3/5B2 w - - 0 1")
	require.NoError(t, err)
	require.False(t, pos.IsInsufficientMaterial())
}

func hasCastle(moves *MoveList, from, to Square) bool {
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == from && m.To() == to && m.IsCastling() {
			return true
		}
	}
	return false
}
