package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMakeUndoRoundTrip drives random legal move sequences from the
// starting position, making and then immediately unmaking each move, and
// checks the position comes back bit-identical. It also makes the full
// sequence once more without undoing, then unwinds it move by move, to
// confirm a whole line of play round-trips (§8 invariant 3).
func TestMakeUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const sequences = 200
	const maxDepth = 40

	for seq := 0; seq < sequences; seq++ {
		pos := NewPosition()

		var played []Move
		var undos []UndoInfo
		depth := 0

		for depth < maxDepth {
			moves := pos.GenerateLegalMoves()
			if moves.Len() == 0 {
				break
			}
			m := moves.Get(rng.Intn(moves.Len()))

			before := pos.String()
			undo := pos.MakeMove(m)
			require.True(t, undo.Valid)
			pos.UnmakeMove(m, undo)
			require.Equal(t, before, pos.String(), "make/undo must be a no-op on the board")

			undo = pos.MakeMove(m)
			played = append(played, m)
			undos = append(undos, undo)
			depth++
		}

		for i := len(played) - 1; i >= 0; i-- {
			pos.UnmakeMove(played[i], undos[i])
		}

		require.Equal(t, NewPosition().String(), pos.String(), "unwinding the whole line must restore the start")
	}
}

// TestZobristAgreesWithRecomputation checks that the incrementally
// maintained hash matches a full from-scratch recomputation after every
// make and every undo along a random line of play (§8 invariant 4).
func TestZobristAgreesWithRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pos := NewPosition()

	for depth := 0; depth < 60; depth++ {
		moves := pos.GenerateLegalMoves()
		if moves.Len() == 0 {
			break
		}
		m := moves.Get(rng.Intn(moves.Len()))

		undo := pos.MakeMove(m)
		require.Equal(t, pos.ComputeHash(), pos.Hash, "hash diverged after make at depth %d", depth)

		pos.UnmakeMove(m, undo)
		require.Equal(t, pos.ComputeHash(), pos.Hash, "hash diverged after undo at depth %d", depth)

		pos.MakeMove(m)
	}
}
