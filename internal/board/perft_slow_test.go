package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPerftStartingPositionDepth5 exercises the full depth-5 reference
// count from the starting position. It visits ~4.9M leaves and is skipped
// under `go test -short`.
func TestPerftStartingPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}

	pos := NewPosition()
	require.Equal(t, int64(4865609), Perft(pos, 5))
}
