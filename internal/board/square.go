// Package board implements a bitboard chess position: the twelve
// piece/color bitboards, move generation, make/undo, and the Zobrist
// hash, with no engine or I/O concerns mixed in.
package board

import "fmt"

// Square names a board square 0-63 under the little-endian rank-file
// mapping (a1=0, h1=7, a8=56, h8=63).
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// File returns the file (0=a .. 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (0=first .. 7=eighth).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String renders the square in algebraic notation, e.g. "e4". An
// out-of-range square (NoSquare and above) renders as "-".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return squareNames[sq]
}

// NewSquare builds a Square from 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation, e.g. "e4", into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return NewSquare(file, rank), nil
}

// IsValid reports whether sq names one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror reflects sq across the board's horizontal midline, converting
// between White's and Black's view of the same file (e.g. e1 <-> e8).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns sq's rank as seen by c: rank 0 is always c's
// back rank, rank 7 always the far side.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}
