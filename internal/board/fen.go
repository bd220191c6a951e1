package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is Forsyth-Edwards notation for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields walks the space-separated fields of a FEN record in order,
// tracking how many are left so optional trailing fields (half-move
// clock, full-move number) can be detected without re-splitting.
type fenFields struct {
	parts []string
	next  int
}

func newFenFields(fen string) *fenFields {
	return &fenFields{parts: strings.Fields(fen)}
}

func (f *fenFields) remaining() int {
	return len(f.parts) - f.next
}

func (f *fenFields) take() (string, bool) {
	if f.remaining() <= 0 {
		return "", false
	}
	s := f.parts[f.next]
	f.next++
	return s, true
}

// ParseFEN parses a FEN record into a fresh Position.
func ParseFEN(fen string) (*Position, error) {
	fields := newFenFields(fen)
	if fields.remaining() < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", fields.remaining())
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	placement, _ := fields.take()
	if err := placePiecesFromFEN(pos, placement); err != nil {
		return nil, err
	}

	sideField, _ := fields.take()
	switch sideField {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", sideField)
	}

	castlingField, _ := fields.take()
	if err := setCastlingRightsFromFEN(pos, castlingField); err != nil {
		return nil, err
	}

	epField, _ := fields.take()
	if epField != "-" {
		sq, err := ParseSquare(epField)
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", epField)
		}
		pos.EnPassant = sq
	}

	if hmc, ok := fields.take(); ok {
		n, err := strconv.Atoi(hmc)
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", hmc)
		}
		pos.HalfMoveClock = n
	}

	if fmn, ok := fields.take(); ok {
		n, err := strconv.Atoi(fmn)
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", fmn)
		}
		pos.FullMoveNumber = n
	}

	pos.recomputeOccupancy()
	pos.locateKings()
	pos.UpdateCheckers()
	pos.Hash = pos.ComputeHash()
	pos.PawnKey = pos.ComputePawnKey()

	return pos, nil
}

// placePiecesFromFEN decodes the piece-placement field (ranks 8 down to 1,
// '/'-separated, digits for run-lengths of empty squares).
func placePiecesFromFEN(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// setCastlingRightsFromFEN decodes the castling-availability field ("-" or
// any subset of "KQkq").
func setCastlingRightsFromFEN(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}

	rightByChar := map[rune]CastlingRights{
		'K': WhiteKingSideCastle,
		'Q': WhiteQueenSideCastle,
		'k': BlackKingSideCastle,
		'q': BlackQueenSideCastle,
	}
	for _, c := range castling {
		right, ok := rightByChar[c]
		if !ok {
			return fmt.Errorf("invalid castling character: %c", c)
		}
		pos.CastlingRights |= right
	}
	return nil
}

// ToFEN renders p as a FEN record.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	fmt.Fprintf(&sb, " %d %d", p.HalfMoveClock, p.FullMoveNumber)

	return sb.String()
}

// ComputeHash recomputes p's Zobrist hash from scratch (pieces, side to
// move, castling rights, en-passant file), as opposed to the incremental
// update MakeMove/UnmakeMove perform. Used by ParseFEN and as the ground
// truth roundtrip tests check incremental updates against.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= zobristPiece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}

// ComputePawnKey recomputes p's pawn-only Zobrist key from scratch —
// the piece-hash contribution restricted to the pawn bitboards.
func (p *Position) ComputePawnKey() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		bb := p.Pieces[c][Pawn]
		for bb != 0 {
			sq := bb.PopLSB()
			key ^= zobristPiece[c][Pawn][sq]
		}
	}
	return key
}
