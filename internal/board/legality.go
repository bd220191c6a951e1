package board

// filterLegalMoves keeps only the moves that do not leave the mover's own
// king attacked — the pseudo-legal-to-legal filter of spec §4.5.
func (p *Position) filterLegalMoves(ml *MoveList) *MoveList {
	result := NewMoveList()

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if p.IsLegal(m) {
			result.Add(m)
		}
	}

	return result
}

// IsLegal returns true if the move is legal: after making it, the mover's
// king is not in an unsafe square. Implemented via make/undo for guaranteed
// correctness, with a shortcut for ordinary king moves (the only ones whose
// legality can be checked without mutating the board) since castling safety
// is already validated during generation.
func (p *Position) IsLegal(m Move) bool {
	us := p.SideToMove
	from := m.From()
	ksq := p.KingSquare[us]

	if from == ksq {
		if m.IsCastling() {
			return true // already validated in generateCastlingMoves
		}
		occ := p.AllOccupied &^ SquareBB(from)
		return p.unsafeSquaresAt(us, occ)&SquareBB(m.To()) == 0
	}

	undo := p.MakeMove(m)
	if !undo.Valid {
		return false
	}

	wasLegal := !p.InCheckColor(us)
	p.UnmakeMove(m, undo)

	return wasLegal
}

// IsCheckmate returns true if side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if side to move is not in check but has no legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
