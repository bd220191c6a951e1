package board

// GenerateLegalMoves generates every legal move available to the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return p.filterLegalMoves(ml)
}

// GeneratePseudoLegalMoves generates every pseudo-legal move (may leave the
// mover's own king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateAllMoves(ml)
	return ml
}

// GenerateCaptures generates legal capture (and capture-promotion) moves,
// plus non-capturing push-promotions, for use by a quiescence search.
func (p *Position) GenerateCaptures() *MoveList {
	ml := NewMoveList()
	p.generateCaptures(ml)
	return p.filterLegalMoves(ml)
}

// slidingPiece pairs a piece type with the attack function that computes
// its reachable squares given an occupancy, so generateAllMoves/
// generateCaptures can loop over one table instead of repeating the same
// "pop a piece, mask its attacks, emit" block per piece type.
type slidingPiece struct {
	pt      PieceType
	attacks func(Square, Bitboard) Bitboard
}

var slidingPieces = []slidingPiece{
	{Bishop, BishopAttacks},
	{Rook, RookAttacks},
	{Queen, QueenAttacks},
}

// generateAllMoves appends every pseudo-legal move for the side to move to ml.
func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove
	occupied := p.AllOccupied
	ownPieces := p.Occupied[us]

	p.generatePawnMoves(ml, us, p.Occupied[us.Other()], occupied)

	Iterate(p.Pieces[us][Knight], func(from Square) {
		emitTargets(ml, from, KnightAttacks(from)&^ownPieces)
	})

	for _, sp := range slidingPieces {
		Iterate(p.Pieces[us][sp.pt], func(from Square) {
			emitTargets(ml, from, sp.attacks(from, occupied)&^ownPieces)
		})
	}

	p.generateKingMoves(ml, us)
	p.generateCastlingMoves(ml, us)
}

// emitTargets adds one quiet-or-capture move from from to every square in
// targets (promotions and en passant are handled by their own callers).
func emitTargets(ml *MoveList, from Square, targets Bitboard) {
	Iterate(targets, func(to Square) {
		ml.Add(NewMove(from, to))
	})
}

// pawnShape holds the direction-dependent quantities pawn generation needs
// for one color: the single/double push targets, the two diagonal capture
// sets, the promotion rank, and pushDir (the from-to square delta of a
// single push — positive for White, negative for Black).
type pawnShape struct {
	push1, push2      Bitboard
	attackLeft, attackRight Bitboard
	promotionRank     Bitboard
	pushDir           int
}

func (p *Position) pawnShapeFor(us Color, enemies, occupied Bitboard) pawnShape {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	if us == White {
		push1 := pawns.North() & empty
		return pawnShape{
			push1:       push1,
			push2:       (push1 & Rank3).North() & empty,
			attackLeft:  pawns.NorthWest() & enemies,
			attackRight: pawns.NorthEast() & enemies,
			promotionRank: Rank8,
			pushDir:     8,
		}
	}
	push1 := pawns.South() & empty
	return pawnShape{
		push1:       push1,
		push2:       (push1 & Rank6).South() & empty,
		attackLeft:  pawns.SouthWest() & enemies,
		attackRight: pawns.SouthEast() & enemies,
		promotionRank: Rank1,
		pushDir:     -8,
	}
}

// emitFrom adds a move for every square in targets, each shifted back by
// offset to find its origin square; promote selects between a plain move
// and all four promotion moves.
func emitFrom(ml *MoveList, targets Bitboard, offset int, promote bool) {
	Iterate(targets, func(to Square) {
		from := Square(int(to) - offset)
		if promote {
			addPromotions(ml, from, to)
		} else {
			ml.Add(NewMove(from, to))
		}
	})
}

// generatePawnMoves appends every pseudo-legal pawn move (pushes, captures,
// promotions, en passant) for us to ml.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	shape := p.pawnShapeFor(us, enemies, occupied)
	notPromo, promo := ^shape.promotionRank, shape.promotionRank

	emitFrom(ml, shape.push1&notPromo, shape.pushDir, false)
	emitFrom(ml, shape.push2, 2*shape.pushDir, false)
	emitFrom(ml, shape.attackLeft&notPromo, shape.pushDir-1, false)
	emitFrom(ml, shape.attackRight&notPromo, shape.pushDir+1, false)

	emitFrom(ml, shape.push1&promo, shape.pushDir, true)
	emitFrom(ml, shape.attackLeft&promo, shape.pushDir-1, true)
	emitFrom(ml, shape.attackRight&promo, shape.pushDir+1, true)

	p.generateEnPassant(ml, us)
}

// addPromotions adds the four promotion-piece choices for one from-to pair.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateEnPassant appends an en passant capture for each of us's pawns
// that attacks the current en-passant target square, if any.
func (p *Position) generateEnPassant(ml *MoveList, us Color) {
	if p.EnPassant == NoSquare {
		return
	}
	epBB := SquareBB(p.EnPassant)
	pawns := p.Pieces[us][Pawn]

	var attackers Bitboard
	if us == White {
		attackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
	} else {
		attackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
	}
	Iterate(attackers, func(from Square) {
		ml.Add(NewEnPassant(from, p.EnPassant))
	})
}

// generateKingMoves appends us's non-castling king moves to ml.
func (p *Position) generateKingMoves(ml *MoveList, us Color) {
	from := p.KingSquare[us]
	emitTargets(ml, from, KingAttacks(from)&^p.Occupied[us])
}

// castlingPath describes one castling option: the right that must be held,
// the squares that must be empty, and the squares (including the king's
// start and destination) that must not be attacked for the king's path to
// be safe.
type castlingPath struct {
	right CastlingRights
	empty Bitboard
	safe  Bitboard
	king  Square
}

func castlingPaths(us Color) []castlingPath {
	if us == White {
		return []castlingPath{
			{WhiteKingSideCastle, SquareBB(F1) | SquareBB(G1), SquareBB(E1) | SquareBB(F1) | SquareBB(G1), G1},
			{WhiteQueenSideCastle, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), SquareBB(C1) | SquareBB(D1) | SquareBB(E1), C1},
		}
	}
	return []castlingPath{
		{BlackKingSideCastle, SquareBB(F8) | SquareBB(G8), SquareBB(E8) | SquareBB(F8) | SquareBB(G8), G8},
		{BlackQueenSideCastle, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), SquareBB(C8) | SquareBB(D8) | SquareBB(E8), C8},
	}
}

// generateCastlingMoves appends the castling moves still available to us:
// the right must still be held, the squares between king and rook must be
// empty, and no square the king crosses (start, transit, destination) may
// be attacked by the opponent.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	from := p.KingSquare[us]
	unsafe := p.UnsafeSquares(us)

	for _, path := range castlingPaths(us) {
		if p.CastlingRights&path.right == 0 {
			continue
		}
		if p.AllOccupied&path.empty != 0 {
			continue
		}
		if unsafe&path.safe != 0 {
			continue
		}
		ml.Add(NewCastling(from, path.king))
	}
}

// generateCaptures appends every pseudo-legal capture (including
// en-passant and capture-promotions, plus push-promotions which matter
// for quiescence even though they capture nothing) for the side to move.
func (p *Position) generateCaptures(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	enemies := p.Occupied[them]
	occupied := p.AllOccupied

	shape := p.pawnShapeFor(us, enemies, occupied)
	notPromo, promo := ^shape.promotionRank, shape.promotionRank

	emitFrom(ml, shape.attackLeft&notPromo, shape.pushDir-1, false)
	emitFrom(ml, shape.attackRight&notPromo, shape.pushDir+1, false)
	emitFrom(ml, shape.attackLeft&promo, shape.pushDir-1, true)
	emitFrom(ml, shape.attackRight&promo, shape.pushDir+1, true)
	emitFrom(ml, shape.push1&promo, shape.pushDir, true)

	p.generateEnPassant(ml, us)

	Iterate(p.Pieces[us][Knight], func(from Square) {
		emitTargets(ml, from, KnightAttacks(from)&enemies)
	})
	for _, sp := range slidingPieces {
		Iterate(p.Pieces[us][sp.pt], func(from Square) {
			emitTargets(ml, from, sp.attacks(from, occupied)&enemies)
		})
	}

	from := p.KingSquare[us]
	emitTargets(ml, from, KingAttacks(from)&enemies)
}

// MakeMove applies m to p, mutating the board and incrementally updating
// the Zobrist hash, and returns the information UnmakeMove needs to
// reverse it.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		LastMove:       p.LastMove,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		Checkers:       p.Checkers,
		Valid:          false,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return undo
	}
	undo.Valid = true
	pt := piece.Type()

	p.Hash ^= zobristSideToMove
	p.Hash ^= zobristCastling[p.CastlingRights]
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.EnPassant = NoSquare

	if m.IsEnPassant() {
		capturedSq := epCapturedSquare(us, to)
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.Hash ^= zobristPiece[them][Pawn][capturedSq]
	} else if captured := p.PieceAt(to); captured != NoPiece {
		undo.CapturedPiece = captured
		p.removePiece(to)
		p.Hash ^= zobristPiece[them][captured.Type()][to]
	}

	p.movePiece(from, to)
	p.Hash ^= zobristPiece[us][pt][from]
	p.Hash ^= zobristPiece[us][pt][to]

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][Pawn] = p.Pieces[us][Pawn].Clear(to)
		p.Pieces[us][promoPt] = p.Pieces[us][promoPt].Set(to)
		p.Hash ^= zobristPiece[us][Pawn][to]
		p.Hash ^= zobristPiece[us][promoPt][to]
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(from, to)
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= zobristPiece[us][Rook][rookFrom]
		p.Hash ^= zobristPiece[us][Rook][rookTo]
	}

	p.updateCastlingRightsAfter(pt, us, from, to)
	p.Hash ^= zobristCastling[p.CastlingRights]

	if pt == Pawn && absInt(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		p.EnPassant = epSquare
		p.Hash ^= zobristEnPassant[epSquare.File()]
	}

	if pt == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.LastMove = m
	p.UpdateCheckers()

	return undo
}

// epCapturedSquare returns the square of the pawn captured en passant by a
// move landing on to, for the mover us.
func epCapturedSquare(us Color, to Square) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// castlingRookSquares returns the rook's origin and destination for a
// castling move whose king travels from->to.
func castlingRookSquares(from, to Square) (rookFrom, rookTo Square) {
	rank := from.Rank()
	if to > from {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// updateCastlingRightsAfter strips whatever castling rights a move from-to
// by a pt-type piece invalidates: a king move loses both of its own
// rights; a rook moving off, or a capture landing on, a corner square
// loses that corner's right.
func (p *Position) updateCastlingRightsAfter(pt PieceType, us Color, from, to Square) {
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}
}

// UnmakeMove reverses m using the UndoInfo MakeMove returned for it,
// restoring p to the position it held before m was played.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.LastMove = undo.LastMove
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
	p.Checkers = undo.Checkers
	p.SideToMove = us

	if us == Black {
		p.FullMoveNumber--
	}

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][promoPt] = p.Pieces[us][promoPt].Clear(to)
		p.Pieces[us][Pawn] = p.Pieces[us][Pawn].Set(to)
	}

	p.movePiece(to, from)

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(from, to)
		p.movePiece(rookTo, rookFrom)
	}

	if undo.CapturedPiece != NoPiece {
		if m.IsEnPassant() {
			p.setPiece(undo.CapturedPiece, epCapturedSquare(us, to))
		} else {
			p.setPiece(undo.CapturedPiece, to)
		}
	}
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	ml := p.GeneratePseudoLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if p.IsLegal(ml.Get(i)) {
			return true
		}
	}
	return false
}

// IsDraw reports whether the position is a draw by stalemate, the
// 50-move rule, or insufficient material.
func (p *Position) IsDraw() bool {
	if p.IsStalemate() {
		return true
	}
	if p.HalfMoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}

// IsInsufficientMaterial reports whether neither side retains enough
// material to force checkmate (K vs K, K+minor vs K, or same-colored
// bishops on each side).
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	wKnights := p.Pieces[White][Knight].PopCount()
	wBishops := p.Pieces[White][Bishop].PopCount()
	bKnights := p.Pieces[Black][Knight].PopCount()
	bBishops := p.Pieces[Black][Bishop].PopCount()

	if wKnights+wBishops+bKnights+bBishops == 0 {
		return true
	}
	if wKnights+wBishops <= 1 && bKnights+bBishops == 0 {
		return true
	}
	if bKnights+bBishops <= 1 && wKnights+wBishops == 0 {
		return true
	}

	if wKnights == 0 && bKnights == 0 && wBishops == 1 && bBishops == 1 {
		wSq := p.Pieces[White][Bishop].LSB()
		bSq := p.Pieces[Black][Bishop].LSB()
		if (wSq.File()+wSq.Rank())%2 == (bSq.File()+bSq.Rank())%2 {
			return true
		}
	}

	return false
}
