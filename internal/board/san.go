package board

import "strings"

// pieceLetters maps a PieceType to its SAN letter (Pawn's is never
// written, but indexing stays simple by including it).
const pieceLetters = "PNBRQK"

// ToSAN renders m as Standard Algebraic Notation in the context of
// pos (the position m is about to be played from). Falls back to UCI
// notation if m doesn't name a piece actually on its from-square.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	piece := pos.PieceAt(m.From())
	if piece == NoPiece {
		return m.String()
	}

	if m.IsCastling() {
		if m.To() > m.From() {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte(pieceLetters[pt])
		sb.WriteString(sanDisambiguation(pos, m, pt))
	}

	if m.IsCapture(pos) {
		if pt == Pawn {
			sb.WriteByte('a' + byte(m.From().File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To().String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Promotion()])
	}

	sb.WriteString(sanCheckSuffix(pos, m))

	return sb.String()
}

// sanCheckSuffix plays m on a scratch copy of pos and reports the
// "+"/"#" suffix it leaves the opponent in, or "" for neither.
func sanCheckSuffix(pos *Position, m Move) string {
	after := pos.Copy()
	after.MakeMove(m)
	switch {
	case after.IsCheckmate():
		return "#"
	case after.InCheck():
		return "+"
	default:
		return ""
	}
}

// sanDisambiguation returns the minimal from-square fragment (file,
// rank, or both) needed to distinguish m from any other legal move of
// the same piece type landing on the same square.
func sanDisambiguation(pos *Position, m Move, pt PieceType) string {
	from, to := m.From(), m.To()
	sameType := pos.Pieces[pos.SideToMove][pt]

	var rivals []Square
	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		other := legal.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if sameType.IsSet(other.From()) {
			rivals = append(rivals, other.From())
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	fileClash, rankClash := false, false
	for _, sq := range rivals {
		fileClash = fileClash || sq.File() == from.File()
		rankClash = rankClash || sq.Rank() == from.Rank()
	}

	switch {
	case !fileClash:
		return string(rune('a' + from.File()))
	case !rankClash:
		return string(rune('1' + from.Rank()))
	default:
		return from.String()
	}
}

var sanPieceLetter = map[byte]PieceType{
	'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// ParseSAN parses s (as played from pos) into the Move it names, by
// filtering pos's legal moves down to the one matching s's piece,
// destination, disambiguation, capture and promotion markers. Returns
// NoMove, without error, if no legal move matches.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)

	if castling, ok := parseSANCastling(s, pos.SideToMove); ok {
		if !pos.GenerateLegalMoves().Contains(castling) {
			return NoMove, nil
		}
		return castling, nil
	}

	s = strings.TrimSuffix(strings.TrimSuffix(s, "+"), "#")

	promo := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		promo = sanPieceLetter[s[idx+1]]
		s = s[:idx]
	}

	isCapture := strings.ContainsRune(s, 'x')
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		if mapped, ok := sanPieceLetter[s[0]]; ok {
			pt = mapped
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, nil
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	disambigFile, disambigRank := parseSANDisambiguation(s[:len(s)-2])

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.To() != dest {
			continue
		}
		from := m.From()
		if pos.PieceAt(from).Type() != pt {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture != m.IsCapture(pos) {
			continue
		}
		if promo != NoPieceType && (!m.IsPromotion() || m.Promotion() != promo) {
			continue
		}
		return m, nil
	}

	return NoMove, nil
}

// parseSANCastling recognizes "O-O"/"O-O-O" (and the all-digit "0-0"
// variant some GUIs emit) for the side to move.
func parseSANCastling(s string, us Color) (Move, bool) {
	back := Square(E1)
	if us == Black {
		back = E8
	}
	switch s {
	case "O-O", "0-0":
		return NewCastling(back, back+2), true
	case "O-O-O", "0-0-0":
		return NewCastling(back, back-2), true
	default:
		return NoMove, false
	}
}

// parseSANDisambiguation scans the leftover fragment between the
// piece letter and destination square for a file and/or rank hint,
// returning -1 for whichever axis wasn't specified.
func parseSANDisambiguation(s string) (file, rank int) {
	file, rank = -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			file = int(c - 'a')
		case c >= '1' && c <= '8':
			rank = int(c - '1')
		}
	}
	return file, rank
}

// MovesToSAN renders moves in order as SAN strings, playing each on a
// scratch copy of pos so later moves see the resulting position.
func MovesToSAN(pos *Position, moves []Move) []string {
	result := make([]string, len(moves))
	scratch := pos.Copy()
	for i, m := range moves {
		result[i] = m.ToSAN(scratch)
		scratch.MakeMove(m)
	}
	return result
}
