package chess

// CastleRights holds the four castling permissions. It is a value type:
// a copy is an independent snapshot.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastleRights returns a snapshot with every right granted.
func AllCastleRights() CastleRights {
	return CastleRights{true, true, true, true}
}

// Kingside returns the kingside right of colour.
func (r CastleRights) Kingside(colour Colour) bool {
	if colour == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside returns the queenside right of colour.
func (r CastleRights) Queenside(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// RevokeKingside clears the kingside right of colour.
func (r *CastleRights) RevokeKingside(colour Colour) {
	if colour == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

// RevokeQueenside clears the queenside right of colour.
func (r *CastleRights) RevokeQueenside(colour Colour) {
	if colour == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

// RevokeAll clears both rights of colour.
func (r *CastleRights) RevokeAll(colour Colour) {
	r.RevokeKingside(colour)
	r.RevokeQueenside(colour)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastleRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
