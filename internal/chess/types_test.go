package chess

import "testing"

func TestSquare(t *testing.T) {
	tests := []struct {
		name       string
		sq         Square
		wantEmpty  bool
		wantString string
		wantLetter byte
	}{
		{"empty", Empty, true, "--", '.'},
		{"white king", W(King), false, "wK", 'K'},
		{"black pawn", B(Pawn), false, "bP", 'p'},
		{"black knight", B(Knight), false, "bN", 'n'},
		{"no kind is empty", NewSquare(Black, NoKind), true, "--", '.'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
			if got := tt.sq.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := tt.sq.Letter(); got != tt.wantLetter {
				t.Errorf("Letter() = %c, want %c", got, tt.wantLetter)
			}
		})
	}

	if NewSquare(Black, NoKind) != Empty {
		t.Error("an empty square must not carry a colour")
	}
	if !W(Rook).Is(White, Rook) || W(Rook).Is(Black, Rook) {
		t.Error("Is() does not distinguish colours")
	}
	if Empty.IsColour(White) || Empty.IsColour(Black) {
		t.Error("Empty.IsColour() = true")
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d, %d; want -1, 1", White.Forward(), Black.Forward())
	}
	if White.PromotionRank() != 0 || Black.PromotionRank() != 7 {
		t.Errorf("PromotionRank() = %d, %d; want 0, 7", White.PromotionRank(), Black.PromotionRank())
	}
	if White.PawnRank() != 6 || Black.PawnRank() != 1 {
		t.Errorf("PawnRank() = %d, %d; want 6, 1", White.PawnRank(), Black.PawnRank())
	}
}

func TestKindFromLetter(t *testing.T) {
	for _, k := range []PieceKind{Pawn, Knight, Bishop, Rook, Queen, King} {
		l := k.Letter()
		if got := KindFromLetter(l); got != k {
			t.Errorf("KindFromLetter(%c) = %v, want %v", l, got, k)
		}
		if got := KindFromLetter(l + 'a' - 'A'); got != k {
			t.Errorf("KindFromLetter(%c) = %v, want %v", l+'a'-'A', got, k)
		}
	}
	if got := KindFromLetter('x'); got != NoKind {
		t.Errorf("KindFromLetter('x') = %v, want NoKind", got)
	}
}

func TestCastleRights(t *testing.T) {
	r := AllCastleRights()
	if got := r.String(); got != "KQkq" {
		t.Errorf("String() = %q, want KQkq", got)
	}

	snapshot := r
	r.RevokeKingside(White)
	r.RevokeQueenside(Black)
	if r.Kingside(White) || !r.Queenside(White) || !r.Kingside(Black) || r.Queenside(Black) {
		t.Errorf("rights after revokes = %s, want Qk", r)
	}
	if snapshot.String() != "KQkq" {
		t.Error("revoking on a copy changed the snapshot")
	}

	r.RevokeAll(White)
	r.RevokeAll(Black)
	if got := r.String(); got != "-" {
		t.Errorf("String() = %q, want -", got)
	}
}
