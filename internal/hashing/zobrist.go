// Package hashing provides Zobrist hashing of positions and counters of
// repeated positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the keys so hashes are stable across runs.
const zobristSeed = 0x5eed

var (
	pieceKeys     [2][7][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	castleKeys    [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// HashBoard returns the Zobrist hash of the piece placement alone.
func HashBoard(b *chess.Board) uint64 {
	var h uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := b[rank][file]
			if sq.IsEmpty() {
				continue
			}
			h ^= pieceKeys[sq.Colour()][sq.Kind()][rank*chess.BoardSize+file]
		}
	}
	return h
}

// Hash returns the Zobrist hash of the position of gs: pieces, side to
// move, castling rights and en-passant target. Move counters and history
// are not part of it.
func Hash(gs *engine.GameState) uint64 {
	board := gs.Board()
	h := HashBoard(&board)
	if gs.ToMove() == chess.Black {
		h ^= blackToMove
	}

	rights := gs.CastleRights()
	for i, set := range [4]bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if set {
			h ^= castleKeys[i]
		}
	}
	if ep, ok := gs.EnPassant(); ok {
		h ^= enPassantKeys[ep.File]
	}
	return h
}
