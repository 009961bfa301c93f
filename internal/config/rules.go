package config

// RulesConfig holds switches for rule details where the engine can either
// reproduce its historical behaviour or apply the stricter rule.
type RulesConfig struct {
	// RookCaptureRevokesCastling revokes a castling right when the rook on
	// that side's home square is captured. Off by default: only a king or
	// rook move of the side itself revokes its rights.
	RookCaptureRevokesCastling bool

	// PawnsAttackEmptySquares makes a pawn attack both forward diagonals
	// whether or not they are occupied, so castling across such a square is
	// refused. Off by default: a square counts as attacked only when an
	// opponent pseudo-move ends on it, which for pawns means a capture or a
	// push.
	PawnsAttackEmptySquares bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
