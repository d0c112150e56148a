package parameter

// Combat and scoring tuning.
const (
	// StompThreshold is the minimum downward velocity for a player-enemy
	// overlap to count as a stomp instead of damage.
	StompThreshold = 50.0

	// StompEpsilon relaxes the bottom-edge comparison so grazing stomps
	// still register.
	StompEpsilon = 5.0

	// StompBounceFactor scales JumpSpeed into the post-stomp bounce.
	StompBounceFactor = 0.6

	KnockbackSpeedX = 120.0
	KnockbackSpeedY = -100.0

	EnemyPoints = 100
	CoinPoints  = 50
)

// Camera follow.
const (
	CameraLerp = 8.0
)
