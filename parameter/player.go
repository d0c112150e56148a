package parameter

// Player movement tuning. Jump speeds are negative because the Y axis grows
// downward.
const (
	WalkSpeed       = 100.0
	RunSpeed        = 150.0
	Acceleration    = 800.0
	AirAccelFactor  = 0.6
	JumpSpeed       = -250.0
	DoubleJumpSpeed = -220.0
	MaxJumps        = 3

	// JumpReleaseFactor halves upward velocity when the jump button is
	// released mid-ascent (variable jump height).
	JumpReleaseFactor = 0.5

	StartingLives = 2

	SpawnX = 50.0
	SpawnY = 180.0

	RespawnX = 50.0
	RespawnY = 100.0
)
