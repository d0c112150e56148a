package parameter

// Physics integration constants. Velocities are pixels per second,
// accelerations pixels per second squared.
const (
	Gravity      = 800.0
	MaxFallSpeed = 400.0

	Friction    = 0.82
	AirFriction = 0.95

	// VelocityRestThreshold: horizontal speeds below this decay to zero.
	VelocityRestThreshold = 1.0
)
