package parameter

// World and display geometry, in pixel units.
const (
	WorldWidth   = 3200.0
	GroundHeight = 220.0
	TileSize     = 32.0

	DisplayWidth  = 320.0
	DisplayHeight = 240.0

	// DeathPitMargin is how far below the display an entity may fall before
	// the death-pit rule triggers.
	DeathPitMargin = 100.0
)
