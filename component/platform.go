package component

// PlatformComponent marks static geometry the player collides with.
// A one-way platform only blocks motion from above (landing); side and
// bottom contacts pass through.
type PlatformComponent struct {
	Solid  bool
	OneWay bool
}

func (*PlatformComponent) Kind() Kind { return KindPlatform }
