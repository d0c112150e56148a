package component

// CollectibleComponent is a pickup worth Points on first contact.
// Collected guards against double-credit between the overlap frame and the
// deferred destruction at the next frame boundary.
type CollectibleComponent struct {
	Points    int
	Collected bool
}

func (*CollectibleComponent) Kind() Kind { return KindCollectible }
