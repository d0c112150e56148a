package component

// ColliderComponent is an axis-aligned bounding box for collision tests.
// The offset shifts the box relative to the entity position.
type ColliderComponent struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

func (*ColliderComponent) Kind() Kind { return KindCollider }
