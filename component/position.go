package component

// PositionComponent is the world-space top-left corner of an entity in
// pixel units.
type PositionComponent struct {
	X, Y float64
}

func (*PositionComponent) Kind() Kind { return KindPosition }
