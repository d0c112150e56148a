package component

// VelocityComponent is linear velocity in pixels per second.
type VelocityComponent struct {
	X, Y float64
}

func (*VelocityComponent) Kind() Kind { return KindVelocity }
