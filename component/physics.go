package component

// PhysicsComponent marks an entity for the physics integrator.
type PhysicsComponent struct {
	Gravity      float64
	MaxFallSpeed float64
	Friction     float64
	GravityBound bool // affected by gravity accumulation
}

func (*PhysicsComponent) Kind() Kind { return KindPhysics }
