package level

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/parameter"
)

// Builder is a fluent entity constructor. The entity ID is reserved up
// front; With calls attach components immediately and Build returns the ID.
//
//	player := level.NewBuilder(w).
//	    Position(50, 180).
//	    Velocity(0, 0).
//	    Collider(16, 16).
//	    Build()
type Builder struct {
	world  *engine.World
	entity core.Entity
}

// NewBuilder reserves a fresh entity on w.
func NewBuilder(w *engine.World) *Builder {
	return &Builder{world: w, entity: w.CreateEntity()}
}

// With attaches an arbitrary component.
func (b *Builder) With(c component.Component) *Builder {
	b.world.AddComponent(b.entity, c)
	return b
}

// Position attaches a position component.
func (b *Builder) Position(x, y float64) *Builder {
	return b.With(&component.PositionComponent{X: x, Y: y})
}

// Velocity attaches a velocity component.
func (b *Builder) Velocity(vx, vy float64) *Builder {
	return b.With(&component.VelocityComponent{X: vx, Y: vy})
}

// Sprite attaches a sprite component.
func (b *Builder) Sprite(color uint32, w, h int) *Builder {
	return b.With(&component.SpriteComponent{Color: color, Width: w, Height: h})
}

// Collider attaches an unoffset collider of the given size.
func (b *Builder) Collider(w, h float64) *Builder {
	return b.With(&component.ColliderComponent{Width: w, Height: h})
}

// Physics attaches a gravity-bound physics component with standard gravity
// and fall-speed limits.
func (b *Builder) Physics(friction float64) *Builder {
	return b.With(&component.PhysicsComponent{
		Gravity:      parameter.Gravity,
		MaxFallSpeed: parameter.MaxFallSpeed,
		Friction:     friction,
		GravityBound: true,
	})
}

// Build finalizes construction and returns the entity ID.
func (b *Builder) Build() core.Entity {
	return b.entity
}
