package systems

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/parameter"
)

// PhysicsSystem integrates every entity carrying Position+Velocity+Physics:
// gravity accumulation with a fall-speed clamp, explicit Euler position
// update, horizontal world-boundary clamping, and the death-pit rule.
type PhysicsSystem struct{}

// NewPhysicsSystem creates the integration stage.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *engine.World, dt float64) {
	entities := w.Query(component.KindPosition, component.KindVelocity, component.KindPhysics)
	for _, e := range entities {
		pos, ok := engine.Get[*component.PositionComponent](w, e)
		if !ok {
			continue
		}
		vel, ok := engine.Get[*component.VelocityComponent](w, e)
		if !ok {
			continue
		}
		phys, ok := engine.Get[*component.PhysicsComponent](w, e)
		if !ok {
			continue
		}

		if phys.GravityBound {
			vel.Y += phys.Gravity * dt
			if vel.Y > phys.MaxFallSpeed {
				vel.Y = phys.MaxFallSpeed
			}
		}

		// Explicit Euler, no sub-stepping.
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Horizontal world bounds. Width comes from the collider; entities
		// without one clamp on their anchor point alone.
		width := 0.0
		if col, ok := engine.Get[*component.ColliderComponent](w, e); ok {
			width = col.Width
		}
		if pos.X < 0 {
			pos.X = 0
			vel.X = 0
		}
		if pos.X > parameter.WorldWidth-width {
			pos.X = parameter.WorldWidth - width
			vel.X = 0
		}

		// Death pit: players burn a life and respawn (or end the game);
		// anything else is queued for destruction.
		if pos.Y > parameter.DisplayHeight+parameter.DeathPitMargin {
			if player, ok := engine.Get[*component.PlayerComponent](w, e); ok {
				player.Lives--
				w.Emit(event.Event{Type: event.PlayerDied, Entity: e})
				if player.Lives <= 0 {
					w.GameOver = true
					w.Emit(event.Event{Type: event.GameOver, Entity: e})
				} else {
					pos.X = parameter.RespawnX
					pos.Y = parameter.RespawnY
					vel.X = 0
					vel.Y = 0
				}
			} else {
				w.DestroyEntity(e)
			}
		}
	}
}
