package systems

import (
	"math"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/fsm"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/parameter"
)

// InputSystem turns held-button state into player velocity targets and
// feeds jump edges into the movement state machine. It must run before
// PhysicsSystem so integration sees this frame's input.
type InputSystem struct {
	source input.Source

	// lastJump remembers the previous frame's jump-button state so a held
	// button produces exactly one HandleJump edge.
	lastJump bool
}

// NewInputSystem creates the input stage reading from src.
func NewInputSystem(src input.Source) *InputSystem {
	return &InputSystem{source: src}
}

func (s *InputSystem) Update(w *engine.World, dt float64) {
	if w.GameOver {
		return
	}

	entities := w.Query(component.KindPlayer, component.KindPosition, component.KindVelocity, component.KindPhysics)
	for _, e := range entities {
		player, ok := engine.Get[*component.PlayerComponent](w, e)
		if !ok {
			continue
		}
		vel, ok := engine.Get[*component.VelocityComponent](w, e)
		if !ok {
			continue
		}

		left := s.source.Held(input.Left)
		right := s.source.Held(input.Right)
		jump := s.source.Held(input.Jump)

		// Horizontal movement: ease toward the target speed on the ground,
		// with reduced authority in the air; bleed off through friction
		// when no direction is held.
		targetSpeed := 0.0
		if left {
			targetSpeed = -parameter.WalkSpeed
		} else if right {
			targetSpeed = parameter.WalkSpeed
		}

		if targetSpeed != 0 {
			accel := parameter.Acceleration
			if !player.OnGround {
				accel *= parameter.AirAccelFactor
			}
			vel.X += (targetSpeed - vel.X) * accel * dt
		} else {
			friction := parameter.AirFriction
			if player.OnGround {
				friction = parameter.Friction
			}
			vel.X *= friction
			if math.Abs(vel.X) < parameter.VelocityRestThreshold {
				vel.X = 0
			}
		}

		if vel.X < -parameter.WalkSpeed {
			vel.X = -parameter.WalkSpeed
		}
		if vel.X > parameter.WalkSpeed {
			vel.X = parameter.WalkSpeed
		}

		// Jump on the press edge only; holding the button does not
		// retrigger.
		if jump && !s.lastJump {
			fsm.Jump(player, vel)
		}

		// Releasing jump early while ascending cuts the climb short.
		if !jump && vel.Y < 0 {
			vel.Y *= parameter.JumpReleaseFactor
		}

		fsm.Step(player, vel, dt)

		s.lastJump = jump
	}
}
