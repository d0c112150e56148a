package fsm

import (
	"math"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/parameter"
)

// groundedJump launches a jump from solid ground. Shared by idle and walking.
func groundedJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	if !p.OnGround {
		return p.State
	}
	v.Y = parameter.JumpSpeed
	p.OnGround = false
	p.JumpCount = 1
	return component.StateJumping
}

// airJump applies a double jump while airborne. No state change either way.
func airJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	if p.JumpCount < p.MaxJumps {
		v.Y = parameter.DoubleJumpSpeed
		p.JumpCount++
	}
	return p.State
}

// idleState: standing still on ground. Entering zeroes horizontal velocity.
type idleState struct{}

func (idleState) Enter(p *component.PlayerComponent, v *component.VelocityComponent) {
	v.X = 0
}

func (idleState) Update(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) component.StateID {
	if !p.OnGround {
		return component.StateFalling
	}
	if math.Abs(v.X) > parameter.VelocityRestThreshold {
		return component.StateWalking
	}
	return component.StateIdle
}

func (idleState) HandleJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	return groundedJump(p, v)
}

// walkingState: moving on ground.
type walkingState struct{}

func (walkingState) Enter(p *component.PlayerComponent, v *component.VelocityComponent) {}

func (walkingState) Update(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) component.StateID {
	if !p.OnGround {
		return component.StateFalling
	}
	if math.Abs(v.X) < parameter.VelocityRestThreshold {
		return component.StateIdle
	}
	return component.StateWalking
}

func (walkingState) HandleJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	return groundedJump(p, v)
}

// jumpingState: ascending. Falls once vertical velocity turns positive
// (apex passed).
type jumpingState struct{}

func (jumpingState) Enter(p *component.PlayerComponent, v *component.VelocityComponent) {}

func (jumpingState) Update(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) component.StateID {
	if v.Y > 0 {
		return component.StateFalling
	}
	return component.StateJumping
}

func (jumpingState) HandleJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	return airJump(p, v)
}

// fallingState: descending. Lands into idle or walking depending on
// horizontal speed once the collision pass sets OnGround.
type fallingState struct{}

func (fallingState) Enter(p *component.PlayerComponent, v *component.VelocityComponent) {}

func (fallingState) Update(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) component.StateID {
	if !p.OnGround {
		return component.StateFalling
	}
	if math.Abs(v.X) > parameter.VelocityRestThreshold {
		return component.StateWalking
	}
	return component.StateIdle
}

func (fallingState) HandleJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID {
	return airJump(p, v)
}
