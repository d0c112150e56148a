// Package fsm implements the player movement state machine: a closed set of
// states (idle, walking, jumping, falling) dispatched by the StateID stored
// on the player component. Each state exposes the same three behaviors:
// Enter runs side effects on transition, Update checks per-frame transitions
// against velocity and the on-ground flag, and HandleJump reacts to a fresh
// jump-button press edge.
package fsm

import (
	"github.com/lixenwraith/vi-runner/component"
)

// State is one node of the player movement machine. Update and HandleJump
// return the next state ID; returning the current ID means no transition.
// The caller applies Enter exactly once per transition.
type State interface {
	Enter(p *component.PlayerComponent, v *component.VelocityComponent)
	Update(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) component.StateID
	HandleJump(p *component.PlayerComponent, v *component.VelocityComponent) component.StateID
}

// states is the dispatch table over the closed state set.
var states = [...]State{
	component.StateIdle:    idleState{},
	component.StateWalking: walkingState{},
	component.StateJumping: jumpingState{},
	component.StateFalling: fallingState{},
}

// For returns the state value for an ID. Unknown IDs fall back to idle.
func For(id component.StateID) State {
	if int(id) >= len(states) {
		return states[component.StateIdle]
	}
	return states[id]
}

// Step runs the current state's per-frame transition check and applies any
// resulting transition, calling Enter on the new state.
func Step(p *component.PlayerComponent, v *component.VelocityComponent, dt float64) {
	next := For(p.State).Update(p, v, dt)
	transition(p, v, next)
}

// Jump feeds a fresh jump-press edge to the current state and applies any
// resulting transition.
func Jump(p *component.PlayerComponent, v *component.VelocityComponent) {
	next := For(p.State).HandleJump(p, v)
	transition(p, v, next)
}

func transition(p *component.PlayerComponent, v *component.VelocityComponent, next component.StateID) {
	if next == p.State {
		return
	}
	p.State = next
	For(next).Enter(p, v)
}
