package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/parameter"
)

const testDt = 1.0 / 60.0

func spawnTestPlayer(w *engine.World) core.Entity {
	e := w.CreateEntity()
	w.AddComponent(e, &component.PositionComponent{X: 50, Y: 180})
	w.AddComponent(e, &component.VelocityComponent{})
	w.AddComponent(e, &component.ColliderComponent{Width: 16, Height: 16})
	w.AddComponent(e, &component.PhysicsComponent{
		Gravity:      parameter.Gravity,
		MaxFallSpeed: parameter.MaxFallSpeed,
		GravityBound: true,
	})
	w.AddComponent(e, &component.PlayerComponent{
		OnGround: true,
		Lives:    parameter.StartingLives,
		MaxJumps: parameter.MaxJumps,
	})
	w.Player = e
	return e
}

func playerParts(t *testing.T, w *engine.World, e core.Entity) (*component.PlayerComponent, *component.VelocityComponent) {
	t.Helper()
	p, ok := engine.Get[*component.PlayerComponent](w, e)
	if !ok {
		t.Fatalf("player component missing")
	}
	v, ok := engine.Get[*component.VelocityComponent](w, e)
	if !ok {
		t.Fatalf("velocity component missing")
	}
	return p, v
}

// Holding right ramps toward walk speed and never exceeds it
func TestWalkAcceleration(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)

	src.Set(input.Right, true)
	for i := 0; i < 20; i++ {
		sys.Update(w, testDt)
	}

	_, vel := playerParts(t, w, e)
	if vel.X <= 0 {
		t.Errorf("Expected rightward velocity, got %v", vel.X)
	}
	if vel.X > parameter.WalkSpeed {
		t.Errorf("Expected velocity capped at %v, got %v", parameter.WalkSpeed, vel.X)
	}
}

// Releasing direction bleeds speed off through friction down to zero
func TestFrictionStop(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)

	_, vel := playerParts(t, w, e)
	vel.X = parameter.WalkSpeed

	for i := 0; i < 60; i++ {
		sys.Update(w, testDt)
	}

	if vel.X != 0 {
		t.Errorf("Expected velocity decayed to 0, got %v", vel.X)
	}
}

// A held jump button fires exactly one launch; re-press is a new edge
func TestJumpEdgeDetection(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)

	player, vel := playerParts(t, w, e)

	src.Set(input.Jump, true)
	sys.Update(w, testDt)

	if vel.Y != parameter.JumpSpeed {
		t.Errorf("Expected launch at %v, got %v", parameter.JumpSpeed, vel.Y)
	}
	if player.State != component.StateJumping {
		t.Errorf("Expected jumping state, got %v", player.State)
	}

	// Still held: must not re-trigger an air jump
	sys.Update(w, testDt)
	if player.JumpCount != 1 {
		t.Errorf("Expected held button not to retrigger, JumpCount=%d", player.JumpCount)
	}

	// Release, then press again: a fresh edge buys the double jump
	src.Set(input.Jump, false)
	vel.Y = -10 // keep a little ascent so the release halving is visible
	sys.Update(w, testDt)
	if vel.Y != -10*parameter.JumpReleaseFactor {
		t.Errorf("Expected early release to halve ascent, got %v", vel.Y)
	}

	src.Set(input.Jump, true)
	sys.Update(w, testDt)
	if player.JumpCount != 2 {
		t.Errorf("Expected double jump on fresh edge, JumpCount=%d", player.JumpCount)
	}
	if vel.Y != parameter.DoubleJumpSpeed {
		t.Errorf("Expected double jump speed, got %v", vel.Y)
	}
}

// Early release only cuts ascent, never descent
func TestJumpReleaseOnlyWhileAscending(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)

	player, vel := playerParts(t, w, e)
	player.OnGround = false
	player.State = component.StateFalling
	vel.Y = 100

	sys.Update(w, testDt)
	if vel.Y != 100 {
		t.Errorf("Expected descent untouched by release rule, got %v", vel.Y)
	}
}

// Game over freezes input processing entirely
func TestInputFrozenOnGameOver(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)
	w.GameOver = true

	src.Set(input.Right, true)
	src.Set(input.Jump, true)
	sys.Update(w, testDt)

	_, vel := playerParts(t, w, e)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("Expected no movement after game over, got (%v, %v)", vel.X, vel.Y)
	}
}

// Walking left mirrors walking right
func TestWalkLeft(t *testing.T) {
	w := engine.NewWorld()
	e := spawnTestPlayer(w)
	src := &input.Stub{}
	sys := NewInputSystem(src)

	src.Set(input.Left, true)
	for i := 0; i < 20; i++ {
		sys.Update(w, testDt)
	}

	_, vel := playerParts(t, w, e)
	if vel.X >= 0 {
		t.Errorf("Expected leftward velocity, got %v", vel.X)
	}
	if math.Abs(vel.X) > parameter.WalkSpeed {
		t.Errorf("Expected speed capped at %v, got %v", parameter.WalkSpeed, vel.X)
	}
}
