// Package level populates a world with entities before the first frame.
// It is a pure producer: it only calls CreateEntity and AddComponent, never
// participates in the per-frame loop.
package level

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/render"
)

// PlatformParams configures a platform factory call.
type PlatformParams struct {
	Width  float64
	Height float64
	Solid  bool
	OneWay bool
	Color  render.Color
}

// EnemyParams configures an enemy factory call.
type EnemyParams struct {
	Speed       float64
	PatrolStart float64
	PatrolEnd   float64
	Points      int
}

// CollectibleParams configures a collectible factory call.
type CollectibleParams struct {
	Points int
}

// CreatePlatform spawns a static platform at (x, y).
func CreatePlatform(w *engine.World, x, y float64, params PlatformParams) core.Entity {
	color := params.Color
	if color == 0 {
		color = render.ColorGround
	}
	return NewBuilder(w).
		Position(x, y).
		Sprite(uint32(color), int(params.Width), int(params.Height)).
		Collider(params.Width, params.Height).
		With(&component.PlatformComponent{Solid: params.Solid, OneWay: params.OneWay}).
		Build()
}

// CreateEnemy spawns a patrolling enemy at (x, y).
func CreateEnemy(w *engine.World, x, y float64, params EnemyParams) core.Entity {
	points := params.Points
	if points == 0 {
		points = parameter.EnemyPoints
	}
	return NewBuilder(w).
		Position(x, y).
		Velocity(0, 0).
		Sprite(uint32(render.ColorEnemy), 14, 14).
		Collider(14, 14).
		With(&component.EnemyComponent{
			MoveSpeed:   params.Speed,
			Direction:   1,
			PatrolStart: params.PatrolStart,
			PatrolEnd:   params.PatrolEnd,
			Points:      points,
		}).
		Physics(0.9).
		Build()
}

// CreateCollectible spawns a pickup at (x, y).
func CreateCollectible(w *engine.World, x, y float64, params CollectibleParams) core.Entity {
	points := params.Points
	if points == 0 {
		points = parameter.CoinPoints
	}
	return NewBuilder(w).
		Position(x, y).
		Sprite(uint32(render.ColorCoin), 10, 10).
		Collider(10, 10).
		With(&component.CollectibleComponent{Points: points}).
		Build()
}

// CreatePlayer spawns the player at (x, y) and records it on the world.
func CreatePlayer(w *engine.World, x, y float64, lives int) core.Entity {
	if lives <= 0 {
		lives = parameter.StartingLives
	}
	e := NewBuilder(w).
		Position(x, y).
		Velocity(0, 0).
		Sprite(uint32(render.ColorPlayer), 16, 16).
		Collider(16, 16).
		With(&component.PlayerComponent{
			Lives:    lives,
			MaxJumps: parameter.MaxJumps,
			State:    component.StateIdle,
		}).
		Physics(parameter.Friction).
		Build()
	w.Player = e
	return e
}
