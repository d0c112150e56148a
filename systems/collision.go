package systems

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
)

// CollisionSystem resolves player-vs-platform penetration and handles
// player-vs-enemy and player-vs-collectible interactions. It must run after
// PhysicsSystem (positions are this frame's) and recomputes OnGround from
// scratch each frame.
type CollisionSystem struct{}

// NewCollisionSystem creates the collision stage.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	players := w.Query(component.KindPlayer, component.KindPosition, component.KindCollider, component.KindVelocity)
	platforms := w.Query(component.KindPlatform, component.KindPosition, component.KindCollider)
	enemies := w.Query(component.KindEnemy, component.KindPosition, component.KindCollider)
	collectibles := w.Query(component.KindCollectible, component.KindPosition, component.KindCollider)

	for _, pe := range players {
		pos, ok := engine.Get[*component.PositionComponent](w, pe)
		if !ok {
			continue
		}
		col, ok := engine.Get[*component.ColliderComponent](w, pe)
		if !ok {
			continue
		}
		vel, ok := engine.Get[*component.VelocityComponent](w, pe)
		if !ok {
			continue
		}
		player, ok := engine.Get[*component.PlayerComponent](w, pe)
		if !ok {
			continue
		}

		// Grounded is proven fresh each frame by a landing below, never
		// carried over from the previous frame.
		player.OnGround = false

		s.resolvePlatforms(w, platforms, pos, col, vel, player)
		s.resolveEnemies(w, enemies, pe, pos, col, vel, player)
		s.resolveCollectibles(w, collectibles, pos, col)
	}
}

func colliderBox(pos *component.PositionComponent, col *component.ColliderComponent) physics.AABB {
	return physics.AABB{
		X: pos.X + col.OffsetX,
		Y: pos.Y + col.OffsetY,
		W: col.Width,
		H: col.Height,
	}
}

func (s *CollisionSystem) resolvePlatforms(
	w *engine.World,
	platforms []core.Entity,
	pos *component.PositionComponent,
	col *component.ColliderComponent,
	vel *component.VelocityComponent,
	player *component.PlayerComponent,
) {
	for _, pl := range platforms {
		platPos, ok := engine.Get[*component.PositionComponent](w, pl)
		if !ok {
			continue
		}
		platCol, ok := engine.Get[*component.ColliderComponent](w, pl)
		if !ok {
			continue
		}
		platform, ok := engine.Get[*component.PlatformComponent](w, pl)
		if !ok {
			continue
		}

		pBox := colliderBox(pos, col)
		platBox := colliderBox(platPos, platCol)
		if !physics.Overlaps(pBox, platBox) {
			continue
		}

		// One-way platforms suppress every branch except landing.
		switch physics.Classify(pBox, platBox) {
		case physics.SideBottom:
			if !platform.OneWay && vel.Y < 0 {
				pos.Y = platBox.Y + platBox.H - col.OffsetY
				vel.Y = 0
			}
		case physics.SideLeft:
			if !platform.OneWay {
				pos.X = platBox.X - col.Width - col.OffsetX
				vel.X = 0
			}
		case physics.SideRight:
			if !platform.OneWay {
				pos.X = platBox.X + platBox.W - col.OffsetX
				vel.X = 0
			}
		case physics.SideTop:
			if vel.Y > 0 {
				pos.Y = platBox.Y - col.Height - col.OffsetY
				vel.Y = 0
				player.OnGround = true
				player.JumpCount = 0
			}
		}
	}
}

func (s *CollisionSystem) resolveEnemies(
	w *engine.World,
	enemies []core.Entity,
	playerEnt core.Entity,
	pos *component.PositionComponent,
	col *component.ColliderComponent,
	vel *component.VelocityComponent,
	player *component.PlayerComponent,
) {
	for _, en := range enemies {
		ePos, ok := engine.Get[*component.PositionComponent](w, en)
		if !ok {
			continue
		}
		eCol, ok := engine.Get[*component.ColliderComponent](w, en)
		if !ok {
			continue
		}

		pBox := colliderBox(pos, col)
		eBox := colliderBox(ePos, eCol)
		if !physics.Overlaps(pBox, eBox) {
			continue
		}

		// Stomp: falling fast enough with the player's feet above the
		// enemy's midline defeats it. Anything else costs a life.
		stomp := vel.Y > parameter.StompThreshold &&
			pBox.Y+pBox.H-parameter.StompEpsilon < eBox.Y+eBox.H/2

		if stomp {
			points := parameter.EnemyPoints
			if enemy, ok := engine.Get[*component.EnemyComponent](w, en); ok && enemy.Points != 0 {
				points = enemy.Points
			}
			w.DestroyEntity(en)
			vel.Y = parameter.JumpSpeed * parameter.StompBounceFactor
			w.Score += points
			w.Emit(event.Event{Type: event.EnemyDefeated, Entity: en, Value: points})
			continue
		}

		player.Lives--
		w.Emit(event.Event{Type: event.PlayerDamaged, Entity: playerEnt, Value: 1})
		if player.Lives <= 0 {
			w.GameOver = true
			w.Emit(event.Event{Type: event.GameOver, Entity: playerEnt})
			continue
		}

		// Knock the player away from the enemy, horizontally and upward.
		dir := 1.0
		if pos.X < ePos.X {
			dir = -1.0
		}
		vel.X = dir * parameter.KnockbackSpeedX
		vel.Y = parameter.KnockbackSpeedY
	}
}

func (s *CollisionSystem) resolveCollectibles(
	w *engine.World,
	collectibles []core.Entity,
	pos *component.PositionComponent,
	col *component.ColliderComponent,
) {
	for _, ce := range collectibles {
		coll, ok := engine.Get[*component.CollectibleComponent](w, ce)
		if !ok || coll.Collected {
			continue
		}
		cPos, ok := engine.Get[*component.PositionComponent](w, ce)
		if !ok {
			continue
		}
		cCol, ok := engine.Get[*component.ColliderComponent](w, ce)
		if !ok {
			continue
		}

		if !physics.Overlaps(colliderBox(pos, col), colliderBox(cPos, cCol)) {
			continue
		}

		coll.Collected = true
		w.Score += coll.Points
		w.DestroyEntity(ce)
		w.Emit(event.Event{Type: event.CoinCollected, Entity: ce, Value: coll.Points})
	}
}
