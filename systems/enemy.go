package systems

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/engine"
)

// EnemyAISystem walks each enemy back and forth across its patrol range,
// flipping direction and clamping position at the boundaries.
type EnemyAISystem struct{}

// NewEnemyAISystem creates the enemy patrol stage.
func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{}
}

func (s *EnemyAISystem) Update(w *engine.World, dt float64) {
	entities := w.Query(component.KindEnemy, component.KindPosition, component.KindVelocity, component.KindCollider)
	for _, e := range entities {
		enemy, ok := engine.Get[*component.EnemyComponent](w, e)
		if !ok {
			continue
		}
		pos, ok := engine.Get[*component.PositionComponent](w, e)
		if !ok {
			continue
		}
		vel, ok := engine.Get[*component.VelocityComponent](w, e)
		if !ok {
			continue
		}

		// Flip before setting velocity so the frame that clamps already
		// moves back into the patrol range.
		if pos.X <= enemy.PatrolStart && enemy.Direction < 0 {
			pos.X = enemy.PatrolStart
			enemy.Direction = 1
		} else if pos.X >= enemy.PatrolEnd && enemy.Direction > 0 {
			pos.X = enemy.PatrolEnd
			enemy.Direction = -1
		}

		vel.X = enemy.MoveSpeed * enemy.Direction
	}
}
