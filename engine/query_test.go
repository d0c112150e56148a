package engine

import (
	"testing"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
)

func queryContains(result []core.Entity, e core.Entity) bool {
	for _, r := range result {
		if r == e {
			return true
		}
	}
	return false
}

func TestQuerySingleKind(t *testing.T) {
	world := NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	e3 := world.CreateEntity()
	world.AddComponent(e1, &component.PositionComponent{})
	world.AddComponent(e2, &component.PositionComponent{})
	world.AddComponent(e3, &component.VelocityComponent{})

	result := world.Query(component.KindPosition)
	if len(result) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(result))
	}
	if !queryContains(result, e1) || !queryContains(result, e2) {
		t.Errorf("Expected e1 and e2 in result, got %v", result)
	}
	if queryContains(result, e3) {
		t.Errorf("Expected e3 excluded, got %v", result)
	}
}

// Multi-kind queries intersect: only entities with every kind qualify
func TestQueryIntersection(t *testing.T) {
	world := NewWorld()

	both := world.CreateEntity()
	world.AddComponent(both, &component.PositionComponent{})
	world.AddComponent(both, &component.VelocityComponent{})

	posOnly := world.CreateEntity()
	world.AddComponent(posOnly, &component.PositionComponent{})

	velOnly := world.CreateEntity()
	world.AddComponent(velOnly, &component.VelocityComponent{})

	result := world.Query(component.KindPosition, component.KindVelocity)
	if len(result) != 1 || result[0] != both {
		t.Errorf("Expected only the entity with both kinds, got %v", result)
	}

	// Same set regardless of kind order
	flipped := world.Query(component.KindVelocity, component.KindPosition)
	if len(flipped) != 1 || flipped[0] != both {
		t.Errorf("Expected same set with kinds flipped, got %v", flipped)
	}
}

func TestQueryUnknownKind(t *testing.T) {
	world := NewWorld()
	world.AddComponent(world.CreateEntity(), &component.PositionComponent{})

	if got := world.Query(component.KindEnemy); len(got) != 0 {
		t.Errorf("Expected empty result for untouched kind, got %v", got)
	}
	if got := world.Query(); got != nil {
		t.Errorf("Expected nil for empty kind list, got %v", got)
	}
}

// Dead-queued entities disappear from queries immediately, before the reap
func TestQuerySkipsDeadQueued(t *testing.T) {
	world := NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	world.AddComponent(e1, &component.PositionComponent{})
	world.AddComponent(e2, &component.PositionComponent{})

	world.DestroyEntity(e1)

	result := world.Query(component.KindPosition)
	if len(result) != 1 || result[0] != e2 {
		t.Errorf("Expected dead-queued entity skipped, got %v", result)
	}
}

// Queries are computed fresh: changes between calls are always visible
func TestQueryNoCaching(t *testing.T) {
	world := NewWorld()

	e1 := world.CreateEntity()
	world.AddComponent(e1, &component.PositionComponent{})

	if len(world.Query(component.KindPosition)) != 1 {
		t.Fatalf("Expected 1 entity")
	}

	e2 := world.CreateEntity()
	world.AddComponent(e2, &component.PositionComponent{})

	if len(world.Query(component.KindPosition)) != 2 {
		t.Errorf("Expected new entity visible on next query")
	}
}

func TestGetTypedAccessor(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.AddComponent(e, &component.SpriteComponent{Width: 16, Height: 16})

	sprite, ok := Get[*component.SpriteComponent](world, e)
	if !ok || sprite.Width != 16 {
		t.Errorf("Expected sprite component, got %+v ok=%v", sprite, ok)
	}

	if _, ok := Get[*component.EnemyComponent](world, e); ok {
		t.Errorf("Expected ok=false for absent kind")
	}
}
