package engine

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
)

// Query returns the entities possessing every listed kind, excluding
// entities queued for destruction this frame.
//
// The candidate set is seeded from the membership list of the FIRST kind
// only — callers put the rarest kind first for performance, but any order is
// correct. Results appear in seed-list order, which is not otherwise stable.
// An unknown or empty first kind yields an empty result, never an error.
//
// Results are computed fresh on every call; nothing is cached across frames
// because entities and components mutate each frame.
func (w *World) Query(kinds ...component.Kind) []core.Entity {
	if len(kinds) == 0 {
		return nil
	}

	seed := w.tables[kinds[0]]
	if seed == nil {
		return nil
	}

	result := make([]core.Entity, 0, len(seed.entities))
	for _, e := range seed.entities {
		if _, queued := w.deadSet[e]; queued {
			continue
		}
		hasAll := true
		for _, k := range kinds[1:] {
			if !w.HasComponent(e, k) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, e)
		}
	}
	return result
}

// Get retrieves the entity's component of type T, deriving the kind from the
// type itself. The bool is false when the entity lacks the kind.
//
//	pos, ok := engine.Get[*component.PositionComponent](w, e)
func Get[T component.Component](w *World, e core.Entity) (T, bool) {
	var zero T
	c := w.GetComponent(e, zero.Kind())
	if c == nil {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
