package engine

import (
	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/event"
)

// table holds every instance of one component kind: the data blocks keyed by
// owning entity, plus the membership list the query engine seeds from.
// Membership order is insertion order; removal swaps with the tail, so the
// list is unordered after the first destruction.
type table struct {
	data     map[core.Entity]component.Component
	entities []core.Entity
}

func newTable() *table {
	return &table{
		data:     make(map[core.Entity]component.Component),
		entities: make([]core.Entity, 0, 64),
	}
}

func (t *table) remove(e core.Entity) {
	if _, ok := t.data[e]; !ok {
		return
	}
	delete(t.data, e)
	for i, ent := range t.entities {
		if ent == e {
			t.entities[i] = t.entities[len(t.entities)-1]
			t.entities = t.entities[:len(t.entities)-1]
			break
		}
	}
}

// World owns all entities, their components, and the system pipeline.
// It is a single mutable structure driven by one logical thread of control:
// the caller of Update. It is always passed explicitly, never a global.
type World struct {
	nextEntityID core.Entity

	// entityKinds maps each live entity to the ordered list of kinds
	// attached to it. Used for has-checks and destruction cleanup only.
	entityKinds map[core.Entity][]component.Kind

	// tables maps each kind to its data blocks and membership list.
	tables map[component.Kind]*table

	// Entities marked dead this frame. Reaped at the start of the next
	// Update so query results stay valid through the current frame.
	dead    []core.Entity
	deadSet map[core.Entity]struct{}

	systems []System

	// Bus broadcasts game events to decoupled listeners (audio, logging).
	Bus *event.Bus

	// Game-level state shared by the systems.
	Score    int
	GameOver bool
	CameraX  float64
	CameraY  float64
	Player   core.Entity
}

// NewWorld creates an empty world. Entity IDs start at 1; 0 stays the
// invalid sentinel.
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		entityKinds:  make(map[core.Entity][]component.Kind),
		tables:       make(map[component.Kind]*table),
		dead:         make([]core.Entity, 0, 16),
		deadSet:      make(map[core.Entity]struct{}),
		systems:      make([]System, 0, 8),
		Bus:          event.NewBus(),
	}
}

// CreateEntity allocates a fresh entity ID and registers an empty kind list.
// IDs are monotonically increasing and never reused for the life of the
// world; a destroyed entity retires its ID permanently.
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entityKinds[id] = make([]component.Kind, 0, 8)
	return id
}

// Alive reports whether the entity exists and has not been reaped. An entity
// sitting in the dead queue is still alive until the next Update.
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.entityKinds[e]
	return ok
}

// AddComponent attaches c to the entity under c.Kind(). The store owns the
// component after the call; callers must not retain or share the pointer.
// Re-adding a kind the entity already has replaces the data block without
// duplicating membership entries. Adding to a nonexistent entity is a silent
// no-op; this permissiveness is deliberate and relied on by level loaders.
func (w *World) AddComponent(e core.Entity, c component.Component) {
	kinds, ok := w.entityKinds[e]
	if !ok || c == nil {
		return
	}
	k := c.Kind()

	tb := w.tables[k]
	if tb == nil {
		tb = newTable()
		w.tables[k] = tb
	}

	_, existed := tb.data[e]
	tb.data[e] = c
	if !existed {
		tb.entities = append(tb.entities, e)
		w.entityKinds[e] = append(kinds, k)
	}
}

// GetComponent returns the entity's data block for a kind, or nil if the
// entity lacks the kind or does not exist. The returned pointer is the owned
// instance; systems mutate it in place.
func (w *World) GetComponent(e core.Entity, k component.Kind) component.Component {
	tb := w.tables[k]
	if tb == nil {
		return nil
	}
	return tb.data[e]
}

// HasComponent reports whether the entity carries the given kind. Missing
// entities answer false rather than erroring.
func (w *World) HasComponent(e core.Entity, k component.Kind) bool {
	for _, have := range w.entityKinds[e] {
		if have == k {
			return true
		}
	}
	return false
}

// DestroyEntity marks an entity for removal at the next frame boundary.
// Components stay readable and queries keep returning the entity for the
// rest of the current frame; only Query skips dead-queued entities.
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	if _, queued := w.deadSet[e]; queued {
		return
	}
	w.dead = append(w.dead, e)
	w.deadSet[e] = struct{}{}
}

// destroyEntityImmediate frees every component the entity owns and removes
// it from all membership lists. Only the per-frame reap and Free call this;
// mid-frame immediate destruction would invalidate in-flight query results.
func (w *World) destroyEntityImmediate(e core.Entity) {
	kinds, ok := w.entityKinds[e]
	if !ok {
		return
	}
	for _, k := range kinds {
		if tb := w.tables[k]; tb != nil {
			tb.remove(e)
		}
	}
	delete(w.entityKinds, e)
}

// AddSystem appends a system to the pipeline. Systems run in registration
// order; the wiring order is load-bearing (input before physics before
// collision before render).
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update advances the world one frame: it first reaps every entity queued
// for destruction, then runs each system in registration order with the
// same dt (seconds). Systems communicate only through component data and
// the event bus.
func (w *World) Update(dt float64) {
	for _, e := range w.dead {
		w.destroyEntityImmediate(e)
	}
	w.dead = w.dead[:0]
	clear(w.deadSet)

	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Emit broadcasts ev on the world's event bus.
func (w *World) Emit(ev event.Event) {
	if w.Bus != nil {
		w.Bus.Emit(ev)
	}
}

// EntityCount returns the number of live entities, including ones queued
// for destruction but not yet reaped.
func (w *World) EntityCount() int {
	return len(w.entityKinds)
}

// Free releases every component instance, every index table, and the system
// list. The world must not be used afterwards.
func (w *World) Free() {
	w.tables = make(map[component.Kind]*table)
	w.entityKinds = make(map[core.Entity][]component.Kind)
	w.dead = nil
	w.deadSet = make(map[core.Entity]struct{})
	w.systems = nil
}
