// Package save captures and restores a flat snapshot of game progress:
// score, lives, camera, player position, and a bounded list of per-entity
// collectible/enemy states keyed by EntityID. The format is a single TOML
// document with no versioning.
package save

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
)

// maxEntities bounds the per-entity record list.
const maxEntities = 100

// EntityRecord is one collectible or enemy state row.
type EntityRecord struct {
	ID        uint64  `toml:"id"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Collected bool    `toml:"collected"`
	Alive     bool    `toml:"alive"`
}

// Snapshot is the persisted game state.
type Snapshot struct {
	Score    int     `toml:"score"`
	Lives    int     `toml:"lives"`
	GameOver bool    `toml:"game_over"`
	CameraX  float64 `toml:"camera_x"`
	CameraY  float64 `toml:"camera_y"`
	PlayerX  float64 `toml:"player_x"`
	PlayerY  float64 `toml:"player_y"`

	Entities []EntityRecord `toml:"entities"`
}

// Capture builds a snapshot from the world's current state.
func Capture(w *engine.World) *Snapshot {
	snap := &Snapshot{
		Score:    w.Score,
		GameOver: w.GameOver,
		CameraX:  w.CameraX,
		CameraY:  w.CameraY,
	}

	if w.Player.Valid() {
		if player, ok := engine.Get[*component.PlayerComponent](w, w.Player); ok {
			snap.Lives = player.Lives
		}
		if pos, ok := engine.Get[*component.PositionComponent](w, w.Player); ok {
			snap.PlayerX = pos.X
			snap.PlayerY = pos.Y
		}
	}

	for _, e := range w.Query(component.KindCollectible, component.KindPosition) {
		if len(snap.Entities) >= maxEntities {
			break
		}
		coll, _ := engine.Get[*component.CollectibleComponent](w, e)
		pos, _ := engine.Get[*component.PositionComponent](w, e)
		if coll == nil || pos == nil {
			continue
		}
		snap.Entities = append(snap.Entities, EntityRecord{
			ID:        uint64(e),
			X:         pos.X,
			Y:         pos.Y,
			Collected: coll.Collected,
			Alive:     true,
		})
	}

	for _, e := range w.Query(component.KindEnemy, component.KindPosition) {
		if len(snap.Entities) >= maxEntities {
			break
		}
		pos, _ := engine.Get[*component.PositionComponent](w, e)
		if pos == nil {
			continue
		}
		snap.Entities = append(snap.Entities, EntityRecord{
			ID:    uint64(e),
			X:     pos.X,
			Y:     pos.Y,
			Alive: true,
		})
	}

	return snap
}

// Restore writes a snapshot back into the world. Records whose EntityID no
// longer exists are skipped silently; the snapshot may be from before
// entities were destroyed.
func Restore(w *engine.World, snap *Snapshot) {
	if snap == nil {
		return
	}

	w.Score = snap.Score
	w.GameOver = snap.GameOver
	w.CameraX = snap.CameraX
	w.CameraY = snap.CameraY

	if w.Player.Valid() {
		if player, ok := engine.Get[*component.PlayerComponent](w, w.Player); ok {
			player.Lives = snap.Lives
		}
		if pos, ok := engine.Get[*component.PositionComponent](w, w.Player); ok {
			pos.X = snap.PlayerX
			pos.Y = snap.PlayerY
		}
		if vel, ok := engine.Get[*component.VelocityComponent](w, w.Player); ok {
			vel.X = 0
			vel.Y = 0
		}
	}

	for _, rec := range snap.Entities {
		e := core.Entity(rec.ID)
		if coll, ok := engine.Get[*component.CollectibleComponent](w, e); ok {
			coll.Collected = rec.Collected
		}
		if w.HasComponent(e, component.KindEnemy) && !rec.Alive {
			w.DestroyEntity(e)
		}
		if pos, ok := engine.Get[*component.PositionComponent](w, e); ok {
			pos.X = rec.X
			pos.Y = rec.Y
		}
	}
}

// WriteFile captures the world and writes the snapshot as TOML.
func WriteFile(w *engine.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Capture(w)); err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	return nil
}

// ReadFile loads a TOML snapshot and restores it into the world.
func ReadFile(w *engine.World, path string) error {
	var snap Snapshot
	if _, err := toml.DecodeFile(path, &snap); err != nil {
		return fmt.Errorf("read save %s: %w", path, err)
	}
	Restore(w, &snap)
	return nil
}
