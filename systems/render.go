package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-runner/component"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/render"
)

// RenderSystem draws the world: camera follow, background, platforms,
// collectibles, enemies, player, then the HUD. It runs last and reads the
// world without mutating anything except the camera.
type RenderSystem struct {
	surface render.Surface
}

// NewRenderSystem creates the draw stage targeting surface.
func NewRenderSystem(surface render.Surface) *RenderSystem {
	return &RenderSystem{surface: surface}
}

func (s *RenderSystem) Update(w *engine.World, dt float64) {
	displayW, displayH := s.surface.Size()

	s.followPlayer(w, float64(displayW), dt)

	s.surface.Clear(render.ColorSky)

	// Back-to-front: platforms, pickups, enemies, player.
	s.drawKind(w, component.KindPlatform, true)
	s.drawKind(w, component.KindCollectible, true)
	s.drawKind(w, component.KindEnemy, true)
	s.drawKind(w, component.KindPlayer, false)

	s.drawHUD(w, displayW, displayH)

	s.surface.Flush()
}

// followPlayer eases the camera toward centering the player, clamped to the
// world extents.
func (s *RenderSystem) followPlayer(w *engine.World, displayW, dt float64) {
	if !w.Player.Valid() {
		return
	}
	pos, ok := engine.Get[*component.PositionComponent](w, w.Player)
	if !ok {
		return
	}

	half := displayW / 2
	width := 16.0
	if col, ok := engine.Get[*component.ColliderComponent](w, w.Player); ok {
		width = col.Width
	}

	target := pos.X - half + width/2
	if target < 0 {
		target = 0
	}
	if target > parameter.WorldWidth-displayW {
		target = parameter.WorldWidth - displayW
	}
	w.CameraX += (target - w.CameraX) * parameter.CameraLerp * dt
}

// drawKind renders every entity of one kind that has Position+Sprite.
// cull skips entities whose sprite lies fully off-screen.
func (s *RenderSystem) drawKind(w *engine.World, k component.Kind, cull bool) {
	displayW, _ := s.surface.Size()
	for _, e := range w.Query(k, component.KindPosition, component.KindSprite) {
		if k == component.KindCollectible {
			if coll, ok := engine.Get[*component.CollectibleComponent](w, e); ok && coll.Collected {
				continue
			}
		}
		s.drawSprite(w, e, displayW, cull)
	}
}

func (s *RenderSystem) drawSprite(w *engine.World, e core.Entity, displayW int, cull bool) {
	pos, ok := engine.Get[*component.PositionComponent](w, e)
	if !ok {
		return
	}
	sprite, ok := engine.Get[*component.SpriteComponent](w, e)
	if !ok {
		return
	}

	screenX := int(pos.X - w.CameraX)
	screenY := int(pos.Y - w.CameraY)
	if cull && (screenX+sprite.Width < 0 || screenX >= displayW) {
		return
	}
	s.surface.FillRect(screenX, screenY, sprite.Width, sprite.Height, render.Color(sprite.Color))
}

func (s *RenderSystem) drawHUD(w *engine.World, displayW, displayH int) {
	s.surface.DrawString(5, 5, fmt.Sprintf("Score:%d", w.Score), render.ColorWhite, render.ColorBlack)

	if w.Player.Valid() {
		if player, ok := engine.Get[*component.PlayerComponent](w, w.Player); ok {
			s.surface.DrawString(5, 15, fmt.Sprintf("Lives:%d", player.Lives), render.ColorWhite, render.ColorBlack)
		}
	}

	if w.GameOver {
		s.surface.DrawString(displayW/2-30, displayH/2, "GAME OVER", render.ColorRed, render.ColorBlack)
		s.surface.DrawString(displayW/2-35, displayH/2+15, "q:Quit F9:Load", render.ColorYellow, render.ColorBlack)
	}
}
