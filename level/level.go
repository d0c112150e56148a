package level

import (
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/parameter"
)

// floatingPlatforms is the built-in overworld layout.
var floatingPlatforms = []struct {
	x, y, w float64
}{
	{200, 180, 64}, {320, 150, 64}, {480, 170, 96},
	{640, 140, 64}, {800, 160, 80}, {960, 130, 96},
	{1120, 170, 64}, {1280, 140, 80}, {1440, 160, 64},
	{1600, 130, 96}, {1760, 150, 64}, {1920, 140, 80},
	{2080, 170, 64}, {2240, 140, 96}, {2400, 160, 64},
	{2560, 130, 80}, {2720, 150, 64}, {2880, 140, 96},
}

var patrolEnemies = []struct {
	x, y, start, end, speed float64
}{
	{300, 200, 250, 400, 40},
	{550, 150, 500, 650, 45},
	{850, 140, 800, 950, 35},
	{1200, 160, 1150, 1350, 40},
	{1500, 130, 1450, 1650, 50},
	{1850, 140, 1800, 2000, 45},
	{2150, 160, 2100, 2300, 40},
	{2500, 130, 2450, 2650, 50},
	{2850, 140, 2800, 3000, 45},
}

// BuildDefault populates w with the built-in level: a ground strip across
// the whole world, floating platforms, patrol enemies, scattered coins, and
// the player at the spawn point.
func BuildDefault(w *engine.World, lives int) {
	groundCount := int(parameter.WorldWidth / parameter.TileSize)
	for i := 0; i < groundCount; i++ {
		CreatePlatform(w, float64(i)*parameter.TileSize, parameter.GroundHeight, PlatformParams{
			Width:  parameter.TileSize,
			Height: 20,
			Solid:  true,
		})
	}

	for _, p := range floatingPlatforms {
		CreatePlatform(w, p.x, p.y, PlatformParams{
			Width:  p.w,
			Height: 12,
			Solid:  true,
		})
	}

	for _, e := range patrolEnemies {
		CreateEnemy(w, e.x, e.y, EnemyParams{
			Speed:       e.speed,
			PatrolStart: e.start,
			PatrolEnd:   e.end,
		})
	}

	for i := 0; i < 30; i++ {
		coinX := 200.0 + float64(i)*100.0 + float64(i%3)*20.0
		coinY := 90.0 + float64(i%4)*25.0
		CreateCollectible(w, coinX, coinY, CollectibleParams{})
	}

	CreatePlayer(w, parameter.SpawnX, parameter.SpawnY, lives)
}
