package level

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/parameter"
)

// LoadLua populates w from a Lua level script. The script sets four global
// tables:
//
//	platforms = { {x=0, y=220, w=32, h=20, one_way=false}, ... }
//	enemies   = { {x=300, y=200, patrol_start=250, patrol_end=400, speed=40}, ... }
//	coins     = { {x=200, y=90, points=50}, ... }
//	spawn     = { x=50, y=180, lives=2 }
//
// Missing tables are skipped; a missing spawn table still creates the player
// at the default spawn point. The VM is closed before returning.
func LoadLua(w *engine.World, path string, log *zap.Logger) error {
	vm := lua.NewState()
	defer vm.Close()

	if err := vm.DoFile(path); err != nil {
		return fmt.Errorf("load level %s: %w", path, err)
	}

	if platforms, ok := vm.GetGlobal("platforms").(*lua.LTable); ok {
		platforms.ForEach(func(_, v lua.LValue) {
			t, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			CreatePlatform(w, num(t, "x"), num(t, "y"), PlatformParams{
				Width:  numOr(t, "w", parameter.TileSize),
				Height: numOr(t, "h", 20),
				Solid:  true,
				OneWay: boolField(t, "one_way"),
			})
		})
	}

	if enemies, ok := vm.GetGlobal("enemies").(*lua.LTable); ok {
		enemies.ForEach(func(_, v lua.LValue) {
			t, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			CreateEnemy(w, num(t, "x"), num(t, "y"), EnemyParams{
				Speed:       numOr(t, "speed", 40),
				PatrolStart: num(t, "patrol_start"),
				PatrolEnd:   num(t, "patrol_end"),
				Points:      int(numOr(t, "points", parameter.EnemyPoints)),
			})
		})
	}

	if coins, ok := vm.GetGlobal("coins").(*lua.LTable); ok {
		coins.ForEach(func(_, v lua.LValue) {
			t, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			CreateCollectible(w, num(t, "x"), num(t, "y"), CollectibleParams{
				Points: int(numOr(t, "points", parameter.CoinPoints)),
			})
		})
	}

	spawnX, spawnY := parameter.SpawnX, parameter.SpawnY
	lives := parameter.StartingLives
	if spawn, ok := vm.GetGlobal("spawn").(*lua.LTable); ok {
		spawnX = numOr(spawn, "x", spawnX)
		spawnY = numOr(spawn, "y", spawnY)
		lives = int(numOr(spawn, "lives", float64(lives)))
	}
	CreatePlayer(w, spawnX, spawnY, lives)

	if log != nil {
		log.Info("level loaded",
			zap.String("file", path),
			zap.Int("entities", w.EntityCount()))
	}
	return nil
}

func num(t *lua.LTable, key string) float64 {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func numOr(t *lua.LTable, key string, def float64) float64 {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

func boolField(t *lua.LTable, key string) bool {
	if b, ok := t.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
