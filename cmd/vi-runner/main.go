package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-runner/audio"
	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/level"
	"github.com/lixenwraith/vi-runner/render"
	"github.com/lixenwraith/vi-runner/save"
	"github.com/lixenwraith/vi-runner/systems"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	levelPath := flag.String("level", "", "path to Lua level script (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *levelPath != "" {
		cfg.Game.Level = *levelPath
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a zap logger writing to a file. The terminal belongs to
// the renderer, so nothing may log to stdout or stderr while the game runs.
func newLogger(cfg config.Logging) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}
	return zc.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// A panic with the terminal in raw mode leaves the shell unusable;
	// restore it before letting the stack trace hit stderr.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(2)
		}
		screen.Fini()
	}()

	w := engine.NewWorld()

	if cfg.Game.Level != "" {
		if err := level.LoadLua(w, cfg.Game.Level, logger); err != nil {
			logger.Warn("level script failed, using built-in layout",
				zap.String("path", cfg.Game.Level), zap.Error(err))
			level.BuildDefault(w, cfg.Game.Lives)
		}
	} else {
		level.BuildDefault(w, cfg.Game.Lives)
	}

	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			sounds.Attach(w.Bus)
			defer sounds.Cleanup()
		}
	}

	keyboard := input.NewKeyboard()

	w.AddSystem(systems.NewInputSystem(keyboard))
	w.AddSystem(systems.NewEnemyAISystem())
	w.AddSystem(systems.NewPhysicsSystem())
	w.AddSystem(systems.NewCollisionSystem())
	w.AddSystem(systems.NewRenderSystem(render.NewTerminal(screen)))

	logger.Info("game started",
		zap.Int("entities", w.EntityCount()),
		zap.Int("tick_ms", cfg.Game.TickMs))

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	tick := time.Duration(cfg.Game.TickMs) * time.Millisecond
	dt := tick.Seconds()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			keyboard.HandleEvent(ev)
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-ticker.C:
			if keyboard.TakePress(input.Quit) {
				logger.Info("quit", zap.Int("score", w.Score))
				w.Free()
				return nil
			}
			if keyboard.TakePress(input.Save) {
				if err := save.WriteFile(w, cfg.Game.SavePath); err != nil {
					logger.Error("save failed", zap.Error(err))
				} else {
					logger.Info("saved", zap.String("path", cfg.Game.SavePath))
				}
			}
			if keyboard.TakePress(input.Load) {
				if err := save.ReadFile(w, cfg.Game.SavePath); err != nil {
					logger.Error("load failed", zap.Error(err))
				} else {
					logger.Info("loaded", zap.String("path", cfg.Game.SavePath))
				}
			}

			w.Update(dt)
		}
	}
}
