package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-runner/parameter"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return NewTerminal(sim), sim
}

func cellBackground(t *testing.T, sim tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalSize(t *testing.T) {
	term, _ := newSimTerminal(t)
	w, h := term.Size()
	if w != int(parameter.DisplayWidth) || h != int(parameter.DisplayHeight) {
		t.Errorf("Expected virtual size %vx%v, got %dx%d",
			parameter.DisplayWidth, parameter.DisplayHeight, w, h)
	}
}

// A pixel rect paints every cell its block touches
func TestFillRectScaling(t *testing.T) {
	term, sim := newSimTerminal(t)

	// 16x16 pixels at origin: cells x 0..3, y 0..1
	term.FillRect(0, 0, 16, 16, ColorPlayer)
	term.Flush()

	want := toTcell(ColorPlayer)
	if got := cellBackground(t, sim, 0, 0); got != want {
		t.Errorf("Expected cell (0,0) painted, got %v", got)
	}
	if got := cellBackground(t, sim, 3, 1); got != want {
		t.Errorf("Expected cell (3,1) painted, got %v", got)
	}
	if got := cellBackground(t, sim, 4, 0); got == want {
		t.Errorf("Expected cell (4,0) untouched")
	}
	if got := cellBackground(t, sim, 0, 2); got == want {
		t.Errorf("Expected cell (0,2) untouched")
	}
}

func TestFillRectClipsToScreen(t *testing.T) {
	term, _ := newSimTerminal(t)

	// Partially and fully off-screen rects must not panic
	term.FillRect(-20, -20, 40, 40, ColorEnemy)
	term.FillRect(1000, 1000, 16, 16, ColorEnemy)
	term.FillRect(0, 0, 0, 16, ColorEnemy)
	term.Flush()
}

func TestDrawString(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.DrawString(0, 0, "Hi", ColorWhite, ColorBlack)
	term.Flush()

	r1, _, _, _ := sim.GetContent(0, 0)
	r2, _, _, _ := sim.GetContent(1, 0)
	if r1 != 'H' || r2 != 'i' {
		t.Errorf("Expected \"Hi\" at origin, got %q %q", r1, r2)
	}
}

func TestClear(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.Clear(ColorSky)
	term.Flush()

	want := toTcell(ColorSky)
	if got := cellBackground(t, sim, 0, 0); got != want {
		t.Errorf("Expected sky background top-left, got %v", got)
	}
	if got := cellBackground(t, sim, 79, 23); got != want {
		t.Errorf("Expected sky background bottom-right, got %v", got)
	}
}

func TestColorConversion(t *testing.T) {
	c := toTcell(Color(0x123456))
	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Expected RGB 12/34/56, got %x/%x/%x", r, g, b)
	}
}
