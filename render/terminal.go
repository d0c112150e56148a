package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-runner/parameter"
)

// Pixel-to-cell scaling. Terminal cells are roughly twice as tall as wide,
// so the vertical divisor is larger to keep the world's aspect ratio
// recognizable: 320x240 virtual pixels land on an 80x24 grid.
const (
	cellPixelsX = 4
	cellPixelsY = 10
)

// Terminal renders the virtual pixel surface onto a tcell screen. Each cell
// covers a cellPixelsX x cellPixelsY pixel block; a rect paints every cell
// whose block it touches, sampling the rect's color into the background.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialized tcell screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Size() (int, int) {
	return int(parameter.DisplayWidth), int(parameter.DisplayHeight)
}

func (t *Terminal) Clear(bg Color) {
	w, h := t.screen.Size()
	style := tcell.StyleDefault.Background(toTcell(bg))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *Terminal) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := x / cellPixelsX
	y0 := y / cellPixelsY
	x1 := (x + w - 1) / cellPixelsX
	y1 := (y + h - 1) / cellPixelsY

	sw, sh := t.screen.Size()
	style := tcell.StyleDefault.Background(toTcell(c))
	for cy := y0; cy <= y1; cy++ {
		if cy < 0 || cy >= sh {
			continue
		}
		for cx := x0; cx <= x1; cx++ {
			if cx < 0 || cx >= sw {
				continue
			}
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (t *Terminal) DrawString(x, y int, text string, fg, bg Color) {
	cx := x / cellPixelsX
	cy := y / cellPixelsY
	sw, sh := t.screen.Size()
	if cy < 0 || cy >= sh {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	for _, r := range text {
		if cx >= sw {
			break
		}
		if cx >= 0 {
			t.screen.SetContent(cx, cy, r, nil, style)
		}
		cx++
	}
}

func (t *Terminal) Flush() {
	t.screen.Show()
}

func toTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(c>>16&0xFF),
		int32(c>>8&0xFF),
		int32(c&0xFF),
	)
}
