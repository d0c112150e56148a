// Package input defines the logical button contract between the terminal
// and the input system. The input system only ever asks "is this logical
// button currently held"; edge detection happens in the system itself.
package input

// Button is a logical game control, decoupled from physical keys.
type Button uint8

const (
	Left Button = iota
	Right
	Jump
	Quit
	Save
	Load

	buttonCount
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Jump:
		return "jump"
	case Quit:
		return "quit"
	case Save:
		return "save"
	case Load:
		return "load"
	default:
		return "unknown"
	}
}

// Source answers per-frame button state queries. Implementations must be
// safe to call repeatedly within one frame and return a stable answer.
type Source interface {
	Held(b Button) bool
}

// Stub is a settable Source for tests and headless runs.
type Stub struct {
	Buttons [buttonCount]bool
}

func (s *Stub) Held(b Button) bool {
	if int(b) >= len(s.Buttons) {
		return false
	}
	return s.Buttons[b]
}

// Set changes one button's held state.
func (s *Stub) Set(b Button, held bool) {
	if int(b) < len(s.Buttons) {
		s.Buttons[b] = held
	}
}
