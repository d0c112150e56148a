package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals report key repeats, not key-up, so a held key is one whose
// repeat arrived recently. The window must exceed the slowest common
// repeat interval or held movement stutters.
//
// It does NOT cover the initial repeat delay (often 250-600ms), so a
// physically held key reads as released between the first press and the
// first repeat. For jump that gap can surface as an edge the player never
// re-pressed, spending a double jump. Widening the window to bridge the
// delay would make genuine releases land just as late, defeating the
// early-release height cut, so the short window is the lesser evil.
const holdWindow = 150 * time.Millisecond

// Keyboard adapts tcell key events into logical button state. HandleEvent
// is fed from the terminal event loop; Held and TakePress are called by the
// frame loop. Single goroutine ownership: the frame loop drains the event
// channel itself, so no locking.
type Keyboard struct {
	lastSeen [buttonCount]time.Time
	pressed  [buttonCount]bool
	now      func() time.Time
}

// NewKeyboard creates a keyboard source using the wall clock.
func NewKeyboard() *Keyboard {
	return &Keyboard{now: time.Now}
}

// HandleEvent records a tcell event against the key bindings:
// left/right arrows or h/l move, space or k jumps, F5 saves, F9 loads,
// Escape or Ctrl-C quits.
func (kb *Keyboard) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyLeft:
		kb.mark(Left)
	case tcell.KeyRight:
		kb.mark(Right)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		kb.mark(Quit)
	case tcell.KeyF5:
		kb.mark(Save)
	case tcell.KeyF9:
		kb.mark(Load)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'h':
			kb.mark(Left)
		case 'l':
			kb.mark(Right)
		case ' ', 'k':
			kb.mark(Jump)
		case 'q':
			kb.mark(Quit)
		}
	}
}

func (kb *Keyboard) mark(b Button) {
	kb.lastSeen[b] = kb.now()
	kb.pressed[b] = true
}

// Held reports whether the button's most recent key event falls within the
// hold window.
func (kb *Keyboard) Held(b Button) bool {
	if int(b) >= len(kb.lastSeen) {
		return false
	}
	last := kb.lastSeen[b]
	if last.IsZero() {
		return false
	}
	return kb.now().Sub(last) < holdWindow
}

// TakePress consumes a one-shot press since the previous call. Used for
// quit/save/load, where key repeat must not retrigger the action.
func (kb *Keyboard) TakePress(b Button) bool {
	if int(b) >= len(kb.pressed) {
		return false
	}
	p := kb.pressed[b]
	kb.pressed[b] = false
	return p
}
