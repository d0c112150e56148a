package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestKeyboard() (*Keyboard, *time.Time) {
	now := time.Unix(1000, 0)
	kb := NewKeyboard()
	kb.now = func() time.Time { return now }
	return kb, &now
}

func TestHeldWithinWindow(t *testing.T) {
	kb, now := newTestKeyboard()

	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if !kb.Held(Right) {
		t.Errorf("Expected right held immediately after event")
	}

	*now = now.Add(holdWindow / 2)
	if !kb.Held(Right) {
		t.Errorf("Expected right held within the window")
	}

	*now = now.Add(holdWindow)
	if kb.Held(Right) {
		t.Errorf("Expected right released after the window expires")
	}

	// A repeat event re-arms the window
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if !kb.Held(Right) {
		t.Errorf("Expected right held again after repeat event")
	}
}

func TestKeyBindings(t *testing.T) {
	cases := []struct {
		name   string
		ev     *tcell.EventKey
		button Button
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Left},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Right},
		{"h moves left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), Left},
		{"l moves right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), Right},
		{"space jumps", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Jump},
		{"k jumps", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Jump},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Quit},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Quit},
		{"F5 saves", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), Save},
		{"F9 loads", tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone), Load},
	}

	for _, tc := range cases {
		kb, _ := newTestKeyboard()
		kb.HandleEvent(tc.ev)
		if !kb.Held(tc.button) {
			t.Errorf("%s: expected %v held", tc.name, tc.button)
		}
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))

	for b := Button(0); b < buttonCount; b++ {
		if kb.Held(b) {
			t.Errorf("Expected no button held after unbound key, %v is", b)
		}
	}
}

// TakePress consumes: one event, one press, regardless of polls
func TestTakePress(t *testing.T) {
	kb, _ := newTestKeyboard()

	if kb.TakePress(Save) {
		t.Errorf("Expected no press before any event")
	}

	kb.HandleEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))

	if !kb.TakePress(Save) {
		t.Errorf("Expected press after event")
	}
	if kb.TakePress(Save) {
		t.Errorf("Expected press consumed by first TakePress")
	}
}

func TestNonKeyEventIgnored(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.HandleEvent(tcell.NewEventResize(80, 24))

	if kb.Held(Left) || kb.TakePress(Quit) {
		t.Errorf("Expected resize event to leave buttons untouched")
	}
}
