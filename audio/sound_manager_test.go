package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-runner/event"
)

func streamAll(t *testing.T, g interface {
	Stream([][2]float64) (int, bool)
	Err() error
}, frames int) [][2]float64 {
	t.Helper()
	samples := make([][2]float64, frames)
	n, ok := g.Stream(samples)
	if !ok || n != frames {
		t.Fatalf("Expected %d samples, got n=%d ok=%v", frames, n, ok)
	}
	if g.Err() != nil {
		t.Fatalf("Unexpected generator error: %v", g.Err())
	}
	return samples
}

func assertBounded(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("Expected mono-duplicated channels at %d, got %v", i, s)
		}
	}
}

func TestSweepGenerator(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 220, 440)
	samples := streamAll(t, g, 4800)
	assertBounded(t, samples)

	var energy float64
	for _, s := range samples {
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Errorf("Expected nonzero signal from sweep generator")
	}
}

func TestChimeGeneratorDecays(t *testing.T) {
	g := NewChimeGenerator(sampleRate, 880)
	samples := streamAll(t, g, int(sampleRate)) // one full second

	assertBounded(t, samples)

	var head, tail float64
	for _, s := range samples[:4800] {
		head += s[0] * s[0]
	}
	for _, s := range samples[len(samples)-4800:] {
		tail += s[0] * s[0]
	}
	if tail >= head {
		t.Errorf("Expected chime envelope to decay, head=%v tail=%v", head, tail)
	}
}

func TestBuzzGenerator(t *testing.T) {
	g := NewBuzzGenerator(sampleRate, 110)
	assertBounded(t, streamAll(t, g, 4800))
}

// An uninitialized manager must swallow cues silently
func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()

	sm.PlayCoin()
	sm.PlayStomp()
	sm.PlayDamage()
	sm.PlayGameOver()
	sm.Cleanup()

	bus := event.NewBus()
	sm.Attach(bus)
	bus.Emit(event.Event{Type: event.CoinCollected})
	bus.Emit(event.Event{Type: event.GameOver})
}
