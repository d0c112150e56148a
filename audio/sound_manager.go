package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-runner/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Failure leaves the manager in silent
// mode where every Play call is a no-op, so a headless box still runs the
// game.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// Attach subscribes the manager's cues to the gameplay event bus
func (sm *SoundManager) Attach(bus *event.Bus) {
	bus.Subscribe(event.CoinCollected, func(event.Event) { sm.PlayCoin() })
	bus.Subscribe(event.EnemyDefeated, func(event.Event) { sm.PlayStomp() })
	bus.Subscribe(event.PlayerDamaged, func(event.Event) { sm.PlayDamage() })
	bus.Subscribe(event.PlayerDied, func(event.Event) { sm.PlayDamage() })
	bus.Subscribe(event.GameOver, func(event.Event) { sm.PlayGameOver() })
}

// PlayCoin plays a bright two-tone ping
func (sm *SoundManager) PlayCoin() {
	sm.play(time.Millisecond*100, NewChimeGenerator(sampleRate, 880))
}

// PlayStomp plays a short thump for a defeated enemy
func (sm *SoundManager) PlayStomp() {
	sm.play(time.Millisecond*150, NewSweepGenerator(sampleRate, 200, 80))
}

// PlayDamage plays a low buzz
func (sm *SoundManager) PlayDamage() {
	sm.play(time.Millisecond*200, NewBuzzGenerator(sampleRate, 110))
}

// PlayGameOver plays a falling tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(time.Millisecond*700, NewSweepGenerator(sampleRate, 330, 55))
}

func (sm *SoundManager) play(d time.Duration, g beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// SweepGenerator generates a tone sweeping linearly between two frequencies
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a frequency sweep generator
func NewSweepGenerator(sr beep.SampleRate, from, to float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: sr.N(time.Millisecond * 200),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Envelope - quick attack, exponential decay
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*6)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a bright ping with an octave overtone
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 20)

		sample := 0.0
		sample += 0.2 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave with harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
