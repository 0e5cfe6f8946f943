// Package sound plays short synthesized cues through the system speaker.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpDuration = 90 * time.Millisecond
	bumpFreq     = 70.0

	// bumpCooldown stops a held key against a wall from retriggering every tick
	bumpCooldown = 250 * time.Millisecond
)

// Manager owns the speaker and mixes cues into it
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastBump    time.Time
	now         func() time.Time
}

// NewManager creates a silent manager; call Initialize to open the speaker
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// PlayBump plays a short low thud, used when a move is blocked by a wall.
// Calls within the cooldown window are ignored. Returns true if a cue was queued.
func (m *Manager) PlayBump() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return false
	}

	now := m.now()
	if !m.lastBump.IsZero() && now.Sub(m.lastBump) < bumpCooldown {
		return false
	}
	m.lastBump = now

	streamer := beep.Take(sampleRate.N(bumpDuration), NewThudGenerator(sampleRate, bumpFreq, bumpDuration))

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Close stops all cues and closes the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// ThudGenerator is a decaying low sine with a little second harmonic
type ThudGenerator struct {
	sr       beep.SampleRate
	freq     float64
	duration float64
	pos      int
}

// NewThudGenerator creates a thud of the given pitch that fades out over duration
func NewThudGenerator(sr beep.SampleRate, freq float64, duration time.Duration) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq, duration: duration.Seconds()}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(2*math.Pi*g.freq*2*t)

		// Fast attack, linear release
		attack := math.Min(t/0.005, 1.0)
		release := math.Max(0, 1-t/g.duration)
		sample *= attack * release * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
