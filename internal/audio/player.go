package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	maxVoices  = 12
)

// Player mixes cue sounds onto the speaker.
// A Player that failed to initialize, or is muted, silently drops cues.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer creates a player at the given master volume (0..1).
func NewPlayer(volume float64, muted bool) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Init opens the speaker. Safe to call more than once.
// Muted players never touch the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sounds for cues. Extra cues past the voice limit are dropped.
func (p *Player) Play(cues ...core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || len(cues) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	seen := make(map[core.Cue]bool, len(cues))
	for _, c := range cues {
		// One voice per cue kind per call
		if seen[c] || p.mixer.Len() >= maxVoices {
			continue
		}
		seen[c] = true
		if s := CueStreamer(c, sampleRate, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
}

// SetMuted toggles output without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
