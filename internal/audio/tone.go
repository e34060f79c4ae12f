// Package audio turns simulation cues into short synthesized tones played
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream exponentially from full gain down to floor over its length.
type decay struct {
	streamer beep.Streamer
	position int
	length   int
	floor    float64
}

func newDecay(s beep.Streamer, d time.Duration, floor float64, rate beep.SampleRate) *decay {
	return &decay{streamer: s, length: rate.N(d), floor: floor}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		t := float64(e.position) / float64(max(e.length, 1))
		g := math.Pow(e.floor, math.Min(t, 1))
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear gain; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one note of a cue.
type tone struct {
	freq  float64
	wave  WaveType
	dur   time.Duration
	vol   float64
	delay time.Duration // Offset from the start of the cue
}

// streamer renders the note, preceded by its delay as silence.
func (t tone) streamer(rate beep.SampleRate, master float64) beep.Streamer {
	osc := newOscillator(t.freq, t.dur, t.wave, rate)
	shaped := newVolume(newDecay(osc, t.dur, 0.01/t.vol, rate), t.vol*master)
	if t.delay <= 0 {
		return shaped
	}
	return beep.Seq(beep.Silence(rate.N(t.delay)), shaped)
}
