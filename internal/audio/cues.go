package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

const ms = time.Millisecond

var cueTones = map[core.Cue][]tone{
	core.CueShoot: {
		{freq: 400, wave: WaveSquare, dur: 100 * ms, vol: 0.05},
	},
	core.CueExplosion: {
		{freq: 100, wave: WaveSaw, dur: 200 * ms, vol: 0.1},
		{freq: 50, wave: WaveSquare, dur: 200 * ms, vol: 0.1, delay: 50 * ms},
	},
	core.CueLevelUp: {
		{freq: 600, wave: WaveSine, dur: 100 * ms, vol: 0.1},
		{freq: 800, wave: WaveSine, dur: 100 * ms, vol: 0.1, delay: 150 * ms},
		{freq: 1200, wave: WaveSquare, dur: 300 * ms, vol: 0.1, delay: 300 * ms},
	},
	core.CueBossHit: {
		{freq: 150, wave: WaveSquare, dur: 50 * ms, vol: 0.1},
	},
	core.CuePowerUp: {
		{freq: 660, wave: WaveSine, dur: 80 * ms, vol: 0.1},
		{freq: 990, wave: WaveSine, dur: 120 * ms, vol: 0.1, delay: 80 * ms},
	},
	core.CueExtraLife: {
		{freq: 523.25, wave: WaveTriangle, dur: 100 * ms, vol: 0.1},
		{freq: 659.25, wave: WaveTriangle, dur: 100 * ms, vol: 0.1, delay: 100 * ms},
		{freq: 783.99, wave: WaveTriangle, dur: 200 * ms, vol: 0.1, delay: 200 * ms},
	},
	core.CueSessionStart: {
		{freq: 400, wave: WaveTriangle, dur: 100 * ms, vol: 0.1},
		{freq: 600, wave: WaveTriangle, dur: 400 * ms, vol: 0.1, delay: 200 * ms},
	},
}

// CueStreamer returns a finite streamer for c, or nil for an unknown cue.
func CueStreamer(c core.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	if len(tones) == 1 {
		return tones[0].streamer(rate, master)
	}
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = t.streamer(rate, master)
	}
	return beep.Mix(parts...)
}
