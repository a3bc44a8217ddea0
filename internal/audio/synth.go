// Package audio turns game cue events into short synthesized sounds.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/factor-run/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator stream.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a cue.
func note(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	osc := NewOscillator(freq, d, wave, SampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
}

// Cue builds the sound for an event, or nil for unknown events.
// Every cue is finite and its samples stay within [-1, 1].
func Cue(e core.Event) beep.Streamer {
	switch e {
	case core.EventGateMultiply:
		return newVolume(beep.Seq(
			note(1046.50, 60*time.Millisecond, WaveSquare),
			note(1318.51, 90*time.Millisecond, WaveSquare),
		), 0.35)
	case core.EventGateDivide:
		return newVolume(beep.Seq(
			note(659.25, 60*time.Millisecond, WaveSaw),
			note(523.25, 90*time.Millisecond, WaveSaw),
		), 0.35)
	case core.EventBattleStart:
		return beep.Mix(
			newVolume(note(110, 300*time.Millisecond, WaveSine), 0.5),
			newVolume(note(0, 250*time.Millisecond, WaveNoise), 0.25),
		)
	case core.EventClash:
		return newVolume(note(0, 40*time.Millisecond, WaveNoise), 0.3)
	case core.EventBattleWin:
		return newVolume(beep.Seq(
			note(523.25, 90*time.Millisecond, WaveSine),
			note(659.25, 90*time.Millisecond, WaveSine),
			note(783.99, 90*time.Millisecond, WaveSine),
			note(1046.50, 200*time.Millisecond, WaveSine),
		), 0.6)
	case core.EventBattleLose:
		return newVolume(beep.Seq(
			note(392.00, 150*time.Millisecond, WaveSaw),
			note(329.63, 150*time.Millisecond, WaveSaw),
			note(261.63, 300*time.Millisecond, WaveSaw),
		), 0.4)
	case core.EventBattleDraw:
		return newVolume(beep.Seq(
			note(440, 120*time.Millisecond, WaveSquare),
			note(440, 120*time.Millisecond, WaveSquare),
		), 0.3)
	default:
		return nil
	}
}
