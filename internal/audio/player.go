package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/factor-run/internal/core"
)

// Player plays cue events. Muting belongs to the player.
type Player interface {
	Play(e core.Event)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// SpeakerPlayer plays cues through the system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	muted  atomic.Bool
	closed bool
}

// NewSpeakerPlayer initializes the speaker and starts an empty mixer on it.
func NewSpeakerPlayer(muted bool) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	p := &SpeakerPlayer{mixer: &beep.Mixer{}}
	p.muted.Store(muted)
	speaker.Play(p.mixer)
	return p, nil
}

// Play mixes the cue for e into the output.
func (p *SpeakerPlayer) Play(e core.Event) {
	if p.muted.Load() {
		return
	}
	s := Cue(e)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted mutes or unmutes the player. Muting drops queued cues.
func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
	if !muted {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// Muted reports whether the player is muted.
func (p *SpeakerPlayer) Muted() bool {
	return p.muted.Load()
}

// Close stops playback and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Clear()
	speaker.Close()
}

// NopPlayer discards cues but still tracks the mute flag, so the sound
// toggle behaves the same without an audio device.
type NopPlayer struct {
	muted atomic.Bool
}

// NewNopPlayer creates a silent player.
func NewNopPlayer(muted bool) *NopPlayer {
	p := &NopPlayer{}
	p.muted.Store(muted)
	return p
}

func (p *NopPlayer) Play(core.Event)     {}
func (p *NopPlayer) SetMuted(muted bool) { p.muted.Store(muted) }
func (p *NopPlayer) Muted() bool         { return p.muted.Load() }
func (p *NopPlayer) Close()              {}

// New returns a speaker player, or a silent player together with the
// initialization error when no audio device is available.
func New(muted bool) (Player, error) {
	p, err := NewSpeakerPlayer(muted)
	if err != nil {
		return NewNopPlayer(muted), err
	}
	return p, nil
}
