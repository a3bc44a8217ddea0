package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/factor-run/internal/core"
)

// drain streams s to completion and returns the number of samples.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %f", total+i, v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("stream did not end within %d samples", limit)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tc.wave, SampleRate)
			if got, want := drain(t, osc, SampleRate.N(time.Second)), SampleRate.N(100*time.Millisecond); got != want {
				t.Errorf("streamed %d samples, expected %d", got, want)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, SampleRate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain should be full volume, got %f", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release should fade out, got %f", last)
	}
}

func TestCuesFiniteAndBounded(t *testing.T) {
	for _, e := range core.AllEvents {
		t.Run(string(e), func(t *testing.T) {
			s := Cue(e)
			if s == nil {
				t.Fatal("every cue event should have a sound")
			}
			if n := drain(t, s, SampleRate.N(2*time.Second)); n == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if Cue(core.Event("unknown")) != nil {
		t.Error("unknown events should have no sound")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, SampleRate), 0)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("zero volume should be silent, got %f", buf[i][0])
		}
	}
}

func TestNopPlayerMute(t *testing.T) {
	p := NewNopPlayer(true)
	if !p.Muted() {
		t.Error("player should start muted")
	}
	p.SetMuted(false)
	if p.Muted() {
		t.Error("player should be unmuted")
	}
	p.Play(core.EventClash)
	p.Close()
}
