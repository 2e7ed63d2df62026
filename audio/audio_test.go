package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/parameter"
)

// drain streams s to exhaustion, failing if it runs past limit samples
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total <= limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if math.IsNaN(buf[i][c]) {
					t.Fatalf("NaN sample at %d", total+i)
				}
				peak = math.Max(peak, math.Abs(buf[i][c]))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream ran past %d samples", limit)
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		total, peak := drain(t, osc, rate.N(time.Second))
		if want := rate.N(50 * time.Millisecond); total != want {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, total, want)
		}
		if peak > 1 || peak == 0 {
			t.Errorf("wave %d: peak %v outside (0, 1]", wave, peak)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 200*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("streamed %d, want 1000", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack start = %v, want 0", buf[0][0])
	}
	if buf[50][0] != 0.5 {
		t.Errorf("mid attack = %v, want 0.5", buf[50][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("sustain = %v, want 1", buf[500][0])
	}
	if buf[900][0] != 0.5 {
		t.Errorf("mid release = %v, want 0.5", buf[900][0])
	}
}

func TestCuesAreBounded(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		dur  time.Duration
	}{
		{"horn", SunsetHorn(1), parameter.HornSoundDuration},
		{"surf", Surf(1, 1), parameter.SurfSoundDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, peak := drain(t, tt.s, 2*SampleRate.N(tt.dur))
			if want := SampleRate.N(tt.dur); total != want {
				t.Errorf("streamed %d samples, want %d", total, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak %v outside (0, 1]", peak)
			}
		})
	}
}

func TestLandfallBellRings(t *testing.T) {
	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	n, _ := LandfallBell(1).Stream(buf)
	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(buf[i][0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("bell peak %v outside (0, 1]", peak)
	}
}

func TestSurfZeroIntensityIsSilent(t *testing.T) {
	_, peak := drain(t, Surf(0, 1), 2*SampleRate.N(parameter.SurfSoundDuration))
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}

type recordingPlayer struct {
	played int
}

func (r *recordingPlayer) Play(beep.Streamer) { r.played++ }

func TestCuesRespondToEvents(t *testing.T) {
	rec := &recordingPlayer{}
	c := NewCues(rec, 0.5)

	c.HandleEvent(event.GameEvent{Type: event.EventIslandEnter, Payload: &event.IslandEnterPayload{}})
	if rec.played != 1 {
		t.Fatalf("enter played %d cues, want 1", rec.played)
	}

	c.HandleEvent(event.GameEvent{Type: event.EventModeChange, Payload: &event.ModeChangePayload{From: "night", To: "day"}})
	if rec.played != 1 {
		t.Errorf("sunrise played a cue")
	}
	c.HandleEvent(event.GameEvent{Type: event.EventModeChange, Payload: &event.ModeChangePayload{From: "day", To: "night"}})
	if rec.played != 2 {
		t.Errorf("sunset played %d cues total, want 2", rec.played)
	}

	for i := 0; i < parameter.SurfEvery; i++ {
		c.HandleEvent(event.GameEvent{Type: event.EventBoatMove, Payload: &event.BoatMovePayload{Speed: 10}})
	}
	if rec.played != 3 {
		t.Errorf("surf: %d cues total, want 3", rec.played)
	}

	for i := 0; i < parameter.SurfEvery; i++ {
		c.HandleEvent(event.GameEvent{Type: event.EventBoatMove, Payload: &event.BoatMovePayload{Speed: 0}})
	}
	if rec.played != 3 {
		t.Errorf("becalmed boat played surf")
	}
}

func TestSurfIntensityFollowsDarkness(t *testing.T) {
	c := NewCues(&recordingPlayer{}, 1)
	if got := c.SurfIntensity(parameter.SurfFullSpeed * 2); got != 1 {
		t.Errorf("full speed = %v, want 1", got)
	}

	c.HandleEvent(event.GameEvent{Type: event.EventIslandApproach, Payload: &event.IslandApproachPayload{Darkness: 0.75}})
	if got := c.SurfIntensity(parameter.SurfFullSpeed); got != 0.25 {
		t.Errorf("dark approach = %v, want 0.25", got)
	}

	c.HandleEvent(event.GameEvent{Type: event.EventIslandLeave, Payload: &event.IslandLeavePayload{}})
	if got := c.SurfIntensity(parameter.SurfFullSpeed / 2); got != 0.5 {
		t.Errorf("after leave = %v, want 0.5", got)
	}
}
