package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SpeakerSink synthesizes short tones for game events and plays them through
// the system speaker. All sounds are generated, no asset files.
type SpeakerSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerSink opens the speaker. On failure the error is returned so the
// caller can fall back to a NopSink; a running game never depends on audio.
func NewSpeakerSink() (*SpeakerSink, error) {
	s := &SpeakerSink{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play implements Sink. Unknown events are ignored.
func (s *SpeakerSink) Play(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	var streamer beep.Streamer
	switch e {
	case EventStep:
		streamer = beep.Take(sampleRate.N(time.Millisecond*50), newSweep(sampleRate, 220, 220, time.Millisecond*50))
	case EventVictory:
		streamer = beep.Take(sampleRate.N(time.Millisecond*450), newSweep(sampleRate, 300, 900, time.Millisecond*450))
	case EventDefeat:
		streamer = beep.Take(sampleRate.N(time.Millisecond*600), newSweep(sampleRate, 280, 70, time.Millisecond*600))
	default:
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// sweepGenerator produces a sine tone whose frequency glides linearly from
// one value to another, with a short attack and an exponential tail so short
// blips do not click.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.samples)
		if t > 1 {
			t = 1
		}
		freq := g.from + (g.to-g.from)*t

		// Advance phase so frequency glides stay continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/(float64(g.sr)*0.005), 1.0)
		decay := math.Exp(-3 * t)
		sample := 0.25 * attack * decay * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
