package audio

import (
	"math"
	"testing"
	"time"
)

func TestEventString(t *testing.T) {
	cases := []struct {
		e    Event
		want string
	}{
		{EventStep, "step"},
		{EventVictory, "victory"},
		{EventDefeat, "defeat"},
		{Event(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.e.String(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}

func TestSweepGeneratorStream(t *testing.T) {
	g := newSweep(sampleRate, 300, 900, time.Millisecond*100)

	buf := make([][2]float64, 512)
	n, ok := g.Stream(buf)
	if !ok {
		t.Fatal("Expected generator to keep streaming")
	}
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}

	for i, s := range buf {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("Sample %d not mono: %v", i, s)
		}
	}

	// Attack envelope keeps the first sample silent.
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample 0, got %f", buf[0][0])
	}

	if g.Err() != nil {
		t.Errorf("Expected nil error, got %v", g.Err())
	}
}

func TestNopSinkIsSafe(t *testing.T) {
	var s NopSink
	s.Play(EventStep)
	s.Play(EventVictory)
	s.Play(Event(42))
}
