package game

import (
	"image"
	"testing"

	"github.com/glimmergames/lanternmaze/internal/render"
	"github.com/glimmergames/lanternmaze/internal/simulation"
)

// fakeInput is a scriptable InputManager.
type fakeInput struct {
	pressed map[render.Key]bool
	touches []image.Point
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool     { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.pressed[key] }
func (f *fakeInput) TouchPositions() []image.Point        { return f.touches }

func TestCombinedSourcesUseORSemantics(t *testing.T) {
	in := &fakeInput{pressed: map[render.Key]bool{}}
	src := Combine(NewArrowKeySource(in), NewWASDSource(in))

	if src.Held(simulation.DirUp) {
		t.Error("Expected up not held with no keys pressed")
	}

	// Either binding alone is enough.
	in.pressed[render.KeyW] = true
	if !src.Held(simulation.DirUp) {
		t.Error("Expected up held via WASD")
	}

	in.pressed = map[render.Key]bool{render.KeyUp: true}
	if !src.Held(simulation.DirUp) {
		t.Error("Expected up held via arrows")
	}
}

func TestSnapshotCapturesAllDirections(t *testing.T) {
	in := &fakeInput{pressed: map[render.Key]bool{
		render.KeyUp:   true,
		render.KeyLeft: true,
	}}
	state := Snapshot(NewArrowKeySource(in))

	if !state.Up || !state.Left || state.Down || state.Right {
		t.Errorf("Expected up+left snapshot, got %+v", state)
	}
	if state.Priority() != simulation.DirUp {
		t.Errorf("Expected up to win priority, got %v", state.Priority())
	}
}

func TestTouchSourceMapsScreenRegions(t *testing.T) {
	in := &fakeInput{}
	src := NewTouchSource(in, 800, 600)

	cases := []struct {
		p    image.Point
		want simulation.Direction
	}{
		{image.Point{X: 780, Y: 300}, simulation.DirRight},
		{image.Point{X: 20, Y: 300}, simulation.DirLeft},
		{image.Point{X: 400, Y: 20}, simulation.DirUp},
		{image.Point{X: 400, Y: 580}, simulation.DirDown},
	}
	for _, tc := range cases {
		in.touches = []image.Point{tc.p}
		if !src.Held(tc.want) {
			t.Errorf("Touch at %v: expected direction %v held", tc.p, tc.want)
		}
		for _, other := range []simulation.Direction{simulation.DirUp, simulation.DirDown, simulation.DirLeft, simulation.DirRight} {
			if other != tc.want && src.Held(other) {
				t.Errorf("Touch at %v: did not expect %v held", tc.p, other)
			}
		}
	}

	// No touches, nothing held.
	in.touches = nil
	if src.Held(simulation.DirUp) {
		t.Error("Expected nothing held without touches")
	}
}

func TestMenuOrderEasiestFirst(t *testing.T) {
	cfg := simulation.DefaultConfig()
	order := menuOrder(cfg)

	if len(order) != 3 {
		t.Fatalf("Expected 3 tiers, got %d", len(order))
	}
	want := []string{"easy", "normal", "hard"}
	for i, id := range want {
		if order[i] != id {
			t.Errorf("Expected %q at position %d, got %q", id, i, order[i])
		}
	}
}
