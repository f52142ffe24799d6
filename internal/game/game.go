package game

import (
	"math/rand"
	"sort"
	"time"

	"github.com/glimmergames/lanternmaze/internal/audio"
	"github.com/glimmergames/lanternmaze/internal/render"
	"github.com/glimmergames/lanternmaze/internal/simulation"
)

// frameInterval is the minimum wall-clock gap between simulation frames.
// The engine may call Update faster; under the interval the frame skips its
// work but stays scheduled.
const frameInterval = 15 * time.Millisecond

// Game drives a Session from the engine's loop and draws it. It implements
// render.Game.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Session  *Session
	Renderer render.Renderer
	InputMgr render.InputManager

	cfg    *simulation.Config
	source InputSource
	touch  *TouchSource
	menu   []string

	whiteImg  render.Image
	lastFrame time.Time
}

// New wires a game for the given canvas size. Keyboard (arrows and WASD)
// and touch input are combined with OR semantics.
func New(cfg *simulation.Config, renderer render.Renderer, inputMgr render.InputManager, sink audio.Sink, width, height int) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := NewSession(cfg, width, height, rng)
	session.Audio = sink

	touch := NewTouchSource(inputMgr, width, height)
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Session:      session,
		Renderer:     renderer,
		InputMgr:     inputMgr,
		cfg:          cfg,
		touch:        touch,
		source:       Combine(NewArrowKeySource(inputMgr), NewWASDSource(inputMgr), touch),
		menu:         menuOrder(cfg),
	}
	return g
}

// menuOrder lists tier ids easiest first: longest time limit wins, names
// break ties so the order is stable.
func menuOrder(cfg *simulation.Config) []string {
	ids := cfg.DifficultyIDs()
	sort.Slice(ids, func(i, j int) bool {
		a, b := cfg.Difficulties[ids[i]], cfg.Difficulties[ids[j]]
		if a.TimeLimitSeconds != b.TimeLimitSeconds {
			return a.TimeLimitSeconds > b.TimeLimitSeconds
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Update handles one engine tick.
func (g *Game) Update() error {
	now := time.Now()
	if !g.lastFrame.IsZero() && now.Sub(g.lastFrame) < frameInterval {
		return nil
	}
	g.lastFrame = now

	switch g.Session.Phase() {
	case PhaseIdle:
		keys := []render.Key{render.Key1, render.Key2, render.Key3}
		for i, id := range g.menu {
			if i >= len(keys) {
				break
			}
			if g.InputMgr.IsKeyJustPressed(keys[i]) {
				g.Session.Start(id, now)
				break
			}
		}

	case PhasePlaying:
		if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			g.Session.Reset()
			return nil
		}
		g.Session.Tick(now, Snapshot(g.source))

	case PhaseWon, PhaseLost:
		if g.InputMgr.IsKeyJustPressed(render.KeyR) {
			g.Session.Reset()
		}
	}

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
