// Package game owns the session state machine and the per-frame
// orchestration of maze, movement and visibility. It never touches the
// rendering or audio backends directly; those come in through the interfaces
// in internal/render and internal/audio.
package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/glimmergames/lanternmaze/internal/audio"
	"github.com/glimmergames/lanternmaze/internal/simulation"
	"github.com/glimmergames/lanternmaze/internal/world/maze"
)

// Phase is the session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

// String returns the phase name used in log lines.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session owns one run of the game: the maze, the player, the countdown and
// the phase transitions. A fresh maze and player are built on every
// transition into PhasePlaying; nothing is reused across games.
//
// All session state is confined to the single goroutine that calls Tick.
// The countdown is not a separate timer: it is a deadline the tick loop
// checks against the frame clock, so stopping it is just clearing the
// deadline, and a stale tick can never fire into a finished session.
type Session struct {
	ID uuid.UUID

	cfg          *simulation.Config
	rng          *rand.Rand
	canvasWidth  int
	canvasHeight int

	phase         Phase
	difficultyID  string
	difficulty    simulation.Difficulty
	timeRemaining int
	nextTick      time.Time // zero while the countdown is stopped

	maze   *maze.Maze
	player *simulation.Controller

	// Collaborator hooks. Nil hooks are skipped; none may block.
	Audio           audio.Sink
	OnPhaseChange   func(Phase)
	OnTimeRemaining func(int)
}

// NewSession creates an idle session for a playable canvas of the given
// pixel size. The rng drives maze generation; tests pass a seeded source.
func NewSession(cfg *simulation.Config, canvasWidth, canvasHeight int, rng *rand.Rand) *Session {
	return &Session{
		ID:           uuid.New(),
		cfg:          cfg,
		rng:          rng,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		phase:        PhaseIdle,
		Audio:        audio.NopSink{},
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// TimeRemaining returns the countdown value in whole seconds.
func (s *Session) TimeRemaining() int {
	return s.timeRemaining
}

// Maze returns the current maze, or nil while idle.
func (s *Session) Maze() *maze.Maze {
	return s.maze
}

// Player returns the current movement controller, or nil while idle.
func (s *Session) Player() *simulation.Controller {
	return s.player
}

// Difficulty returns the active tier.
func (s *Session) Difficulty() simulation.Difficulty {
	return s.difficulty
}

// DifficultyID returns the active tier identifier.
func (s *Session) DifficultyID() string {
	return s.difficultyID
}

// Start builds a fresh maze and player for the given difficulty and enters
// PhasePlaying. An unknown difficulty id panics; that is a wiring bug, not a
// runtime condition.
func (s *Session) Start(difficultyID string, now time.Time) {
	d := s.cfg.MustDifficulty(difficultyID)

	w, h := s.mazeSize(d.SizeFactor)
	s.maze = maze.Generate(w, h, s.rng, s.cfg.Loops)
	s.player = simulation.NewController(s.maze, s.cfg, time.Duration(d.MoveDurationMS)*time.Millisecond)

	s.difficultyID = difficultyID
	s.difficulty = d
	s.timeRemaining = d.TimeLimitSeconds
	s.nextTick = now.Add(time.Second)
	s.setPhase(PhasePlaying)
	s.notifyTime()

	log.Printf("Session %s: started %q, maze %dx%d, %ds on the clock",
		s.ID, difficultyID, s.maze.Width, s.maze.Height, s.timeRemaining)
}

// Reset abandons the current game and returns to PhaseIdle. The countdown is
// stopped as part of leaving PhasePlaying.
func (s *Session) Reset() {
	s.stopCountdown()
	s.maze = nil
	s.player = nil
	if s.phase != PhaseIdle {
		s.setPhase(PhaseIdle)
	}
}

// Tick advances the session by one frame while playing. Order is fixed:
// movement first, then the win check, then the countdown. The win check runs
// every frame and therefore takes precedence over a timer tick landing in
// the same frame.
func (s *Session) Tick(now time.Time, input simulation.InputState) {
	if s.phase != PhasePlaying {
		return
	}

	if stepped := s.player.Update(now, input); stepped {
		s.Audio.Play(audio.EventStep)
	}

	if s.atExit() {
		s.stopCountdown()
		s.setPhase(PhaseWon)
		s.Audio.Play(audio.EventVictory)
		return
	}

	s.advanceCountdown(now)
}

// atExit reports whether the player's center is within half a cell of the
// exit cell's center.
func (s *Session) atExit() bool {
	exit := s.maze.Exit()
	cell := s.cfg.CellSize
	ex := (float64(exit.X) + 0.5) * cell
	ey := (float64(exit.Y) + 0.5) * cell
	px, py := s.player.Position()
	return math.Hypot(px-ex, py-ey) < cell/2
}

// advanceCountdown decrements the timer once per elapsed second. Reaching
// zero forces the loss, pre-empting any in-flight move.
func (s *Session) advanceCountdown(now time.Time) {
	for !s.nextTick.IsZero() && !now.Before(s.nextTick) {
		s.timeRemaining--
		s.nextTick = s.nextTick.Add(time.Second)
		s.notifyTime()

		if s.timeRemaining <= 0 {
			s.stopCountdown()
			s.setPhase(PhaseLost)
			s.Audio.Play(audio.EventDefeat)
			return
		}
	}
}

// stopCountdown clears the tick deadline. Must run on every transition out
// of PhasePlaying so a stale deadline cannot fire into a finished session.
func (s *Session) stopCountdown() {
	s.nextTick = time.Time{}
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	log.Printf("Session %s: phase %s", s.ID, p)
	if s.OnPhaseChange != nil {
		s.OnPhaseChange(p)
	}
}

func (s *Session) notifyTime() {
	if s.OnTimeRemaining != nil {
		s.OnTimeRemaining(s.timeRemaining)
	}
}

// mazeSize computes maze dimensions from the playable canvas scaled by the
// difficulty factor, forced odd and clamped into the configured range.
func (s *Session) mazeSize(factor float64) (int, int) {
	w := int(float64(s.canvasWidth) / s.cfg.CellSize * factor)
	h := int(float64(s.canvasHeight) / s.cfg.CellSize * factor)

	w = oddClamp(w, s.cfg.MazeMinWidth, s.cfg.MazeMaxWidth)
	h = oddClamp(h, s.cfg.MazeMinHeight, s.cfg.MazeMaxHeight)
	return w, h
}

// oddClamp forces v odd (decrementing if even), then clamps into [lo, hi],
// re-forcing odd in case a bound is even.
func oddClamp(v, lo, hi int) int {
	if v%2 == 0 {
		v--
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if v%2 == 0 {
		v--
	}
	return v
}
