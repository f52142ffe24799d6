// Package audio defines the named sound events the game emits and the sink
// interface collaborators implement. The core fires events and moves on; a
// sink that is missing, silent or broken must never affect gameplay.
package audio

// Event is a discrete named game sound.
type Event int

const (
	EventStep Event = iota
	EventVictory
	EventDefeat
)

// String returns the event name used in log lines.
func (e Event) String() string {
	switch e {
	case EventStep:
		return "step"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Sink receives sound events. Play must not block.
type Sink interface {
	Play(Event)
}

// NopSink discards all events. Used when audio is disabled or failed to
// initialize.
type NopSink struct{}

// Play implements Sink.
func (NopSink) Play(Event) {}
