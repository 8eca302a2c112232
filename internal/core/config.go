package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed  int64   // seed for the enemy shift register, 0 = game default
	Speed float64 // frame delay multiplier, 0 = as fast as possible
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:  0,
		Speed: 1,
	}
}

// Phase is the top-level dispatch state of a game.
type Phase int

const (
	PhaseInit    Phase = iota // re-initialise the whole state block
	PhaseTitle                // title shown, waiting for action
	PhasePlaying              // normal play
	PhaseOver                 // terminal animation, then back to PhaseInit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // score as shown on the panel
	Health   int  // player health, 0 when not applicable
	GameOver bool // the last round ended in a loss
	Won      bool // the last round ended in a win
	Frame    uint64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Delay time.Duration // pause before the next tick
}
