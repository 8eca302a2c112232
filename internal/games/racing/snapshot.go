package racing

import "github.com/vovakirdan/tiny-arcade/internal/engine"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame   uint64
	CarX    int
	CarDir  engine.Direction
	Crashed bool
	Barrier int
	Side    uint8
	FrameMS int
	Score   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:   g.frame,
		CarX:    g.car.X,
		CarDir:  g.car.Dir,
		Crashed: g.car.State == engine.Dead,
		Barrier: g.barrier,
		Side:    g.side,
		FrameMS: g.frameMS,
		Score:   g.car.Score.Value(),
	}
}
