package platformer

import "github.com/vovakirdan/tiny-arcade/internal/engine"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64
	Lane      int
	X         int
	State     engine.State
	Dir       engine.Direction
	Health    int
	Hiding    bool
	Climbing  bool
	Enemies   int // still standing
	EnemyHits int // hits taken by the current enemy
	Shots     int // in flight
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:     g.frame,
		Lane:      g.player.Lane,
		X:         g.player.X,
		State:     g.player.State,
		Dir:       g.player.Dir,
		Health:    g.player.Health.Value(),
		Hiding:    g.hiding,
		Climbing:  g.climb > 0,
		Enemies:   g.roster.Remaining(),
		EnemyHits: g.marks,
		Shots:     g.shots.Active(),
	}
}
