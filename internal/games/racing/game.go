// Package racing implements a one-button road race. The car swings between
// two end stops and only changes direction when the button is held at a
// stop. Barriers grow out of the horizon on one side of the road; being on
// that side when a barrier reaches the car is a crash.
package racing

import (
	"time"

	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

// carPage is the page the car drives on.
const carPage = 5

// Game implements the racing logic.
type Game struct {
	cfg     config.RacingConfig
	runtime core.RuntimeConfig
	phase   core.Phase
	frame   uint64

	car    engine.Player // X is the left column, Dir the swing direction
	carMax int           // signed offset of the stop the car is heading to

	side        uint8 // bit 0 picks the barrier side, rotated per barrier
	barrier     int   // barrier index, grows towards the car
	barrierPage int
	barrierX    int

	line    int // centre line pattern
	frameMS int

	view view
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("racing", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Racing"
}

// Buttons reports the buttons the game reads.
func (g *Game) Buttons() core.Button {
	return core.ButtonAction
}

// Reset loads the configuration and puts the game into PhaseInit.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRacing(configPath)
	if err != nil {
		cfg = config.DefaultRacingConfig()
	}
	g.cfg = cfg

	g.phase = core.PhaseInit
	g.frame = 0
}

// initialise puts the car on its left stop and the first barrier on the
// horizon.
func (g *Game) initialise() {
	c := g.cfg.Car
	g.car = engine.Player{
		Entity: engine.Entity{X: c.Center - c.MaxOffset, Lane: carPage, State: engine.Walking, Dir: engine.Backward},
		Health: engine.NewHealth(1),
		Score:  engine.NewScore(g.cfg.Score.Digits),
	}
	g.carMax = -c.MaxOffset

	g.side = g.cfg.Barrier.SideSeed
	if s := sideSeed(g.runtime.Seed); s != 0x00 && s != 0xFF {
		g.side = s
	}
	g.barrier = g.cfg.Barrier.MinIndex
	g.barrierPage = 1
	g.barrierX = 0

	g.line = 0
	g.frameMS = g.cfg.Timing.StartFrameMS
}

// sideSeed folds a runtime seed into the side register. 0x00 and 0xFF are
// fixed points of the rotation and would put every barrier on one side.
func sideSeed(seed int64) uint8 {
	var v uint8
	for u := uint64(seed); u != 0; u >>= 8 {
		v ^= uint8(u)
	}
	return v
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	delay := time.Duration(g.frameMS) * time.Millisecond

	switch g.phase {
	case core.PhaseInit:
		g.initialise()
		g.phase = core.PhaseTitle
		g.view = view{title: true}
		delay = time.Duration(g.frameMS) * time.Millisecond // frameMS was just reset

	case core.PhaseTitle:
		g.view = view{}
		if in.Has(core.ButtonAction) {
			g.phase = core.PhasePlaying
			g.view = view{full: true}
		}

	case core.PhasePlaying:
		delay = g.stepRace(in)

	case core.PhaseOver:
		g.view = view{}
		g.phase = core.PhaseInit
	}

	return core.StepResult{State: g.State(), Delay: delay}
}

// stepRace runs one frame: centre line, car, barrier.
func (g *Game) stepRace(in core.InputFrame) time.Duration {
	g.view = view{frame: true, line: g.line}
	g.line = (g.line + 1) % len(roadLines)

	if g.car.X == g.cfg.Car.Center+g.carMax {
		if in.Has(core.ButtonAction) {
			g.car.Dir = g.car.Dir.Reverse()
			g.carMax = -g.carMax
		}
	} else {
		g.car.X += int(g.car.Dir)
	}

	if g.crashed() {
		g.car.Kill()
		g.view.crash = true
		g.phase = core.PhaseOver
		return time.Duration(g.cfg.Timing.CrashPauseMS) * time.Millisecond
	}

	g.view.eraseX = g.barrierX
	g.view.erasePage = g.barrierPage
	g.view.eraseLen = g.barrier>>4 - 1

	g.advanceBarrier()

	offset := g.barrier >> 2
	count := offset >> 2
	g.barrierPage = count >> 1
	if g.side&1 != 0 {
		g.barrierX = roadCentre - count - g.barrierPage
	} else {
		g.barrierX = roadCentre + 1 + g.barrierPage
	}
	g.view.barrierLen = count - 1
	g.view.barrierBits = 1 << (offset & 7)

	return time.Duration(g.frameMS) * time.Millisecond
}

// crashed reports whether the car sits on the side of a barrier that has
// reached it.
func (g *Game) crashed() bool {
	if g.barrier <= g.cfg.Barrier.DangerIndex {
		return false
	}
	leftBarrier := g.side&1 != 0
	switch {
	case g.car.X < g.cfg.Car.LeftSide:
		return leftBarrier
	case g.car.X > g.cfg.Car.RightSide:
		return !leftBarrier
	}
	return false
}

// advanceBarrier grows the barrier; once it has passed the car a new one
// starts on the next side, the frame gets 1 ms shorter and a point is
// scored.
func (g *Game) advanceBarrier() {
	b := g.cfg.Barrier
	switch {
	case g.barrier < b.Step1Until:
		g.barrier++
	case g.barrier < b.Step2Until:
		g.barrier += 2
	case g.barrier < b.Step4Until:
		g.barrier += 4
	default:
		g.barrier = b.MinIndex
		g.side = engine.RotateLeft(g.side)
		if g.frameMS > g.cfg.Timing.MinFrameMS {
			g.frameMS--
		}
		g.car.Score.Inc()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.car.Score.Value(),
		GameOver: g.phase == core.PhaseOver,
		Frame:    g.frame,
	}
}
