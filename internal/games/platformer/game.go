// Package platformer implements a three-floor run-and-gun. The player walks
// the bottom floor, stops at cover to trade shots with the enemy on that
// floor and climbs ladders up to the flag. Only the current enemy shoots and
// can be hit; the roster marker moves up a floor with every defeat.
package platformer

import (
	"time"

	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/codec"
	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

// Layout.
const (
	topLane    = 2
	laneStep   = 2
	centre     = 3 // sprite centre offset from its left column
	stopOffset = 5 // stop tiles trigger at x = stopOffset + k*TileWidth
	hpPage     = 0
	hpX        = 12
	deathBelow = 2
	shotBits   = 0x02
	titlePage  = 3
	titleX     = 3 * assets.TileWidth
)

// mode is the player's fine-grained state. The order matters: modes below
// modeWalk run the stand-still state machine, modes below modeWalkStart
// react to stop tiles.
type mode uint8

const (
	modeIdle mode = iota
	modeLadder
	modeCoverLeft
	modeCoverRight
	modeWait // just arrived on a floor
	modeWalk
	modeWalkStart // walking, first step not taken yet
	modeDead
)

var modeStates = [...]engine.State{
	modeIdle:       engine.Idle,
	modeLadder:     engine.OnLadder,
	modeCoverLeft:  engine.AtObstacleLeft,
	modeCoverRight: engine.AtObstacleRight,
	modeWait:       engine.Idle,
	modeWalk:       engine.Walking,
	modeWalkStart:  engine.Walking,
	modeDead:       engine.Dead,
}

// tileMode maps stop tiles to the mode they put the player in.
func tileMode(t assets.Tile) mode {
	switch t {
	case assets.TileLadder:
		return modeLadder
	case assets.TileCoverLeft:
		return modeCoverLeft
	case assets.TileCoverRight:
		return modeCoverRight
	default:
		return modeIdle
	}
}

// Game implements the platformer logic.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	phase   core.Phase
	frame   uint64
	won     bool

	player   engine.Player
	mode     mode
	imgX     int // player sprite column, one right of X when facing backward
	hiding   bool
	cooldown int
	tc       uint8 // time counter, wraps like the hardware register

	shots  engine.Shots
	roster engine.Roster
	marks  int // hits taken by the current enemy

	climb int // ladder animation frames shown so far, 0 when not climbing

	view   view
	reader *codec.Reader
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
	registry.Register("platformer", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Buttons reports the buttons the game reads.
func (g *Game) Buttons() core.Button {
	return core.ButtonLeft | core.ButtonRight | core.ButtonAction
}

// Reset loads the configuration and puts the game into PhaseInit.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.cfg = cfg

	g.phase = core.PhaseInit
	g.frame = 0
	g.won = false
}

// initialise rebuilds the fixed state block.
func (g *Game) initialise() {
	p := g.cfg.Player
	g.player = engine.Player{
		Entity: engine.Entity{X: p.StartX, Lane: p.StartLane, Dir: engine.Forward},
		Health: engine.NewHealth(p.Health),
		Score:  engine.NewScore(1),
	}
	g.imgX = p.StartX
	g.setMode(modeWalkStart)
	g.hiding = false
	g.cooldown = 0
	g.tc = 0
	g.climb = 0

	g.shots = engine.NewShots(g.cfg.Shots.Capacity)

	spawn := make([]engine.Entity, 0, len(g.cfg.Enemies.Spawns))
	for _, s := range g.cfg.Enemies.Spawns {
		dir := engine.Backward
		if s.Forward {
			dir = engine.Forward
		}
		spawn = append(spawn, engine.Entity{X: s.X, Lane: s.Lane, Dir: dir})
	}
	roster, err := engine.NewRoster(spawn...)
	if err != nil {
		// Validate caps the spawn list, so only a hand-built config gets here.
		roster, _ = engine.NewRoster(spawn[:engine.MaxEnemies]...)
	}
	g.roster = roster
	g.marks = 0
}

func (g *Game) setMode(m mode) {
	g.mode = m
	g.player.State = modeStates[m]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	delay := g.ticks(1)

	switch g.phase {
	case core.PhaseInit:
		g.initialise()
		g.phase = core.PhaseTitle
		g.view = view{title: true}

	case core.PhaseTitle:
		g.view = view{}
		if in.Has(core.ButtonAction) {
			g.won = false
			g.phase = core.PhasePlaying
			g.view = view{full: true}
			g.drawActors()
		}

	case core.PhasePlaying:
		g.view = view{}
		if g.climb > 0 {
			delay = g.stepClimb()
			break
		}
		delay = g.stepPlay(in)

	case core.PhaseOver:
		g.view = view{}
		g.phase = core.PhaseInit
	}

	return core.StepResult{State: g.State(), Delay: delay}
}

// stepPlay runs one ordinary frame: shots, player state machine, walking,
// the player's floor, enemies.
func (g *Game) stepPlay(in core.InputFrame) time.Duration {
	g.updateShots()

	if g.mode < modeWalk {
		if g.standing(in) {
			return g.stepClimb()
		}
	}

	g.tc++
	if int(g.tc)%g.cfg.Player.StepTicks == 0 {
		if g.mode == modeWalkStart {
			g.setMode(modeWalk)
		}
		if g.mode == modeWalk {
			g.player.Frame = (g.player.Frame + 1) % assets.WalkCycle
			g.player.X += int(g.player.Dir)
			g.imgX = g.player.X
			if g.player.Dir == engine.Backward {
				g.imgX++
			}
		}
	}

	g.view.lane = g.player.Lane
	g.checkStop()
	g.drawActors()
	g.updateEnemy()

	if g.mode == modeDead {
		g.phase = core.PhaseOver
		return g.ticks(1 + g.cfg.Timing.DeathTicks)
	}
	return g.ticks(1)
}

// updateShots moves every projectile and resolves hits on the current
// enemy and on the player.
func (g *Game) updateShots() {
	g.shots.Advance(assets.LevelCols * assets.TileWidth)

	enemy := g.roster.Current()
	g.shots.Each(func(sh *engine.Shot) {
		if enemy != nil &&
			engine.Collides(sh.X, sh.Lane, enemy.X+centre, enemy.Lane, g.cfg.Shots.EnemyTolerance) {
			// a falling enemy still soaks up shots
			sh.Deactivate()
			if enemy.State == engine.Falling {
				return
			}
			g.marks++
			if g.marks >= g.cfg.Enemies.Hits {
				enemy.Enter(engine.Falling, 0)
			} else {
				enemy.State = engine.Hit
			}
			return
		}

		if g.mode == modeDead || g.hiding {
			return
		}
		if engine.Collides(sh.X, sh.Lane, g.player.X+centre, g.player.Lane, g.cfg.Shots.PlayerTolerance) {
			sh.Deactivate()
			g.player.TakeHit(g.cfg.Shots.Damage, 0)
			hp := g.player.Health.Value()
			g.view.addHealth(hp)
			if hp < deathBelow {
				g.player.Kill()
				g.setMode(modeDead)
			}
		}
	})
}

// standing runs the state machine of a player who is not walking. It
// reports whether a ladder climb has started.
func (g *Game) standing(in core.InputFrame) bool {
	g.hiding = false

	hold := false
	switch g.mode {
	case modeCoverRight:
		hold = g.player.Dir == engine.Forward
	case modeCoverLeft:
		hold = g.player.Dir == engine.Backward
	}
	if (g.mode == modeCoverRight || g.mode == modeCoverLeft) && !hold {
		g.walk(g.player.Dir)
	}
	if hold {
		switch {
		case g.cooldown > 0:
			g.cooldown--
		case in.Has(core.ButtonAction):
			g.cooldown = g.cfg.Shots.Cooldown
			g.fire(&g.player.Entity)
		default:
			g.hiding = true
		}
	}

	if g.player.X > g.cfg.Player.MinX && in.Has(core.ButtonLeft) {
		g.walk(engine.Backward)
	}
	if g.player.X < g.cfg.Player.MaxX && in.Has(core.ButtonRight) {
		g.walk(engine.Forward)
	}

	if g.mode == modeLadder && in.Has(core.ButtonAction) {
		g.player.Frame = 0
		g.hiding = false
		return true
	}
	return false
}

// walk starts walking in dir.
func (g *Game) walk(dir engine.Direction) {
	g.player.Dir = dir
	g.player.Frame = 0
	g.hiding = false
	g.setMode(modeWalkStart)
}

// fire spawns a projectile in front of e.
func (g *Game) fire(e *engine.Entity) {
	x := e.X
	if e.Dir == engine.Forward {
		x += assets.SpriteWidth
	}
	g.shots.Spawn(x, e.Lane, e.Dir)
}

// checkStop applies the stop tile under the player's tile boundary.
func (g *Game) checkStop() {
	if g.mode >= modeWalkStart {
		return
	}
	x := g.player.X - stopOffset
	if x < 0 || x%assets.TileWidth != 0 {
		return
	}
	cell := assets.CellAt(g.player.Lane, x)
	if cell.Stop {
		g.setMode(tileMode(cell.Tile))
		g.player.Frame = 0
	}
}

// updateEnemy plays the defeat animation and lets the current enemy fire.
func (g *Game) updateEnemy() {
	if g.roster.Cleared() {
		return
	}

	e := g.roster.Current()
	if e.State == engine.Falling {
		if int(g.tc)%g.cfg.Enemies.DefeatTicks == 0 {
			e.Frame++
			if e.Frame >= assets.ActorDefeat.Frames() {
				g.roster.Defeat()
				g.marks = 0
				g.player.Score.Inc()
			}
		}
		return
	}

	if int(g.tc)%g.cfg.Enemies.FireTicks != 0 || e.Lane != g.player.Lane {
		return
	}
	// closer than AttackRange
	if engine.InRange(e.X, g.player.X+centre, g.cfg.Enemies.AttackRange-1) {
		g.fire(e)
	}
}

// stepClimb shows the next ladder frame. Each half of the climb shows
// LadderFrames frames and then moves the player up a page; the climb ends
// two pages up, or with a win when it started on the top floor.
func (g *Game) stepClimb() time.Duration {
	p := &g.player
	g.view.climb = true
	g.view.climbFrame = g.climb % assets.LadderFrames
	g.view.climbPage = p.Lane
	g.climb++

	if g.climb%assets.LadderFrames != 0 {
		return g.ticks(g.cfg.Timing.LadderTicks)
	}

	if p.Lane == topLane {
		g.won = true
		g.climb = 0
		g.phase = core.PhaseInit
		return g.ticks(g.cfg.Timing.LadderTicks)
	}

	g.view.ladderPage = p.Lane
	g.view.ladderX = g.imgX
	p.Lane--

	if g.climb == 2*assets.LadderFrames {
		g.climb = 0
		g.view.leftLane = p.Lane + laneStep
		g.setMode(modeWait)
	}
	return g.ticks(g.cfg.Timing.LadderTicks)
}

// drawActors records the player pose for Render.
func (g *Game) drawActors() {
	switch {
	case g.mode == modeDead:
		g.view.player = assets.ActorDefeat.Frame(0)
	case g.hiding:
		g.view.player = assets.ActorHiding.Data
	default:
		g.view.player = assets.ActorWalk.Frame(g.player.Frame)
	}
	g.view.actors = true
	if e := g.roster.Current(); e != nil {
		g.view.enemy = assets.ActorWalk.Frame(0)
		if e.State == engine.Falling {
			g.view.enemy = assets.ActorDefeat.Frame(e.Frame)
		}
	}
}

// ticks converts frame ticks to a delay.
func (g *Game) ticks(n int) time.Duration {
	return time.Duration(n*g.cfg.Timing.FrameMS) * time.Millisecond
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.player.Score.Value(),
		Health:   g.player.Health.Value(),
		GameOver: g.phase == core.PhaseOver,
		Won:      g.won,
		Frame:    g.frame,
	}
}
