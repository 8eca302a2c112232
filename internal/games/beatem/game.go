// Package beatem implements a one-button street fight. Opponents walk in
// from the right one at a time; a press punches, a second press while the
// punch is still out is a kick that floors the opponent.
package beatem

import (
	"time"

	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

// Screen layout.
const (
	statusPage  = 0
	skylinePage = 2
	groundPage  = 5
	titleX      = 58
	scoreWidth  = 4 // 3 font columns and a gap
	arenaWidth  = 15
	punchLead   = 3 // punch pose stays up while the counter is above this
	enemyReach  = 2 // enemy punch pose while its counter is above this
)

// faller is who is playing the fall animation.
type faller uint8

const (
	nobody faller = iota
	enemyFalls
	playerFalls
)

// Game implements the fighting game logic.
type Game struct {
	cfg     config.BeatemConfig
	runtime core.RuntimeConfig
	phase   core.Phase
	frame   uint64

	player      engine.Player
	enemy       engine.Entity
	enemyHealth engine.Health
	rnd         engine.ShiftRegister

	walk       int  // approach counter, drives walking frames and scrolling
	punch      int  // player punch counter
	prevAction bool // action level at the last sampled fight frame
	skyline    int  // background scroll offset, 0..127

	falling   faller
	fallFrame int

	view view
}

// view is what Render has to put on the panel for the current frame.
type view struct {
	full       bool // redraw everything
	skyline    bool // background offset changed
	fighter    []byte
	enemy      []byte
	enemyX     int
	fallSprite []byte
	fallX      int
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
	registry.Register("beatem", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "beatem"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Beat 'em"
}

// Buttons reports the buttons the game reads.
func (g *Game) Buttons() core.Button {
	return core.ButtonAction
}

// Reset loads the configuration and puts the game into PhaseInit.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBeatem(configPath)
	if err != nil {
		cfg = config.DefaultBeatemConfig()
	}
	g.cfg = cfg

	g.rnd = engine.NewShiftRegister(uint8(runtime.Seed))
	g.phase = core.PhaseInit
	g.frame = 0
}

// initialise rebuilds the whole fixed state block.
func (g *Game) initialise() {
	g.player = engine.Player{
		Entity: engine.Entity{X: g.cfg.Player.X, Lane: g.cfg.Player.Lane, State: engine.Walking, Dir: engine.Forward},
		Health: engine.NewHealth(g.cfg.Player.Health),
		Score:  engine.NewScore(g.cfg.Score.Digits),
	}
	g.enemyHealth = engine.NewHealth(g.cfg.Enemy.Health)
	g.spawnEnemy()
	g.skyline = 0
	g.falling = nobody
}

// spawnEnemy brings a fresh opponent in from the right.
func (g *Game) spawnEnemy() {
	g.enemy = engine.Entity{X: g.cfg.Enemy.SpawnX, Lane: g.cfg.Player.Lane, State: engine.Walking, Dir: engine.Backward}
	g.enemyHealth.Reset()
	g.walk = 0
	g.punch = 0
	g.prevAction = false
	if g.player.Alive() {
		g.player.Enter(engine.Walking, 0)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	delay := g.ticks(1)

	switch g.phase {
	case core.PhaseInit:
		g.initialise()
		g.phase = core.PhaseTitle
		g.view = view{full: true}

	case core.PhaseTitle:
		g.view = view{}
		if in.Has(core.ButtonAction) {
			g.phase = core.PhasePlaying
			g.view = view{full: true, skyline: true}
			g.updateSprites()
		}

	case core.PhasePlaying:
		g.view = view{}
		if g.falling != nobody {
			delay = g.stepFall()
			break
		}
		if g.stepFight(in) {
			delay = g.stepFall()
		}

	case core.PhaseOver:
		g.view = view{}
		delay = g.stepFall()
	}

	return core.StepResult{State: g.State(), Delay: delay}
}

// stepFight runs one frame of approach or exchange. It reports whether a
// kick floored the opponent, whose fall starts on this very frame.
func (g *Game) stepFight(in core.InputFrame) bool {
	if g.enemy.X > g.cfg.Enemy.FightX {
		g.walk++
		if g.walk&1 == 1 {
			g.enemy.X--
			if g.walk&6 == 6 {
				g.skyline = (g.skyline + 1) & 0x7f
				g.view.skyline = true
			}
		}
		if g.enemy.X == g.cfg.Enemy.FightX {
			g.enemy.Enter(engine.Idle, 0)
			g.player.Enter(engine.Idle, 0)
		}
	} else if g.enemy.Timer == 0 {
		action := in.Has(core.ButtonAction)
		pressed := action && !g.prevAction
		g.prevAction = action

		switch {
		case pressed && g.punch == 0:
			g.punch = g.cfg.Player.AttackFrames
			g.player.Enter(engine.Attacking, 0)
		case pressed:
			return g.kick()
		default:
			if int(g.rnd.Value()) < g.cfg.Enemy.AttackBelow {
				g.enemy.Enter(engine.Attacking, g.cfg.Player.HitFrames)
				if g.player.TakeHit(g.cfg.Damage.Enemy, g.cfg.Player.HitFrames) {
					g.startFall(playerFalls)
				}
			}
			g.rnd.Step()
		}
	}

	g.updateSprites()
	return false
}

// updateSprites advances the per-frame counters and picks this frame's poses.
func (g *Game) updateSprites() {
	switch {
	case g.enemy.Timer > 0:
		// the stun runs out together with the enemy's punch
		g.enemy.Tick()
		g.player.Tick()
		g.view.fighter = assets.FighterHitted.Data
	case g.punch > punchLead:
		g.view.fighter = assets.FighterPunch.Data
	default:
		g.view.fighter = walkFrame(g.walk)
	}

	if g.enemy.Timer > enemyReach {
		g.view.enemy = assets.EnemyPunch.Data
		g.view.enemyX = g.cfg.Enemy.FightX - 1
		return
	}

	g.view.enemyX = g.enemy.X
	if g.punch > 0 {
		g.punch--
		g.enemy.State = engine.Hit
		g.view.enemy = assets.EnemyHitted.Data
		if g.punch == 0 {
			g.player.Enter(engine.Idle, 0)
			if g.enemyHealth.Damage(g.cfg.Damage.Punch) {
				g.startFall(enemyFalls)
			}
		}
		return
	}

	g.view.enemy = assets.EnemyStay.Data
	if g.enemy.State != engine.Walking {
		g.enemy.State = engine.Idle
	}
	if g.player.State == engine.Hit && g.player.Timer == 0 {
		g.player.Enter(engine.Idle, 0)
	}
}

// kick hits with the kick damage and reports whether the opponent went down.
func (g *Game) kick() bool {
	g.punch = 0
	g.view.fighter = assets.FighterKick.Data
	g.view.enemy = nil
	g.player.Enter(engine.Attacking, 0)
	if g.enemyHealth.Damage(g.cfg.Damage.Kick) {
		g.startFall(enemyFalls)
		return true
	}
	return false
}

// startFall begins the three-frame fall of the player or the opponent.
func (g *Game) startFall(who faller) {
	g.falling = who
	g.fallFrame = 0
	if who == playerFalls {
		g.phase = core.PhaseOver
		return
	}
	g.enemy.Enter(engine.Falling, 0)
}

// stepFall shows the next fall frame and returns how long it stays up. The
// step after the last frame respawns the opponent or goes back to Init.
func (g *Game) stepFall() time.Duration {
	sprite, x := assets.EnemyFall, g.cfg.Enemy.FightX
	if g.falling == playerFalls {
		sprite, x = assets.FighterFall, g.cfg.Player.X
	}

	if g.fallFrame >= sprite.Frames() {
		who := g.falling
		g.falling = nobody
		if who == playerFalls {
			g.phase = core.PhaseInit
			return g.ticks(1)
		}
		g.player.Score.Inc()
		g.spawnEnemy()
		g.updateSprites()
		return g.ticks(1)
	}

	g.view.fallSprite = sprite.Frame(g.fallFrame)
	g.view.fallX = x
	g.fallFrame++

	d := g.ticks(g.cfg.Timing.FallFrameTicks)
	if g.fallFrame == sprite.Frames() {
		d += g.ticks(g.cfg.Timing.FallPauseTicks)
	}
	return d
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
		Frame:    g.frame,
	}
}

// Player returns the fighter.
func (g *Game) Player() engine.Player {
	return g.player
}

// Enemy returns the current opponent and its remaining health.
func (g *Game) Enemy() (engine.Entity, int) {
	return g.enemy, g.enemyHealth.Value()
}
