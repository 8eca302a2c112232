package platformer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/config"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/engine"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
)

var (
	none   = core.NewInputFrame()
	action = core.NewInputFrame(core.ButtonAction)
	left   = core.NewInputFrame(core.ButtonLeft)
	right  = core.NewInputFrame(core.ButtonRight)
)

// newGame returns a game on its first playing frame.
func newGame(t *testing.T, tune func(*config.PlatformerConfig)) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, Speed: 1})
	g.cfg = config.DefaultPlatformerConfig()
	if tune != nil {
		tune(&g.cfg)
	}
	g.Step(none)
	require.Equal(t, core.PhaseTitle, g.State().Phase)
	g.Step(action)
	require.Equal(t, core.PhasePlaying, g.State().Phase)
	return g
}

// place puts the player somewhere on the map in the given mode.
func place(g *Game, lane, x int, m mode, dir engine.Direction) {
	g.player.Lane = lane
	g.player.X = x
	g.player.Dir = dir
	g.imgX = x
	g.setMode(m)
	g.tc = 0
}

func run(g *Game, n int, in core.InputFrame) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(in)
	}
	return res
}

func harmlessEnemies(c *config.PlatformerConfig) { c.Enemies.AttackRange = 1 }

func TestStartState(t *testing.T) {
	g := newGame(t, nil)
	s := g.Snapshot()
	assert.Equal(t, 6, s.Lane)
	assert.Equal(t, 6, s.X)
	assert.Equal(t, engine.Walking, s.State)
	assert.Equal(t, engine.Forward, s.Dir)
	assert.Equal(t, 6, s.Health)
	assert.Equal(t, 3, s.Enemies)
	assert.Equal(t, 0, s.Shots)
}

func TestWalkToCover(t *testing.T) {
	g := newGame(t, nil)

	steps := 0
	for g.mode != modeCoverRight && steps < 300 {
		g.Step(none)
		steps++
	}
	// one pixel every 4 ticks from 6 to the cover boundary at 37
	assert.Equal(t, 124, steps)
	assert.Equal(t, 37, g.player.X)
	assert.Equal(t, engine.AtObstacleRight, g.player.State)

	g.Step(none)
	assert.True(t, g.Snapshot().Hiding, "idle at cover facing the enemy hides")
}

func TestStopTiles(t *testing.T) {
	tests := []struct {
		name string
		lane int
		x    int
		want mode
	}{
		{"cover right", 6, 37, modeCoverRight},
		{"cover left", 6, 53, modeCoverLeft},
		{"ladder", 6, 101, modeLadder},
		{"wall", 6, 117, modeIdle},
		{"empty stop", 4, 5, modeIdle},
		{"top ladder", 2, 117, modeLadder},
		{"open ladder", 4, 101, modeWalk},
		{"between tiles", 6, 40, modeWalk},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, nil)
			place(g, tc.lane, tc.x, modeWalk, engine.Forward)
			g.Step(none)
			assert.Equal(t, tc.want, g.mode)
			assert.Equal(t, tc.x, g.player.X, "no step on the first tick")
		})
	}
}

func TestCoverFacingAwayResumesWalking(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 37, modeCoverRight, engine.Backward)
	g.Step(none)
	assert.Equal(t, modeWalkStart, g.mode)
	assert.False(t, g.hiding)

	run(g, 3, none)
	assert.Equal(t, 36, g.player.X)
	assert.Equal(t, 37, g.imgX, "backward sprite sits one column right")
}

func TestWalkBounds(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 16, modeIdle, engine.Forward)
	g.Step(left)
	assert.Equal(t, modeIdle, g.mode, "left edge")

	g.Step(right)
	assert.Equal(t, modeWalkStart, g.mode)
	assert.Equal(t, engine.Forward, g.player.Dir)

	place(g, 6, 112, modeIdle, engine.Forward)
	g.Step(right)
	assert.Equal(t, modeIdle, g.mode, "right edge")
	g.Step(left)
	assert.Equal(t, modeWalkStart, g.mode)
	assert.Equal(t, engine.Backward, g.player.Dir)
}

func TestHidingBlocksShots(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 37, modeCoverRight, engine.Forward)
	g.shots.Spawn(30, 6, engine.Forward)

	run(g, 20, none)
	assert.Equal(t, 6, g.player.Health.Value())
	assert.True(t, g.hiding)
	assert.Equal(t, 50, g.shots.At(0).X, "shot passed through")
}

func TestShotHitsPlayerAtTolerance(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 60, modeIdle, engine.Forward)
	g.shots.Spawn(55, 6, engine.Forward)

	run(g, 6, none)
	assert.Equal(t, 6, g.player.Health.Value())
	g.Step(none)
	assert.Equal(t, 4, g.player.Health.Value(), "hit one column short of the centre")
	assert.Equal(t, 0, g.shots.Active())
}

func TestShotOnOtherLaneMisses(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 60, modeIdle, engine.Forward)
	g.shots.Spawn(55, 4, engine.Forward)

	run(g, 12, none)
	assert.Equal(t, 6, g.player.Health.Value())
}

func TestThirdHitKills(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 60, modeIdle, engine.Forward)
	g.shots.Spawn(55, 6, engine.Forward)
	g.shots.Spawn(53, 6, engine.Forward)
	g.shots.Spawn(51, 6, engine.Forward)

	var res core.StepResult
	for i := 0; i < 11; i++ {
		res = g.Step(none)
		if i < 10 {
			require.Equal(t, core.PhasePlaying, res.State.Phase, "step %d", i)
		}
	}
	assert.Equal(t, 0, g.player.Health.Value())
	assert.Equal(t, engine.Dead, g.player.State)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 41*13*time.Millisecond, res.Delay)

	g.Step(none)
	assert.Equal(t, core.PhaseInit, g.State().Phase)
	g.Step(none)
	assert.Equal(t, core.PhaseTitle, g.State().Phase)
	assert.Equal(t, 6, g.player.Health.Value())
}

func TestShootingDefeatsEnemy(t *testing.T) {
	g := newGame(t, harmlessEnemies)
	run(g, 124, none)
	require.Equal(t, modeCoverRight, g.mode)

	// first shot leaves at 42 on step 125 and reaches the centre 88 on step 171
	run(g, 47, action)
	s := g.Snapshot()
	assert.Equal(t, 1, s.EnemyHits)
	assert.Equal(t, engine.Hit, g.roster.Current().State)

	// cooldown 16: the second shot left on step 142 and lands on step 188
	run(g, 17, action)
	assert.Equal(t, engine.Falling, g.roster.Current().State)
	assert.Equal(t, 3, g.Snapshot().Enemies)

	// three defeat frames, one every 8 ticks
	run(g, 20, none)
	s = g.Snapshot()
	assert.Equal(t, 2, s.Enemies)
	assert.Equal(t, 0, s.EnemyHits)
	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, 4, g.roster.Current().Lane)
}

func TestFallingEnemyAbsorbsShots(t *testing.T) {
	g := newGame(t, harmlessEnemies)
	place(g, 4, 20, modeIdle, engine.Forward)
	e := g.roster.Current()
	require.Equal(t, 6, e.Lane)
	e.Enter(engine.Falling, 0)
	g.marks = g.cfg.Enemies.Hits
	g.shots.Spawn(e.X+centre-1, e.Lane, engine.Forward)

	g.Step(none)
	assert.Equal(t, 0, g.shots.Active(), "shot stopped at the falling enemy")
	assert.Equal(t, g.cfg.Enemies.Hits, g.marks)
	assert.Equal(t, engine.Falling, e.State)
	assert.Equal(t, 0, e.Frame, "defeat animation not restarted")
}

func TestClearedRosterHoldsFire(t *testing.T) {
	g := newGame(t, nil)
	for !g.roster.Cleared() {
		g.roster.Defeat()
	}
	place(g, 6, 60, modeIdle, engine.Forward)
	g.tc = 31

	g.Step(none)
	assert.Equal(t, 0, g.shots.Active())
	assert.Equal(t, 0, g.Snapshot().Enemies)
}

func TestOversizedTickPeriodFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  fire_ticks: 256\n"), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	assert.Equal(t, config.DefaultPlatformerConfig(), g.cfg)

	g.Step(none)
	g.Step(action)
	assert.NotPanics(t, func() { run(g, 300, none) })
}

func TestEnemyFiresInRange(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 60, modeIdle, engine.Forward)
	g.tc = 31

	g.Step(none)
	require.Equal(t, 1, g.shots.Active())
	sh := g.shots.At(0)
	assert.Equal(t, 85, sh.X, "backward enemy fires from its left column")
	assert.Equal(t, engine.Backward, sh.Dir)
	assert.Equal(t, 6, sh.Lane)

	g = newGame(t, nil)
	place(g, 4, 60, modeIdle, engine.Forward)
	g.tc = 31
	g.Step(none)
	assert.Equal(t, 0, g.shots.Active(), "enemy on another floor holds fire")
}

func TestLadderClimb(t *testing.T) {
	g := newGame(t, nil)
	place(g, 6, 101, modeLadder, engine.Forward)

	res := g.Step(action)
	assert.Equal(t, 14*13*time.Millisecond, res.Delay)
	assert.True(t, g.Snapshot().Climbing)

	run(g, 3, none)
	assert.Equal(t, 5, g.player.Lane)
	run(g, 4, none)
	assert.Equal(t, 4, g.player.Lane)
	assert.False(t, g.Snapshot().Climbing)
	assert.Equal(t, modeWait, g.mode)

	g.Step(none)
	assert.Equal(t, modeWait, g.mode, "open ladder top does not stop")
	g.Step(right)
	assert.Equal(t, modeWalkStart, g.mode)
}

func TestClimbFromTopWins(t *testing.T) {
	g := newGame(t, nil)
	place(g, 2, 117, modeLadder, engine.Forward)

	g.Step(action)
	run(g, 3, none)
	assert.Equal(t, core.PhaseInit, g.State().Phase)
	assert.True(t, g.State().Won)

	g.Step(none)
	assert.Equal(t, core.PhaseTitle, g.State().Phase)
}

func decode(t *testing.T, tile assets.Tile) []byte {
	t.Helper()
	raw, err := assets.TileAlphabet.Decode(assets.TileBlock(tile))
	require.NoError(t, err)
	return raw
}

func TestRenderTitleAndLevel(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.cfg = config.DefaultPlatformerConfig()

	g.Step(none)
	g.Render(d)
	title, err := assets.TileAlphabet.Decode(assets.TitleBlock())
	require.NoError(t, err)
	assert.Equal(t, title, ctrl.Page(titlePage)[titleX:titleX+assets.TitleWidth])
	assert.Equal(t, byte(0), ctrl.Byte(0, 0))
	assert.Equal(t, byte(0), ctrl.Byte(7, 127))

	g.Step(action)
	g.Render(d)
	assert.Equal(t, decode(t, assets.TileHealthLabel), ctrl.Page(0)[:16])
	assert.Equal(t, decode(t, assets.TileLadderBricks), ctrl.Page(1)[112:128])
	assert.Equal(t, decode(t, assets.TileBricks), ctrl.Page(1)[0:16])
	assert.Equal(t, decode(t, assets.TileLadder), ctrl.Page(2)[16:32])

	assert.Equal(t, assets.ActorWalk.Frame(0), ctrl.Page(6)[6:11])
	assert.Equal(t, assets.Reverse(assets.ActorWalk.Frame(0)), ctrl.Page(6)[85:90], "enemy faces backward")
	assert.Equal(t, assets.ActorWalk.Frame(0), ctrl.Page(4)[37:42])
}

func TestRenderShotsAndHealth(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := newGame(t, nil)
	g.Render(d)

	place(g, 6, 60, modeIdle, engine.Forward)
	g.shots.Spawn(50, 6, engine.Forward)
	g.Step(none)
	g.Render(d)
	assert.Equal(t, byte(0x78|shotBits), ctrl.Byte(6, 51))
	assert.Equal(t, byte(0), ctrl.Byte(6, 52))

	run(g, 11, none)
	g.Render(d)
	require.Equal(t, 4, g.player.Health.Value())
	assert.Equal(t, byte(hpLost), ctrl.Byte(hpPage, hpX+4))
	assert.Equal(t, byte(hpLost), ctrl.Byte(hpPage, hpX+5))
}

func TestRenderClimb(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := newGame(t, nil)
	place(g, 6, 101, modeLadder, engine.Forward)
	g.Step(action)
	g.Render(d)
	assert.Equal(t, assets.ActorLadder.Frame(0), ctrl.Page(5)[101:106])
	assert.Equal(t, assets.ActorLadder.Frame(1), ctrl.Page(6)[101:106])

	run(g, 3, none)
	g.Render(d)
	assert.Equal(t, assets.LadderSingle.Data, ctrl.Page(6)[101:106])
}

func TestDeterministicReplay(t *testing.T) {
	script := "1:action,130-200:action,260-300:left,400:right,450-470:action"

	play := func() (Snapshot, [oled.Pages][oled.Width]byte) {
		in, err := core.ParseScript(script)
		require.NoError(t, err)

		g := New()
		g.Reset(core.RuntimeConfig{Seed: 7})
		ctrl := oled.NewController()
		loop := engine.NewLoop(g, oled.NewDisplay(ctrl), in, engine.WithPacer(engine.NewPacer(0)))
		for i := 0; i < 600; i++ {
			loop.Tick()
		}
		return g.Snapshot(), ctrl.Frame()
	}

	s1, f1 := play()
	s2, f2 := play()
	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
}
