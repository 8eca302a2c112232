package racing

import (
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
	none  = core.NewInputFrame()
	press = core.NewInputFrame(core.ButtonAction)
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, Speed: 1})
	g.cfg = config.DefaultRacingConfig()
	g.Step(none)
	require.Equal(t, core.PhaseTitle, g.State().Phase)
	g.Step(none)
	require.Equal(t, core.PhaseTitle, g.State().Phase)
	g.Step(press)
	require.Equal(t, core.PhasePlaying, g.State().Phase)
	return g
}

func run(g *Game, n int, in core.InputFrame) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(in)
	}
	return res
}

func TestCarWaitsAtStopUntilHeld(t *testing.T) {
	g := newGame(t, 0)
	run(g, 5, none)
	assert.Equal(t, 46, g.car.X)

	g.Step(press)
	assert.Equal(t, 46, g.car.X, "turning takes the frame")
	assert.Equal(t, engine.Forward, g.car.Dir)

	run(g, 24, none)
	assert.Equal(t, 70, g.car.X)
	run(g, 3, none)
	assert.Equal(t, 70, g.car.X, "parked at the right stop")

	g.Step(press)
	g.Step(none)
	assert.Equal(t, 69, g.car.X)
}

func TestHeldButtonKeepsSwinging(t *testing.T) {
	g := newGame(t, 0)
	run(g, 25, press)
	assert.Equal(t, 70, g.car.X)
	g.Step(press)
	assert.Equal(t, 70, g.car.X)
	assert.Equal(t, engine.Backward, g.car.Dir)
}

func TestBarrierCycle(t *testing.T) {
	g := newGame(t, 0)

	run(g, 32, none)
	assert.Equal(t, 64, g.barrier)
	run(g, 16, none)
	assert.Equal(t, 96, g.barrier)
	run(g, 20, none)
	assert.Equal(t, 176, g.barrier)

	res := g.Step(none)
	s := g.Snapshot()
	assert.Equal(t, 32, s.Barrier)
	assert.Equal(t, uint8(0xA5), s.Side)
	assert.Equal(t, 29, s.FrameMS)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 29*time.Millisecond, res.Delay)
	assert.False(t, s.Crashed, "first barrier is on the right")
}

func TestCrashOnBarrierSide(t *testing.T) {
	g := newGame(t, 0)
	run(g, 69, none)
	require.Equal(t, 1, g.State().Score)

	res := run(g, 63, none)
	require.Equal(t, core.PhasePlaying, res.State.Phase)
	assert.Equal(t, 156, g.barrier)

	res = g.Step(none)
	assert.True(t, g.Snapshot().Crashed)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 2500*time.Millisecond, res.Delay)

	g.Step(none)
	assert.Equal(t, core.PhaseInit, g.State().Phase)
	g.Step(none)
	assert.Equal(t, core.PhaseTitle, g.State().Phase)
	assert.Equal(t, 0, g.State().Score)
}

func TestCrashRule(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		side    uint8
		barrier int
		want    bool
	}{
		{"left car, left barrier", 46, 0x01, 153, true},
		{"barrier not yet close", 46, 0x01, 152, false},
		{"left car, right barrier", 46, 0x00, 160, false},
		{"right car, right barrier", 70, 0x00, 160, true},
		{"right car, left barrier", 70, 0x01, 160, false},
		{"centre is safe", 58, 0x01, 176, false},
		{"left side boundary", 54, 0x01, 176, false},
		{"just right of centre", 63, 0x00, 176, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 0)
			g.car.X = tc.x
			g.side = tc.side
			g.barrier = tc.barrier
			assert.Equal(t, tc.want, g.crashed())
		})
	}
}

func TestFrameTimeFloor(t *testing.T) {
	g := newGame(t, 0)
	g.frameMS = g.cfg.Timing.MinFrameMS
	g.barrier = g.cfg.Barrier.Step4Until

	res := g.Step(none)
	assert.Equal(t, 1, g.frameMS)
	assert.Equal(t, time.Millisecond, res.Delay)
	assert.Equal(t, 1, g.State().Score)
}

func TestSeedPicksSide(t *testing.T) {
	g := newGame(t, 1)
	assert.Equal(t, uint8(1), g.side)

	g = newGame(t, 0)
	assert.Equal(t, uint8(0xD2), g.side)

	g = newGame(t, 0x1234)
	assert.Equal(t, uint8(0x12^0x34), g.side, "every seed byte counts")

	// rotation fixed points keep the configured seed
	for _, seed := range []int64{0xFF, 0xFFFF, 0xF0F, -1} {
		g = newGame(t, seed)
		assert.Equal(t, uint8(0xD2), g.side, "seed %#x", seed)
	}
}

func TestTimeSeedsMixSides(t *testing.T) {
	for _, seed := range []int64{0x100, 0xFF, 1760000000123456789} {
		v := newGame(t, seed).side
		left := 0
		for i := 0; i < 8; i++ {
			v = engine.RotateLeft(v)
			if v&1 == 0 {
				left++
			}
		}
		assert.NotContains(t, []int{0, 8}, left, "seed %d", seed)
	}
}

func TestRenderTitleAndRoad(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := New()
	g.Reset(core.RuntimeConfig{})
	g.cfg = config.DefaultRacingConfig()

	g.Step(none)
	g.Render(d)
	assert.Equal(t, assets.GoText.Data, ctrl.Page(titlePage)[titleX:titleX+len(assets.GoText.Data)])

	g.Step(press)
	g.Render(d)
	for c := 0; c < oled.Width-1; c++ {
		require.Equal(t, byte(horizon), ctrl.Byte(0, c), "column %d", c)
	}
	assert.Equal(t, byte(0), ctrl.Byte(0, 127))
	assert.Equal(t, byte(0), ctrl.Byte(titlePage, titleX), "title cleared")

	edge := assets.RoadEdge.Data
	assert.Equal(t, assets.Reverse(edge), ctrl.Page(5)[40:44])
	assert.Equal(t, assets.Reverse(edge), ctrl.Page(1)[56:60])
	assert.Equal(t, edge, ctrl.Page(1)[68:72])
	assert.Equal(t, edge, ctrl.Page(5)[84:88])
}

func TestRenderFrame(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := newGame(t, 0)
	g.Render(d)
	g.Step(none)
	g.Render(d)

	assert.Equal(t, byte(0x4A), ctrl.Byte(2, 64))
	assert.Equal(t, byte(0x33), ctrl.Byte(3, 64))
	assert.Equal(t, byte(0x33), ctrl.Byte(5, 64))
	assert.Equal(t, byte(0), ctrl.Byte(6, 64))

	assert.Equal(t, assets.CarSide.Data, ctrl.Page(5)[46:58])

	// index 33: one byte at page 1, right of the centre
	assert.Equal(t, byte(0x01), ctrl.Byte(1, 66))
	assert.Equal(t, byte(0), ctrl.Byte(1, 67))

	assert.Equal(t, assets.Reverse(assets.ScoreLabel.Data), ctrl.Page(7)[51:68])
	zero := assets.WideDigits[0]
	assert.Equal(t, []byte{zero[0], zero[1], 0, zero[0], zero[1], 0, zero[0], zero[1], 0}, ctrl.Page(7)[68:77])

	g.Step(none)
	g.Render(d)
	assert.Equal(t, byte(0x55), ctrl.Byte(2, 64), "centre line scrolls")
}

func TestRenderMirroredCarAndCrash(t *testing.T) {
	ctrl := oled.NewController()
	d := oled.NewDisplay(ctrl)
	d.Init()

	g := newGame(t, 0)
	g.Render(d)
	g.car.X = 70
	g.car.Dir = engine.Forward
	g.carMax = g.cfg.Car.MaxOffset
	g.Step(none)
	g.Render(d)
	assert.Equal(t, assets.Reverse(assets.CarSide.Data), ctrl.Page(5)[70:82])

	g.barrier = 160
	g.Step(none)
	g.Render(d)
	assert.Equal(t, assets.CarCrash.Data, ctrl.Page(5)[70:82])
}

func TestDeterministicReplay(t *testing.T) {
	play := func() (Snapshot, [oled.Pages][oled.Width]byte) {
		in, err := core.ParseScript("1:action,40-45:action,120:action,150-160:action")
		require.NoError(t, err)

		g := New()
		g.Reset(core.RuntimeConfig{Seed: 3})
		ctrl := oled.NewController()
		loop := engine.NewLoop(g, oled.NewDisplay(ctrl), in, engine.WithPacer(engine.NewPacer(0)))
		for i := 0; i < 300; i++ {
			loop.Tick()
		}
		return g.Snapshot(), ctrl.Frame()
	}

	s1, f1 := play()
	s2, f2 := play()
	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
}
