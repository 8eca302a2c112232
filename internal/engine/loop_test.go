package engine

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
)

// counterGame draws its frame number into column 0 and goes to the
// playing phase on the first action press.
type counterGame struct {
	state   core.GameState
	presses int
}

func (g *counterGame) ID() string               { return "counter" }
func (g *counterGame) Title() string            { return "Counter" }
func (g *counterGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Phase: core.PhaseTitle} }
func (g *counterGame) State() core.GameState    { return g.state }

func (g *counterGame) Step(in core.InputFrame) core.StepResult {
	g.state.Frame++
	if in.Has(core.ButtonAction) {
		g.presses++
		g.state.Phase = core.PhasePlaying
	}
	return core.StepResult{State: g.state, Delay: time.Millisecond}
}

func (g *counterGame) Render(d *oled.Display) {
	d.SetCursor(0, 0)
	d.SendPixel(byte(g.state.Frame))
}

func TestLoopTickOrder(t *testing.T) {
	ctrl := oled.NewController()
	g := &counterGame{}
	g.Reset(core.DefaultConfig())

	script, err := core.ParseScript("1:action")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	var seen []core.Phase
	loop := NewLoop(g, oled.NewDisplay(ctrl), script,
		WithLoopLogger(logger),
		WithObserver(func(r core.StepResult) { seen = append(seen, r.State.Phase) }),
	)
	require.True(t, ctrl.On(), "NewLoop initialises the display")

	loop.Tick()
	loop.Tick()
	loop.Tick()

	assert.Equal(t, uint64(3), loop.Frames())
	assert.Equal(t, 1, g.presses, "script press lands on tick 1 only")
	assert.Equal(t, []core.Phase{core.PhaseTitle, core.PhasePlaying, core.PhasePlaying}, seen)
	assert.Equal(t, byte(3), ctrl.Byte(0, 0), "render follows step")
	assert.Contains(t, buf.String(), "phase change")
	assert.Equal(t, core.PhasePlaying, loop.Last().State.Phase)
}

func TestLoopRunFrameLimit(t *testing.T) {
	g := &counterGame{}
	g.Reset(core.DefaultConfig())

	loop := NewLoop(g, oled.NewDisplay(oled.NewRecorder(nil)), nil,
		WithPacer(NewPacer(0)),
		WithMaxFrames(25),
	)
	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, uint64(25), loop.Frames())
	assert.Equal(t, uint64(25), g.State().Frame)
}

func TestLoopRunCancelled(t *testing.T) {
	g := &counterGame{}
	g.Reset(core.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(g, oled.NewDisplay(oled.NewRecorder(nil)), nil,
		WithObserver(func(r core.StepResult) {
			if r.State.Frame == 3 {
				cancel()
			}
		}),
	)

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(3), loop.Frames())
}

func TestPacer(t *testing.T) {
	p := NewPacer(0.5)
	assert.Equal(t, 5*time.Millisecond, p.Scaled(10*time.Millisecond))
	assert.Equal(t, time.Duration(0), p.Scaled(-time.Second))

	assert.Equal(t, time.Duration(0), NewPacer(-1).Scaled(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewPacer(1).Wait(ctx, time.Hour), context.Canceled)

	start := time.Now()
	require.NoError(t, NewPacer(1).Wait(context.Background(), 2*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
