package engine

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

// Loop drives one game against one display: sample buttons, step, render,
// wait. It owns the game exclusively.
type Loop struct {
	game    registry.Game
	display *oled.Display
	input   core.ButtonReader
	pacer   *Pacer
	logger  *log.Logger

	maxFrames uint64
	frames    uint64
	last      core.StepResult
	observers []func(core.StepResult)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopLogger reports phase changes at debug level.
func WithLoopLogger(l *log.Logger) LoopOption {
	return func(lp *Loop) { lp.logger = l }
}

// WithMaxFrames stops Run after n ticks. Zero means no limit.
func WithMaxFrames(n uint64) LoopOption {
	return func(lp *Loop) { lp.maxFrames = n }
}

// WithPacer replaces the default pacer, which runs at real speed.
func WithPacer(p *Pacer) LoopOption {
	return func(lp *Loop) { lp.pacer = p }
}

// WithObserver calls fn after every tick.
func WithObserver(fn func(core.StepResult)) LoopOption {
	return func(lp *Loop) { lp.observers = append(lp.observers, fn) }
}

// NewLoop creates a loop. The game should already be Reset; the display
// is initialised here.
func NewLoop(g registry.Game, d *oled.Display, in core.ButtonReader, opts ...LoopOption) *Loop {
	l := &Loop{
		game:    g,
		display: d,
		input:   in,
		pacer:   NewPacer(1),
	}
	for _, opt := range opts {
		opt(l)
	}
	d.Init()
	l.last.State = g.State()
	return l
}

// Tick runs one frame.
func (l *Loop) Tick() core.StepResult {
	in := core.Sample(l.input)
	res := l.game.Step(in)
	l.game.Render(l.display)

	if a, ok := l.input.(core.Advancer); ok {
		a.Advance()
	}
	l.frames++

	if res.State.Phase != l.last.State.Phase && l.logger != nil {
		l.logger.Debug("phase change",
			"game", l.game.ID(),
			"from", l.last.State.Phase,
			"to", res.State.Phase,
			"frame", l.frames,
			"score", res.State.Score,
		)
	}
	l.last = res

	for _, fn := range l.observers {
		fn(res)
	}
	return res
}

// Run ticks until ctx is cancelled or the frame limit is reached. The only
// error it returns is the context's.
func (l *Loop) Run(ctx context.Context) error {
	if l.logger != nil {
		l.logger.Info("loop started", "game", l.game.ID(), "scale", l.pacer.Scale(), "max_frames", l.maxFrames)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := l.Tick()
		if l.maxFrames > 0 && l.frames >= l.maxFrames {
			if l.logger != nil {
				l.logger.Info("frame limit reached", "game", l.game.ID(), "frames", l.frames)
			}
			return nil
		}

		if err := l.pacer.Wait(ctx, res.Delay); err != nil {
			return err
		}
	}
}

// Frames returns the number of completed ticks.
func (l *Loop) Frames() uint64 { return l.frames }

// Last returns the result of the most recent tick.
func (l *Loop) Last() core.StepResult { return l.last }

// Display returns the driven display.
func (l *Loop) Display() *oled.Display { return l.display }
