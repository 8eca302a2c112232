package engine

import (
	"context"
	"time"
)

// Pacer turns the frame delay a game asks for into wall-clock waiting.
// Scale stretches or shrinks every delay; a scale of 0 never waits, which
// is what headless runs and tests use.
type Pacer struct {
	scale float64
	timer *time.Timer
}

// NewPacer creates a pacer with the given scale factor.
func NewPacer(scale float64) *Pacer {
	if scale < 0 {
		scale = 0
	}
	return &Pacer{scale: scale}
}

// Scale returns the scale factor.
func (p *Pacer) Scale() float64 { return p.scale }

// Scaled returns d adjusted by the scale factor.
func (p *Pacer) Scaled(d time.Duration) time.Duration {
	if p.scale == 0 || d <= 0 {
		return 0
	}
	return time.Duration(float64(d) * p.scale)
}

// Wait blocks for the scaled delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context, d time.Duration) error {
	d = p.Scaled(d)
	if d == 0 {
		return ctx.Err()
	}

	if p.timer == nil {
		p.timer = time.NewTimer(d)
	} else {
		p.timer.Reset(d)
	}

	select {
	case <-ctx.Done():
		p.timer.Stop()
		return ctx.Err()
	case <-p.timer.C:
		return nil
	}
}
