package engine

// Health is a counter clamped at zero.
type Health struct {
	cur int
	max int
}

// NewHealth returns a full health counter.
func NewHealth(max int) Health {
	if max < 0 {
		max = 0
	}
	return Health{cur: max, max: max}
}

// Value returns the remaining health.
func (h Health) Value() int { return h.cur }

// Max returns the starting health.
func (h Health) Max() int { return h.max }

// Zero reports whether health is exhausted.
func (h Health) Zero() bool { return h.cur == 0 }

// Damage subtracts n and reports whether this call took health to zero.
// Damage on an exhausted counter is ignored and never reports death again.
func (h *Health) Damage(n int) bool {
	if h.cur == 0 || n <= 0 {
		return false
	}
	h.cur -= n
	if h.cur <= 0 {
		h.cur = 0
		return true
	}
	return false
}

// Drain empties the counter and reports whether it was not already empty.
func (h *Health) Drain() bool {
	if h.cur == 0 {
		return false
	}
	h.cur = 0
	return true
}

// Reset refills the counter.
func (h *Health) Reset() {
	h.cur = h.max
}

// Player is the controlled entity with its health and score.
type Player struct {
	Entity
	Health Health
	Score  Score
}

// TakeHit applies damage. A surviving player is stunned for stun ticks;
// the hit that reaches zero enters Dead on the same call. Dead players
// ignore further hits.
func (p *Player) TakeHit(damage, stun int) (died bool) {
	if p.State == Dead {
		return false
	}
	if p.Health.Damage(damage) {
		p.Enter(Dead, 0)
		return true
	}
	if stun > 0 {
		p.Enter(Hit, stun)
	}
	return false
}

// Kill drains health and enters Dead unless already dead.
func (p *Player) Kill() bool {
	if p.State == Dead {
		return false
	}
	p.Health.Drain()
	p.Enter(Dead, 0)
	return true
}

// Alive reports whether the player is not in the Dead state.
func (p *Player) Alive() bool {
	return p.State != Dead
}
