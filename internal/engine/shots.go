package engine

// MaxShots is the largest number of projectiles in flight.
const MaxShots = 6

// Shot is one projectile slot.
type Shot struct {
	X    int
	Lane int
	Dir  Direction
}

// Active reports whether the slot holds a projectile.
func (s *Shot) Active() bool {
	return s.X != Inactive
}

// Deactivate frees the slot.
func (s *Shot) Deactivate() {
	s.X = Inactive
}

// Shots is a fixed set of projectile slots.
type Shots struct {
	slots [MaxShots]Shot
	n     int
}

// NewShots returns capacity free slots, clamped to 1..MaxShots.
func NewShots(capacity int) Shots {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > MaxShots {
		capacity = MaxShots
	}
	s := Shots{n: capacity}
	s.Reset()
	return s
}

// Cap returns the slot count.
func (s *Shots) Cap() int { return s.n }

// Reset frees every slot.
func (s *Shots) Reset() {
	for i := range s.slots {
		s.slots[i] = Shot{X: Inactive}
	}
}

// Spawn puts a projectile into the first free slot. When every slot is
// busy nothing happens and Spawn returns false.
func (s *Shots) Spawn(x, lane int, dir Direction) bool {
	for i := 0; i < s.n; i++ {
		if !s.slots[i].Active() {
			s.slots[i] = Shot{X: x, Lane: lane, Dir: dir}
			return true
		}
	}
	return false
}

// Advance moves every projectile one step and frees those that left the
// 0..width-1 span.
func (s *Shots) Advance(width int) {
	for i := 0; i < s.n; i++ {
		sh := &s.slots[i]
		if !sh.Active() {
			continue
		}
		sh.X += int(sh.Dir)
		if sh.X < 0 || sh.X >= width {
			sh.Deactivate()
		}
	}
}

// Active returns the number of projectiles in flight.
func (s *Shots) Active() int {
	n := 0
	for i := 0; i < s.n; i++ {
		if s.slots[i].Active() {
			n++
		}
	}
	return n
}

// At returns slot i.
func (s *Shots) At(i int) Shot {
	return s.slots[i]
}

// Each calls fn for every projectile in flight, in slot order.
func (s *Shots) Each(fn func(sh *Shot)) {
	for i := 0; i < s.n; i++ {
		if s.slots[i].Active() {
			fn(&s.slots[i])
		}
	}
}

// Mask returns the pixel bits to OR into column x of lane when a projectile
// sits there, 0 otherwise.
func (s *Shots) Mask(x, lane int, bits byte) byte {
	for i := 0; i < s.n; i++ {
		if sh := &s.slots[i]; sh.X == x && sh.Lane == lane {
			return bits
		}
	}
	return 0
}
