package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityLifecycle(t *testing.T) {
	e := Entity{X: 10, Lane: 2, Dir: Forward}
	require.True(t, e.Active())

	e.Enter(Attacking, 2)
	assert.Equal(t, Attacking, e.State)
	assert.False(t, e.Tick())
	assert.True(t, e.Tick())
	assert.False(t, e.Tick(), "expired timer stays quiet")

	e.Deactivate()
	assert.False(t, e.Active())
	assert.Equal(t, Inactive, e.X)
}

func TestStateAndDirectionStrings(t *testing.T) {
	assert.Equal(t, "ladder", OnLadder.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, Backward, Forward.Reverse())
	assert.Equal(t, "backward", Backward.String())
}

func TestHealthClampsAndDiesOnce(t *testing.T) {
	h := NewHealth(3)
	assert.False(t, h.Damage(2))
	assert.True(t, h.Damage(5))
	assert.Equal(t, 0, h.Value())
	assert.False(t, h.Damage(1), "death is reported once")
	assert.False(t, h.Damage(-1))

	h.Reset()
	assert.Equal(t, 3, h.Value())
	assert.True(t, h.Drain())
	assert.False(t, h.Drain())
}

// Ten single-point hits on ten health: dead on the tenth, not before.
func TestPlayerDiesOnTenthHit(t *testing.T) {
	p := Player{Entity: Entity{X: 43, Lane: 4}, Health: NewHealth(10)}

	for hit := 1; hit <= 10; hit++ {
		died := p.TakeHit(1, 6)
		assert.Equal(t, 10-hit, p.Health.Value())
		if hit < 10 {
			require.False(t, died, "hit %d", hit)
			require.Equal(t, Hit, p.State, "hit %d", hit)
		} else {
			require.True(t, died)
			require.Equal(t, Dead, p.State)
		}
	}

	assert.False(t, p.TakeHit(1, 6), "dead players ignore hits")
	assert.Equal(t, 0, p.Health.Value())
	assert.False(t, p.Alive())
	assert.False(t, p.Kill())
}

func TestHealthNeverIncreasesWithoutReset(t *testing.T) {
	p := Player{Health: NewHealth(6)}
	prev := p.Health.Value()
	for i := 0; i < 10; i++ {
		p.TakeHit(2, 0)
		require.LessOrEqual(t, p.Health.Value(), prev)
		require.GreaterOrEqual(t, p.Health.Value(), 0)
		prev = p.Health.Value()
	}
}

func TestScoreCarry(t *testing.T) {
	s := NewScore(2)
	for i := 0; i < 9; i++ {
		s.Inc()
	}
	assert.Equal(t, 9, s.Digit(0))
	assert.Equal(t, 0, s.Digit(1))

	assert.False(t, s.Inc())
	assert.Equal(t, 0, s.Digit(0))
	assert.Equal(t, 1, s.Digit(1))
	assert.Equal(t, 10, s.Value())
}

func TestScoreWrapsToZero(t *testing.T) {
	s := NewScore(2)
	assert.False(t, s.Add(99))
	assert.Equal(t, 99, s.Value())

	assert.True(t, s.Inc())
	assert.Equal(t, 0, s.Value())
	assert.Equal(t, 0, s.Digit(1))

	s3 := NewScore(3)
	assert.True(t, s3.Add(1001))
	assert.Equal(t, 1, s3.Value())
}

func TestScoreWidthClamped(t *testing.T) {
	assert.Equal(t, 1, NewScore(0).Len())
	assert.Equal(t, MaxDigits, NewScore(9).Len())
	s := NewScore(2)
	assert.Equal(t, 0, s.Digit(5))
}

func TestShotsCapacity(t *testing.T) {
	s := NewShots(MaxShots)
	for i := 0; i < MaxShots; i++ {
		require.True(t, s.Spawn(10+i, 2, Forward))
	}
	assert.False(t, s.Spawn(99, 2, Forward), "full set ignores spawn")
	assert.Equal(t, MaxShots, s.Active())

	// freeing slot 2 makes it the one reused
	s.Each(func(sh *Shot) {
		if sh.X == 12 {
			sh.Deactivate()
		}
	})
	require.True(t, s.Spawn(50, 4, Backward))
	assert.Equal(t, Shot{X: 50, Lane: 4, Dir: Backward}, s.At(2))
	assert.Equal(t, MaxShots, s.Active())

	wide, empty := NewShots(20), NewShots(0)
	assert.Equal(t, MaxShots, wide.Cap())
	assert.Equal(t, 1, empty.Cap())
}

func TestShotsAdvanceExpires(t *testing.T) {
	s := NewShots(3)
	s.Spawn(0, 2, Backward)
	s.Spawn(127, 2, Forward)
	s.Spawn(60, 2, Forward)

	s.Advance(128)
	assert.Equal(t, 1, s.Active())
	assert.Equal(t, 61, s.At(2).X)

	assert.Equal(t, byte(0x02), s.Mask(61, 2, 0x02))
	assert.Equal(t, byte(0), s.Mask(61, 4, 0x02))

	s.Reset()
	assert.Equal(t, 0, s.Active())
}

func TestRosterOrderAndMarker(t *testing.T) {
	r, err := NewRoster(
		Entity{X: 85, Lane: 6, Dir: Backward},
		Entity{X: 101, Lane: 2, Dir: Backward},
		Entity{X: 37, Lane: 4, Dir: Forward},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	var lanes []int
	var current []bool
	r.Each(func(e *Entity, cur bool) {
		lanes = append(lanes, e.Lane)
		current = append(current, cur)
	})
	assert.Equal(t, []int{2, 4, 6}, lanes)
	assert.Equal(t, []bool{false, false, true}, current)
	assert.Equal(t, 85, r.Current().X)

	next := r.Defeat()
	require.NotNil(t, next)
	assert.Equal(t, 4, next.Lane)
	assert.Equal(t, 2, r.Remaining())

	count := 0
	r.Each(func(*Entity, bool) { count++ })
	assert.Equal(t, 2, count, "iteration stops at the marker")

	r.Defeat()
	assert.Nil(t, r.Defeat())
	assert.True(t, r.Cleared())
	assert.Nil(t, r.Defeat())

	r.Reset()
	assert.Equal(t, 3, r.Remaining())
	assert.Equal(t, 85, r.Current().X)
}

func TestRosterCapacity(t *testing.T) {
	_, err := NewRoster(Entity{}, Entity{}, Entity{}, Entity{})
	require.ErrorIs(t, err, ErrRosterFull)
}

func TestShiftRegisterSequence(t *testing.T) {
	r := NewShiftRegister(0)
	// 0 -> 0^43, top bit clear so the taps are folded in
	assert.Equal(t, uint8(43), r.Step())
	assert.Equal(t, uint8(43<<1^43), r.Step())

	r.Seed(0x80)
	assert.Equal(t, uint8(0), r.Step(), "top bit set: plain shift")

	a, b := NewShiftRegister(7), NewShiftRegister(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Step(), b.Step())
	}
}

func TestRotateLeft(t *testing.T) {
	assert.Equal(t, uint8(0xA5), RotateLeft(0xD2))
	assert.Equal(t, uint8(0x01), RotateLeft(0x80))
}

func TestCollisionInclusive(t *testing.T) {
	tests := []struct {
		name                 string
		ax, alane, dx, dlane int
		tol                  int
		expected             bool
	}{
		{"exact", 50, 4, 50, 4, 0, true},
		{"at tolerance", 49, 4, 50, 4, 1, true},
		{"past tolerance", 48, 4, 50, 4, 1, false},
		{"other side at tolerance", 51, 4, 50, 4, 1, true},
		{"other lane", 50, 2, 50, 4, 5, false},
		{"inactive attacker", Inactive, 4, Inactive, 4, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Collides(tc.ax, tc.alane, tc.dx, tc.dlane, tc.tol))
		})
	}
}
