package engine

import "math/bits"

// shiftTaps is folded in whenever the top bit was clear before a shift.
const shiftTaps = 43

// ShiftRegister is the 8-bit feedback generator behind enemy decisions.
// It has no external entropy: the same seed always yields the same sequence.
type ShiftRegister struct {
	v uint8
}

// NewShiftRegister returns a register holding seed.
func NewShiftRegister(seed uint8) ShiftRegister {
	return ShiftRegister{v: seed}
}

// Value returns the current state.
func (r *ShiftRegister) Value() uint8 { return r.v }

// Seed overwrites the state.
func (r *ShiftRegister) Seed(v uint8) { r.v = v }

// Step advances the register and returns the new state.
func (r *ShiftRegister) Step() uint8 {
	h := r.v & 0x80
	r.v <<= 1
	if h == 0 {
		r.v ^= shiftTaps
	}
	return r.v
}

// RotateLeft rotates an 8-bit side selector by one place.
func RotateLeft(v uint8) uint8 {
	return bits.RotateLeft8(v, 1)
}
