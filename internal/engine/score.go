package engine

// MaxDigits is the widest score any game shows.
const MaxDigits = 4

// Score is a fixed-width base-10 counter. Digit 0 is the least significant.
// Carrying out of the top digit resets the whole score to zero.
type Score struct {
	digits [MaxDigits]uint8
	n      int
}

// NewScore returns a zero score of n digits, clamped to 1..MaxDigits.
func NewScore(n int) Score {
	if n < 1 {
		n = 1
	}
	if n > MaxDigits {
		n = MaxDigits
	}
	return Score{n: n}
}

// Len returns the number of digits.
func (s Score) Len() int { return s.n }

// Digit returns digit i, 0 being the rightmost.
func (s Score) Digit(i int) int {
	if i < 0 || i >= s.n {
		return 0
	}
	return int(s.digits[i])
}

// Value returns the score as an integer.
func (s Score) Value() int {
	v := 0
	for i := s.n - 1; i >= 0; i-- {
		v = v*10 + int(s.digits[i])
	}
	return v
}

// Inc adds one point and reports whether the score wrapped to zero.
func (s *Score) Inc() bool {
	for i := 0; i < s.n; i++ {
		s.digits[i]++
		if s.digits[i] < 10 {
			return false
		}
		s.digits[i] = 0
	}
	s.Reset()
	return true
}

// Add adds points one at a time and reports whether any of them wrapped.
func (s *Score) Add(points int) bool {
	wrapped := false
	for ; points > 0; points-- {
		if s.Inc() {
			wrapped = true
		}
	}
	return wrapped
}

// Reset zeroes every digit.
func (s *Score) Reset() {
	s.digits = [MaxDigits]uint8{}
}
