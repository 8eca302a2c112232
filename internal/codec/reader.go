package codec

import "fmt"

// Reader decodes a block one byte at a time, so renderers can stream tile
// data to the display without an intermediate buffer.
type Reader struct {
	a    *Alphabet
	src  []byte
	pos  int
	acc  uint16
	n    uint
	left int
	err  error
}

// NewReader returns a streaming decoder for blk.
func (a *Alphabet) NewReader(blk Block) *Reader {
	return &Reader{a: a, src: blk.Packed, left: blk.Len}
}

// Reset rewinds r onto another block without allocating.
func (r *Reader) Reset(blk Block) {
	*r = Reader{a: r.a, src: blk.Packed, left: blk.Len}
}

// Remaining returns how many bytes are still to be decoded.
func (r *Reader) Remaining() int {
	return r.left
}

// Err returns the first decoding error, if any.
func (r *Reader) Err() error {
	return r.err
}

// Next returns the next decoded byte. It returns false once the block is
// exhausted or the stream turned out to be corrupt.
func (r *Reader) Next() (byte, bool) {
	if r.left == 0 || r.err != nil {
		return 0, false
	}

	r.fill()

	if r.n == 0 {
		r.err = fmt.Errorf("%w: %d bytes missing", ErrTruncated, r.left)
		return 0, false
	}

	if r.acc&1 == 0 {
		r.acc >>= shortLen
		r.n -= shortLen
		r.left--
		return r.a.symbols[0], true
	}

	if r.n < longLen {
		r.err = fmt.Errorf("%w: %d bytes missing", ErrTruncated, r.left)
		return 0, false
	}

	i := int(r.acc>>1&0x0f) + 1
	if i >= r.a.size {
		r.err = fmt.Errorf("%w: index %d, alphabet has %d symbols", ErrBadIndex, i, r.a.size)
		return 0, false
	}

	r.acc >>= longLen
	r.n -= longLen
	r.left--
	return r.a.symbols[i], true
}

// fill tops the accumulator up to at least 9 bits while input remains.
func (r *Reader) fill() {
	for r.n <= 8 && r.pos < len(r.src) {
		r.acc |= uint16(r.src[r.pos]) << r.n
		r.n += 8
		r.pos++
	}
}
