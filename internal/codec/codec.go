// Package codec implements the bit-packed asset store used for tile and
// sprite data.
//
// Every encoded block draws its bytes from a small alphabet of at most 16
// symbols ordered by descending frequency. The most frequent symbol is
// stored as a single 0 bit; each of the next 15 symbols is stored as a 1 bit
// followed by its 4-bit table index. Codes are packed least-significant-bit
// first, so a decoder only ever needs to test bit 0 of its accumulator.
//
// The alphabet is fixed in advance for a given asset set. A byte outside it
// cannot be encoded; assets are encoded while the program initialises (see
// MustEncode) so such a mistake never reaches the frame loop.
package codec

import (
	"errors"
	"fmt"
)

// MaxSymbols is the alphabet capacity: one 1-bit symbol plus 15 5-bit ones.
const MaxSymbols = 16

const (
	shortLen = 1 // code length of symbol 0
	longLen  = 5 // code length of symbols 1..15
)

var (
	// ErrAlphabet reports an alphabet that is empty, too large or has duplicates.
	ErrAlphabet = errors.New("codec: invalid alphabet")
	// ErrNotInAlphabet reports a byte that has no code in the alphabet.
	ErrNotInAlphabet = errors.New("codec: byte not in alphabet")
	// ErrTruncated reports a stream that ends before the requested count.
	ErrTruncated = errors.New("codec: truncated stream")
	// ErrBadIndex reports a 5-bit code that points past the alphabet.
	ErrBadIndex = errors.New("codec: code index out of range")
)

// Alphabet maps symbols to their variable-length codes and back.
type Alphabet struct {
	symbols [MaxSymbols]byte
	size    int
	index   [256]int8 // -1 when the byte is not a symbol
}

// Block is one compactly encoded byte sequence.
//
// The bit stream does not record its own length, and the zero padding of
// the final byte reads as the first symbol. Len is therefore authoritative:
// decoding with a larger count yields up to seven extra first-symbol bytes
// before ErrTruncated.
type Block struct {
	Packed []byte // bit stream
	Len    int    // number of decoded bytes
}

// NewAlphabet creates an alphabet from symbols listed most frequent first.
func NewAlphabet(symbols ...byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrAlphabet)
	}
	if len(symbols) > MaxSymbols {
		return nil, fmt.Errorf("%w: %d symbols, max %d", ErrAlphabet, len(symbols), MaxSymbols)
	}

	a := &Alphabet{size: len(symbols)}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, s := range symbols {
		if a.index[s] >= 0 {
			return nil, fmt.Errorf("%w: duplicate symbol %#02x", ErrAlphabet, s)
		}
		a.symbols[i] = s
		a.index[s] = int8(i)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
// It is meant for compiled-in asset tables.
func MustAlphabet(symbols ...byte) *Alphabet {
	a, err := NewAlphabet(symbols...)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return a.size
}

// Symbols returns a copy of the symbol table, most frequent first.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, a.size)
	copy(out, a.symbols[:a.size])
	return out
}

// Contains reports whether b has a code.
func (a *Alphabet) Contains(b byte) bool {
	return a.index[b] >= 0
}

// CodeLen returns the encoded length of b in bits, or 0 if b has no code.
func (a *Alphabet) CodeLen(b byte) int {
	switch i := a.index[b]; {
	case i < 0:
		return 0
	case i == 0:
		return shortLen
	default:
		return longLen
	}
}

// Encode packs src into a block.
func (a *Alphabet) Encode(src []byte) (Block, error) {
	out := make([]byte, 0, (len(src)*longLen+7)/8)

	var acc uint16
	var n uint
	for off, b := range src {
		i := a.index[b]
		if i < 0 {
			return Block{}, fmt.Errorf("%w: %#02x at offset %d", ErrNotInAlphabet, b, off)
		}

		if i == 0 {
			n += shortLen
		} else {
			acc |= (1 | uint16(i-1)<<1) << n
			n += longLen
		}

		if n >= 8 {
			out = append(out, byte(acc))
			acc >>= 8
			n -= 8
		}
	}
	if n > 0 {
		out = append(out, byte(acc))
	}

	return Block{Packed: out, Len: len(src)}, nil
}

// MustEncode is like Encode but panics when src leaves the alphabet.
func (a *Alphabet) MustEncode(src []byte) Block {
	blk, err := a.Encode(src)
	if err != nil {
		panic(err)
	}
	return blk
}

// Decode unpacks a whole block.
func (a *Alphabet) Decode(blk Block) ([]byte, error) {
	return a.DecodeN(blk.Packed, blk.Len)
}

// DecodeN unpacks count bytes from packed. count must come from the
// encoder; see Block.
func (a *Alphabet) DecodeN(packed []byte, count int) ([]byte, error) {
	out := make([]byte, 0, count)
	r := a.NewReader(Block{Packed: packed, Len: count})
	for {
		b, ok := r.Next()
		if !ok {
			break
		}
		out = append(out, b)
	}
	if err := r.Err(); err != nil {
		return out, err
	}
	return out, nil
}
