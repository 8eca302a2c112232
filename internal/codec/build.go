package codec

import (
	"fmt"
	"sort"
)

// SymbolCount is one row of a frequency table.
type SymbolCount struct {
	Symbol byte
	Count  int
}

// Frequencies counts byte occurrences across blocks, most frequent first.
// Ties keep first-occurrence order.
func Frequencies(blocks ...[]byte) []SymbolCount {
	var counts [256]int
	var order []byte
	for _, blk := range blocks {
		for _, b := range blk {
			if counts[b] == 0 {
				order = append(order, b)
			}
			counts[b]++
		}
	}

	out := make([]SymbolCount, len(order))
	for i, b := range order {
		out[i] = SymbolCount{Symbol: b, Count: counts[b]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// BuildAlphabet derives the alphabet for a set of blocks.
// More than MaxSymbols distinct values is an error: the asset set has to be
// redrawn or split.
func BuildAlphabet(blocks ...[]byte) (*Alphabet, error) {
	freq := Frequencies(blocks...)
	if len(freq) > MaxSymbols {
		return nil, fmt.Errorf("%w: %d distinct bytes, max %d", ErrAlphabet, len(freq), MaxSymbols)
	}

	symbols := make([]byte, len(freq))
	for i, f := range freq {
		symbols[i] = f.Symbol
	}
	return NewAlphabet(symbols...)
}

// EncodedBits returns the exact bit length of src under a, or an error if
// src leaves the alphabet.
func (a *Alphabet) EncodedBits(src []byte) (int, error) {
	bits := 0
	for off, b := range src {
		n := a.CodeLen(b)
		if n == 0 {
			return 0, fmt.Errorf("%w: %#02x at offset %d", ErrNotInAlphabet, b, off)
		}
		bits += n
	}
	return bits, nil
}
