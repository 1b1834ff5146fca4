package huffman

import "strings"

// Bits is an append-only ordered sequence of binary values. It serves both
// as a single symbol's code and as the output of an encode pass.
type Bits struct {
	vals []bool
}

// NewBits constructs an empty sequence.
func NewBits() *Bits {
	return &Bits{}
}

// Add appends a single bit to the end of the sequence.
func (b *Bits) Add(bit bool) {
	b.vals = append(b.vals, bit)
}

// Append appends all bits of other, in order, to the end of b. Other is not
// modified.
func (b *Bits) Append(other *Bits) {
	b.vals = append(b.vals, other.vals...)
}

// Len returns the number of bits currently held.
func (b *Bits) Len() int {
	return len(b.vals)
}

// At returns the bit at position i.
func (b *Bits) At(i int) bool {
	return b.vals[i]
}

func (b *Bits) clone() *Bits {
	vals := make([]bool, len(b.vals))
	copy(vals, b.vals)
	return &Bits{vals: vals}
}

// String renders the sequence as '0' and '1' characters in order. Meant for
// logging and debugging, not as a compact format.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b.vals))
	for _, bit := range b.vals {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
