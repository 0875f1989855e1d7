// Package bits provides the 0/1 sample sequences carried through the
// encode and decode pipelines: payloads, preambles, CRC keys, and
// demodulated codewords.
package bits

import (
	"fmt"
	"math/rand"
	"strings"
)

// Seq is an ordered sequence of bits, one byte per bit.
type Seq []byte

// FromText converts s to a bit sequence, eight bits per byte, most
// significant bit first.
func FromText(s string) Seq {
	out := make(Seq, 0, len(s)*8)
	for i := 0; i < len(s); i++ {
		for b := 7; b >= 0; b-- {
			out = append(out, (s[i]>>uint(b))&1)
		}
	}
	return out
}

// Text reassembles a bit sequence produced by FromText. The length must be
// a multiple of eight.
func (s Seq) Text() (string, error) {
	if len(s)%8 != 0 {
		return "", fmt.Errorf("bits: length %d is not a multiple of 8", len(s))
	}
	var b strings.Builder
	for i := 0; i < len(s); i += 8 {
		var c byte
		for j := 0; j < 8; j++ {
			c = c<<1 | s[i+j]&1
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// Random draws n bits from the caller-owned generator.
func Random(n int, rng *rand.Rand) Seq {
	out := make(Seq, n)
	for i := range out {
		out[i] = byte(rng.Intn(2))
	}
	return out
}

// Clone returns an independent copy of s.
func (s Seq) Clone() Seq {
	out := make(Seq, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and o hold identical bits.
func (s Seq) Equal(o Seq) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Diff counts positions at which a and b disagree, compared over the
// shorter of the two.
func Diff(a, b Seq) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// String renders the bits as a compact 0/1 run.
func (s Seq) String() string {
	var b strings.Builder
	for _, v := range s {
		if v == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}
