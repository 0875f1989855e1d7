// Package crc implements the systematic cyclic redundancy code used to
// protect frame payloads: modulo-2 polynomial long division against a
// configurable generator key.
package crc

import (
	"errors"
	"fmt"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

var (
	// ErrEmptyPayload reports an encode of zero payload bits, which would
	// produce a codeword of nothing but parity.
	ErrEmptyPayload = errors.New("crc: empty payload")
	// ErrShortKey reports a generator polynomial of fewer than two bits.
	ErrShortKey = errors.New("crc: generator key must be at least two bits")
	// ErrKeyLeadingZero reports a generator polynomial whose leading bit is
	// zero; the division would never consume it.
	ErrKeyLeadingZero = errors.New("crc: generator key must start with a one bit")
	// ErrShortCodeword reports a codeword shorter than the generator key.
	ErrShortCodeword = errors.New("crc: codeword shorter than generator key")
)

// Encode appends len(key)-1 zero bits to payload, divides by key modulo 2,
// and returns payload concatenated with the division remainder. The result
// has len(payload)+len(key)-1 bits.
func Encode(payload, key bits.Seq) (bits.Seq, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	dividend := make(bits.Seq, 0, len(payload)+len(key)-1)
	dividend = append(dividend, payload...)
	for i := 0; i < len(key)-1; i++ {
		dividend = append(dividend, 0)
	}

	remainder := mod2div(dividend, key)
	codeword := make(bits.Seq, 0, len(payload)+len(remainder))
	codeword = append(codeword, payload...)
	codeword = append(codeword, remainder...)
	return codeword, nil
}

// Check re-runs the division over the full codeword and reports whether
// the remainder is all zero.
func Check(codeword, key bits.Seq) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if len(codeword) < len(key) {
		return false, fmt.Errorf("%w (%d < %d)", ErrShortCodeword, len(codeword), len(key))
	}
	for _, b := range mod2div(codeword, key) {
		if b != 0 {
			return false, nil
		}
	}
	return true, nil
}

func validateKey(key bits.Seq) error {
	if len(key) < 2 {
		return ErrShortKey
	}
	if key[0] != 1 {
		return ErrKeyLeadingZero
	}
	return nil
}

// mod2div performs binary long division, XOR standing in for subtraction.
// When the leading remainder bit is zero the divisor row is all zeros so
// every step stays shape-uniform; the quotient is discarded.
func mod2div(dividend, divisor bits.Seq) bits.Seq {
	zeros := make(bits.Seq, len(divisor))

	pick := len(divisor)
	tmp := dividend[:pick].Clone()
	for pick < len(dividend) {
		if tmp[0] == 1 {
			tmp = append(xorRow(divisor, tmp), dividend[pick])
		} else {
			tmp = append(xorRow(zeros, tmp), dividend[pick])
		}
		pick++
	}
	if tmp[0] == 1 {
		return xorRow(divisor, tmp)
	}
	return xorRow(zeros, tmp)
}

// xorRow XORs two equal-length rows, dropping the leading bit the division
// step has already consumed.
func xorRow(a, b bits.Seq) bits.Seq {
	out := make(bits.Seq, 0, len(b)-1)
	for i := 1; i < len(b); i++ {
		if a[i] == b[i] {
			out = append(out, 0)
		} else {
			out = append(out, 1)
		}
	}
	return out
}
