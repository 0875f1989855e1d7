// Package demod maps recovered symbols back to bits by minimum-distance
// decisions against the configured constellation.
package demod

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

var (
	// ErrEmptyInput reports an empty symbol sequence.
	ErrEmptyInput = errors.New("demod: empty input")
	// ErrScheme reports an unsupported modulation scheme.
	ErrScheme = errors.New("demod: unknown scheme")
)

// Demodulate slices symbols into bits for the given scheme. BPSK decides
// against the antipodal points ±gain, OOK against gain and zero.
func Demodulate(symbols []complex128, scheme string, gain float64) (bits.Seq, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	switch scheme {
	case "BPSK":
		return slice(symbols, complex(-gain, 0), complex(gain, 0)), nil
	case "OOK":
		return slice(symbols, 0, complex(gain, 0)), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrScheme, scheme)
	}
}

// slice assigns bit 0 to symbols nearer zeroPt and bit 1 to symbols
// nearer onePt. Ties resolve to 1.
func slice(symbols []complex128, zeroPt, onePt complex128) bits.Seq {
	out := make(bits.Seq, len(symbols))
	for i, s := range symbols {
		if cmplx.Abs(s-onePt) <= cmplx.Abs(s-zeroPt) {
			out[i] = 1
		}
	}
	return out
}
