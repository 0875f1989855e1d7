// Package timing implements decision-directed Mueller & Muller symbol
// timing recovery over an interpolated sample stream.
package timing

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/dsp"
)

const (
	// InterpFactor is the fixed oversampling applied before the loop to
	// approximate continuous-time interpolation.
	InterpFactor = 16
	// MMGain is the Mueller & Muller loop gain, tuned empirically for the
	// BPSK reference waveform.
	MMGain = 0.3
	// warmup symbols are discarded; the timing error needs two history
	// samples before it means anything.
	warmup = 2
)

var (
	// ErrSampleFactor reports a non-positive samples-per-symbol value.
	ErrSampleFactor = errors.New("timing: samples per symbol must be positive")
	// ErrEmptyInput reports an empty sample sequence.
	ErrEmptyInput = errors.New("timing: empty input")
)

// Recover runs the timing loop over x and returns one complex sample per
// recovered symbol. Each iteration picks the interpolated sample nearest
// the fractional estimate mu, slices both rails against zero, computes the
// M&M timing error from the two previous symbols, and advances the input
// index by the integer part of mu while the fraction carries forward.
//
// The loop stops when either the output index reaches len(x) or the input
// index runs off the interpolated buffer; the first two warm-up symbols
// are dropped.
func Recover(x []complex128, sps int) ([]complex128, error) {
	if sps <= 0 {
		return nil, ErrSampleFactor
	}
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	interp, err := dsp.ResamplePoly(x, InterpFactor, 1)
	if err != nil {
		return nil, fmt.Errorf("timing: interpolate: %w", err)
	}

	out := make([]complex128, len(x)+10)
	rail := make([]complex128, len(x)+10)
	mu := 0.0
	iIn := 0
	iOut := warmup

	for iOut < len(x) && iIn+InterpFactor < len(x) {
		if iIn < 0 {
			break
		}
		idx := iIn*InterpFactor + int(mu*InterpFactor)
		if idx >= len(interp) {
			break
		}
		out[iOut] = interp[idx]

		var re, im float64
		if real(out[iOut]) > 0 {
			re = 1
		}
		if imag(out[iOut]) > 0 {
			im = 1
		}
		rail[iOut] = complex(re, im)

		x1 := (rail[iOut] - rail[iOut-2]) * cmplx.Conj(out[iOut-1])
		y1 := (out[iOut] - out[iOut-2]) * cmplx.Conj(rail[iOut-1])
		mu += float64(sps) + MMGain*real(y1-x1)
		iIn += int(math.Floor(mu))
		mu -= math.Floor(mu)
		iOut++
	}

	symbols := make([]complex128, iOut-warmup)
	copy(symbols, out[warmup:iOut])
	return symbols, nil
}
