// Package framesync locates the preamble inside a corrected symbol stream
// with a matched filter and slices out the encoded payload region.
package framesync

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/dsp"
)

var (
	// ErrEmptyInput reports an empty symbol sequence.
	ErrEmptyInput = errors.New("framesync: empty input")
	// ErrEmptyPreamble reports an empty preamble pattern.
	ErrEmptyPreamble = errors.New("framesync: empty preamble")
	// ErrPayloadLength reports a non-positive encoded payload length.
	ErrPayloadLength = errors.New("framesync: encoded payload length must be positive")
	// ErrNoSync reports that no credible preamble alignment was found:
	// either the sliced window falls outside the buffer or, when a peak
	// ratio is configured, the correlation peak is too weak.
	ErrNoSync = errors.New("framesync: no preamble lock")
)

// MatchedFilter returns the cross-correlation coefficients for a
// preamble: its bit values, time-reversed.
func MatchedFilter(preamble bits.Seq) []float64 {
	coef := make([]float64, len(preamble))
	for i, v := range preamble {
		coef[i] = float64(v)
	}
	return dsp.Flip(coef)
}

// Sync normalises x against its mean magnitude, cross-correlates with the
// time-reversed preamble, and slices the encoded payload out of the window
// that follows the strongest correlation peak.
//
// minPeakRatio > 0 enables a credibility check: the peak magnitude must
// exceed minPeakRatio times the mean correlation magnitude, otherwise
// ErrNoSync is returned. Zero disables the check, in which case a
// spurious global maximum simply surfaces as corrupted bits downstream.
func Sync(x []complex128, preamble bits.Seq, encodedLen int, minPeakRatio float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(preamble) == 0 {
		return nil, ErrEmptyPreamble
	}
	if encodedLen <= 0 {
		return nil, ErrPayloadLength
	}

	scale := stat.Mean(dsp.Abs(x), nil)
	norm := make([]complex128, len(x))
	for i, v := range x {
		norm[i] = complex((real(v)+scale)/2*scale, (imag(v)+scale)/2*scale)
	}

	corr := dsp.Convolve(norm, MatchedFilter(preamble))
	peak := dsp.ArgMaxAbs(corr)

	if minPeakRatio > 0 {
		mean := stat.Mean(dsp.Abs(corr), nil)
		if cmplx.Abs(corr[peak]) < minPeakRatio*mean {
			return nil, fmt.Errorf("%w: peak %.3g below %.3g", ErrNoSync, cmplx.Abs(corr[peak]), minPeakRatio*mean)
		}
	}

	start := peak - len(preamble) + 1
	end := peak + encodedLen + 1
	if start < 0 || end > len(x) {
		return nil, fmt.Errorf("%w: window [%d:%d) outside %d samples", ErrNoSync, start, end, len(x))
	}

	window := x[start:end]
	payload := make([]complex128, len(window)-len(preamble))
	copy(payload, window[len(preamble):])
	return payload, nil
}
