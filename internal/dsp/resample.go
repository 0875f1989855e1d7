package dsp

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrZeroSignal reports a sequence whose peak magnitude is zero, which
// cannot be amplitude-normalised.
var ErrZeroSignal = errors.New("dsp: cannot normalise an all-zero sequence")

// ResamplePoly resamples x by the rational factor up/down. The input is
// zero-stuffed, smoothed with a windowed-sinc low-pass of 10*max(up,down)
// taps, decimated, and finally rescaled so its peak magnitude matches the
// input's peak magnitude.
func ResamplePoly(x []complex128, up, down int) ([]complex128, error) {
	if up <= 0 || down <= 0 {
		return nil, fmt.Errorf("dsp: resample factors must be positive (up=%d down=%d)", up, down)
	}
	if len(x) == 0 {
		return nil, errors.New("dsp: resample of an empty sequence")
	}

	stuffed := make([]complex128, len(x)*up)
	for i, v := range x {
		stuffed[i*up] = v
	}

	factor := up
	if down > factor {
		factor = down
	}
	taps := FIRWin(10*factor, 1.0/float64(factor))
	smoothed := ConvolveSame(stuffed, taps)

	out := make([]complex128, 0, len(smoothed)/down+1)
	peakSq := 0.0
	for i := 0; i < len(smoothed); i += down {
		v := smoothed[i]
		out = append(out, v)
		if sq := real(v)*real(v) + imag(v)*imag(v); sq > peakSq {
			peakSq = sq
		}
	}

	peakIn := 0.0
	for _, v := range x {
		if m := cmplx.Abs(v); m > peakIn {
			peakIn = m
		}
	}
	if peakSq == 0 || peakIn == 0 {
		return nil, ErrZeroSignal
	}

	scale := complex(peakIn/math.Sqrt(peakSq), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
