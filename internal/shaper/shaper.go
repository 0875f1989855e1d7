// Package shaper generates the transmit-side baseband waveform: an
// antipodal impulse train upsampled to the sample clock and convolved with
// a root-raised-cosine filter.
package shaper

import (
	"errors"
	"fmt"
	"math"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/dsp"
)

var (
	// ErrTapCount reports a non-positive filter length.
	ErrTapCount = errors.New("shaper: filter tap count must be positive")
	// ErrRollOff reports a roll-off factor outside [0, 1].
	ErrRollOff = errors.New("shaper: roll-off factor must be in [0, 1]")
	// ErrSymbolPeriod reports a non-positive symbol period.
	ErrSymbolPeriod = errors.New("shaper: symbol period must be positive")
	// ErrSampleRate reports a non-positive sample rate.
	ErrSampleRate = errors.New("shaper: sample rate must be positive")
	// ErrSampleFactor reports a non-positive samples-per-symbol factor.
	ErrSampleFactor = errors.New("shaper: samples per symbol must be positive")
	// ErrEmptyBits reports an empty bit sequence.
	ErrEmptyBits = errors.New("shaper: empty bit sequence")
)

// Taps returns n root-raised-cosine coefficients for the given roll-off,
// symbol period (seconds), and sample rate (Hz). The impulse response is
// centred on (n-1)/2, so taps[i] == taps[n-1-i] exactly (linear phase).
//
// The two removable singularities of the closed form, t == 0 and
// t == ±symbolPeriod/(4*alpha), use their limit values; with alpha == 0 the
// second branch is never evaluated, so no division by zero can occur.
func Taps(n int, alpha, symbolPeriod, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrTapCount
	}
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w (got %v)", ErrRollOff, alpha)
	}
	if symbolPeriod <= 0 {
		return nil, ErrSymbolPeriod
	}
	if sampleRate <= 0 {
		return nil, ErrSampleRate
	}

	dt := 1.0 / sampleRate
	mid := float64(n-1) / 2.0
	singular := math.Inf(1)
	if alpha != 0 {
		singular = symbolPeriod / (4 * alpha)
	}

	taps := make([]float64, n)
	for i := range taps {
		t := (float64(i) - mid) * dt
		switch {
		case t == 0:
			taps[i] = 1 - alpha + 4*alpha/math.Pi
		case t == singular || t == -singular:
			taps[i] = (alpha / math.Sqrt2) *
				((1+2/math.Pi)*math.Sin(math.Pi/(4*alpha)) +
					(1-2/math.Pi)*math.Cos(math.Pi/(4*alpha)))
		default:
			num := math.Sin(math.Pi*t*(1-alpha)/symbolPeriod) +
				4*alpha*(t/symbolPeriod)*math.Cos(math.Pi*t*(1+alpha)/symbolPeriod)
			den := math.Pi * t * (1 - (4*alpha*t/symbolPeriod)*(4*alpha*t/symbolPeriod)) / symbolPeriod
			taps[i] = num / den
		}
	}
	return taps, nil
}

// PulseTrain spreads b into an impulse train of length len(b)*sps: bit
// value v maps to 2v-1 at every sps-th index, zero elsewhere.
func PulseTrain(b bits.Seq, sps int) ([]float64, error) {
	if sps <= 0 {
		return nil, ErrSampleFactor
	}
	if len(b) == 0 {
		return nil, ErrEmptyBits
	}
	out := make([]float64, len(b)*sps)
	for i, v := range b {
		out[i*sps] = float64(v)*2 - 1
	}
	return out, nil
}

// Shape convolves the real impulse train with the filter taps and lifts
// the result into a complex sequence with a zero imaginary rail. The
// output is the full linear convolution, len(train)+len(taps)-1 samples.
func Shape(train, taps []float64) []complex128 {
	x := make([]complex128, len(train))
	for i, v := range train {
		x[i] = complex(v, 0)
	}
	return dsp.Convolve(x, taps)
}
