// Package carrier removes carrier frequency and phase error from the
// recovered symbol stream: a coarse FFT-based corrector for gross offset
// followed by a Costas loop for residual drift.
package carrier

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/dsp"
)

var (
	// ErrSampleRate reports a non-positive sample rate.
	ErrSampleRate = errors.New("carrier: sample rate must be positive")
	// ErrShortInput reports too few samples to resolve a spectrum.
	ErrShortInput = errors.New("carrier: need at least two samples")
)

// EstimateOffset squares x elementwise to strip the binary modulation,
// locates the strongest bin of the centred magnitude spectrum, and maps it
// onto a linear frequency axis spanning [-sampleRate/2, +sampleRate/2].
// The returned value is the located frequency of the squared signal, i.e.
// twice the carrier offset; a single dominant peak is assumed.
func EstimateOffset(x []complex128, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrSampleRate
	}
	if len(x) < 2 {
		return 0, ErrShortInput
	}
	squared := dsp.Mul(x, x)
	psd := dsp.Abs(dsp.FFTShift(dsp.FFT(squared)))
	axis := dsp.Linspace(-sampleRate/2, sampleRate/2, len(psd))
	return axis[dsp.ArgMax(psd)], nil
}

// CoarseCorrect de-rotates x by half the estimated squared-signal
// frequency over the input's time support and returns the corrected
// sequence along with the raw estimate in Hz.
func CoarseCorrect(x []complex128, sampleRate float64) ([]complex128, float64, error) {
	estimate, err := EstimateOffset(x, sampleRate)
	if err != nil {
		return nil, 0, err
	}
	ts := 1.0 / sampleRate
	out := make([]complex128, len(x))
	for i, v := range x {
		theta := -2 * math.Pi * estimate * float64(i) * ts / 2
		out[i] = v * cmplx.Exp(complex(0, theta))
	}
	return out, estimate, nil
}
