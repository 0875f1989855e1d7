// Package channel simulates link impairments for loopback testing:
// additive noise with phase jitter, fractional sample delay, and
// carrier frequency offset.
package channel

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/dsp"
)

var (
	// ErrNoisePower reports a non-positive noise power divisor.
	ErrNoisePower = errors.New("channel: noise power must be positive")
	// ErrDelayTaps reports a non-positive delay filter length.
	ErrDelayTaps = errors.New("channel: delay filter needs at least one tap")
)

// AWGN adds complex Gaussian noise and per-sample phase jitter.
// Each sample becomes (v + n) * exp(j*g*phaseNoise) where n has standard
// deviation stdDev/sqrt(2*noisePower) per component and g is a unit
// Gaussian draw.
func AWGN(x []complex128, rng *rand.Rand, stdDev, phaseNoise, noisePower float64) ([]complex128, error) {
	if noisePower <= 0 {
		return nil, ErrNoisePower
	}
	scale := stdDev / math.Sqrt(2) / math.Sqrt(noisePower)
	out := make([]complex128, len(x))
	for i, v := range x {
		n := complex(rng.NormFloat64()*scale, rng.NormFloat64()*scale)
		jitter := cmplx.Exp(complex(0, rng.NormFloat64()*phaseNoise))
		out[i] = (v + n) * jitter
	}
	return out, nil
}

// FractionalDelay shifts x by a non-integer number of samples using a
// Hamming-windowed sinc interpolator of the given tap count. The taps
// are normalised to unity sum so passband gain stays flat.
func FractionalDelay(x []complex128, delay float64, taps int) ([]complex128, error) {
	if taps <= 0 {
		return nil, ErrDelayTaps
	}
	h := make([]float64, taps)
	win := dsp.Hamming(taps)
	sum := 0.0
	for i := range h {
		h[i] = dsp.Sinc(float64(i)-float64(taps)/2-delay) * win[i]
		sum += h[i]
	}
	for i := range h {
		h[i] /= sum
	}
	return dsp.Convolve(x, h), nil
}

// FrequencyShift rotates x by a carrier offset of offsetHz at the given
// sample rate.
func FrequencyShift(x []complex128, offsetHz, sampleRate float64) []complex128 {
	ts := 1 / sampleRate
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = v * cmplx.Exp(complex(0, 2*math.Pi*offsetHz*float64(i)*ts))
	}
	return out
}
