package carrier

import (
	"math"
	"math/cmplx"
)

// Second-order Costas loop gains. Empirically tuned for the BPSK scheme;
// alpha sets how fast the phase estimate moves, beta the frequency.
const (
	PhaseGain = 0.132
	FreqGain  = 0.00932
)

// Track runs the Costas loop over x: each sample is de-rotated by the
// running phase estimate, the BPSK error Re*Im advances the frequency and
// phase accumulators, and the phase wraps into [0, 2pi). It returns the
// de-rotated sequence (same length as the input) and a per-sample log of
// the frequency estimate in Hz.
//
// The loop assumes the coarse corrector already removed gross offset; it
// only tracks residual drift.
func Track(x []complex128, sampleRate float64) ([]complex128, []float64, error) {
	if sampleRate <= 0 {
		return nil, nil, ErrSampleRate
	}
	if len(x) == 0 {
		return nil, nil, ErrShortInput
	}

	out := make([]complex128, len(x))
	freqLog := make([]float64, len(x))
	phase := 0.0
	freq := 0.0

	for i, v := range x {
		o := v * cmplx.Exp(complex(0, -phase))
		out[i] = o

		errSignal := real(o) * imag(o)
		freq += FreqGain * errSignal
		freqLog[i] = freq * sampleRate / (2 * math.Pi)
		phase += freq + PhaseGain*errSignal

		for phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
		for phase < 0 {
			phase += 2 * math.Pi
		}
	}
	return out, freqLog, nil
}
