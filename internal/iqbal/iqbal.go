// Package iqbal corrects receiver IQ imbalance with a single-pass
// moment-based estimate of the gain and phase skew between the rails,
// applied as a 2x2 de-skew matrix.
package iqbal

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrPeriod reports a non-positive averaging period.
	ErrPeriod = errors.New("iqbal: mean period must be positive")
	// ErrEmptyInput reports an empty sample sequence.
	ErrEmptyInput = errors.New("iqbal: empty input")
	// ErrFlatSignal reports an in-phase rail with no AC energy, which
	// leaves the amplitude estimate undefined.
	ErrFlatSignal = errors.New("iqbal: zero imbalance amplitude estimate")
	// ErrPhaseEstimate reports a phase-skew estimate outside (-1, 1),
	// where the de-skew matrix degenerates.
	ErrPhaseEstimate = errors.New("iqbal: phase estimate out of range")
)

// Correct estimates the imbalance over x and applies the de-skew
// transform. Local means of each rail (a symmetric window of meanPeriod
// neighbours, truncated at the edges) centre the moment estimates:
//
//	a      = sqrt(2 * mean(I'^2))
//	sin(psi) = (2/a) * mean(I' * Q')
//
// yielding coefficients A = 1/a, C = -sin(psi)/(a*cos(psi)),
// D = 1/cos(psi). The transform applies to the uncentered rails.
func Correct(x []complex128, meanPeriod int) ([]complex128, error) {
	if meanPeriod <= 0 {
		return nil, ErrPeriod
	}
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	iRail := make([]float64, len(x))
	qRail := make([]float64, len(x))
	for n, v := range x {
		iRail[n] = real(v)
		qRail[n] = imag(v)
	}

	biasI := windowedMeans(iRail, meanPeriod)
	biasQ := windowedMeans(qRail, meanPeriod)

	centredSq := make([]float64, len(x))
	crossTerm := make([]float64, len(x))
	for n := range x {
		ci := iRail[n] - biasI[n]
		cq := qRail[n] - biasQ[n]
		centredSq[n] = ci * ci
		crossTerm[n] = ci * cq
	}

	a := math.Sqrt(2 * stat.Mean(centredSq, nil))
	if a == 0 {
		return nil, ErrFlatSignal
	}
	sinPsi := (2 / a) * stat.Mean(crossTerm, nil)
	if sinPsi <= -1 || sinPsi >= 1 {
		return nil, ErrPhaseEstimate
	}
	cosPsi := math.Sqrt(1 - sinPsi*sinPsi)

	cA := 1 / a
	cC := -sinPsi / (a * cosPsi)
	cD := 1 / cosPsi

	out := make([]complex128, len(x))
	for n := range x {
		out[n] = complex(cA*iRail[n], cC*iRail[n]+cD*qRail[n])
	}
	return out, nil
}

// windowedMeans averages each sample with up to period neighbours on both
// sides. At the edges the window truncates; once both directions run out
// the scan stops early.
func windowedMeans(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for idx := range values {
		sum := values[idx]
		count := 1
		for i := 1; i <= period; i++ {
			leftOut := false
			if idx-i >= 0 {
				sum += values[idx-i]
				count++
			} else {
				leftOut = true
			}
			if idx+i < len(values) {
				sum += values[idx+i]
				count++
			} else if leftOut {
				break
			}
		}
		out[idx] = sum / float64(count)
	}
	return out
}
