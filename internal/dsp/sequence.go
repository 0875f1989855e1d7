// Package dsp provides the numerical vector primitives shared by the
// baseband pipeline stages: elementwise complex arithmetic, FFTs,
// convolution, window generation, and resampling.
//
// A []complex128 carries both rails of a sample sequence, so the real and
// imaginary parts can never disagree in length. Operations combining two
// sequences truncate to the shorter operand.
package dsp

import (
	"math"
	"math/cmplx"
)

// Mul multiplies two complex sequences elementwise. The output length is
// the shorter of the two inputs.
func Mul(a, b []complex128) []complex128 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] * b[i]
	}
	return out
}

// Abs returns the elementwise magnitude of x.
func Abs(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// ArgMax returns the index of the largest value in x, or -1 for an empty
// slice. Ties resolve to the earliest index.
func ArgMax(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	max := math.Inf(-1)
	idx := -1
	for i, v := range x {
		if v > max {
			max = v
			idx = i
		}
	}
	return idx
}

// ArgMaxAbs returns the index of the sample with the largest magnitude,
// or -1 for an empty slice.
func ArgMaxAbs(x []complex128) int {
	if len(x) == 0 {
		return -1
	}
	max := -1.0
	idx := -1
	for i, v := range x {
		m := cmplx.Abs(v)
		if m > max {
			max = m
			idx = i
		}
	}
	return idx
}

// Linspace returns n evenly spaced values from start to end inclusive.
// n <= 0 yields an empty slice and n == 1 yields just start.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Flip returns x in reverse order.
func Flip(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

// Sinc is the normalised sinc function sin(pi x)/(pi x), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}
