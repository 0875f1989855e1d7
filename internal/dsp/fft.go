package dsp

import "gonum.org/v1/gonum/dsp/fourier"

// FFT computes the unnormalised discrete Fourier transform of x.
// The output is in standard order with DC at index 0.
func FFT(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, x)
}

// FFTShift returns the FFT output shifted so that DC is centered.
func FFTShift(data []complex128) []complex128 {
	n := len(data)
	if n == 0 {
		return []complex128{}
	}
	half := n / 2
	shifted := make([]complex128, 0, n)
	shifted = append(shifted, data[half:]...)
	shifted = append(shifted, data[:half]...)
	return shifted
}
