package dsp

import "math"

// Hamming returns a Hamming window of length n.
// If n is zero or negative, an empty slice is returned.
func Hamming(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{1}
	}
	win := make([]float64, n)
	for i := 0; i < n; i++ {
		win[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return win
}

// FIRWin returns m+1 coefficients of a Hamming-windowed sinc low-pass
// filter with the given normalised cutoff. The trailing coefficient is
// zero; the window denominator is m, not m+1.
func FIRWin(m int, cutoff float64) []float64 {
	if m <= 0 {
		return []float64{}
	}
	out := make([]float64, m+1)
	for i := 0; i < m; i++ {
		window := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(m))
		lowpass := cutoff
		if i-m/2 != 0 {
			d := float64(i - m/2)
			lowpass = math.Sin(cutoff*math.Pi*d) / (math.Pi * d)
		}
		out[i] = window * lowpass
	}
	return out
}
