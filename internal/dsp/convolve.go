package dsp

// Convolve computes the full linear convolution of a complex sequence with
// real filter taps. The output length is len(x)+len(taps)-1.
func Convolve(x []complex128, taps []float64) []complex128 {
	if len(x) == 0 || len(taps) == 0 {
		return []complex128{}
	}
	n := len(x) + len(taps) - 1
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		lo := i - len(taps) + 1
		if lo < 0 {
			lo = 0
		}
		hi := i
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		var sum complex128
		for m := lo; m <= hi; m++ {
			sum += x[m] * complex(taps[i-m], 0)
		}
		out[i] = sum
	}
	return out
}

// ConvolveSame convolves like Convolve and then crops the result to
// max(len(x), len(taps)) samples, removing half the transient from each
// side. The crop offset rounds down when the transient is odd.
func ConvolveSame(x []complex128, taps []float64) []complex128 {
	full := Convolve(x, taps)
	if len(full) == 0 {
		return full
	}
	outLen := len(x)
	if len(taps) > outLen {
		outLen = len(taps)
	}
	remove := (len(full) - outLen) / 2
	out := make([]complex128, outLen)
	copy(out, full[remove:remove+outLen])
	return out
}
