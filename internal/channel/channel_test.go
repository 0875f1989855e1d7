package channel

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func TestAWGNNoiselessPassthrough(t *testing.T) {
	x := []complex128{1, -1, 1i}
	out, err := AWGN(x, rand.New(rand.NewSource(1)), 0, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range x {
		if cmplx.Abs(out[i]-x[i]) > 1e-12 {
			t.Fatalf("sample %d changed: %v -> %v", i, x[i], out[i])
		}
	}
}

func TestAWGNDeterministic(t *testing.T) {
	x := make([]complex128, 100)
	for i := range x {
		x[i] = complex(float64(i%2)*2-1, 0)
	}
	a, err := AWGN(x, rand.New(rand.NewSource(7)), 1, 0.1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := AWGN(x, rand.New(rand.NewSource(7)), 1, 0.1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different noise at %d", i)
		}
	}
}

func TestAWGNErrors(t *testing.T) {
	_, err := AWGN([]complex128{1}, rand.New(rand.NewSource(1)), 1, 0, 0)
	if !errors.Is(err, ErrNoisePower) {
		t.Fatalf("expected ErrNoisePower got %v", err)
	}
}

func TestFractionalDelayLength(t *testing.T) {
	x := make([]complex128, 50)
	for i := range x {
		x[i] = 1
	}
	out, err := FractionalDelay(x, 0.4, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(x)+20 {
		t.Fatalf("expected %d samples got %d", len(x)+20, len(out))
	}
}

func TestFractionalDelayUnityGain(t *testing.T) {
	// Constant input through the normalised interpolator stays constant
	// in the fully overlapped region.
	x := make([]complex128, 60)
	for i := range x {
		x[i] = complex(2, 0)
	}
	out, err := FractionalDelay(x, 0.4, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 21; i < len(x)-1; i++ {
		if cmplx.Abs(out[i]-2) > 1e-9 {
			t.Fatalf("sample %d expected 2 got %v", i, out[i])
		}
	}
}

func TestFractionalDelayErrors(t *testing.T) {
	if _, err := FractionalDelay([]complex128{1}, 0.4, 0); !errors.Is(err, ErrDelayTaps) {
		t.Fatalf("expected ErrDelayTaps got %v", err)
	}
}

func TestFrequencyShiftRoundTrip(t *testing.T) {
	x := make([]complex128, 64)
	for i := range x {
		x[i] = complex(math.Cos(float64(i)), math.Sin(float64(i)))
	}
	shifted := FrequencyShift(x, 61250, 2.45e9)
	back := FrequencyShift(shifted, -61250, 2.45e9)
	for i := range x {
		if cmplx.Abs(back[i]-x[i]) > 1e-9 {
			t.Fatalf("sample %d not restored: %v vs %v", i, back[i], x[i])
		}
	}
}

func TestFrequencyShiftZero(t *testing.T) {
	x := []complex128{1, 1i, -1}
	out := FrequencyShift(x, 0, 1e6)
	for i := range x {
		if out[i] != x[i] {
			t.Fatalf("zero shift altered sample %d", i)
		}
	}
}
