package framesync

import (
	"errors"
	"math"
	"testing"

	"github.com/ND-IrishSat/CommunicationSystems-sub002/internal/bits"
)

// barker13 has the lowest off-peak autocorrelation of any known binary
// sequence of its length, so the matched-filter peak is unambiguous.
var barker13 = bits.Seq{1, 1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 0, 1}

// frame builds pad antipodal filler symbols, the preamble, encLen data
// symbols of the given value, and pad trailing filler.
func frame(preamble bits.Seq, encLen, pad int, dataVal float64) []complex128 {
	out := make([]complex128, 0, 2*pad+len(preamble)+encLen)
	for i := 0; i < pad; i++ {
		out = append(out, complex(-1, 0))
	}
	for _, b := range preamble {
		out = append(out, complex(float64(b)*2-1, 0))
	}
	for i := 0; i < encLen; i++ {
		out = append(out, complex(dataVal, 0))
	}
	for i := 0; i < pad; i++ {
		out = append(out, complex(-1, 0))
	}
	return out
}

func TestSyncLocatesPayload(t *testing.T) {
	const encLen = 40
	x := frame(barker13, encLen, 6, -1)

	payload, err := Sync(x, barker13, encLen, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload) != encLen {
		t.Fatalf("expected %d symbols got %d", encLen, len(payload))
	}
	for i, v := range payload {
		if math.Abs(real(v)+1) > 1e-12 || imag(v) != 0 {
			t.Fatalf("symbol %d expected -1 got %v", i, v)
		}
	}
}

func TestSyncDeterministic(t *testing.T) {
	x := frame(barker13, 25, 4, 1)
	a, err := Sync(x, barker13, 25, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Sync(x, barker13, 25, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run results differ at %d", i)
		}
	}
}

func TestSyncDoesNotAliasInput(t *testing.T) {
	x := frame(barker13, 10, 4, 1)
	payload, err := Sync(x, barker13, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload[0] = 99
	// The input window must be untouched.
	for _, v := range x {
		if v == 99 {
			t.Fatalf("output aliases the input buffer")
		}
	}
}

func TestSyncWindowOutOfBounds(t *testing.T) {
	// Preamble right at the end: no room for the payload after it.
	x := frame(barker13, 0, 3, 0)
	_, err := Sync(x, barker13, 50, 0)
	if !errors.Is(err, ErrNoSync) {
		t.Fatalf("expected ErrNoSync got %v", err)
	}
}

func TestSyncPeakRatio(t *testing.T) {
	// Featureless input has no credible correlation peak.
	x := make([]complex128, 120)
	for i := range x {
		x[i] = complex(0.01, 0)
	}
	_, err := Sync(x, barker13, 20, 5)
	if !errors.Is(err, ErrNoSync) {
		t.Fatalf("expected ErrNoSync got %v", err)
	}
}

func TestSyncValidation(t *testing.T) {
	if _, err := Sync(nil, barker13, 10, 0); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput got %v", err)
	}
	if _, err := Sync([]complex128{1}, nil, 10, 0); !errors.Is(err, ErrEmptyPreamble) {
		t.Fatalf("expected ErrEmptyPreamble got %v", err)
	}
	if _, err := Sync([]complex128{1}, barker13, 0, 0); !errors.Is(err, ErrPayloadLength) {
		t.Fatalf("expected ErrPayloadLength got %v", err)
	}
}
