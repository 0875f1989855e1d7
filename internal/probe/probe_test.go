package probe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubKeepsLatestSnapshot(t *testing.T) {
	h := NewHub()
	h.RecordComplex("stage", []complex128{1, 2})
	h.RecordComplex("stage", []complex128{3})

	assert.Equal(t, []string{"stage"}, h.Stages())
	assert.Equal(t, []complex128{3}, h.Complex("stage"))
}

func TestHubCopiesInput(t *testing.T) {
	h := NewHub()
	buf := []complex128{1, 2}
	h.RecordComplex("stage", buf)
	buf[0] = 99
	assert.Equal(t, []complex128{1, 2}, h.Complex("stage"))

	out := h.Complex("stage")
	out[0] = 42
	assert.Equal(t, []complex128{1, 2}, h.Complex("stage"))
}

func TestHubStageOrder(t *testing.T) {
	h := NewHub()
	h.RecordComplex("b", nil)
	h.RecordReal("a", []float64{1})
	h.RecordComplex("b", []complex128{1})

	assert.Equal(t, []string{"b", "a"}, h.Stages())
	assert.Nil(t, h.Real("b"))
	assert.Equal(t, []float64{1}, h.Real("a"))
}

func TestHubTypeSwitch(t *testing.T) {
	h := NewHub()
	h.RecordComplex("stage", []complex128{1})
	h.RecordReal("stage", []float64{2})

	assert.Nil(t, h.Complex("stage"))
	assert.Equal(t, []float64{2}, h.Real("stage"))
	assert.Equal(t, []string{"stage"}, h.Stages())
}

func TestWriteComplexFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteComplex(&sb, []complex128{1 - 2i, -0.5 + 0.25i}))
	assert.Equal(t, "1.000000-2.000000j\n-0.500000+0.250000j\n", sb.String())
}

func TestWriteRealFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteReal(&sb, []float64{1, -0.5}))
	assert.Equal(t, "1.000000\n-0.500000\n", sb.String())
}

func TestHubExport(t *testing.T) {
	dir := t.TempDir()
	h := NewHub()
	h.RecordComplex("wave", []complex128{1i})
	h.RecordReal("taps", []float64{0.5})

	require.NoError(t, h.Export(dir))

	wave, err := os.ReadFile(filepath.Join(dir, "wave.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0.000000+1.000000j\n", string(wave))

	taps, err := os.ReadFile(filepath.Join(dir, "taps.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0.500000\n", string(taps))
}
