package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteComplex writes one sample per line as "re+imj", e.g.
// "0.707107-0.707107j". The format round-trips with common plotting
// scripts that parse Python-style complex literals.
func WriteComplex(w io.Writer, data []complex128) error {
	bw := bufio.NewWriter(w)
	for _, v := range data {
		if _, err := fmt.Fprintf(bw, "%f%+fj\n", real(v), imag(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteReal writes one sample per line in plain decimal.
func WriteReal(w io.Writer, data []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range data {
		if _, err := fmt.Fprintf(bw, "%f\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DumpComplex writes data to the named file, creating or truncating it.
func DumpComplex(path string, data []complex128) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteComplex(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DumpReal writes data to the named file, creating or truncating it.
func DumpReal(path string, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReal(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Export writes every recorded stage into dir as <stage>.txt, creating
// dir if needed.
func (h *Hub) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, stage := range h.Stages() {
		path := filepath.Join(dir, stage+".txt")
		if data := h.Complex(stage); data != nil {
			if err := DumpComplex(path, data); err != nil {
				return fmt.Errorf("probe: export %s: %w", stage, err)
			}
			continue
		}
		if data := h.Real(stage); data != nil {
			if err := DumpReal(path, data); err != nil {
				return fmt.Errorf("probe: export %s: %w", stage, err)
			}
		}
	}
	return nil
}
