// Package probe captures intermediate signal buffers from the modem
// pipeline so they can be inspected or exported for offline plotting.
package probe

import "sync"

// Recorder receives named snapshots of pipeline stages. Implementations
// must copy the slices they intend to keep; callers may reuse buffers.
type Recorder interface {
	RecordComplex(stage string, data []complex128)
	RecordReal(stage string, data []float64)
}

// Hub retains the latest snapshot per stage, in first-seen order.
// Safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	order   []string
	complex map[string][]complex128
	real    map[string][]float64
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{
		complex: make(map[string][]complex128),
		real:    make(map[string][]float64),
	}
}

// RecordComplex stores a copy of data under stage, replacing any
// previous snapshot for that stage.
func (h *Hub) RecordComplex(stage string, data []complex128) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, seen := h.complex[stage]; !seen {
		if _, seen := h.real[stage]; !seen {
			h.order = append(h.order, stage)
		}
	}
	buf := make([]complex128, len(data))
	copy(buf, data)
	h.complex[stage] = buf
	delete(h.real, stage)
}

// RecordReal stores a copy of data under stage, replacing any previous
// snapshot for that stage.
func (h *Hub) RecordReal(stage string, data []float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, seen := h.real[stage]; !seen {
		if _, seen := h.complex[stage]; !seen {
			h.order = append(h.order, stage)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	h.real[stage] = buf
	delete(h.complex, stage)
}

// Stages lists recorded stage names in first-seen order.
func (h *Hub) Stages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Complex returns the latest complex snapshot for stage, or nil.
func (h *Hub) Complex(stage string) []complex128 {
	h.mu.Lock()
	defer h.mu.Unlock()
	data, ok := h.complex[stage]
	if !ok {
		return nil
	}
	out := make([]complex128, len(data))
	copy(out, data)
	return out
}

// Real returns the latest real snapshot for stage, or nil.
func (h *Hub) Real(stage string) []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	data, ok := h.real[stage]
	if !ok {
		return nil
	}
	out := make([]float64, len(data))
	copy(out, data)
	return out
}

// Discard is a Recorder that drops everything. Useful as a default so
// pipeline code never needs a nil check.
type Discard struct{}

func (Discard) RecordComplex(string, []complex128) {}
func (Discard) RecordReal(string, []float64)       {}
