// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

// Halton generates points in the unit square from two Van der Corput streams.
type Halton struct {
	vdc0 VdCorput
	vdc1 VdCorput
}

func NewHalton(base [2]uint64) *Halton {
	return &Halton{
		vdc0: NewVdCorput(base[0]),
		vdc1: NewVdCorput(base[1]),
	}
}

func (h *Halton) Pop() [2]float64 {
	return [2]float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// Sequence returns a view of h that yields slices.
func (h *Halton) Sequence() Sequence {
	return haltonSeq{h}
}

type haltonSeq struct{ h *Halton }

func (s haltonSeq) Pop() []float64 {
	p := s.h.Pop()
	return p[:]
}

func (s haltonSeq) Reseed(seed uint64) { s.h.Reseed(seed) }

// HaltonN generates points in the unit hypercube of dimension len(base),
// with one independent Van der Corput stream per axis.
type HaltonN struct {
	vdcs []VdCorput
}

// NewHaltonN returns a generator whose i-th coordinate is driven by base[i].
// base must not be empty.
func NewHaltonN(base []uint64) *HaltonN {
	vdcs := make([]VdCorput, len(base))
	for i, b := range base {
		vdcs[i] = NewVdCorput(b)
	}
	return &HaltonN{vdcs: vdcs}
}

// Dim returns the length of the generated points.
func (h *HaltonN) Dim() int {
	return len(h.vdcs)
}

func (h *HaltonN) Pop() []float64 {
	res := make([]float64, len(h.vdcs))
	for i := range h.vdcs {
		res[i] = h.vdcs[i].Pop()
	}
	return res
}

// Reseed sets every axis to the same cursor, so the point at index seed is
// reproducible.
func (h *HaltonN) Reseed(seed uint64) {
	for i := range h.vdcs {
		h.vdcs[i].Reseed(seed)
	}
}
