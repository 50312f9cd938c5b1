// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import (
	"math"
	"sort"
)

const (
	halfPi = math.Pi / 2

	// Number of samples of the polar angle in [0, π] used by the inverse-CDF tables.
	gridSize = 300
)

// grid holds gridSize evenly spaced angles in [0, π]. Read-only after init.
var grid = linspace(0, math.Pi, gridSize)

func linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}

// cdfTable returns ∫₀ˣ sinⁿ(t) dt sampled on grid, via the reduction
//
//	I(n) = ((n-1)·I(n-2) - cos x · sinⁿ⁻¹ x) / n
//
// starting from I(0) = x and I(1) = -cos x.
func cdfTable(n int) []float64 {
	tp := make([]float64, gridSize)
	if n%2 == 0 {
		copy(tp, grid)
	} else {
		for i, x := range grid {
			tp[i] = -math.Cos(x)
		}
	}
	for k := 2 + n%2; k <= n; k += 2 {
		fk := float64(k)
		for i, x := range grid {
			tp[i] = ((fk-1)*tp[i] - math.Cos(x)*math.Pow(math.Sin(x), fk-1)) / fk
		}
	}
	return tp
}

// interp evaluates the piecewise-linear function through (xp[i], fp[i]) at
// x, clamping outside [xp[0], xp[len-1]]. xp must be increasing.
func interp(x float64, xp, fp []float64) float64 {
	last := len(xp) - 1
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[last] {
		return fp[last]
	}
	i := sort.SearchFloat64s(xp, x)
	if xp[i] == x {
		return fp[i]
	}
	t := (x - xp[i-1]) / (xp[i] - xp[i-1])
	return fp[i-1] + t*(fp[i]-fp[i-1])
}

// Sphere3 generates points on the unit 3-sphere by mapping one Van der
// Corput stream through the inverse CDF of sin² and scaling a Sphere sample.
type Sphere3 struct {
	vdc    VdCorput
	sphere Sphere
	tp     []float64
}

func NewSphere3(base [3]uint64) *Sphere3 {
	return &Sphere3{
		vdc:    NewVdCorput(base[0]),
		sphere: *NewSphere([2]uint64{base[1], base[2]}),
		tp:     cdfTable(2),
	}
}

func (s *Sphere3) Pop() [4]float64 {
	ti := halfPi * s.vdc.Pop() // map to [0, π/2]
	xi := interp(ti, s.tp, grid)
	cosxi := math.Cos(xi)
	sinxi := math.Sin(xi)
	p := s.sphere.Pop()
	return [4]float64{sinxi * p[0], sinxi * p[1], sinxi * p[2], cosxi}
}

func (s *Sphere3) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.sphere.Reseed(seed)
}

// Sequence returns a view of s that yields slices.
func (s *Sphere3) Sequence() Sequence {
	return sphere3Seq{s}
}

type sphere3Seq struct{ s *Sphere3 }

func (q sphere3Seq) Pop() []float64 {
	p := q.s.Pop()
	return p[:]
}

func (q sphere3Seq) Reseed(seed uint64) { q.s.Reseed(seed) }

// SphereN generates points uniformly distributed on the unit n-sphere. Each
// level maps its Van der Corput value through a tabulated inverse CDF to a
// polar angle ξ, scales a lower-dimensional sample by sin ξ and appends
// cos ξ. The recursion ends in a Sphere, so with three bases SphereN yields
// the same points as Sphere3.
//
// With m bases the points have m+1 coordinates.
type SphereN struct {
	vdc    VdCorput
	dim    int
	tp     []float64
	t0     float64
	rangeT float64

	// Exactly one of sphere and next is set.
	sphere *Sphere
	next   *SphereN
}

// NewSphereN returns a generator for len(base)+1 dimensional points.
// base must hold at least 3 entries.
func NewSphereN(base []uint64) *SphereN {
	m := len(base)
	// The polar angle of S^m has density sin^(m-1).
	tp := cdfTable(m - 1)
	s := &SphereN{
		vdc:    NewVdCorput(base[0]),
		dim:    m + 1,
		tp:     tp,
		t0:     tp[0],
		rangeT: tp[gridSize-1] - tp[0],
	}
	if m == 3 {
		s.sphere = NewSphere([2]uint64{base[1], base[2]})
	} else {
		s.next = NewSphereN(base[1:])
	}
	return s
}

// Dim returns the length of the generated points.
func (s *SphereN) Dim() int {
	return s.dim
}

func (s *SphereN) Pop() []float64 {
	res := make([]float64, s.dim)
	s.fill(res)
	return res
}

func (s *SphereN) fill(dst []float64) {
	ti := s.t0 + s.rangeT*s.vdc.Pop() // map to [tp[0], tp[last]]
	xi := interp(ti, s.tp, grid)
	sinxi := math.Sin(xi)

	last := len(dst) - 1
	if s.sphere != nil {
		p := s.sphere.Pop()
		copy(dst[:last], p[:])
	} else {
		s.next.fill(dst[:last])
	}
	for i := 0; i < last; i++ {
		dst[i] *= sinxi
	}
	dst[last] = math.Cos(xi)
}

func (s *SphereN) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	if s.sphere != nil {
		s.sphere.Reseed(seed)
	} else {
		s.next.Reseed(seed)
	}
}
