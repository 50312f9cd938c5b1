// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import "math"

// Sphere generates points on the unit 2-sphere. The first base drives the
// polar coordinate, sampled uniformly in cosine space; the second drives a
// Circle for the azimuth.
type Sphere struct {
	vdc  VdCorput
	circ Circle
}

func NewSphere(base [2]uint64) *Sphere {
	return &Sphere{
		vdc:  NewVdCorput(base[0]),
		circ: Circle{vdc: NewVdCorput(base[1])},
	}
}

func (s *Sphere) Pop() [3]float64 {
	cosphi := 2*s.vdc.Pop() - 1
	sinphi := math.Sqrt(1 - cosphi*cosphi)
	c := s.circ.Pop()
	return [3]float64{sinphi * c[0], sinphi * c[1], cosphi}
}

func (s *Sphere) Reseed(seed uint64) {
	s.circ.Reseed(seed)
	s.vdc.Reseed(seed)
}

// Sequence returns a view of s that yields slices.
func (s *Sphere) Sequence() Sequence {
	return sphereSeq{s}
}

type sphereSeq struct{ s *Sphere }

func (q sphereSeq) Pop() []float64 {
	p := q.s.Pop()
	return p[:]
}

func (q sphereSeq) Reseed(seed uint64) { q.s.Reseed(seed) }

// Sphere3Hopf generates points on the unit 3-sphere through the Hopf
// fibration: two streams drive the angles φ and ψ, the third the fibre
// height.
type Sphere3Hopf struct {
	vdc0 VdCorput
	vdc1 VdCorput
	vdc2 VdCorput
}

func NewSphere3Hopf(base [3]uint64) *Sphere3Hopf {
	return &Sphere3Hopf{
		vdc0: NewVdCorput(base[0]),
		vdc1: NewVdCorput(base[1]),
		vdc2: NewVdCorput(base[2]),
	}
}

func (s *Sphere3Hopf) Pop() [4]float64 {
	phi := s.vdc0.Pop() * twoPi
	psy := s.vdc1.Pop() * twoPi
	vd := s.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1 - vd)
	return [4]float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

func (s *Sphere3Hopf) Reseed(seed uint64) {
	s.vdc0.Reseed(seed)
	s.vdc1.Reseed(seed)
	s.vdc2.Reseed(seed)
}

// Sequence returns a view of s that yields slices.
func (s *Sphere3Hopf) Sequence() Sequence {
	return hopfSeq{s}
}

type hopfSeq struct{ s *Sphere3Hopf }

func (q hopfSeq) Pop() []float64 {
	p := q.s.Pop()
	return p[:]
}

func (q hopfSeq) Reseed(seed uint64) { q.s.Reseed(seed) }
