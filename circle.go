// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import "math"

// Circle generates points on the unit circle.
type Circle struct {
	vdc VdCorput
}

func NewCircle(base uint64) *Circle {
	return &Circle{vdc: NewVdCorput(base)}
}

// Pop returns (sin θ, cos θ) where θ = 2π·vdc.
// NOTE: sin comes first; Sphere and the recursive generators rely on it.
func (c *Circle) Pop() [2]float64 {
	theta := c.vdc.Pop() * twoPi
	return [2]float64{math.Sin(theta), math.Cos(theta)}
}

func (c *Circle) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
}

// Sequence returns a view of c that yields slices.
func (c *Circle) Sequence() Sequence {
	return circleSeq{c}
}

type circleSeq struct{ c *Circle }

func (s circleSeq) Pop() []float64 {
	p := s.c.Pop()
	return p[:]
}

func (s circleSeq) Reseed(seed uint64) { s.c.Reseed(seed) }

// Disk generates points uniformly distributed over the unit disk. The first
// base drives the angle, the second the squared radius.
type Disk struct {
	vdc0 VdCorput
	vdc1 VdCorput
}

func NewDisk(base [2]uint64) *Disk {
	return &Disk{
		vdc0: NewVdCorput(base[0]),
		vdc1: NewVdCorput(base[1]),
	}
}

func (d *Disk) Pop() [2]float64 {
	theta := d.vdc0.Pop() * twoPi
	radius := math.Sqrt(d.vdc1.Pop())
	return [2]float64{radius * math.Sin(theta), radius * math.Cos(theta)}
}

func (d *Disk) Reseed(seed uint64) {
	d.vdc0.Reseed(seed)
	d.vdc1.Reseed(seed)
}

// Sequence returns a view of d that yields slices.
func (d *Disk) Sequence() Sequence {
	return diskSeq{d}
}

type diskSeq struct{ d *Disk }

func (s diskSeq) Pop() []float64 {
	p := s.d.Pop()
	return p[:]
}

func (s diskSeq) Reseed(seed uint64) { s.d.Reseed(seed) }
