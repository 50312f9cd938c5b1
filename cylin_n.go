// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import "math"

// CylinN generates points on the unit n-sphere with the cylindrical
// coordinate method. Each level draws a height uniformly in [-1, 1] and
// scales a lower-dimensional sample into the remaining subspace.
//
// With m bases the points have m+1 coordinates.
type CylinN struct {
	vdc VdCorput
	dim int

	// Exactly one of circ and next is set.
	circ *Circle
	next *CylinN
}

// NewCylinN returns a generator for len(base)+1 dimensional points.
// base must hold at least 2 entries.
func NewCylinN(base []uint64) *CylinN {
	c := &CylinN{
		vdc: NewVdCorput(base[0]),
		dim: len(base) + 1,
	}
	if len(base) == 2 {
		c.circ = NewCircle(base[1])
	} else {
		c.next = NewCylinN(base[1:])
	}
	return c
}

// Dim returns the length of the generated points.
func (c *CylinN) Dim() int {
	return c.dim
}

func (c *CylinN) Pop() []float64 {
	res := make([]float64, c.dim)
	c.fill(res)
	return res
}

func (c *CylinN) fill(dst []float64) {
	cosphi := 2*c.vdc.Pop() - 1
	sinphi := math.Sqrt(1 - cosphi*cosphi)

	last := len(dst) - 1
	if c.circ != nil {
		p := c.circ.Pop()
		copy(dst[:last], p[:])
	} else {
		c.next.fill(dst[:last])
	}
	for i := 0; i < last; i++ {
		dst[i] *= sinphi
	}
	dst[last] = cosphi
}

func (c *CylinN) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
	if c.circ != nil {
		c.circ.Reseed(seed)
	} else {
		c.next.Reseed(seed)
	}
}
