// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

// Vdc returns the k-th element of the base-b Van der Corput sequence: the
// base-b digits of k mirrored around the radix point. The result is in [0, 1).
func Vdc(k, base uint64) float64 {
	vdc := 0.0
	denom := 1.0
	fb := float64(base)
	for k != 0 {
		rem := k % base
		denom *= fb
		k /= base
		vdc += float64(rem) / denom
	}
	return vdc
}

// VdCorput is a Van der Corput sequence generator.
type VdCorput struct {
	count uint64
	base  uint64
}

// NewVdCorput returns a generator for the given base, which must be at least 2.
func NewVdCorput(base uint64) VdCorput {
	return VdCorput{base: base}
}

// Base returns the base the generator was created with.
func (v *VdCorput) Base() uint64 {
	return v.base
}

// Pop advances the cursor and returns the next value in [0, 1).
func (v *VdCorput) Pop() float64 {
	v.count++
	return Vdc(v.count, v.base)
}

// Reseed sets the cursor. The next Pop returns Vdc(seed+1, base).
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}
