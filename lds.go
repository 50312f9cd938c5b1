// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lds generates low-discrepancy (quasi-random) point sequences on the
// unit interval, the unit square and hypercube, the circle, the disk and
// spheres of any dimension.
//
// Every generator is built from one or more Van der Corput streams, one base
// per stream. Bases are conventionally the first primes (see Primes); they
// are not validated, and a base below 2 yields meaningless output.
//
// Generators are deterministic and not safe for concurrent use. Give each
// goroutine its own generator, or serialize access to a shared one.
package lds

import "math"

const twoPi = 2 * math.Pi

// Sequence is a generator of fixed-length points.
//
// HaltonN, CylinN and SphereN implement it directly. The fixed-dimension
// generators return arrays from Pop and expose a Sequence view through
// their Sequence method.
type Sequence interface {
	// Pop advances every internal stream by one step and returns the next point.
	Pop() []float64
	// Reseed resets every internal stream to the given cursor.
	Reseed(seed uint64)
}
