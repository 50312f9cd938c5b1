// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geo converts generator output into github.com/golang/geo types.

package geo

import (
	"math"

	"github.com/2dChan/lds"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Vector returns p as an r3.Vector.
func Vector(p [3]float64) r3.Vector {
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// SpherePoint returns p as an s2.Point. p is renormalized to absorb rounding.
func SpherePoint(p [3]float64) s2.Point {
	return s2.Point{Vector: Vector(p).Normalize()}
}

// PopSpherePoint advances s and returns the point as an s2.Point.
func PopSpherePoint(s *lds.Sphere) s2.Point {
	return SpherePoint(s.Pop())
}

// PlanePoint returns p as an r2.Point.
func PlanePoint(p [2]float64) r2.Point {
	return r2.Point{X: p[0], Y: p[1]}
}

// CircleAngle returns the angle θ in [0, 2π) of a Circle point (sin θ, cos θ).
func CircleAngle(p [2]float64) s1.Angle {
	theta := math.Atan2(p[0], p[1])
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return s1.Angle(theta)
}

// PlanePoints pops cnt points from a two-dimensional sequence.
// NOTE: Coordinates beyond the second are dropped.
func PlanePoints(seq lds.Sequence, cnt int) []r2.Point {
	points := make([]r2.Point, cnt)
	for i := 0; i < cnt; i++ {
		p := seq.Pop()
		points[i] = r2.Point{X: p[0], Y: p[1]}
	}
	return points
}

// SpherePoints pops cnt points from a sequence of points on S2.
func SpherePoints(seq lds.Sequence, cnt int) s2.PointVector {
	points := make(s2.PointVector, cnt)
	for i := 0; i < cnt; i++ {
		points[i] = SpherePoint([3]float64(seq.Pop()[:3]))
	}
	return points
}
