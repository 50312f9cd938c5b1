// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides S2 point sets: low-discrepancy ones built from the
// lds generators, and pseudo-random ones to compare them against.

package utils

import (
	"math"
	"math/rand"

	"github.com/2dChan/lds"
	"github.com/2dChan/lds/geo"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DefaultSphereBase is the base pair used when callers have no preference.
var DefaultSphereBase = [2]uint64{2, 3}

// GenerateSpherePoints returns the first cnt points of the low-discrepancy
// Sphere sequence with the given bases.
func GenerateSpherePoints(cnt int, base [2]uint64) s2.PointVector {
	return geo.SpherePoints(lds.NewSphere(base).Sequence(), cnt)
}

// GenerateSequencePoints returns cnt points on S2 taken from a Sequence that
// yields three coordinates, such as CylinN with two bases.
func GenerateSequencePoints(seq lds.Sequence, cnt int) s2.PointVector {
	return geo.SpherePoints(seq, cnt)
}

// GenerateRandomPoints generates a vector of pseudo-random points on the S2 sphere.
// The seed parameter ensures reproducibility.
//
// NOTE: Latitude is drawn uniformly, so points cluster near the poles. This is
// the baseline the low-discrepancy sets are measured against.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make(s2.PointVector, cnt)

	for i := 0; i < cnt; i++ {
		sites[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle((random.Float64() - 0.5) * math.Pi),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		})
	}

	return sites
}

// GenerateUniformRandomPoints generates pseudo-random points distributed
// uniformly by area on the S2 sphere.
func GenerateUniformRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make(s2.PointVector, cnt)

	for i := 0; i < cnt; i++ {
		z := 2*random.Float64() - 1
		r := math.Sqrt(1 - z*z)
		phi := 2 * math.Pi * random.Float64()
		sites[i] = s2.PointFromCoords(r*math.Cos(phi), r*math.Sin(phi), z)
	}

	return sites
}
