// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSphere_Pop(t *testing.T) {
	s := NewSphere([2]uint64{2, 3})
	want := [3]float64{0.8660254037844387, -0.5, 0}
	if diff := cmp.Diff(want, s.Pop(), approx); diff != "" {
		t.Errorf("s.Pop() mismatch (-want +got):\n%s", diff)
	}
}

func TestSphere_OnSphere(t *testing.T) {
	s := NewSphere([2]uint64{2, 3})
	for _i := 0; _i < 1000; _i++ {
		p := s.Pop()
		assertUnitNorm(t, "Sphere", p[:])
	}
}

func TestSphere_HemisphereBalance(t *testing.T) {
	const n = 1024
	s := NewSphere([2]uint64{2, 3})
	north := 0
	for _i := 0; _i < n; _i++ {
		if s.Pop()[2] > 0 {
			north++
		}
	}
	if math.Abs(float64(north)-n/2) > 2 {
		t.Errorf("points with z > 0 = %v, want ~%v", north, n/2)
	}
}

func TestSphere3Hopf_Pop(t *testing.T) {
	s := NewSphere3Hopf([3]uint64{2, 3, 5})
	want := [4]float64{
		-0.22360679774997885,
		0.3872983346207417,
		0.4472135954999573,
		-0.7745966692414837,
	}
	if diff := cmp.Diff(want, s.Pop(), approx); diff != "" {
		t.Errorf("s.Pop() mismatch (-want +got):\n%s", diff)
	}
}

func TestSphere3Hopf_OnSphere(t *testing.T) {
	s := NewSphere3Hopf([3]uint64{2, 3, 5})
	for _i := 0; _i < 1000; _i++ {
		p := s.Pop()
		assertUnitNorm(t, "Sphere3Hopf", p[:])
	}
}
