// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geo

import (
	"math"
	"testing"

	"github.com/2dChan/lds"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const defaultEps = 1e-12

func TestVector(t *testing.T) {
	want := r3.Vector{X: 1, Y: 2, Z: 3}
	if got := Vector([3]float64{1, 2, 3}); got != want {
		t.Errorf("Vector(...) = %v, want %v", got, want)
	}
}

func TestSpherePoint_NormalizesVector(t *testing.T) {
	c := lds.NewCylinN([]uint64{2, 3})
	for _i := 0; _i < 50; _i++ {
		p := [3]float64(c.Pop())
		got := SpherePoint(p)
		if want := Vector(p).Normalize(); !got.ApproxEqual(s2.Point{Vector: want}) {
			t.Errorf("SpherePoint(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestSpherePoint_OnSphere(t *testing.T) {
	s := lds.NewSphere([2]uint64{2, 3})
	for i := 0; i < 500; i++ {
		p := PopSpherePoint(s)
		if n := p.Norm(); math.Abs(n-1) > defaultEps {
			t.Errorf("PopSpherePoint(...) #%d norm = %v, want ~1.0", i, n)
		}
	}
}

func TestCircleAngle(t *testing.T) {
	tests := []struct {
		name string
		base uint64
		want []s1.Angle
	}{
		{"base 2", 2, []s1.Angle{math.Pi, math.Pi / 2, 3 * math.Pi / 2}},
		{"base 3", 3, []s1.Angle{2 * math.Pi / 3, 4 * math.Pi / 3, 2 * math.Pi / 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := lds.NewCircle(tt.base)
			for i, want := range tt.want {
				got := CircleAngle(c.Pop())
				if math.Abs(float64(got-want)) > 1e-9 {
					t.Errorf("CircleAngle(c.Pop()) #%d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestPlanePoints(t *testing.T) {
	got := PlanePoints(lds.NewHalton([2]uint64{2, 3}).Sequence(), 3)
	want := []r2.Point{
		{X: 0.5, Y: 1.0 / 3},
		{X: 0.25, Y: 2.0 / 3},
		{X: 0.75, Y: 1.0 / 9},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("PlanePoints(...) mismatch (-want +got):\n%s", diff)
	}
	if p := PlanePoint([2]float64{0.5, 1.0 / 3}); p != want[0] {
		t.Errorf("PlanePoint(...) = %v, want %v", p, want[0])
	}
}

func TestSpherePoints(t *testing.T) {
	const cnt = 100
	points := SpherePoints(lds.NewSphere([2]uint64{2, 3}).Sequence(), cnt)
	if len(points) != cnt {
		t.Fatalf("len(SpherePoints(...)) = %v, want %v", len(points), cnt)
	}

	s := lds.NewSphere([2]uint64{2, 3})
	for i, got := range points {
		want := SpherePoint(s.Pop())
		if got.Distance(want) > 1e-12 {
			t.Errorf("SpherePoints(...)[%d] = %v, want %v", i, got, want)
		}
	}
}
