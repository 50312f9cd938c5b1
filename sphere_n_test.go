// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Tables

func TestLinspace(t *testing.T) {
	got := linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("linspace(0, 1, 5) mismatch (-want +got):\n%s", diff)
	}
	if grid[0] != 0 || grid[gridSize-1] != math.Pi {
		t.Errorf("grid endpoints = %v, %v, want 0, π", grid[0], grid[gridSize-1])
	}
}

func TestCdfTable(t *testing.T) {
	tests := []struct {
		n          int
		start, end float64
	}{
		{0, 0, math.Pi},
		{1, -1, 1},
		{2, 0, math.Pi / 2},
		{3, -2.0 / 3, 2.0 / 3},
		{4, 0, 3 * math.Pi / 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("N%d", tt.n), func(t *testing.T) {
			tp := cdfTable(tt.n)
			if len(tp) != gridSize {
				t.Fatalf("len(cdfTable(%d)) = %v, want %v", tt.n, len(tp), gridSize)
			}
			if math.Abs(tp[0]-tt.start) > defaultEps {
				t.Errorf("cdfTable(%d)[0] = %v, want %v", tt.n, tp[0], tt.start)
			}
			if math.Abs(tp[gridSize-1]-tt.end) > defaultEps {
				t.Errorf("cdfTable(%d)[last] = %v, want %v", tt.n, tp[gridSize-1], tt.end)
			}
			for i := 1; i < gridSize; i++ {
				if tp[i] < tp[i-1] {
					t.Fatalf("cdfTable(%d) decreases at %d: %v < %v", tt.n, i, tp[i], tp[i-1])
				}
			}
		})
	}
}

func TestInterp(t *testing.T) {
	xp := []float64{0, 1, 3}
	fp := []float64{10, 20, 40}
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below range", -1, 10},
		{"first knot", 0, 10},
		{"inner knot", 1, 20},
		{"first segment", 0.5, 15},
		{"second segment", 2, 30},
		{"last knot", 3, 40},
		{"above range", 5, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interp(tt.x, xp, fp); math.Abs(got-tt.want) > defaultEps {
				t.Errorf("interp(%v, ...) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

// Sphere3

func TestSphere3_Pop(t *testing.T) {
	s := NewSphere3([3]uint64{2, 3, 5})
	want := [4]float64{0.8966646826186098, 0.2913440162992141, -1.0 / 3, 0}
	if diff := cmp.Diff(want, s.Pop(), approx); diff != "" {
		t.Errorf("s.Pop() mismatch (-want +got):\n%s", diff)
	}
}

func TestSphere3_OnSphere(t *testing.T) {
	s := NewSphere3([3]uint64{2, 3, 5})
	for _i := 0; _i < 1000; _i++ {
		p := s.Pop()
		assertUnitNorm(t, "Sphere3", p[:])
	}
}

// CylinN

func TestCylinN_Pop(t *testing.T) {
	c := NewCylinN([]uint64{2, 3, 5, 7})
	want := []float64{0.5896942325314937, 0.4702654580212986, -0.565685424949238, -1.0 / 3, 0}
	if diff := cmp.Diff(want, c.Pop(), approx); diff != "" {
		t.Errorf("c.Pop() mismatch (-want +got):\n%s", diff)
	}
}

func TestCylinN_TwoBasesMatchesSphere(t *testing.T) {
	// Archimedes: the cylindrical construction of S2 is the Sphere construction.
	c := NewCylinN([]uint64{2, 3})
	s := NewSphere([2]uint64{2, 3})
	for i := 0; i < 200; i++ {
		want := s.Pop()
		if diff := cmp.Diff(want[:], c.Pop(), approx); diff != "" {
			t.Fatalf("c.Pop() #%d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCylinN_Dim(t *testing.T) {
	for m := 2; m <= 10; m++ {
		t.Run(fmt.Sprintf("M%d", m), func(t *testing.T) {
			c := NewCylinN(Primes(m))
			if got := c.Dim(); got != m+1 {
				t.Errorf("c.Dim() = %v, want %v", got, m+1)
			}
			for _i := 0; _i < 100; _i++ {
				p := c.Pop()
				if len(p) != m+1 {
					t.Fatalf("len(c.Pop()) = %v, want %v", len(p), m+1)
				}
				assertUnitNorm(t, "CylinN", p)
			}
		})
	}
}

// SphereN

func TestSphereN_Pop(t *testing.T) {
	s := NewSphereN([]uint64{2, 3, 5, 7})
	want := []float64{
		0.6031153874276115,
		0.4809684718990214,
		-0.5785601510223212,
		0.2649326520763179,
		0,
	}
	if diff := cmp.Diff(want, s.Pop(), approx); diff != "" {
		t.Errorf("s.Pop() mismatch (-want +got):\n%s", diff)
	}
}

func TestSphereN_ThreeBasesMatchesSphere3(t *testing.T) {
	sn := NewSphereN([]uint64{2, 3, 5})
	s3 := NewSphere3([3]uint64{2, 3, 5})
	for i := 0; i < 200; i++ {
		want := s3.Pop()
		if diff := cmp.Diff(want[:], sn.Pop(), approx); diff != "" {
			t.Fatalf("sn.Pop() #%d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestSphereN_SecondMoments(t *testing.T) {
	const numPoints = 4096
	for _, m := range []int{3, 4, 6} {
		t.Run(fmt.Sprintf("M%d", m), func(t *testing.T) {
			s := NewSphereN(Primes(m))
			sums := make([]float64, m+1)
			for _i := 0; _i < numPoints; _i++ {
				for i, v := range s.Pop() {
					sums[i] += v * v
				}
			}
			// Uniform on S^m: every axis has E[x²] = 1/(m+1).
			want := 1 / float64(m+1)
			for i, sum := range sums {
				if got := sum / numPoints; math.Abs(got-want) > 5e-3 {
					t.Errorf("E[x%d²] = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestSphereN_Dim(t *testing.T) {
	for m := 3; m <= 12; m++ {
		t.Run(fmt.Sprintf("M%d", m), func(t *testing.T) {
			s := NewSphereN(Primes(m))
			if got := s.Dim(); got != m+1 {
				t.Errorf("s.Dim() = %v, want %v", got, m+1)
			}
			for _i := 0; _i < 200; _i++ {
				p := s.Pop()
				if len(p) != m+1 {
					t.Fatalf("len(s.Pop()) = %v, want %v", len(p), m+1)
				}
				assertUnitNorm(t, "SphereN", p)
			}
		})
	}
}

func TestSphereN_Reseed(t *testing.T) {
	bases := Primes(6)
	for _, seed := range []uint64{0, 1, 100, 12345} {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			assertReseedIsReset(t, func() Sequence { return NewSphereN(bases) }, seed, 20)
		})
	}
}

// Benchmarks

func BenchmarkNewSphereN(b *testing.B) {
	for _, m := range []int{3, 8, 16} {
		b.Run(fmt.Sprintf("M%d", m), func(b *testing.B) {
			bases := Primes(m)
			b.ReportAllocs()
			b.ResetTimer()
			for _i := 0; _i < b.N; _i++ {
				NewSphereN(bases)
			}
		})
	}
}

func BenchmarkSphereN_Pop(b *testing.B) {
	for _, m := range []int{3, 8, 16} {
		b.Run(fmt.Sprintf("M%d", m), func(b *testing.B) {
			s := NewSphereN(Primes(m))
			b.ReportAllocs()
			b.ResetTimer()
			for _i := 0; _i < b.N; _i++ {
				s.Pop()
			}
		})
	}
}
