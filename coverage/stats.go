// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package coverage

import (
	"math"

	"github.com/golang/geo/s2"
)

// Stats summarizes a set of areas.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Ratio returns Max/Min, the spread between the largest and smallest area.
// A perfectly even set has ratio 1.
func (s Stats) Ratio() float64 {
	if s.Min == 0 {
		return math.Inf(1)
	}
	return s.Max / s.Min
}

// CV returns the coefficient of variation StdDev/Mean.
func (s Stats) CV() float64 {
	if s.Mean == 0 {
		return 0
	}
	return s.StdDev / s.Mean
}

func newStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{
		Count: len(values),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	sum := 0.0
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(values))

	sq := 0.0
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(values)))
	return s
}

func TriangleAreaStats(dt *Triangulation) Stats {
	areas := make([]float64, len(dt.Triangles))
	for i := range dt.Triangles {
		areas[i] = dt.TriangleArea(i)
	}
	return newStats(areas)
}

func CellAreaStats(d *Diagram) Stats {
	areas := make([]float64, d.NumCells())
	for i := range areas {
		areas[i] = Cell{idx: i, d: d}.Area()
	}
	return newStats(areas)
}

// Report holds the coverage measures of a point set on the sphere.
type Report struct {
	Points    int
	Triangles Stats
	Cells     Stats
}

// Evaluate triangulates points and reports the spread of Delaunay triangle
// areas and Voronoi cell areas.
func Evaluate(points s2.PointVector, setters ...Option) (*Report, error) {
	d, err := NewDiagram(points, setters...)
	if err != nil {
		return nil, err
	}
	return &Report{
		Points:    len(points),
		Triangles: TriangleAreaStats(d.Triangulation()),
		Cells:     CellAreaStats(d),
	}, nil
}
