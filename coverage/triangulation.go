// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package coverage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

var (
	ErrTooFewVertices   = errors.New("coverage: at least 4 points are needed to triangulate the sphere")
	ErrInconsistentHull = errors.New("coverage: convex hull is not a closed triangulation of the input")
)

// Triangulation is the spherical Delaunay triangulation of a point set,
// taken from the convex hull of the points.
type Triangulation struct {
	Vertices  s2.PointVector
	Triangles [][3]int

	// Incident triangles of vertex v are
	// IncidentTriangleIndices[IncidentTriangleOffsets[v]:IncidentTriangleOffsets[v+1]].
	// NOTE: Each fan is sorted CCW seen from outside the sphere.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the fan of triangles around vertex vIdx.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx >= len(dt.IncidentTriangleOffsets)-1 {
		panic(fmt.Sprintf("IncidentTriangles: vertex %d out of range", vIdx))
	}
	return dt.IncidentTriangleIndices[dt.IncidentTriangleOffsets[vIdx]:dt.IncidentTriangleOffsets[vIdx+1]]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic(fmt.Sprintf("TriangleVertices: triangle %d out of range", tIdx))
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// TriangleArea returns the area of the spherical triangle tIdx in steradians.
func (dt *Triangulation) TriangleArea(tIdx int) float64 {
	a, b, c := dt.TriangleVertices(tIdx)
	return s2.PointArea(a, b, c)
}

// NewTriangulation triangulates vertices, which must lie on the unit sphere.
func NewTriangulation(vertices s2.PointVector, setters ...Option) (*Triangulation, error) {
	opts, err := applyOptions(setters)
	if err != nil {
		return nil, err
	}
	if len(vertices) < 4 {
		return nil, ErrTooFewVertices
	}

	tris, err := hullTriangles(vertices, opts.Eps)
	if err != nil {
		return nil, err
	}
	dt := &Triangulation{Vertices: vertices, Triangles: tris}
	dt.buildFans()
	return dt, nil
}

// hullTriangles returns the faces of the convex hull of vertices, each
// wound CCW seen from outside.
func hullTriangles(vertices s2.PointVector, eps float64) ([][3]int, error) {
	cloud := make([]r3.Vector, len(vertices))
	for i, p := range vertices {
		cloud[i] = p.Vector
	}
	hull := new(quickhull.QuickHull).ConvexHull(cloud, true, true, eps)

	// A closed triangulated sphere with V vertices has 2V-4 faces.
	numTriangles := 2*len(vertices) - 4
	if len(hull.Indices) != 3*numTriangles {
		return nil, ErrInconsistentHull
	}

	tris := make([][3]int, numTriangles)
	for i := range tris {
		a, b, c := hull.Indices[3*i], hull.Indices[3*i+1], hull.Indices[3*i+2]
		if !s2.Sign(vertices[a], vertices[b], vertices[c]) {
			b, c = c, b
		}
		tris[i] = [3]int{a, b, c}
	}
	return tris, nil
}

// buildFans fills the incident triangle lists from dt.Triangles.
func (dt *Triangulation) buildFans() {
	n := len(dt.Vertices)
	offsets := make([]int, n+1)
	for _, t := range dt.Triangles {
		for _, v := range t {
			offsets[v+1]++
		}
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	indices := make([]int, offsets[n])
	cursor := slices.Clone(offsets[:n])
	for tIdx, t := range dt.Triangles {
		for _, v := range t {
			indices[cursor[v]] = tIdx
			cursor[v]++
		}
	}

	dt.IncidentTriangleOffsets = offsets
	dt.IncidentTriangleIndices = indices
	for v := 0; v < n; v++ {
		orderFan(v, dt.IncidentTriangles(v), dt.Triangles)
	}
}

// orderFan reorders the triangles around v in place so that each one
// shares an edge with the next, turning CCW.
func orderFan(v int, fan []int, tris [][3]int) {
	for i := 1; i < len(fan); i++ {
		want := NextVertex(tris[fan[i-1]], v)
		for j := i; j < len(fan); j++ {
			if PrevVertex(tris[fan[j]], v) == want {
				fan[i], fan[j] = fan[j], fan[i]
				break
			}
		}
	}
}

func vertexPos(t [3]int, vIdx int) int {
	for i, v := range t {
		if v == vIdx {
			return i
		}
	}
	return -1
}

// PrevVertex returns the vertex before vIdx in the CCW winding of t.
func PrevVertex(t [3]int, vIdx int) int {
	i := vertexPos(t, vIdx)
	if i < 0 {
		panic(fmt.Sprintf("PrevVertex: vertex %d not in triangle %v", vIdx, t))
	}
	return t[(i+2)%3]
}

// NextVertex returns the vertex after vIdx in the CCW winding of t.
func NextVertex(t [3]int, vIdx int) int {
	i := vertexPos(t, vIdx)
	if i < 0 {
		panic(fmt.Sprintf("NextVertex: vertex %d not in triangle %v", vIdx, t))
	}
	return t[(i+1)%3]
}
