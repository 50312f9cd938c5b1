// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws point sets, triangulations and Voronoi diagrams as SVG.
package render

import (
	"io"
	"math"

	"github.com/2dChan/lds/coverage"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

const (
	backgroundStyle = "fill:rgb(255,255,255)"
	polygonStyle    = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	boundStyle      = "fill:none;stroke:rgb(0,0,0);stroke-width:1"
	SiteStyle       = "fill:rgb(255,0,0)"
	VertexStyle     = "fill:rgb(0,0,255)"
)

// Projection maps a point of the sphere onto the plane.
type Projection interface {
	Project(p s2.Point) r2.Point
}

type Canvas struct {
	Width  int
	Height int
	Radius int
	Style  string
}

func NewCanvas(width, height, radius int) Canvas {
	return Canvas{Width: width, Height: height, Radius: radius, Style: SiteStyle}
}

// Mercator returns the projection used for sphere maps; x spans [-width, width].
func (c Canvas) Mercator() Projection {
	return s2.NewMercatorProjection(float64(c.Width))
}

func (c Canvas) PlateCarree() Projection {
	return s2.NewPlateCarreeProjection(float64(c.Width))
}

// SphereToScreen maps p to pixel coordinates. Points beyond the map edge
// are clamped to it.
func (c Canvas) SphereToScreen(proj Projection, p s2.Point) (int, int) {
	xScale := float64(c.Width)
	r2p := proj.Project(p)

	x := (r2p.X + xScale) / (2 * xScale)
	y := (-r2p.Y + xScale/2) / xScale

	return int(clamp(x) * float64(c.Width)), int(clamp(y) * float64(c.Height))
}

// PlaneToScreen maps p from bound to pixel coordinates, y pointing up.
func (c Canvas) PlaneToScreen(bound r2.Rect, p r2.Point) (int, int) {
	lo, size := bound.Lo(), bound.Size()
	x := (p.X - lo.X) / size.X
	y := 1 - (p.Y-lo.Y)/size.Y
	return int(x * float64(c.Width)), int(y * float64(c.Height))
}

func (c Canvas) start(w io.Writer) *svg.SVG {
	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height)
	canvas.Rect(0, 0, c.Width, c.Height, backgroundStyle)
	return canvas
}

// Plane draws points lying inside bound.
func (c Canvas) Plane(w io.Writer, points []r2.Point, bound r2.Rect) {
	canvas := c.start(w)
	canvas.Rect(0, 0, c.Width, c.Height, boundStyle)
	for _, p := range points {
		x, y := c.PlaneToScreen(bound, p)
		canvas.Circle(x, y, c.Radius, c.Style)
	}
	canvas.End()
}

// Sites draws points of the sphere as dots on a map.
func (c Canvas) Sites(w io.Writer, proj Projection, points s2.PointVector) {
	canvas := c.start(w)
	c.dots(canvas, proj, points)
	canvas.End()
}

func (c Canvas) Triangulation(w io.Writer, proj Projection, dt *coverage.Triangulation) {
	canvas := c.start(w)
	xPoints := make([]int, 0, 3)
	yPoints := make([]int, 0, 3)
	for tIdx := range dt.Triangles {
		p0, p1, p2 := dt.TriangleVertices(tIdx)
		xPoints, yPoints = c.polygon(proj, s2.PointVector{p0, p1, p2}, xPoints[:0], yPoints[:0])
		if xPoints != nil {
			canvas.Polygon(xPoints, yPoints, polygonStyle)
		}
	}
	c.dots(canvas, proj, dt.Vertices)
	canvas.End()
}

func (c Canvas) Diagram(w io.Writer, proj Projection, d *coverage.Diagram) error {
	canvas := c.start(w)
	xPoints := make([]int, 0)
	yPoints := make([]int, 0)
	verts := make(s2.PointVector, 0)
	for i := 0; i < d.NumCells(); i++ {
		cell, err := d.Cell(i)
		if err != nil {
			return err
		}
		verts = verts[:0]
		for j := 0; j < cell.NumVertices(); j++ {
			v, err := cell.Vertex(j)
			if err != nil {
				return err
			}
			verts = append(verts, v)
		}
		xPoints, yPoints = c.polygon(proj, verts, xPoints[:0], yPoints[:0])
		if xPoints != nil {
			canvas.Polygon(xPoints, yPoints, polygonStyle)
		}
	}
	c.dots(canvas, proj, d.Sites)
	canvas.End()
	return nil
}

// polygon appends the screen coordinates of verts. It returns nil slices
// for polygons that may cross the antimeridian.
func (c Canvas) polygon(proj Projection, verts s2.PointVector, xPoints, yPoints []int) ([]int, []int) {
	if len(verts) == 0 {
		return nil, nil
	}
	lng0 := s2.LatLngFromPoint(verts[0]).Lng.Radians()
	for _, v := range verts {
		lng := s2.LatLngFromPoint(v).Lng.Radians()
		if math.Abs(lng-lng0) > math.Pi {
			return nil, nil
		}
		x, y := c.SphereToScreen(proj, v)
		xPoints = append(xPoints, x)
		yPoints = append(yPoints, y)
	}
	return xPoints, yPoints
}

func (c Canvas) dots(canvas *svg.SVG, proj Projection, points s2.PointVector) {
	for _, p := range points {
		x, y := c.SphereToScreen(proj, p)
		canvas.Circle(x, y, c.Radius, c.Style)
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(v, 1))
}
