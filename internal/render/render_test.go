// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/2dChan/lds/coverage"
	"github.com/2dChan/lds/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

var unitSquare = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})

func TestCanvas_SphereToScreen(t *testing.T) {
	c := NewCanvas(800, 400, 2)
	proj := c.Mercator()

	tests := []struct {
		name  string
		p     s2.Point
		wantX int
		wantY int
	}{
		{"origin", s2.PointFromCoords(1, 0, 0), 400, 200},
		{"north pole clamped", s2.PointFromCoords(0, 0, 1), 400, 0},
		{"south pole clamped", s2.PointFromCoords(0, 0, -1), 400, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.SphereToScreen(proj, tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("SphereToScreen(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCanvas_PlaneToScreen(t *testing.T) {
	c := NewCanvas(100, 50, 1)

	tests := []struct {
		p     r2.Point
		wantX int
		wantY int
	}{
		{r2.Point{X: 0, Y: 0}, 0, 50},
		{r2.Point{X: 1, Y: 1}, 100, 0},
		{r2.Point{X: 0.5, Y: 0.5}, 50, 25},
	}
	for _, tt := range tests {
		x, y := c.PlaneToScreen(unitSquare, tt.p)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("PlaneToScreen(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestCanvas_Plane(t *testing.T) {
	var buf bytes.Buffer
	points := []r2.Point{{X: 0.1, Y: 0.2}, {X: 0.5, Y: 0.5}, {X: 0.9, Y: 0.3}}
	NewCanvas(100, 100, 1).Plane(&buf, points, unitSquare)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("Plane output is not an svg document:\n%s", out)
	}
	if got := strings.Count(out, "<circle"); got != len(points) {
		t.Errorf("circles = %d, want %d", got, len(points))
	}
}

func TestCanvas_Diagram(t *testing.T) {
	const numPoints = 100
	d, err := coverage.NewDiagram(utils.GenerateSpherePoints(numPoints, utils.DefaultSphereBase))
	if err != nil {
		t.Fatalf("NewDiagram: %v", err)
	}

	var buf bytes.Buffer
	c := NewCanvas(800, 400, 2)
	if err := c.Diagram(&buf, c.Mercator(), d); err != nil {
		t.Fatalf("Diagram: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "<circle"); got != numPoints {
		t.Errorf("circles = %d, want %d", got, numPoints)
	}
	polygons := strings.Count(out, "<polygon")
	if polygons == 0 || polygons > numPoints {
		t.Errorf("polygons = %d, want in (0 %d]", polygons, numPoints)
	}
}

func TestCanvas_Triangulation(t *testing.T) {
	const numPoints = 50
	dt, err := coverage.NewTriangulation(utils.GenerateSpherePoints(numPoints, utils.DefaultSphereBase))
	if err != nil {
		t.Fatalf("NewTriangulation: %v", err)
	}

	var buf bytes.Buffer
	c := NewCanvas(800, 400, 2)
	c.Triangulation(&buf, c.PlateCarree(), dt)

	out := buf.String()
	if got := strings.Count(out, "<circle"); got != numPoints {
		t.Errorf("circles = %d, want %d", got, numPoints)
	}
	if got := strings.Count(out, "<polygon"); got == 0 || got > len(dt.Triangles) {
		t.Errorf("polygons = %d, want in (0 %d]", got, len(dt.Triangles))
	}
}
