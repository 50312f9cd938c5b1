// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package coverage measures how evenly a point set covers its domain.
//
// Points on the unit sphere are triangulated (spherical Delaunay, via the
// convex hull) and partitioned into Voronoi cells; the spread of triangle
// and cell areas shows how uniform the set is. Points in the unit cube are
// scored by their L2-star discrepancy.
package coverage
