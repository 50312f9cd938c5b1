// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package coverage

import "math"

// L2StarDiscrepancy returns the L2-star discrepancy of points in the unit
// hypercube, computed exactly with Warnock's formula in O(N²·d). All points
// must have the same dimension. An empty set has discrepancy 0.
func L2StarDiscrepancy(points [][]float64) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	dim := len(points[0])

	sum1 := 0.0
	for _, p := range points {
		prod := 1.0
		for _, x := range p {
			prod *= 1 - x*x
		}
		sum1 += prod
	}

	sum2 := 0.0
	for i, p := range points {
		for j := i; j < n; j++ {
			q := points[j]
			prod := 1.0
			for k := 0; k < dim; k++ {
				prod *= 1 - math.Max(p[k], q[k])
			}
			if i == j {
				sum2 += prod
			} else {
				sum2 += 2 * prod
			}
		}
	}

	fn := float64(n)
	fd := float64(dim)
	t2 := math.Pow(3, -fd) - math.Pow(2, 1-fd)/fn*sum1 + sum2/(fn*fn)
	return math.Sqrt(math.Max(t2, 0))
}
