// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package qmc estimates integrals by averaging a function over the points of
// a low-discrepancy sequence (quasi-Monte-Carlo integration).
//
// The estimate over a Halton sequence is the integral over the unit
// hypercube; over a SphereN or Sphere sequence it is the mean over the sphere.
package qmc

import (
	"context"

	"github.com/2dChan/lds"
)

// checkEvery is how many points IntegrateContext evaluates between context checks.
const checkEvery = 1024

// Integrate returns the mean of f over the next n points of seq.
// It returns 0 when n <= 0.
func Integrate(seq lds.Sequence, n int, f func([]float64) float64) float64 {
	if n <= 0 {
		return 0
	}
	var acc kahan
	for _i := 0; _i < n; _i++ {
		acc.add(f(seq.Pop()))
	}
	return acc.sum / float64(n)
}

// IntegrateContext is Integrate with cancellation. On cancellation it returns
// the context error and the mean of the points evaluated so far.
func IntegrateContext(ctx context.Context, seq lds.Sequence, n int, f func([]float64) float64) (float64, error) {
	if n <= 0 {
		return 0, ctx.Err()
	}
	var acc kahan
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				if i == 0 {
					return 0, err
				}
				return acc.sum / float64(i), err
			}
		}
		acc.add(f(seq.Pop()))
	}
	return acc.sum / float64(n), nil
}

// kahan is a compensated running sum.
type kahan struct {
	sum, c float64
}

func (k *kahan) add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}
