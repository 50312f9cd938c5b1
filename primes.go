// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lds

import "math"

// Primes returns the first n primes, the conventional choice of bases.
func Primes(n int) []uint64 {
	if n <= 0 {
		return nil
	}

	// Rosser's bound on the n-th prime holds for n >= 6.
	limit := 15
	if n >= 6 {
		fn := float64(n)
		limit = int(fn*(math.Log(fn)+math.Log(math.Log(fn)))) + 1
	}

	composite := make([]bool, limit+1)
	primes := make([]uint64, 0, n)
	for i := 2; i <= limit && len(primes) < n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint64(i))
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}
