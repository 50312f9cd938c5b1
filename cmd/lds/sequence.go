// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"io"
	"os"

	"github.com/2dChan/lds"
	"github.com/pkg/errors"
)

type sequence struct {
	lds.Sequence
	dim int
}

func (s *sequence) take(n int) [][]float64 {
	points := make([][]float64, n)
	for i := range points {
		points[i] = s.Pop()
	}
	return points
}

// openOutput returns the configured output, or stdout when path is empty.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	return f, f.Close, nil
}
