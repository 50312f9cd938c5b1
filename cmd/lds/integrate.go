// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/2dChan/lds/internal/config"
	"github.com/2dChan/lds/internal/seqs"
	"github.com/2dChan/lds/qmc"
	"github.com/spf13/cobra"
	"github.com/toolkits/pkg/logger"
)

// integrand is a test function with a known mean over the domain of a kind.
type integrand struct {
	name  string
	f     func([]float64) float64
	exact func(dim int) float64
}

var (
	// Product of the coordinates over the unit cube.
	cubeProduct = integrand{
		name: "prod(x)",
		f: func(x []float64) float64 {
			p := 1.0
			for _, v := range x {
				p *= v
			}
			return p
		},
		exact: func(dim int) float64 { return math.Pow(0.5, float64(dim)) },
	}
	// Squared last coordinate over the unit sphere.
	sphereMoment = integrand{
		name: "x[n]^2",
		f: func(x []float64) float64 {
			v := x[len(x)-1]
			return v * v
		},
		exact: func(dim int) float64 { return 1 / float64(dim) },
	}
	// Squared radius over the unit disk.
	diskMoment = integrand{
		name:  "|x|^2",
		f:     func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
		exact: func(int) float64 { return 0.5 },
	}
)

func integrandFor(kind seqs.Kind) integrand {
	switch {
	case kind == seqs.Disk:
		return diskMoment
	case kind.OnSphere():
		return sphereMoment
	}
	return cubeProduct
}

func newIntegrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "integrate",
		Short: "estimate a test integral with quasi-Monte-Carlo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()
			return runIntegrate(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
}

func runIntegrate(ctx context.Context, w io.Writer, cfg *config.Config) error {
	kind, seq, err := newSequence(cfg)
	if err != nil {
		return err
	}
	fn := integrandFor(kind)

	got, err := qmc.IntegrateContext(ctx, seq, cfg.Count, fn.f)
	if err != nil {
		logger.Warningf("integrate: interrupted, partial estimate %g", got)
		return err
	}
	want := fn.exact(seq.dim)
	fmt.Fprintf(w, "kind=%s n=%d f=%s estimate=%.10g exact=%.10g error=%.3g\n",
		kind, cfg.Count, fn.name, got, want, math.Abs(got-want))
	return nil
}
