// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"

	"github.com/2dChan/lds/coverage"
	"github.com/2dChan/lds/geo"
	"github.com/2dChan/lds/internal/config"
	"github.com/2dChan/lds/internal/seqs"
	"github.com/2dChan/lds/utils"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/toolkits/pkg/logger"
)

func newCoverageCmd(opts *options) *cobra.Command {
	var baseline bool
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "measure how evenly a sequence covers its domain",
		Long:  "S2 sequences report the spread of Delaunay triangle and Voronoi cell areas, unit cube sequences the L2-star discrepancy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()
			return runCoverage(cmd.OutOrStdout(), cfg, baseline)
		},
	}
	cmd.Flags().BoolVar(&baseline, "baseline", false, "also measure uniform random points")
	return cmd
}

func runCoverage(w io.Writer, cfg *config.Config, baseline bool) error {
	kind, seq, err := newSequence(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch {
	case seq.dim == 3 && kind.OnSphere():
		fmt.Fprintln(tw, "set\tpoints\ttriangle ratio\ttriangle cv\tcell ratio\tcell cv")
		if err := writeReport(tw, string(kind), geo.SpherePoints(seq, cfg.Count)); err != nil {
			return err
		}
		if baseline {
			points := utils.GenerateUniformRandomPoints(cfg.Count, int64(cfg.Seed))
			if err := writeReport(tw, "random", points); err != nil {
				return err
			}
		}
	case isUnitCube(kind):
		fmt.Fprintln(tw, "set\tpoints\tdim\tL2-star")
		d := coverage.L2StarDiscrepancy(seq.take(cfg.Count))
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g\n", kind, cfg.Count, seq.dim, d)
		if baseline {
			d := coverage.L2StarDiscrepancy(randomCube(cfg.Count, seq.dim, int64(cfg.Seed)))
			fmt.Fprintf(tw, "random\t%d\t%d\t%.6g\n", cfg.Count, seq.dim, d)
		}
	default:
		return errors.Errorf("coverage: not defined for %s points of dim %d", kind, seq.dim)
	}
	return errors.Wrap(tw.Flush(), "write report")
}

func writeReport(w io.Writer, name string, points s2.PointVector) error {
	report, err := coverage.Evaluate(points)
	if err != nil {
		return errors.Wrapf(err, "evaluate %s", name)
	}
	logger.Debugf("coverage %s: %+v", name, report)
	fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n", name, report.Points,
		report.Triangles.Ratio(), report.Triangles.CV(),
		report.Cells.Ratio(), report.Cells.CV())
	return nil
}

func isUnitCube(kind seqs.Kind) bool {
	switch kind {
	case seqs.VdCorput, seqs.Halton, seqs.HaltonN:
		return true
	}
	return false
}

func randomCube(n, dim int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	points := make([][]float64, n)
	for i := range points {
		points[i] = make([]float64, dim)
		for j := range points[i] {
			points[i][j] = r.Float64()
		}
	}
	return points
}
