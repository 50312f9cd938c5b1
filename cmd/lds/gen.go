// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/2dChan/lds/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/toolkits/pkg/logger"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type pointSet struct {
	Kind   string      `json:"kind"`
	Bases  []uint64    `json:"bases,omitempty"`
	Seed   uint64      `json:"seed"`
	Dim    int         `json:"dim"`
	Points [][]float64 `json:"points"`
}

func newGenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "write sequence points as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()
			return runGen(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "csv or json")
	return cmd
}

func runGen(stdout io.Writer, cfg *config.Config) error {
	kind, seq, err := newSequence(cfg)
	if err != nil {
		return err
	}
	points := seq.take(cfg.Count)
	logger.Infof("gen: %d %s points of dim %d", len(points), kind, seq.dim)

	w, closeFn, err := openOutput(cfg.Output, stdout)
	if err != nil {
		return err
	}
	switch cfg.Format {
	case "json":
		err = writeJSON(w, pointSet{
			Kind:   string(kind),
			Bases:  cfg.Bases,
			Seed:   cfg.Seed,
			Dim:    seq.dim,
			Points: points,
		})
	default:
		err = writeCSV(w, seq.dim, points)
	}
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

func writeCSV(w io.Writer, dim int, points [][]float64) error {
	cw := csv.NewWriter(w)
	header := make([]string, dim)
	for i := range header {
		header[i] = "x" + strconv.Itoa(i)
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	record := make([]string, dim)
	for _, p := range points {
		for i, v := range p {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write csv record")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

func writeJSON(w io.Writer, set pointSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(set), "encode json")
}
