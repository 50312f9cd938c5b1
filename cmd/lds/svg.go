// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"io"

	"github.com/2dChan/lds/coverage"
	"github.com/2dChan/lds/geo"
	"github.com/2dChan/lds/internal/config"
	"github.com/2dChan/lds/internal/render"
	"github.com/2dChan/lds/internal/seqs"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/toolkits/pkg/logger"
)

type svgOptions struct {
	voronoi    bool
	delaunay   bool
	projection string
}

var (
	unitSquare = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
	unitBox    = r2.RectFromPoints(r2.Point{X: -1, Y: -1}, r2.Point{X: 1, Y: 1})
)

func newSVGCmd(opts *options) *cobra.Command {
	svgOpts := &svgOptions{}
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "render a planar or S2 sequence as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Close()
			return runSVG(cmd.OutOrStdout(), cfg, svgOpts)
		},
	}
	cmd.Flags().BoolVar(&svgOpts.voronoi, "voronoi", false, "draw Voronoi cells of S2 points")
	cmd.Flags().BoolVar(&svgOpts.delaunay, "delaunay", false, "draw Delaunay triangles of S2 points")
	cmd.Flags().StringVar(&svgOpts.projection, "projection", "mercator", "map projection: mercator or platecarree")
	return cmd
}

func runSVG(stdout io.Writer, cfg *config.Config, svgOpts *svgOptions) error {
	kind, seq, err := newSequence(cfg)
	if err != nil {
		return err
	}
	canvas := render.NewCanvas(cfg.SVG.Width, cfg.SVG.Height, cfg.SVG.Radius)

	var draw func(w io.Writer) error
	switch {
	case seq.dim == 2:
		bound := unitSquare
		if kind == seqs.Circle || kind == seqs.Disk {
			bound = unitBox
		}
		points := geo.PlanePoints(seq, cfg.Count)
		draw = func(w io.Writer) error {
			canvas.Plane(w, points, bound)
			return nil
		}
	case seq.dim == 3 && kind.OnSphere():
		proj, err := projection(canvas, svgOpts.projection)
		if err != nil {
			return err
		}
		points := geo.SpherePoints(seq, cfg.Count)
		switch {
		case svgOpts.voronoi:
			d, err := coverage.NewDiagram(points)
			if err != nil {
				return err
			}
			draw = func(w io.Writer) error { return canvas.Diagram(w, proj, d) }
		case svgOpts.delaunay:
			dt, err := coverage.NewTriangulation(points)
			if err != nil {
				return err
			}
			draw = func(w io.Writer) error {
				canvas.Triangulation(w, proj, dt)
				return nil
			}
		default:
			draw = func(w io.Writer) error {
				canvas.Sites(w, proj, points)
				return nil
			}
		}
	default:
		return errors.Errorf("svg: %s points of dim %d cannot be drawn", kind, seq.dim)
	}

	w, closeFn, err := openOutput(cfg.Output, stdout)
	if err != nil {
		return err
	}
	err = draw(w)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err == nil {
		logger.Infof("svg: rendered %d %s points", cfg.Count, kind)
	}
	return err
}

func projection(c render.Canvas, name string) (render.Projection, error) {
	switch name {
	case "mercator":
		return c.Mercator(), nil
	case "platecarree":
		return c.PlateCarree(), nil
	}
	return nil, errors.Errorf("unknown projection %q", name)
}
