// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-plotaxis/plotter"
)

// geometry records the shapes an element draws. Each shape is one row:
// a position and, for rectangles and circles, a size.
type geometry struct {
	series, shape []string
	x, y, w, h    []float64
	name          string
}

func (g *geometry) add(shape string, x, y, w, h float64) {
	g.series = append(g.series, g.name)
	g.shape = append(g.shape, shape)
	g.x = append(g.x, x)
	g.y = append(g.y, y)
	g.w = append(g.w, w)
	g.h = append(g.h, h)
}

func (g *geometry) Polyline(xs, ys []float64, c color.Color) {
	for i := range xs {
		g.add("vertex", xs[i], ys[i], 0, 0)
	}
}

func (g *geometry) Rect(x, y, w, h float64, c color.Color) {
	g.add("rect", x, y, w, h)
}

func (g *geometry) Circle(x, y, r float64, c color.Color) {
	g.add("circle", x, y, 2*r, 2*r)
}

// geometryTable draws elems and returns the pixel geometry of every
// shape as a table.
func geometryTable(elems []plotter.Element) (*table.Table, error) {
	g := new(geometry)
	for _, e := range elems {
		g.name = e.Name()
		if err := e.Draw(g); err != nil {
			return nil, err
		}
	}
	return new(table.Builder).
		Add("series", g.series).
		Add("shape", g.shape).
		Add("x", g.x).
		Add("y", g.y).
		Add("w", g.w).
		Add("h", g.h).
		Done(), nil
}

func printTable(w io.Writer, tab *table.Table) error {
	return table.Fprint(w, table.GroupBy(tab, "series"))
}
