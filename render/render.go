// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-plotaxis/chart"
	"github.com/aclements/go-plotaxis/plotter"
)

var (
	axisColor  = color.Gray{Y: 0x40}
	gridColor  = color.Gray{Y: 0xe0}
	hoverColor = color.RGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
)

const tickLen = 4

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

// surface is a plotter.Canvas that can also draw axes. Coordinates are
// relative to the plot area origin.
type surface interface {
	plotter.Canvas
	Line(x1, y1, x2, y2 float64, c color.Color)
	Text(x, y float64, s string, a anchor, c color.Color)
}

// drawChart draws the axes of c, every element, and the pointer crosshair
// onto s. The chart must already be sized by l.
func drawChart(s surface, c *chart.Chart, l Layout, elems []plotter.Element) error {
	xs, err := c.XScale()
	if err != nil {
		return err
	}
	ys, err := c.YScale()
	if err != nil {
		return err
	}
	w, h := c.GraphWidth(), c.GraphHeight()

	for _, tk := range ys.Ticks(c.Y.TickCount()) {
		s.Line(0, tk.Pos, w, tk.Pos, gridColor)
		s.Line(-tickLen, tk.Pos, 0, tk.Pos, axisColor)
		s.Text(-tickLen-2, tk.Pos+4, tk.Label, anchorEnd, axisColor)
	}
	for _, tk := range xs.Ticks(c.X.TickCount()) {
		s.Line(tk.Pos, h, tk.Pos, h+tickLen, axisColor)
		s.Text(tk.Pos, h+tickLen+12, tk.Label, anchorMiddle, axisColor)
	}
	s.Line(0, h, w, h, axisColor)
	s.Line(0, 0, 0, h, axisColor)

	for _, e := range elems {
		if err := e.Draw(s); err != nil {
			return fmt.Errorf("drawing %s: %w", e.Name(), err)
		}
	}

	if l.Title != "" {
		s.Text(w/2, -8, l.Title, anchorMiddle, color.Black)
	}

	if p := c.Pointer(); p.Inside() {
		if x, ok := c.HoverX(); ok {
			s.Line(p.X, 0, p.X, h, hoverColor)
			s.Text(p.X+3, 12, chart.FormatTick(x), anchorStart, hoverColor)
		}
		if y, ok := c.HoverY(); ok {
			s.Line(0, p.Y, w, p.Y, hoverColor)
			s.Text(w-3, p.Y-3, chart.FormatTick(y), anchorEnd, hoverColor)
		}
	}
	return nil
}
