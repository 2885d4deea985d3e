// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/go-plotaxis/chart"
	"github.com/aclements/go-plotaxis/plotter"
)

// SVG lays out c according to l and writes it and elems to w as an SVG
// document.
func SVG(w io.Writer, c *chart.Chart, l Layout, elems []plotter.Element) error {
	area := l.Apply(c)
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(l.Width, l.Height)
	if l.Title != "" {
		s.Title(l.Title)
	}
	s.Rect(0, 0, l.Width, l.Height, "fill:white")
	s.Translate(area.Min.X, area.Min.Y)
	err := drawChart(svgSurface{s}, c, l, elems)
	s.Gend()
	s.End()
	if err != nil {
		return err
	}
	return ew.err
}

// errWriter records the first write error, since svgo does not report
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

type svgSurface struct {
	s *svg.SVG
}

func px(v float64) int { return int(math.Round(v)) }

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func (v svgSurface) Polyline(xs, ys []float64, c color.Color) {
	ix, iy := make([]int, len(xs)), make([]int, len(ys))
	for i := range xs {
		ix[i], iy[i] = px(xs[i]), px(ys[i])
	}
	v.s.Polyline(ix, iy, "fill:none;stroke-width:1.5;stroke:"+hex(c))
}

func (v svgSurface) Rect(x, y, w, h float64, c color.Color) {
	v.s.Rect(px(x), px(y), px(w), px(h), "fill:"+hex(c))
}

func (v svgSurface) Circle(x, y, r float64, c color.Color) {
	v.s.Circle(px(x), px(y), px(r), "fill:"+hex(c))
}

func (v svgSurface) Line(x1, y1, x2, y2 float64, c color.Color) {
	v.s.Line(px(x1), px(y1), px(x2), px(y2), "stroke:"+hex(c))
}

var svgAnchors = [...]string{anchorStart: "start", anchorMiddle: "middle", anchorEnd: "end"}

func (v svgSurface) Text(x, y float64, s string, a anchor, c color.Color) {
	v.s.Text(px(x), px(y), s, fmt.Sprintf("font-family:sans-serif;font-size:11px;text-anchor:%s;fill:%s", svgAnchors[a], hex(c)))
}
