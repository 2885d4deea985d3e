// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotter implements plot elements that contribute data to a
// chart and draw themselves using the chart's shared scales.
//
// Every element is constructed with the Chart it belongs to. Mounting
// an element registers its data with the chart, which may change the
// axis domains of every other element.
package plotter

import (
	"errors"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"

	"github.com/aclements/go-plotaxis/chart"
)

var (
	// ErrNotMounted is returned by Draw for an element that is not
	// mounted.
	ErrNotMounted = errors.New("element not mounted")

	// ErrOtherChart and ErrInGroup are returned by Group.Add.
	ErrOtherChart = errors.New("markers belong to a different chart")
	ErrInGroup    = errors.New("markers already belong to a group")
)

// Canvas is a drawing surface in plot-area pixel coordinates.
type Canvas interface {
	Polyline(xs, ys []float64, c color.Color)
	Rect(x, y, w, h float64, c color.Color)
	Circle(x, y, r float64, c color.Color)
}

// An Element is a plot element.
type Element interface {
	// Name returns the name of the element's data series.
	Name() string

	// Mount registers the element's data with its chart.
	Mount() error

	// Unmount removes the element's data from its chart.
	Unmount()

	// Draw draws the element onto c using its chart's current
	// scales.
	Draw(c Canvas) error
}

// base is the state shared by all elements.
type base struct {
	chart *chart.Chart
	data  *chart.Contribution
	color color.Color
}

func newBase(c *chart.Chart, name string, x, y chart.Series) base {
	return base{
		chart: c,
		data:  chart.NewContribution(name, x, y),
		color: palette.Viridis.Map(0),
	}
}

func (b *base) Name() string { return b.data.Name() }

func (b *base) Mount() error { return b.chart.Register(b.data) }

func (b *base) Unmount() { b.chart.Unregister(b.data) }

// Mounted reports whether the element is registered with its chart.
func (b *base) Mounted() bool { return b.data.Registered() }

// SetData replaces the element's data. If the element is mounted, the
// chart's domains follow the new data.
func (b *base) SetData(x, y chart.Series) { b.data.SetData(x, y) }

// Data returns the element's data.
func (b *base) Data() (x, y chart.Series) { return b.data.X(), b.data.Y() }

// SetColor sets the color the element is drawn in.
func (b *base) SetColor(c color.Color) { b.color = c }

// Color returns the color the element is drawn in.
func (b *base) Color() color.Color { return b.color }

// scales returns the chart's scales, or an error if the element cannot
// be drawn.
func (b *base) scales() (xs, ys *chart.Scale, err error) {
	if !b.Mounted() {
		return nil, nil, ErrNotMounted
	}
	if xs, err = b.chart.XScale(); err != nil {
		return nil, nil, err
	}
	if ys, err = b.chart.YScale(); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// points returns the pixel position of each data point that can be
// placed on both scales.
func (b *base) points(xs, ys *chart.Scale) (px, py []float64) {
	x, y := b.Data()
	n := x.Len()
	if y.Len() < n {
		n = y.Len()
	}
	for i := 0; i < n; i++ {
		cx, ok1 := position(xs, x, i)
		cy, ok2 := position(ys, y, i)
		if ok1 && ok2 {
			px = append(px, cx)
			py = append(py, cy)
		}
	}
	return px, py
}

// position returns the pixel position of value i of s along scale sc.
// Categorical positions are the center of the category's band.
func position(sc *chart.Scale, s chart.Series, i int) (float64, bool) {
	if sc.Type() == chart.Ordinal {
		p, ok := sc.MapCategory(s.Category(i))
		return p + sc.BandWidth()/2, ok
	}
	p := sc.Map(s.Number(i))
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return p, true
}

// Colorize assigns each element a distinct color from the Viridis
// palette, in order.
func Colorize(elems ...interface{ SetColor(color.Color) }) {
	for i, e := range elems {
		x := 0.0
		if len(elems) > 1 {
			x = float64(i) / float64(len(elems)-1)
		}
		e.SetColor(palette.Viridis.Map(x))
	}
}
