// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a chart and its plot elements as SVG or PNG.
package render

import (
	"image"

	"github.com/aclements/go-plotaxis/chart"
)

// titleHeight is the space reserved above the plot area for a title.
const titleHeight = 20

// Layout describes the outer image and the space around the plot area.
type Layout struct {
	// Width and Height are the size of the output image in pixels.
	Width, Height int

	// Padding is the empty margin on every side of the image.
	Padding int

	// YGutter is the space left of the plot area for y tick labels
	// and XGutter the space below it for x tick labels.
	YGutter, XGutter int

	// Title is drawn above the plot area if not empty.
	Title string
}

// DefaultLayout returns a Layout with room for tick labels.
func DefaultLayout(width, height int) Layout {
	return Layout{Width: width, Height: height, Padding: 10, YGutter: 60, XGutter: 24}
}

// PlotArea returns the rectangle of the image covered by the plot area.
// It is empty if the image is too small to fit one.
func (l Layout) PlotArea() image.Rectangle {
	top := l.Padding
	if l.Title != "" {
		top += titleHeight
	}
	r := image.Rectangle{
		Min: image.Pt(l.Padding+l.YGutter, top),
		Max: image.Pt(l.Width-l.Padding, l.Height-l.Padding-l.XGutter),
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Apply sets the size of c's plot area to l's and returns the plot
// area.
func (l Layout) Apply(c *chart.Chart) image.Rectangle {
	r := l.PlotArea()
	c.SetSize(float64(r.Dx()), float64(r.Dy()))
	return r
}
