// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotter

import (
	"math"

	"github.com/aclements/go-plotaxis/chart"
)

// Line connects its data points in data order.
type Line struct {
	base
}

// NewLine returns an unmounted Line in c.
func NewLine(c *chart.Chart, name string, x, y chart.Series) *Line {
	return &Line{newBase(c, name, x, y)}
}

// Draw draws l as a single polyline. Points that cannot be placed on
// the chart's scales are skipped.
func (l *Line) Draw(c Canvas) error {
	xs, ys, err := l.scales()
	if err != nil {
		return err
	}
	px, py := l.points(xs, ys)
	if len(px) > 0 {
		c.Polyline(px, py, l.color)
	}
	return nil
}

// DefaultBarWidth is the pixel width of bars on a continuous x axis.
const DefaultBarWidth = 8

// Bars draws one vertical bar per data point from the y baseline to
// the point's y value. On an ordinal x axis bars fill their band;
// otherwise they are Width pixels wide, centered on x.
type Bars struct {
	base
	Width float64
}

// NewBars returns unmounted Bars in c.
func NewBars(c *chart.Chart, name string, x, y chart.Series) *Bars {
	return &Bars{base: newBase(c, name, x, y), Width: DefaultBarWidth}
}

// Draw draws b.
func (b *Bars) Draw(c Canvas) error {
	xs, ys, err := b.scales()
	if err != nil {
		return err
	}
	zero := baseline(ys)
	x, y := b.Data()
	for i := 0; i < x.Len() && i < y.Len(); i++ {
		top, ok := position(ys, y, i)
		if !ok {
			continue
		}
		var left, w float64
		if xs.Type() == chart.Ordinal {
			left, ok = xs.MapCategory(x.Category(i))
			w = xs.BandWidth()
		} else {
			var center float64
			center, ok = position(xs, x, i)
			left, w = center-b.Width/2, b.Width
		}
		if !ok {
			continue
		}
		c.Rect(left, math.Min(top, zero), w, math.Abs(zero-top), b.color)
	}
	return nil
}

// baseline returns the pixel position bars grow from: zero if it is in
// the y domain, otherwise the low end of the domain.
func baseline(ys *chart.Scale) float64 {
	r := ys.Range()
	if ys.Type() == chart.Ordinal || ys.Type() == chart.Log {
		return r[0]
	}
	d := ys.Domain()
	if d.Min <= 0 && 0 <= d.Max {
		return ys.Map(0)
	}
	return r[0]
}

// DefaultMarkerRadius is the radius of markers in pixels.
const DefaultMarkerRadius = 3

// Markers draws a circle at each data point.
type Markers struct {
	base
	Radius float64

	group *Group
}

// NewMarkers returns unmounted Markers in c.
func NewMarkers(c *chart.Chart, name string, x, y chart.Series) *Markers {
	return &Markers{base: newBase(c, name, x, y), Radius: DefaultMarkerRadius}
}

// Group returns the group m belongs to, or nil.
func (m *Markers) Group() *Group { return m.group }

// Draw draws m.
func (m *Markers) Draw(c Canvas) error {
	xs, ys, err := m.scales()
	if err != nil {
		return err
	}
	px, py := m.points(xs, ys)
	for i := range px {
		c.Circle(px[i], py[i], m.Radius, m.color)
	}
	return nil
}

// A Group is a set of Markers that are mounted and unmounted together.
type Group struct {
	chart   *chart.Chart
	members []*Markers
	mounted bool
}

// NewGroup returns an empty, unmounted Group in c.
func NewGroup(c *chart.Chart) *Group {
	return &Group{chart: c}
}

// Add adds m to g. If g is mounted, m is mounted too. m must belong to
// the same chart as g and to no other group.
func (g *Group) Add(m *Markers) error {
	if m.chart != g.chart {
		return ErrOtherChart
	}
	if m.group != nil && m.group != g {
		return ErrInGroup
	}
	if m.group == g {
		return nil
	}
	m.group = g
	g.members = append(g.members, m)
	if g.mounted && !m.Mounted() {
		return m.Mount()
	}
	return nil
}

// Members returns the markers in g in the order they were added.
func (g *Group) Members() []*Markers { return g.members }

// Mount mounts every member of g that is not already mounted.
func (g *Group) Mount() error {
	for _, m := range g.members {
		if m.Mounted() {
			continue
		}
		if err := m.Mount(); err != nil {
			return err
		}
	}
	g.mounted = true
	return nil
}

// Unmount unmounts every member of g.
func (g *Group) Unmount() {
	for _, m := range g.members {
		m.Unmount()
	}
	g.mounted = false
}

// Mounted reports whether g is mounted.
func (g *Group) Mounted() bool { return g.mounted }
