// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotter

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aclements/go-plotaxis/chart"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type rect struct{ X, Y, W, H float64 }

type circle struct{ X, Y, R float64 }

type recorder struct {
	lines   [][2][]float64
	rects   []rect
	circles []circle
}

func (r *recorder) Polyline(xs, ys []float64, c color.Color) {
	r.lines = append(r.lines, [2][]float64{xs, ys})
}

func (r *recorder) Rect(x, y, w, h float64, c color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h})
}

func (r *recorder) Circle(x, y, rad float64, c color.Color) {
	r.circles = append(r.circles, circle{x, y, rad})
}

func newChart(t *testing.T, w, h float64) *chart.Chart {
	t.Helper()
	c, err := chart.New(chart.WithSize(w, h))
	require.NoError(t, err)
	return c
}

func TestLineDraw(t *testing.T) {
	c := newChart(t, 100, 100)
	l := NewLine(c, "A", chart.Numbers(0, 5, 10), chart.Numbers(0, 10, 5))

	var r recorder
	assert.ErrorIs(t, l.Draw(&r), ErrNotMounted)

	require.NoError(t, l.Mount())
	require.NoError(t, l.Draw(&r))
	require.Len(t, r.lines, 1)
	want := [2][]float64{{0, 50, 100}, {100, 0, 50}}
	if diff := cmp.Diff(want, r.lines[0]); diff != "" {
		t.Errorf("polyline (-want +got):\n%s", diff)
	}
}

func TestSharedDomain(t *testing.T) {
	c := newChart(t, 100, 100)
	a := NewLine(c, "A", chart.Numbers(0, 10), chart.Numbers(0, 10))
	b := NewMarkers(c, "B", chart.Numbers(0, 10), chart.Numbers(0, 20))
	require.NoError(t, a.Mount())

	var r recorder
	require.NoError(t, a.Draw(&r))
	assert.Equal(t, []float64{100, 0}, r.lines[0][1])

	// Mounting b widens the y domain for a as well.
	require.NoError(t, b.Mount())
	r = recorder{}
	require.NoError(t, a.Draw(&r))
	assert.Equal(t, []float64{100, 50}, r.lines[0][1])

	b.Unmount()
	r = recorder{}
	require.NoError(t, a.Draw(&r))
	assert.Equal(t, []float64{100, 0}, r.lines[0][1])
}

func TestBarsOrdinal(t *testing.T) {
	c := newChart(t, 300, 100)
	c.X.SetScaleType(chart.Ordinal)
	c.Y.SetMinMode(chart.Fixed)
	c.Y.SetMin(0)
	b := NewBars(c, "A", chart.Categories("a", "b", "c"), chart.Numbers(50, 100, 25))
	require.NoError(t, b.Mount())

	var r recorder
	require.NoError(t, b.Draw(&r))
	want := []rect{{0, 50, 100, 50}, {100, 0, 100, 100}, {200, 75, 100, 25}}
	if diff := cmp.Diff(want, r.rects); diff != "" {
		t.Errorf("bars (-want +got):\n%s", diff)
	}
}

func TestBarsContinuous(t *testing.T) {
	c := newChart(t, 100, 100)
	b := NewBars(c, "A", chart.Numbers(0, 10), chart.Numbers(-10, 10))
	require.NoError(t, b.Mount())

	var r recorder
	require.NoError(t, b.Draw(&r))
	want := []rect{{-4, 50, 8, 50}, {96, 0, 8, 50}}
	if diff := cmp.Diff(want, r.rects); diff != "" {
		t.Errorf("bars (-want +got):\n%s", diff)
	}
}

func TestMarkersSkipUnplaceable(t *testing.T) {
	c := newChart(t, 100, 100)
	c.Y.SetScaleType(chart.Log)
	m := NewMarkers(c, "A", chart.Numbers(0, 5, 10), chart.Numbers(1, -1, 100))
	require.NoError(t, m.Mount())

	var r recorder
	require.NoError(t, m.Draw(&r))
	want := []circle{{0, 100, DefaultMarkerRadius}, {100, 0, DefaultMarkerRadius}}
	if diff := cmp.Diff(want, r.circles); diff != "" {
		t.Errorf("markers (-want +got):\n%s", diff)
	}
}

func TestDrawScaleError(t *testing.T) {
	c := newChart(t, 100, 100)
	c.X.SetScaleType(chart.ScaleType(99))
	m := NewMarkers(c, "A", chart.Numbers(1), chart.Numbers(1))
	require.NoError(t, m.Mount())
	assert.ErrorIs(t, m.Draw(&recorder{}), chart.ErrUnknownScaleType)
}

func TestGroup(t *testing.T) {
	c := newChart(t, 100, 100)
	g := NewGroup(c)
	a := NewMarkers(c, "A", chart.Numbers(1), chart.Numbers(1))
	b := NewMarkers(c, "B", chart.Numbers(2), chart.Numbers(2))
	require.NoError(t, g.Add(a))
	assert.Same(t, g, a.Group())
	assert.False(t, a.Mounted())

	require.NoError(t, g.Mount())
	assert.True(t, a.Mounted())
	require.NoError(t, g.Add(b))
	assert.True(t, b.Mounted(), "adding to a mounted group mounts")
	assert.Equal(t, chart.Extent{Min: 1, Max: 2}, c.X.Extent())

	assert.ErrorIs(t, NewGroup(c).Add(a), ErrInGroup)
	other := NewMarkers(newChart(t, 1, 1), "C", chart.Numbers(1), chart.Numbers(1))
	assert.ErrorIs(t, g.Add(other), ErrOtherChart)

	g.Unmount()
	assert.False(t, a.Mounted())
	assert.False(t, b.Mounted())
	assert.True(t, c.X.Extent().Empty())
}

func TestColorize(t *testing.T) {
	c := newChart(t, 1, 1)
	a := NewLine(c, "A", chart.Numbers(), chart.Numbers())
	b := NewLine(c, "B", chart.Numbers(), chart.Numbers())
	Colorize(a, b)
	assert.NotEqual(t, a.Color(), b.Color())
}
