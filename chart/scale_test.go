// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScale(t *testing.T, spec ScaleSpec) *Scale {
	t.Helper()
	s, err := BuildScale(spec)
	require.NoError(t, err)
	return s
}

func TestLinearScale(t *testing.T) {
	s := mustScale(t, ScaleSpec{Type: Linear, Domain: Domain{Min: -10, Max: 10}, Range: Range{0, 400}})
	assert.Equal(t, 200.0, s.Map(0))
	assert.Equal(t, 400.0, s.Map(10))
	x, ok := s.Invert(100)
	assert.True(t, ok)
	assert.Equal(t, -5.0, x)

	// Reversed ranges map the domain low end to Range[0].
	v := mustScale(t, ScaleSpec{Type: Linear, Domain: Domain{Min: 0, Max: 10}, Range: Range{50, 0}})
	assert.Equal(t, 50.0, v.Map(0))
	assert.Equal(t, 0.0, v.Map(10))

	// A degenerate domain maps to the middle of the range.
	d := mustScale(t, ScaleSpec{Type: Linear, Domain: Domain{Min: 3, Max: 3}, Range: Range{0, 100}})
	assert.Equal(t, 50.0, d.Map(3))
}

func TestPowerScale(t *testing.T) {
	s := mustScale(t, ScaleSpec{Type: Power, Domain: Domain{Min: 0, Max: 10}, Range: Range{0, 1000}})
	assert.InDelta(t, 125, s.Map(5), 1e-9)
	assert.InDelta(t, 1000, s.Map(10), 1e-9)
	for _, x := range []float64{0, 1, 2.5, 5, 9.99} {
		px := s.Map(x)
		got, ok := s.Invert(px)
		require.True(t, ok)
		assert.InDelta(t, x, got, 1e-9, "Invert(Map(%v))", x)
	}

	// Negative values keep their sign.
	n := mustScale(t, ScaleSpec{Type: Power, Domain: Domain{Min: -2, Max: 2}, Range: Range{0, 160}})
	assert.InDelta(t, 80, n.Map(0), 1e-9)
	assert.InDelta(t, 70, n.Map(-1), 1e-9)
	got, ok := n.Invert(70)
	assert.True(t, ok)
	assert.InDelta(t, -1, got, 1e-9)
}

func TestLogScale(t *testing.T) {
	s := mustScale(t, ScaleSpec{Type: Log, Domain: Domain{Min: 1, Max: 100}, Range: Range{0, 200}})
	assert.InDelta(t, 0, s.Map(1), 1e-9)
	assert.InDelta(t, 100, s.Map(10), 1e-9)
	assert.InDelta(t, 200, s.Map(100), 1e-9)
	for _, x := range []float64{1, 3, 10, 42, 100} {
		got, ok := s.Invert(s.Map(x))
		require.True(t, ok)
		assert.InDelta(t, x, got, 1e-9, "Invert(Map(%v))", x)
	}

	_, err := BuildScale(ScaleSpec{Type: Log, Domain: Domain{Min: -1, Max: 10}, Range: Range{0, 1}})
	assert.Error(t, err, "log domain spanning zero")
}

func TestOrdinalScale(t *testing.T) {
	abc := Domain{Categories: []string{"a", "b", "c"}}
	s := mustScale(t, ScaleSpec{Type: Ordinal, Domain: abc, Range: Range{0, 300}})
	assert.Equal(t, []float64{0, 100, 200}, s.Bands())
	assert.Equal(t, 100.0, s.BandWidth())
	assert.Equal(t, 100.0, s.Step())
	assert.True(t, math.IsNaN(s.Map(1)))
	_, ok := s.Invert(150)
	assert.False(t, ok, "ordinal scales do not invert")

	x, ok := s.MapCategory("c")
	assert.True(t, ok)
	assert.Equal(t, 200.0, x)
	_, ok = s.MapCategory("d")
	assert.False(t, ok)

	// Inverted ranges put the first category at the far end.
	r := mustScale(t, ScaleSpec{Type: Ordinal, Domain: abc, Range: Range{300, 0}})
	assert.Equal(t, []float64{200, 100, 0}, r.Bands())

	// Bands and widths are rounded to whole pixels.
	p := mustScale(t, ScaleSpec{Type: Ordinal, Domain: abc, Range: Range{0, 100}, Padding: 0.2, OuterPadding: 0.1})
	if diff := cmp.Diff([]float64{4, 37, 70}, p.Bands()); diff != "" {
		t.Errorf("padded bands (-want +got):\n%s", diff)
	}
	assert.Equal(t, 26.0, p.BandWidth())

	// Inner padding only separates bands, so a single band fills
	// the range.
	for _, pad := range []float64{0.1, 0.5} {
		one := mustScale(t, ScaleSpec{Type: Ordinal, Domain: Domain{Categories: []string{"a"}}, Range: Range{0, 300}, Padding: pad})
		assert.Equal(t, []float64{0}, one.Bands(), "padding %v", pad)
		assert.Equal(t, 300.0, one.BandWidth(), "padding %v", pad)
	}

	// Empty domains have no bands.
	e := mustScale(t, ScaleSpec{Type: Ordinal, Domain: Domain{Categories: []string{}}, Range: Range{0, 100}})
	assert.Empty(t, e.Bands())

	// Padding is clamped below one.
	c := mustScale(t, ScaleSpec{Type: Ordinal, Domain: abc, Range: Range{0, 300}, Padding: 5, OuterPadding: -1})
	assert.Less(t, c.Spec().Padding, 1.0)
	assert.Equal(t, 0.0, c.Spec().OuterPadding)
}

func TestUnknownScaleType(t *testing.T) {
	_, err := BuildScale(ScaleSpec{Type: ScaleType(7), Domain: Domain{Min: 0, Max: 1}})
	assert.ErrorIs(t, err, ErrUnknownScaleType)
}

func TestScaleTicks(t *testing.T) {
	s := mustScale(t, ScaleSpec{Type: Linear, Domain: Domain{Min: 0, Max: 100}, Range: Range{0, 500}})
	ticks := s.Ticks(6)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 6)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 0.0)
		assert.LessOrEqual(t, tk.Value, 100.0)
		assert.InDelta(t, 5*tk.Value, tk.Pos, 1e-9)
		assert.Equal(t, FormatTick(tk.Value), tk.Label)
	}

	l := mustScale(t, ScaleSpec{Type: Log, Domain: Domain{Min: 1, Max: 1000}, Range: Range{0, 300}})
	var vals []float64
	for _, tk := range l.Ticks(10) {
		vals = append(vals, tk.Value)
	}
	assert.Subset(t, vals, []float64{10, 100})

	huge := mustScale(t, ScaleSpec{Type: Linear, Domain: Domain{Min: -math.MaxFloat64, Max: math.MaxFloat64}, Range: Range{0, 100}})
	assert.Empty(t, huge.Ticks(5), "span overflows float64")

	o := mustScale(t, ScaleSpec{Type: Ordinal, Domain: Domain{Categories: []string{"a", "b"}}, Range: Range{0, 200}})
	want := []Tick{{Value: 0, Pos: 50, Label: "a"}, {Value: 1, Pos: 150, Label: "b"}}
	if diff := cmp.Diff(want, o.Ticks(1)); diff != "" {
		t.Errorf("ordinal ticks (-want +got):\n%s", diff)
	}
}

func TestFormatTick(t *testing.T) {
	for v, want := range map[float64]string{
		0:       "0",
		2:       "2",
		0.5:     "0.5",
		-1.25:   "-1.25",
		12345:   "12,345",
		1e6:     "1,000,000",
		0.00001: "1e-05",
	} {
		assert.Equal(t, want, FormatTick(v), "FormatTick(%v)", v)
	}
}
