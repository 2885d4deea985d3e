// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtentOf(t *testing.T) {
	inf := math.Inf(1)
	for _, test := range []struct {
		xs   []float64
		want Extent
	}{
		{nil, NoData},
		{[]float64{}, NoData},
		{[]float64{nan, inf, -inf}, NoData},
		{[]float64{3, 1, 4, 1, 5}, Extent{1, 5}},
		{[]float64{0}, Extent{0, 0}},
		{[]float64{nan, 2, inf, -1}, Extent{-1, 2}},
	} {
		got := ExtentOf(test.xs)
		if test.want.Empty() {
			assert.True(t, got.Empty(), "ExtentOf(%v) = %v, want no data", test.xs, got)
			continue
		}
		assert.Equal(t, test.want, got, "ExtentOf(%v)", test.xs)
	}
	assert.Equal(t, "no data", NoData.String())
	assert.Equal(t, "[1,5]", Extent{1, 5}.String())
}

func TestNice(t *testing.T) {
	for _, test := range []struct {
		lo, hi         float64
		count          int
		wantLo, wantHi float64
	}{
		{0, 93, 5, 0, 100},
		{0, 130, 5, 0, 140},
		{0, 150, 2, 0, 200},
		{1.1, 10.7, 10, 1, 11},
		{-3.2, 7.9, 5, -4, 8},
		{0.12, 0.87, 5, 0, 1},
		{0.12, 0.87, 10, 0.1, 0.9},
		{5, 5, 5, 5, 5},
		{100, 0, 5, 100, 0},
		{0, 93, 0, 0, 100},
	} {
		lo, hi := Nice(test.lo, test.hi, test.count)
		assert.InDelta(t, test.wantLo, lo, 1e-12, "Nice(%v, %v, %d) lo", test.lo, test.hi, test.count)
		assert.InDelta(t, test.wantHi, hi, 1e-12, "Nice(%v, %v, %d) hi", test.lo, test.hi, test.count)
	}

	lo, hi := Nice(nan, 3, 5)
	assert.True(t, math.IsNaN(lo))
	assert.Equal(t, 3.0, hi)
}

func TestResolveBound(t *testing.T) {
	unset := bound{value: nan, seed: nan}
	data := Extent{2, 93}

	// Auto ignores previous state.
	b := resolveBound(maxSide, bound{value: 500, seed: nan}, boundInputs{mode: Auto, configured: nan, extent: data})
	assert.Equal(t, 93.0, b.value)
	b = resolveBound(maxSide, unset, boundInputs{mode: Auto, configured: nan, extent: NoData})
	assert.True(t, math.IsNaN(b.value))
	assert.Equal(t, 1.0, b.effective(maxSide))
	assert.Equal(t, 0.0, b.effective(minSide))

	// Auto does not consume the configured value as a push seed.
	small := Extent{0, 9}
	b = resolveBound(maxSide, unset, boundInputs{mode: Auto, configured: 20, extent: small})
	assert.Equal(t, 9.0, b.value)
	assert.True(t, math.IsNaN(b.seed))
	b = resolveBound(maxSide, b, boundInputs{mode: Push, configured: 20, extent: small})
	assert.Equal(t, bound{value: 20, seed: 20}, b)

	// Fixed uses the configured value, or the data if unset.
	b = resolveBound(minSide, unset, boundInputs{mode: Fixed, configured: -7, extent: data})
	assert.Equal(t, -7.0, b.value)
	b = resolveBound(minSide, unset, boundInputs{mode: Fixed, configured: nan, extent: data})
	assert.Equal(t, 2.0, b.value)

	// Push with no data and no configured value commits nothing.
	b = resolveBound(maxSide, unset, boundInputs{mode: Push, configured: nan, extent: NoData})
	assert.True(t, math.IsNaN(b.value), "fallback must not be committed")
	b = resolveBound(maxSide, b, boundInputs{mode: Push, configured: nan, extent: Extent{0, 0.5}})
	assert.Equal(t, 0.5, b.value, "push must not be anchored by the fallback")

	// Push-tick widens to a nice value on the matching side.
	in := boundInputs{mode: PushTick, configured: nan, extent: Extent{3, 93}, ticks: 5}
	assert.Equal(t, 100.0, resolveBound(maxSide, unset, in).value)
	assert.Equal(t, 0.0, resolveBound(minSide, unset, in).value)

	// A configured value seeds push once.
	b = resolveBound(minSide, unset, boundInputs{mode: Push, configured: -50, extent: data})
	assert.Equal(t, bound{value: -50, seed: -50}, b)
	b = resolveBound(minSide, b, boundInputs{mode: Push, configured: -50, extent: Extent{-60, 0}})
	assert.Equal(t, -60.0, b.value)
	b = resolveBound(minSide, b, boundInputs{mode: Push, configured: -50, extent: data})
	assert.Equal(t, -60.0, b.value, "unchanged configured value must not reseed")
}

func TestContinuousDomain(t *testing.T) {
	b := func(v float64) bound { return bound{value: v, seed: nan} }
	unset := b(nan)

	assert.Equal(t, Domain{Min: 0, Max: 1}, continuousDomain(Linear, unset, unset))
	assert.Equal(t, Domain{Min: 1, Max: 50}, continuousDomain(Log, b(-2), b(50)))
	assert.Equal(t, Domain{Min: 1, Max: 1}, continuousDomain(Log, b(-5), b(-1)))
	assert.Equal(t, Domain{Min: 1, Max: 1}, continuousDomain(Log, unset, unset))
	assert.Equal(t, Domain{Min: 1, Max: 4}, continuousDomain(Log, b(4), b(0)), "log bounds are ordered")
	assert.Equal(t, Domain{Min: -3, Max: 10}, continuousDomain(Linear, b(10), b(-3)))
}

func TestOrdinalDomain(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "a"}, ordinalDomain([]string{"a", "b", "a"}, false).Categories)
	assert.Equal(t, []string{"a", "b"}, ordinalDomain([]string{"a", "b", "a"}, true).Categories)
	assert.Empty(t, ordinalDomain(nil, true).Categories)
	assert.Equal(t, `["x" "y"]`, Domain{Categories: []string{"x", "y"}}.String())
	assert.Equal(t, "[0,1]", Domain{Min: 0, Max: 1}.String())
}

func TestParseNames(t *testing.T) {
	for s, want := range map[string]ScaleType{"": Linear, "Linear": Linear, "pow": Power, "log": Log, " band ": Ordinal} {
		got, err := ParseScaleType(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "ParseScaleType(%q)", s)
	}
	_, err := ParseScaleType("sqrt")
	assert.ErrorIs(t, err, ErrUnknownScaleType)

	for s, want := range map[string]Mode{"": Auto, "fixed": Fixed, "PUSH": Push, "push-tick": PushTick} {
		got, err := ParseMode(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "ParseMode(%q)", s)
	}
	_, err = ParseMode("sticky")
	assert.ErrorIs(t, err, ErrUnknownMode)

	assert.Equal(t, "ScaleType(9)", ScaleType(9).String())
	assert.Equal(t, "push-tick", PushTick.String())
}
