// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aclements/go-plotaxis/reactive"
)

// Default tick-count hints used by PushTick rounding.
const (
	DefaultXTicks = 8
	DefaultYTicks = 5
)

// Axis is one dimension of a chart. Its configuration may be changed at
// any time; the domain and scale are recomputed on the next read.
type Axis struct {
	name string
	log  *zap.Logger

	scaleType        *reactive.Cell[ScaleType]
	minMode, maxMode *reactive.Cell[Mode]
	min, max         *reactive.Cell[float64]
	ticks            *reactive.Cell[int]
	padding, outer   *reactive.Cell[float64]
	distinct         *reactive.Cell[bool]

	data       *reactive.Value[[]float64]
	categories *reactive.Value[[]string]
	extent     *reactive.Value[Extent]
	lo, hi     *reactive.Value[bound]
	domain     *reactive.Value[Domain]
	rng        *reactive.Value[Range]
	scale      *reactive.Value[scaleResult]
}

type scaleResult struct {
	s   *Scale
	err error
}

func eqFloat(a, b float64) bool { return sameFloat(a, b) }

// newAxis adds the nodes of an axis named name to g. numbers and
// categories return the axis's aggregated data from reg, and size
// holds the pixel length of the axis.
func newAxis(g *reactive.Graph, log *zap.Logger, name string, ticks int, reg *Registry, numbers func() []float64, categories func() []string, size *reactive.Cell[float64], vertical bool) *Axis {
	n := func(s string) string { return name + "." + s }
	a := &Axis{
		name:      name,
		log:       log.With(zap.String("axis", name)),
		scaleType: reactive.NewCell(g, n("scaleType"), Linear),
		minMode:   reactive.NewCell(g, n("minMode"), Auto),
		maxMode:   reactive.NewCell(g, n("maxMode"), Auto),
		min:       reactive.NewCell(g, n("min"), nan),
		max:       reactive.NewCell(g, n("max"), nan),
		ticks:     reactive.NewCell(g, n("ticks"), ticks),
		padding:   reactive.NewCell(g, n("padding"), 0.0),
		outer:     reactive.NewCell(g, n("outerPadding"), 0.0),
		distinct:  reactive.NewCell(g, n("distinct"), false),
	}
	plots := reg.rev.Name()

	a.data = reactive.NewValue(g, n("data"), []string{plots}, func([]float64, bool) []float64 {
		return numbers()
	})
	a.categories = reactive.NewValue(g, n("categories"), []string{plots}, func([]string, bool) []string {
		return categories()
	})
	a.extent = reactive.NewValue(g, n("extent"), []string{n("data")}, func(Extent, bool) Extent {
		return ExtentOf(a.data.Get())
	})
	a.lo = a.newBound(g, minSide, a.minMode, a.min)
	a.hi = a.newBound(g, maxSide, a.maxMode, a.max)

	a.domain = reactive.NewValue(g, n("domain"),
		[]string{n("scaleType"), n("lo"), n("hi"), n("categories"), n("distinct")},
		func(Domain, bool) Domain {
			t := a.scaleType.Get()
			if t == Ordinal {
				return ordinalDomain(a.categories.Get(), a.distinct.Get())
			}
			return continuousDomain(t, a.lo.Get(), a.hi.Get())
		})

	a.rng = reactive.NewValue(g, n("range"), []string{size.Name()}, func(Range, bool) Range {
		if vertical {
			return Range{size.Get(), 0}
		}
		return Range{0, size.Get()}
	})

	a.scale = reactive.NewValue(g, n("scale"),
		[]string{n("domain"), n("range"), n("scaleType"), n("padding"), n("outerPadding")},
		func(scaleResult, bool) scaleResult {
			s, err := BuildScale(ScaleSpec{
				Type:         a.scaleType.Get(),
				Domain:       a.domain.Get(),
				Range:        a.rng.Get(),
				Padding:      a.padding.Get(),
				OuterPadding: a.outer.Get(),
			})
			if err != nil {
				return scaleResult{err: fmt.Errorf("%s axis: %w", a.name, err)}
			}
			a.log.Debug("scale rebuilt", zap.Stringer("scale", s))
			return scaleResult{s: s}
		})
	return a
}

func (a *Axis) newBound(g *reactive.Graph, s side, mode *reactive.Cell[Mode], configured *reactive.Cell[float64]) *reactive.Value[bound] {
	name := a.name + ".hi"
	if s == minSide {
		name = a.name + ".lo"
	}
	deps := []string{a.name + ".extent", mode.Name(), configured.Name(), a.name + ".ticks"}
	return reactive.NewValue(g, name, deps, func(prev bound, ok bool) bound {
		if !ok {
			prev = bound{value: nan, seed: nan}
		}
		in := boundInputs{
			mode:       mode.Get(),
			configured: configured.Get(),
			extent:     a.extent.Get(),
			ticks:      a.ticks.Get(),
		}
		next := resolveBound(s, prev, in)
		if (in.mode == Push || in.mode == PushTick) && !math.IsNaN(prev.value) && !sameFloat(prev.value, next.value) {
			a.log.Debug("domain bound moved",
				zap.Stringer("side", s),
				zap.Stringer("mode", in.mode),
				zap.Float64("from", prev.value),
				zap.Float64("to", next.value),
				zap.Stringer("extent", in.extent))
		}
		return next
	})
}

// Name returns the name of a ("x" or "y").
func (a *Axis) Name() string { return a.name }

// SetScaleType sets the scale type of a. Unknown scale types are
// reported when the scale is next built.
func (a *Axis) SetScaleType(t ScaleType) {
	a.scaleType.Update(t, func(x, y ScaleType) bool { return x == y })
}

// ScaleType returns the configured scale type of a.
func (a *Axis) ScaleType() ScaleType { return a.scaleType.Get() }

// SetMinMode sets the resolution policy of the lower bound of a.
func (a *Axis) SetMinMode(m Mode) {
	a.minMode.Update(m, func(x, y Mode) bool { return x == y })
}

// SetMaxMode sets the resolution policy of the upper bound of a.
func (a *Axis) SetMaxMode(m Mode) {
	a.maxMode.Update(m, func(x, y Mode) bool { return x == y })
}

// SetModes sets the resolution policy of both bounds of a.
func (a *Axis) SetModes(m Mode) {
	a.SetMinMode(m)
	a.SetMaxMode(m)
}

// MinMode returns the resolution policy of the lower bound of a.
func (a *Axis) MinMode() Mode { return a.minMode.Get() }

// MaxMode returns the resolution policy of the upper bound of a.
func (a *Axis) MaxMode() Mode { return a.maxMode.Get() }

// SetMin sets the configured lower bound of a. It is the bound in Fixed
// mode and the starting bound in Push and PushTick modes. NaN unsets
// it.
func (a *Axis) SetMin(v float64) { a.min.Update(v, eqFloat) }

// SetMax is like SetMin for the upper bound.
func (a *Axis) SetMax(v float64) { a.max.Update(v, eqFloat) }

// SetTickCount sets the desired number of ticks used by PushTick
// rounding. Values below 1 are treated as 1.
func (a *Axis) SetTickCount(n int) {
	a.ticks.Update(n, func(x, y int) bool { return x == y })
}

// TickCount returns the tick-count hint of a.
func (a *Axis) TickCount() int { return a.ticks.Get() }

// SetPadding sets the inner and outer band padding of an ordinal axis.
func (a *Axis) SetPadding(inner, outer float64) {
	a.padding.Update(inner, eqFloat)
	a.outer.Update(outer, eqFloat)
}

// SetDistinct sets whether an ordinal axis removes repeated
// categories from its domain. By default every contributed category
// value gets its own band, even if it repeats.
func (a *Axis) SetDistinct(distinct bool) {
	a.distinct.Update(distinct, func(x, y bool) bool { return x == y })
}

// Extent returns the extent of the data on a.
func (a *Axis) Extent() Extent { return a.extent.Get() }

// Domain returns the resolved domain of a.
func (a *Axis) Domain() Domain { return a.domain.Get() }

// Range returns the pixel range of a.
func (a *Axis) Range() Range { return a.rng.Get() }

// Scale returns the current scale of a.
func (a *Axis) Scale() (*Scale, error) {
	r := a.scale.Get()
	return r.s, r.err
}

// ScaleComputes returns the number of times a's scale has been built.
func (a *Axis) ScaleComputes() int { return a.scale.Computes() }
