// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
)

// Domain is the resolved, visible domain of an axis. Continuous axes
// use Min and Max; ordinal axes use Categories.
type Domain struct {
	Min, Max   float64
	Categories []string
}

func (d Domain) String() string {
	if d.Categories != nil {
		return fmt.Sprintf("%q", d.Categories)
	}
	return fmt.Sprintf("[%g,%g]", d.Min, d.Max)
}

// bound is the committed state of one side of a domain.
type bound struct {
	// value is the committed bound, or NaN if nothing has been
	// committed.
	value float64

	// seed is the configured value value was last seeded from.
	seed float64
}

// fallback returns the bound used when there is no data to resolve
// from.
func (s side) fallback() float64 {
	if s == minSide {
		return 0
	}
	return 1
}

// outside reports whether x lies beyond committed on side s.
func (s side) outside(x, committed float64) bool {
	if s == minSide {
		return x < committed
	}
	return x > committed
}

// boundInputs are the inputs to resolving one side of a domain.
type boundInputs struct {
	mode       Mode
	configured float64 // NaN if unset
	extent     Extent
	ticks      int
}

// resolveBound computes the next state of one side of a domain from its
// previous state. Only Push and PushTick depend on prev.
func resolveBound(s side, prev bound, in boundInputs) bound {
	switch in.mode {
	default: // Auto
		// Auto never seeds, so a later switch to Push starts from
		// the configured value.
		return bound{value: in.extent.side(s), seed: nan}

	case Fixed:
		if math.IsNaN(in.configured) {
			return bound{value: in.extent.side(s), seed: nan}
		}
		return bound{value: in.configured, seed: in.configured}

	case Push, PushTick:
		next := prev
		if !sameFloat(prev.seed, in.configured) {
			// The configured starting value changed.
			next = bound{value: in.configured, seed: in.configured}
		}
		if in.extent.Empty() {
			return next
		}
		x := in.extent.side(s)
		if !math.IsNaN(next.value) && !s.outside(x, next.value) {
			return next
		}
		if in.mode == PushTick {
			lo, hi := Nice(in.extent.Min, in.extent.Max, in.ticks)
			x = Extent{lo, hi}.side(s)
		}
		next.value = x
		return next
	}
}

// effective returns the value of b on side s, falling back to a
// default if nothing is committed.
func (b bound) effective(s side) float64 {
	if math.IsNaN(b.value) {
		return s.fallback()
	}
	return b.value
}

// continuousDomain combines resolved bounds into a domain for scale
// type t.
func continuousDomain(t ScaleType, lo, hi bound) Domain {
	d := Domain{Min: lo.effective(minSide), Max: hi.effective(maxSide)}
	if t == Log {
		if d.Min <= 0 {
			d.Min = 1
		}
		if d.Max <= 0 {
			d.Max = 1
		}
	}
	if d.Min > d.Max {
		d.Min, d.Max = d.Max, d.Min
	}
	return d
}

// ordinalDomain returns the domain of an ordinal axis with the given
// categories. Unless distinct is set, repeated categories are kept and
// each gets its own band.
func ordinalDomain(cats []string, distinct bool) Domain {
	if distinct && len(cats) > 0 {
		cats = slice.NubAppend(cats).([]string)
	}
	return Domain{Categories: cats}
}
