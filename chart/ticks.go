// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/dustin/go-humanize"
)

// Tick is a labeled position along an axis.
type Tick struct {
	Value float64 // domain value; the band index for ordinal scales
	Pos   float64 // pixel position
	Label string
}

// Ticks returns at most max major ticks for s. Ordinal scales return
// one tick at the center of each band regardless of max.
func (s *Scale) Ticks(max int) []Tick {
	if s.spec.Type == Ordinal {
		cats := s.spec.Domain.Categories
		ticks := make([]Tick, len(cats))
		for i, c := range cats {
			ticks[i] = Tick{Value: float64(i), Pos: s.band(i) + s.bandwidth/2, Label: c}
		}
		return ticks
	}

	if d := s.spec.Domain; math.IsInf(d.Max-d.Min, 0) {
		// The span overflows float64; there is no tick spacing.
		return nil
	}
	o := mscale.TickOptions{Max: max}
	var major []float64
	switch norm := s.norm.(type) {
	case mscale.Log:
		major, _ = norm.Ticks(o)
	default:
		lin := mscale.Linear{Min: s.spec.Domain.Min, Max: s.spec.Domain.Max}
		major, _ = lin.Ticks(o)
	}
	ticks := make([]Tick, 0, len(major))
	for _, v := range major {
		ticks = append(ticks, Tick{Value: v, Pos: s.Map(v), Label: FormatTick(v)})
	}
	return ticks
}

// FormatTick formats a tick value for display.
func FormatTick(v float64) string {
	a := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case a >= 1e4:
		return humanize.CommafWithDigits(v, 2)
	case a < 1e-4:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	return humanize.Ftoa(v)
}
