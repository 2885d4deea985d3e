// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
)

var nan = math.NaN()

// Extent is the [Min, Max] of a set of data. The "no data" extent is
// NoData, which is distinct from [0, 0].
type Extent struct {
	Min, Max float64
}

// NoData is the extent of a set with no finite values.
var NoData = Extent{nan, nan}

// Empty reports whether e is NoData.
func (e Extent) Empty() bool {
	return math.IsNaN(e.Min) || math.IsNaN(e.Max)
}

func (e Extent) String() string {
	if e.Empty() {
		return "no data"
	}
	return fmt.Sprintf("[%g,%g]", e.Min, e.Max)
}

func (e Extent) side(s side) float64 {
	if s == minSide {
		return e.Min
	}
	return e.Max
}

// ExtentOf returns the extent of the finite values in xs.
func ExtentOf(xs []float64) Extent {
	e := NoData
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < e.Min || math.IsNaN(e.Min) {
			e.Min = x
		}
		if x > e.Max || math.IsNaN(e.Max) {
			e.Max = x
		}
	}
	return e
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
