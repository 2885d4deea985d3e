// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickStep returns the tick spacing for dividing [lo, hi] into about
// count intervals. The spacing is of the form {1,2,5}×10^k, choosing
// the multiplier nearest (geometrically) to (hi-lo)/count.
//
// Spacings below 1 are returned as a negative reciprocal (-1/step) so
// callers can round by multiplication, which is exact for the
// reciprocal of a decimal step where division by the step is not.
func tickStep(lo, hi float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	step := (hi - lo) / float64(count)
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Nice extends [lo, hi] outward so both ends fall on multiples of the
// tick step for count ticks. It iterates because rounding outward can
// change the step.
func Nice(lo, hi float64, count int) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return lo, hi
	}
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	var prev float64
	for i := 0; i < 10; i++ {
		step := tickStep(lo, hi, count)
		if step == 0 || step == prev {
			break
		}
		if step > 0 {
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		} else {
			lo = math.Floor(lo*-step) / -step
			hi = math.Ceil(hi*-step) / -step
		}
		prev = step
	}
	if reverse {
		lo, hi = hi, lo
	}
	return lo, hi
}
