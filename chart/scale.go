// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	mscale "github.com/aclements/go-moremath/scale"
)

// powerExponent is the exponent of Power scales.
const powerExponent = 3

// Range is an interval of pixel positions. Range[0] is the position of
// the low end of the domain, so a vertical axis typically has
// Range[0] > Range[1].
type Range [2]float64

// ScaleSpec is the complete input to BuildScale.
type ScaleSpec struct {
	Type   ScaleType
	Domain Domain
	Range  Range

	// Padding is the fraction of each band left empty between
	// adjacent bands and OuterPadding is the space before the
	// first and after the last band, in units of the band step.
	// Both only apply to Ordinal scales and are clamped to [0, 1).
	Padding, OuterPadding float64
}

// A Scale maps an axis domain to pixel positions. Scales are
// immutable; a change to any input produces a new Scale.
type Scale struct {
	spec ScaleSpec

	// Continuous scales. norm maps the domain to [0, 1].
	norm normalizer

	// Ordinal scales.
	start, step, bandwidth float64
	reverse                bool
}

// normalizer maps a continuous domain onto [0, 1] and back.
// go-moremath's Linear and Log scales are normalizers.
type normalizer interface {
	Map(x float64) float64
	Unmap(y float64) float64
}

// BuildScale returns the Scale described by spec. It returns
// ErrUnknownScaleType if spec.Type is not a known scale type.
func BuildScale(spec ScaleSpec) (*Scale, error) {
	switch spec.Type {
	case Linear:
		return newLinearScale(spec), nil
	case Power:
		return newPowerScale(spec), nil
	case Log:
		return newLogScale(spec)
	case Ordinal:
		return newOrdinalScale(spec), nil
	}
	return nil, fmt.Errorf("%w %v", ErrUnknownScaleType, spec.Type)
}

func newLinearScale(spec ScaleSpec) *Scale {
	spec.Domain.Categories = nil
	return &Scale{spec: spec, norm: mscale.Linear{Min: spec.Domain.Min, Max: spec.Domain.Max}}
}

func newPowerScale(spec ScaleSpec) *Scale {
	spec.Domain.Categories = nil
	lin := mscale.Linear{Min: pow(spec.Domain.Min), Max: pow(spec.Domain.Max)}
	return &Scale{spec: spec, norm: powerNorm{lin}}
}

func newLogScale(spec ScaleSpec) (*Scale, error) {
	spec.Domain.Categories = nil
	l, err := mscale.NewLog(spec.Domain.Min, spec.Domain.Max, 10)
	if err != nil {
		return nil, fmt.Errorf("log scale over %v: %w", spec.Domain, err)
	}
	return &Scale{spec: spec, norm: l}, nil
}

// powerNorm normalizes through a sign-preserving power transform.
type powerNorm struct {
	lin mscale.Linear
}

func pow(x float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), powerExponent), x)
}

func unpow(y float64) float64 {
	return math.Copysign(math.Pow(math.Abs(y), 1.0/powerExponent), y)
}

func (p powerNorm) Map(x float64) float64   { return p.lin.Map(pow(x)) }
func (p powerNorm) Unmap(y float64) float64 { return unpow(p.lin.Unmap(y)) }

func clampPadding(p float64) float64 {
	if !(p > 0) {
		return 0
	}
	if p >= 1 {
		return math.Nextafter(1, 0)
	}
	return p
}

// newOrdinalScale lays out one band per category, with band positions
// and widths rounded to whole pixels.
func newOrdinalScale(spec ScaleSpec) *Scale {
	spec.Padding = clampPadding(spec.Padding)
	spec.OuterPadding = clampPadding(spec.OuterPadding)
	s := &Scale{spec: spec}

	n := float64(len(spec.Domain.Categories))
	lo, hi := spec.Range[0], spec.Range[1]
	if hi < lo {
		lo, hi = hi, lo
		s.reverse = true
	}
	div := n - spec.Padding + 2*spec.OuterPadding
	if n == 0 {
		div = 1
	}
	s.step = math.Floor((hi - lo) / div)
	s.start = math.Round(lo + (hi-lo-s.step*(n-spec.Padding))/2)
	s.bandwidth = math.Round(s.step * (1 - spec.Padding))
	return s
}

// Type returns the scale type of s.
func (s *Scale) Type() ScaleType { return s.spec.Type }

// Domain returns the domain of s.
func (s *Scale) Domain() Domain { return s.spec.Domain }

// Range returns the pixel range of s.
func (s *Scale) Range() Range { return s.spec.Range }

// Spec returns the inputs s was built from.
func (s *Scale) Spec() ScaleSpec { return s.spec }

// Map returns the pixel position of domain value x. For ordinal scales
// it returns NaN; use MapCategory.
func (s *Scale) Map(x float64) float64 {
	if s.norm == nil {
		return nan
	}
	r := s.spec.Range
	return r[0] + s.norm.Map(x)*(r[1]-r[0])
}

// Invert returns the domain value at pixel position px. It returns
// false if s is ordinal or the result is not a finite number.
func (s *Scale) Invert(px float64) (float64, bool) {
	if s.norm == nil {
		return nan, false
	}
	r := s.spec.Range
	if r[0] == r[1] {
		return nan, false
	}
	x := s.norm.Unmap((px - r[0]) / (r[1] - r[0]))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nan, false
	}
	return x, true
}

// MapCategory returns the start pixel of the band for category c. If c
// appears more than once in the domain, the first band is used. It
// returns false if s is not ordinal or c is not in its domain.
func (s *Scale) MapCategory(c string) (float64, bool) {
	if s.spec.Type != Ordinal {
		return nan, false
	}
	cats := s.spec.Domain.Categories
	i := slice.Index(cats, c)
	if i < 0 {
		return nan, false
	}
	return s.band(i), true
}

// band returns the start pixel of band i.
func (s *Scale) band(i int) float64 {
	if s.reverse {
		i = len(s.spec.Domain.Categories) - 1 - i
	}
	return s.start + s.step*float64(i)
}

// Bands returns the start pixel of every band in domain order.
func (s *Scale) Bands() []float64 {
	if s.spec.Type != Ordinal {
		return nil
	}
	out := make([]float64, len(s.spec.Domain.Categories))
	for i := range out {
		out[i] = s.band(i)
	}
	return out
}

// BandWidth returns the rounded width of each band of an ordinal scale,
// and 0 for continuous scales.
func (s *Scale) BandWidth() float64 {
	return s.bandwidth
}

// Step returns the distance between the starts of adjacent bands of an
// ordinal scale, and 0 for continuous scales.
func (s *Scale) Step() float64 {
	return s.step
}

func (s *Scale) String() string {
	return fmt.Sprintf("%v %v => [%g,%g]", s.spec.Type, s.spec.Domain, s.spec.Range[0], s.spec.Range[1])
}
