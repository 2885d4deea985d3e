// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Pointer is a pointer position in pixels relative to the origin of the
// plot area. The zero Pointer is Outside.
type Pointer struct {
	X, Y float64
	in   bool
}

// Outside is the position of a pointer that is not over the plot area.
var Outside = Pointer{}

// At returns a Pointer at (x, y).
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, in: true}
}

// Inside reports whether p is over the plot area.
func (p Pointer) Inside() bool { return p.in }

// Hover is the domain value under the pointer along one axis. OK is
// false if there is no hover value.
type Hover struct {
	Value float64
	OK    bool
}

// noHover is the zero Hover with an explicit NaN value.
var noHover = Hover{Value: nan}

// MapPointer returns the domain values under p along each axis. Either
// scale may be nil, in which case that axis has no hover value.
func MapPointer(p Pointer, xs, ys *Scale) (hx, hy Hover) {
	if !p.in {
		return noHover, noHover
	}
	return hoverAt(xs, p.X), hoverAt(ys, p.Y)
}

func hoverAt(s *Scale, px float64) Hover {
	if s == nil {
		return noHover
	}
	v, ok := s.Invert(px)
	if !ok {
		return noHover
	}
	return Hover{Value: v, OK: true}
}
