// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ScaleType selects how an axis maps its domain onto pixels.
type ScaleType int

const (
	// Linear maps the domain linearly onto the range.
	Linear ScaleType = iota
	// Power maps the domain through x³ (sign preserving).
	Power
	// Log maps the domain through a base-10 logarithm. The domain
	// of a Log axis is always positive.
	Log
	// Ordinal divides the range into one band per category.
	Ordinal
)

var (
	// ErrUnknownScaleType is returned when a scale is built for a
	// ScaleType outside the supported set.
	ErrUnknownScaleType = errors.New("unknown scale type")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("unknown axis mode")
)

var scaleTypeNames = []string{
	Linear:  "linear",
	Power:   "power",
	Log:     "log",
	Ordinal: "ordinal",
}

func (t ScaleType) String() string {
	if t < 0 || int(t) >= len(scaleTypeNames) {
		return fmt.Sprintf("ScaleType(%d)", int(t))
	}
	return scaleTypeNames[t]
}

// Continuous reports whether t maps a numeric interval.
func (t ScaleType) Continuous() bool {
	return t == Linear || t == Power || t == Log
}

// ParseScaleType parses the name of a scale type.
func ParseScaleType(s string) (ScaleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return Linear, nil
	case "power", "pow":
		return Power, nil
	case "log", "logarithmic":
		return Log, nil
	case "ordinal", "band":
		return Ordinal, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownScaleType, s)
}

// Mode is the policy used to resolve one bound of an axis domain.
type Mode int

const (
	// Auto sets the bound to the data extent.
	Auto Mode = iota
	// Fixed sets the bound to the configured value.
	Fixed
	// Push widens the bound to the data extent, but never narrows
	// it.
	Push
	// PushTick is like Push, but widens to a rounded tick value.
	PushTick
)

var modeNames = []string{
	Auto:     "auto",
	Fixed:    "fixed",
	Push:     "push",
	PushTick: "push-tick",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses the name of an axis mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Auto, nil
	}
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// side is the lower or upper bound of a domain.
type side int

const (
	minSide side = iota
	maxSide
)

func (s side) String() string {
	if s == minSide {
		return "min"
	}
	return "max"
}
