// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads line-oriented plot input files.
//
// A dataset file consists of configuration lines and data lines.
// Configuration lines have the form "key: value", where key begins
// with a lower-case letter and contains no upper-case letters or
// spaces. A configuration line applies to every data line that
// follows it until the key is set again. Data lines have the form
//
//	Series x y
//
// where Series begins with an upper-case letter. Blank lines and lines
// beginning with "#" are ignored.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-plotaxis/chart"
)

// ErrSyntax is returned for data lines that cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// Dataset is the parsed content of a dataset file.
type Dataset struct {
	// Config is the final value of every configuration key.
	Config map[string]string

	// Series lists the data series in order of first appearance.
	Series []*Series
}

// Series is the data of one named series.
type Series struct {
	Name string

	// Config is the block configuration in effect where the series
	// first appeared.
	Config map[string]string

	// Style is the "style" configuration in effect where the series
	// first appeared.
	Style Style

	// RawX and RawY are the values exactly as written.
	RawX, RawY []string

	// X and Y are RawX and RawY converted by Parse. A column is
	// numeric if every value parses as a float and categorical
	// otherwise.
	X, Y chart.Series
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse parses a dataset file from r.
func Parse(r io.Reader) (*Dataset, error) {
	ds := &Dataset{Config: make(map[string]string)}
	config := make(map[string]string)
	index := make(map[string]*Series)

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			ds.Config[m[1]] = m[2]
			continue
		}

		// Data lines.
		f := strings.Fields(line)
		if r, _ := utf8.DecodeRuneInString(f[0]); !unicode.IsUpper(r) {
			return nil, fmt.Errorf("line %d: %w: series name %q must begin with an upper-case letter", lineno, ErrSyntax, f[0])
		}
		if len(f) != 3 {
			return nil, fmt.Errorf("line %d: %w: want \"Series x y\", got %d fields", lineno, ErrSyntax, len(f))
		}
		s := index[f[0]]
		if s == nil {
			style, err := ParseStyle(config["style"])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			s = &Series{Name: f[0], Config: copyConfig(config), Style: style}
			index[f[0]] = s
			ds.Series = append(ds.Series, s)
		}
		s.RawX = append(s.RawX, f[1])
		s.RawY = append(s.RawY, f[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, s := range ds.Series {
		s.X = convert(s.RawX)
		s.Y = convert(s.RawY)
	}
	return ds, nil
}

func copyConfig(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// convert returns raw as numbers if every value parses as a float and
// as categories otherwise.
func convert(raw []string) chart.Series {
	xs := make([]float64, len(raw))
	for i, s := range raw {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return chart.Categories(raw...)
		}
		xs[i] = x
	}
	return chart.Numbers(xs...)
}

// AxisConfig returns the configuration keys for the named axis with
// the axis prefix removed. For example, "y-min-mode: push" is returned
// as "min-mode" for axis "y".
func (ds *Dataset) AxisConfig(axis string) map[string]string {
	prefix := axis + "-"
	out := make(map[string]string)
	for k, v := range ds.Config {
		if strings.HasPrefix(k, prefix) {
			out[k[len(prefix):]] = v
		}
	}
	return out
}

// Style selects the kind of plot element drawn for a series.
type Style int

const (
	StyleLine Style = iota
	StyleBars
	StyleMarkers
)

// ErrUnknownStyle is returned by ParseStyle.
var ErrUnknownStyle = errors.New("unknown style")

var styleNames = []string{StyleLine: "line", StyleBars: "bars", StyleMarkers: "markers"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle parses a style name. The empty string is StyleLine.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "line", "lines":
		return StyleLine, nil
	case "bar", "bars":
		return StyleBars, nil
	case "marker", "markers", "points":
		return StyleMarkers, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStyle, s)
}
