// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"strconv"

	"github.com/aclements/go-plotaxis/reactive"
)

// ErrAlreadyRegistered is returned when a Contribution is registered
// while it is already registered with a chart.
var ErrAlreadyRegistered = errors.New("contribution already registered")

// Series is the data one plot element contributes along one axis.
// Numeric data is used by continuous axes and categorical data by
// ordinal axes.
type Series struct {
	Numbers    []float64
	Categories []string
}

// Numbers returns a Series of numeric values.
func Numbers(xs ...float64) Series {
	return Series{Numbers: xs}
}

// Categories returns a Series of categorical values.
func Categories(cs ...string) Series {
	return Series{Categories: cs}
}

// Len returns the number of values in s.
func (s Series) Len() int {
	if s.Categories != nil {
		return len(s.Categories)
	}
	return len(s.Numbers)
}

// Category returns value i of s as a category. Numeric values are
// formatted.
func (s Series) Category(i int) string {
	if s.Categories != nil {
		return s.Categories[i]
	}
	return strconv.FormatFloat(s.Numbers[i], 'g', -1, 64)
}

// Number returns value i of s as a number, or NaN if s is categorical.
func (s Series) Number(i int) float64 {
	if s.Categories != nil {
		return nan
	}
	return s.Numbers[i]
}

func (s Series) appendCategories(dst []string) []string {
	if s.Categories != nil {
		return append(dst, s.Categories...)
	}
	for i := range s.Numbers {
		dst = append(dst, s.Category(i))
	}
	return dst
}

// Contribution is the data owned by one plot element: the values it
// places along the x and y axes.
type Contribution struct {
	name string
	x, y Series

	// reg is the registry c is registered with, if any.
	reg *Registry
}

// NewContribution returns an unregistered Contribution.
func NewContribution(name string, x, y Series) *Contribution {
	return &Contribution{name: name, x: x, y: y}
}

// Name returns the name of c.
func (c *Contribution) Name() string { return c.name }

// X returns c's x data.
func (c *Contribution) X() Series { return c.x }

// Y returns c's y data.
func (c *Contribution) Y() Series { return c.y }

// Registered reports whether c is currently registered.
func (c *Contribution) Registered() bool { return c.reg != nil }

// SetData replaces c's data. If c is registered, everything derived
// from the registry becomes stale.
func (c *Contribution) SetData(x, y Series) {
	c.x, c.y = x, y
	if c.reg != nil {
		c.reg.rev.Touch()
	}
}

// Registry tracks the set of mounted contributions, in registration
// order.
type Registry struct {
	// entries holds contributions in registration order. Entries
	// of unregistered contributions are nil until the next
	// compaction.
	entries []*Contribution
	index   map[*Contribution]int
	holes   int

	rev *reactive.Cell[struct{}]
}

// newRegistry returns an empty Registry whose changes are published
// through a cell named name in g.
func newRegistry(g *reactive.Graph, name string) *Registry {
	return &Registry{
		index: make(map[*Contribution]int),
		rev:   reactive.NewCell(g, name, struct{}{}),
	}
}

// Register adds c to r.
func (r *Registry) Register(c *Contribution) error {
	if c.reg != nil {
		return ErrAlreadyRegistered
	}
	c.reg = r
	r.index[c] = len(r.entries)
	r.entries = append(r.entries, c)
	r.rev.Touch()
	return nil
}

// Unregister removes c from r. It does nothing if c is not registered
// with r.
func (r *Registry) Unregister(c *Contribution) {
	i, ok := r.index[c]
	if !ok {
		return
	}
	delete(r.index, c)
	c.reg = nil
	r.entries[i] = nil
	r.holes++
	if r.holes > len(r.entries)/2 {
		r.compact()
	}
	r.rev.Touch()
}

func (r *Registry) compact() {
	live := r.entries[:0]
	for _, c := range r.entries {
		if c != nil {
			r.index[c] = len(live)
			live = append(live, c)
		}
	}
	for i := len(live); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = live
	r.holes = 0
}

// Len returns the number of registered contributions.
func (r *Registry) Len() int {
	return len(r.index)
}

// Contributions returns the registered contributions in registration
// order.
func (r *Registry) Contributions() []*Contribution {
	out := make([]*Contribution, 0, len(r.index))
	for _, c := range r.entries {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// AggregatedX returns the concatenation of the numeric x data of all
// registered contributions. It is never nil.
func (r *Registry) AggregatedX() []float64 {
	return r.aggregate(func(c *Contribution) Series { return c.x })
}

// AggregatedY is like AggregatedX for y data.
func (r *Registry) AggregatedY() []float64 {
	return r.aggregate(func(c *Contribution) Series { return c.y })
}

func (r *Registry) aggregate(get func(*Contribution) Series) []float64 {
	out := []float64{}
	for _, c := range r.entries {
		if c != nil {
			out = append(out, get(c).Numbers...)
		}
	}
	return out
}

// CategoriesX returns the concatenation of the x data of all
// registered contributions as categories. Duplicates are retained.
func (r *Registry) CategoriesX() []string {
	return r.categories(func(c *Contribution) Series { return c.x })
}

// CategoriesY is like CategoriesX for y data.
func (r *Registry) CategoriesY() []string {
	return r.categories(func(c *Contribution) Series { return c.y })
}

func (r *Registry) categories(get func(*Contribution) Series) []string {
	out := []string{}
	for _, c := range r.entries {
		if c != nil {
			out = get(c).appendCategories(out)
		}
	}
	return out
}
