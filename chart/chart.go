// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart computes the shared axis scales of a Cartesian chart.
//
// A Chart aggregates the data contributed by any number of plot
// elements, resolves the visible domain of each axis according to its
// per-bound Mode, and builds a Scale mapping that domain onto the pixel
// extent of the plot area. Plot elements register a Contribution when
// they are mounted and read XScale and YScale to lay themselves out.
//
// All derived state is computed lazily: configuration setters, data
// changes and pointer moves only mark dependent state stale, and the
// next read recomputes what is needed. Callers that apply several
// changes before reading therefore never observe a partially updated
// chart. A Chart is not safe for concurrent use.
package chart

import (
	"go.uber.org/zap"

	"github.com/aclements/go-plotaxis/reactive"
)

// Chart is the container that owns the axes of a plot.
type Chart struct {
	g   *reactive.Graph
	log *zap.Logger
	reg *Registry

	width, height *reactive.Cell[float64]
	pointer       *reactive.Cell[Pointer]
	hover         *reactive.Value[[2]Hover]

	// X and Y are the horizontal and vertical axes.
	X, Y *Axis
}

// Option configures a Chart.
type Option func(*Chart)

// WithLogger sets the logger used for debug tracing of domain and
// scale changes.
func WithLogger(l *zap.Logger) Option {
	return func(c *Chart) { c.log = l }
}

// WithSize sets the initial pixel size of the plot area.
func WithSize(width, height float64) Option {
	return func(c *Chart) {
		c.width.Set(width)
		c.height.Set(height)
	}
}

// New returns a Chart with default axes: linear scales with Auto
// bounds.
func New(opts ...Option) (*Chart, error) {
	g := reactive.New()
	c := &Chart{
		g:       g,
		log:     zap.NewNop(),
		width:   reactive.NewCell(g, "width", 0.0),
		height:  reactive.NewCell(g, "height", 0.0),
		pointer: reactive.NewCell(g, "pointer", Outside),
	}
	c.reg = newRegistry(g, "plots")
	for _, opt := range opts {
		opt(c)
	}

	c.X = newAxis(g, c.log, "x", DefaultXTicks, c.reg, c.reg.AggregatedX, c.reg.CategoriesX, c.width, false)
	c.Y = newAxis(g, c.log, "y", DefaultYTicks, c.reg, c.reg.AggregatedY, c.reg.CategoriesY, c.height, true)

	c.hover = reactive.NewValue(g, "hover", []string{"pointer", "x.scale", "y.scale"}, func([2]Hover, bool) [2]Hover {
		xs, _ := c.X.Scale()
		ys, _ := c.Y.Scale()
		hx, hy := MapPointer(c.pointer.Get(), xs, ys)
		return [2]Hover{hx, hy}
	})

	if err := g.Resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds a plot element's contribution to the chart's data.
func (c *Chart) Register(p *Contribution) error {
	if err := c.reg.Register(p); err != nil {
		return err
	}
	c.log.Debug("registered", zap.String("contribution", p.Name()), zap.Int("plots", c.reg.Len()))
	return nil
}

// Unregister removes a plot element's contribution from the chart's
// data.
func (c *Chart) Unregister(p *Contribution) {
	c.reg.Unregister(p)
	c.log.Debug("unregistered", zap.String("contribution", p.Name()), zap.Int("plots", c.reg.Len()))
}

// Contributions returns the registered contributions in registration
// order.
func (c *Chart) Contributions() []*Contribution {
	return c.reg.Contributions()
}

// SetSize sets the pixel size of the plot area.
func (c *Chart) SetSize(width, height float64) {
	c.width.Update(width, eqFloat)
	c.height.Update(height, eqFloat)
}

// GraphWidth returns the pixel width of the plot area.
func (c *Chart) GraphWidth() float64 { return c.width.Get() }

// GraphHeight returns the pixel height of the plot area.
func (c *Chart) GraphHeight() float64 { return c.height.Get() }

// XScale returns the current scale of the x axis.
func (c *Chart) XScale() (*Scale, error) { return c.X.Scale() }

// YScale returns the current scale of the y axis.
func (c *Chart) YScale() (*Scale, error) { return c.Y.Scale() }

// XDomain returns the resolved domain of the x axis.
func (c *Chart) XDomain() Domain { return c.X.Domain() }

// YDomain returns the resolved domain of the y axis.
func (c *Chart) YDomain() Domain { return c.Y.Domain() }

// SetPointer records the position of the pointer relative to the plot
// area. Use Outside when the pointer leaves the plot area.
func (c *Chart) SetPointer(p Pointer) {
	c.pointer.Update(p, func(a, b Pointer) bool { return a == b })
}

// Pointer returns the last position passed to SetPointer.
func (c *Chart) Pointer() Pointer { return c.pointer.Get() }

// HoverX returns the x domain value under the pointer. ok is false if
// the pointer is outside the plot area, the x axis is ordinal, or the
// position does not map to a finite value.
func (c *Chart) HoverX() (v float64, ok bool) {
	h := c.hover.Get()[0]
	return h.Value, h.OK
}

// HoverY is like HoverX for the y axis.
func (c *Chart) HoverY() (v float64, ok bool) {
	h := c.hover.Get()[1]
	return h.Value, h.OK
}
