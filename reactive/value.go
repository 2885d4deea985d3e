// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

// Cell is a leaf node of a Graph. Its value is set directly.
type Cell[T any] struct {
	n node
	v T
}

// NewCell adds a cell named name with initial value v to g.
func NewCell[T any](g *Graph, name string, v T) *Cell[T] {
	c := &Cell[T]{n: node{g: g, name: name, leaf: true}, v: v}
	g.add(&c.n)
	return c
}

// Name returns the name of c.
func (c *Cell[T]) Name() string { return c.n.name }

// Get returns the current value of c.
func (c *Cell[T]) Get() T {
	c.n.g.read(&c.n)
	return c.v
}

// Set sets the value of c and marks all values that depend on c stale.
// Set never recomputes anything.
func (c *Cell[T]) Set(v T) {
	c.v = v
	c.n.invalidate()
}

// Update is like Set, but only invalidates dependents if eq reports
// that v differs from the current value.
func (c *Cell[T]) Update(v T, eq func(a, b T) bool) {
	if eq(c.v, v) {
		return
	}
	c.Set(v)
}

// Touch marks all values that depend on c stale without changing c.
// It is used when c names state that is mutated in place.
func (c *Cell[T]) Touch() {
	c.n.invalidate()
}

// Value is a node of a Graph whose value is derived from other nodes.
type Value[T any] struct {
	n        node
	fn       func(prev T, ok bool) T
	v        T
	ok       bool
	computes int
}

// NewValue adds a derived value named name to g. deps are the names of
// the nodes fn reads; they may name nodes that have not been added yet,
// but must all exist by the time the graph is resolved.
//
// fn computes the value. prev is the previously computed value, and ok
// is false if there is none. Most derived values ignore prev; it
// exists for values whose next state depends on their last one.
// fn must only read the nodes named in deps.
func NewValue[T any](g *Graph, name string, deps []string, fn func(prev T, ok bool) T) *Value[T] {
	v := &Value[T]{fn: fn}
	v.n = node{
		g:     g,
		name:  name,
		deps:  append([]string(nil), deps...),
		stale: true,
		refresh: func() {
			v.v = v.fn(v.v, v.ok)
			v.ok = true
			v.computes++
		},
	}
	g.add(&v.n)
	return v
}

// Name returns the name of v.
func (v *Value[T]) Name() string { return v.n.name }

// Get returns the value of v, recomputing it first if any of its
// dependencies changed since it was last computed.
func (v *Value[T]) Get() T {
	v.n.g.read(&v.n)
	v.n.update()
	return v.v
}

// Stale reports whether the next Get of v will recompute it.
func (v *Value[T]) Stale() bool {
	return v.n.stale
}

// Computes returns the number of times v has been computed.
func (v *Value[T]) Computes() int {
	return v.computes
}
