// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reactive implements a small graph of lazily derived values.
//
// A Graph contains leaf cells, which are set directly, and derived
// values, which are computed from other nodes. Each derived value
// declares the names of the nodes it reads. Setting a cell marks every
// transitively dependent value stale, but nothing is recomputed until
// a stale value is read. Hence any number of cells may be updated
// together and readers only ever observe values computed from the
// complete update.
//
// A Graph is not safe for concurrent use.
package reactive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateName is returned by Resolve if two nodes have
	// the same name.
	ErrDuplicateName = errors.New("duplicate node name")

	// ErrUnknownDependency is returned by Resolve if a derived
	// value depends on a name that is not in the graph.
	ErrUnknownDependency = errors.New("unknown dependency")

	// ErrCycle is returned by Resolve if the dependencies form a
	// cycle.
	ErrCycle = errors.New("dependency cycle")
)

// Graph is a set of named cells and derived values.
type Graph struct {
	nodes map[string]*node
	order []*node
	err   error

	resolved bool

	// computing is the stack of derived values currently being
	// computed. It is used to reject undeclared reads.
	computing []*node
}

// node is the type-independent part of a Cell or Value.
type node struct {
	g    *Graph
	name string
	leaf bool

	deps       []string
	upstream   []*node
	dependents []*node

	// stale is set when an upstream node changed since this node
	// was last computed. Cells are never stale.
	stale bool

	// refresh recomputes a derived node's value.
	refresh func()
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

func (g *Graph) add(n *node) {
	if _, ok := g.nodes[n.name]; ok {
		if g.err == nil {
			g.err = fmt.Errorf("%w: %q", ErrDuplicateName, n.name)
		}
		return
	}
	g.nodes[n.name] = n
	g.order = append(g.order, n)
	g.resolved = false
}

// Len returns the number of nodes in g.
func (g *Graph) Len() int {
	return len(g.order)
}

// Resolve binds the declared dependencies of every derived value in g
// and checks the graph for configuration errors. It is called
// implicitly by the first read after nodes are added, but calling it
// explicitly allows errors to be handled instead of panicking.
func (g *Graph) Resolve() error {
	if g.err != nil {
		return g.err
	}
	if g.resolved {
		return nil
	}

	for _, n := range g.order {
		n.upstream = n.upstream[:0]
		n.dependents = n.dependents[:0]
	}
	for _, n := range g.order {
		for _, dep := range n.deps {
			up, ok := g.nodes[dep]
			if !ok {
				return fmt.Errorf("%w: %q depends on %q", ErrUnknownDependency, n.name, dep)
			}
			n.upstream = append(n.upstream, up)
			up.dependents = append(up.dependents, n)
		}
	}
	if err := g.checkCycles(); err != nil {
		return err
	}
	g.resolved = true
	return nil
}

// checkCycles performs a depth-first search over upstream edges and
// returns an ErrCycle naming the first cycle found.
func (g *Graph) checkCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[*node]int, len(g.order))
	var path []string
	var visit func(n *node) error
	visit = func(n *node) error {
		switch state[n] {
		case done:
			return nil
		case visiting:
			start := 0
			for i, name := range path {
				if name == n.name {
					start = i
				}
			}
			cycle := append(path[start:len(path):len(path)], n.name)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
		}
		state[n] = visiting
		path = append(path, n.name)
		for _, up := range n.upstream {
			if err := visit(up); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[n] = done
		return nil
	}
	for _, n := range g.order {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) mustResolve() {
	if g.resolved {
		return
	}
	if err := g.Resolve(); err != nil {
		panic("reactive: " + err.Error())
	}
}

// read is called on every Get. It resolves the graph and checks that a
// derived value that is being computed declared n as a dependency.
func (g *Graph) read(n *node) {
	g.mustResolve()
	if len(g.computing) == 0 {
		return
	}
	reader := g.computing[len(g.computing)-1]
	for _, up := range reader.upstream {
		if up == n {
			return
		}
	}
	panic(fmt.Sprintf("reactive: %q reads %q, which it does not declare as a dependency", reader.name, n.name))
}

// invalidate marks everything downstream of n stale.
func (n *node) invalidate() {
	for _, d := range n.dependents {
		d.markStale()
	}
}

func (n *node) markStale() {
	// A stale node's dependents are already stale: a node only
	// becomes fresh by recomputing, which first refreshes all of
	// its upstream nodes.
	if n.stale {
		return
	}
	n.stale = true
	n.invalidate()
}

// update brings a stale derived node up to date.
func (n *node) update() {
	if !n.stale {
		return
	}
	for _, up := range n.upstream {
		up.update()
	}
	g := n.g
	g.computing = append(g.computing, n)
	defer func() { g.computing = g.computing[:len(g.computing)-1] }()
	n.refresh()
	n.stale = false
}
