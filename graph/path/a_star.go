// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"fmt"
	"math"

	"github.com/rogpeppe/astar/heap"

	"github.com/rogpeppe/astar/graph"
)

// Stats holds counters describing the work done by a search.
// They may help with heuristic tuning.
type Stats struct {
	// Expanded holds the number of nodes taken from the open set,
	// including the target.
	Expanded int

	// Discovered holds the number of distinct nodes that entered
	// the open set, including the source.
	Discovered int
}

// Option configures a search.
type Option func(*options)

type options struct {
	stats *Stats
}

// WithStats causes the search to record its counters in s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// Search finds the A*-shortest path from source to target in g using
// the heuristic h, and returns the predecessor map of the search: for
// each node reached, the node before it on the best path found. The
// path to target can be recovered from it with an Extractor.
//
// The path will be the shortest path if the heuristic is admissible. A heuristic is
// admissible if for any node, n, in the graph, the heuristic estimate of the cost of
// the path from n to target is less than or equal to the true cost of that path.
//
// If h is nil, Search will use the g.HeuristicCost method if g implements HeuristicCoster,
// falling back to NullHeuristic otherwise.
//
// When source == target the search does no work and the returned map
// is empty. If target cannot be reached, the error wraps ErrUnreachable.
// Relaxing an arc with a negative weight fails with ErrNegativeWeight.
//
// Among equal-cost routes to a node, the first one discovered is kept,
// and among open nodes with equal estimates the one discovered first is
// expanded first, so the result is determined by the order in which g
// returns neighbors.
func Search[Node comparable](g graph.Graph[Node], source, target Node, h Heuristic[Node], opts ...Option) (map[Node]Node, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	var stats Stats
	if o.stats != nil {
		defer func() {
			*o.stats = stats
		}()
	}
	parent := make(map[Node]Node)
	if source == target {
		return parent, nil
	}
	h = heuristicFor(g, h)

	gScore := map[Node]float64{source: 0}
	closed := make(map[Node]bool)
	open := heap.NewKeyed[Node](lessEstimate)
	open.Push(source, estimate{f: h(source, target)})
	stats.Discovered = 1

	for open.Len() > 0 {
		u, _ := open.Pop()
		stats.Expanded++
		if u == target {
			return parent, nil
		}
		closed[u] = true

		gu := gScore[u]
		for _, a := range g.Neighbors(u) {
			v := a.To
			if closed[v] {
				continue
			}
			if a.Weight < 0 || math.IsNaN(a.Weight) {
				return nil, fmt.Errorf("%w: %v -> %v has weight %v", ErrNegativeWeight, u, v, a.Weight)
			}
			tentative := gu + a.Weight
			if gv, ok := gScore[v]; ok && tentative >= gv {
				continue
			}
			parent[v] = u
			gScore[v] = tentative
			e := estimate{f: tentative + h(v, target), seq: stats.Discovered}
			if old, ok := open.Priority(v); ok {
				e.seq = old.seq
			} else {
				stats.Discovered++
			}
			open.Push(v, e)
		}
	}
	return nil, fmt.Errorf("%w: no path from %v to %v", ErrUnreachable, source, target)
}

// SearchWith runs Search and hands the resulting predecessor map to
// extract, returning its result. Errors from the search are returned
// without calling extract.
func SearchWith[Node comparable, R any](g graph.Graph[Node], source, target Node, h Heuristic[Node], extract Extractor[Node, R], opts ...Option) (R, error) {
	parent, err := Search(g, source, target, h, opts...)
	if err != nil {
		var zero R
		return zero, err
	}
	return extract(g, parent, source, target)
}

// FindRoute returns the A*-shortest path from source to target as a
// sequence of nodes. It is shorthand for SearchWith with the Sequence
// extractor.
func FindRoute[Node comparable](g graph.Graph[Node], source, target Node, h Heuristic[Node], opts ...Option) (Route[Node], error) {
	return SearchWith(g, source, target, h, Sequence[Node], opts...)
}

// estimate is the open set priority of a node: its fScore, and the
// order in which it was discovered to break ties.
type estimate struct {
	f   float64
	seq int
}

func lessEstimate(e0, e1 estimate) bool {
	if e0.f != e1.f {
		return e0.f < e1.f
	}
	return e0.seq < e1.seq
}
