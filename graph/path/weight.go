// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/rogpeppe/astar/graph"
)

// Heuristic returns an estimate of the cost of travelling from n to
// target. The estimate must be non-negative.
type Heuristic[Node comparable] func(n, target Node) float64

// HeuristicCoster can be implemented by a [graph.Graph] to
// provide a default cost heuristic for the graph.
type HeuristicCoster[Node comparable] interface {
	HeuristicCost(n, target Node) float64
}

// NullHeuristic is an admissible, consistent heuristic that will not speed up computation.
// Searching with it is equivalent to Dijkstra's algorithm.
func NullHeuristic[Node any](_, _ Node) float64 {
	return 0
}

// heuristicFor returns h if it is non-nil, otherwise the graph's own
// heuristic if it has one, otherwise NullHeuristic.
func heuristicFor[Node comparable](g graph.Graph[Node], h Heuristic[Node]) Heuristic[Node] {
	if h != nil {
		return h
	}
	if hc, ok := g.(HeuristicCoster[Node]); ok {
		return hc.HeuristicCost
	}
	return NullHeuristic[Node]
}

// UniformCost returns a view of g in which every edge has a cost of 1,
// except self-loops which cost 0. Searching it finds the path with the
// fewest edges.
func UniformCost[Node comparable](g graph.Graph[Node]) graph.Graph[Node] {
	return uniform[Node]{g}
}

type uniform[Node comparable] struct {
	g graph.Graph[Node]
}

func (u uniform[Node]) Neighbors(n Node) []graph.Arc[Node] {
	arcs := u.g.Neighbors(n)
	out := make([]graph.Arc[Node], len(arcs))
	for i, a := range arcs {
		out[i] = graph.Arc[Node]{To: a.To, Weight: unitWeight(n, a.To)}
	}
	return out
}

func (u uniform[Node]) EdgeWeight(from, to Node) (float64, bool) {
	if _, ok := u.g.EdgeWeight(from, to); !ok {
		return 0, false
	}
	return unitWeight(from, to), true
}

func unitWeight[Node comparable](from, to Node) float64 {
	if from == to {
		return 0
	}
	return 1
}
