package hclgraph

import (
	"math"

	"github.com/rogpeppe/astar/graph/path"
)

// Euclidean returns a heuristic that estimates the remaining cost as the
// straight-line distance between node coordinates multiplied by scale.
// Nodes without coordinates are estimated at zero.
//
// The heuristic is admissible when no edge is cheaper than scale times
// the distance it spans, which holds with scale 1 for edges whose weight
// was omitted.
func (m *Map) Euclidean(scale float64) path.Heuristic[string] {
	return func(n, target string) float64 {
		d, ok := m.dist(n, target)
		if !ok {
			return 0
		}
		return scale * d
	}
}

// Manhattan returns a heuristic that estimates the remaining cost as the
// taxicab distance between node coordinates multiplied by scale. It is
// only admissible for graphs whose edges follow the axes.
// Nodes without coordinates are estimated at zero.
func (m *Map) Manhattan(scale float64) path.Heuristic[string] {
	return func(n, target string) float64 {
		pn, ok := m.coords[n]
		if !ok {
			return 0
		}
		pt, ok := m.coords[target]
		if !ok {
			return 0
		}
		return scale * (math.Abs(pn.x-pt.x) + math.Abs(pn.y-pt.y))
	}
}
