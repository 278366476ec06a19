package path

import (
	"fmt"
	"slices"

	"github.com/rogpeppe/astar/graph"
)

// Extractor turns the predecessor map produced by Search into a
// caller-facing representation of the path from source to target.
// Extractors are given the graph so that they can report costs from
// the edges actually traversed.
type Extractor[Node comparable, R any] func(g graph.Graph[Node], parent map[Node]Node, source, target Node) (R, error)

// Route is a path held as the sequence of nodes visited.
type Route[Node comparable] struct {
	// Nodes holds the nodes from the source to the target inclusive.
	Nodes []Node
	// Cost holds the sum of the weights of the edges traversed.
	Cost float64
}

// Hops is a path held as a next-hop mapping.
type Hops[Node comparable] struct {
	// Next maps each node on the path, except the target, to the
	// node to visit after it. When the source is the target, Next
	// holds a single self-loop entry.
	Next map[Node]Node
	// Cost holds the sum of the weights of the edges traversed.
	Cost float64
}

// Sequence is an Extractor that returns the path as a Route.
func Sequence[Node comparable](g graph.Graph[Node], parent map[Node]Node, source, target Node) (Route[Node], error) {
	nodes, cost, err := walk(g, parent, source, target)
	if err != nil {
		return Route[Node]{}, err
	}
	return Route[Node]{Nodes: nodes, Cost: cost}, nil
}

// NextHops is an Extractor that returns the path as Hops.
// For the path A→B→C it produces the mapping {A: B, B: C}.
func NextHops[Node comparable](g graph.Graph[Node], parent map[Node]Node, source, target Node) (Hops[Node], error) {
	nodes, cost, err := walk(g, parent, source, target)
	if err != nil {
		return Hops[Node]{}, err
	}
	return Hops[Node]{Next: nextMap(nodes), Cost: cost}, nil
}

// walk follows parent links from target back to source and returns the
// nodes of the path in forward order along with the sum of the edge
// weights found in g.
func walk[Node comparable](g graph.Graph[Node], parent map[Node]Node, source, target Node) ([]Node, float64, error) {
	nodes := []Node{target}
	for n := target; n != source; {
		p, ok := parent[n]
		if !ok {
			return nil, 0, fmt.Errorf("%w: no predecessor recorded for %v", ErrBrokenChain, n)
		}
		// Every step consumes a distinct key of a well formed chain.
		if len(nodes) > len(parent) {
			return nil, 0, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, n)
		}
		nodes = append(nodes, p)
		n = p
	}
	slices.Reverse(nodes)

	var cost float64
	for i := 1; i < len(nodes); i++ {
		w, ok := g.EdgeWeight(nodes[i-1], nodes[i])
		if !ok {
			return nil, 0, fmt.Errorf("%w: no edge %v -> %v in graph", ErrBrokenChain, nodes[i-1], nodes[i])
		}
		cost += w
	}
	return nodes, cost, nil
}

func nextMap[Node comparable](nodes []Node) map[Node]Node {
	next := make(map[Node]Node, len(nodes))
	if len(nodes) == 1 {
		next[nodes[0]] = nodes[0]
		return next
	}
	for i := 1; i < len(nodes); i++ {
		next[nodes[i-1]] = nodes[i]
	}
	return next
}

// Hops returns the route in next-hop form.
func (r Route[Node]) Hops() Hops[Node] {
	return Hops[Node]{Next: nextMap(r.Nodes), Cost: r.Cost}
}

// Route follows the next-hop mapping from source and returns the nodes
// visited, stopping at the node that has no next hop. It returns an
// error wrapping ErrBrokenChain if source has no entry or the mapping
// loops back on itself.
func (h Hops[Node]) Route(source Node) (Route[Node], error) {
	if next, ok := h.Next[source]; !ok {
		return Route[Node]{}, fmt.Errorf("%w: no next hop recorded for %v", ErrBrokenChain, source)
	} else if next == source {
		return Route[Node]{Nodes: []Node{source}, Cost: h.Cost}, nil
	}
	nodes := []Node{source}
	for n := source; ; {
		next, ok := h.Next[n]
		if !ok {
			break
		}
		if len(nodes) > len(h.Next) {
			return Route[Node]{}, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, n)
		}
		nodes = append(nodes, next)
		n = next
	}
	return Route[Node]{Nodes: nodes, Cost: h.Cost}, nil
}
