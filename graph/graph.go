// Package graph defines the weighted graph abstraction searched by
// package path, together with Simple, an in-memory implementation.
package graph

// Arc is an edge leaving some node: the node it leads to and the cost
// of traversing it.
type Arc[Node comparable] struct {
	To     Node
	Weight float64
}

// Graph is a weighted directed graph. An undirected edge is represented
// by an arc in each direction. Weights are expected to be non-negative.
//
// Implementations must not change while a search is using them.
type Graph[Node comparable] interface {
	// Neighbors returns the arcs leaving n. The caller must not
	// mutate the returned slice.
	Neighbors(n Node) []Arc[Node]

	// EdgeWeight returns the weight of the edge from -> to and
	// whether such an edge exists.
	EdgeWeight(from, to Node) (float64, bool)
}

// Lister is implemented by graphs that can enumerate all their nodes.
type Lister[Node comparable] interface {
	Graph[Node]

	// AllNodes returns every node in the graph.
	AllNodes() []Node
}
