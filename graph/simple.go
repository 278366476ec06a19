package graph

// Simple implements Lister for a concrete set of comparable nodes.
// The zero value is an empty graph ready to use.
type Simple[Node comparable] struct {
	arcs     map[Node][]Arc[Node]
	allNodes []Node
}

// Graph returns g as the Graph interface. This avoids the annoying
// explicit type conversion needed by the current Go generics
// implementation. See https://github.com/golang/go/issues/41176.
func (g *Simple[Node]) Graph() Graph[Node] {
	return g
}

// AddNode adds a node. Typically this is only used to add
// nodes with no incoming or outgoing edges.
func (g *Simple[Node]) AddNode(n Node) {
	g.addNode(n)
}

// AddEdge adds nodes from and to, and adds an edge from -> to with
// the given weight. You don't need to call AddNode first; the nodes
// will be implicitly added if they don't already exist. Adding an edge
// that already exists replaces its weight, so there is at most one
// arc between any ordered pair of nodes.
func (g *Simple[Node]) AddEdge(from, to Node, weight float64) {
	g.addNode(from)
	g.addNode(to)
	arcs := g.arcs[from]
	for i := range arcs {
		if arcs[i].To == to {
			arcs[i].Weight = weight
			return
		}
	}
	g.arcs[from] = append(arcs, Arc[Node]{To: to, Weight: weight})
}

// AddUndirected adds an edge in both directions between a and b.
func (g *Simple[Node]) AddUndirected(a, b Node, weight float64) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

func (g *Simple[Node]) addNode(n Node) {
	if g.arcs == nil {
		g.arcs = make(map[Node][]Arc[Node])
	}
	if _, ok := g.arcs[n]; !ok {
		g.arcs[n] = nil
		g.allNodes = append(g.allNodes, n)
	}
}

// HasNode reports whether n has been added to the graph.
func (g *Simple[Node]) HasNode(n Node) bool {
	_, ok := g.arcs[n]
	return ok
}

// AllNodes implements Lister.AllNodes. Nodes are returned in the
// order they were first added.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) AllNodes() []Node {
	return g.allNodes
}

// Neighbors implements Graph.Neighbors. Arcs are returned in the
// order they were first added.
// Note: the caller should not mutate the returned slice.
func (g *Simple[Node]) Neighbors(n Node) []Arc[Node] {
	return g.arcs[n]
}

// EdgeWeight implements Graph.EdgeWeight.
func (g *Simple[Node]) EdgeWeight(from, to Node) (float64, bool) {
	for _, a := range g.arcs[from] {
		if a.To == to {
			return a.Weight, true
		}
	}
	return 0, false
}
