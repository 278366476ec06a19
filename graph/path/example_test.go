package path_test

import (
	"fmt"

	"github.com/rogpeppe/astar/graph"
	"github.com/rogpeppe/astar/graph/path"
)

func ExampleSearchWith() {
	var g graph.Simple[string]
	g.AddUndirected("A", "B", 1)
	g.AddUndirected("B", "D", 1)
	g.AddUndirected("A", "C", 4)
	g.AddUndirected("C", "D", 1)

	route, err := path.SearchWith(g.Graph(), "A", "D", path.NullHeuristic[string], path.Sequence[string])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(route.Nodes, route.Cost)

	hops, err := path.SearchWith(g.Graph(), "A", "D", nil, path.NextHops[string])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hops.Next, hops.Cost)

	_, err = path.FindRoute(g.Graph(), "A", "E", nil)
	fmt.Println(err)

	// Output:
	// [A B D] 2
	// map[A:B B:D] 2
	// path: target unreachable from source: no path from A to E
}
