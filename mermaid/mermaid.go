// Package mermaid provides functionality for marshaling weighted graphs
// to Mermaid diagram format. Mermaid is a text-based diagramming tool that
// generates diagrams from markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rogpeppe/astar/graph"
)

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	// It returns an error if the marshaling fails.
	MarshalMermaid() ([]byte, error)
}

// NodeInfo contains metadata about a graph node for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the node in the Mermaid diagram.
	ID string
	// Text is the display text for the node. If empty, ID is used instead.
	Text string
	// Style contains Mermaid style declarations for the node (e.g., "fill:#f9f,stroke:#333").
	Style string
}

// Options controls how a graph is rendered.
type Options[Node comparable] struct {
	// NodeInfo returns the metadata for a node. If nil, the node
	// is formatted with fmt.Sprint to make its ID.
	NodeInfo func(Node) NodeInfo

	// Route, if non-empty, holds a path through the graph. Its edges
	// are drawn as thick links and its nodes are given RouteStyle.
	Route []Node

	// RouteStyle is the style applied to nodes on Route that have
	// no style of their own. If empty, DefaultRouteStyle is used.
	RouteStyle string

	// HideWeights omits the edge weight labels.
	HideWeights bool
}

// DefaultRouteStyle is the style given to nodes on a highlighted route.
const DefaultRouteStyle = "fill:#9f9,stroke:#333"

// NewGraph creates a Marshaler for g. The resulting Marshaler
// can be used to generate a Mermaid graph diagram representation.
func NewGraph[Node comparable](g graph.Lister[Node], opts Options[Node]) Marshaler {
	return &graphImpl[Node]{g: g, opts: opts}
}

type graphImpl[Node comparable] struct {
	g    graph.Lister[Node]
	opts Options[Node]
}

func (g *graphImpl[Node]) info(n Node) NodeInfo {
	if g.opts.NodeInfo != nil {
		return g.opts.NodeInfo(n)
	}
	return NodeInfo{ID: fmt.Sprint(n)}
}

func (g *graphImpl[Node]) MarshalMermaid() ([]byte, error) {
	onRoute := make(map[Node]bool)
	routeEdges := make(map[[2]Node]bool)
	for i, n := range g.opts.Route {
		onRoute[n] = true
		if i > 0 {
			routeEdges[[2]Node{g.opts.Route[i-1], n}] = true
		}
	}
	routeStyle := g.opts.RouteStyle
	if routeStyle == "" {
		routeStyle = DefaultRouteStyle
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.info(n)
		if info.ID == "" {
			return nil, fmt.Errorf("mermaid: node %v has empty ID", n)
		}
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[%s]\n", info.ID, info.Text)
		}
		style := info.Style
		if style == "" && onRoute[n] {
			style = routeStyle
		}
		if style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, style)
		}
		for _, a := range g.g.Neighbors(n) {
			link := "-->"
			if routeEdges[[2]Node{n, a.To}] {
				link = "==>"
			}
			label := ""
			if !g.opts.HideWeights {
				label = "|" + strconv.FormatFloat(a.Weight, 'g', -1, 64) + "|"
			}
			fmt.Fprintf(&buf, "  %s%s%s%s\n", info.ID, link, label, g.info(a.To).ID)
		}
	}
	return buf.Bytes(), nil
}
