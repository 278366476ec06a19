// Package hclgraph reads weighted graphs described in HCL.
//
// A graph file holds node and edge blocks:
//
//	node "A" {
//	  x = 0
//	  y = 0
//	}
//
//	edge "A" "B" {
//	  weight   = 1.5
//	  directed = false
//	}
//
// Node blocks are only needed to give a node coordinates or to declare a
// node with no edges; edges implicitly create the nodes they name.
// Edges are undirected unless directed is true. The weight of an edge
// may be omitted when both of its nodes have coordinates, in which case
// it is the straight-line distance between them.
//
// Weight expressions may refer to caller-supplied variables, the
// functions abs, ceil, floor, max, min, pow and hypot, and
// dist(a, b), the straight-line distance between two nodes.
package hclgraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/rogpeppe/astar/graph"
)

var (
	// ErrNegativeWeight is returned when an edge weight is negative.
	ErrNegativeWeight = errors.New("hclgraph: negative edge weight")

	// ErrDuplicateNode is returned when a node is declared twice.
	ErrDuplicateNode = errors.New("hclgraph: duplicate node")

	// ErrMissingWeight is returned when an edge has no weight and
	// one of its nodes has no coordinates.
	ErrMissingWeight = errors.New("hclgraph: edge weight missing")
)

// Map is a graph read from HCL, together with the coordinates of
// those nodes that were given them.
type Map struct {
	*graph.Simple[string]
	coords map[string]point
}

type point struct {
	x, y float64
}

type hclFile struct {
	Nodes []*hclNode `hcl:"node,block"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	Name     string    `hcl:"name,label"`
	X        *float64  `hcl:"x,optional"`
	Y        *float64  `hcl:"y,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

type hclEdge struct {
	From     string         `hcl:"from,label"`
	To       string         `hcl:"to,label"`
	Weight   hcl.Expression `hcl:"weight,optional"`
	Directed bool           `hcl:"directed,optional"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// Load reads the graph file at path. The vars are made available as
// variables to weight expressions.
func Load(path string, vars map[string]float64) (*Map, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse graph file %s: %w", path, diags)
	}
	return decode(f, path, vars)
}

// Parse is like Load but reads the graph from src. The filename is
// used only in error messages.
func Parse(src []byte, filename string, vars map[string]float64) (*Map, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse graph file %s: %w", filename, diags)
	}
	return decode(f, filename, vars)
}

func decode(f *hcl.File, filename string, vars map[string]float64) (*Map, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode graph file %s: %w", filename, diags)
	}
	m := &Map{
		Simple: &graph.Simple[string]{},
		coords: make(map[string]point),
	}
	for _, n := range parsed.Nodes {
		if m.HasNode(n.Name) {
			return nil, fmt.Errorf("%s: %w %q", n.DefRange, ErrDuplicateNode, n.Name)
		}
		m.AddNode(n.Name)
		switch {
		case n.X != nil && n.Y != nil:
			m.coords[n.Name] = point{*n.X, *n.Y}
		case n.X != nil || n.Y != nil:
			return nil, fmt.Errorf("%s: node %q: x and y must be set together", n.DefRange, n.Name)
		}
	}
	ctx := m.evalContext(vars)
	for _, e := range parsed.Edges {
		w, err := m.edgeWeight(ctx, e)
		if err != nil {
			return nil, err
		}
		if e.Directed {
			m.AddEdge(e.From, e.To, w)
		} else {
			m.AddUndirected(e.From, e.To, w)
		}
	}
	return m, nil
}

func (m *Map) edgeWeight(ctx *hcl.EvalContext, e *hclEdge) (float64, error) {
	val, diags := e.Weight.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("edge %q %q: %w", e.From, e.To, diags)
	}
	if val.IsNull() {
		d, ok := m.dist(e.From, e.To)
		if !ok {
			return 0, fmt.Errorf("%s: %w: edge %q %q has no weight and its nodes lack coordinates", e.DefRange, ErrMissingWeight, e.From, e.To)
		}
		return d, nil
	}
	var w float64
	val, err := convert.Convert(val, cty.Number)
	if err == nil {
		err = gocty.FromCtyValue(val, &w)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: edge %q %q: invalid weight: %v", e.DefRange, e.From, e.To, err)
	}
	if w < 0 || math.IsNaN(w) {
		return 0, fmt.Errorf("%s: %w: edge %q %q has weight %v", e.DefRange, ErrNegativeWeight, e.From, e.To, w)
	}
	return w, nil
}

// Coords returns the coordinates of node n, and whether it has any.
func (m *Map) Coords(n string) (x, y float64, ok bool) {
	p, ok := m.coords[n]
	return p.x, p.y, ok
}

func (m *Map) dist(a, b string) (float64, bool) {
	pa, ok := m.coords[a]
	if !ok {
		return 0, false
	}
	pb, ok := m.coords[b]
	if !ok {
		return 0, false
	}
	return math.Hypot(pa.x-pb.x, pa.y-pb.y), true
}

func (m *Map) evalContext(vars map[string]float64) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		vals[name] = cty.NumberFloatVal(v)
	}
	return &hcl.EvalContext{
		Variables: vals,
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
			"pow":   stdlib.PowFunc,
			"hypot": hypotFunc,
			"dist":  m.distFunc(),
		},
	}
}

var hypotFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x", Type: cty.Number},
		{Name: "y", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		x, _ := args[0].AsBigFloat().Float64()
		y, _ := args[1].AsBigFloat().Float64()
		return cty.NumberFloatVal(math.Hypot(x, y)), nil
	},
})

func (m *Map) distFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, b := args[0].AsString(), args[1].AsString()
			d, ok := m.dist(a, b)
			if !ok {
				return cty.UnknownVal(cty.Number), fmt.Errorf("nodes %q and %q must both have coordinates", a, b)
			}
			return cty.NumberFloatVal(d), nil
		},
	})
}
