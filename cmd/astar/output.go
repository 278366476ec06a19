package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/astar/graph/hclgraph"
	"github.com/rogpeppe/astar/mermaid"
)

// result is the outcome of a search as printed by the command.
type result struct {
	Source string            `json:"source" yaml:"source"`
	Target string            `json:"target" yaml:"target"`
	Route  []string          `json:"route,omitempty" yaml:"route,omitempty"`
	Next   map[string]string `json:"next,omitempty" yaml:"next,omitempty"`
	Cost   float64           `json:"cost" yaml:"cost"`
	Stats  *searchStats      `json:"stats,omitempty" yaml:"stats,omitempty"`

	// route always holds the node sequence, whichever form is printed.
	route []string
}

type searchStats struct {
	Expanded   int `json:"expanded" yaml:"expanded"`
	Discovered int `json:"discovered" yaml:"discovered"`
}

type formatter func(w io.Writer, m *hclgraph.Map, res result) error

var formatters = map[string]formatter{
	"text":    formatText,
	"json":    formatJSON,
	"yaml":    formatYAML,
	"mermaid": formatMermaid,
}

func formatText(w io.Writer, _ *hclgraph.Map, res result) error {
	var buf strings.Builder
	if res.Next != nil {
		keys := make([]string, 0, len(res.Next))
		for k := range res.Next {
			keys = append(keys, k)
		}
		// Print hops in path order rather than map order.
		slices.SortFunc(keys, func(a, b string) int {
			return slices.Index(res.route, a) - slices.Index(res.route, b)
		})
		for _, k := range keys {
			fmt.Fprintf(&buf, "%s -> %s\n", k, res.Next[k])
		}
	} else {
		fmt.Fprintf(&buf, "%s\n", strings.Join(res.Route, " -> "))
	}
	fmt.Fprintf(&buf, "cost %s\n", strconv.FormatFloat(res.Cost, 'g', -1, 64))
	if res.Stats != nil {
		fmt.Fprintf(&buf, "expanded %d\ndiscovered %d\n", res.Stats.Expanded, res.Stats.Discovered)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func formatJSON(w io.Writer, _ *hclgraph.Map, res result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func formatYAML(w io.Writer, _ *hclgraph.Map, res result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

func formatMermaid(w io.Writer, m *hclgraph.Map, res result) error {
	data, err := mermaid.NewGraph[string](m, mermaid.Options[string]{
		Route: res.route,
	}).MarshalMermaid()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
