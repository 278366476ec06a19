package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rogpeppe/astar/graph/hclgraph"
	"github.com/rogpeppe/astar/graph/path"
)

// config holds the settings for a single invocation.
type config struct {
	heuristic string
	scale     float64
	vars      []string
	format    string
	hops      bool
	stats     bool
	logLevel  string
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd(out io.Writer, log *logrus.Logger) *cobra.Command {
	cfg := config{}
	cmd := &cobra.Command{
		Use:   "astar [flags] GRAPH_FILE SOURCE TARGET",
		Short: "Find the lowest-cost path between two nodes of a graph",
		Long: `astar reads a weighted graph from an HCL file and prints the
lowest-cost path between SOURCE and TARGET found by A* search.

The log level and output format default to the values of the
ASTAR_LOG_LEVEL and ASTAR_FORMAT environment variables.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(out, log, cfg, args[0], args[1], args[2])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.heuristic, "heuristic", "zero", "Heuristic to use: zero, euclidean or manhattan.")
	flags.Float64Var(&cfg.scale, "scale", 1, "Factor applied to coordinate heuristics.")
	flags.StringArrayVar(&cfg.vars, "var", nil, "Set a variable for weight expressions, as name=value. May be repeated.")
	flags.StringVar(&cfg.format, "format", envOrDefault("ASTAR_FORMAT", "text"), "Output format: text, json, yaml or mermaid.")
	flags.BoolVar(&cfg.hops, "hops", false, "Print the path as a next-hop map.")
	flags.BoolVar(&cfg.stats, "stats", false, "Include search counters in the output.")
	flags.StringVar(&cfg.logLevel, "log-level", envOrDefault("ASTAR_LOG_LEVEL", "warning"), "Log level: debug, info, warning or error.")
	return cmd
}

func runSearch(out io.Writer, log *logrus.Logger, cfg config, file, source, target string) error {
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	f, ok := formatters[cfg.format]
	if !ok {
		return fmt.Errorf("invalid format %q: must be one of text, json, yaml or mermaid", cfg.format)
	}
	vars, err := parseVars(cfg.vars)
	if err != nil {
		return err
	}

	m, err := hclgraph.Load(file, vars)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":  file,
		"nodes": len(m.AllNodes()),
	}).Debug("loaded graph")

	var h path.Heuristic[string]
	switch cfg.heuristic {
	case "zero":
		h = path.NullHeuristic[string]
	case "euclidean":
		h = m.Euclidean(cfg.scale)
	case "manhattan":
		h = m.Manhattan(cfg.scale)
	default:
		return fmt.Errorf("invalid heuristic %q: must be one of zero, euclidean or manhattan", cfg.heuristic)
	}
	for _, n := range []string{source, target} {
		if !m.HasNode(n) {
			log.WithField("node", n).Warn("node does not appear in graph")
		}
	}

	var stats path.Stats
	res := result{Source: source, Target: target}
	if cfg.hops {
		hops, err := path.SearchWith(m, source, target, h, path.NextHops[string], path.WithStats(&stats))
		if err != nil {
			return err
		}
		res.Next, res.Cost = hops.Next, hops.Cost
		// The mermaid rendering needs the node sequence.
		route, err := hops.Route(source)
		if err != nil {
			return err
		}
		res.route = route.Nodes
	} else {
		route, err := path.FindRoute(m, source, target, h, path.WithStats(&stats))
		if err != nil {
			return err
		}
		res.Route, res.Cost = route.Nodes, route.Cost
		res.route = route.Nodes
	}
	log.WithFields(logrus.Fields{
		"heuristic":  cfg.heuristic,
		"cost":       res.Cost,
		"expanded":   stats.Expanded,
		"discovered": stats.Discovered,
	}).Info("path found")
	if cfg.stats {
		res.Stats = &searchStats{Expanded: stats.Expanded, Discovered: stats.Discovered}
	}
	return f(out, m, res)
}

// parseVars parses name=value assignments.
func parseVars(assignments []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q: want name=value", a)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid variable %q: %w", a, err)
		}
		vars[name] = v
	}
	return vars, nil
}
