package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/astar/graph/path"
)

const diamondHCL = `
node "A" {
  x = 0
  y = 0
}
node "B" {
  x = 1
  y = 0
}
node "C" {
  x = 0
  y = 4
}
node "D" {
  x = 1
  y = 1
}
node "E" {}

edge "A" "B" {
  weight = unit
}
edge "B" "D" {
  weight = unit
}
edge "A" "C" {
  weight = 4 * unit
}
edge "C" "D" {
  weight = unit
}
`

// writeGraph writes src to a file in a fresh temporary directory and
// returns its path.
func writeGraph(t *testing.T, src string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "graph.hcl")
	require.NoError(t, os.WriteFile(file, []byte(src), 0o600))
	return file
}

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	err = run(args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), err
}

func TestRun_Text(t *testing.T) {
	file := writeGraph(t, diamondHCL)

	out, _, err := runCmd(t, "--var", "unit=1", file, "A", "D")
	require.NoError(t, err)
	require.Equal(t, "A -> B -> D\ncost 2\n", out)

	out, _, err = runCmd(t, "--var", "unit=1", "--heuristic", "euclidean", "--stats", file, "A", "D")
	require.NoError(t, err)
	require.Equal(t, "A -> B -> D\ncost 2\nexpanded 3\ndiscovered 4\n", out)
}

func TestRun_Hops(t *testing.T) {
	file := writeGraph(t, diamondHCL)

	out, _, err := runCmd(t, "--var", "unit=1", "--hops", file, "A", "D")
	require.NoError(t, err)
	require.Equal(t, "A -> B\nB -> D\ncost 2\n", out)

	out, _, err = runCmd(t, "--var", "unit=1", "--hops", file, "C", "C")
	require.NoError(t, err)
	require.Equal(t, "C -> C\ncost 0\n", out)
}

func TestRun_JSON(t *testing.T) {
	file := writeGraph(t, diamondHCL)

	out, _, err := runCmd(t, "--var", "unit=2", "--format", "json", "--stats", file, "A", "D")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, map[string]any{
		"source": "A",
		"target": "D",
		"route":  []any{"A", "B", "D"},
		"cost":   4.0,
		"stats": map[string]any{
			"expanded":   3.0,
			"discovered": 4.0,
		},
	}, got)
}

func TestRun_YAMLFromEnvironment(t *testing.T) {
	file := writeGraph(t, diamondHCL)
	t.Setenv("ASTAR_FORMAT", "yaml")

	out, _, err := runCmd(t, "--var", "unit=1", "--hops", file, "A", "D")
	require.NoError(t, err)

	var got result
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, "A", got.Source)
	require.Equal(t, map[string]string{"A": "B", "B": "D"}, got.Next)
	require.Equal(t, 2.0, got.Cost)
	require.Nil(t, got.Route)
}

func TestRun_Mermaid(t *testing.T) {
	file := writeGraph(t, `
edge "A" "B" {
  weight = 1
}
edge "B" "C" {
  weight   = 2
  directed = true
}
`)

	out, _, err := runCmd(t, "--format", "mermaid", file, "A", "C")
	require.NoError(t, err)
	require.Equal(t, "graph TD\n"+
		"  style A fill:#9f9,stroke:#333\n  A==>|1|B\n"+
		"  style B fill:#9f9,stroke:#333\n  B-->|1|A\n  B==>|2|C\n"+
		"  style C fill:#9f9,stroke:#333\n", out)
}

func TestRun_Unreachable(t *testing.T) {
	file := writeGraph(t, diamondHCL)

	out, stderr, err := runCmd(t, "--var", "unit=1", "--log-level", "info", file, "A", "E")
	require.Error(t, err)
	require.True(t, errors.Is(err, path.ErrUnreachable))
	var exitErr *exitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.code)
	require.Empty(t, out)
	require.NotContains(t, stderr, "path found")
}

func TestRun_LogsUnknownNode(t *testing.T) {
	file := writeGraph(t, diamondHCL)

	_, stderr, err := runCmd(t, "--var", "unit=1", file, "A", "Z")
	require.ErrorIs(t, err, path.ErrUnreachable)
	require.Contains(t, stderr, "node does not appear in graph")
	require.Contains(t, stderr, "node=Z")
}

func TestRun_DebugLogging(t *testing.T) {
	file := writeGraph(t, diamondHCL)
	t.Setenv("ASTAR_LOG_LEVEL", "debug")

	_, stderr, err := runCmd(t, "--var", "unit=1", file, "A", "D")
	require.NoError(t, err)
	require.Contains(t, stderr, "loaded graph")
	require.Contains(t, stderr, "nodes=5")
	require.Contains(t, stderr, "path found")
}

var badArgsTests = []struct {
	testName string
	args     []string
	err      string
}{{
	testName: "too-few-args",
	args:     []string{"A", "B"},
	err:      "accepts 3 arg(s), received 2",
}, {
	testName: "bad-format",
	args:     []string{"--format", "xml", "FILE", "A", "B"},
	err:      `invalid format "xml": must be one of text, json, yaml or mermaid`,
}, {
	testName: "bad-heuristic",
	args:     []string{"--var", "unit=1", "--heuristic", "chebyshev", "FILE", "A", "B"},
	err:      `invalid heuristic "chebyshev": must be one of zero, euclidean or manhattan`,
}, {
	testName: "bad-var",
	args:     []string{"--var", "unit", "FILE", "A", "B"},
	err:      `invalid variable "unit": want name=value`,
}, {
	testName: "bad-var-value",
	args:     []string{"--var", "unit=x", "FILE", "A", "B"},
	err:      `invalid variable "unit=x": strconv.ParseFloat: parsing "x": invalid syntax`,
}, {
	testName: "bad-log-level",
	args:     []string{"--log-level", "loud", "FILE", "A", "B"},
	err:      `invalid log level: not a valid logrus Level: "loud"`,
}, {
	testName: "missing-variable",
	args:     []string{"FILE", "A", "B"},
	err:      `edge "A" "B": `,
}}

func TestRun_BadArgs(t *testing.T) {
	file := writeGraph(t, diamondHCL)
	for _, test := range badArgsTests {
		t.Run(test.testName, func(t *testing.T) {
			args := make([]string, len(test.args))
			for i, a := range test.args {
				if a == "FILE" {
					a = file
				}
				args[i] = a
			}
			_, _, err := runCmd(t, args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), test.err)
		})
	}
}

func TestRun_Help(t *testing.T) {
	out, _, err := runCmd(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "ASTAR_LOG_LEVEL")
}
