// Command astar finds the lowest-cost path between two nodes of a graph
// described in an HCL file.
//
// Usage:
//
//	astar [flags] GRAPH_FILE SOURCE TARGET
//
// See package github.com/rogpeppe/astar/graph/hclgraph for the file format.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rogpeppe/astar/graph/path"
)

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "astar:", err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// run executes the command with the given arguments, writing results
// to stdout and logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := newRootCmd(stdout, log)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if errors.Is(err, path.ErrUnreachable) {
		return &exitError{code: 2, err: err}
	}
	return err
}
