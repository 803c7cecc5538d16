package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rigidkit/pebblegame/graph"
)

// loadGraph reads an edge list from edgeFile, or stdin if edgeFile is
// empty. Each non-blank, non-comment line holds exactly two
// whitespace-separated vertex identities.
func loadGraph() (*graph.Graph, error) {
	r := io.Reader(os.Stdin)
	if edgeFile != "" {
		f, err := os.Open(edgeFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	g := graph.NewGraph()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("pebblegame: line %d: expected exactly two vertices, got %q", lineNo, line)
		}
		g.AddVertex(graph.Vertex(fields[0]))
		g.AddVertex(graph.Vertex(fields[1]))
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("pebblegame: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
