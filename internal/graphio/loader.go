// Package graphio implements the Graph Loader: reading an edge-list text
// file or a Matrix-Market sparse-matrix file into an internal/graph.Graph.
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/netsensor/idcode/internal/graph"
)

// Load dispatches on the file extension: ".mtx" is read as Matrix-Market
// coordinate format, anything else as an edge list.
func Load(path string) (*graph.Graph, error) {
	if strings.HasSuffix(strings.ToLower(path), ".mtx") {
		return LoadMatrixMarket(path)
	}
	return LoadEdgeList(path)
}

// LoadEdgeList reads a two-token-per-line edge list. Lines beginning with
// '#' or '%' are comments. Tokens are kept verbatim as strings; canonical
// relabelling later orders them as strings and never parses them as
// integers.
func LoadEdgeList(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Line: 0, Msg: err.Error()}
	}
	defer f.Close()

	g := graph.New()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1<<20), 1<<24)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: "expected two tokens per edge"}
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: err.Error()}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Path: path, Line: lineNo, Msg: err.Error()}
	}
	return g, nil
}

// LoadMatrixMarket reads a Matrix-Market coordinate file: a banner and
// comment lines beginning with '%', a "rows cols nnz" size line, and nnz
// data lines of "row col [value]". Each entry becomes one undirected edge;
// an entry on the diagonal (row == col) is recorded as a self-loop, exactly
// as for edge-list input.
func LoadMatrixMarket(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Line: 0, Msg: err.Error()}
	}
	defer f.Close()

	g := graph.New()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1<<20), 1<<24)

	lineNo := 0
	sizeSeen := false
	var rows, cols, nnz int
	var entries int

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if !sizeSeen {
			if len(fields) < 2 {
				return nil, &FormatError{Path: path, Line: lineNo, Msg: "malformed Matrix-Market size line"}
			}
			rows, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, &FormatError{Path: path, Line: lineNo, Msg: "non-integer row count"}
			}
			cols, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, &FormatError{Path: path, Line: lineNo, Msg: "non-integer column count"}
			}
			if len(fields) >= 3 {
				nnz, err = strconv.Atoi(fields[2])
				if err != nil {
					return nil, &FormatError{Path: path, Line: lineNo, Msg: "non-integer nnz count"}
				}
			}
			sizeSeen = true
			continue
		}
		if len(fields) < 2 {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: "expected row/col coordinate pair"}
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: "non-integer row coordinate"}
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: "non-integer column coordinate"}
		}
		if r < 1 || r > rows || c < 1 || c > cols {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: "coordinate out of declared matrix bounds"}
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, &FormatError{Path: path, Line: lineNo, Msg: err.Error()}
		}
		entries++
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Path: path, Line: lineNo, Msg: err.Error()}
	}
	if !sizeSeen {
		return nil, &FormatError{Path: path, Line: lineNo, Msg: "missing Matrix-Market size line"}
	}
	if nnz != 0 && entries != nnz {
		return nil, &FormatError{
			Path: path, Line: lineNo,
			Msg: fmt.Sprintf("declared nnz=%d but read %d entries", nnz, entries),
		}
	}
	return g, nil
}
