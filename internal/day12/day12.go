// Package day12 solves Hill Climbing Algorithm: a heightmap where each step
// may climb at most one level. Part 1 finds the shortest path S->E; part 2
// finds the shortest path to E from any lowest-elevation square, searched
// backwards over the reversed graph.
package day12

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

type heightmap struct {
	heights    []string
	width      int
	start, end int64
}

func (h heightmap) id(x, y int) int64 {
	return int64(y*h.width + x)
}

func parseMap(input string) (heightmap, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	h := heightmap{width: len(lines[0]), start: -1, end: -1}
	for y, line := range lines {
		if len(line) != h.width {
			return heightmap{}, fmt.Errorf("row %d has width %d, want %d", y, len(line), h.width)
		}
		if x := strings.IndexByte(line, 'S'); x >= 0 {
			h.start = h.id(x, y)
			line = strings.Replace(line, "S", "a", 1)
		}
		if x := strings.IndexByte(line, 'E'); x >= 0 {
			h.end = h.id(x, y)
			line = strings.Replace(line, "E", "z", 1)
		}
		h.heights = append(h.heights, line)
	}
	if h.start < 0 || h.end < 0 {
		return heightmap{}, fmt.Errorf("heightmap is missing its S or E marker")
	}
	return h, nil
}

// graph builds the step graph over the heightmap. With reversed=true the
// edges point from a square to the squares that could have stepped onto it,
// which lets a single search from E cover every possible start.
func (h heightmap) graph(reversed bool) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for y, row := range h.heights {
		for x := 0; x < h.width; x++ {
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= h.width || ny < 0 || ny >= len(h.heights) {
					continue
				}
				if h.heights[ny][nx] > row[x]+1 {
					continue
				}
				from, to := h.id(x, y), h.id(nx, ny)
				if reversed {
					from, to = to, from
				}
				g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			}
		}
	}
	return g
}

// Part1 runs Dijkstra from S; every step costs 1.
func Part1(input string) (string, error) {
	h, err := parseMap(input)
	if err != nil {
		return "", err
	}
	g := h.graph(false)
	if g.Node(h.start) == nil {
		return "", fmt.Errorf("start square has no legal moves")
	}
	shortest := path.DijkstraFrom(g.Node(h.start), g)
	w := shortest.WeightTo(h.end)
	if math.IsInf(w, 1) {
		return "", fmt.Errorf("no path from S to E")
	}
	return strconv.Itoa(int(w)), nil
}

// Part2 runs one Dijkstra from E over the reversed graph and takes the
// nearest 'a' square.
func Part2(input string) (string, error) {
	h, err := parseMap(input)
	if err != nil {
		return "", err
	}
	g := h.graph(true)
	if g.Node(h.end) == nil {
		return "", fmt.Errorf("end square is unreachable from everywhere")
	}
	shortest := path.DijkstraFrom(g.Node(h.end), g)
	best := math.Inf(1)
	for y, row := range h.heights {
		for x := 0; x < h.width; x++ {
			if row[x] != 'a' {
				continue
			}
			if w := shortest.WeightTo(h.id(x, y)); w < best {
				best = w
			}
		}
	}
	if math.IsInf(best, 1) {
		return "", fmt.Errorf("no lowest square can reach E")
	}
	return strconv.Itoa(int(best)), nil
}
