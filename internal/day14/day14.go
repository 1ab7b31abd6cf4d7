// Package day14 solves Regolith Reservoir: rock paths fill a grid, then sand
// drops from (500,0) moving down, down-left, down-right until blocked.
package day14

import (
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	x, y int
}

var sandSource = point{x: 500, y: 0}

// parseRocks expands each "x,y -> x,y -> ..." path into the set of occupied
// cells and also reports the lowest rock's y.
func parseRocks(input string) (map[point]struct{}, int, error) {
	rocks := map[point]struct{}{}
	lowest := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		corners := strings.Split(line, " -> ")
		if len(corners) < 2 {
			return nil, 0, fmt.Errorf("rock path %q has fewer than two points", line)
		}
		pts := make([]point, len(corners))
		for i, c := range corners {
			xText, yText, ok := strings.Cut(c, ",")
			if !ok {
				return nil, 0, fmt.Errorf("malformed point %q in %q", c, line)
			}
			x, err := strconv.Atoi(xText)
			if err != nil {
				return nil, 0, fmt.Errorf("point %q: %w", c, err)
			}
			y, err := strconv.Atoi(yText)
			if err != nil {
				return nil, 0, fmt.Errorf("point %q: %w", c, err)
			}
			pts[i] = point{x: x, y: y}
			if y > lowest {
				lowest = y
			}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			if a.x != b.x && a.y != b.y {
				return nil, 0, fmt.Errorf("rock segment %v -> %v is not axis-aligned", a, b)
			}
			for x := min(a.x, b.x); x <= max(a.x, b.x); x++ {
				for y := min(a.y, b.y); y <= max(a.y, b.y); y++ {
					rocks[point{x: x, y: y}] = struct{}{}
				}
			}
		}
	}
	return rocks, lowest, nil
}

// dropSand settles one grain and reports where it came to rest. ok is false
// when the grain falls past the abyss line (floorY < 0) or the source is
// already plugged.
func dropSand(filled map[point]struct{}, lowest, floorY int) (point, bool) {
	if _, plugged := filled[sandSource]; plugged {
		return point{}, false
	}
	grain := sandSource
	for {
		if floorY < 0 && grain.y > lowest {
			return point{}, false
		}
		moved := false
		for _, next := range []point{
			{x: grain.x, y: grain.y + 1},
			{x: grain.x - 1, y: grain.y + 1},
			{x: grain.x + 1, y: grain.y + 1},
		} {
			if next.y == floorY {
				break
			}
			if _, blocked := filled[next]; !blocked {
				grain = next
				moved = true
				break
			}
		}
		if !moved {
			return grain, true
		}
	}
}

// Part1 counts grains that settle before one falls past the lowest rock.
func Part1(input string) (string, error) {
	filled, lowest, err := parseRocks(input)
	if err != nil {
		return "", err
	}
	count := 0
	for {
		grain, ok := dropSand(filled, lowest, -1)
		if !ok {
			return strconv.Itoa(count), nil
		}
		filled[grain] = struct{}{}
		count++
	}
}

// Part2 adds an infinite floor two below the lowest rock and counts grains
// until the source is plugged.
func Part2(input string) (string, error) {
	filled, lowest, err := parseRocks(input)
	if err != nil {
		return "", err
	}
	count := 0
	for {
		grain, ok := dropSand(filled, lowest, lowest+2)
		if !ok {
			return strconv.Itoa(count), nil
		}
		filled[grain] = struct{}{}
		count++
	}
}
