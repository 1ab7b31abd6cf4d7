// Package day17 solves Pyroclastic Flow: five rock shapes fall in a fixed
// cycle through a 7-wide chamber, pushed by a repeating jet pattern. Part 1
// simulates 2022 rocks directly; part 2 reaches a trillion rocks by
// detecting when (shape, jet position, surface profile) repeats and skipping
// whole cycles.
package day17

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	chamberWidth = 7
	spawnX       = 2 // columns from the left wall
	spawnGap     = 3 // empty rows between the surface and a new rock
)

type point struct {
	x, y int
}

// shapes lists each rock's cells as offsets from its bottom-left corner,
// with y growing upward. Order matters: rocks fall in this cycle.
var shapes = [][]point{
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},         // horizontal bar
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}, // plus
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, // mirrored L
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},         // vertical bar
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},         // square
}

func parseJets(input string) ([]int, error) {
	pattern := strings.TrimRight(input, "\n")
	if pattern == "" {
		return nil, fmt.Errorf("empty jet pattern")
	}
	jets := make([]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, fmt.Errorf("jet pattern position %d: unexpected %q", i, pattern[i])
		}
	}
	return jets, nil
}

// chamber tracks settled rock. The floor is y=0; filled cells start at y=1.
type chamber struct {
	filled  map[point]struct{}
	top     int
	colTops [chamberWidth]int
}

func newChamber() *chamber {
	return &chamber{filled: map[point]struct{}{}}
}

func (c *chamber) collides(shape []point, x, y int) bool {
	for _, o := range shape {
		px, py := x+o.x, y+o.y
		if px < 0 || px >= chamberWidth || py <= 0 {
			return true
		}
		if _, ok := c.filled[point{x: px, y: py}]; ok {
			return true
		}
	}
	return false
}

func (c *chamber) settle(shape []point, x, y int) {
	for _, o := range shape {
		p := point{x: x + o.x, y: y + o.y}
		c.filled[p] = struct{}{}
		if p.y > c.colTops[p.x] {
			c.colTops[p.x] = p.y
		}
		if p.y > c.top {
			c.top = p.y
		}
	}
}

// surfaceKey fingerprints the reachable surface as per-column depths below
// the current top, which is enough state (with shape and jet indexes) for
// cycle detection.
func (c *chamber) surfaceKey(shapeIdx, jetIdx int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d", shapeIdx, jetIdx)
	for _, t := range c.colTops {
		fmt.Fprintf(&sb, "|%d", c.top-t)
	}
	return sb.String()
}

type cycleMark struct {
	rocks  int
	height int
}

func towerHeight(input string, rockLimit int) (int, error) {
	jets, err := parseJets(input)
	if err != nil {
		return 0, err
	}
	c := newChamber()
	jetIdx := 0
	seen := map[string]cycleMark{}
	skippedHeight := 0

	for dropped := 0; dropped < rockLimit; dropped++ {
		shapeIdx := dropped % len(shapes)

		// Once a full (shape, jet, surface) state recurs the tower grows
		// periodically; fast-forward as many whole cycles as fit.
		if skippedHeight == 0 {
			key := c.surfaceKey(shapeIdx, jetIdx)
			if mark, ok := seen[key]; ok {
				cycleRocks := dropped - mark.rocks
				cycleHeight := c.top - mark.height
				cycles := (rockLimit - dropped) / cycleRocks
				skippedHeight = cycles * cycleHeight
				dropped += cycles * cycleRocks
				if dropped >= rockLimit {
					break
				}
			} else {
				seen[key] = cycleMark{rocks: dropped, height: c.top}
			}
		}

		shape := shapes[shapeIdx]
		x, y := spawnX, c.top+spawnGap+1
		for {
			if dx := jets[jetIdx]; !c.collides(shape, x+dx, y) {
				x += dx
			}
			jetIdx = (jetIdx + 1) % len(jets)
			if c.collides(shape, x, y-1) {
				c.settle(shape, x, y)
				break
			}
			y--
		}
	}
	return c.top + skippedHeight, nil
}

// Part1 drops 2022 rocks.
func Part1(input string) (string, error) {
	h, err := towerHeight(input, 2022)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(h), nil
}

// Part2 drops a trillion rocks.
func Part2(input string) (string, error) {
	h, err := towerHeight(input, 1_000_000_000_000)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(h), nil
}
