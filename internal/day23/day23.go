// Package day23 solves Unstable Diffusion: elves spread out over an infinite
// grid. Each round every elf with a neighbor proposes a move in the first
// clear direction (the direction order rotates per round); proposals chosen
// by more than one elf are cancelled.
package day23

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type point struct {
	x, y int
}

// directions lists each compass choice as its three cells to check; the
// middle one is the destination. Order N, S, W, E per the puzzle.
var directions = [4][3]point{
	{{-1, -1}, {0, -1}, {1, -1}},
	{{-1, 1}, {0, 1}, {1, 1}},
	{{-1, -1}, {-1, 0}, {-1, 1}},
	{{1, -1}, {1, 0}, {1, 1}},
}

func parseField(input string) (map[point]struct{}, error) {
	field := map[point]struct{}{}
	for y, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				field[point{x: x, y: y}] = struct{}{}
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q in grid", y, line[x])
			}
		}
	}
	return field, nil
}

func hasNeighbor(field map[point]struct{}, elf point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if _, ok := field[point{x: elf.x + dx, y: elf.y + dy}]; ok {
				return true
			}
		}
	}
	return false
}

// round moves the elves once, with the direction rotation starting at
// startDir, and reports whether anyone moved.
func round(field map[point]struct{}, startDir int) (map[point]struct{}, bool) {
	proposals := map[point]point{} // destination -> proposing elf
	blocked := map[point]struct{}{}
	for elf := range field {
		if !hasNeighbor(field, elf) {
			continue
		}
		for i := 0; i < len(directions); i++ {
			checks := directions[(startDir+i)%len(directions)]
			open := true
			for _, d := range checks {
				if _, ok := field[point{x: elf.x + d.x, y: elf.y + d.y}]; ok {
					open = false
					break
				}
			}
			if !open {
				continue
			}
			dest := point{x: elf.x + checks[1].x, y: elf.y + checks[1].y}
			if _, dup := proposals[dest]; dup {
				blocked[dest] = struct{}{}
			} else {
				proposals[dest] = elf
			}
			break
		}
	}

	moved := false
	next := make(map[point]struct{}, len(field))
	accepted := map[point]point{} // elf -> destination
	for dest, elf := range proposals {
		if _, bad := blocked[dest]; !bad {
			accepted[elf] = dest
		}
	}
	for elf := range field {
		if dest, ok := accepted[elf]; ok {
			next[dest] = struct{}{}
			moved = true
		} else {
			next[elf] = struct{}{}
		}
	}
	return next, moved
}

// Part1 runs ten rounds and counts empty tiles in the elves' bounding box.
func Part1(input string) (string, error) {
	field, err := parseField(input)
	if err != nil {
		return "", err
	}
	if len(field) == 0 {
		return "", fmt.Errorf("no elves in the grid")
	}
	for i := 0; i < 10; i++ {
		field, _ = round(field, i%len(directions))
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for elf := range field {
		minX, maxX = min(minX, elf.x), max(maxX, elf.x)
		minY, maxY = min(minY, elf.y), max(maxY, elf.y)
	}
	area := (maxX - minX + 1) * (maxY - minY + 1)
	return strconv.Itoa(area - len(field)), nil
}

// Part2 counts rounds until no elf moves.
func Part2(input string) (string, error) {
	field, err := parseField(input)
	if err != nil {
		return "", err
	}
	if len(field) == 0 {
		return "", fmt.Errorf("no elves in the grid")
	}
	for i := 0; ; i++ {
		next, moved := round(field, i%len(directions))
		if !moved {
			logrus.Debugf("diffusion settled after %d rounds", i+1)
			return strconv.Itoa(i + 1), nil
		}
		field = next
	}
}
