// Package day18 solves Boiling Boulders: unit cubes of lava in 3D. Part 1
// counts all faces not shared with another cube; part 2 counts only faces
// reachable from outside, found by flood-filling the bounding box.
package day18

import (
	"fmt"
	"strconv"
	"strings"
)

type cube struct {
	x, y, z int
}

func (c cube) neighbors() [6]cube {
	return [6]cube{
		{c.x - 1, c.y, c.z},
		{c.x + 1, c.y, c.z},
		{c.x, c.y - 1, c.z},
		{c.x, c.y + 1, c.z},
		{c.x, c.y, c.z - 1},
		{c.x, c.y, c.z + 1},
	}
}

func parseCubes(input string) (map[cube]struct{}, error) {
	cubes := map[cube]struct{}{}
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("cube %q does not have three coordinates", line)
		}
		var c cube
		for i, dst := range []*int{&c.x, &c.y, &c.z} {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return nil, fmt.Errorf("cube %q: %w", line, err)
			}
			*dst = n
		}
		cubes[c] = struct{}{}
	}
	return cubes, nil
}

// Part1 counts every face without a directly adjacent cube.
func Part1(input string) (string, error) {
	cubes, err := parseCubes(input)
	if err != nil {
		return "", err
	}
	area := 0
	for c := range cubes {
		for _, n := range c.neighbors() {
			if _, ok := cubes[n]; !ok {
				area++
			}
		}
	}
	return strconv.Itoa(area), nil
}

// Part2 flood-fills the air around the droplet inside a one-cube margin of
// its bounding box, then counts lava faces touching that outside air.
// Interior pockets are never reached, so their faces don't count.
func Part2(input string) (string, error) {
	cubes, err := parseCubes(input)
	if err != nil {
		return "", err
	}
	if len(cubes) == 0 {
		return "0", nil
	}

	var lo, hi cube
	first := true
	for c := range cubes {
		if first {
			lo, hi = c, c
			first = false
			continue
		}
		lo = cube{min(lo.x, c.x), min(lo.y, c.y), min(lo.z, c.z)}
		hi = cube{max(hi.x, c.x), max(hi.y, c.y), max(hi.z, c.z)}
	}
	lo = cube{lo.x - 1, lo.y - 1, lo.z - 1}
	hi = cube{hi.x + 1, hi.y + 1, hi.z + 1}

	inBounds := func(c cube) bool {
		return c.x >= lo.x && c.x <= hi.x &&
			c.y >= lo.y && c.y <= hi.y &&
			c.z >= lo.z && c.z <= hi.z
	}

	outside := map[cube]struct{}{lo: {}}
	queue := []cube{lo}
	area := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.neighbors() {
			if !inBounds(n) {
				continue
			}
			if _, lava := cubes[n]; lava {
				area++
				continue
			}
			if _, seen := outside[n]; seen {
				continue
			}
			outside[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return strconv.Itoa(area), nil
}
