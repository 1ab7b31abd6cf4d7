// Package day09 solves Rope Bridge: the head of a rope follows a move list
// and each trailing knot chases the one before it. Count positions the last
// knot visits.
package day09

import (
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	x, y int
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// moves expands "R 4"-style lines into unit steps.
func moves(input string) ([]point, error) {
	var steps []point
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		dirText, countText, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("malformed move %q", line)
		}
		var dir point
		switch dirText {
		case "L":
			dir = point{x: -1}
		case "R":
			dir = point{x: 1}
		case "U":
			dir = point{y: 1}
		case "D":
			dir = point{y: -1}
		default:
			return nil, fmt.Errorf("unknown direction %q", dirText)
		}
		count, err := strconv.Atoi(countText)
		if err != nil {
			return nil, fmt.Errorf("bad step count in %q: %w", line, err)
		}
		for i := 0; i < count; i++ {
			steps = append(steps, dir)
		}
	}
	return steps, nil
}

// tailVisits simulates a rope of knotCount knots and returns how many
// distinct positions the last knot touches.
func tailVisits(input string, knotCount int) (int, error) {
	steps, err := moves(input)
	if err != nil {
		return 0, err
	}
	rope := make([]point, knotCount)
	visited := map[point]struct{}{rope[knotCount-1]: {}}
	for _, step := range steps {
		rope[0].x += step.x
		rope[0].y += step.y
		for i := 1; i < knotCount; i++ {
			dx := rope[i-1].x - rope[i].x
			dy := rope[i-1].y - rope[i].y
			// adjacent (including diagonally) knots stay put
			if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
				continue
			}
			rope[i].x += sign(dx)
			rope[i].y += sign(dy)
		}
		visited[rope[knotCount-1]] = struct{}{}
	}
	return len(visited), nil
}

// Part1 simulates a two-knot rope.
func Part1(input string) (string, error) {
	n, err := tailVisits(input, 2)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Part2 simulates a ten-knot rope.
func Part2(input string) (string, error) {
	n, err := tailVisits(input, 10)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
