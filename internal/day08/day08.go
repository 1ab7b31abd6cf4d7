// Package day08 solves Treetop Tree House: a grid of tree heights. Part 1
// counts trees visible from outside the grid, part 2 maximizes the scenic
// score (product of viewing distances in the four directions).
package day08

import (
	"fmt"
	"strconv"
	"strings"
)

func parseGrid(input string) ([][]int, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	grid := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d: %q is not a tree height", y, c)
			}
			row[x] = int(c - '0')
		}
		if y > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), len(grid[0]))
		}
		grid[y] = row
	}
	return grid, nil
}

// Part1 sweeps the grid from all four edges, marking trees strictly taller
// than everything before them on the sweep line.
func Part1(input string) (string, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	height := len(grid)
	width := len(grid[0])
	visible := make([][]bool, height)
	for y := range visible {
		visible[y] = make([]bool, width)
	}

	mark := func(y, x int, tallest *int) {
		if y == 0 || y == height-1 || x == 0 || x == width-1 || grid[y][x] > *tallest {
			visible[y][x] = true
		}
		if grid[y][x] > *tallest {
			*tallest = grid[y][x]
		}
	}

	for y := 0; y < height; y++ {
		tallest := -1
		for x := 0; x < width; x++ {
			mark(y, x, &tallest)
		}
		tallest = -1
		for x := width - 1; x >= 0; x-- {
			mark(y, x, &tallest)
		}
	}
	for x := 0; x < width; x++ {
		tallest := -1
		for y := 0; y < height; y++ {
			mark(y, x, &tallest)
		}
		tallest = -1
		for y := height - 1; y >= 0; y-- {
			mark(y, x, &tallest)
		}
	}

	count := 0
	for _, row := range visible {
		for _, v := range row {
			if v {
				count++
			}
		}
	}
	return strconv.Itoa(count), nil
}

// Part2 returns the best scenic score. A view ends at the first tree of
// equal or greater height, which still counts toward the distance.
func Part2(input string) (string, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	height := len(grid)
	width := len(grid[0])

	best := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			house := grid[y][x]
			score := 1
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				dist := 0
				for cy, cx := y+d[0], x+d[1]; cy >= 0 && cy < height && cx >= 0 && cx < width; cy, cx = cy+d[0], cx+d[1] {
					dist++
					if grid[cy][cx] >= house {
						break
					}
				}
				score *= dist
			}
			if score > best {
				best = score
			}
		}
	}
	return strconv.Itoa(best), nil
}
