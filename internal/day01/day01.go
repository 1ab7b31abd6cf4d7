// Package day01 solves Calorie Counting: elves carry newline-separated item
// calorie counts, blank lines separate elves.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// loads parses the input into one total calorie count per elf.
func loads(input string) ([]int, error) {
	blocks := strings.Split(strings.TrimRight(input, "\n"), "\n\n")
	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		sum := 0
		for _, line := range strings.Split(block, "\n") {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("bad calorie count %q: %w", line, err)
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

// Part1 returns the largest total carried by a single elf.
func Part1(input string) (string, error) {
	totals, err := loads(input)
	if err != nil {
		return "", err
	}
	max := 0
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	return strconv.Itoa(max), nil
}

// Part2 returns the combined total of the top three elves.
func Part2(input string) (string, error) {
	totals, err := loads(input)
	if err != nil {
		return "", err
	}
	if len(totals) < 3 {
		return "", fmt.Errorf("need at least 3 elves, got %d", len(totals))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))
	return strconv.Itoa(totals[0] + totals[1] + totals[2]), nil
}
