// Package solve maps puzzle days to their part solvers so the CLI can
// dispatch by number. Day packages stay independent of each other; this is
// the only place that knows about all of them.
package solve

import (
	"fmt"
	"sort"

	"github.com/rschneider/advent2022/internal/day01"
	"github.com/rschneider/advent2022/internal/day02"
	"github.com/rschneider/advent2022/internal/day03"
	"github.com/rschneider/advent2022/internal/day04"
	"github.com/rschneider/advent2022/internal/day05"
	"github.com/rschneider/advent2022/internal/day06"
	"github.com/rschneider/advent2022/internal/day07"
	"github.com/rschneider/advent2022/internal/day08"
	"github.com/rschneider/advent2022/internal/day09"
	"github.com/rschneider/advent2022/internal/day10"
	"github.com/rschneider/advent2022/internal/day12"
	"github.com/rschneider/advent2022/internal/day13"
	"github.com/rschneider/advent2022/internal/day14"
	"github.com/rschneider/advent2022/internal/day15"
	"github.com/rschneider/advent2022/internal/day17"
	"github.com/rschneider/advent2022/internal/day18"
	"github.com/rschneider/advent2022/internal/day20"
	"github.com/rschneider/advent2022/internal/day21"
	"github.com/rschneider/advent2022/internal/day23"
)

// PartFunc computes the answer for one part of a day's puzzle from the raw
// input text. Answers are strings because not every day produces a number
// (day 5 answers with crate letters, day 10 part 2 renders a CRT image).
type PartFunc func(input string) (string, error)

// Day bundles the two part solvers for a single puzzle day.
type Day struct {
	Part1 PartFunc
	Part2 PartFunc
}

// Day 15 searches a fixed row (part 1) and a bounded coordinate space
// (part 2). The examples use smaller values; these are the puzzle's.
const (
	day15Row   = 2000000
	day15Limit = 4000000
)

var registry = map[int]Day{
	1:  {Part1: day01.Part1, Part2: day01.Part2},
	2:  {Part1: day02.Part1, Part2: day02.Part2},
	3:  {Part1: day03.Part1, Part2: day03.Part2},
	4:  {Part1: day04.Part1, Part2: day04.Part2},
	5:  {Part1: day05.Part1, Part2: day05.Part2},
	6:  {Part1: day06.Part1, Part2: day06.Part2},
	7:  {Part1: day07.Part1, Part2: day07.Part2},
	8:  {Part1: day08.Part1, Part2: day08.Part2},
	9:  {Part1: day09.Part1, Part2: day09.Part2},
	10: {Part1: day10.Part1, Part2: day10.Part2},
	12: {Part1: day12.Part1, Part2: day12.Part2},
	13: {Part1: day13.Part1, Part2: day13.Part2},
	14: {Part1: day14.Part1, Part2: day14.Part2},
	15: {
		Part1: func(input string) (string, error) { return day15.Part1(input, day15Row) },
		Part2: func(input string) (string, error) { return day15.Part2(input, day15Limit) },
	},
	17: {Part1: day17.Part1, Part2: day17.Part2},
	18: {Part1: day18.Part1, Part2: day18.Part2},
	20: {Part1: day20.Part1, Part2: day20.Part2},
	21: {Part1: day21.Part1, Part2: day21.Part2},
	23: {Part1: day23.Part1, Part2: day23.Part2},
}

// Lookup returns the solvers for a day, if that day is registered.
func Lookup(day int) (Day, bool) {
	d, ok := registry[day]
	return d, ok
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Run dispatches one part of one day against the given input.
func Run(day, part int, input string) (string, error) {
	d, ok := registry[day]
	if !ok {
		return "", fmt.Errorf("day %d is not implemented", day)
	}
	var fn PartFunc
	switch part {
	case 1:
		fn = d.Part1
	case 2:
		fn = d.Part2
	default:
		return "", fmt.Errorf("part must be 1 or 2, got %d", part)
	}
	return fn(input)
}
