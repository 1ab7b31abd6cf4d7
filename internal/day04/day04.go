// Package day04 solves Camp Cleanup: each line holds two inclusive section
// ranges ("2-4,6-8"). Count pairs where one range fully contains the other
// (part 1) or where they overlap at all (part 2).
package day04

import (
	"fmt"
	"strconv"
	"strings"
)

type span struct {
	start, end int
}

func (s span) contains(o span) bool {
	return s.start <= o.start && o.end <= s.end
}

func (s span) overlaps(o span) bool {
	return s.start <= o.end && o.start <= s.end
}

func parseSpan(s string) (span, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, fmt.Errorf("malformed range %q", s)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return span{}, fmt.Errorf("range start %q: %w", a, err)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return span{}, fmt.Errorf("range end %q: %w", b, err)
	}
	return span{start: start, end: end}, nil
}

func assignments(input string) ([][2]span, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	pairs := make([][2]span, 0, len(lines))
	for _, line := range lines {
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("malformed assignment pair %q", line)
		}
		a, err := parseSpan(left)
		if err != nil {
			return nil, err
		}
		b, err := parseSpan(right)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]span{a, b})
	}
	return pairs, nil
}

func Part1(input string) (string, error) {
	pairs, err := assignments(input)
	if err != nil {
		return "", err
	}
	count := 0
	for _, p := range pairs {
		if p[0].contains(p[1]) || p[1].contains(p[0]) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

func Part2(input string) (string, error) {
	pairs, err := assignments(input)
	if err != nil {
		return "", err
	}
	count := 0
	for _, p := range pairs {
		if p[0].overlaps(p[1]) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}
