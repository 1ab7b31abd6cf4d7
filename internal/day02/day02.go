// Package day02 solves Rock Paper Scissors: each line pairs an opponent move
// (A/B/C) with a response column (X/Y/Z). Round score = shape value plus
// 0/3/6 for loss/draw/win.
package day02

import (
	"fmt"
	"strconv"
	"strings"
)

type move int

const (
	rock move = iota + 1
	paper
	scissors
)

// beats returns the move this move defeats.
func (m move) beats() move {
	switch m {
	case rock:
		return scissors
	case paper:
		return rock
	default:
		return paper
	}
}

// losesTo returns the move that defeats this move.
func (m move) losesTo() move {
	switch m {
	case rock:
		return paper
	case paper:
		return scissors
	default:
		return rock
	}
}

func parseMove(s string) (move, error) {
	switch s {
	case "A", "X":
		return rock, nil
	case "B", "Y":
		return paper, nil
	case "C", "Z":
		return scissors, nil
	default:
		return 0, fmt.Errorf("not a known move: %q", s)
	}
}

func rounds(input string) ([][2]string, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	out := make([][2]string, 0, len(lines))
	for _, line := range lines {
		a, b, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("malformed round %q", line)
		}
		out = append(out, [2]string{a, b})
	}
	return out, nil
}

// Part1 treats the second column as our move.
func Part1(input string) (string, error) {
	rs, err := rounds(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, r := range rs {
		theirs, err := parseMove(r[0])
		if err != nil {
			return "", err
		}
		ours, err := parseMove(r[1])
		if err != nil {
			return "", err
		}
		switch {
		case ours == theirs:
			total += 3 + int(ours)
		case ours.beats() == theirs:
			total += 6 + int(ours)
		default:
			total += int(ours)
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 treats the second column as the required outcome: X lose, Y draw,
// Z win.
func Part2(input string) (string, error) {
	rs, err := rounds(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, r := range rs {
		theirs, err := parseMove(r[0])
		if err != nil {
			return "", err
		}
		switch r[1] {
		case "X":
			total += int(theirs.beats())
		case "Y":
			total += 3 + int(theirs)
		case "Z":
			total += 6 + int(theirs.losesTo())
		default:
			return "", fmt.Errorf("unexpected outcome %q, want X, Y or Z", r[1])
		}
	}
	return strconv.Itoa(total), nil
}
