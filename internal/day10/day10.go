// Package day10 solves Cathode-Ray Tube: a two-instruction CPU (noop, addx)
// drives both a signal-strength sample (part 1) and a 40x6 CRT whose sprite
// is the three pixels centered on register X (part 2).
package day10

import (
	"fmt"
	"strconv"
	"strings"
)

const crtWidth = 40

type instruction struct {
	cycles int
	delta  int // applied to X after the instruction's cycles complete
}

func parseProgram(input string) ([]instruction, error) {
	var program []instruction
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		switch {
		case line == "noop":
			program = append(program, instruction{cycles: 1})
		case strings.HasPrefix(line, "addx "):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "addx "))
			if err != nil {
				return nil, fmt.Errorf("bad addx operand in %q: %w", line, err)
			}
			program = append(program, instruction{cycles: 2, delta: n})
		default:
			return nil, fmt.Errorf("unknown instruction %q", line)
		}
	}
	return program, nil
}

// Part1 sums cycle*X at cycles 20, 60, 100, 140, 180 and 220, sampling X
// during the cycle (before any in-flight addx lands).
func Part1(input string) (string, error) {
	program, err := parseProgram(input)
	if err != nil {
		return "", err
	}
	x := 1
	cycle := 0
	total := 0
	for _, ins := range program {
		for i := 0; i < ins.cycles; i++ {
			cycle++
			if cycle <= 220 && cycle%40 == 20 {
				total += cycle * x
			}
		}
		x += ins.delta
	}
	return strconv.Itoa(total), nil
}

// Part2 renders the CRT: each cycle lights one pixel, lit when the sprite
// overlaps the beam position.
func Part2(input string) (string, error) {
	program, err := parseProgram(input)
	if err != nil {
		return "", err
	}
	x := 1
	cycle := 0
	var pixels strings.Builder
	for _, ins := range program {
		for i := 0; i < ins.cycles; i++ {
			beam := cycle % crtWidth
			if beam >= x-1 && beam <= x+1 {
				pixels.WriteByte('#')
			} else {
				pixels.WriteByte('.')
			}
			cycle++
		}
		x += ins.delta
	}

	screen := pixels.String()
	rows := make([]string, 0, (len(screen)+crtWidth-1)/crtWidth)
	for len(screen) > crtWidth {
		rows = append(rows, screen[:crtWidth])
		screen = screen[crtWidth:]
	}
	rows = append(rows, screen)
	return strings.Join(rows, "\n"), nil
}
