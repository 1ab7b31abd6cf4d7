// Package day05 solves Supply Stacks: a drawing of crate stacks followed by
// "move N from F to T" instructions. The answer is the top crate of each
// stack after all moves.
package day05

import (
	"fmt"
	"strings"
)

type step struct {
	count, from, to int
}

// parse splits the crate drawing from the move list. Crates sit at column
// 1+4*i of each drawing line; the numbering line below them fixes the stack
// count. Stacks are returned bottom-up.
func parse(input string) ([][]byte, []step, error) {
	drawing, moveText, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("input has no blank line between drawing and moves")
	}

	lines := strings.Split(drawing, "\n")
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("crate drawing too short")
	}
	numberLine := lines[len(lines)-1]
	stackCount := len(strings.Fields(numberLine))
	stacks := make([][]byte, stackCount)
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for s := 0; s < stackCount; s++ {
			col := 1 + 4*s
			if col < len(line) && line[col] != ' ' {
				stacks[s] = append(stacks[s], line[col])
			}
		}
	}

	var steps []step
	for _, line := range strings.Split(strings.TrimRight(moveText, "\n"), "\n") {
		var st step
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &st.count, &st.from, &st.to); err != nil {
			return nil, nil, fmt.Errorf("malformed move %q: %w", line, err)
		}
		// the drawing numbers stacks from 1
		st.from--
		st.to--
		if st.from < 0 || st.from >= stackCount || st.to < 0 || st.to >= stackCount {
			return nil, nil, fmt.Errorf("move %q references unknown stack", line)
		}
		steps = append(steps, st)
	}
	return stacks, steps, nil
}

func tops(stacks [][]byte) string {
	var sb strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			sb.WriteByte(s[len(s)-1])
		}
	}
	return sb.String()
}

// Part1 moves crates one at a time, so each lifted group ends up reversed.
func Part1(input string) (string, error) {
	stacks, steps, err := parse(input)
	if err != nil {
		return "", err
	}
	for _, st := range steps {
		from := stacks[st.from]
		if st.count > len(from) {
			return "", fmt.Errorf("cannot move %d crates from stack of %d", st.count, len(from))
		}
		lifted := from[len(from)-st.count:]
		stacks[st.from] = from[:len(from)-st.count]
		for i := len(lifted) - 1; i >= 0; i-- {
			stacks[st.to] = append(stacks[st.to], lifted[i])
		}
	}
	return tops(stacks), nil
}

// Part2 moves each group in one lift, preserving order.
func Part2(input string) (string, error) {
	stacks, steps, err := parse(input)
	if err != nil {
		return "", err
	}
	for _, st := range steps {
		from := stacks[st.from]
		if st.count > len(from) {
			return "", fmt.Errorf("cannot move %d crates from stack of %d", st.count, len(from))
		}
		lifted := from[len(from)-st.count:]
		stacks[st.from] = from[:len(from)-st.count]
		stacks[st.to] = append(stacks[st.to], lifted...)
	}
	return tops(stacks), nil
}
