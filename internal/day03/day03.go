// Package day03 solves Rucksack Reorganization: find the item common to both
// compartments of each rucksack (part 1) or to each group of three rucksacks
// (part 2) and sum the item priorities (a-z = 1-26, A-Z = 27-52).
package day03

import (
	"fmt"
	"strconv"
	"strings"
)

func priority(c rune) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	default:
		return 0, fmt.Errorf("item %q has no priority", c)
	}
}

func Part1(input string) (string, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if len(line)%2 != 0 {
			return "", fmt.Errorf("rucksack %q has odd length", line)
		}
		a, b := line[:len(line)/2], line[len(line)/2:]
		found := false
		for _, c := range a {
			if strings.ContainsRune(b, c) {
				p, err := priority(c)
				if err != nil {
					return "", err
				}
				total += p
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("no common item in rucksack %q", line)
		}
	}
	return strconv.Itoa(total), nil
}

func Part2(input string) (string, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines)%3 != 0 {
		return "", fmt.Errorf("rucksack count %d is not a multiple of 3", len(lines))
	}
	total := 0
	for i := 0; i < len(lines); i += 3 {
		found := false
		for _, c := range lines[i] {
			if strings.ContainsRune(lines[i+1], c) && strings.ContainsRune(lines[i+2], c) {
				p, err := priority(c)
				if err != nil {
					return "", err
				}
				total += p
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("no common badge in group starting at line %d", i+1)
		}
	}
	return strconv.Itoa(total), nil
}
