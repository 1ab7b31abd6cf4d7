// Package day06 solves Tuning Trouble: find the end position of the first
// window of all-distinct characters in the datastream.
package day06

import (
	"fmt"
	"strconv"
	"strings"
)

func firstMarker(input string, windowSize int) (int, error) {
	s := strings.TrimRight(input, "\n")
	if len(s) < windowSize {
		return 0, fmt.Errorf("datastream shorter than window size %d", windowSize)
	}
	for i := 0; i+windowSize <= len(s); i++ {
		window := s[i : i+windowSize]
		seen := make(map[byte]struct{}, windowSize)
		for j := 0; j < windowSize; j++ {
			seen[window[j]] = struct{}{}
		}
		if len(seen) == windowSize {
			return i + windowSize, nil
		}
	}
	return 0, fmt.Errorf("no marker of %d distinct characters found", windowSize)
}

// Part1 looks for the 4-character start-of-packet marker.
func Part1(input string) (string, error) {
	pos, err := firstMarker(input, 4)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(pos), nil
}

// Part2 looks for the 14-character start-of-message marker.
func Part2(input string) (string, error) {
	pos, err := firstMarker(input, 14)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(pos), nil
}
