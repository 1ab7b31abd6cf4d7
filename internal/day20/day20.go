// Package day20 solves Grove Positioning System: mix a circular list by
// moving each number forward/backward by its own value, in original file
// order, then read the grove coordinates 1000/2000/3000 places after 0.
package day20

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const decryptionKey = 811589153

// entry keeps the original position so duplicate values stay
// distinguishable during mixing.
type entry struct {
	id    int
	value int
}

func parseNumbers(input string) ([]entry, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	numbers := make([]entry, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a number: %w", i+1, line, err)
		}
		numbers = append(numbers, entry{id: i, value: n})
	}
	return numbers, nil
}

// mix performs the given number of full mixing rounds and returns the final
// arrangement. A number moved out of the list wraps modulo len-1 because the
// list is circular without it.
func mix(numbers []entry, rounds int) []entry {
	state := make([]entry, len(numbers))
	copy(state, numbers)
	for round := 0; round < rounds; round++ {
		for _, num := range numbers {
			index := -1
			for i, s := range state {
				if s.id == num.id {
					index = i
					break
				}
			}
			state = append(state[:index], state[index+1:]...)
			newIndex := (index + num.value) % len(state)
			if newIndex < 0 {
				newIndex += len(state)
			}
			logrus.Debugf("mix: value %d moves %d -> %d", num.value, index, newIndex)
			state = append(state, entry{})
			copy(state[newIndex+1:], state[newIndex:])
			state[newIndex] = num
		}
	}
	return state
}

func groveCoordinates(state []entry) (int, error) {
	zero := -1
	for i, s := range state {
		if s.value == 0 {
			zero = i
			break
		}
	}
	if zero < 0 {
		return 0, fmt.Errorf("no 0 in the encrypted file")
	}
	sum := 0
	for _, offset := range []int{1000, 2000, 3000} {
		sum += state[(zero+offset)%len(state)].value
	}
	return sum, nil
}

// Part1 mixes once.
func Part1(input string) (string, error) {
	numbers, err := parseNumbers(input)
	if err != nil {
		return "", err
	}
	sum, err := groveCoordinates(mix(numbers, 1))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sum), nil
}

// Part2 multiplies every value by the decryption key and mixes ten times.
func Part2(input string) (string, error) {
	numbers, err := parseNumbers(input)
	if err != nil {
		return "", err
	}
	for i := range numbers {
		numbers[i].value *= decryptionKey
	}
	sum, err := groveCoordinates(mix(numbers, 10))
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sum), nil
}
