// Package day13 solves Distress Signal: nested list packets compared
// element-wise, with a bare number coerced to a one-element list when
// compared against a list.
package day13

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// packet is either a number or a list, never both.
type packet struct {
	num    int
	list   []packet
	isList bool
}

func number(n int) packet {
	return packet{num: n}
}

func list(items ...packet) packet {
	if items == nil {
		items = []packet{}
	}
	return packet{list: items, isList: true}
}

// parsePacket consumes one packet from the front of s and returns the rest.
func parsePacket(s string) (packet, string, error) {
	if s == "" {
		return packet{}, "", fmt.Errorf("empty packet")
	}
	if s[0] != '[' {
		end := 0
		for end < len(s) && (s[end] == '-' || (s[end] >= '0' && s[end] <= '9')) {
			end++
		}
		n, err := strconv.Atoi(s[:end])
		if err != nil {
			return packet{}, "", fmt.Errorf("bad packet number at %q: %w", s, err)
		}
		return number(n), s[end:], nil
	}

	p := list()
	s = s[1:]
	for {
		if s == "" {
			return packet{}, "", fmt.Errorf("unterminated packet list")
		}
		if s[0] == ']' {
			return p, s[1:], nil
		}
		item, rest, err := parsePacket(s)
		if err != nil {
			return packet{}, "", err
		}
		p.list = append(p.list, item)
		s = rest
		if s != "" && s[0] == ',' {
			s = s[1:]
		}
	}
}

func parseLine(line string) (packet, error) {
	p, rest, err := parsePacket(line)
	if err != nil {
		return packet{}, err
	}
	if rest != "" {
		return packet{}, fmt.Errorf("trailing data %q after packet", rest)
	}
	return p, nil
}

// compare returns <0 when a sorts before b, 0 when equal, >0 otherwise.
func compare(a, b packet) int {
	switch {
	case !a.isList && !b.isList:
		return a.num - b.num
	case !a.isList:
		return compare(list(a), b)
	case !b.isList:
		return compare(a, list(b))
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return len(a.list) - len(b.list)
}

func parsePackets(input string) ([]packet, error) {
	var packets []packet
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		packets = append(packets, p)
	}
	return packets, nil
}

// Part1 sums the 1-based indices of pairs already in order.
func Part1(input string) (string, error) {
	packets, err := parsePackets(input)
	if err != nil {
		return "", err
	}
	if len(packets)%2 != 0 {
		return "", fmt.Errorf("odd packet count %d, want pairs", len(packets))
	}
	total := 0
	for i := 0; i < len(packets); i += 2 {
		if compare(packets[i], packets[i+1]) < 0 {
			total += i/2 + 1
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 sorts all packets plus the [[2]] and [[6]] dividers and multiplies
// the dividers' 1-based positions.
func Part2(input string) (string, error) {
	packets, err := parsePackets(input)
	if err != nil {
		return "", err
	}
	div2 := list(list(number(2)))
	div6 := list(list(number(6)))
	packets = append(packets, div2, div6)
	sort.Slice(packets, func(i, j int) bool {
		return compare(packets[i], packets[j]) < 0
	})
	key := 1
	for i, p := range packets {
		if compare(p, div2) == 0 || compare(p, div6) == 0 {
			key *= i + 1
		}
	}
	return strconv.Itoa(key), nil
}
