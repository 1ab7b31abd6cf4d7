// Package day15 solves Beacon Exclusion Zone: each sensor excludes beacons
// within the Manhattan distance to its nearest beacon. Part 1 counts excluded
// positions on one row; part 2 row-sweeps a bounded square for the single
// uncovered position.
package day15

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const tuningMultiplier = 4000000

type sensor struct {
	x, y    int
	beaconX int
	beaconY int
}

// radius is the Manhattan distance to the sensor's nearest beacon.
func (s sensor) radius() int {
	return abs(s.beaconX-s.x) + abs(s.beaconY-s.y)
}

// rowCoverage returns the inclusive x-interval the sensor covers on row y,
// and false when the row is out of range.
func (s sensor) rowCoverage(y int) (interval, bool) {
	reach := s.radius() - abs(s.y-y)
	if reach < 0 {
		return interval{}, false
	}
	return interval{lo: s.x - reach, hi: s.x + reach}, true
}

type interval struct {
	lo, hi int
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func parseSensors(input string) ([]sensor, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	sensors := make([]sensor, 0, len(lines))
	for _, line := range lines {
		var s sensor
		_, err := fmt.Sscanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.x, &s.y, &s.beaconX, &s.beaconY)
		if err != nil {
			return nil, fmt.Errorf("malformed sensor line %q: %w", line, err)
		}
		sensors = append(sensors, s)
	}
	return sensors, nil
}

// merge sorts intervals by start and coalesces overlapping or touching ones.
func merge(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].lo < intervals[j].lo })
	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.lo <= last.hi+1 {
			if iv.hi > last.hi {
				last.hi = iv.hi
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

// Part1 counts row positions that cannot hold an undiscovered beacon.
func Part1(input string, row int) (string, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return "", err
	}
	var intervals []interval
	beaconsOnRow := map[int]struct{}{}
	for _, s := range sensors {
		if iv, ok := s.rowCoverage(row); ok {
			intervals = append(intervals, iv)
		}
		if s.beaconY == row {
			beaconsOnRow[s.beaconX] = struct{}{}
		}
	}
	count := 0
	for _, iv := range merge(intervals) {
		count += iv.hi - iv.lo + 1
		for x := range beaconsOnRow {
			if x >= iv.lo && x <= iv.hi {
				count--
			}
		}
	}
	return strconv.Itoa(count), nil
}

// Part2 finds the one uncovered position with both coordinates in
// [0, limit] and returns its tuning frequency.
func Part2(input string, limit int) (string, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return "", err
	}
	intervals := make([]interval, 0, len(sensors))
	for y := 0; y <= limit; y++ {
		intervals = intervals[:0]
		for _, s := range sensors {
			iv, ok := s.rowCoverage(y)
			if !ok || iv.hi < 0 || iv.lo > limit {
				continue
			}
			iv.lo = max(iv.lo, 0)
			iv.hi = min(iv.hi, limit)
			intervals = append(intervals, iv)
		}
		merged := merge(intervals)
		if len(merged) == 1 && merged[0].lo <= 0 && merged[0].hi >= limit {
			continue
		}
		x := 0
		if len(merged) > 0 && merged[0].lo <= 0 {
			x = merged[0].hi + 1
		}
		return strconv.Itoa(x*tuningMultiplier + y), nil
	}
	return "", fmt.Errorf("no uncovered position within limit %d", limit)
}
