package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput, 10)
	require.NoError(t, err)
	assert.Equal(t, "26", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput, 20)
	require.NoError(t, err)
	assert.Equal(t, "56000011", got)
}

func TestRowCoverage(t *testing.T) {
	s := sensor{x: 8, y: 7, beaconX: 2, beaconY: 10}
	// radius 9; on row 10 the reach shrinks to 6
	iv, ok := s.rowCoverage(10)
	require.True(t, ok)
	assert.Equal(t, interval{lo: 2, hi: 14}, iv)

	_, ok = s.rowCoverage(17)
	assert.False(t, ok)
}

func TestMerge_CoalescesTouchingIntervals(t *testing.T) {
	got := merge([]interval{{lo: 5, hi: 7}, {lo: 0, hi: 2}, {lo: 3, hi: 4}})
	assert.Equal(t, []interval{{lo: 0, hi: 7}}, got)
}

func TestParseSensors_Malformed_ReturnsError(t *testing.T) {
	_, err := parseSensors("Sensor near x=1")
	assert.Error(t, err)
}
