package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1_Examples(t *testing.T) {
	cases := []struct {
		stream string
		want   string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11"},
	}
	for _, tc := range cases {
		got, err := Part1(tc.stream)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "stream %q", tc.stream)
	}
}

func TestPart2_Examples(t *testing.T) {
	cases := []struct {
		stream string
		want   string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "19"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "23"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "23"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "29"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "26"},
	}
	for _, tc := range cases {
		got, err := Part2(tc.stream)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "stream %q", tc.stream)
	}
}

func TestFirstMarker_NoMarker_ReturnsError(t *testing.T) {
	_, err := firstMarker("aaaaaaa", 4)
	assert.Error(t, err)
}
