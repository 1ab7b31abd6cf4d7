package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "31", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "29", got)
}

func TestParseMap_MissingMarkers_ReturnsError(t *testing.T) {
	_, err := parseMap("abc\nabc")
	assert.Error(t, err)
}

func TestPart1_UnreachableEnd_ReturnsError(t *testing.T) {
	// E is two levels above everything around it, so no edge reaches it.
	_, err := Part1("Sa\naE")
	assert.Error(t, err)
}
