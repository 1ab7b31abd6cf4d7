package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `30373
25512
65332
33549
35390`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "21", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "8", got)
}

func TestParseGrid_RaggedRows_ReturnsError(t *testing.T) {
	_, err := parseGrid("123\n12")
	assert.Error(t, err)
}

func TestParseGrid_NonDigit_ReturnsError(t *testing.T) {
	_, err := parseGrid("12a")
	assert.Error(t, err)
}
