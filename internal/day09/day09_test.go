package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2`

const largerExample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "13", got)
}

func TestPart2_Examples(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = Part2(largerExample)
	require.NoError(t, err)
	assert.Equal(t, "36", got)
}

func TestMoves_ExpandsRepeats(t *testing.T) {
	steps, err := moves("R 2\nU 1")
	require.NoError(t, err)
	assert.Equal(t, []point{{x: 1}, {x: 1}, {y: 1}}, steps)
}

func TestMoves_UnknownDirection_ReturnsError(t *testing.T) {
	_, err := moves("Q 3")
	assert.Error(t, err)
}
