package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "MCD", got)
}

func TestParse_StacksBottomUp(t *testing.T) {
	stacks, steps, err := parse(exampleInput)
	require.NoError(t, err)
	require.Len(t, stacks, 3)
	assert.Equal(t, "ZN", string(stacks[0]))
	assert.Equal(t, "MCD", string(stacks[1]))
	assert.Equal(t, "P", string(stacks[2]))
	require.Len(t, steps, 4)
	assert.Equal(t, step{count: 1, from: 1, to: 0}, steps[0])
}

func TestParse_MissingBlankLine_ReturnsError(t *testing.T) {
	_, _, err := parse("[A]\n 1 \nmove 1 from 1 to 1")
	assert.Error(t, err)
}
