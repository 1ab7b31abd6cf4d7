package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "24000", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "45000", got)
}

func TestPart1_BadInput_ReturnsError(t *testing.T) {
	_, err := Part1("1000\nnot-a-number")
	assert.Error(t, err)
}
