package day13

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "13", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "140", got)
}

func TestParseLine_NestedLists(t *testing.T) {
	p, err := parseLine("[[1],[2,3,4]]")
	require.NoError(t, err)
	want := list(list(number(1)), list(number(2), number(3), number(4)))
	assert.Equal(t, want, p)
}

func TestCompare_NumberAgainstList(t *testing.T) {
	// [9] vs [[8,7,6]]: 9 coerces to [9], compares against [8,7,6]
	left := list(number(9))
	right := list(list(number(8), number(7), number(6)))
	assert.Positive(t, compare(left, right))
}

func TestCompare_ShorterListSortsFirst(t *testing.T) {
	assert.Negative(t, compare(list(), list(number(3))))
}

func TestParseLine_Unterminated_ReturnsError(t *testing.T) {
	_, err := parseLine("[1,[2]")
	assert.Error(t, err)
}
