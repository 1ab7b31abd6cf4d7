package day21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "152", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "301", got)
}

func TestEvalOrder_DependenciesComeFirst(t *testing.T) {
	jobs, err := parseJobs("a: b + c\nb: 1\nc: 2")
	require.NoError(t, err)
	order, err := evalOrder(jobs)
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Equal(t, "a", order[2])
}

func TestEvalOrder_Cycle_ReturnsError(t *testing.T) {
	jobs, err := parseJobs("a: b + c\nb: a + c\nc: 2")
	require.NoError(t, err)
	_, err = evalOrder(jobs)
	assert.Error(t, err)
}

func TestParseJobs_UnknownOperator_ReturnsError(t *testing.T) {
	_, err := parseJobs("a: b % c")
	assert.Error(t, err)
}
