package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day07.txt"), defaultInputPath("inputs", 7))
	assert.Equal(t, filepath.Join("data", "day15.txt"), defaultInputPath("data", 15))
}

func TestRunOne(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "day06.txt", "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")

	answer, _, err := runOne(6, 1, input)
	require.NoError(t, err)
	assert.Equal(t, "7", answer)

	answer, _, err = runOne(6, 2, input)
	require.NoError(t, err)
	assert.Equal(t, "19", answer)
}

func TestRunOneMissingInput(t *testing.T) {
	_, _, err := runOne(1, 1, filepath.Join(t.TempDir(), "day01.txt"))
	assert.Error(t, err)
}

func TestRunOneUnknownDay(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "day11.txt", "whatever\n")
	_, _, err := runOne(11, 1, input)
	assert.Error(t, err)
}
