package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "answers.yaml", `
answers:
  1:
    part1: "24000"
    part2: "45000"
  6:
    part1: "7"
`)
	answers, err := loadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, "24000", answers[1].Part1)
	assert.Equal(t, "45000", answers[1].Part2)
	assert.Equal(t, "7", answers[6].Part1)
	assert.Equal(t, "", answers[6].Part2)
}

func TestLoadAnswersRejectsUnknownFields(t *testing.T) {
	// A typo in a field name must fail, not silently verify nothing.
	path := writeFile(t, t.TempDir(), "answers.yaml", `
answers:
  1:
    prat1: "24000"
`)
	_, err := loadAnswers(path)
	assert.Error(t, err)
}

func TestLoadAnswersMissingFile(t *testing.T) {
	_, err := loadAnswers(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestVerifyAnswers(t *testing.T) {
	// GIVEN the day 1 example input and one right plus one wrong expectation
	dir := t.TempDir()
	writeFile(t, dir, "day01.txt", "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n")

	results := verifyAnswers(dir, map[int]dayAnswers{
		1: {Part1: "24000", Part2: "99999"},
	})

	require.Len(t, results, 2)
	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.Equal(t, "45000", results[1].Got)
}

func TestVerifyAnswersMissingInput(t *testing.T) {
	results := verifyAnswers(t.TempDir(), map[int]dayAnswers{1: {Part1: "24000"}})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Passed())
}

func TestCheckResultIgnoresTrailingNewline(t *testing.T) {
	// YAML block scalars carry a trailing newline; the CRT answer does too.
	r := checkResult{Got: "PAPER", Want: "PAPER\n"}
	assert.True(t, r.Passed())
}
