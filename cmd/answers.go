package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// dayAnswers holds the expected answers for one day. Empty strings mean
// "not recorded yet" and are skipped during verification.
type dayAnswers struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// answersFile is the structure of the answers YAML, keyed by day number.
type answersFile struct {
	Answers map[int]dayAnswers `yaml:"answers"`
}

// loadAnswers parses an answers file with strict field checking so typos
// like "prat1" fail loudly instead of silently verifying nothing.
func loadAnswers(path string) (map[int]dayAnswers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var af answersFile
	if err := decoder.Decode(&af); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return af.Answers, nil
}

// checkResult records one verified part.
type checkResult struct {
	Day  int
	Part int
	Want string
	Got  string
	Err  error
}

// Passed reports whether the computed answer matched the recorded one.
// Trailing newlines are ignored because YAML block scalars carry one and
// multi-line answers (the day 10 CRT image) are recorded that way.
func (r checkResult) Passed() bool {
	return r.Err == nil && strings.TrimRight(r.Got, "\n") == strings.TrimRight(r.Want, "\n")
}

// verifyAnswers solves every recorded part and compares against the
// expectations. Parts with no recorded answer are skipped.
func verifyAnswers(inputDir string, answers map[int]dayAnswers) []checkResult {
	days := make([]int, 0, len(answers))
	for day := range answers {
		days = append(days, day)
	}
	sort.Ints(days)

	var results []checkResult
	for _, day := range days {
		input := defaultInputPath(inputDir, day)
		for part, want := range map[int]string{1: answers[day].Part1, 2: answers[day].Part2} {
			if want == "" {
				continue
			}
			got, _, err := runOne(day, part, input)
			results = append(results, checkResult{Day: day, Part: part, Want: want, Got: got, Err: err})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Day != results[j].Day {
			return results[i].Day < results[j].Day
		}
		return results[i].Part < results[j].Part
	})
	return results
}
