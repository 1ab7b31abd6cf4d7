package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rschneider/advent2022/internal/solve"
)

var (
	runDay   int
	runPart  int
	runInput string
)

const defaultInputDir = "inputs"

// defaultInputPath returns where a day's puzzle input is expected,
// e.g. inputs/day07.txt.
func defaultInputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// runOne reads the input file and solves one part, timing only the solve.
func runOne(day, part int, inputPath string) (string, time.Duration, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", 0, fmt.Errorf("reading input: %w", err)
	}
	start := time.Now()
	answer, err := solve.Run(day, part, string(data))
	if err != nil {
		return "", 0, fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	return answer, time.Since(start), nil
}

// runCmd solves a single day/part and prints the answer to stdout.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve one part of one day",
	Run: func(cmd *cobra.Command, args []string) {
		input := runInput
		if input == "" {
			input = defaultInputPath(defaultInputDir, runDay)
		}
		answer, elapsed, err := runOne(runDay, runPart, input)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("day %d part %d solved in %s", runDay, runPart, elapsed)
		fmt.Println(answer)
	},
}

func init() {
	runCmd.Flags().IntVar(&runDay, "day", 0, "Puzzle day to solve")
	runCmd.Flags().IntVar(&runPart, "part", 1, "Puzzle part (1 or 2)")
	runCmd.Flags().StringVar(&runInput, "input", "", "Input file (default inputs/dayNN.txt)")
	if err := runCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(runCmd)
}
