package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rschneider/advent2022/internal/solve"
)

var allInputDir string

// allCmd solves every registered day/part in order. Days whose input file is
// missing are skipped with a warning, since inputs are downloaded per-user.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day that has an input file",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		solved := 0
		for _, day := range solve.Days() {
			input := defaultInputPath(allInputDir, day)
			if _, err := os.Stat(input); err != nil {
				logrus.Warnf("day %d: no input at %s, skipping", day, input)
				continue
			}
			for part := 1; part <= 2; part++ {
				answer, elapsed, err := runOne(day, part, input)
				if err != nil {
					logrus.Fatalf("%v", err)
				}
				logrus.Debugf("day %d part %d took %s", day, part, elapsed)
				fmt.Printf("day %02d part %d: %s\n", day, part, answer)
				solved++
			}
		}
		logrus.Infof("solved %d parts in %s", solved, time.Since(start))
	},
}

// listCmd prints the registered days.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List implemented days",
	Run: func(cmd *cobra.Command, args []string) {
		for _, day := range solve.Days() {
			fmt.Printf("day %02d\n", day)
		}
	},
}

func init() {
	allCmd.Flags().StringVar(&allInputDir, "input-dir", defaultInputDir, "Directory holding dayNN.txt input files")

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(listCmd)
}
