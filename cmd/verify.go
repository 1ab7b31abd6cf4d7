package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verifyAnswersPath string
	verifyInputDir    string
)

// verifyCmd reruns every recorded day against the real inputs and compares
// with the answers file, a regression check for solver refactors.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check solver output against a recorded answers file",
	Run: func(cmd *cobra.Command, args []string) {
		answers, err := loadAnswers(verifyAnswersPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		results := verifyAnswers(verifyInputDir, answers)

		failed := 0
		for _, r := range results {
			switch {
			case r.Err != nil:
				fmt.Printf("day %02d part %d: ERROR %v\n", r.Day, r.Part, r.Err)
				failed++
			case !r.Passed():
				fmt.Printf("day %02d part %d: FAIL got %q want %q\n",
					r.Day, r.Part, strings.TrimRight(r.Got, "\n"), strings.TrimRight(r.Want, "\n"))
				failed++
			default:
				fmt.Printf("day %02d part %d: ok\n", r.Day, r.Part)
			}
		}
		logrus.Infof("verified %d parts, %d failed", len(results), failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyAnswersPath, "answers", "answers.yaml", "YAML file with recorded answers")
	verifyCmd.Flags().StringVar(&verifyInputDir, "input-dir", defaultInputDir, "Directory holding dayNN.txt input files")

	rootCmd.AddCommand(verifyCmd)
}
