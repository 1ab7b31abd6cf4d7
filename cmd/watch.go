package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	watchDay   int
	watchPart  int
	watchInput string
)

// Editors tend to fire several events per save, so reruns are debounced.
const watchDebounce = 300 * time.Millisecond

// watchCmd reruns a day whenever its input file changes, the edit-save-rerun
// loop for working on a puzzle. Watches the parent directory because many
// editors replace the file on save instead of writing in place.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rerun a day whenever its input file changes",
	Run: func(cmd *cobra.Command, args []string) {
		input := watchInput
		if input == "" {
			input = defaultInputPath(defaultInputDir, watchDay)
		}
		target := filepath.Clean(input)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logrus.Fatalf("creating watcher: %v", err)
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(target)); err != nil {
			logrus.Fatalf("watching %s: %v", filepath.Dir(target), err)
		}

		solveNow := func() {
			for _, part := range watchParts() {
				answer, elapsed, err := runOne(watchDay, part, input)
				if err != nil {
					logrus.Errorf("%v", err)
					continue
				}
				logrus.Infof("day %d part %d solved in %s", watchDay, part, elapsed)
				fmt.Printf("day %02d part %d: %s\n", watchDay, part, answer)
			}
		}
		solveNow()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		debounce := time.NewTimer(watchDebounce)
		if !debounce.Stop() {
			<-debounce.C
		}

		logrus.Infof("watching %s", target)
		for {
			select {
			case <-interrupt:
				logrus.Info("stopping watch")
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logrus.Debugf("%s on %s", event.Op, event.Name)
				debounce.Reset(watchDebounce)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logrus.Errorf("watcher: %v", err)
			case <-debounce.C:
				solveNow()
			}
		}
	},
}

// watchParts returns the parts to rerun; part 0 means both.
func watchParts() []int {
	if watchPart == 0 {
		return []int{1, 2}
	}
	return []int{watchPart}
}

func init() {
	watchCmd.Flags().IntVar(&watchDay, "day", 0, "Puzzle day to watch")
	watchCmd.Flags().IntVar(&watchPart, "part", 0, "Puzzle part (1 or 2, default both)")
	watchCmd.Flags().StringVar(&watchInput, "input", "", "Input file (default inputs/dayNN.txt)")
	if err := watchCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(watchCmd)
}
