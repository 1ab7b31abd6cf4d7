// Package day07 solves No Space Left On Device: replay a shell session of cd
// and ls commands and roll file sizes up into every ancestor directory.
package day07

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	diskSize    = 70_000_000
	neededSpace = 30_000_000
	rootPath    = "/"
)

// directorySizes replays the session and returns total size per directory,
// keyed by absolute path. A file's size counts toward every directory on its
// path, so each entry is already the recursive total.
func directorySizes(input string) (map[string]int, error) {
	sizes := map[string]int{}
	var path []string
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		switch {
		case line == "$ cd /":
			path = path[:0]
		case line == "$ cd ..":
			if len(path) == 0 {
				return nil, fmt.Errorf("cd .. above root")
			}
			path = path[:len(path)-1]
		case strings.HasPrefix(line, "$ cd "):
			path = append(path, strings.TrimPrefix(line, "$ cd "))
		case line == "$ ls" || strings.HasPrefix(line, "dir "):
			// ls output for directories carries no size; their totals
			// accumulate from the files beneath them.
		default:
			sizeText, _, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("malformed session line %q", line)
			}
			size, err := strconv.Atoi(sizeText)
			if err != nil {
				return nil, fmt.Errorf("bad file size in %q: %w", line, err)
			}
			sizes[rootPath] += size
			for i := range path {
				sizes[rootPath+strings.Join(path[:i+1], "/")] += size
			}
		}
	}
	return sizes, nil
}

// Part1 sums every directory with total size under 100000.
func Part1(input string) (string, error) {
	sizes, err := directorySizes(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, size := range sizes {
		if size < 100_000 {
			total += size
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 finds the smallest directory whose deletion frees enough space for
// the update.
func Part2(input string) (string, error) {
	sizes, err := directorySizes(input)
	if err != nil {
		return "", err
	}
	used, ok := sizes[rootPath]
	if !ok {
		return "", fmt.Errorf("session never visited the root directory")
	}
	mustFree := neededSpace - (diskSize - used)
	best := -1
	for _, size := range sizes {
		if size >= mustFree && (best == -1 || size < best) {
			best = size
		}
	}
	if best == -1 {
		return "", fmt.Errorf("no single directory frees %d", mustFree)
	}
	return strconv.Itoa(best), nil
}
