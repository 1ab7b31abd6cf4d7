package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "95437", got)
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "24933642", got)
}

func TestDirectorySizes_RollsUpAncestors(t *testing.T) {
	sizes, err := directorySizes(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 584, sizes["/a/e"])
	assert.Equal(t, 94853, sizes["/a"])
	assert.Equal(t, 48381165, sizes["/"])
}

func TestDirectorySizes_CdAboveRoot_ReturnsError(t *testing.T) {
	_, err := directorySizes("$ cd /\n$ cd ..\n$ cd ..")
	assert.Error(t, err)
}
