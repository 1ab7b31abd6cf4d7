// Package day21 solves Monkey Math: monkeys either yell a number or an
// arithmetic operation over two other monkeys. Part 1 evaluates root in
// dependency (topological) order; part 2 solves for the humn value that
// makes root's two operands equal.
package day21

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

const (
	rootMonkey  = "root"
	humanMonkey = "humn"
)

type job struct {
	leaf        bool
	value       int64
	left, right string
	operator    byte
}

func parseJobs(input string) (map[string]job, error) {
	jobs := map[string]job{}
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("malformed monkey line %q", line)
		}
		fields := strings.Fields(rest)
		switch len(fields) {
		case 1:
			n, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("monkey %s: bad number %q: %w", name, fields[0], err)
			}
			jobs[name] = job{leaf: true, value: n}
		case 3:
			if len(fields[1]) != 1 || !strings.ContainsAny(fields[1], "+-*/") {
				return nil, fmt.Errorf("monkey %s: unknown operator %q", name, fields[1])
			}
			jobs[name] = job{left: fields[0], right: fields[2], operator: fields[1][0]}
		default:
			return nil, fmt.Errorf("malformed monkey job %q", rest)
		}
	}
	return jobs, nil
}

func apply(operator byte, left, right int64) int64 {
	switch operator {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	default:
		return left / right
	}
}

// evalOrder topologically sorts the dependency graph so every monkey comes
// after the monkeys it listens to.
func evalOrder(jobs map[string]job) ([]string, error) {
	names := make([]string, 0, len(jobs))
	for name := range jobs {
		names = append(names, name)
	}
	ids := make(map[string]int64, len(names))
	for i, name := range names {
		ids[name] = int64(i)
	}

	g := simple.NewDirectedGraph()
	for _, name := range names {
		g.AddNode(simple.Node(ids[name]))
	}
	for name, j := range jobs {
		if j.leaf {
			continue
		}
		for _, dep := range []string{j.left, j.right} {
			depID, ok := ids[dep]
			if !ok {
				return nil, fmt.Errorf("monkey %s listens to unknown monkey %s", name, dep)
			}
			g.SetEdge(simple.Edge{F: simple.Node(depID), T: simple.Node(ids[name])})
		}
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, fmt.Errorf("monkey jobs contain a cycle: %w", err)
	}
	order := make([]string, len(sorted))
	for i, n := range sorted {
		order[i] = names[n.ID()]
	}
	return order, nil
}

// Part1 evaluates every monkey bottom-up and reports root.
func Part1(input string) (string, error) {
	jobs, err := parseJobs(input)
	if err != nil {
		return "", err
	}
	order, err := evalOrder(jobs)
	if err != nil {
		return "", err
	}
	values := make(map[string]int64, len(jobs))
	for _, name := range order {
		j := jobs[name]
		if j.leaf {
			values[name] = j.value
			continue
		}
		values[name] = apply(j.operator, values[j.left], values[j.right])
	}
	root, ok := values[rootMonkey]
	if !ok {
		return "", fmt.Errorf("no monkey named %s", rootMonkey)
	}
	return strconv.FormatInt(root, 10), nil
}

// solver memoizes which monkeys depend on humn and the values of those that
// don't.
type solver struct {
	jobs      map[string]job
	needsHumn map[string]bool
}

func (s *solver) depends(name string) (bool, error) {
	if v, ok := s.needsHumn[name]; ok {
		return v, nil
	}
	if name == humanMonkey {
		s.needsHumn[name] = true
		return true, nil
	}
	j, ok := s.jobs[name]
	if !ok {
		return false, fmt.Errorf("unknown monkey %s", name)
	}
	result := false
	if !j.leaf {
		l, err := s.depends(j.left)
		if err != nil {
			return false, err
		}
		r, err := s.depends(j.right)
		if err != nil {
			return false, err
		}
		result = l || r
	}
	s.needsHumn[name] = result
	return result, nil
}

// eval computes a subtree known not to contain humn.
func (s *solver) eval(name string) int64 {
	j := s.jobs[name]
	if j.leaf {
		return j.value
	}
	return apply(j.operator, s.eval(j.left), s.eval(j.right))
}

// solveDown walks the humn-dependent spine from node downward. target is the
// value the node must produce; at each level the other operand is known, so
// the operation inverts.
func (s *solver) solveDown(name string, target int64) (int64, error) {
	if name == humanMonkey {
		return target, nil
	}
	j := s.jobs[name]
	if j.leaf {
		return 0, fmt.Errorf("monkey %s is a leaf but was expected on the humn path", name)
	}
	leftNeeds := s.needsHumn[j.left]
	logrus.Debugf("solve: %s must yell %d (humn on %s side)", name, target, map[bool]string{true: "left", false: "right"}[leftNeeds])
	if leftNeeds {
		known := s.eval(j.right)
		switch j.operator {
		case '+':
			return s.solveDown(j.left, target-known)
		case '-':
			return s.solveDown(j.left, target+known)
		case '*':
			return s.solveDown(j.left, target/known)
		default:
			return s.solveDown(j.left, target*known)
		}
	}
	known := s.eval(j.left)
	switch j.operator {
	case '+':
		return s.solveDown(j.right, target-known)
	case '-':
		return s.solveDown(j.right, known-target)
	case '*':
		return s.solveDown(j.right, target/known)
	default:
		return s.solveDown(j.right, known/target)
	}
}

// Part2 ignores root's operator, treats it as an equality test, and solves
// for the humn value that balances both sides.
func Part2(input string) (string, error) {
	jobs, err := parseJobs(input)
	if err != nil {
		return "", err
	}
	root, ok := jobs[rootMonkey]
	if !ok {
		return "", fmt.Errorf("no monkey named %s", rootMonkey)
	}
	if root.leaf {
		return "", fmt.Errorf("%s yells a bare number; nothing to balance", rootMonkey)
	}
	s := &solver{jobs: jobs, needsHumn: map[string]bool{}}
	leftNeeds, err := s.depends(root.left)
	if err != nil {
		return "", err
	}
	rightNeeds, err := s.depends(root.right)
	if err != nil {
		return "", err
	}
	var answer int64
	switch {
	case leftNeeds && rightNeeds:
		return "", fmt.Errorf("both sides of %s depend on %s", rootMonkey, humanMonkey)
	case leftNeeds:
		answer, err = s.solveDown(root.left, s.eval(root.right))
	case rightNeeds:
		answer, err = s.solveDown(root.right, s.eval(root.left))
	default:
		return "", fmt.Errorf("neither side of %s depends on %s", rootMonkey, humanMonkey)
	}
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(answer, 10), nil
}
