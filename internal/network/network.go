// Package network follows left/right instructions through a network of
// labelled forks (Advent of Code 2023, day 8).
package network

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2023"
)

var (
	ErrNoInstructions     = errors.New("network: no instructions")
	ErrInvalidInstruction = errors.New("network: invalid instruction")
	ErrNoNodes            = errors.New("network: no nodes")
	ErrMalformedNode      = errors.New("network: malformed node")
	ErrDuplicateNode      = errors.New("network: duplicate node")
	ErrUnknownNode        = errors.New("network: unknown node")
	ErrNoStart            = errors.New("network: no start nodes")

	// ErrNoTerminal is returned when a walk comes back to a position it
	// has already been in without reaching a terminal node.
	ErrNoTerminal = errors.New("network: walk never reaches a terminal node")
)

// Instruction says which way to go at a fork.
type Instruction byte

const (
	Left  Instruction = 'L'
	Right Instruction = 'R'
)

func (i Instruction) String() string {
	return string(i)
}

// Fork is the pair of nodes reachable from a node.
type Fork struct {
	Left, Right string
}

// Take returns the node i leads to.
func (f Fork) Take(i Instruction) string {
	if i == Left {
		return f.Left
	}
	return f.Right
}

// Network is a set of nodes along with the instructions to walk them by.
// The instructions repeat forever.
type Network struct {
	Instructions []Instruction
	Nodes        map[string]Fork
}

var nodeRx = regexp.MustCompile(`^(\w+)\s*=\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)$`)

// Parse parses a line of instructions followed by a blank line and one
// "AAA = (BBB, CCC)" line per node.
func Parse(input string) (*Network, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	head := strings.TrimSpace(lines[0])
	if head == "" {
		return nil, ErrNoInstructions
	}
	n := &Network{
		Instructions: make([]Instruction, 0, len(head)),
		Nodes:        make(map[string]Fork),
	}
	for i, r := range head {
		switch in := Instruction(r); in {
		case Left, Right:
			n.Instructions = append(n.Instructions, in)
		default:
			return nil, fmt.Errorf("%w %q at %d", ErrInvalidInstruction, r, i)
		}
	}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := nodeRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNode, line)
		}
		if _, dup := n.Nodes[m[1]]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateNode, m[1])
		}
		n.Nodes[m[1]] = Fork{Left: m[2], Right: m[3]}
	}
	if len(n.Nodes) == 0 {
		return nil, ErrNoNodes
	}
	for _, label := range n.labels() {
		f := n.Nodes[label]
		for _, next := range []string{f.Left, f.Right} {
			if _, ok := n.Nodes[next]; !ok {
				return nil, fmt.Errorf("%w %q, reached from %q", ErrUnknownNode, next, label)
			}
		}
	}
	return n, nil
}

// labels returns the node labels in sorted order.
func (n *Network) labels() []string {
	labels := maps.Keys(n.Nodes)
	slices.Sort(labels)
	return labels
}

// position is where a walk is: the node it is at and the instruction it
// is about to follow.
type position struct {
	label string
	ix    int
}

// Walk follows the instructions from start until done reports true for
// the current node, and returns the number of steps taken.
func (n *Network) Walk(start string, done func(label string) bool) (int, error) {
	if len(n.Instructions) == 0 {
		return 0, ErrNoInstructions
	}
	seen := make(map[position]bool)
	label := start
	steps := 0
	for ; !done(label); steps++ {
		ix := steps % len(n.Instructions)
		pos := position{label, ix}
		if seen[pos] {
			return 0, fmt.Errorf("%w: from %q, back at %q after %d steps", ErrNoTerminal, start, label, steps)
		}
		seen[pos] = true
		f, ok := n.Nodes[label]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownNode, label)
		}
		label = f.Take(n.Instructions[ix])
	}
	return steps, nil
}

// WalkSingle returns the number of steps from start to end.
func (n *Network) WalkSingle(start, end string) (int, error) {
	for _, l := range []string{start, end} {
		if _, ok := n.Nodes[l]; !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownNode, l)
		}
	}
	return n.Walk(start, func(label string) bool { return label == end })
}

// Periods walks from every node whose label ends in startSuffix until it
// reaches a node whose label ends in endSuffix. It returns the number of
// steps taken by each walk, by start label.
func (n *Network) Periods(startSuffix, endSuffix string) (map[string]int, error) {
	done := func(label string) bool { return strings.HasSuffix(label, endSuffix) }
	out := make(map[string]int)
	for _, label := range n.labels() {
		if !strings.HasSuffix(label, startSuffix) {
			continue
		}
		steps, err := n.Walk(label, done)
		if err != nil {
			return nil, err
		}
		out[label] = steps
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no label ends in %q", ErrNoStart, startSuffix)
	}
	return out, nil
}

// WalkParallel returns the number of steps after which walks started at
// every node ending in startSuffix are all at nodes ending in endSuffix.
//
// Each walk is assumed to loop back to its first terminal node every time
// it takes that many steps, so the answer is the least common multiple of
// the walks' periods.
func (n *Network) WalkParallel(startSuffix, endSuffix string) (int, error) {
	periods, err := n.Periods(startSuffix, endSuffix)
	if err != nil {
		return 0, err
	}
	return aoc.LCM(maps.Values(periods)...), nil
}
