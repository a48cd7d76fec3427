// Package pipemaze traces the loop of pipes running through the start tile
// of a maze (Advent of Code 2023, day 10).
package pipemaze

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var (
	ErrEmpty          = errors.New("pipemaze: empty input")
	ErrInvalidTile    = errors.New("pipemaze: invalid tile")
	ErrNotRectangular = errors.New("pipemaze: rows differ in width")
	ErrNoStart        = errors.New("pipemaze: no start tile")
	ErrMultipleStarts = errors.New("pipemaze: more than one start tile")

	// ErrNoLoop is returned when no walk from the start tile leads back
	// to it.
	ErrNoLoop = errors.New("pipemaze: no loop through start")
	// ErrAmbiguousLoop is returned when walks from the start tile close
	// over more than one set of tiles.
	ErrAmbiguousLoop = errors.New("pipemaze: more than one loop through start")
)

// Cell is a tile of the maze along with the bookkeeping of the walks
// that passed through it.
type Cell struct {
	Kind Kind

	visited bool
	steps   []int
}

func (c *Cell) visit(step int) {
	c.visited = true
	c.steps = append(c.steps, step)
}

func (c *Cell) canEnter(dir aoc.Direction) bool {
	return !c.visited && c.Kind.Accepts(dir)
}

// Maze is a rectangular grid of tiles with exactly one start tile.
type Maze struct {
	grid  aoc.Grid[Cell]
	start aoc.Pt
	loop  []aoc.Pt // loop tiles after the start in walk order; set by Trace
}

// Parse parses a maze from rows of tiles.
func Parse(input string) (*Maze, error) {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, ErrEmpty
	}
	lines := strings.Split(input, "\n")
	width := len(strings.TrimSuffix(lines[0], "\r"))
	m := &Maze{grid: aoc.MakeGrid[Cell](width, len(lines))}
	found := false
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrNotRectangular, y, len(line), width)
		}
		for x, r := range line {
			k, ok := kindByTile[r]
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrInvalidTile, r, y, x)
			}
			if k == Start {
				if found {
					return nil, fmt.Errorf("%w: at %v and %v", ErrMultipleStarts, m.start, aoc.Pt{X: x, Y: y})
				}
				found = true
				m.start = aoc.Pt{X: x, Y: y}
			}
			m.grid[y][x].Kind = k
		}
	}
	if !found {
		return nil, ErrNoStart
	}
	return m, nil
}

// Start returns the position of the start tile.
func (m *Maze) Start() aoc.Pt {
	return m.start
}

// Size returns the width and height of the maze.
func (m *Maze) Size() aoc.Pt {
	return m.grid.Size()
}

// Kind returns the kind of the tile at p.
func (m *Maze) Kind(p aoc.Pt) Kind {
	return m.grid.At(p).Kind
}

// Steps returns the step counts recorded at p by the walks of the last
// Trace that made it around the loop.
func (m *Maze) Steps(p aoc.Pt) []int {
	return slices.Clone(m.grid.At(p).steps)
}

// Trace walks the loop through the start tile in both directions and
// returns the number of steps from the start to the farthest point of the
// loop.
func (m *Maze) Trace() (int, error) {
	m.reset()
	var loops [][]aoc.Pt
	for _, p := range m.probe() {
		if trail, ok := m.walk(p); ok {
			loops = append(loops, trail)
		}
	}
	if len(loops) == 0 {
		return 0, ErrNoLoop
	}
	for _, l := range loops[1:] {
		if !sameTiles(loops[0], l) {
			return 0, fmt.Errorf("%w: loops of %d and %d tiles", ErrAmbiguousLoop, len(loops[0])+1, len(l)+1)
		}
	}
	m.loop = loops[0]

	farthest := 0
	m.grid.ForEach(func(_ aoc.Pt, c Cell) {
		if len(c.steps) > 0 {
			farthest = max(farthest, slices.Min(c.steps))
		}
	})
	return farthest, nil
}

// probe returns the first step of a walk for every neighbour of the start
// tile that connects back to it, in east, north, west, south order.
func (m *Maze) probe() []aoc.Path {
	var out []aoc.Path
	for _, d := range []aoc.Direction{East, North, West, South} {
		p, ok := m.grid.Move(aoc.Path{Pt: m.start, Dir: d})
		if !ok {
			continue
		}
		if m.grid.Ptr(p.Pt).canEnter(d) {
			out = append(out, p)
		}
	}
	return out
}

// walk follows the pipes from p, which has just stepped off the start
// tile, recording the step count at every tile. It reports whether the
// walk made it back to the start, and if so the tiles it passed in order.
// The step counts of walks that hit a dead end are discarded.
func (m *Maze) walk(p aoc.Path) (trail []aoc.Pt, closed bool) {
	m.clearVisited()
	for step := 1; ; step++ {
		m.grid.Ptr(p.Pt).visit(step)
		trail = append(trail, p.Pt)

		dir, ok := m.grid.At(p.Pt).Kind.Next(p.Dir)
		if !ok {
			break
		}
		next, ok := m.grid.Move(aoc.Path{Pt: p.Pt, Dir: dir})
		if !ok {
			break
		}
		if next.Pt == m.start {
			return trail, true
		}
		if !m.grid.Ptr(next.Pt).canEnter(dir) {
			break
		}
		p = next
	}
	for _, pt := range trail {
		c := m.grid.Ptr(pt)
		c.steps = c.steps[:len(c.steps)-1]
	}
	return nil, false
}

func (m *Maze) clearVisited() {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x].visited = false
		}
	}
}

func (m *Maze) reset() {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x].visited = false
			m.grid[y][x].steps = nil
		}
	}
	m.loop = nil
}

func sameTiles(a, b []aoc.Pt) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[aoc.Pt]bool, len(a))
	for _, p := range a {
		in[p] = true
	}
	for _, p := range b {
		if !in[p] {
			return false
		}
	}
	return true
}

// Loop returns the tiles of the loop in walk order, starting and ending at
// the start tile. It traces the maze if that has not been done yet.
func (m *Maze) Loop() ([]aoc.Pt, error) {
	if m.loop == nil {
		if _, err := m.Trace(); err != nil {
			return nil, err
		}
	}
	out := make([]aoc.Pt, 0, len(m.loop)+2)
	out = append(out, m.start)
	out = append(out, m.loop...)
	return append(out, m.start), nil
}

// Enclosed returns the number of tiles enclosed by the loop.
func (m *Maze) Enclosed() (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return aoc.Polygon(loop).Interior(), nil
}
