package aoc

// Pt is a cell position: X is the column and Y the row.
type Pt struct {
	X, Y int
}

// Add returns p moved by d.
func (p Pt) Add(d Pt) Pt {
	return Pt{p.X + d.X, p.Y + d.Y}
}

// MDist returns the manhattan distance between p and q.
func (p Pt) MDist(q Pt) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four grid directions, clockwise from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var deltas = [...]Pt{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Path is a point and the direction it is heading in.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Grid is a rectangular array of cells indexed as g[y][x].
type Grid[T any] [][]T

// MakeGrid returns a zeroed grid of the given width and height.
func MakeGrid[T any](width, height int) Grid[T] {
	g := make(Grid[T], height)
	for y := range g {
		g[y] = make([]T, width)
	}
	return g
}

// Size returns the width and height of g as a point.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

func (g Grid[T]) At(p Pt) T { return g[p.Y][p.X] }

// Ptr returns a pointer to the cell at p, for in-place updates.
func (g Grid[T]) Ptr(p Pt) *T { return &g[p.Y][p.X] }

func (g Grid[T]) Set(p Pt, v T) { g[p.Y][p.X] = v }

// InBounds reports whether p is a cell of g.
func (g Grid[T]) InBounds(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

// ForEach calls f for every cell of g in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Transpose returns a new grid whose rows are the columns of g.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.ForEach(func(p Pt, v T) {
		out[p.X][p.Y] = v
	})
	return out
}

// Move advances p one cell in its direction. It reports false if that
// would leave the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(deltas[p.Dir])
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}
