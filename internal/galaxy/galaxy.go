// Package galaxy measures the distances between galaxies in an image of
// an expanding universe (Advent of Code 2023, day 11).
package galaxy

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var (
	ErrEmpty          = errors.New("galaxy: empty image")
	ErrInvalidTile    = errors.New("galaxy: invalid tile")
	ErrNotRectangular = errors.New("galaxy: rows differ in width")
)

// Image is a picture of space. A true cell holds a galaxy.
type Image struct {
	grid     aoc.Grid[bool]
	galaxies []aoc.Pt
}

// Parse parses rows of '.' (empty space) and '#' (galaxy).
func Parse(input string) (*Image, error) {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil, ErrEmpty
	}
	lines := strings.Split(input, "\n")
	width := len(lines[0])
	img := &Image{grid: aoc.MakeGrid[bool](width, len(lines))}
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrNotRectangular, y, len(line), width)
		}
		for x, r := range line {
			switch r {
			case '.':
			case '#':
				p := aoc.Pt{X: x, Y: y}
				img.grid.Set(p, true)
				img.galaxies = append(img.galaxies, p)
			default:
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrInvalidTile, r, y, x)
			}
		}
	}
	return img, nil
}

// Galaxies returns the galaxy positions in row-major order.
func (img *Image) Galaxies() []aoc.Pt {
	return slices.Clone(img.galaxies)
}

// Expand returns the galaxy positions after every row and column without
// a galaxy has grown to scale rows or columns. scale must be at least 1.
func (img *Image) Expand(scale int) []aoc.Pt {
	if scale < 1 {
		panic(fmt.Sprintf("galaxy: scale %d < 1", scale))
	}
	dy := shifts(img.grid, scale)
	dx := shifts(img.grid.Transpose(), scale)
	out := make([]aoc.Pt, len(img.galaxies))
	for i, g := range img.galaxies {
		out[i] = aoc.Pt{X: g.X + dx[g.X], Y: g.Y + dy[g.Y]}
	}
	return out
}

// Distances returns the sum of the shortest distances between every pair
// of galaxies after expanding the image by scale.
func (img *Image) Distances(scale int) int {
	pts := img.Expand(scale)
	sum := 0
	for i, a := range pts {
		for _, b := range pts[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}

// shifts returns, for each row of g, how far it moves once the empty rows
// above it have grown to scale rows.
func shifts(g aoc.Grid[bool], scale int) []int {
	out := make([]int, len(g))
	shift := 0
	for y, row := range g {
		out[y] = shift
		if !slices.Contains(row, true) {
			shift += scale - 1
		}
	}
	return out
}
