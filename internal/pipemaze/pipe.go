package pipemaze

import (
	aoc "github.com/maisem/aoc2023"
)

// Compass names for the grid directions.
const (
	North = aoc.Up
	East  = aoc.Right
	South = aoc.Down
	West  = aoc.Left
)

// Kind is the shape of a tile.
type Kind byte

const (
	Ground Kind = iota
	NorthSouth
	EastWest
	NorthEast
	NorthWest
	SouthWest
	SouthEast
	Start
)

var kindByTile = map[rune]Kind{
	'.': Ground,
	'|': NorthSouth,
	'-': EastWest,
	'L': NorthEast,
	'J': NorthWest,
	'7': SouthWest,
	'F': SouthEast,
	'S': Start,
}

// tiles are the input characters of each Kind, indexed by Kind.
const tiles = ".|-LJ7FS"

func (k Kind) String() string {
	if int(k) >= len(tiles) {
		return "?"
	}
	return tiles[k : k+1]
}

// openings are the two sides of a pipe that connect to its neighbours.
// Ground and Start have none.
var openings = map[Kind][2]aoc.Direction{
	NorthSouth: {North, South},
	EastWest:   {East, West},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthWest:  {South, West},
	SouthEast:  {South, East},
}

// Accepts reports whether a walk travelling in dir may enter a tile of
// kind k, which is when k has an opening on the side it is entered from.
func (k Kind) Accepts(dir aoc.Direction) bool {
	o, ok := openings[k]
	if !ok {
		return false
	}
	from := dir.Reverse()
	return o[0] == from || o[1] == from
}

// Next returns the direction a walk leaves a tile of kind k after entering
// it travelling in dir. It reports false if k does not accept dir.
func (k Kind) Next(dir aoc.Direction) (aoc.Direction, bool) {
	if !k.Accepts(dir) {
		return 0, false
	}
	o := openings[k]
	if o[0] == dir.Reverse() {
		return o[1], true
	}
	return o[0], true
}
