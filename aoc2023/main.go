package main

import (
	"embed"
	"io/fs"
	"slices"

	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/boatrace"
	"github.com/maisem/aoc2023/internal/camelcards"
	"github.com/maisem/aoc2023/internal/galaxy"
	"github.com/maisem/aoc2023/internal/network"
	"github.com/maisem/aoc2023/internal/oasis"
	"github.com/maisem/aoc2023/internal/pipemaze"
)

func main() {
	aoc.Run(2023, source, aoc.MustGet(fs.Sub(inputs, "inputs")), &solver{})
}

//go:embed main.go
var source []byte

//go:embed inputs
var inputs embed.FS

type solver struct {
	*aoc.Puzzle
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	return boatrace.Margin(aoc.MustGet(boatrace.Parse(s.InputString())))
}

// want=71503
func (s solver) D6p2() any {
	return aoc.MustGet(boatrace.ParseKerned(s.InputString())).Ways()
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	hands := aoc.MustGet(camelcards.ParseHands(s.InputString(), false))
	return camelcards.Winnings(hands)
}

// want=5905
func (s solver) D7p2() any {
	hands := aoc.MustGet(camelcards.ParseHands(s.InputString(), true))
	if s.SampleMode {
		camelcards.Rank(hands)
		for i, h := range hands {
			s.Debugf("rank %d: %v", i+1, h)
		}
	}
	return camelcards.Winnings(hands)
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	n := aoc.MustGet(network.Parse(s.InputString()))
	return aoc.MustGet(n.WalkSingle("AAA", "ZZZ"))
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := aoc.MustGet(network.Parse(s.InputString()))
	if s.SampleMode {
		periods := aoc.MustGet(n.Periods("A", "Z"))
		for _, start := range sortedKeys(periods) {
			s.Debugf("%s reaches a terminal node after %d steps", start, periods[start])
		}
	}
	return aoc.MustGet(n.WalkParallel("A", "Z"))
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return oasis.Next(aoc.MustGet(oasis.Parse(s.InputString())))
}

// want=2
func (s solver) D9p2() any {
	return oasis.Prev(aoc.MustGet(oasis.Parse(s.InputString())))
}

/*
want=8

7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
*/
func (s solver) D10p1() any {
	m := aoc.MustGet(pipemaze.Parse(s.InputString()))
	return aoc.MustGet(m.Trace())
}

/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s solver) D10p2() any {
	m := aoc.MustGet(pipemaze.Parse(s.InputString()))
	return aoc.MustGet(m.Enclosed())
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return aoc.MustGet(galaxy.Parse(s.InputString())).Distances(2)
}

// want=82000210
func (s solver) D11p2() any {
	return aoc.MustGet(galaxy.Parse(s.InputString())).Distances(1_000_000)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
