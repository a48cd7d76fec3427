// Package oasis extrapolates the histories of an oasis sensor report
// (Advent of Code 2023, day 9).
package oasis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var ErrMalformed = errors.New("oasis: malformed history")

// Parse returns one history per non-blank line of input.
func Parse(input string) ([][]int, error) {
	var out [][]int
	err := aoc.ForLines(input, func(y int, line string) error {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil
		}
		h := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: line %d: %q", ErrMalformed, y+1, f)
			}
			h[i] = v
		}
		out = append(out, h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Next returns the sum of the values following each history.
func Next(histories [][]int) int {
	return extrapolate(histories, true)
}

// Prev returns the sum of the values preceding each history.
func Prev(histories [][]int) int {
	return extrapolate(histories, false)
}

func extrapolate(histories [][]int, forward bool) int {
	vals := make([]int, len(histories))
	for i, h := range histories {
		vals[i] = aoc.Extrapolate(h, forward)
	}
	return aoc.Sum(vals...)
}
