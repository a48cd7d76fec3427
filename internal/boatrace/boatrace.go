// Package boatrace counts the ways to win toy boat races (Advent of Code
// 2023, day 6).
package boatrace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

var (
	ErrMalformed = errors.New("boatrace: malformed input")
	ErrMismatch  = errors.New("boatrace: times and distances differ in count")
)

// Race is a race lasting Time milliseconds whose record is Distance
// millimeters. Holding the button for h milliseconds moves the boat
// h*(Time-h) millimeters.
type Race struct {
	Time     int
	Distance int
}

// Ways returns the number of whole hold times that beat the record.
func (r Race) Ways() int {
	// h*(T-h) > D  <=>  h^2 - T*h + D < 0
	lo, hi, ok := aoc.Roots(1, -float64(r.Time), float64(r.Distance))
	if !ok {
		return 0
	}
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	first = max(first, 0)
	last = min(last, r.Time)
	if last < first {
		return 0
	}
	return last - first + 1
}

// Margin returns the product of the ways to win each race.
func Margin(races []Race) int {
	m := 1
	for _, r := range races {
		m *= r.Ways()
	}
	return m
}

// Parse reads a "Time:" row and a "Distance:" row of space separated
// numbers, one column per race.
func Parse(input string) ([]Race, error) {
	times, dists, err := rows(input)
	if err != nil {
		return nil, err
	}
	ts, err := numbers(times)
	if err != nil {
		return nil, err
	}
	ds, err := numbers(dists)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(ds) {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrMismatch, len(ts), len(ds))
	}
	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: ts[i], Distance: ds[i]}
	}
	return races, nil
}

// ParseKerned reads the same rows as Parse but ignores the spaces, so
// that each row is a single number describing one long race.
func ParseKerned(input string) (Race, error) {
	times, dists, err := rows(input)
	if err != nil {
		return Race{}, err
	}
	t, err := number(strings.Join(strings.Fields(times), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := number(strings.Join(strings.Fields(dists), ""))
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Distance: d}, nil
}

func rows(input string) (times, dists string, _ error) {
	var rest []string
	err := aoc.ForLines(input, func(_ int, line string) error {
		if line = strings.TrimSpace(line); line != "" {
			rest = append(rest, line)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	var ok bool
	if len(rest) != 2 {
		return "", "", fmt.Errorf("%w: want 2 rows, got %d", ErrMalformed, len(rest))
	}
	if times, ok = strings.CutPrefix(rest[0], "Time:"); !ok {
		return "", "", fmt.Errorf("%w: missing Time row", ErrMalformed)
	}
	if dists, ok = strings.CutPrefix(rest[1], "Distance:"); !ok {
		return "", "", fmt.Errorf("%w: missing Distance row", ErrMalformed)
	}
	return times, dists, nil
}

func numbers(row string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(row) {
		n, err := number(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, s)
	}
	return n, nil
}
