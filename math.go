package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) T {
	var total T
	for _, v := range nums {
		total += v
	}
	return total
}

// Roots returns the real roots of a*x^2 + b*x + c = 0 with lo <= hi. It
// reports false if there are none. a must not be zero.
func Roots(a, b, c float64) (lo, hi float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	lo, hi = (-b-sq)/(2*a), (-b+sq)/(2*a)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of nums. It panics if nums is
// empty.
func LCM(nums ...int) int {
	if len(nums) == 0 {
		panic("aoc: LCM of nothing")
	}
	out := nums[0]
	for _, n := range nums[1:] {
		out = out / GCD(out, n) * n
	}
	return out
}

// Extrapolate returns the value that follows seq, or the one that precedes
// it if forward is false, by repeatedly taking differences until they are
// all zero.
func Extrapolate[T Number](seq []T, forward bool) T {
	var out T
	sign := T(1)
	row := slices.Clone(seq)
	for slices.ContainsFunc(row, func(v T) bool { return v != 0 }) {
		if forward {
			out += row[len(row)-1]
		} else {
			out += sign * row[0]
			sign = -sign
		}
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
		}
		row = row[:len(row)-1]
	}
	return out
}

// Polygon is a closed lattice polygon: the last vertex repeats the first.
// Vertices may also be every boundary point in order.
type Polygon []Pt

// Area returns the area enclosed by poly, by the shoelace formula.
func (poly Polygon) Area() int {
	twice := 0
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		twice += a.X*b.Y - a.Y*b.X
	}
	return abs(twice) / 2
}

// Perimeter returns the number of lattice points on the boundary of poly,
// which must have only horizontal and vertical edges.
func (poly Polygon) Perimeter() int {
	n := 0
	for i := 1; i < len(poly); i++ {
		n += poly[i-1].MDist(poly[i])
	}
	return n
}

// Interior returns the number of lattice points strictly inside poly.
func (poly Polygon) Interior() int {
	// Pick's theorem: A = i + b/2 - 1.
	return poly.Area() - poly.Perimeter()/2 + 1
}
