package boatrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Time:      7  15   30
Distance:  9  40  200
`

func TestParse(t *testing.T) {
	races, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)

	r, err := ParseKerned(sample)
	require.NoError(t, err)
	assert.Equal(t, Race{Time: 71530, Distance: 940200}, r)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", ErrMalformed},
		{"OneRow", "Time: 7 15", ErrMalformed},
		{"Swapped", "Distance: 9\nTime: 7\n", ErrMalformed},
		{"BadNumber", "Time: 7 x\nDistance: 9 40\n", ErrMalformed},
		{"Negative", "Time: 7\nDistance: -9\n", ErrMalformed},
		{"Mismatch", "Time: 7 15\nDistance: 9\n", ErrMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ParseKerned("Time:\nDistance: 9\n")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWays(t *testing.T) {
	tests := []struct {
		race Race
		want int
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{4, 4}, 0},  // best hold only ties the record
		{Race{4, 3}, 1},  // roots are whole numbers
		{Race{0, 0}, 0},
		{Race{3, 100}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.race.Ways(), "%+v", tt.race)
	}
}

func TestWaysMatchesBruteForce(t *testing.T) {
	for time := 0; time < 40; time++ {
		for dist := 0; dist < 120; dist += 7 {
			want := 0
			for h := 0; h <= time; h++ {
				if h*(time-h) > dist {
					want++
				}
			}
			r := Race{Time: time, Distance: dist}
			require.Equal(t, want, r.Ways(), "%+v", r)
		}
	}
}

func TestMargin(t *testing.T) {
	races, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 288, Margin(races))
	assert.Equal(t, 1, Margin(nil))
}
