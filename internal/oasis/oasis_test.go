package oasis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestParse(t *testing.T) {
	h, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, h, 3)
	assert.Equal(t, []int{1, 3, 6, 10, 15, 21}, h[1])

	h, err = Parse("-4 -2 0\r\n\n5\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-4, -2, 0}, {5}}, h)

	_, err = Parse("1 2 3\n4 five 6\n")
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		history    []int
		prev, next int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, -3, 18},
		{[]int{1, 3, 6, 10, 15, 21}, 0, 28},
		{[]int{10, 13, 16, 21, 30, 45}, 5, 68},
		{[]int{7}, 7, 7},
		{[]int{-1, -1, -1}, -1, -1},
	}
	for _, tt := range tests {
		h := [][]int{tt.history}
		assert.Equal(t, tt.next, Next(h), "Next(%v)", tt.history)
		assert.Equal(t, tt.prev, Prev(h), "Prev(%v)", tt.history)
	}
}

func TestSample(t *testing.T) {
	h, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 114, Next(h))
	assert.Equal(t, 2, Prev(h))
}
