package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyfold/aoc"
)

const day4Sample = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestDay4Sample(t *testing.T) {
	full, err := countPairs(day4Sample, func(p pair) bool { return p.a.FullyOverlaps(p.b) })
	require.NoError(t, err)
	assert.Equal(t, 2, full)

	overlapping, err := countPairs(day4Sample, func(p pair) bool { return p.a.Overlaps(p.b) })
	require.NoError(t, err)
	assert.Equal(t, 4, overlapping)
}

func TestParsePair(t *testing.T) {
	p, err := parsePair("2-8,3-7")
	require.NoError(t, err)
	assert.Equal(t, pair{aoc.Range[int]{Lo: 2, Hi: 8}, aoc.Range[int]{Lo: 3, Hi: 7}}, p)
	assert.True(t, p.a.FullyOverlaps(p.b))

	p, err = parsePair("2-4,6-8")
	require.NoError(t, err)
	assert.False(t, p.a.Overlaps(p.b))

	for _, in := range []string{"2-4;6-8", "2-4", "2-4,6-8,9-9", "2-4,x-8", "4-2,6-8"} {
		_, err := parsePair(in)
		assert.ErrorIs(t, err, aoc.ErrMalformedInput, "input %q", in)
	}
}
