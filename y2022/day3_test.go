package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallyfold/aoc"
)

var day3Sample = []string{
	"vJrwpWtwJgWrhcsFMMfFFhFp",
	"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL",
	"PmmdzqPrVvPwwTWBwg",
	"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn",
	"ttgJtRGJQctTZtZT",
	"CrZsJsPPZsGzwwsLwLmpwMDw",
}

func TestCompartmentPriority(t *testing.T) {
	want := []int{16, 38, 42, 22, 20, 19}
	for i, line := range day3Sample {
		got, err := compartmentPriority(line)
		require.NoError(t, err, line)
		assert.Equal(t, want[i], got, line)
	}
}

func TestBadgePriorities(t *testing.T) {
	got, err := badgePriorities(day3Sample)
	require.NoError(t, err)
	assert.Equal(t, []int{18, 52}, got)
	assert.Equal(t, 70, aoc.Sum(got...))

	_, err = badgePriorities(day3Sample[:4])
	assert.ErrorIs(t, err, aoc.ErrMalformedInput)
}

func TestSharedItem(t *testing.T) {
	r, err := sharedItem("abc", "cde", "xcz")
	require.NoError(t, err)
	assert.Equal(t, 'c', r)

	for _, lists := range [][]string{
		nil,
		{"abc", "def"},
		{"abc", "bca"},
	} {
		_, err := sharedItem(lists...)
		assert.ErrorIs(t, err, aoc.ErrMalformedInput, "lists %q", lists)
	}
}

func TestCompartmentPriorityMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "ab", "1x1y"} {
		_, err := compartmentPriority(in)
		assert.ErrorIs(t, err, aoc.ErrMalformedInput, "input %q", in)
	}
}
