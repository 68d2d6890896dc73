package aoc

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// CheckedSum is Sum for ints, failing with ErrMalformedInput instead of
// wrapping around.
func CheckedSum(nums ...int) (int, error) {
	var sum int
	for _, v := range nums {
		if (v > 0 && sum > math.MaxInt-v) || (v < 0 && sum < math.MinInt-v) {
			return 0, Malformed("sum overflows int after %d", sum)
		}
		sum += v
	}
	return sum, nil
}

// Max returns the largest of nums.
func Max[T Number](nums []T) (T, error) {
	if len(nums) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: max of no values", ErrInsufficientRecords)
	}
	return slices.Max(nums), nil
}

// TopNSum returns the sum of the n largest of nums. nums is not modified.
func TopNSum[T Number](nums []T, n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, fmt.Errorf("top %d: n must not be negative", n)
	}
	if len(nums) < n {
		return zero, fmt.Errorf("%w: top %d of %d values", ErrInsufficientRecords, n, len(nums))
	}
	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	return Sum(sorted[len(sorted)-n:]...), nil
}

// Count returns the number of elements of in for which f is true.
func Count[T any](in []T, f func(T) bool) int {
	return Fold(in, func(n int, v T) int {
		if f(v) {
			n++
		}
		return n
	}, 0)
}

// Fold folds in into defVal with f, in order.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

type modeKind int

const (
	modeSum modeKind = iota
	modeMax
	modeTopN
)

// Mode selects how Aggregate folds its values. The zero Mode is SumMode.
type Mode struct {
	kind modeKind
	n    int
}

var (
	// SumMode adds up all values.
	SumMode = Mode{kind: modeSum}
	// MaxMode picks the largest value.
	MaxMode = Mode{kind: modeMax}
)

// TopN sums the n largest values.
func TopN(n int) Mode {
	return Mode{kind: modeTopN, n: n}
}

func (m Mode) String() string {
	switch m.kind {
	case modeSum:
		return "sum"
	case modeMax:
		return "max"
	case modeTopN:
		return fmt.Sprintf("top%d", m.n)
	}
	return fmt.Sprintf("Mode(%d)", m.kind)
}

// Aggregate folds values into a single total according to mode.
func Aggregate[T Number](values []T, mode Mode) (T, error) {
	switch mode.kind {
	case modeSum:
		return Sum(values...), nil
	case modeMax:
		return Max(values)
	case modeTopN:
		return TopNSum(values, mode.n)
	}
	var zero T
	return zero, fmt.Errorf("unknown aggregation %v", mode)
}
