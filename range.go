package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is the closed interval [Lo, Hi].
type Range[T constraints.Integer] struct {
	Lo, Hi T
}

// ParseRange parses "lo-hi" with lo <= hi.
func ParseRange(s string) (Range[int], error) {
	lo, hi, err := Split2(s, ByDelim("-", 2))
	if err != nil {
		return Range[int]{}, err
	}
	ns, err := ParseInts(lo, hi)
	if err != nil {
		return Range[int]{}, fmt.Errorf("range %q: %w", s, err)
	}
	if ns[0] > ns[1] {
		return Range[int]{}, Malformed("range %q: low end above high end", s)
	}
	return Range[int]{Lo: ns[0], Hi: ns[1]}, nil
}

// Contains reports whether every point of o lies in r.
func (r Range[T]) Contains(o Range[T]) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// FullyOverlaps reports whether r contains o or o contains r.
func (r Range[T]) FullyOverlaps(o Range[T]) bool {
	return r.Contains(o) || o.Contains(r)
}

// Overlaps reports whether r and o share at least one point.
func (r Range[T]) Overlaps(o Range[T]) bool {
	return (r.Lo <= o.Lo && o.Lo <= r.Hi) || (o.Lo <= r.Lo && r.Lo <= o.Hi)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}
