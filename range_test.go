package aoc

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2-8")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Range[int]{Lo: 2, Hi: 8}); r != want {
		t.Errorf(`ParseRange("2-8") = %v; want %v`, r, want)
	}
	for _, in := range []string{"", "2", "2-", "a-b", "8-2", "1-2-3"} {
		if _, err := ParseRange(in); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("ParseRange(%q) error = %v; want ErrMalformedInput", in, err)
		}
	}
}

func TestRangeRelations(t *testing.T) {
	tests := []struct {
		a, b          Range[int]
		contains      bool
		fullyOverlaps bool
		overlaps      bool
	}{
		{Range[int]{2, 4}, Range[int]{6, 8}, false, false, false},
		{Range[int]{2, 3}, Range[int]{4, 5}, false, false, false},
		{Range[int]{5, 7}, Range[int]{7, 9}, false, false, true},
		{Range[int]{2, 8}, Range[int]{3, 7}, true, true, true},
		{Range[int]{6, 6}, Range[int]{4, 6}, false, true, true},
		{Range[int]{4, 6}, Range[int]{6, 6}, true, true, true},
		{Range[int]{2, 6}, Range[int]{4, 8}, false, false, true},
	}
	for _, tt := range tests {
		if got := tt.a.Contains(tt.b); got != tt.contains {
			t.Errorf("%v.Contains(%v) = %v; want %v", tt.a, tt.b, got, tt.contains)
		}
		if got := tt.a.FullyOverlaps(tt.b); got != tt.fullyOverlaps {
			t.Errorf("%v.FullyOverlaps(%v) = %v; want %v", tt.a, tt.b, got, tt.fullyOverlaps)
		}
		if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
			t.Errorf("%v.Overlaps(%v) = %v; want %v", tt.a, tt.b, got, tt.overlaps)
		}
	}
}

// ranges returns every range with ends in [0, n).
func ranges(n uint) []Range[uint] {
	var out []Range[uint]
	for lo := uint(0); lo < n; lo++ {
		for hi := lo; hi < n; hi++ {
			out = append(out, Range[uint]{lo, hi})
		}
	}
	return out
}

func TestContainsOrdered(t *testing.T) {
	const n = 6
	for a := uint(0); a < n; a++ {
		for b := a; b < n; b++ {
			for c := b; c < n; c++ {
				for d := c; d < n; d++ {
					outer, inner := Range[uint]{a, d}, Range[uint]{b, c}
					if !outer.Contains(inner) {
						t.Errorf("%v does not contain %v", outer, inner)
					}
					if got, want := inner.Contains(outer), a == b && c == d; got != want {
						t.Errorf("%v.Contains(%v) = %v; want %v", inner, outer, got, want)
					}
				}
			}
		}
	}
}

func TestRelationsSymmetric(t *testing.T) {
	all := ranges(7)
	for _, x := range all {
		for _, y := range all {
			if x.Overlaps(y) != y.Overlaps(x) {
				t.Errorf("Overlaps not symmetric for %v, %v", x, y)
			}
			if x.FullyOverlaps(y) != y.FullyOverlaps(x) {
				t.Errorf("FullyOverlaps not symmetric for %v, %v", x, y)
			}
			if x.FullyOverlaps(y) && !x.Overlaps(y) {
				t.Errorf("%v fully overlaps %v without overlapping it", x, y)
			}
			shared := false
			for p := x.Lo; p <= x.Hi; p++ {
				if y.Lo <= p && p <= y.Hi {
					shared = true
				}
			}
			if x.Overlaps(y) != shared {
				t.Errorf("%v.Overlaps(%v) = %v; shared point: %v", x, y, x.Overlaps(y), shared)
			}
		}
	}
}
