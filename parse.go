package aoc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A SplitRule splits text into its records, or a record into its fields.
type SplitRule func(s string) ([]string, error)

var (
	// ByLine yields one element per line. Trailing newlines do not
	// produce empty records and "\r\n" line endings are accepted.
	ByLine SplitRule = splitLines

	// ByBlankLine yields one element per group of lines, groups being
	// separated by a single blank line. Each element keeps its inner
	// newlines.
	ByBlankLine SplitRule = splitGroups

	// ByHalves splits s into two halves of equal length.
	ByHalves SplitRule = splitHalves

	// ByFields splits s around runs of whitespace.
	ByFields SplitRule = splitFields
)

// ByDelim splits s around sep, which must yield exactly n fields.
func ByDelim(sep string, n int) SplitRule {
	return func(s string) ([]string, error) {
		parts := strings.Split(s, sep)
		if len(parts) != n {
			return nil, Malformed("%q: want %d fields separated by %q, got %d", s, n, sep, len(parts))
		}
		return parts, nil
	}
}

// Split splits s according to rule.
func Split(s string, rule SplitRule) ([]string, error) {
	return rule(s)
}

// Split2 splits s according to rule, which must yield exactly two parts.
func Split2(s string, rule SplitRule) (string, string, error) {
	parts, err := rule(s)
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 {
		return "", "", Malformed("%q: want 2 parts, got %d", s, len(parts))
	}
	return parts[0], parts[1], nil
}

// ParseRecords splits text by rule and parses every part with parse. It
// returns either all the records, in input order, or an error naming the
// first record that failed.
func ParseRecords[R any](text string, rule SplitRule, parse func(string) (R, error)) ([]R, error) {
	parts, err := rule(text)
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(parts))
	for i, part := range parts {
		r, err := parse(part)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func splitLines(s string) ([]string, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

func splitGroups(s string) ([]string, error) {
	lines, _ := splitLines(s)
	var (
		groups []string
		cur    []string
	)
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			cur = append(cur, line)
			continue
		}
		if len(cur) == 0 {
			return nil, Malformed("line %d: empty group", i+1)
		}
		groups = append(groups, strings.Join(cur, "\n"))
		cur = nil
	}
	if len(cur) > 0 {
		groups = append(groups, strings.Join(cur, "\n"))
	}
	return groups, nil
}

func splitHalves(s string) ([]string, error) {
	if s == "" || len(s)%2 != 0 {
		return nil, Malformed("%q: cannot split %d bytes into equal halves", s, len(s))
	}
	h := len(s) / 2
	return []string{s[:h], s[h:]}, nil
}

func splitFields(s string) ([]string, error) {
	return strings.Fields(s), nil
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, Malformed("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, err := Digit(c)
		if err != nil {
			return nil, err
		}
		in = append(in, d)
	}
	return in, nil
}

// ParseDigits returns the number spelled by a non-empty string of decimal
// digits. Signs, spaces and separators are rejected.
func ParseDigits(s string) (int, error) {
	if s == "" {
		return 0, Malformed("empty number")
	}
	if _, err := Digits(s); err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, Malformed("%q does not fit in an int", s)
	}
	return int(n), nil
}

// ParseInt returns the int value of the string, ignoring surrounding
// space.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("%q is not an integer", s)
	}
	return n, nil
}

// ParseInts parses each of s with ParseInt.
func ParseInts(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := ParseInt(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseLetter returns the only rune of s.
func ParseLetter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, Malformed("%q: want a single character", s)
	}
	return r, nil
}
