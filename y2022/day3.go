package main

import (
	"github.com/tallyfold/aoc"
	"tailscale.com/util/set"
)

// sharedItem returns the one item present in every list.
func sharedItem(lists ...string) (rune, error) {
	if len(lists) == 0 {
		return 0, aoc.Malformed("no item lists")
	}
	common := make(set.Set[rune])
	for _, r := range lists[0] {
		common.Add(r)
	}
	for _, l := range lists[1:] {
		next := make(set.Set[rune])
		for _, r := range l {
			if common.Contains(r) {
				next.Add(r)
			}
		}
		common = next
	}
	switch len(common) {
	case 0:
		return 0, aoc.Malformed("no item shared by %q", lists)
	case 1:
		for r := range common {
			return r, nil
		}
	}
	return 0, aoc.Malformed("%d items shared by %q", len(common), lists)
}

func compartmentPriority(line string) (int, error) {
	a, b, err := aoc.Split2(line, aoc.ByHalves)
	if err != nil {
		return 0, err
	}
	r, err := sharedItem(a, b)
	if err != nil {
		return 0, err
	}
	return aoc.Priority(r)
}

func badgePriorities(lines []string) ([]int, error) {
	if len(lines)%3 != 0 {
		return nil, aoc.Malformed("%d rucksacks do not split into groups of three", len(lines))
	}
	out := make([]int, 0, len(lines)/3)
	for i := 0; i < len(lines); i += 3 {
		r, err := sharedItem(lines[i : i+3]...)
		if err != nil {
			return nil, err
		}
		p, err := aoc.Priority(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	ps, err := aoc.ParseRecords(text, aoc.ByLine, compartmentPriority)
	if err != nil {
		return nil, err
	}
	return aoc.Sum(ps...), nil
}

// want=70
func (s solver) D3p2() (any, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	ps, err := badgePriorities(lines)
	if err != nil {
		return nil, err
	}
	return aoc.Sum(ps...), nil
}
