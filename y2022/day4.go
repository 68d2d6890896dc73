package main

import "github.com/tallyfold/aoc"

type pair struct {
	a, b aoc.Range[int]
}

func parsePair(line string) (pair, error) {
	l, r, err := aoc.Split2(line, aoc.ByDelim(",", 2))
	if err != nil {
		return pair{}, err
	}
	a, err := aoc.ParseRange(l)
	if err != nil {
		return pair{}, err
	}
	b, err := aoc.ParseRange(r)
	if err != nil {
		return pair{}, err
	}
	return pair{a, b}, nil
}

func countPairs(text string, f func(p pair) bool) (int, error) {
	pairs, err := aoc.ParseRecords(text, aoc.ByLine, parsePair)
	if err != nil {
		return 0, err
	}
	return aoc.Count(pairs, f), nil
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return countPairs(text, func(p pair) bool {
		return p.a.FullyOverlaps(p.b)
	})
}

// want=4
func (s solver) D4p2() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return countPairs(text, func(p pair) bool {
		return p.a.Overlaps(p.b)
	})
}
