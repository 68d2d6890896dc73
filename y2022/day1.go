package main

import "github.com/tallyfold/aoc"

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return mostCalories(text, aoc.MaxMode)
}

// want=45000
func (s solver) D1p2() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return mostCalories(text, aoc.TopN(3))
}

// elfCalories returns the calories carried by each elf, in input order.
func elfCalories(text string) ([]int, error) {
	return aoc.ParseRecords(text, aoc.ByBlankLine, func(group string) (int, error) {
		items, err := aoc.ParseRecords(group, aoc.ByLine, aoc.ParseDigits)
		if err != nil {
			return 0, err
		}
		return aoc.CheckedSum(items...)
	})
}

func mostCalories(text string, mode aoc.Mode) (int, error) {
	totals, err := elfCalories(text)
	if err != nil {
		return 0, err
	}
	return aoc.Aggregate(totals, mode)
}
