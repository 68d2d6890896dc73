package main

import (
	"fmt"
	"strings"

	"github.com/tallyfold/aoc"
)

type choice int

const (
	rock choice = iota
	paper
	scissors
)

func (c choice) score() int { return int(c) + 1 }

func (c choice) String() string {
	switch c {
	case rock:
		return "rock"
	case paper:
		return "paper"
	case scissors:
		return "scissors"
	}
	return fmt.Sprintf("choice(%d)", int(c))
}

type outcome int

const (
	loss outcome = iota
	draw
	win
)

func (o outcome) score() int { return int(o) * 3 }

func (o outcome) String() string {
	switch o {
	case loss:
		return "loss"
	case draw:
		return "draw"
	case win:
		return "win"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// outcomes[a][b] is the outcome for the player choosing b against a.
var outcomes = [3][3]outcome{
	rock:     {rock: draw, paper: win, scissors: loss},
	paper:    {rock: loss, paper: draw, scissors: win},
	scissors: {rock: win, paper: loss, scissors: draw},
}

// score returns the points mine earns in a round against theirs.
func score(theirs, mine choice) int {
	return mine.score() + outcomes[theirs][mine].score()
}

// choiceFor returns the choice that gets want against theirs.
func choiceFor(theirs choice, want outcome) (choice, error) {
	if theirs < rock || theirs > scissors {
		return 0, aoc.Malformed("unknown choice %v", theirs)
	}
	for c, o := range outcomes[theirs] {
		if o == want {
			return choice(c), nil
		}
	}
	return 0, aoc.Malformed("no choice gets %v against %v", want, theirs)
}

// A round is one line of the strategy guide. col is the index of the
// second column's letter in "XYZ", read as a choice in part 1 and as an
// outcome in part 2.
type round struct {
	theirs choice
	col    int
}

func parseRound(line string) (round, error) {
	a, b, err := aoc.Split2(line, aoc.ByDelim(" ", 2))
	if err != nil {
		return round{}, err
	}
	theirs, err := letterIndex(a, "ABC")
	if err != nil {
		return round{}, err
	}
	col, err := letterIndex(b, "XYZ")
	if err != nil {
		return round{}, err
	}
	return round{theirs: choice(theirs), col: col}, nil
}

func letterIndex(s, alphabet string) (int, error) {
	r, err := aoc.ParseLetter(s)
	if err != nil {
		return 0, err
	}
	i := strings.IndexRune(alphabet, r)
	if i < 0 {
		return 0, aoc.Malformed("%q is not one of %q", r, alphabet)
	}
	return i, nil
}

func totalScore(text string, pick func(round) (choice, error)) (int, error) {
	rounds, err := aoc.ParseRecords(text, aoc.ByLine, parseRound)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, r := range rounds {
		mine, err := pick(r)
		if err != nil {
			return 0, fmt.Errorf("round %d: %w", i+1, err)
		}
		total += score(r.theirs, mine)
	}
	return total, nil
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return totalScore(text, func(r round) (choice, error) {
		return choice(r.col), nil
	})
}

// want=12
func (s solver) D2p2() (any, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return totalScore(text, func(r round) (choice, error) {
		c, err := choiceFor(r.theirs, outcome(r.col))
		if err != nil {
			return 0, err
		}
		s.Debugf("against %v, %v needs %v", r.theirs, outcome(r.col), c)
		return c, nil
	})
}
