package aoc

// Priority returns the priority of an item letter: a through z are 1
// through 26, A through Z are 27 through 52.
func Priority(r rune) (int, error) {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 1, nil
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, Malformed("%q has no priority", r)
}
