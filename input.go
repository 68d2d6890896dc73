package aoc

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadText returns the contents of the file at path. The whole file is
// read before returning.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMissingInput, err)
	}
	if !utf8.Valid(b) {
		return "", Malformed("%s is not UTF-8", path)
	}
	return string(b), nil
}
