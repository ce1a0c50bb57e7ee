package menu

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrBlank marks an input line holding only whitespace.
	ErrBlank = errors.New("blank input")
	// ErrNotANumber marks input that does not start with an integer.
	ErrNotANumber = errors.New("invalid input: please enter a number")
	// ErrInvalidChoice marks an integer with no matching menu entry.
	ErrInvalidChoice = errors.New("invalid choice")
)

// ParseChoice extracts the 32-bit integer at the start of input. Leading
// whitespace is skipped and anything after the digits is ignored.
func ParseChoice(input string) (int, error) {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)
	if s == "" {
		return 0, ErrBlank
	}
	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, ErrNotANumber
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, ErrNotANumber
	}
	return int(n), nil
}
