package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrIDRequired indicates no task id was provided.
var ErrIDRequired = errors.New("task id required")

// ParseID parses a task id typed by the user.
//
// Accepted forms:
// 1. All digits (e.g. 3, 012)
// 2. Digits prefixed with # (e.g. #3)
// Ids start at 1; 0 and anything else is an invalid task id.
func ParseID(raw string) (int, error) {
	if raw == "" {
		return 0, ErrIDRequired
	}

	digits := strings.TrimPrefix(raw, "#")
	if !isAllDigits(digits) {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}

	id, err := strconv.Atoi(digits)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
