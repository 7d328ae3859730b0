package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidGlobalID indicates a value that is neither a prefixed global ID
// (e.g. "NB12345") nor a plain numeric ID.
var ErrInvalidGlobalID = errors.New("invalid global id")

// NumericID extracts the numeric part of an RSpace identifier. It accepts
// both prefixed global IDs ("NB12345", "SD1932") and plain numeric strings.
func NumericID(id string) (int64, error) {
	id = strings.TrimSpace(id)

	digits := strings.TrimLeftFunc(id, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
	if digits == "" || len(id)-len(digits) > 2 {
		return 0, ErrInvalidGlobalID
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidGlobalID
	}
	return n, nil
}
