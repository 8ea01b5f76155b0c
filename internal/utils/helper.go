package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive integer path parameter.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return id, nil
}
