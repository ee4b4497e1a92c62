package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive post id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be > 0, got %d", id)
	}
	return id, nil
}
