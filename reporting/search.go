package reporting

import (
	"errors"
	"strings"
)

const (
	searchMinLen = 2
	searchMaxLen = 100
)

// ValidateSearchTerm trims and bounds-checks a search query. Terms shorter
// than two characters or longer than a hundred are rejected.
func ValidateSearchTerm(raw string) (string, error) {
	term := strings.TrimSpace(raw)
	if len(term) < searchMinLen {
		return "", errors.New("search query must be at least 2 characters")
	}
	if len(term) > searchMaxLen {
		return "", errors.New("search query must be at most 100 characters")
	}
	return term, nil
}
