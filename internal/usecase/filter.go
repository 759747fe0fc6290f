package usecase

import "strings"

// Searchable exposes the string fields a free-text search matches against.
type Searchable interface {
	SearchFields() []string
}

// Filter keeps the records where term is a case-insensitive substring of at
// least one search field. A blank term keeps everything. Order is preserved
// and the input slice is never modified.
func Filter[T Searchable](records []T, term string) []T {
	out := make([]T, 0, len(records))
	if strings.TrimSpace(term) == "" {
		return append(out, records...)
	}
	needle := strings.ToLower(term)
	for _, r := range records {
		if matches(r.SearchFields(), needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
