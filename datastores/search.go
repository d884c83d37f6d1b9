package datastores

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Matches reports whether c satisfies a search query. An empty query matches
// everything. Otherwise the query must be a case-insensitive substring of the
// first name, last name or full name, or be within one edit per four runes of
// the first or last name.
func Matches(c *Contact, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	first, last := strings.ToLower(c.First), strings.ToLower(c.Last)
	full := strings.TrimSpace(first + " " + last)
	for _, s := range []string{first, last, full} {
		if s != "" && strings.Contains(s, query) {
			return true
		}
	}

	tolerance := utf8.RuneCountInString(query) / 4 //nolint: mnd // one typo per four runes
	if tolerance == 0 {
		return false
	}
	for _, s := range []string{first, last} {
		if s != "" && levenshtein.ComputeDistance(s, query) <= tolerance {
			return true
		}
	}
	return false
}
