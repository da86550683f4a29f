// Package query holds the store-independent parts of list queries: the page
// window, page counting and the escaping of caller supplied search text.
package query

import (
	"math"
	"regexp"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxSearchLength bounds the search term accepted from callers.
	MaxSearchLength = 200
)

// Window is a normalized page request.
type Window struct {
	Page  int
	Limit int
}

// NewWindow clamps page and limit into range. A zero limit means the default.
func NewWindow(page, limit int) Window {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Window{Page: page, Limit: limit}
}

// Skip is the number of records before the first one on the page. Pages
// too far out to count saturate at math.MaxInt, which selects nothing.
func (w Window) Skip() int {
	if w.Limit > 0 && w.Page-1 > math.MaxInt/w.Limit {
		return math.MaxInt
	}
	return (w.Page - 1) * w.Limit
}

// TotalPages returns ceil(total/limit), or 0 when nothing matched.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NormalizeSearch trims the search term. An empty result means no filter.
func NormalizeSearch(s string) string {
	return strings.TrimSpace(s)
}

// RegexPattern turns search into a pattern matching it literally.
func RegexPattern(search string) string {
	return regexp.QuoteMeta(search)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern returns a LIKE/ILIKE pattern matching search as a substring,
// using backslash as the escape character.
func LikePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// Matches reports whether any field contains search, ignoring case.
func Matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
