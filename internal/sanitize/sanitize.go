// Package sanitize neutralizes markup in free-text bookmark fields before
// they are returned to clients.
package sanitize

import (
	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips every HTML element from text, dropping the contents of
// script and style elements and escaping what remains. Plain punctuation
// such as & and " is returned as HTML entities.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text returns s with all markup neutralized. Text(Text(s)) == Text(s).
func (s *Sanitizer) Text(text string) string {
	return s.policy.Sanitize(text)
}

// Bookmark returns a copy of b with Title and Description sanitized.
func (s *Sanitizer) Bookmark(b model.Bookmark) model.Bookmark {
	b.Title = s.Text(b.Title)
	b.Description = s.Text(b.Description)
	return b
}

// Bookmarks sanitizes every element into a new slice; the input is not modified.
func (s *Sanitizer) Bookmarks(in []model.Bookmark) []model.Bookmark {
	out := make([]model.Bookmark, len(in))
	for i, b := range in {
		out[i] = s.Bookmark(b)
	}
	return out
}
