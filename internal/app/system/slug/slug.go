// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims hyphens from both ends.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
