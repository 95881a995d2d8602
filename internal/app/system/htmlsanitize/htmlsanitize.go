// Package htmlsanitize strips unsafe markup from user-generated content
// before it enters the store. Idea descriptions and comment bodies may
// carry limited rich text; everything else is plain text.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var ugc = bluemonday.UGCPolicy()

// Sanitize returns content with scripts, event handlers, and other
// unsafe constructs removed. Plain text passes through unchanged.
func Sanitize(content string) string {
	return ugc.Sanitize(content)
}
