// Package paging is the shared cursor engine for search endpoints.
//
// Cursors are opaque strings to callers; internally they are base-10
// integer offsets into the already-filtered-and-sorted result slice.
// The encoding is not guaranteed stable across versions.
package paging

import "strconv"

// DefaultLimit is the page size used when a search does not specify one.
const DefaultLimit = 10

// Page is one window of results plus the cursor for the next window.
// Cursor is empty when there may be no further results.
type Page[T any] struct {
	Results []T
	Cursor  string
}

// Cut slices the window [cursor, cursor+limit) out of data and returns
// the next cursor. The next cursor is set only when the total length is
// at least cursor+limit, i.e. when a further page may exist; an absent
// cursor signals end-of-results. An unparseable or absent cursor means
// page one.
func Cut[T any](data []T, limit int, cursor string) Page[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	start := 0
	if cursor != "" {
		if n, err := strconv.Atoi(cursor); err == nil && n > 0 {
			start = n
		}
	}
	if start > len(data) {
		start = len(data)
	}
	end := start + limit
	if end > len(data) {
		end = len(data)
	}

	page := Page[T]{Results: data[start:end]}
	if len(data) >= start+limit {
		page.Cursor = strconv.Itoa(start + limit)
	}
	return page
}
