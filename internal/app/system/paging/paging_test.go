package paging_test

import (
	"testing"

	"github.com/echoboard/echoboard/internal/app/system/paging"
)

func TestCut_FirstPage(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	page := paging.Cut(data, 2, "")
	if len(page.Results) != 2 {
		t.Fatalf("results: got %d, want 2", len(page.Results))
	}
	if page.Results[0] != 1 || page.Results[1] != 2 {
		t.Errorf("results: got %v, want [1 2]", page.Results)
	}
	if page.Cursor != "2" {
		t.Errorf("cursor: got %q, want %q", page.Cursor, "2")
	}
}

func TestCut_Exhaustive(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	var all []int
	cursor := ""
	for i := 0; ; i++ {
		if i > 10 {
			t.Fatal("cursor chain did not terminate")
		}
		page := paging.Cut(data, 2, cursor)
		all = append(all, page.Results...)
		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	if len(all) != len(data) {
		t.Fatalf("concatenated pages: got %d items, want %d", len(all), len(data))
	}
	for i := range data {
		if all[i] != data[i] {
			t.Errorf("item %d: got %d, want %d", i, all[i], data[i])
		}
	}
}

func TestCut_PageSizes(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}

	// Page size 2 over 5 items: cursors "2", "4", then absent, with
	// pages of 2, 2, 1 items.
	page := paging.Cut(data, 2, "")
	if page.Cursor != "2" || len(page.Results) != 2 {
		t.Errorf("page 1: got cursor %q with %d items", page.Cursor, len(page.Results))
	}
	page = paging.Cut(data, 2, page.Cursor)
	if page.Cursor != "4" || len(page.Results) != 2 {
		t.Errorf("page 2: got cursor %q with %d items", page.Cursor, len(page.Results))
	}
	page = paging.Cut(data, 2, page.Cursor)
	if page.Cursor != "" || len(page.Results) != 1 {
		t.Errorf("page 3: got cursor %q with %d items", page.Cursor, len(page.Results))
	}
}

func TestCut_ExactMultiple(t *testing.T) {
	data := []int{1, 2, 3, 4}

	// When the data length is an exact multiple of the limit, the last
	// full page still returns a cursor; the following page is empty
	// with no cursor.
	page := paging.Cut(data, 2, "2")
	if page.Cursor != "4" {
		t.Fatalf("cursor: got %q, want %q", page.Cursor, "4")
	}
	page = paging.Cut(data, 2, page.Cursor)
	if len(page.Results) != 0 || page.Cursor != "" {
		t.Errorf("overflow page: got %v with cursor %q", page.Results, page.Cursor)
	}
}

func TestCut_BadCursor(t *testing.T) {
	data := []int{1, 2, 3}

	page := paging.Cut(data, 2, "not-a-number")
	if len(page.Results) != 2 || page.Results[0] != 1 {
		t.Errorf("bad cursor should mean page one, got %v", page.Results)
	}
}

func TestCut_Empty(t *testing.T) {
	page := paging.Cut([]int(nil), 2, "")
	if len(page.Results) != 0 || page.Cursor != "" {
		t.Errorf("empty data: got %v with cursor %q", page.Results, page.Cursor)
	}
}

func TestCut_ZeroLimitUsesDefault(t *testing.T) {
	data := make([]int, 25)
	page := paging.Cut(data, 0, "")
	if len(page.Results) != paging.DefaultLimit {
		t.Errorf("results: got %d, want default %d", len(page.Results), paging.DefaultLimit)
	}
}
