package mock_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/domain/models"
)

func TestIdeaCreateEntersWorkflowAtEntryStatus(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")

	idea, err := s.Client().IdeaCreate(testProject, models.IdeaCreate{
		AuthorUserID: u1.UserID,
		Title:        "Keyboard shortcuts",
		CategoryID:   projectstore.DefaultCategoryID,
		StatusID:     projectstore.StatusCompleted, // client may not pick a status
	})
	if err != nil {
		t.Fatalf("IdeaCreate: %v", err)
	}
	if idea.StatusID != projectstore.StatusIdeation {
		t.Errorf("statusId = %q, want entry status %q", idea.StatusID, projectstore.StatusIdeation)
	}
	if !strings.HasPrefix(idea.IdeaID, "keyboard-shortcuts-") {
		t.Errorf("ideaId = %q, want slug prefix of title", idea.IdeaID)
	}
	if idea.Vote.Vote != models.VoteUpvote || idea.VoteValue != 1 {
		t.Errorf("author auto-upvote missing: vote=%v voteValue=%d", idea.Vote.Vote, idea.VoteValue)
	}
	if idea.AuthorName != "u1" {
		t.Errorf("authorName = %q, want u1", idea.AuthorName)
	}
}

func TestIdeaCreateAdminKeepsRequestedStatus(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")

	idea, err := s.Admin().IdeaCreateAdmin(testProject, models.IdeaCreate{
		AuthorUserID: u1.UserID,
		Title:        "Roadmap entry",
		CategoryID:   projectstore.DefaultCategoryID,
		StatusID:     projectstore.StatusPlanned,
	})
	if err != nil {
		t.Fatalf("IdeaCreateAdmin: %v", err)
	}
	if idea.StatusID != projectstore.StatusPlanned {
		t.Errorf("statusId = %q, want %q", idea.StatusID, projectstore.StatusPlanned)
	}
}

func TestIdeaCreateUnknownAuthor(t *testing.T) {
	s := newTestServer(t)
	createUser(t, s, "u1")
	_, err := s.Client().IdeaCreate(testProject, models.IdeaCreate{
		AuthorUserID: "nope",
		Title:        "Ghost",
		CategoryID:   projectstore.DefaultCategoryID,
	})
	wantStatus(t, err, http.StatusNotFound)
}

func TestIdeaUpdatePatchesOnlyPresentFields(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	idea := createIdea(t, s, u1.UserID, "Original title")

	title := "New title"
	updated, err := s.Client().IdeaUpdate(testProject, idea.IdeaID, models.IdeaUpdate{Title: &title})
	if err != nil {
		t.Fatalf("IdeaUpdate: %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Description != idea.Description {
		t.Errorf("description changed by unrelated patch: %q != %q", updated.Description, idea.Description)
	}
}

func TestIdeaStatusChangeNotifiesAuthor(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	idea := createIdea(t, s, u1.UserID, "Notify me")

	status := projectstore.StatusPlanned
	if _, err := s.Admin().IdeaUpdateAdmin(testProject, idea.IdeaID, models.IdeaUpdate{StatusID: &status}); err != nil {
		t.Fatalf("IdeaUpdateAdmin: %v", err)
	}

	res, err := s.Client().NotificationSearch(testProject, "")
	if err != nil {
		t.Fatalf("NotificationSearch: %v", err)
	}
	if len(res.Results) != 1 {
		t.Fatalf("notifications = %d, want 1", len(res.Results))
	}
	n := res.Results[0]
	if n.RelatedIdeaID != idea.IdeaID || !strings.Contains(n.Description, "Planned") {
		t.Errorf("notification = %+v", n)
	}

	// Suppressed status changes stay silent.
	status = projectstore.StatusInProgress
	if _, err := s.Admin().IdeaUpdateAdmin(testProject, idea.IdeaID, models.IdeaUpdate{
		StatusID:              &status,
		SuppressNotifications: true,
	}); err != nil {
		t.Fatalf("IdeaUpdateAdmin: %v", err)
	}
	res, _ = s.Client().NotificationSearch(testProject, "")
	if len(res.Results) != 1 {
		t.Errorf("suppressed change still notified: %d", len(res.Results))
	}
}

func TestIdeaSearchSortNewAndCursor(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	titles := []string{"one", "two", "three", "four", "five"}
	for _, title := range titles {
		createIdea(t, s, u1.UserID, title)
	}

	var seen []string
	cursor := ""
	pages := 0
	for {
		res, err := s.Client().IdeaSearch(testProject, models.IdeaSearch{SortBy: models.SortNew, Limit: 2}, cursor)
		if err != nil {
			t.Fatalf("IdeaSearch: %v", err)
		}
		for _, iv := range res.Results {
			seen = append(seen, iv.Title)
		}
		pages++
		if res.Cursor == "" {
			break
		}
		cursor = res.Cursor
	}

	if pages != 3 {
		t.Errorf("pages = %d, want 3 (2+2+1)", pages)
	}
	want := []string{"five", "four", "three", "two", "one"} // newest first
	if len(seen) != len(want) {
		t.Fatalf("results = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("results = %v, want %v", seen, want)
		}
	}
}

func TestIdeaSearchSortTop(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	u2 := createUser(t, s, "u2")
	switchUser(t, s, u1.UserID)
	low := createIdea(t, s, u1.UserID, "low")
	high := createIdea(t, s, u1.UserID, "high")

	switchUser(t, s, u2.UserID)
	voteIdea(t, s, high.IdeaID, models.VoteUpvote)

	res, err := s.Client().IdeaSearch(testProject, models.IdeaSearch{SortBy: models.SortTop}, "")
	if err != nil {
		t.Fatalf("IdeaSearch: %v", err)
	}
	if len(res.Results) != 2 || res.Results[0].IdeaID != high.IdeaID || res.Results[1].IdeaID != low.IdeaID {
		t.Fatalf("top order wrong: %+v", res.Results)
	}
}

func TestIdeaSearchFilters(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	createIdea(t, s, u1.UserID, "alpha feature")
	beta := createIdea(t, s, u1.UserID, "beta feature")

	status := projectstore.StatusPlanned
	if _, err := s.Admin().IdeaUpdateAdmin(testProject, beta.IdeaID, models.IdeaUpdate{
		StatusID:              &status,
		SuppressNotifications: true,
	}); err != nil {
		t.Fatalf("IdeaUpdateAdmin: %v", err)
	}

	planned := []string{projectstore.StatusPlanned}
	res, err := s.Client().IdeaSearch(testProject, models.IdeaSearch{FilterStatusIDs: &planned}, "")
	if err != nil {
		t.Fatalf("IdeaSearch status filter: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].IdeaID != beta.IdeaID {
		t.Errorf("status filter results: %+v", res.Results)
	}

	text := "alpha"
	res, err = s.Client().IdeaSearch(testProject, models.IdeaSearch{SearchText: &text}, "")
	if err != nil {
		t.Fatalf("IdeaSearch text filter: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].Title != "alpha feature" {
		t.Errorf("text filter results: %+v", res.Results)
	}
}

func TestIdeaSearchFundedByMeRequiresLogin(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	grantBalance(t, s, u1.UserID, 100)
	switchUser(t, s, u1.UserID)
	funded := createIdea(t, s, u1.UserID, "funded one")
	createIdea(t, s, u1.UserID, "unfunded one")
	fundIdea(t, s, funded.IdeaID, 10)

	res, err := s.Client().IdeaSearch(testProject, models.IdeaSearch{FundedByMeAndActive: true}, "")
	if err != nil {
		t.Fatalf("IdeaSearch funded-by-me: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].IdeaID != funded.IdeaID {
		t.Errorf("funded-by-me results: %+v", res.Results)
	}

	s.Store().GetOrCreate(testProject).LoggedInUserID = ""
	_, err = s.Client().IdeaSearch(testProject, models.IdeaSearch{FundedByMeAndActive: true}, "")
	wantStatus(t, err, http.StatusForbidden)
}

func TestIdeaDeleteNotImplemented(t *testing.T) {
	s := newTestServer(t)
	u1 := createUser(t, s, "u1")
	idea := createIdea(t, s, u1.UserID, "undeletable")

	wantStatus(t, s.Client().IdeaDelete(testProject, idea.IdeaID), http.StatusNotImplemented)
	wantStatus(t, s.Admin().IdeaDeleteAdmin(testProject, idea.IdeaID), http.StatusNotImplemented)
}

func TestIdeaGetNotFound(t *testing.T) {
	s := newTestServer(t)
	_, err := s.Client().IdeaGet(testProject, "missing")
	wantStatus(t, err, http.StatusNotFound)
}
