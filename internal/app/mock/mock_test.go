package mock_test

import (
	"testing"
	"time"

	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/domain/models"
)

const testProject = "roadmap"

// newTestServer builds a server with latency off and a ticking fake
// clock, so every created record gets a distinct timestamp.
func newTestServer(t *testing.T) *mock.Server {
	t.Helper()
	var tick int64
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return mock.NewServer(mock.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))
}

// createUser registers a user and leaves them bound as the project's
// session, like the real signup flow does.
func createUser(t *testing.T, s *mock.Server, name string) models.User {
	t.Helper()
	u, err := s.Client().UserCreate(testProject, models.UserCreate{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("UserCreate(%q): %v", name, err)
	}
	return u
}

// switchUser rebinds the project session to an existing user.
func switchUser(t *testing.T, s *mock.Server, userID string) {
	t.Helper()
	s.Store().GetOrCreate(testProject).LoggedInUserID = userID
}

// createIdea posts an idea authored by the given user.
func createIdea(t *testing.T, s *mock.Server, authorID, title string) models.IdeaWithVote {
	t.Helper()
	idea, err := s.Client().IdeaCreate(testProject, models.IdeaCreate{
		AuthorUserID: authorID,
		Title:        title,
		Description:  "<p>" + title + "</p>",
		CategoryID:   "feedback",
	})
	if err != nil {
		t.Fatalf("IdeaCreate(%q): %v", title, err)
	}
	return idea
}

// grantBalance credits a user through the admin ledger path.
func grantBalance(t *testing.T, s *mock.Server, userID string, amount int64) {
	t.Helper()
	_, err := s.Admin().UserUpdateAdmin(testProject, userID, models.UserUpdateAdmin{
		TransactionCreate: &models.TransactionCreate{Amount: amount, Summary: "grant"},
	})
	if err != nil {
		t.Fatalf("UserUpdateAdmin grant: %v", err)
	}
}

// wantStatus asserts err carries the given HTTP-style status.
func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected status %d error, got nil", status)
	}
	if got := apierror.StatusOf(err); got != status {
		t.Fatalf("status = %d, want %d (err: %v)", got, status, err)
	}
}

func fundIdea(t *testing.T, s *mock.Server, ideaID string, diff int64) models.IdeaVoteUpdateResult {
	t.Helper()
	res, err := s.Client().IdeaVoteUpdate(testProject, ideaID, models.IdeaVoteUpdate{FundDiff: &diff})
	if err != nil {
		t.Fatalf("IdeaVoteUpdate(fund %d): %v", diff, err)
	}
	return res
}

func voteIdea(t *testing.T, s *mock.Server, ideaID string, option models.VoteOption) models.IdeaVoteUpdateResult {
	t.Helper()
	res, err := s.Client().IdeaVoteUpdate(testProject, ideaID, models.IdeaVoteUpdate{Vote: option})
	if err != nil {
		t.Fatalf("IdeaVoteUpdate(vote %s): %v", option, err)
	}
	return res
}
