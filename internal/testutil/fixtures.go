package testutil

import (
	"testing"

	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/domain/models"
)

// Fixtures provides helper methods for seeding the mock engine in
// tests. All helpers fail the test on error so call sites stay flat.
type Fixtures struct {
	srv *mock.Server
	t   *testing.T
}

// NewFixtures creates a Fixtures instance over the given engine.
func NewFixtures(t *testing.T, srv *mock.Server) *Fixtures {
	t.Helper()
	return &Fixtures{srv: srv, t: t}
}

// Srv returns the underlying engine for direct access in tests.
func (f *Fixtures) Srv() *mock.Server {
	return f.srv
}

// CreateUser registers a user in the project and leaves them bound as
// the project's logged-in user.
func (f *Fixtures) CreateUser(projectID, name, email string) models.User {
	f.t.Helper()

	user, err := f.srv.Client().UserCreate(projectID, models.UserCreate{
		Name:     name,
		Email:    email,
		Password: "hunter2",
	})
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// BindUser switches the project's logged-in user without going through
// a login call.
func (f *Fixtures) BindUser(projectID, userID string) {
	f.t.Helper()
	f.srv.Store().GetOrCreate(projectID).LoggedInUserID = userID
}

// CreateIdea posts an idea in the default category authored by the
// given user.
func (f *Fixtures) CreateIdea(projectID, authorUserID, title string) models.IdeaWithVote {
	f.t.Helper()

	idea, err := f.srv.Client().IdeaCreate(projectID, models.IdeaCreate{
		AuthorUserID: authorUserID,
		Title:        title,
		Description:  "<p>" + title + "</p>",
		CategoryID:   "feedback",
	})
	if err != nil {
		f.t.Fatalf("failed to create test idea: %v", err)
	}
	return idea
}

// GrantBalance credits the user's ledger through an admin adjustment.
func (f *Fixtures) GrantBalance(projectID, userID string, amount int64) {
	f.t.Helper()

	_, err := f.srv.Admin().UserUpdateAdmin(projectID, userID, models.UserUpdateAdmin{
		TransactionCreate: &models.TransactionCreate{
			Amount:  amount,
			Summary: "Test grant",
		},
	})
	if err != nil {
		f.t.Fatalf("failed to grant balance: %v", err)
	}
}

// SignupAccount registers the dashboard operator account and leaves
// the engine's operator session logged in.
func (f *Fixtures) SignupAccount(email, name, password string) models.Account {
	f.t.Helper()

	account, err := f.srv.Admin().AccountSignup(models.AccountSignup{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		f.t.Fatalf("failed to sign up test account: %v", err)
	}
	return account
}
