package mock_test

import (
	"net/http"
	"testing"

	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/domain/models"
)

func signupAccount(t *testing.T, s *mock.Server) models.Account {
	t.Helper()
	account, err := s.Admin().AccountSignup(models.AccountSignup{
		Name:     "Op",
		Email:    "op@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("AccountSignup: %v", err)
	}
	return account
}

func TestAccountSignupLoginLogout(t *testing.T) {
	s := newTestServer(t)
	account := signupAccount(t, s)

	if account.Plan.Title != "Trial" {
		t.Errorf("signup plan = %q, want Trial", account.Plan.Title)
	}
	if account.SSOToken == "" {
		t.Errorf("signup did not mint an SSO token")
	}

	bind, err := s.Admin().AccountBind()
	if err != nil {
		t.Fatalf("AccountBind: %v", err)
	}
	if bind.Account == nil || bind.Account.Email != "op@example.com" {
		t.Fatalf("bind after signup = %+v", bind.Account)
	}

	if err := s.Admin().AccountLogout(); err != nil {
		t.Fatalf("AccountLogout: %v", err)
	}
	bind, _ = s.Admin().AccountBind()
	if bind.Account != nil {
		t.Fatalf("bind after logout = %+v", bind.Account)
	}

	_, err = s.Admin().AccountLogin(models.AccountLogin{Email: "op@example.com", Password: "wrong"})
	wantStatus(t, err, http.StatusForbidden)
	_, err = s.Admin().AccountLogin(models.AccountLogin{Email: "other@example.com", Password: "correct horse"})
	wantStatus(t, err, http.StatusForbidden)

	logged, err := s.Admin().AccountLogin(models.AccountLogin{Email: "op@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("AccountLogin: %v", err)
	}
	if logged.Email != "op@example.com" {
		t.Errorf("login returned %+v", logged)
	}
}

func TestAccountLoginWithoutAccount(t *testing.T) {
	s := newTestServer(t)
	_, err := s.Admin().AccountLogin(models.AccountLogin{Email: "op@example.com", Password: "x"})
	wantStatus(t, err, http.StatusForbidden)
}

func TestAccountUpdate(t *testing.T) {
	s := newTestServer(t)
	signupAccount(t, s)

	name := "Operator"
	pw := "better horse"
	updated, err := s.Admin().AccountUpdate(models.AccountUpdate{Name: &name, Password: &pw})
	if err != nil {
		t.Fatalf("AccountUpdate: %v", err)
	}
	if updated.Name != "Operator" {
		t.Errorf("name = %q", updated.Name)
	}

	_, err = s.Admin().AccountLogin(models.AccountLogin{Email: "op@example.com", Password: "correct horse"})
	wantStatus(t, err, http.StatusForbidden)
	if _, err := s.Admin().AccountLogin(models.AccountLogin{Email: "op@example.com", Password: "better horse"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestAccountSSOTokenBindsIntoProject(t *testing.T) {
	s := newTestServer(t)
	account := signupAccount(t, s)

	// The project must exist before the page-load call.
	if _, err := s.Admin().ProjectCreate(testProject, s.Store().GetOrCreate(testProject).Config.Config); err != nil {
		t.Fatalf("ProjectCreate: %v", err)
	}

	res, err := s.Client().ConfigGetAndUserBind(testProject, account.SSOToken)
	if err != nil {
		t.Fatalf("ConfigGetAndUserBind: %v", err)
	}
	if res.User == nil {
		t.Fatal("SSO bind returned no user")
	}
	if res.User.Email != "op@example.com" || !res.User.IsSSO {
		t.Errorf("SSO-created user = %+v", res.User)
	}

	// A second visit reuses the same record instead of minting another.
	again, err := s.Client().ConfigGetAndUserBind(testProject, account.SSOToken)
	if err != nil {
		t.Fatalf("ConfigGetAndUserBind (repeat): %v", err)
	}
	if again.User.UserID != res.User.UserID {
		t.Errorf("repeat SSO bind created a new user: %q vs %q", again.User.UserID, res.User.UserID)
	}
}

func TestConfigGetAndUserBindIgnoresBadToken(t *testing.T) {
	s := newTestServer(t)
	s.Store().GetOrCreate(testProject)

	res, err := s.Client().ConfigGetAndUserBind(testProject, "garbage-token")
	if err != nil {
		t.Fatalf("ConfigGetAndUserBind: %v", err)
	}
	if res.User != nil {
		t.Errorf("bad token bound a user: %+v", res.User)
	}

	_, err = s.Client().ConfigGetAndUserBind("no-such-project", "")
	wantStatus(t, err, http.StatusNotFound)
}

func TestPlansAndLegal(t *testing.T) {
	s := newTestServer(t)

	plans, err := s.Admin().PlansGet()
	if err != nil {
		t.Fatalf("PlansGet: %v", err)
	}
	if len(plans.Plans) != 3 {
		t.Errorf("plans = %d, want 3", len(plans.Plans))
	}
	if len(plans.FeaturesTable.Plans) != 3 {
		t.Errorf("features table columns = %d, want 3", len(plans.FeaturesTable.Plans))
	}
	for _, row := range plans.FeaturesTable.Features {
		if len(row.Values) != len(plans.FeaturesTable.Plans) {
			t.Errorf("row %q has %d values", row.Feature, len(row.Values))
		}
	}

	legal, err := s.Admin().LegalGet()
	if err != nil {
		t.Fatalf("LegalGet: %v", err)
	}
	if legal.Terms == "" || legal.Privacy == "" {
		t.Errorf("legal documents empty: %+v", legal)
	}

	if err := s.Admin().SupportMessage("hello"); err != nil {
		t.Errorf("SupportMessage: %v", err)
	}
}
