package mock_test

import (
	"net/http"
	"testing"

	"github.com/echoboard/echoboard/internal/domain/models"
)

func TestUserCreateDerivesFlagsAndBindsSession(t *testing.T) {
	s := newTestServer(t)
	u, err := s.Client().UserCreate(testProject, models.UserCreate{
		Name:         "ada",
		Email:        "ada@example.com",
		Password:     "secret",
		IosPushToken: "ios-token",
	})
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}
	if !u.EmailNotify {
		t.Errorf("emailNotify not derived from email presence")
	}
	if !u.IosPush || u.AndroidPush || u.BrowserPush {
		t.Errorf("push flags = %v/%v/%v, want ios only", u.IosPush, u.AndroidPush, u.BrowserPush)
	}
	if !u.HasPassword {
		t.Errorf("hasPassword not set")
	}

	bind, err := s.Client().UserBind(testProject)
	if err != nil {
		t.Fatalf("UserBind: %v", err)
	}
	if bind.User == nil || bind.User.UserID != u.UserID {
		t.Fatalf("session not bound to created user: %+v", bind.User)
	}
}

func TestUserUpdateEmptyStringClears(t *testing.T) {
	s := newTestServer(t)
	u, err := s.Client().UserCreate(testProject, models.UserCreate{
		Name:             "bob",
		Email:            "bob@example.com",
		BrowserPushToken: "push-token",
	})
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}

	empty := ""
	updated, err := s.Client().UserUpdate(testProject, u.UserID, models.UserUpdate{
		Email:            &empty,
		BrowserPushToken: &empty,
	})
	if err != nil {
		t.Fatalf("UserUpdate: %v", err)
	}
	if updated.Email != "" {
		t.Errorf("email not cleared: %q", updated.Email)
	}
	if updated.BrowserPush || updated.BrowserPushToken != "" {
		t.Errorf("browser push not cleared: %v %q", updated.BrowserPush, updated.BrowserPushToken)
	}

	// An absent field is a no-op, distinct from present-but-empty.
	name := "robert"
	updated, err = s.Client().UserUpdate(testProject, u.UserID, models.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UserUpdate: %v", err)
	}
	if updated.Name != "robert" {
		t.Errorf("name = %q", updated.Name)
	}

	pw := "new-secret"
	updated, err = s.Client().UserUpdate(testProject, u.UserID, models.UserUpdate{Password: &pw})
	if err != nil {
		t.Fatalf("UserUpdate: %v", err)
	}
	if !updated.HasPassword {
		t.Errorf("hasPassword not set by password update")
	}
}

func TestUserLogin(t *testing.T) {
	s := newTestServer(t)
	createUser(t, s, "carol")
	s.Store().GetOrCreate(testProject).LoggedInUserID = ""

	_, err := s.Client().UserLogin(testProject, models.UserLogin{Email: "nobody@example.com", Password: "x"})
	wantStatus(t, err, http.StatusNotFound)

	_, err = s.Client().UserLogin(testProject, models.UserLogin{Email: "carol@example.com", Password: "wrong"})
	wantStatus(t, err, http.StatusForbidden)

	_, err = s.Client().UserLogin(testProject, models.UserLogin{Email: "carol@example.com"})
	wantStatus(t, err, http.StatusForbidden)

	u, err := s.Client().UserLogin(testProject, models.UserLogin{Email: "carol@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("UserLogin: %v", err)
	}
	bind, _ := s.Client().UserBind(testProject)
	if bind.User == nil || bind.User.UserID != u.UserID {
		t.Fatalf("login did not bind session")
	}

	if err := s.Client().UserLogout(testProject); err != nil {
		t.Fatalf("UserLogout: %v", err)
	}
	bind, _ = s.Client().UserBind(testProject)
	if bind.User != nil {
		t.Fatalf("logout left session bound: %+v", bind.User)
	}
}

func TestUserDeleteRemovesRecordAndSession(t *testing.T) {
	s := newTestServer(t)
	u := createUser(t, s, "dave")

	if err := s.Client().UserDelete(testProject); err != nil {
		t.Fatalf("UserDelete: %v", err)
	}
	_, err := s.Client().UserGet(testProject, u.UserID)
	wantStatus(t, err, http.StatusNotFound)

	wantStatus(t, s.Client().UserDelete(testProject), http.StatusForbidden)
}

func TestUserSearchAdmin(t *testing.T) {
	s := newTestServer(t)
	createUser(t, s, "erin")
	createUser(t, s, "frank")
	if _, err := s.Admin().UserCreateAdmin(testProject, models.UserCreate{Name: "mod", IsAdmin: true}); err != nil {
		t.Fatalf("UserCreateAdmin: %v", err)
	}

	isAdmin := true
	res, err := s.Admin().UserSearchAdmin(testProject, models.UserSearchAdmin{IsAdmin: &isAdmin}, "")
	if err != nil {
		t.Fatalf("UserSearchAdmin: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].Name != "mod" {
		t.Errorf("admin filter results: %+v", res.Results)
	}

	res, err = s.Admin().UserSearchAdmin(testProject, models.UserSearchAdmin{SearchText: "erin"}, "")
	if err != nil {
		t.Fatalf("UserSearchAdmin: %v", err)
	}
	if len(res.Results) != 1 || res.Results[0].Name != "erin" {
		t.Errorf("text filter results: %+v", res.Results)
	}
}

func TestUserUpdateAdminBalanceAdjustment(t *testing.T) {
	s := newTestServer(t)
	u := createUser(t, s, "grace")

	updated, err := s.Admin().UserUpdateAdmin(testProject, u.UserID, models.UserUpdateAdmin{
		TransactionCreate: &models.TransactionCreate{Amount: 250, Summary: "welcome credit"},
	})
	if err != nil {
		t.Fatalf("UserUpdateAdmin: %v", err)
	}
	if updated.Balance != 250 {
		t.Errorf("balance = %d, want 250", updated.Balance)
	}

	res, err := s.Client().TransactionSearch(testProject, models.TransactionSearch{}, "")
	if err != nil {
		t.Fatalf("TransactionSearch: %v", err)
	}
	if len(res.Results) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(res.Results))
	}
	tr := res.Results[0]
	if tr.TransactionType != models.TransactionAdjustment || tr.Amount != 250 || tr.Balance != 250 {
		t.Errorf("ledger entry = %+v", tr)
	}
	if res.Balance.Balance != 250 {
		t.Errorf("attached balance = %d, want 250", res.Balance.Balance)
	}
}

func TestUserUpdateAdminDisablesPushChannels(t *testing.T) {
	s := newTestServer(t)
	u, err := s.Client().UserCreate(testProject, models.UserCreate{
		Name:             "heidi",
		AndroidPushToken: "android-token",
	})
	if err != nil {
		t.Fatalf("UserCreate: %v", err)
	}

	off := false
	updated, err := s.Admin().UserUpdateAdmin(testProject, u.UserID, models.UserUpdateAdmin{AndroidPush: &off})
	if err != nil {
		t.Fatalf("UserUpdateAdmin: %v", err)
	}
	if updated.AndroidPush || updated.AndroidPushToken != "" {
		t.Errorf("android push not disabled: %v %q", updated.AndroidPush, updated.AndroidPushToken)
	}
}

func TestTransactionSearchFiltersNotImplemented(t *testing.T) {
	s := newTestServer(t)
	createUser(t, s, "ivan")

	min := int64(5)
	_, err := s.Client().TransactionSearch(testProject, models.TransactionSearch{FilterAmountMin: &min}, "")
	wantStatus(t, err, http.StatusNotImplemented)

	_, err = s.Admin().TransactionSearchAdmin(testProject, models.TransactionSearch{}, "")
	wantStatus(t, err, http.StatusNotImplemented)
}

func TestNotificationClear(t *testing.T) {
	s := newTestServer(t)
	u := createUser(t, s, "judy")
	idea := createIdea(t, s, u.UserID, "Watch me")

	status := "planned"
	for i := 0; i < 2; i++ {
		next := status
		if i == 1 {
			next = "completed"
		}
		if _, err := s.Admin().IdeaUpdateAdmin(testProject, idea.IdeaID, models.IdeaUpdate{StatusID: &next}); err != nil {
			t.Fatalf("IdeaUpdateAdmin: %v", err)
		}
	}

	res, err := s.Client().NotificationSearch(testProject, "")
	if err != nil {
		t.Fatalf("NotificationSearch: %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("notifications = %d, want 2", len(res.Results))
	}

	if err := s.Client().NotificationClear(testProject, res.Results[0].NotificationID); err != nil {
		t.Fatalf("NotificationClear: %v", err)
	}
	res, _ = s.Client().NotificationSearch(testProject, "")
	if len(res.Results) != 1 {
		t.Fatalf("after clear-one = %d, want 1", len(res.Results))
	}

	if err := s.Client().NotificationClearAll(testProject); err != nil {
		t.Fatalf("NotificationClearAll: %v", err)
	}
	res, _ = s.Client().NotificationSearch(testProject, "")
	if len(res.Results) != 0 {
		t.Fatalf("after clear-all = %d, want 0", len(res.Results))
	}
}
