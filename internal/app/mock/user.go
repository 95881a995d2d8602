package mock

import (
	"strings"

	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/paging"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserCreate registers a participant and binds them as the project's
// current session.
func (s *Server) UserCreate(projectID string, create models.UserCreate) (models.User, error) {
	u, err := s.UserCreateAdmin(projectID, create)
	if err != nil {
		return models.User{}, err
	}
	s.project(projectID).LoggedInUserID = u.UserID
	return u, nil
}

// UserCreateAdmin registers a participant without binding a session.
// Notification channel flags derive from which tokens are present, and
// emailNotify defaults on when an email is given.
func (s *Server) UserCreateAdmin(projectID string, create models.UserCreate) (models.User, error) {
	p := s.project(projectID)
	u := models.User{
		UserID:           uuid.NewString(),
		Created:          s.now(),
		Name:             create.Name,
		Email:            create.Email,
		IsSSO:            create.IsSSO,
		IsAdmin:          create.IsAdmin,
		Password:         create.Password,
		HasPassword:      create.Password != "",
		EmailNotify:      create.Email != "",
		IosPushToken:     create.IosPushToken,
		IosPush:          create.IosPushToken != "",
		AndroidPushToken: create.AndroidPushToken,
		AndroidPush:      create.AndroidPushToken != "",
		BrowserPushToken: create.BrowserPushToken,
		BrowserPush:      create.BrowserPushToken != "",
	}
	p.Users = append(p.Users, u)
	s.logger.Debug("user created",
		zap.String("project_id", projectID),
		zap.String("user_id", u.UserID))
	return respond(s, s.userWithBalance(p, u))
}

// UserGet fetches a user by id.
func (s *Server) UserGet(projectID, userID string) (models.User, error) {
	p := s.project(projectID)
	u := p.FindUser(userID)
	if u == nil {
		return fail[models.User](s, apierror.NotFound("User not found"))
	}
	return respond(s, s.userWithBalance(p, *u))
}

// UserGetAdmin is not supported by the mock.
func (s *Server) UserGetAdmin(projectID, userID string) (models.User, error) {
	return fail[models.User](s, apierror.NotImplemented("userGetAdmin"))
}

// UserUpdate patches a user field by field. For email and the push
// tokens, a present-but-empty value clears the field and drops the
// matching notification flag; setting a password marks the account as
// having one.
func (s *Server) UserUpdate(projectID, userID string, update models.UserUpdate) (models.User, error) {
	p := s.project(projectID)
	u := p.FindUser(userID)
	if u == nil {
		return fail[models.User](s, apierror.NotFound("User not found"))
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.EmailNotify != nil {
		u.EmailNotify = *update.EmailNotify
	}
	if update.Password != nil {
		u.Password = *update.Password
		u.HasPassword = true
	}
	if update.IosPushToken != nil {
		u.IosPushToken = *update.IosPushToken
		u.IosPush = *update.IosPushToken != ""
	}
	if update.AndroidPushToken != nil {
		u.AndroidPushToken = *update.AndroidPushToken
		u.AndroidPush = *update.AndroidPushToken != ""
	}
	if update.BrowserPushToken != nil {
		u.BrowserPushToken = *update.BrowserPushToken
		u.BrowserPush = *update.BrowserPushToken != ""
	}

	return respond(s, s.userWithBalance(p, *u))
}

// UserUpdateAdmin is the dashboard patch: push channels can only be
// disabled (the stored token is discarded), and an attached transaction
// adjusts the user's credit balance through the ledger.
func (s *Server) UserUpdateAdmin(projectID, userID string, update models.UserUpdateAdmin) (models.User, error) {
	p := s.project(projectID)
	u := p.FindUser(userID)
	if u == nil {
		return fail[models.User](s, apierror.NotFound("User not found"))
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.EmailNotify != nil {
		u.EmailNotify = *update.EmailNotify
	}
	if update.Password != nil {
		u.Password = *update.Password
		u.HasPassword = true
	}
	if update.IosPush != nil && !*update.IosPush {
		u.IosPushToken = ""
		u.IosPush = false
	}
	if update.AndroidPush != nil && !*update.AndroidPush {
		u.AndroidPushToken = ""
		u.AndroidPush = false
	}
	if update.BrowserPush != nil && !*update.BrowserPush {
		u.BrowserPushToken = ""
		u.BrowserPush = false
	}

	if tc := update.TransactionCreate; tc != nil {
		balance := p.Balance(userID) + tc.Amount
		p.Transactions = append(p.Transactions, models.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			Created:         s.now(),
			Amount:          tc.Amount,
			Balance:         balance,
			TransactionType: models.TransactionAdjustment,
			Summary:         tc.Summary,
		})
		p.Balances[userID] = balance
		s.logger.Debug("balance adjusted",
			zap.String("user_id", userID),
			zap.Int64("amount", tc.Amount),
			zap.Int64("balance", balance))
	}

	return respond(s, s.userWithBalance(p, *u))
}

// UserDelete removes the calling user's own record and ends the session.
func (s *Server) UserDelete(projectID string) error {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return s.failVoid(err)
	}
	p.RemoveUser(me.UserID)
	p.LoggedInUserID = ""
	s.waitLatency()
	return nil
}

// UserDeleteAdmin removes any user record.
func (s *Server) UserDeleteAdmin(projectID, userID string) error {
	s.project(projectID).RemoveUser(userID)
	s.waitLatency()
	return nil
}

// UserDeleteBulkAdmin is not supported by the mock.
func (s *Server) UserDeleteBulkAdmin(projectID string, userIDs []string) error {
	return s.failVoid(apierror.NotImplemented("userDeleteBulkAdmin"))
}

// UserSearchAdmin filters users by admin flag and a name/email substring
// match, with balances attached.
func (s *Server) UserSearchAdmin(projectID string, search models.UserSearchAdmin, cursor string) (models.UserSearchResult, error) {
	p := s.project(projectID)

	var matched []models.User
	for _, u := range p.Users {
		if search.IsAdmin != nil && *search.IsAdmin != u.IsAdmin {
			continue
		}
		if search.SearchText != "" &&
			!strings.Contains(u.Name, search.SearchText) &&
			!strings.Contains(u.Email, search.SearchText) {
			continue
		}
		matched = append(matched, s.userWithBalance(p, u))
	}

	page := paging.Cut(matched, paging.DefaultLimit, cursor)
	return respond(s, models.UserSearchResult{Results: page.Results, Cursor: page.Cursor})
}

// UserLogin authenticates by email and password and binds the session.
// A missing user and a wrong password are deliberately told apart the
// way the real backend does it: unknown email is 404, bad password 403.
func (s *Server) UserLogin(projectID string, login models.UserLogin) (models.User, error) {
	p := s.project(projectID)
	u := p.FindUserByEmail(login.Email)
	if u == nil {
		return fail[models.User](s, apierror.NotFound("Incorrect email or password"))
	}
	if login.Password == "" {
		return fail[models.User](s, apierror.Forbidden(""))
	}
	if u.Password != login.Password {
		return fail[models.User](s, apierror.Forbidden("Incorrect email or password"))
	}
	p.LoggedInUserID = u.UserID
	return respond(s, s.userWithBalance(p, *u))
}

// UserLogout drops the project's session. Logging out while logged out
// is a no-op.
func (s *Server) UserLogout(projectID string) error {
	s.project(projectID).LoggedInUserID = ""
	s.waitLatency()
	return nil
}

// UserBind reports the current session's user, if any.
func (s *Server) UserBind(projectID string) (models.UserBindResult, error) {
	p := s.project(projectID)
	u := p.LoggedInUser()
	if u == nil {
		return respond(s, models.UserBindResult{})
	}
	bound := s.userWithBalance(p, *u)
	return respond(s, models.UserBindResult{User: &bound})
}

// ForgotPassword accepts the request and does nothing; the mock sends
// no email.
func (s *Server) ForgotPassword(projectID, email string) error {
	s.waitLatency()
	return nil
}

// ConfigGetAndUserBind is the page-load call: fetch the project config
// and, when an SSO token is presented, bind the asserted identity as the
// session user, creating the user on first visit. A token that fails
// verification is ignored rather than rejected, matching the real
// backend's soft handling on public pages.
func (s *Server) ConfigGetAndUserBind(projectID, ssoToken string) (models.ConfigAndBindResult, error) {
	p, ok := s.store.Get(projectID)
	if !ok {
		return fail[models.ConfigAndBindResult](s, apierror.NotFound("Project not found"))
	}

	if ssoToken != "" {
		claims, err := s.signer.Verify(ssoToken)
		if err != nil {
			s.logger.Info("sso token rejected", zap.Error(err))
		} else {
			if u := p.FindUserByEmail(claims.Email); u != nil {
				p.LoggedInUserID = u.UserID
			} else {
				if _, err := s.UserCreate(projectID, models.UserCreate{
					Email: claims.Email,
					Name:  claims.Name,
					IsSSO: true,
				}); err != nil {
					return fail[models.ConfigAndBindResult](s, err)
				}
			}
		}
	}

	result := models.ConfigAndBindResult{Config: p.Config}
	if u := p.LoggedInUser(); u != nil {
		bound := s.userWithBalance(p, *u)
		result.User = &bound
	}
	return respond(s, result)
}
