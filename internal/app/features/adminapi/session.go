package adminapi

import (
	"net/http"

	"github.com/echoboard/echoboard/internal/app/features/shared/jsonapi"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionEmailKey = "account_email"

// SessionManager wraps the dashboard account cookie. The engine tracks
// the session server-side; the cookie is the browser-facing half.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. Secure cookies should be
// on everywhere except local development. A blank domain scopes the
// cookie to the current host.
func NewSessionManager(secret, name, domain string, secure bool, logger *zap.Logger) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: name, log: logger}
}

// SignIn stores the account email in the session cookie.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, email string) {
	session, _ := m.store.Get(r, m.name)
	session.Values[sessionEmailKey] = email
	if err := session.Save(r, w); err != nil {
		m.log.Warn("session save failed", zap.Error(err))
	}
}

// SignOut expires the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := m.store.Get(r, m.name)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		m.log.Warn("session save failed", zap.Error(err))
	}
}

// Email returns the signed-in account email, or "".
func (m *SessionManager) Email(r *http.Request) string {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		return ""
	}
	email, _ := session.Values[sessionEmailKey].(string)
	return email
}

// RequireAccount rejects requests without a dashboard session.
func (m *SessionManager) RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Email(r) == "" {
			jsonapi.WriteError(w, m.log, apierror.Forbidden("Not logged in"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
