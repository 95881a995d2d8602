package models

import "time"

// User is a project-scoped participant.
//
// Balance is a display field populated from the project's balances map
// at the response boundary; the balances map is authoritative.
type User struct {
	UserID  string    `json:"user_id"`
	Created time.Time `json:"created"`
	Name    string    `json:"name,omitempty"`
	Email   string    `json:"email,omitempty"`
	IsSSO   bool      `json:"is_sso,omitempty"`
	IsAdmin bool      `json:"is_admin,omitempty"`

	// Mock credential; the real backend stores a hash.
	Password    string `json:"-"`
	HasPassword bool   `json:"has_password,omitempty"`

	EmailNotify bool `json:"email_notify,omitempty"`

	IosPushToken     string `json:"ios_push_token,omitempty"`
	IosPush          bool   `json:"ios_push,omitempty"`
	AndroidPushToken string `json:"android_push_token,omitempty"`
	AndroidPush      bool   `json:"android_push,omitempty"`
	BrowserPushToken string `json:"browser_push_token,omitempty"`
	BrowserPush      bool   `json:"browser_push,omitempty"`

	Balance int64 `json:"balance"`
}

// UserCreate is the request payload for creating a user.
type UserCreate struct {
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty"`
	Password         string `json:"password,omitempty"`
	IsSSO            bool   `json:"is_sso,omitempty"`
	IsAdmin          bool   `json:"is_admin,omitempty"`
	IosPushToken     string `json:"ios_push_token,omitempty"`
	AndroidPushToken string `json:"android_push_token,omitempty"`
	BrowserPushToken string `json:"browser_push_token,omitempty"`
}

// UserUpdate is a partial-update request. Nil fields are untouched.
// For Email and the push tokens, a present-but-empty string clears the
// field; this mirrors the real backend's conflation of empty and unset
// for exactly these fields.
type UserUpdate struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	EmailNotify      *bool   `json:"email_notify,omitempty"`
	Password         *string `json:"password,omitempty"`
	IosPushToken     *string `json:"ios_push_token,omitempty"`
	AndroidPushToken *string `json:"android_push_token,omitempty"`
	BrowserPushToken *string `json:"browser_push_token,omitempty"`
}

// UserUpdateAdmin is the admin-surface patch. Push channels are disabled
// by setting the flag to false (the token is discarded); a transaction
// may be attached to adjust the user's credit balance.
type UserUpdateAdmin struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	EmailNotify *bool   `json:"email_notify,omitempty"`
	Password    *string `json:"password,omitempty"`

	IosPush     *bool `json:"ios_push,omitempty"`
	AndroidPush *bool `json:"android_push,omitempty"`
	BrowserPush *bool `json:"browser_push,omitempty"`

	TransactionCreate *TransactionCreate `json:"transaction_create,omitempty"`
}

// UserSearchAdmin filters the admin user search.
type UserSearchAdmin struct {
	IsAdmin    *bool  `json:"is_admin,omitempty"`
	SearchText string `json:"search_text,omitempty"`
}

// UserSearchResult is one page of users with balances attached.
type UserSearchResult struct {
	Results []User `json:"results"`
	Cursor  string `json:"cursor,omitempty"`
}

// UserLogin is the email/password login payload.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserBindResult reports the currently bound (logged-in) user, if any.
type UserBindResult struct {
	User *User `json:"user,omitempty"`
}

// ConfigAndBindResult is the combined response for the config fetch +
// SSO bind call issued on page load.
type ConfigAndBindResult struct {
	Config VersionedConfig `json:"config"`
	User   *User           `json:"user,omitempty"`
}
