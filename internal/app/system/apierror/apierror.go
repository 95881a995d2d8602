// Package apierror carries the HTTP-status-coded error model shared by
// the mock engine and the HTTP facade. Callers branch on Status the same
// way frontend clients branch on response codes from the real backend.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Challenge is the anti-abuse challenge attached to rate-limit errors.
// The format is part of the wire contract with the frontend.
type Challenge struct {
	Version   string `json:"version"`
	Challenge string `json:"challenge"`
}

// Error is a terminal, status-coded failure of a single call.
type Error struct {
	Status            int        `json:"status"`
	UserFacingMessage string     `json:"userFacingMessage,omitempty"`
	Challenge         *Challenge `json:"-"`
}

func (e *Error) Error() string {
	if e.UserFacingMessage == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.UserFacingMessage)
}

// New returns an error with the given status and user-facing message.
func New(status int, userFacingMessage string) *Error {
	return &Error{Status: status, UserFacingMessage: userFacingMessage}
}

// InvalidArgument is a 400: the request itself is malformed or nonsensical.
func InvalidArgument(msg string) *Error { return New(http.StatusBadRequest, msg) }

// Forbidden is a 403: not logged in, or the caller may not do this.
func Forbidden(msg string) *Error { return New(http.StatusForbidden, msg) }

// NotFound is a 404: the referenced project/user/idea/comment is missing.
func NotFound(msg string) *Error { return New(http.StatusNotFound, msg) }

// Conflict is a 412: the caller acted on a stale config version.
func Conflict(msg string) *Error { return New(http.StatusPreconditionFailed, msg) }

// RateLimited is a 429, optionally carrying a challenge the client must
// solve before retrying.
func RateLimited(msg string, challenge *Challenge) *Error {
	return &Error{Status: http.StatusTooManyRequests, UserFacingMessage: msg, Challenge: challenge}
}

// NotImplemented marks an operation the mock deliberately leaves
// unfinished. It is a development-time signal, not a user-facing kind.
func NotImplemented(op string) *Error {
	return New(http.StatusNotImplemented, op+" not implemented")
}

// StatusOf extracts the status code from err, or 500 when err is not an
// *Error.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// As unwraps err into an *Error, if it is one.
func As(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}
