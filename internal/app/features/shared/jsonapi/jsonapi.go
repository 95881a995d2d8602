// Package jsonapi holds the JSON request/response helpers shared by the
// client and admin API features. Errors from the engine are translated
// to their HTTP status with a {"userFacingMessage": ...} body, the same
// shape frontend clients expect from the real backend.
package jsonapi

import (
	"encoding/json"
	"net/http"

	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"go.uber.org/zap"
)

// ChallengeHeader carries the JSON-encoded anti-abuse challenge on 429
// responses.
const ChallengeHeader = "X-EB-Challenge"

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto the wire: its status code, a user-facing
// message body, and the challenge header when one is attached. Errors
// outside the status-coded model become opaque 500s.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	ae, ok := apierror.As(err)
	if !ok {
		logger.Error("internal error", zap.Error(err))
		Write(w, http.StatusInternalServerError, map[string]string{
			"userFacingMessage": "Internal server error",
		})
		return
	}
	if ae.Challenge != nil {
		raw, merr := json.Marshal(ae.Challenge)
		if merr == nil {
			w.Header().Set(ChallengeHeader, string(raw))
		}
	}
	Write(w, ae.Status, ae)
}

// Decode reads the request body into v. An unreadable or malformed body
// is the caller's fault.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.InvalidArgument("Malformed request body")
	}
	return nil
}
