// Package ssotoken signs and verifies the SSO handoff token: a compact
// assertion of {email, name} that lets the dashboard account enter a
// project as a regular user.
//
// The default codec is symmetric (HMAC via securecookie) with a shared
// demo secret, which is fine for the mock. Production equivalents should
// inject a Signer backed by asymmetric keys.
package ssotoken

import (
	"errors"

	"github.com/gorilla/securecookie"
)

// tokenName keys the HMAC so SSO tokens cannot be confused with other
// securecookie values signed by the same secret.
const tokenName = "echoboard-sso"

// Claims is the identity asserted by a token.
type Claims struct {
	GUID  string `json:"guid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Signer mints and verifies identity assertions.
type Signer interface {
	Sign(claims Claims) (string, error)
	Verify(token string) (Claims, error)
}

// ErrInvalidToken is returned for tokens that fail verification for any
// reason (bad signature, malformed payload, wrong name).
var ErrInvalidToken = errors.New("ssotoken: invalid token")

// HMACSigner is the symmetric default Signer.
type HMACSigner struct {
	codec *securecookie.SecureCookie
}

// NewHMACSigner builds a Signer from a shared secret. The secret only
// authenticates; token payloads are not encrypted.
func NewHMACSigner(secret string) *HMACSigner {
	sc := securecookie.New([]byte(secret), nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(0) // tokens do not expire in mock mode
	return &HMACSigner{codec: sc}
}

func (s *HMACSigner) Sign(claims Claims) (string, error) {
	if claims.GUID == "" {
		claims.GUID = claims.Email
	}
	return s.codec.Encode(tokenName, claims)
}

func (s *HMACSigner) Verify(token string) (Claims, error) {
	var claims Claims
	if err := s.codec.Decode(tokenName, token, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
