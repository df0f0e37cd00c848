// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"net/http"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/constants"
)

// ErrInvalidCredentials is returned by [Gate.Issue] when the verifier rejects the pair.
var ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")

// Gate issues, validates and revokes the owner marker cookie.
type Gate struct {
	verifier CredentialVerifier
	secure   bool
}

// NewGate returns a Gate. secure marks the cookie Secure (production only,
// so plain-http development still works).
func NewGate(verifier CredentialVerifier, secure bool) *Gate {
	return &Gate{verifier: verifier, secure: secure}
}

// Issue verifies the credentials and, on success, sets the marker on writer.
// On mismatch nothing is written and [ErrInvalidCredentials] is returned.
func (gate *Gate) Issue(writer http.ResponseWriter, username, password string) error {
	if !gate.verifier.Verify(username, password) {
		return ErrInvalidCredentials
	}

	http.SetCookie(writer, gate.cookie(constants.SessionCookieValue, int(constants.SessionTTL.Seconds())))
	return nil
}

// Check resolves the request's authority. Only the exact value "true" counts.
func (gate *Gate) Check(request *http.Request) AuthorityToken {
	cookie, err := request.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value != constants.SessionCookieValue {
		return Anonymous
	}
	return Owner
}

// Revoke tells the client to discard the marker immediately.
func (gate *Gate) Revoke(writer http.ResponseWriter) {
	http.SetCookie(writer, gate.cookie("", -1))
}

// Authorize implements the checkpoint's authorization policy.
func (gate *Gate) Authorize(request *http.Request) bool {
	return gate.Check(request).Present()
}

func (gate *Gate) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		Secure:   gate.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
