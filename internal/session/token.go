// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session implements the owner session gate.

There is exactly one principal, the owner. Being logged in is a single
capability carried by the `auth=true` cookie: no identity, no signature and
no server-side session table.

Architecture:

  - AuthorityToken: the capability value the gate derives from a request.
  - CredentialVerifier: the swappable login check (fixed pair by default).
  - Gate: issues, checks and revokes the marker cookie, and is the server's
    authorization policy for the request checkpoint.
  - ViewVisibility: the cosmetic policy the UI uses to show edit controls.
*/
package session

import "crypto/subtle"

// # Authority

// AuthorityToken is the owner capability resolved from a request.
//
// The zero value is the anonymous visitor.
type AuthorityToken struct {
	present bool
}

// Owner is the token held by a request carrying a valid marker.
var Owner = AuthorityToken{present: true}

// Anonymous is the token of every other request.
var Anonymous = AuthorityToken{}

// Present reports whether the owner capability is held.
func (t AuthorityToken) Present() bool { return t.present }

// # Credential Verification

// CredentialVerifier decides whether a login attempt is the owner.
//
// Replacing the implementation (an identity provider, a hashed secret) does
// not change how the checkpoint or the handlers behave.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// FixedCredentials accepts exactly one username/password pair.
type FixedCredentials struct {
	Username string
	Password string
}

// Verify compares both fields in constant time.
func (c FixedCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// VerifierFunc adapts a plain function to [CredentialVerifier].
type VerifierFunc func(username, password string) bool

// Verify calls f.
func (f VerifierFunc) Verify(username, password string) bool { return f(username, password) }
