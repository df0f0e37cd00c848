// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/constants"
	"github.com/taibuivan/ratings/internal/platform/ctxutil"
	"github.com/taibuivan/ratings/internal/platform/respond"
)

// AuthorizationPolicy decides whether a request carries the owner authority.
//
// Defining it here keeps the checkpoint independent of the session package,
// so tests can inject a fixed answer.
type AuthorizationPolicy interface {
	Authorize(request *http.Request) bool
}

// PolicyFunc adapts a plain function to [AuthorizationPolicy].
type PolicyFunc func(request *http.Request) bool

// Authorize calls f.
func (f PolicyFunc) Authorize(request *http.Request) bool { return f(request) }

// errUnauthorized is the body every rejected mutation receives.
var errUnauthorized = apperr.Unauthorized("Unauthorized")

// Checkpoint guards every mutating request before routing.
//
// # Flow
//  1. GET, HEAD, OPTIONS and friends pass through untouched.
//  2. POST to the login path passes through (issuing a session must be reachable).
//  3. POST, PUT and DELETE without the owner authority stop here with 401.
//  4. Admitted mutations carry the owner flag in their context.
func Checkpoint(policy AuthorizationPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !isMutating(request.Method) {
				next.ServeHTTP(writer, request)
				return
			}

			if request.URL.Path == constants.LoginPath {
				next.ServeHTTP(writer, request)
				return
			}

			if !policy.Authorize(request) {
				respond.Error(writer, request, errUnauthorized)
				return
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithOwner(request.Context())))
		})
	}
}

// RequireOwner re-checks the owner flag at the route level.
//
// # Usage
//
// Must run behind [Checkpoint]. It never admits anything the checkpoint
// rejected; it stops a route mounted outside the checkpoint from becoming writable.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !ctxutil.IsOwner(request.Context()) {
			respond.Error(writer, request, errUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
