// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ratings/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/ratings/internal/platform/request"
	"github.com/taibuivan/ratings/internal/platform/respond"
)

// Handler exposes the gate over HTTP.
type Handler struct {
	gate *Gate
}

// NewHandler constructs a new [Handler] around gate.
func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

// Routes returns a [chi.Router] for the /api/auth prefix.
//
// # Endpoints
//   - POST /login  : Checks the owner credentials and sets the marker.
//   - GET  /check  : Reports whether the marker is present.
//   - POST /logout : Discards the marker.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Get("/check", handler.check)
	router.Post("/logout", handler.logout)

	return router
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Login establishes the owner session.

POST /api/auth/login

Response:
  - 200: {success: true} and the auth cookie
  - 401: Invalid credentials (an unreadable body counts as invalid)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		logger.Warn("login_rejected", slog.String("reason", "invalid_body"))
		respond.Error(writer, request, ErrInvalidCredentials)
		return
	}

	if err := handler.gate.Issue(writer, input.Username, input.Password); err != nil {
		logger.Warn("login_rejected", slog.String("username", input.Username))
		respond.Error(writer, request, err)
		return
	}

	logger.Info("login_succeeded")
	respond.Success(writer)
}

/*
Check reports the UI visibility for the caller.

GET /api/auth/check

Response:
  - 200: {isAuthenticated, canEdit}
*/
func (handler *Handler) check(writer http.ResponseWriter, request *http.Request) {
	respond.Document(writer, ViewVisibility(handler.gate.Check(request)))
}

/*
Logout discards the marker.

POST /api/auth/logout

Response:
  - 200: {success: true}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.gate.Revoke(writer)
	ctxutil.GetLogger(request.Context()).Info("logout_succeeded")
	respond.Success(writer)
}
