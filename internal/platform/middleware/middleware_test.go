// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ratings/internal/platform/ctxutil"
	"github.com/taibuivan/ratings/internal/platform/middleware"
)

type staticConfig struct {
	development bool
	origins     []string
}

func (cfg staticConfig) IsDevelopment() bool {
	return cfg.development
}

func (cfg staticConfig) AllowedOrigins() []string {
	return cfg.origins
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "abc-123")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))
	})
}

func TestStructuredLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))

	handler := middleware.StructuredLogger(logger)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctxutil.GetLogger(request.Context()).Info("inside")
		writer.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	output := buffer.String()
	assert.Contains(t, output, `"msg":"inside"`)
	assert.Contains(t, output, `"path":"/api/movies"`)
	assert.Contains(t, output, `"msg":"http_request_finished"`)
	assert.Contains(t, output, `"status":418`)
	assert.Contains(t, output, `"level":"WARN"`)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"INTERNAL_ERROR"`)
}

/*
TestCORS checks origin handling in both environments.
*/
func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) { writer.WriteHeader(http.StatusOK) })

	tests := []struct {
		name        string
		cfg         staticConfig
		method      string
		origin      string
		wantAllowed string
		wantStatus  int
	}{
		{"dev_any_origin", staticConfig{development: true}, http.MethodGet, "http://localhost:5173", "http://localhost:5173", http.StatusOK},
		{"prod_listed", staticConfig{origins: []string{"https://ratings.example"}}, http.MethodGet, "https://ratings.example", "https://ratings.example", http.StatusOK},
		{"prod_unlisted", staticConfig{origins: []string{"https://ratings.example"}}, http.MethodGet, "https://evil.example", "", http.StatusOK},
		{"preflight", staticConfig{development: true}, http.MethodOptions, "http://localhost:5173", "http://localhost:5173", http.StatusNoContent},
		{"no_origin", staticConfig{}, http.MethodGet, "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, "/api/movies", nil)
			if tt.origin != "" {
				request.Header.Set("Origin", tt.origin)
			}
			recorder := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(ok).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantAllowed, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:4321"
	assert.Equal(t, "10.0.0.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.1")
	assert.Equal(t, "1.2.3.4", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "5.6.7.8")
	assert.Equal(t, "5.6.7.8", middleware.RealIP(request))
}
