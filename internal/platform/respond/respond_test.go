// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/respond"
)

func TestOK_WrapsDataEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string]string{"title": "Dune"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"title":"Dune"}}`, recorder.Body.String())
}

func TestDocument_WritesBarePayload(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Document(recorder, map[string]bool{"isAuthenticated": true})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"isAuthenticated":true}`, recorder.Body.String())
}

func TestSuccess_Acknowledgement(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Success(recorder)

	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{"not_found", apperr.NotFound("Movie"), http.StatusNotFound, "NOT_FOUND", ""},
		{"unauthorized", apperr.Unauthorized("Unauthorized"), http.StatusUnauthorized, "UNAUTHORIZED", ""},
		{"update_failed_echoes_cause", apperr.UpdateFailed("movie", errors.New("no rows")), http.StatusInternalServerError, "UPDATE_FAILED", "no rows"},
		{"creation_failed_hides_cause", apperr.CreationFailed("movie", errors.New("secret sql")), http.StatusInternalServerError, "CREATION_FAILED", ""},
		{"plain_error_becomes_internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantDetail, body.Details)
			assert.NotEmpty(t, body.Error)
		})
	}
}
