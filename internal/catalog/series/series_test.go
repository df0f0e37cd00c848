// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ratings/internal/catalog/catalogtest"
	"github.com/taibuivan/ratings/internal/catalog/series"
	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/middleware"
	"github.com/taibuivan/ratings/pkg/pointer"
)

func newService(store *catalogtest.Series) *series.Service {
	return series.NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRouter(store *catalogtest.Series, owner bool) http.Handler {
	policy := middleware.PolicyFunc(func(*http.Request) bool { return owner })
	return middleware.Checkpoint(policy)(series.NewHandler(newService(store)).Routes())
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, reader))
	return recorder
}

func data[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func code(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Code
}

func TestService_CreateSeries_DefaultType(t *testing.T) {
	created, err := newService(catalogtest.NewSeries()).CreateSeries(context.Background(), series.Fields{Title: pointer.To("Dark")})

	require.NoError(t, err)
	assert.Equal(t, series.TypeSeries, created.Type)
}

/*
TestService_AttachEpisode_ReusesSeason checks that a season number maps to one row.
*/
func TestService_AttachEpisode_ReusesSeason(t *testing.T) {
	ctx := context.Background()
	store := catalogtest.NewSeries()
	service := newService(store)

	show, err := service.CreateSeries(ctx, series.Fields{Title: pointer.To("Dark")})
	require.NoError(t, err)

	first, err := service.AttachEpisode(ctx, show.ID, series.EpisodeDraft{SeasonNumber: 1, EpisodeNumber: 3})
	require.NoError(t, err)
	_, seasons, episodes := store.Counts()
	assert.Equal(t, 1, seasons)
	assert.Equal(t, 1, episodes)

	second, err := service.AttachEpisode(ctx, show.ID, series.EpisodeDraft{SeasonNumber: 1, EpisodeNumber: 4})
	require.NoError(t, err)

	assert.Equal(t, first.SeasonID, second.SeasonID)
	assert.Equal(t, 1, store.SeasonCount(show.ID, 1))
}

func TestService_AttachEpisode_MissingSeries(t *testing.T) {
	_, err := newService(catalogtest.NewSeries()).AttachEpisode(context.Background(), 404, series.EpisodeDraft{SeasonNumber: 1, EpisodeNumber: 1})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "ATTACH_FAILED", appErr.Code)
	assert.Equal(t, "Failed to add episode", appErr.Message)
}

func TestService_Ratings(t *testing.T) {
	ctx := context.Background()
	service := newService(catalogtest.NewSeries())

	show, err := service.CreateSeries(ctx, series.Fields{Title: pointer.To("Dark")})
	require.NoError(t, err)

	for _, draft := range []series.EpisodeDraft{
		{SeasonNumber: 2, EpisodeNumber: 1, Rating: pointer.To(9.0)},
		{SeasonNumber: 1, EpisodeNumber: 2},
		{SeasonNumber: 1, EpisodeNumber: 1, Rating: pointer.To(7.5)},
	} {
		_, err := service.AttachEpisode(ctx, show.ID, draft)
		require.NoError(t, err)
	}

	points, err := service.Ratings(ctx, show.ID)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, []string{"S1E1", "S1E2", "S2E1"}, []string{points[0].Label, points[1].Label, points[2].Label})
	assert.Equal(t, 7.5, *points[0].Rating)
	assert.Nil(t, points[1].Rating)
	assert.Equal(t, 2, points[2].Season)

	_, err = service.Ratings(ctx, 999)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

/*
TestHandler_TypeFilter checks that ?type= narrows the listing exactly.
*/
func TestHandler_TypeFilter(t *testing.T) {
	router := newRouter(catalogtest.NewSeries(), true)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/", `{"title":"X","type":"ANIME"}`).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/", `{"title":"Y"}`).Code)

	titles := func(path string) []string {
		list := data[[]series.Series](t, do(t, router, http.MethodGet, path, ""))
		out := []string{}
		for _, s := range list {
			out = append(out, s.Title)
		}
		return out
	}

	assert.Equal(t, []string{"X"}, titles("/?type=ANIME"))
	assert.Equal(t, []string{"Y"}, titles("/?type=SERIES"))
	assert.Equal(t, []string{"Y", "X"}, titles("/"))
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantType   series.Type
		wantRating *float64
	}{
		{"defaults", `{"title":"Lost"}`, http.StatusOK, series.TypeSeries, nil},
		{"empty_type", `{"title":"Lost","type":""}`, http.StatusOK, series.TypeSeries, nil},
		{"anime_string_rating", `{"title":"Frieren","type":"ANIME","overallRating":"9.5"}`, http.StatusOK, series.TypeAnime, pointer.To(9.5)},
		{"unknown_type", `{"title":"Lost","type":"CARTOON"}`, http.StatusInternalServerError, "", nil},
		{"missing_title", `{"type":"ANIME"}`, http.StatusInternalServerError, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(t, newRouter(catalogtest.NewSeries(), true), http.MethodPost, "/", tt.body)

			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "CREATION_FAILED", code(t, recorder))
				return
			}

			created := data[series.Series](t, recorder)
			assert.Equal(t, tt.wantType, created.Type)
			assert.Equal(t, tt.wantRating, created.OverallRating)
		})
	}
}

/*
TestHandler_Detail_Nesting checks season and episode ordering in the detail view.
*/
func TestHandler_Detail_Nesting(t *testing.T) {
	router := newRouter(catalogtest.NewSeries(), true)
	do(t, router, http.MethodPost, "/", `{"title":"Dark"}`)

	for _, body := range []string{
		`{"seasonNumber":2,"episodeNumber":2}`,
		`{"seasonNumber":"1","episodeNumber":"3","title":"Past and Present","rating":"8"}`,
		`{"seasonNumber":2,"episodeNumber":1}`,
		`{"seasonNumber":1,"episodeNumber":1,"rating":""}`,
	} {
		require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/1/episodes", body).Code, body)
	}

	detail := data[series.Detail](t, do(t, router, http.MethodGet, "/1", ""))
	require.Len(t, detail.Seasons, 2)
	assert.Equal(t, 1, detail.Seasons[0].SeasonNumber)
	assert.Equal(t, 2, detail.Seasons[1].SeasonNumber)

	require.Len(t, detail.Seasons[0].Episodes, 2)
	assert.Equal(t, 1, detail.Seasons[0].Episodes[0].EpisodeNumber)
	assert.Nil(t, detail.Seasons[0].Episodes[0].Rating)
	assert.Equal(t, 3, detail.Seasons[0].Episodes[1].EpisodeNumber)
	assert.Equal(t, "Past and Present", *detail.Seasons[0].Episodes[1].Title)

	assert.Equal(t, 1, detail.Seasons[1].Episodes[0].EpisodeNumber)
	assert.Equal(t, 2, detail.Seasons[1].Episodes[1].EpisodeNumber)
}

func TestHandler_AttachEpisode_Failures(t *testing.T) {
	router := newRouter(catalogtest.NewSeries(), true)
	do(t, router, http.MethodPost, "/", `{"title":"Dark"}`)

	for _, call := range []struct{ path, body string }{
		{"/404/episodes", `{"seasonNumber":1,"episodeNumber":1}`},
		{"/1/episodes", `{"episodeNumber":1}`},
		{"/1/episodes", `{"seasonNumber":"one","episodeNumber":1}`},
		{"/1/episodes", `not json`},
		{"/abc/episodes", `{"seasonNumber":1,"episodeNumber":1}`},
	} {
		recorder := do(t, router, http.MethodPost, call.path, call.body)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code, call.body)
		assert.Equal(t, "ATTACH_FAILED", code(t, recorder), call.body)
	}
}

/*
TestHandler_Delete_Cascades removes the series with its seasons and episodes.
*/
func TestHandler_Delete_Cascades(t *testing.T) {
	store := catalogtest.NewSeries()
	router := newRouter(store, true)
	do(t, router, http.MethodPost, "/", `{"title":"Dark"}`)

	for _, body := range []string{
		`{"seasonNumber":1,"episodeNumber":1}`,
		`{"seasonNumber":1,"episodeNumber":2}`,
		`{"seasonNumber":2,"episodeNumber":1}`,
		`{"seasonNumber":2,"episodeNumber":2}`,
	} {
		require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/1/episodes", body).Code)
	}

	require.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/1", "").Code)

	seriesCount, seasonCount, episodeCount := store.Counts()
	assert.Zero(t, seriesCount)
	assert.Zero(t, seasonCount)
	assert.Zero(t, episodeCount)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/1", "").Code)

	again := do(t, router, http.MethodDelete, "/1", "")
	assert.Equal(t, http.StatusInternalServerError, again.Code)
	assert.Equal(t, "DELETE_FAILED", code(t, again))
}

func TestHandler_Update(t *testing.T) {
	router := newRouter(catalogtest.NewSeries(), true)
	do(t, router, http.MethodPost, "/", `{"title":"Dark","type":"SERIES","overallRating":7}`)

	recorder := do(t, router, http.MethodPut, "/1", `{"overallRating":"9"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	updated := data[series.Series](t, recorder)
	assert.Equal(t, "Dark", updated.Title)
	assert.Equal(t, 9.0, *updated.OverallRating)

	missing := do(t, router, http.MethodPut, "/9", `{"title":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, missing.Code)
	assert.Equal(t, "UPDATE_FAILED", code(t, missing))
}

func TestHandler_Update_ClearImage(t *testing.T) {
	router := newRouter(catalogtest.NewSeries(), true)
	do(t, router, http.MethodPost, "/", `{"title":"Dark","image":"/uploads/d.png"}`)

	kept := data[series.Series](t, do(t, router, http.MethodPut, "/1", `{"overallRating":8}`))
	require.NotNil(t, kept.Image)
	assert.Equal(t, "/uploads/d.png", *kept.Image)

	cleared := data[series.Series](t, do(t, router, http.MethodPut, "/1", `{"image":null}`))
	assert.Nil(t, cleared.Image)
}

func TestHandler_Anonymous_Mutations(t *testing.T) {
	store := catalogtest.NewSeries()
	_, err := store.CreateSeries(context.Background(), series.Fields{Title: pointer.To("Dark"), Type: series.TypeSeries})
	require.NoError(t, err)

	router := newRouter(store, false)

	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodPost, "/", `{"title":"X"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodPut, "/1", `{"title":"X"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodDelete, "/1", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodPost, "/1/episodes", `{"seasonNumber":1,"episodeNumber":1}`).Code)

	seriesCount, seasonCount, episodeCount := store.Counts()
	assert.Equal(t, 1, seriesCount)
	assert.Zero(t, seasonCount)
	assert.Zero(t, episodeCount)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/1/ratings", "").Code)
}
