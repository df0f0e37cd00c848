// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package home serves the landing view: the newest movies and series.
package home

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ratings/internal/catalog/movie"
	"github.com/taibuivan/ratings/internal/catalog/series"
	"github.com/taibuivan/ratings/internal/platform/respond"
)

// RecentLimit caps each list on the landing view.
const RecentLimit = 5

// MovieSource yields the newest movies.
type MovieSource interface {
	RecentMovies(ctx context.Context, limit int) ([]*movie.Movie, error)
}

// SeriesSource yields the newest series of any type.
type SeriesSource interface {
	RecentSeries(ctx context.Context, limit int) ([]*series.Series, error)
}

// Recent is the landing payload.
type Recent struct {
	Movies []*movie.Movie   `json:"movies"`
	Series []*series.Series `json:"series"`
}

type Handler struct {
	movies MovieSource
	series SeriesSource
}

func NewHandler(movies MovieSource, series SeriesSource) *Handler {
	return &Handler{movies: movies, series: series}
}

// Routes returns a [chi.Router] for the /api/recent prefix.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.recent)
	return router
}

/*
Recent lists the newest entries of both catalogs.

GET /api/recent

Response:
  - 200: {movies: [...], series: [...]} with at most five of each
*/
func (handler *Handler) recent(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.movies.RecentMovies(request.Context(), RecentLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	shows, err := handler.series.RecentSeries(request.Context(), RecentLimit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Document(writer, Recent{Movies: movies, Series: shows})
}
