// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/middleware"
	requestutil "github.com/taibuivan/ratings/internal/platform/request"
	"github.com/taibuivan/ratings/internal/platform/respond"
	"github.com/taibuivan/ratings/pkg/convert"
)

// Handler exposes the movie [Service] over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /api/movies prefix.
//
// # Endpoints
//   - GET    /     : List movies, newest first.
//   - POST   /     : Create a movie (owner).
//   - GET    /{id} : Fetch one movie.
//   - PUT    /{id} : Overwrite title, image and rating (owner).
//   - DELETE /{id} : Delete a movie (owner).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listMovies)
	router.Get("/{id}", handler.getMovie)

	// Owner only
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(middleware.RequireOwner)

		ownerRoute.Post("/", handler.createMovie)
		ownerRoute.Put("/{id}", handler.updateMovie)
		ownerRoute.Delete("/{id}", handler.deleteMovie)
	})

	return router
}

// movieInput is the JSON body accepted by create and update.
// The rating may arrive as a number or a numeric string.
type movieInput struct {
	Title  *string                `json:"title"`
	Image  convert.OptionalString `json:"image"`
	Rating convert.OptionalFloat  `json:"rating"`
}

func (input movieInput) fields() Fields {
	return Fields{
		Title:      input.Title,
		Image:      input.Image.Ptr(),
		ClearImage: input.Image.Null,
		Rating:     input.Rating.Ptr(),
	}
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.ListMovies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, movies)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Movie"))
		return
	}

	movie, err := handler.service.GetMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, movie)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input movieInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.CreationFailed(resource, err))
		return
	}

	movie, err := handler.service.CreateMovie(request.Context(), input.fields())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, movie)
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.UpdateFailed(resource, err))
		return
	}

	var input movieInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.UpdateFailed(resource, err))
		return
	}

	movie, err := handler.service.UpdateMovie(request.Context(), movieID, input.fields())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, movie)
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.DeleteFailed(resource, err))
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}
