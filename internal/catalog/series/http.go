// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/middleware"
	requestutil "github.com/taibuivan/ratings/internal/platform/request"
	"github.com/taibuivan/ratings/internal/platform/respond"
	"github.com/taibuivan/ratings/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /api/series prefix.
//
// # Endpoints
//   - GET    /?type=          : List series, optionally by type.
//   - POST   /                : Create a series (owner).
//   - GET    /{id}            : Series with nested seasons and episodes.
//   - GET    /{id}/ratings    : Episode rating timeline.
//   - PUT    /{id}            : Overwrite title, image and overall rating (owner).
//   - DELETE /{id}            : Delete with cascade (owner).
//   - POST   /{id}/episodes   : Attach an episode (owner).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listSeries)
	router.Get("/{id}", handler.getSeries)
	router.Get("/{id}/ratings", handler.getRatings)

	// Owner only
	router.Group(func(ownerRoute chi.Router) {
		ownerRoute.Use(middleware.RequireOwner)

		ownerRoute.Post("/", handler.createSeries)
		ownerRoute.Put("/{id}", handler.updateSeries)
		ownerRoute.Delete("/{id}", handler.deleteSeries)
		ownerRoute.Post("/{id}/episodes", handler.attachEpisode)
	})

	return router
}

type seriesInput struct {
	Title         *string                `json:"title"`
	Image         convert.OptionalString `json:"image"`
	Type          Type                   `json:"type"`
	OverallRating convert.OptionalFloat  `json:"overallRating"`
}

func (input seriesInput) fields() Fields {
	return Fields{
		Title:         input.Title,
		Image:         input.Image.Ptr(),
		ClearImage:    input.Image.Null,
		Type:          input.Type,
		OverallRating: input.OverallRating.Ptr(),
	}
}

type episodeInput struct {
	SeasonNumber  convert.Int           `json:"seasonNumber"`
	EpisodeNumber convert.Int           `json:"episodeNumber"`
	Title         *string               `json:"title"`
	Rating        convert.OptionalFloat `json:"rating"`
}

var errMissingNumber = errors.New("seasonNumber and episodeNumber are required")

func (input episodeInput) draft() (EpisodeDraft, error) {
	if !input.SeasonNumber.Valid || !input.EpisodeNumber.Valid {
		return EpisodeDraft{}, errMissingNumber
	}
	return EpisodeDraft{
		SeasonNumber:  input.SeasonNumber.Value,
		EpisodeNumber: input.EpisodeNumber.Value,
		Title:         input.Title,
		Rating:        input.Rating.Ptr(),
	}, nil
}

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{Type: request.URL.Query().Get("type")}

	list, err := handler.service.ListSeries(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, list)
}

func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	seriesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Series"))
		return
	}

	detail, err := handler.service.GetSeries(request.Context(), seriesID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, detail)
}

func (handler *Handler) getRatings(writer http.ResponseWriter, request *http.Request) {
	seriesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Series"))
		return
	}

	points, err := handler.service.Ratings(request.Context(), seriesID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, points)
}

func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	var input seriesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.CreationFailed(resource, err))
		return
	}

	created, err := handler.service.CreateSeries(request.Context(), input.fields())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, created)
}

func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
	seriesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.UpdateFailed(resource, err))
		return
	}

	var input seriesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.UpdateFailed(resource, err))
		return
	}

	updated, err := handler.service.UpdateSeries(request.Context(), seriesID, input.fields())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, updated)
}

func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	seriesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.DeleteFailed(resource, err))
		return
	}

	if err := handler.service.DeleteSeries(request.Context(), seriesID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}

func (handler *Handler) attachEpisode(writer http.ResponseWriter, request *http.Request) {
	seriesID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.AttachFailed(err))
		return
	}

	var input episodeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.AttachFailed(err))
		return
	}

	draft, err := input.draft()
	if err != nil {
		respond.Error(writer, request, apperr.AttachFailed(err))
		return
	}

	episode, err := handler.service.AttachEpisode(request.Context(), seriesID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Document(writer, episode)
}
