// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/dberr"
)

// Service applies the movie lifecycle rules on top of a [Repository].
//
// Store failures leave here already classified as [apperr.AppError].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a movie [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListMovies returns every movie, newest first.
func (service *Service) ListMovies(ctx context.Context) ([]*Movie, error) {
	return service.list(ctx, 0)
}

// RecentMovies returns at most limit movies, newest first.
func (service *Service) RecentMovies(ctx context.Context, limit int) ([]*Movie, error) {
	return service.list(ctx, limit)
}

func (service *Service) list(ctx context.Context, limit int) ([]*Movie, error) {
	movies, err := service.repo.ListMovies(ctx, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return movies, nil
}

func (service *Service) GetMovie(ctx context.Context, id int) (*Movie, error) {
	movie, err := service.repo.GetMovie(ctx, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Movie")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return movie, nil
}

func (service *Service) CreateMovie(ctx context.Context, fields Fields) (*Movie, error) {
	movie, err := service.repo.CreateMovie(ctx, fields)
	if err != nil {
		return nil, apperr.CreationFailed(resource, err)
	}

	service.logger.Info("movie_created", slog.Int("movie_id", movie.ID), slog.String("title", movie.Title))
	return movie, nil
}

func (service *Service) UpdateMovie(ctx context.Context, id int, fields Fields) (*Movie, error) {
	movie, err := service.repo.UpdateMovie(ctx, id, fields)
	if err != nil {
		return nil, apperr.UpdateFailed(resource, err)
	}

	service.logger.Info("movie_updated", slog.Int("movie_id", id))
	return movie, nil
}

// DeleteMovie removes a movie. A second delete of the same id fails.
func (service *Service) DeleteMovie(ctx context.Context, id int) error {
	if err := service.repo.DeleteMovie(ctx, id); err != nil {
		return apperr.DeleteFailed(resource, err)
	}

	service.logger.Warn("movie_deleted", slog.Int("movie_id", id))
	return nil
}
