// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/ratings/internal/platform/apperr"
	"github.com/taibuivan/ratings/internal/platform/dberr"
)

// Service applies the series lifecycle rules on top of a [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListSeries returns series newest first, narrowed by filter.
func (service *Service) ListSeries(ctx context.Context, filter Filter) ([]*Series, error) {
	list, err := service.repo.ListSeries(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

// RecentSeries returns at most limit series of any type, newest first.
func (service *Service) RecentSeries(ctx context.Context, limit int) ([]*Series, error) {
	return service.ListSeries(ctx, Filter{Limit: limit})
}

func (service *Service) GetSeries(ctx context.Context, id int) (*Detail, error) {
	detail, err := service.repo.GetSeries(ctx, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Series")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return detail, nil
}

// Ratings flattens the episode tree into the rating timeline, in season
// then episode order. Unrated episodes keep a nil rating.
func (service *Service) Ratings(ctx context.Context, id int) ([]RatingPoint, error) {
	detail, err := service.GetSeries(ctx, id)
	if err != nil {
		return nil, err
	}

	points := []RatingPoint{}
	for _, season := range detail.Seasons {
		for _, episode := range season.Episodes {
			points = append(points, RatingPoint{
				Label:   fmt.Sprintf("S%dE%d", season.SeasonNumber, episode.EpisodeNumber),
				Season:  season.SeasonNumber,
				Episode: episode.EpisodeNumber,
				Rating:  episode.Rating,
			})
		}
	}
	return points, nil
}

func (service *Service) CreateSeries(ctx context.Context, fields Fields) (*Series, error) {
	if fields.Type == "" {
		fields.Type = TypeSeries
	}

	created, err := service.repo.CreateSeries(ctx, fields)
	if err != nil {
		return nil, apperr.CreationFailed(resource, err)
	}

	service.logger.Info("series_created",
		slog.Int("series_id", created.ID),
		slog.String("type", string(created.Type)),
	)
	return created, nil
}

func (service *Service) UpdateSeries(ctx context.Context, id int, fields Fields) (*Series, error) {
	updated, err := service.repo.UpdateSeries(ctx, id, fields)
	if err != nil {
		return nil, apperr.UpdateFailed(resource, err)
	}

	service.logger.Info("series_updated", slog.Int("series_id", id))
	return updated, nil
}

// DeleteSeries removes a series with all of its seasons and episodes.
func (service *Service) DeleteSeries(ctx context.Context, id int) error {
	if err := service.repo.DeleteSeries(ctx, id); err != nil {
		return apperr.DeleteFailed(resource, err)
	}

	service.logger.Warn("series_deleted", slog.Int("series_id", id))
	return nil
}

// AttachEpisode adds an episode under the given season number, creating
// the season on first use. Every failure reads the same to the caller.
func (service *Service) AttachEpisode(ctx context.Context, seriesID int, draft EpisodeDraft) (*Episode, error) {
	episode, err := service.repo.AttachEpisode(ctx, seriesID, draft)
	if err != nil {
		return nil, apperr.AttachFailed(err)
	}

	service.logger.Info("episode_attached",
		slog.Int("series_id", seriesID),
		slog.Int("season_number", draft.SeasonNumber),
		slog.Int("episode_number", draft.EpisodeNumber),
	)
	return episode, nil
}
