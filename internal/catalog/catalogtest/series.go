// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogtest

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/ratings/internal/catalog/series"
	"github.com/taibuivan/ratings/internal/platform/dberr"
)

// Series is an in-memory [series.Repository].
type Series struct {
	// Err, when set, is returned by every call.
	Err error

	mu       sync.Mutex
	clock    *clock
	nextID   int
	rows     map[int]series.Series
	seasons  map[int]series.Season
	episodes map[int]series.Episode
}

func NewSeries() *Series {
	return &Series{
		clock:    newClock(),
		rows:     map[int]series.Series{},
		seasons:  map[int]series.Season{},
		episodes: map[int]series.Episode{},
	}
}

// Counts reports how many series, seasons and episodes are stored.
func (store *Series) Counts() (seriesCount, seasonCount, episodeCount int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.rows), len(store.seasons), len(store.episodes)
}

// SeasonCount reports how many seasons of seriesID carry number.
func (store *Series) SeasonCount(seriesID, number int) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	count := 0
	for _, season := range store.seasons {
		if season.SeriesID == seriesID && season.SeasonNumber == number {
			count++
		}
	}
	return count
}

func (store *Series) id() int {
	store.nextID++
	return store.nextID
}

func (store *Series) ListSeries(_ context.Context, filter series.Filter) ([]*series.Series, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	list := []*series.Series{}
	for _, row := range store.rows {
		if filter.Type != "" && string(row.Type) != filter.Type {
			continue
		}
		s := row
		list = append(list, &s)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})

	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (store *Series) GetSeries(_ context.Context, id int) (*series.Detail, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	row, ok := store.rows[id]
	if !ok {
		return nil, dberr.Wrap(dberr.ErrNotFound, "get_series")
	}

	detail := &series.Detail{Series: row, Seasons: []*series.Season{}}
	for _, season := range store.seasons {
		if season.SeriesID != id {
			continue
		}

		s := season
		s.Episodes = []*series.Episode{}
		for _, episode := range store.episodes {
			if episode.SeasonID == s.ID {
				e := episode
				s.Episodes = append(s.Episodes, &e)
			}
		}
		sort.Slice(s.Episodes, func(i, j int) bool {
			if s.Episodes[i].EpisodeNumber != s.Episodes[j].EpisodeNumber {
				return s.Episodes[i].EpisodeNumber < s.Episodes[j].EpisodeNumber
			}
			return s.Episodes[i].ID < s.Episodes[j].ID
		})

		detail.Seasons = append(detail.Seasons, &s)
	}

	sort.Slice(detail.Seasons, func(i, j int) bool {
		return detail.Seasons[i].SeasonNumber < detail.Seasons[j].SeasonNumber
	})
	return detail, nil
}

func (store *Series) CreateSeries(_ context.Context, fields series.Fields) (*series.Series, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}
	if fields.Title == nil {
		return nil, dberr.Wrap(ErrTitleRequired, "create_series")
	}
	if fields.Type != series.TypeSeries && fields.Type != series.TypeAnime {
		return nil, dberr.Wrap(ErrInvalidType, "create_series")
	}

	row := series.Series{
		ID:            store.id(),
		Title:         *fields.Title,
		Image:         fields.Image,
		Type:          fields.Type,
		OverallRating: fields.OverallRating,
		CreatedAt:     store.clock.now(),
	}
	store.rows[row.ID] = row
	return &row, nil
}

func (store *Series) UpdateSeries(_ context.Context, id int, fields series.Fields) (*series.Series, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	row, ok := store.rows[id]
	if !ok {
		return nil, dberr.Wrap(dberr.ErrNotFound, "update_series")
	}

	if fields.Title != nil {
		row.Title = *fields.Title
	}
	if fields.Image != nil || fields.ClearImage {
		row.Image = fields.Image
	}
	row.OverallRating = fields.OverallRating

	store.rows[id] = row
	return &row, nil
}

// DeleteSeries removes the series and cascades to its seasons and episodes.
func (store *Series) DeleteSeries(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return store.Err
	}

	if _, ok := store.rows[id]; !ok {
		return dberr.Wrap(dberr.ErrNotFound, "delete_series")
	}

	for seasonID, season := range store.seasons {
		if season.SeriesID != id {
			continue
		}
		for episodeID, episode := range store.episodes {
			if episode.SeasonID == seasonID {
				delete(store.episodes, episodeID)
			}
		}
		delete(store.seasons, seasonID)
	}
	delete(store.rows, id)
	return nil
}

// AttachEpisode reuses the season with the same number or creates it.
func (store *Series) AttachEpisode(_ context.Context, seriesID int, draft series.EpisodeDraft) (*series.Episode, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	if _, ok := store.rows[seriesID]; !ok {
		return nil, dberr.Wrap(ErrSeriesMissing, "upsert_season")
	}

	seasonID := 0
	for _, season := range store.seasons {
		if season.SeriesID == seriesID && season.SeasonNumber == draft.SeasonNumber {
			seasonID = season.ID
			break
		}
	}

	if seasonID == 0 {
		seasonID = store.id()
		store.seasons[seasonID] = series.Season{ID: seasonID, SeriesID: seriesID, SeasonNumber: draft.SeasonNumber}
	}

	episode := series.Episode{
		ID:            store.id(),
		SeasonID:      seasonID,
		EpisodeNumber: draft.EpisodeNumber,
		Title:         draft.Title,
		Rating:        draft.Rating,
	}
	store.episodes[episode.ID] = episode
	return &episode, nil
}
