// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogtest

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/ratings/internal/catalog/movie"
	"github.com/taibuivan/ratings/internal/platform/dberr"
)

// Movies is an in-memory [movie.Repository].
type Movies struct {
	// Err, when set, is returned by every call.
	Err error

	mu     sync.Mutex
	clock  *clock
	nextID int
	rows   map[int]movie.Movie
}

func NewMovies() *Movies {
	return &Movies{clock: newClock(), rows: map[int]movie.Movie{}}
}

// Len reports how many movies are stored.
func (store *Movies) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.rows)
}

func (store *Movies) ListMovies(_ context.Context, limit int) ([]*movie.Movie, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	list := make([]*movie.Movie, 0, len(store.rows))
	for _, row := range store.rows {
		m := row
		list = append(list, &m)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (store *Movies) GetMovie(_ context.Context, id int) (*movie.Movie, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	row, ok := store.rows[id]
	if !ok {
		return nil, dberr.Wrap(dberr.ErrNotFound, "get_movie")
	}
	return &row, nil
}

func (store *Movies) CreateMovie(_ context.Context, fields movie.Fields) (*movie.Movie, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}
	if fields.Title == nil {
		return nil, dberr.Wrap(ErrTitleRequired, "create_movie")
	}

	store.nextID++
	row := movie.Movie{
		ID:        store.nextID,
		Title:     *fields.Title,
		Image:     fields.Image,
		Rating:    fields.Rating,
		CreatedAt: store.clock.now(),
	}
	store.rows[row.ID] = row
	return &row, nil
}

func (store *Movies) UpdateMovie(_ context.Context, id int, fields movie.Fields) (*movie.Movie, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return nil, store.Err
	}

	row, ok := store.rows[id]
	if !ok {
		return nil, dberr.Wrap(dberr.ErrNotFound, "update_movie")
	}

	if fields.Title != nil {
		row.Title = *fields.Title
	}
	if fields.Image != nil || fields.ClearImage {
		row.Image = fields.Image
	}
	row.Rating = fields.Rating

	store.rows[id] = row
	return &row, nil
}

func (store *Movies) DeleteMovie(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.Err != nil {
		return store.Err
	}

	if _, ok := store.rows[id]; !ok {
		return dberr.Wrap(dberr.ErrNotFound, "delete_movie")
	}
	delete(store.rows, id)
	return nil
}
