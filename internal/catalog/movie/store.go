// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository is the persistence boundary for movies.
//
// A limit of zero on ListMovies means no limit. Lists are newest first.
type Repository interface {
	ListMovies(ctx context.Context, limit int) ([]*Movie, error)
	GetMovie(ctx context.Context, id int) (*Movie, error)
	CreateMovie(ctx context.Context, fields Fields) (*Movie, error)
	UpdateMovie(ctx context.Context, id int, fields Fields) (*Movie, error)
	DeleteMovie(ctx context.Context, id int) error
}
