// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import "context"

// Repository is the persistence boundary for series and their children.
type Repository interface {
	ListSeries(ctx context.Context, filter Filter) ([]*Series, error)
	GetSeries(ctx context.Context, id int) (*Detail, error)
	CreateSeries(ctx context.Context, fields Fields) (*Series, error)
	UpdateSeries(ctx context.Context, id int, fields Fields) (*Series, error)
	DeleteSeries(ctx context.Context, id int) error

	// AttachEpisode locates or creates the season and inserts the episode
	// as one atomic step.
	AttachEpisode(ctx context.Context, seriesID int, draft EpisodeDraft) (*Episode, error)
}
