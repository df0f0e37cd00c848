// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ratings/internal/platform/database/schema"
	"github.com/taibuivan/ratings/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	seriesColumns  = schema.List(schema.CatalogSeries.Columns())
	episodeColumns = schema.List(schema.CatalogEpisode.Columns())
)

func scanSeries(row pgx.Row) (*Series, error) {
	s := &Series{}
	err := row.Scan(&s.ID, &s.Title, &s.Image, &s.Type, &s.OverallRating, &s.CreatedAt)
	return s, err
}

func scanEpisode(row pgx.Row) (*Episode, error) {
	e := &Episode{}
	err := row.Scan(&e.ID, &e.SeasonID, &e.EpisodeNumber, &e.Title, &e.Rating)
	return e, err
}

func (repository *PostgresRepository) ListSeries(ctx context.Context, filter Filter) ([]*Series, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, seriesColumns, schema.CatalogSeries.Table)

	args := []any{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(` WHERE %s = $%d`, schema.CatalogSeries.Type, len(args))
	}

	query += fmt.Sprintf(` ORDER BY %s DESC, %s DESC`, schema.CatalogSeries.CreatedAt, schema.CatalogSeries.ID)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_series")
	}
	defer rows.Close()

	list := []*Series{}
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_series")
		}
		list = append(list, s)
	}

	return list, dberr.Wrap(rows.Err(), "list_series")
}

/*
GetSeries loads a series together with its season and episode tree.

# Query Plan
 1. Fetch the series row (a miss wraps [dberr.ErrNotFound]).
 2. Fetch every season LEFT JOINed to its episodes in display order.
 3. Fold the flat rows into nested seasons.
*/
func (repository *PostgresRepository) GetSeries(ctx context.Context, id int) (*Detail, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		seriesColumns, schema.CatalogSeries.Table, schema.CatalogSeries.ID,
	)

	base, err := scanSeries(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_series")
	}

	treeQuery := fmt.Sprintf(`
		SELECT s.%[1]s, s.%[2]s, s.%[3]s,
		       e.%[4]s, e.%[5]s, e.%[6]s, e.%[7]s, e.%[8]s
		FROM %[9]s s
		LEFT JOIN %[10]s e ON e.%[5]s = s.%[1]s
		WHERE s.%[2]s = $1
		ORDER BY s.%[3]s ASC, e.%[6]s ASC NULLS FIRST, e.%[4]s ASC
	`,
		schema.CatalogSeason.ID, schema.CatalogSeason.SeriesID, schema.CatalogSeason.SeasonNumber,
		schema.CatalogEpisode.ID, schema.CatalogEpisode.SeasonID, schema.CatalogEpisode.EpisodeNumber,
		schema.CatalogEpisode.Title, schema.CatalogEpisode.Rating,
		schema.CatalogSeason.Table, schema.CatalogEpisode.Table,
	)

	rows, err := repository.pool.Query(ctx, treeQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_series_seasons")
	}
	defer rows.Close()

	detail := &Detail{Series: *base, Seasons: []*Season{}}
	var current *Season

	for rows.Next() {
		var (
			season        Season
			episodeID     *int
			seasonID      *int
			episodeNumber *int
			title         *string
			rating        *float64
		)

		if err := rows.Scan(&season.ID, &season.SeriesID, &season.SeasonNumber,
			&episodeID, &seasonID, &episodeNumber, &title, &rating); err != nil {
			return nil, dberr.Wrap(err, "scan_series_season")
		}

		if current == nil || current.ID != season.ID {
			season.Episodes = []*Episode{}
			current = &season
			detail.Seasons = append(detail.Seasons, current)
		}

		// A season without episodes yields one row of NULL episode columns
		if episodeID == nil {
			continue
		}

		current.Episodes = append(current.Episodes, &Episode{
			ID:            *episodeID,
			SeasonID:      *seasonID,
			EpisodeNumber: *episodeNumber,
			Title:         title,
			Rating:        rating,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "get_series_seasons")
	}
	return detail, nil
}

func (repository *PostgresRepository) CreateSeries(ctx context.Context, fields Fields) (*Series, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.CatalogSeries.Table,
		schema.CatalogSeries.Title, schema.CatalogSeries.Image, schema.CatalogSeries.Type, schema.CatalogSeries.OverallRating,
		seriesColumns,
	)

	s, err := scanSeries(repository.pool.QueryRow(ctx, query, fields.Title, fields.Image, fields.Type, fields.OverallRating))
	if err != nil {
		return nil, dberr.Wrap(err, "create_series")
	}
	return s, nil
}

func (repository *PostgresRepository) UpdateSeries(ctx context.Context, id int, fields Fields) (*Series, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE($2, %[2]s),
			%[3]s = CASE WHEN $5 THEN NULL ELSE COALESCE($3, %[3]s) END,
			%[4]s = $4
		WHERE %[5]s = $1
		RETURNING %[6]s
	`,
		schema.CatalogSeries.Table,
		schema.CatalogSeries.Title, schema.CatalogSeries.Image, schema.CatalogSeries.OverallRating,
		schema.CatalogSeries.ID, seriesColumns,
	)

	s, err := scanSeries(repository.pool.QueryRow(ctx, query, id, fields.Title, fields.Image, fields.OverallRating, fields.ClearImage))
	if err != nil {
		return nil, dberr.Wrap(err, "update_series")
	}
	return s, nil
}

// DeleteSeries removes the series row. Seasons and episodes follow through
// ON DELETE CASCADE.
func (repository *PostgresRepository) DeleteSeries(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogSeries.Table, schema.CatalogSeries.ID)

	cmd, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_series")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(dberr.ErrNotFound, "delete_series")
	}
	return nil
}

/*
AttachEpisode locates or creates the season and inserts the episode.

# Atomicity

Both statements share one transaction. The season step is an upsert on the
(seriesid, seasonnumber) unique constraint, so two callers racing on a new
season number both receive the id of the single row that wins.

A missing series fails the season insert on its foreign key.
*/
func (repository *PostgresRepository) AttachEpisode(ctx context.Context, seriesID int, draft EpisodeDraft) (*Episode, error) {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// Rolls back anything left uncommitted on an early return
	defer transaction.Rollback(ctx)

	// The no-op DO UPDATE makes RETURNING yield the existing row as well
	seasonQuery := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s)
		VALUES ($1, $2)
		ON CONFLICT (%[2]s, %[3]s) DO UPDATE SET %[3]s = EXCLUDED.%[3]s
		RETURNING %[4]s
	`,
		schema.CatalogSeason.Table, schema.CatalogSeason.SeriesID, schema.CatalogSeason.SeasonNumber,
		schema.CatalogSeason.ID,
	)

	var seasonID int
	if err := transaction.QueryRow(ctx, seasonQuery, seriesID, draft.SeasonNumber).Scan(&seasonID); err != nil {
		return nil, dberr.Wrap(err, "upsert_season")
	}

	episodeQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.CatalogEpisode.Table,
		schema.CatalogEpisode.SeasonID, schema.CatalogEpisode.EpisodeNumber, schema.CatalogEpisode.Title, schema.CatalogEpisode.Rating,
		episodeColumns,
	)

	episode, err := scanEpisode(transaction.QueryRow(ctx, episodeQuery, seasonID, draft.EpisodeNumber, draft.Title, draft.Rating))
	if err != nil {
		return nil, dberr.Wrap(err, "create_episode")
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("postgres: failed to commit attach transaction: %w", err)
	}

	return episode, nil
}
