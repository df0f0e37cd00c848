// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

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
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var movieColumns = schema.List(schema.CatalogMovie.Columns())

func scanMovie(row pgx.Row) (*Movie, error) {
	m := &Movie{}
	err := row.Scan(&m.ID, &m.Title, &m.Image, &m.Rating, &m.CreatedAt)
	return m, err
}

func (repository *PostgresRepository) ListMovies(ctx context.Context, limit int) ([]*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC`,
		movieColumns, schema.CatalogMovie.Table, schema.CatalogMovie.CreatedAt, schema.CatalogMovie.ID,
	)

	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, m)
	}

	return movies, dberr.Wrap(rows.Err(), "list_movies")
}

func (repository *PostgresRepository) GetMovie(ctx context.Context, id int) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		movieColumns, schema.CatalogMovie.Table, schema.CatalogMovie.ID,
	)

	m, err := scanMovie(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMovie(ctx context.Context, fields Fields) (*Movie, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.CatalogMovie.Table, schema.CatalogMovie.Title, schema.CatalogMovie.Image, schema.CatalogMovie.Rating,
		movieColumns,
	)

	m, err := scanMovie(repository.db.QueryRow(ctx, query, fields.Title, fields.Image, fields.Rating))
	if err != nil {
		return nil, dberr.Wrap(err, "create_movie")
	}
	return m, nil
}

func (repository *PostgresRepository) UpdateMovie(ctx context.Context, id int, fields Fields) (*Movie, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE($2, %[2]s),
			%[3]s = CASE WHEN $5 THEN NULL ELSE COALESCE($3, %[3]s) END,
			%[4]s = $4
		WHERE %[5]s = $1
		RETURNING %[6]s
	`,
		schema.CatalogMovie.Table, schema.CatalogMovie.Title, schema.CatalogMovie.Image, schema.CatalogMovie.Rating,
		schema.CatalogMovie.ID, movieColumns,
	)

	m, err := scanMovie(repository.db.QueryRow(ctx, query, id, fields.Title, fields.Image, fields.Rating, fields.ClearImage))
	if err != nil {
		return nil, dberr.Wrap(err, "update_movie")
	}
	return m, nil
}

func (repository *PostgresRepository) DeleteMovie(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogMovie.Table, schema.CatalogMovie.ID)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(dberr.ErrNotFound, "delete_movie")
	}
	return nil
}
