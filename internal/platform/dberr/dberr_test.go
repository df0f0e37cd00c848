// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ratings/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "get_movie"))

	notFound := dberr.Wrap(pgx.ErrNoRows, "get_movie")
	assert.True(t, dberr.IsNotFound(notFound))
	assert.Contains(t, notFound.Error(), "get_movie")

	cause := errors.New("connection reset")
	other := dberr.Wrap(cause, "update_movie")
	assert.False(t, dberr.IsNotFound(other))
	assert.ErrorIs(t, other, cause)
	assert.Equal(t, "update_movie: connection reset", other.Error())
}
