// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/ratings", "pgx5://u:p@localhost:5432/ratings"},
		{"postgresql://localhost/ratings", "pgx5://localhost/ratings"},
		{"pgx5://localhost/ratings", "pgx5://localhost/ratings"},
		{"host=localhost dbname=ratings", "host=localhost dbname=ratings"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toPgx5DSN(tt.in), tt.in)
	}
}
