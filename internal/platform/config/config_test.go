// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ratings/internal/platform/config"
)

/*
TestParse_Defaults verifies defaults are applied when only the required variables exist.
*/
func TestParse_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ratings")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "admin", cfg.OwnerUsername)
	assert.Equal(t, "admin", cfg.OwnerPassword)
	assert.Equal(t, "./public/uploads", cfg.UploadDir)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.LogFile)
}

/*
TestParse_MissingDatabaseURL ensures the required DSN is enforced.
*/
func TestParse_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Parse()
	assert.Error(t, err)
}

/*
TestParse_Overrides checks environment values replace defaults.
*/
func TestParse_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ratings")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("OWNER_PASSWORD", "hunter2")
	t.Setenv("EXTRA_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "hunter2", cfg.OwnerPassword)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}
