// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a queried or targeted row doesn't exist.
var ErrNotFound = errors.New("record not found")

// Wrap annotates a database error with the action that produced it.
//
// A missing row becomes [ErrNotFound] so callers can tell a 404 from a store
// failure with [errors.Is]. Everything else keeps its original chain.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", action, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", action, err)
}

// IsNotFound reports whether err stems from a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
