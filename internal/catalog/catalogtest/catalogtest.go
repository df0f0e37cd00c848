// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalogtest provides in-memory implementations of the catalog
repositories for handler and service tests.

They reproduce the store behaviors the API depends on: newest-first
ordering, NOT NULL titles, the series type check, cascade delete, season
reuse by number, and a not-found error when updating or deleting a missing id.
*/
package catalogtest

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrTitleRequired mirrors the NOT NULL constraint on title.
	ErrTitleRequired = errors.New(`null value in column "title" violates not-null constraint`)

	// ErrInvalidType mirrors the CHECK constraint on series type.
	ErrInvalidType = errors.New(`new row for relation "series" violates check constraint "series_type_check"`)

	// ErrSeriesMissing mirrors the season foreign key.
	ErrSeriesMissing = errors.New(`insert or update on table "season" violates foreign key constraint`)
)

// clock hands out strictly increasing timestamps so ordering is stable.
type clock struct {
	mu   sync.Mutex
	next time.Time
}

func newClock() *clock {
	return &clock{next: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = c.next.Add(time.Second)
	return c.next
}
