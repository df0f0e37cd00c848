// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie manages the movie entries of the rating catalog.

Reads are public. Every write is reachable only behind the request checkpoint
and is re-checked at the route level.
*/
package movie

import "time"

// Movie is a single rated film.
type Movie struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Image     *string   `json:"image"`
	Rating    *float64  `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// Fields carries the writable columns of a [Movie].
//
// On update a nil Title keeps the stored value. A nil Image keeps it too
// unless ClearImage is set. Rating is always overwritten (nil clears it).
type Fields struct {
	Title      *string
	Image      *string
	ClearImage bool
	Rating     *float64
}

// resource names the entity in error messages.
const resource = "movie"
