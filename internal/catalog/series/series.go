// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package series manages TV series and anime together with their seasons and
episode-level ratings.

# Hierarchy

A [Series] owns [Season] rows, one per season number, and each season owns
[Episode] rows. Deleting a series removes the whole tree.

# Episode attach

Attaching an episode names the season by number. The season is located or
created in the same transaction as the episode insert, so concurrent attaches
to a new season converge on a single row.
*/
package series

import "time"

// Type separates live-action series from anime.
type Type string

const (
	TypeSeries Type = "SERIES"
	TypeAnime  Type = "ANIME"
)

// Series is a rated show as it appears in lists.
type Series struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Image         *string   `json:"image"`
	Type          Type      `json:"type"`
	OverallRating *float64  `json:"overallRating"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Detail is a [Series] with its seasons, ordered by season number, and each
// season's episodes ordered by episode number.
type Detail struct {
	Series
	Seasons []*Season `json:"seasons"`
}

// Season groups the episodes of one season number.
type Season struct {
	ID           int        `json:"id"`
	SeriesID     int        `json:"seriesId"`
	SeasonNumber int        `json:"seasonNumber"`
	Episodes     []*Episode `json:"episodes"`
}

// Episode is a single rated episode.
type Episode struct {
	ID            int      `json:"id"`
	SeasonID      int      `json:"seasonId"`
	EpisodeNumber int      `json:"episodeNumber"`
	Title         *string  `json:"title"`
	Rating        *float64 `json:"rating"`
}

// RatingPoint is one entry of the episode rating timeline.
type RatingPoint struct {
	Label   string   `json:"label"`
	Season  int      `json:"season"`
	Episode int      `json:"episode"`
	Rating  *float64 `json:"rating"`
}

// Filter narrows a series listing.
type Filter struct {
	Type  string // exact match when non-empty
	Limit int    // zero means no limit
}

// Fields carries the writable columns of a [Series].
//
// Type is only honoured on create, where empty means [TypeSeries]. On update
// a nil Title keeps the stored value, a nil Image keeps it unless ClearImage
// is set, and OverallRating is always overwritten.
type Fields struct {
	Title         *string
	Image         *string
	ClearImage    bool
	Type          Type
	OverallRating *float64
}

// EpisodeDraft describes an episode to attach under a season number.
type EpisodeDraft struct {
	SeasonNumber  int
	EpisodeNumber int
	Title         *string
	Rating        *float64
}

const resource = "series"
