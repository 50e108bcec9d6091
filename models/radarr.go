// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Movie is a Radarr library entry (also used for /movie/lookup results,
// where ID is zero).
type Movie struct {
	ID                  int64          `json:"id,omitempty"`
	Title               string         `json:"title"`
	OriginalLanguage    Language       `json:"originalLanguage"`
	SizeOnDisk          int64          `json:"sizeOnDisk"`
	Status              string         `json:"status"`
	Overview            string         `json:"overview"`
	Path                string         `json:"path,omitempty"`
	Studio              string         `json:"studio,omitempty"`
	Genres              []string       `json:"genres"`
	Year                int            `json:"year"`
	Monitored           bool           `json:"monitored"`
	HasFile             bool           `json:"hasFile"`
	Runtime             int            `json:"runtime"`
	TmdbID              int64          `json:"tmdbId"`
	QualityProfileID    int64          `json:"qualityProfileId,omitempty"`
	MinimumAvailability string         `json:"minimumAvailability,omitempty"`
	Certification       string         `json:"certification,omitempty"`
	Tags                []int64        `json:"tags"`
	Ratings             MovieRatings   `json:"ratings"`
	MovieFile           *MovieFile     `json:"movieFile,omitempty"`
	Collection          *CollectionRef `json:"collection,omitempty"`
}

type MovieRatings struct {
	Imdb           *Rating `json:"imdb,omitempty"`
	Tmdb           *Rating `json:"tmdb,omitempty"`
	RottenTomatoes *Rating `json:"rottenTomatoes,omitempty"`
}

type MovieFile struct {
	RelativePath string         `json:"relativePath"`
	Path         string         `json:"path"`
	Size         int64          `json:"size"`
	DateAdded    time.Time      `json:"dateAdded"`
	Quality      QualityWrapper `json:"quality"`
}

type CollectionRef struct {
	Title  string `json:"title"`
	TmdbID int64  `json:"tmdbId"`
}

// Collection is a Radarr movie collection.
type Collection struct {
	ID                  int64             `json:"id"`
	Title               string            `json:"title"`
	TmdbID              int64             `json:"tmdbId"`
	RootFolderPath      string            `json:"rootFolderPath"`
	SearchOnAdd         bool              `json:"searchOnAdd"`
	Monitored           bool              `json:"monitored"`
	MinimumAvailability string            `json:"minimumAvailability"`
	Overview            string            `json:"overview,omitempty"`
	QualityProfileID    int64             `json:"qualityProfileId"`
	Movies              []CollectionMovie `json:"movies,omitempty"`
}

type CollectionMovie struct {
	Title   string `json:"title"`
	TmdbID  int64  `json:"tmdbId"`
	Year    int    `json:"year"`
	Runtime int    `json:"runtime"`
}

// Credit is a cast or crew member from /credit.
type Credit struct {
	PersonName string `json:"personName"`
	Character  string `json:"character,omitempty"`
	Department string `json:"department,omitempty"`
	Job        string `json:"job,omitempty"`
	Type       string `json:"type"`
}

// Release is a manual-search result from /release.
type Release struct {
	GUID       string         `json:"guid"`
	Title      string         `json:"title"`
	Protocol   string         `json:"protocol"`
	Age        int            `json:"age"`
	Indexer    string         `json:"indexer"`
	IndexerID  int64          `json:"indexerId"`
	Size       int64          `json:"size"`
	Rejected   bool           `json:"rejected"`
	Rejections []string       `json:"rejections,omitempty"`
	Seeders    *int64         `json:"seeders,omitempty"`
	Leechers   *int64         `json:"leechers,omitempty"`
	Languages  []Language     `json:"languages,omitempty"`
	Quality    QualityWrapper `json:"quality"`
}

// MovieHistoryItem is one event of /history/movie.
type MovieHistoryItem struct {
	SourceTitle string         `json:"sourceTitle"`
	Quality     QualityWrapper `json:"quality"`
	Languages   []Language     `json:"languages,omitempty"`
	Date        time.Time      `json:"date"`
	EventType   string         `json:"eventType"`
}

// AddMovieBody is the body of POST /movie.
type AddMovieBody struct {
	TmdbID              int64           `json:"tmdbId"`
	Title               string          `json:"title"`
	RootFolderPath      string          `json:"rootFolderPath"`
	QualityProfileID    int64           `json:"qualityProfileId"`
	MinimumAvailability string          `json:"minimumAvailability"`
	Monitored           bool            `json:"monitored"`
	Tags                []int64         `json:"tags"`
	AddOptions          AddMovieOptions `json:"addOptions"`
}

type AddMovieOptions struct {
	Monitor        string `json:"monitor"`
	SearchForMovie bool   `json:"searchForMovie"`
}

// EditMovieBody is the body of PUT /movie/editor. Nil fields are left
// untouched by the server.
type EditMovieBody struct {
	MovieIDs            []int64 `json:"movieIds"`
	Monitored           *bool   `json:"monitored,omitempty"`
	QualityProfileID    *int64  `json:"qualityProfileId,omitempty"`
	MinimumAvailability *string `json:"minimumAvailability,omitempty"`
	RootFolderPath      *string `json:"rootFolderPath,omitempty"`
	MoveFiles           bool    `json:"moveFiles"`
	Tags                []int64 `json:"tags,omitempty"`
	ApplyTags           string  `json:"applyTags,omitempty"`
}

// ReleaseDownloadBody is the body of POST /release.
type ReleaseDownloadBody struct {
	GUID      string `json:"guid"`
	IndexerID int64  `json:"indexerId"`
	MovieID   int64  `json:"movieId,omitempty"`
}
