// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Artist is a Lidarr library entry.
type Artist struct {
	ID                int64             `json:"id,omitempty"`
	ArtistName        string            `json:"artistName"`
	ForeignArtistID   string            `json:"foreignArtistId"`
	Status            string            `json:"status"`
	Overview          string            `json:"overview,omitempty"`
	ArtistType        string            `json:"artistType,omitempty"`
	Disambiguation    string            `json:"disambiguation,omitempty"`
	Path              string            `json:"path,omitempty"`
	Monitored         bool              `json:"monitored"`
	QualityProfileID  int64             `json:"qualityProfileId,omitempty"`
	MetadataProfileID int64             `json:"metadataProfileId,omitempty"`
	Genres            []string          `json:"genres"`
	Tags              []int64           `json:"tags"`
	Statistics        *LibraryStatistic `json:"statistics,omitempty"`
}

// Album belongs to an [Artist].
type Album struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	ArtistID       int64             `json:"artistId"`
	ForeignAlbumID string            `json:"foreignAlbumId"`
	AlbumType      string            `json:"albumType"`
	ReleaseDate    *time.Time        `json:"releaseDate,omitempty"`
	Monitored      bool              `json:"monitored"`
	Statistics     *LibraryStatistic `json:"statistics,omitempty"`
}

// Author is a Readarr library entry.
type Author struct {
	ID               int64             `json:"id,omitempty"`
	AuthorName       string            `json:"authorName"`
	ForeignAuthorID  string            `json:"foreignAuthorId"`
	Status           string            `json:"status"`
	Overview         string            `json:"overview,omitempty"`
	Path             string            `json:"path,omitempty"`
	Monitored        bool              `json:"monitored"`
	QualityProfileID int64             `json:"qualityProfileId,omitempty"`
	Genres           []string          `json:"genres"`
	Tags             []int64           `json:"tags"`
	Statistics       *LibraryStatistic `json:"statistics,omitempty"`
}

// Book belongs to an [Author].
type Book struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	AuthorID      int64             `json:"authorId"`
	ForeignBookID string            `json:"foreignBookId"`
	ReleaseDate   *time.Time        `json:"releaseDate,omitempty"`
	PageCount     int               `json:"pageCount"`
	Monitored     bool              `json:"monitored"`
	Statistics    *LibraryStatistic `json:"statistics,omitempty"`
}

// LibraryStatistic is the statistics block shared by Lidarr and Readarr
// entities.
type LibraryStatistic struct {
	TrackFileCount  int     `json:"trackFileCount,omitempty"`
	TrackCount      int     `json:"trackCount,omitempty"`
	BookFileCount   int     `json:"bookFileCount,omitempty"`
	BookCount       int     `json:"bookCount,omitempty"`
	TotalCount      int     `json:"totalTrackCount,omitempty"`
	SizeOnDisk      int64   `json:"sizeOnDisk"`
	PercentOfTracks float64 `json:"percentOfTracks,omitempty"`
	PercentOfBooks  float64 `json:"percentOfBooks,omitempty"`
}
