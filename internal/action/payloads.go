// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package action

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Payload is the typed argument set of an operation. Every field that can be
// supplied from the command line carries an `arg` tag (the flag name) and a
// `usage` tag; `default` gives the flag default and `required:"true"` marks
// fields the command line must provide.
type Payload interface {
	Validate() error
}

// DefaultLogEvents is the page size used for list-logs when none is given.
const DefaultLogEvents = 500

var (
	ErrNonPositiveID   = errors.New("id must be a positive number")
	ErrEmptyQuery      = errors.New("search query must not be empty")
	ErrEmptyIDList     = errors.New("at least one id is required")
	ErrNonPositiveSize = errors.New("count must be a positive number")
	ErrEmptyValue      = errors.New("value must not be empty")
	ErrNothingToChange = errors.New("nothing to change")
	ErrUnknownChoice   = errors.New("unsupported value")
)

func positive(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: %w", name, ErrNonPositiveID)
	}
	return nil
}

func notBlank(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s: %w", name, ErrEmptyValue)
	}
	return nil
}

func oneOf(name, v string, allowed ...string) error {
	if !slices.Contains(allowed, v) {
		return fmt.Errorf("%s %q: %w (allowed: %s)", name, v, ErrUnknownChoice, strings.Join(allowed, ", "))
	}
	return nil
}

// NoPayload is the payload of operations without arguments.
type NoPayload struct{}

func (NoPayload) Validate() error { return nil }

// ── id references ────────────────────────────────────────────────────────────

type MovieRef struct {
	MovieID int64 `json:"movieId" arg:"movie-id" usage:"Radarr movie id" required:"true"`
}

func (p MovieRef) Validate() error { return positive("movie id", p.MovieID) }

type SeriesRef struct {
	SeriesID int64 `json:"seriesId" arg:"series-id" usage:"series id" required:"true"`
}

func (p SeriesRef) Validate() error { return positive("series id", p.SeriesID) }

type EpisodeRef struct {
	EpisodeID int64 `json:"episodeId" arg:"episode-id" usage:"episode id" required:"true"`
}

func (p EpisodeRef) Validate() error { return positive("episode id", p.EpisodeID) }

type ArtistRef struct {
	ArtistID int64 `json:"artistId" arg:"artist-id" usage:"Lidarr artist id" required:"true"`
}

func (p ArtistRef) Validate() error { return positive("artist id", p.ArtistID) }

type AuthorRef struct {
	AuthorID int64 `json:"authorId" arg:"author-id" usage:"Readarr author id" required:"true"`
}

func (p AuthorRef) Validate() error { return positive("author id", p.AuthorID) }

type TagRef struct {
	TagID int64 `json:"tagId" arg:"tag-id" usage:"tag id" required:"true"`
}

func (p TagRef) Validate() error { return positive("tag id", p.TagID) }

type IndexerRef struct {
	IndexerID int64 `json:"indexerId" arg:"indexer-id" usage:"indexer id" required:"true"`
}

func (p IndexerRef) Validate() error { return positive("indexer id", p.IndexerID) }

type DownloadRef struct {
	DownloadID int64 `json:"downloadId" arg:"download-id" usage:"queue record id" required:"true"`
}

func (p DownloadRef) Validate() error { return positive("download id", p.DownloadID) }

type BlocklistItemRef struct {
	BlocklistItemID int64 `json:"blocklistItemId" arg:"blocklist-item-id" usage:"blocklist item id" required:"true"`
}

func (p BlocklistItemRef) Validate() error { return positive("blocklist item id", p.BlocklistItemID) }

type RootFolderRef struct {
	RootFolderID int64 `json:"rootFolderId" arg:"root-folder-id" usage:"root folder id" required:"true"`
}

func (p RootFolderRef) Validate() error { return positive("root folder id", p.RootFolderID) }

// ── arguments ────────────────────────────────────────────────────────────────

// BlocklistIDs lists the blocklist items removed by clear-blocklist. The
// bulk endpoint needs explicit ids; the interactive client fills them from
// the loaded blocklist.
type BlocklistIDs struct {
	IDs []int64 `json:"ids" arg:"blocklist-item-ids" usage:"blocklist item ids (comma separated or repeated)" required:"true"`
}

func (p BlocklistIDs) Validate() error {
	if len(p.IDs) == 0 {
		return fmt.Errorf("blocklist item ids: %w", ErrEmptyIDList)
	}
	for _, id := range p.IDs {
		if err := positive("blocklist item id", id); err != nil {
			return err
		}
	}
	return nil
}

type LogsQuery struct {
	Events int `json:"events" arg:"events" usage:"number of log events to fetch" default:"500"`
}

func (p LogsQuery) Validate() error {
	if p.Events <= 0 {
		return fmt.Errorf("events: %w", ErrNonPositiveSize)
	}
	return nil
}

type SearchQuery struct {
	Term string `json:"term" arg:"term" usage:"search term" required:"true"`
}

func (p SearchQuery) Validate() error {
	if strings.TrimSpace(p.Term) == "" {
		return ErrEmptyQuery
	}
	return nil
}

type TaskName struct {
	Name string `json:"name" arg:"task-name" usage:"name of the task to start, e.g. ApplicationCheckUpdate" required:"true"`
}

func (p TaskName) Validate() error { return notBlank("task name", p.Name) }

type TagLabel struct {
	Label string `json:"label" arg:"name" usage:"tag label" required:"true"`
}

func (p TagLabel) Validate() error { return notBlank("tag name", p.Label) }

type RootFolderPath struct {
	Path string `json:"path" arg:"root-folder-path" usage:"absolute path on the backend host" required:"true"`
}

func (p RootFolderPath) Validate() error { return notBlank("root folder path", p.Path) }

// Radarr minimum availability values.
var minimumAvailability = []string{"announced", "inCinemas", "released", "tba"}

// AddMovieParams adds a movie found through search-new-movie.
type AddMovieParams struct {
	TmdbID              int64   `json:"tmdbId" arg:"tmdb-id" usage:"TMDB id of the movie" required:"true"`
	Title               string  `json:"title" arg:"title" usage:"movie title" required:"true"`
	RootFolderPath      string  `json:"rootFolderPath" arg:"root-folder-path" usage:"root folder to add the movie to" required:"true"`
	QualityProfileID    int64   `json:"qualityProfileId" arg:"quality-profile-id" usage:"quality profile id" required:"true"`
	MinimumAvailability string  `json:"minimumAvailability" arg:"minimum-availability" usage:"announced, inCinemas, released or tba" default:"released"`
	Monitor             string  `json:"monitor" arg:"monitor" usage:"movieOnly, movieAndCollection or none" default:"movieOnly"`
	Tags                []int64 `json:"tags,omitempty" arg:"tag" usage:"tag id (repeatable)"`
	NoSearch            bool    `json:"noSearch" arg:"no-search" usage:"do not search for the movie after adding"`
}

func (p AddMovieParams) Validate() error {
	return errors.Join(
		positive("tmdb id", p.TmdbID),
		notBlank("title", p.Title),
		notBlank("root folder path", p.RootFolderPath),
		positive("quality profile id", p.QualityProfileID),
		oneOf("minimum availability", p.MinimumAvailability, minimumAvailability...),
		oneOf("monitor", p.Monitor, "movieOnly", "movieAndCollection", "none"),
	)
}

// EditMovieParams changes the attributes of one movie. Unset fields stay as
// they are on the server.
type EditMovieParams struct {
	MovieID             int64   `json:"movieId" arg:"movie-id" usage:"Radarr movie id" required:"true"`
	Monitored           *bool   `json:"monitored,omitempty" arg:"monitored" usage:"monitor the movie"`
	QualityProfileID    *int64  `json:"qualityProfileId,omitempty" arg:"quality-profile-id" usage:"new quality profile id"`
	MinimumAvailability *string `json:"minimumAvailability,omitempty" arg:"minimum-availability" usage:"announced, inCinemas, released or tba"`
	RootFolderPath      *string `json:"rootFolderPath,omitempty" arg:"root-folder-path" usage:"move the movie to this root folder"`
	Tags                []int64 `json:"tags,omitempty" arg:"tag" usage:"replace tags with these ids (repeatable)"`
}

func (p EditMovieParams) Validate() error {
	if err := positive("movie id", p.MovieID); err != nil {
		return err
	}
	if p.Monitored == nil && p.QualityProfileID == nil && p.MinimumAvailability == nil &&
		p.RootFolderPath == nil && len(p.Tags) == 0 {
		return ErrNothingToChange
	}
	if p.QualityProfileID != nil {
		if err := positive("quality profile id", *p.QualityProfileID); err != nil {
			return err
		}
	}
	if p.MinimumAvailability != nil {
		if err := oneOf("minimum availability", *p.MinimumAvailability, minimumAvailability...); err != nil {
			return err
		}
	}
	if p.RootFolderPath != nil {
		return notBlank("root folder path", *p.RootFolderPath)
	}
	return nil
}

type DeleteMovieParams struct {
	MovieID          int64 `json:"movieId" arg:"movie-id" usage:"Radarr movie id" required:"true"`
	DeleteFiles      bool  `json:"deleteFiles" arg:"delete-files" usage:"also delete files on disk"`
	AddListExclusion bool  `json:"addListExclusion" arg:"add-list-exclusion" usage:"exclude the movie from import lists"`
}

func (p DeleteMovieParams) Validate() error { return positive("movie id", p.MovieID) }

type DeleteSeriesParams struct {
	SeriesID         int64 `json:"seriesId" arg:"series-id" usage:"series id" required:"true"`
	DeleteFiles      bool  `json:"deleteFiles" arg:"delete-files" usage:"also delete files on disk"`
	AddListExclusion bool  `json:"addListExclusion" arg:"add-list-exclusion" usage:"exclude the series from import lists"`
}

func (p DeleteSeriesParams) Validate() error { return positive("series id", p.SeriesID) }

type DeleteArtistParams struct {
	ArtistID         int64 `json:"artistId" arg:"artist-id" usage:"Lidarr artist id" required:"true"`
	DeleteFiles      bool  `json:"deleteFiles" arg:"delete-files" usage:"also delete files on disk"`
	AddListExclusion bool  `json:"addListExclusion" arg:"add-list-exclusion" usage:"exclude the artist from import lists"`
}

func (p DeleteArtistParams) Validate() error { return positive("artist id", p.ArtistID) }

type DeleteAuthorParams struct {
	AuthorID         int64 `json:"authorId" arg:"author-id" usage:"Readarr author id" required:"true"`
	DeleteFiles      bool  `json:"deleteFiles" arg:"delete-files" usage:"also delete files on disk"`
	AddListExclusion bool  `json:"addListExclusion" arg:"add-list-exclusion" usage:"exclude the author from import lists"`
}

func (p DeleteAuthorParams) Validate() error { return positive("author id", p.AuthorID) }

// ReleaseParams downloads one release returned by list-releases.
type ReleaseParams struct {
	GUID      string `json:"guid" arg:"guid" usage:"release guid" required:"true"`
	IndexerID int64  `json:"indexerId" arg:"indexer-id" usage:"indexer that returned the release" required:"true"`
	MovieID   int64  `json:"movieId" arg:"movie-id" usage:"Radarr movie id" required:"true"`
}

func (p ReleaseParams) Validate() error {
	return errors.Join(
		notBlank("guid", p.GUID),
		positive("indexer id", p.IndexerID),
		positive("movie id", p.MovieID),
	)
}

type EpisodeMonitorParams struct {
	EpisodeID int64 `json:"episodeId" arg:"episode-id" usage:"episode id" required:"true"`
	Monitored bool  `json:"monitored" arg:"monitored" usage:"monitor (true) or unmonitor (false) the episode"`
}

func (p EpisodeMonitorParams) Validate() error { return positive("episode id", p.EpisodeID) }
