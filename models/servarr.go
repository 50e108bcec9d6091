// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Empty is the success value of operations whose response body may
// legitimately be empty (deletions, bulk clears).
type Empty struct{}

// SystemStatus is the /system/status document every servarr exposes.
type SystemStatus struct {
	AppName        string    `json:"appName"`
	InstanceName   string    `json:"instanceName"`
	Version        string    `json:"version"`
	Branch         string    `json:"branch"`
	OsName         string    `json:"osName"`
	IsDocker       bool      `json:"isDocker"`
	StartTime      time.Time `json:"startTime"`
	StartupPath    string    `json:"startupPath"`
	AppData        string    `json:"appData"`
	Authentication string    `json:"authentication"`
}

// HealthCheck is one entry of /health.
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl"`
}

// LogResponse is the paged /log document.
type LogResponse struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []LogRecord `json:"records"`
}

type LogRecord struct {
	Time          time.Time `json:"time"`
	Level         string    `json:"level"`
	Logger        string    `json:"logger"`
	Message       string    `json:"message,omitempty"`
	Exception     string    `json:"exception,omitempty"`
	ExceptionType string    `json:"exceptionType,omitempty"`
}

// Task is a scheduled background job from /system/task.
type Task struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	TaskName      string     `json:"taskName"`
	Interval      int64      `json:"interval"`
	LastExecution *time.Time `json:"lastExecution,omitempty"`
	LastDuration  string     `json:"lastDuration"`
	NextExecution *time.Time `json:"nextExecution,omitempty"`
}

// Update describes an available or installed application release.
type Update struct {
	Version     string        `json:"version"`
	Branch      string        `json:"branch"`
	ReleaseDate time.Time     `json:"releaseDate"`
	Installed   bool          `json:"installed"`
	Latest      bool          `json:"latest"`
	Changes     UpdateChanges `json:"changes"`
}

type UpdateChanges struct {
	New   []string `json:"new,omitempty"`
	Fixed []string `json:"fixed,omitempty"`
}

// Tag is a user-defined label attachable to most entities.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Indexer is a configured search source.
type Indexer struct {
	ID                      int64   `json:"id"`
	Name                    string  `json:"name"`
	Implementation          string  `json:"implementation"`
	Protocol                string  `json:"protocol"`
	Priority                int     `json:"priority"`
	Enable                  bool    `json:"enable,omitempty"`
	EnableRss               bool    `json:"enableRss,omitempty"`
	EnableAutomaticSearch   bool    `json:"enableAutomaticSearch,omitempty"`
	EnableInteractiveSearch bool    `json:"enableInteractiveSearch,omitempty"`
	Tags                    []int64 `json:"tags"`
}

// IndexerTestResult is one entry of the /indexer/testall response.
type IndexerTestResult struct {
	ID                 int64               `json:"id"`
	IsValid            bool                `json:"isValid"`
	ValidationFailures []ValidationFailure `json:"validationFailures"`
}

type ValidationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
	Severity     string `json:"severity"`
}

// QueueResponse is the paged /queue document.
type QueueResponse struct {
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalRecords int           `json:"totalRecords"`
	Records      []QueueRecord `json:"records"`
}

// QueueRecord is one active download. The owning entity id depends on the
// backend kind; only the matching field is set.
type QueueRecord struct {
	ID                    int64   `json:"id"`
	Title                 string  `json:"title"`
	Status                string  `json:"status"`
	TrackedDownloadStatus string  `json:"trackedDownloadStatus,omitempty"`
	Protocol              string  `json:"protocol"`
	DownloadClient        string  `json:"downloadClient,omitempty"`
	Size                  float64 `json:"size"`
	Sizeleft              float64 `json:"sizeleft"`
	Timeleft              string  `json:"timeleft,omitempty"`
	OutputPath            string  `json:"outputPath,omitempty"`
	MovieID               *int64  `json:"movieId,omitempty"`
	SeriesID              *int64  `json:"seriesId,omitempty"`
	EpisodeID             *int64  `json:"episodeId,omitempty"`
	ArtistID              *int64  `json:"artistId,omitempty"`
	AlbumID               *int64  `json:"albumId,omitempty"`
	AuthorID              *int64  `json:"authorId,omitempty"`
	BookID                *int64  `json:"bookId,omitempty"`
}

// BlocklistResponse is the paged /blocklist document.
type BlocklistResponse struct {
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	TotalRecords int             `json:"totalRecords"`
	Records      []BlocklistItem `json:"records"`
}

type BlocklistItem struct {
	ID          int64          `json:"id"`
	SourceTitle string         `json:"sourceTitle"`
	Date        time.Time      `json:"date"`
	Protocol    string         `json:"protocol"`
	Indexer     string         `json:"indexer,omitempty"`
	Message     string         `json:"message,omitempty"`
	Quality     QualityWrapper `json:"quality"`
	MovieID     *int64         `json:"movieId,omitempty"`
	SeriesID    *int64         `json:"seriesId,omitempty"`
	ArtistID    *int64         `json:"artistId,omitempty"`
	AuthorID    *int64         `json:"authorId,omitempty"`
}

// RootFolder is a library location on the backend's filesystem.
type RootFolder struct {
	ID              int64            `json:"id"`
	Path            string           `json:"path"`
	Accessible      bool             `json:"accessible"`
	FreeSpace       int64            `json:"freeSpace"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// CommandResponse is returned by POST /command.
type CommandResponse struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Status  string     `json:"status"`
	Result  string     `json:"result,omitempty"`
	Queued  *time.Time `json:"queued,omitempty"`
	Started *time.Time `json:"started,omitempty"`
}

// Command is the body of POST /command. Only the id fields relevant to Name
// are set.
type Command struct {
	Name       string  `json:"name"`
	MovieIDs   []int64 `json:"movieIds,omitempty"`
	SeriesID   *int64  `json:"seriesId,omitempty"`
	EpisodeIDs []int64 `json:"episodeIds,omitempty"`
	ArtistID   *int64  `json:"artistId,omitempty"`
	AuthorID   *int64  `json:"authorId,omitempty"`
}

// BulkIDs is the body of bulk endpoints such as DELETE /blocklist/bulk.
type BulkIDs struct {
	IDs []int64 `json:"ids"`
}

type AddRootFolderBody struct {
	Path string `json:"path"`
}

type QualityWrapper struct {
	Quality Quality `json:"quality"`
}

type Quality struct {
	Name string `json:"name"`
}

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Rating struct {
	Votes int64   `json:"votes"`
	Value float64 `json:"value"`
}
