// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Series is a Sonarr (or Whisparr) library entry. Lookup results share the
// shape with a zero ID.
type Series struct {
	ID               int64             `json:"id,omitempty"`
	Title            string            `json:"title"`
	Status           string            `json:"status"`
	Overview         string            `json:"overview,omitempty"`
	Network          string            `json:"network,omitempty"`
	Year             int               `json:"year"`
	Path             string            `json:"path,omitempty"`
	Monitored        bool              `json:"monitored"`
	SeasonFolder     bool              `json:"seasonFolder"`
	SeriesType       string            `json:"seriesType"`
	QualityProfileID int64             `json:"qualityProfileId,omitempty"`
	TvdbID           int64             `json:"tvdbId"`
	Runtime          int               `json:"runtime"`
	Certification    string            `json:"certification,omitempty"`
	Genres           []string          `json:"genres"`
	Tags             []int64           `json:"tags"`
	Ratings          Rating            `json:"ratings"`
	Seasons          []Season          `json:"seasons,omitempty"`
	Statistics       *SeriesStatistics `json:"statistics,omitempty"`
}

type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

type SeriesStatistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

type SeasonStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Episode is one episode of a series.
type Episode struct {
	ID            int64        `json:"id"`
	SeriesID      int64        `json:"seriesId"`
	TvdbID        int64        `json:"tvdbId"`
	EpisodeFileID int64        `json:"episodeFileId"`
	SeasonNumber  int          `json:"seasonNumber"`
	EpisodeNumber int          `json:"episodeNumber"`
	Title         string       `json:"title"`
	AirDateUtc    *time.Time   `json:"airDateUtc,omitempty"`
	Overview      string       `json:"overview,omitempty"`
	HasFile       bool         `json:"hasFile"`
	Monitored     bool         `json:"monitored"`
	EpisodeFile   *EpisodeFile `json:"episodeFile,omitempty"`
}

type EpisodeFile struct {
	ID           int64          `json:"id"`
	RelativePath string         `json:"relativePath"`
	Path         string         `json:"path"`
	Size         int64          `json:"size"`
	DateAdded    time.Time      `json:"dateAdded"`
	Quality      QualityWrapper `json:"quality"`
}

// SeriesHistoryItem is one event of /history/series.
type SeriesHistoryItem struct {
	ID          int64          `json:"id"`
	SourceTitle string         `json:"sourceTitle"`
	EpisodeID   int64          `json:"episodeId"`
	Quality     QualityWrapper `json:"quality"`
	Languages   []Language     `json:"languages,omitempty"`
	Date        time.Time      `json:"date"`
	EventType   string         `json:"eventType"`
}

// MonitorEpisodeBody is the body of PUT /episode/monitor.
type MonitorEpisodeBody struct {
	EpisodeIDs []int64 `json:"episodeIds"`
	Monitored  bool    `json:"monitored"`
}
