// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Application is a downstream servarr that Prowlarr syncs indexers to.
type Application struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Implementation string  `json:"implementation"`
	SyncLevel      string  `json:"syncLevel"`
	Tags           []int64 `json:"tags"`
}

// IndexerStats is the /indexerstats document.
type IndexerStats struct {
	Indexers []IndexerStatistic `json:"indexers"`
}

type IndexerStatistic struct {
	IndexerID             int64  `json:"indexerId"`
	IndexerName           string `json:"indexerName"`
	AverageResponseTime   int64  `json:"averageResponseTime"`
	NumberOfQueries       int64  `json:"numberOfQueries"`
	NumberOfGrabs         int64  `json:"numberOfGrabs"`
	NumberOfRssQueries    int64  `json:"numberOfRssQueries"`
	NumberOfAuthQueries   int64  `json:"numberOfAuthQueries"`
	NumberOfFailedQueries int64  `json:"numberOfFailedQueries"`
	NumberOfFailedGrabs   int64  `json:"numberOfFailedGrabs"`
}

// SearchResult is one hit of a Prowlarr /search.
type SearchResult struct {
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	Indexer     string     `json:"indexer"`
	IndexerID   int64      `json:"indexerId"`
	Size        int64      `json:"size"`
	Seeders     *int64     `json:"seeders,omitempty"`
	Leechers    *int64     `json:"leechers,omitempty"`
	Protocol    string     `json:"protocol"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
}

// HistoryResponse is the paged Prowlarr /history document.
type HistoryResponse struct {
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalRecords int           `json:"totalRecords"`
	Records      []HistoryItem `json:"records"`
}

type HistoryItem struct {
	ID         int64             `json:"id"`
	IndexerID  int64             `json:"indexerId"`
	Date       time.Time         `json:"date"`
	EventType  string            `json:"eventType"`
	Successful bool              `json:"successful"`
	Data       map[string]string `json:"data,omitempty"`
}
