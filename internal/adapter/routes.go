// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/models"
)

type requestBuilder func(a action.Action) (Request, error)

// decoder turns a 2xx body into the operation's typed result.
type decoder func(body []byte) (any, error)

type route struct {
	build  requestBuilder
	decode decoder
	// allowEmpty routes succeed with [models.Empty] on an empty body.
	allowEmpty bool
}

type routeTable map[action.Operation]route

const (
	queuePageSize     = 500
	blocklistPageSize = 10000
	historyPageSize   = 500
)

// ── builders ─────────────────────────────────────────────────────────────────

func static(method, path string, query url.Values) requestBuilder {
	return func(action.Action) (Request, error) {
		return Request{Method: method, Path: path, Query: query}, nil
	}
}

func with[P action.Payload](fn func(p P) Request) requestBuilder {
	return func(a action.Action) (Request, error) {
		p, err := action.PayloadAs[P](a)
		if err != nil {
			return Request{}, err
		}
		return fn(p), nil
	}
}

func command(cmd models.Command) requestBuilder {
	return static(http.MethodPost, "/command", nil).withBody(cmd)
}

func (b requestBuilder) withBody(body any) requestBuilder {
	return func(a action.Action) (Request, error) {
		r, err := b(a)
		r.Body = body
		return r, err
	}
}

func decodeAs[T any]() decoder {
	return func(body []byte) (any, error) {
		var v T
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// discard is used by PUT and DELETE routes whose response bodies carry
// nothing the client shows.
func discard(body []byte) (any, error) {
	return models.Empty{}, nil
}

func read[T any](b requestBuilder) route {
	return route{build: b, decode: decodeAs[T]()}
}

func write(b requestBuilder) route {
	return route{build: b, decode: discard, allowEmpty: true}
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func values(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return q
}

func deleteQuery(deleteFiles, addExclusion bool, exclusionParam string) url.Values {
	return values(
		"deleteFiles", strconv.FormatBool(deleteFiles),
		exclusionParam, strconv.FormatBool(addExclusion),
	)
}

func ptr[T any](v T) *T {
	return &v
}

// ── tables ───────────────────────────────────────────────────────────────────

func systemRoutes() routeTable {
	return routeTable{
		action.GetSystemStatus: read[models.SystemStatus](static(http.MethodGet, "/system/status", nil)),
		action.ListHealth:      read[[]models.HealthCheck](static(http.MethodGet, "/health", nil)),
		action.ListLogs: read[models.LogResponse](with(func(p action.LogsQuery) Request {
			return Request{Method: http.MethodGet, Path: "/log", Query: values(
				"page", "1",
				"pageSize", strconv.Itoa(p.Events),
				"sortDirection", "descending",
				"sortKey", "time",
			)}
		})),
		action.ListTasks: read[[]models.Task](static(http.MethodGet, "/system/task", nil)),
		action.StartTask: read[models.CommandResponse](with(func(p action.TaskName) Request {
			return Request{Method: http.MethodPost, Path: "/command", Body: models.Command{Name: p.Name}}
		})),
		action.ListUpdates: read[[]models.Update](static(http.MethodGet, "/update", nil)),
		action.ListTags:    read[[]models.Tag](static(http.MethodGet, "/tag", nil)),
		action.AddTag: read[models.Tag](with(func(p action.TagLabel) Request {
			return Request{Method: http.MethodPost, Path: "/tag", Body: models.Tag{Label: p.Label}}
		})),
		action.DeleteTag: write(with(func(p action.TagRef) Request {
			return Request{Method: http.MethodDelete, Path: "/tag/" + id(p.TagID)}
		})),
		action.ListIndexers: read[[]models.Indexer](static(http.MethodGet, "/indexer", nil)),
		action.DeleteIndexer: write(with(func(p action.IndexerRef) Request {
			return Request{Method: http.MethodDelete, Path: "/indexer/" + id(p.IndexerID)}
		})),
		action.TestAllIndexers: read[[]models.IndexerTestResult](static(http.MethodPost, "/indexer/testall", nil)),
	}
}

func libraryRoutes() routeTable {
	return routeTable{
		action.ListDownloads: read[models.QueueResponse](static(http.MethodGet, "/queue",
			values("page", "1", "pageSize", strconv.Itoa(queuePageSize)))),
		action.DeleteDownload: write(with(func(p action.DownloadRef) Request {
			return Request{Method: http.MethodDelete, Path: "/queue/" + id(p.DownloadID),
				Query: values("removeFromClient", "true", "blocklist", "false")}
		})),
		action.RefreshDownloads: read[models.CommandResponse](command(models.Command{Name: "RefreshMonitoredDownloads"})),
		action.ListBlocklist: read[models.BlocklistResponse](static(http.MethodGet, "/blocklist",
			values("page", "1", "pageSize", strconv.Itoa(blocklistPageSize)))),
		action.DeleteBlocklistItem: write(with(func(p action.BlocklistItemRef) Request {
			return Request{Method: http.MethodDelete, Path: "/blocklist/" + id(p.BlocklistItemID)}
		})),
		action.ClearBlocklist: write(with(func(p action.BlocklistIDs) Request {
			return Request{Method: http.MethodDelete, Path: "/blocklist/bulk", Body: models.BulkIDs{IDs: p.IDs}}
		})),
		action.ListRootFolders: read[[]models.RootFolder](static(http.MethodGet, "/rootfolder", nil)),
		action.AddRootFolder: read[models.RootFolder](with(func(p action.RootFolderPath) Request {
			return Request{Method: http.MethodPost, Path: "/rootfolder", Body: models.AddRootFolderBody{Path: p.Path}}
		})),
		action.DeleteRootFolder: write(with(func(p action.RootFolderRef) Request {
			return Request{Method: http.MethodDelete, Path: "/rootfolder/" + id(p.RootFolderID)}
		})),
		action.ListQualityProfiles: read[[]models.QualityProfile](static(http.MethodGet, "/qualityprofile", nil)),
		action.ListDiskSpace:       read[[]models.DiskSpace](static(http.MethodGet, "/diskspace", nil)),
	}
}

func radarrRoutes() routeTable {
	return routeTable{
		action.ListMovies: read[[]models.Movie](static(http.MethodGet, "/movie", nil)),
		action.GetMovieDetails: read[models.Movie](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodGet, Path: "/movie/" + id(p.MovieID)}
		})),
		action.GetMovieHistory: read[[]models.MovieHistoryItem](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodGet, Path: "/history/movie", Query: values("movieId", id(p.MovieID))}
		})),
		action.GetMovieCredits: read[[]models.Credit](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodGet, Path: "/credit", Query: values("movieId", id(p.MovieID))}
		})),
		action.ListReleases: read[[]models.Release](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodGet, Path: "/release", Query: values("movieId", id(p.MovieID))}
		})),
		action.SearchNewMovie: read[[]models.Movie](with(func(p action.SearchQuery) Request {
			return Request{Method: http.MethodGet, Path: "/movie/lookup", Query: values("term", p.Term)}
		})),
		action.AddMovie: read[models.Movie](with(func(p action.AddMovieParams) Request {
			return Request{Method: http.MethodPost, Path: "/movie", Body: models.AddMovieBody{
				TmdbID:              p.TmdbID,
				Title:               p.Title,
				RootFolderPath:      p.RootFolderPath,
				QualityProfileID:    p.QualityProfileID,
				MinimumAvailability: p.MinimumAvailability,
				Monitored:           p.Monitor != "none",
				Tags:                nonNil(p.Tags),
				AddOptions: models.AddMovieOptions{
					Monitor:        p.Monitor,
					SearchForMovie: !p.NoSearch,
				},
			}}
		})),
		action.EditMovie: write(with(func(p action.EditMovieParams) Request {
			body := models.EditMovieBody{
				MovieIDs:            []int64{p.MovieID},
				Monitored:           p.Monitored,
				QualityProfileID:    p.QualityProfileID,
				MinimumAvailability: p.MinimumAvailability,
				RootFolderPath:      p.RootFolderPath,
				MoveFiles:           p.RootFolderPath != nil,
			}
			if len(p.Tags) > 0 {
				body.Tags = p.Tags
				body.ApplyTags = "replace"
			}
			return Request{Method: http.MethodPut, Path: "/movie/editor", Body: body}
		})),
		action.DeleteMovie: write(with(func(p action.DeleteMovieParams) Request {
			return Request{Method: http.MethodDelete, Path: "/movie/" + id(p.MovieID),
				Query: deleteQuery(p.DeleteFiles, p.AddListExclusion, "addImportExclusion")}
		})),
		action.ListCollections: read[[]models.Collection](static(http.MethodGet, "/collection", nil)),
		action.RefreshMovie: read[models.CommandResponse](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "RefreshMovie", MovieIDs: []int64{p.MovieID}}}
		})),
		action.RefreshAllMovies:   read[models.CommandResponse](command(models.Command{Name: "RefreshMovie"})),
		action.RefreshCollections: read[models.CommandResponse](command(models.Command{Name: "RefreshCollections"})),
		action.TriggerAutomaticMovieSearch: read[models.CommandResponse](with(func(p action.MovieRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "MoviesSearch", MovieIDs: []int64{p.MovieID}}}
		})),
		action.DownloadRelease: read[models.Release](with(func(p action.ReleaseParams) Request {
			return Request{Method: http.MethodPost, Path: "/release",
				Body: models.ReleaseDownloadBody{GUID: p.GUID, IndexerID: p.IndexerID, MovieID: p.MovieID}}
		})),
	}
}

func seriesRoutes() routeTable {
	return routeTable{
		action.ListSeries: read[[]models.Series](static(http.MethodGet, "/series", nil)),
		action.GetSeriesDetails: read[models.Series](with(func(p action.SeriesRef) Request {
			return Request{Method: http.MethodGet, Path: "/series/" + id(p.SeriesID)}
		})),
		action.ListEpisodes: read[[]models.Episode](with(func(p action.SeriesRef) Request {
			return Request{Method: http.MethodGet, Path: "/episode", Query: values("seriesId", id(p.SeriesID))}
		})),
		action.GetEpisodeDetails: read[models.Episode](with(func(p action.EpisodeRef) Request {
			return Request{Method: http.MethodGet, Path: "/episode/" + id(p.EpisodeID)}
		})),
		action.GetSeriesHistory: read[[]models.SeriesHistoryItem](with(func(p action.SeriesRef) Request {
			return Request{Method: http.MethodGet, Path: "/history/series", Query: values("seriesId", id(p.SeriesID))}
		})),
		action.SearchNewSeries: read[[]models.Series](with(func(p action.SearchQuery) Request {
			return Request{Method: http.MethodGet, Path: "/series/lookup", Query: values("term", p.Term)}
		})),
		action.DeleteSeries: write(with(func(p action.DeleteSeriesParams) Request {
			return Request{Method: http.MethodDelete, Path: "/series/" + id(p.SeriesID),
				Query: deleteQuery(p.DeleteFiles, p.AddListExclusion, "addImportListExclusion")}
		})),
		action.RefreshSeries: read[models.CommandResponse](with(func(p action.SeriesRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "RefreshSeries", SeriesID: ptr(p.SeriesID)}}
		})),
		action.RefreshAllSeries: read[models.CommandResponse](command(models.Command{Name: "RefreshSeries"})),
		action.TriggerAutomaticSeriesSearch: read[models.CommandResponse](with(func(p action.SeriesRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "SeriesSearch", SeriesID: ptr(p.SeriesID)}}
		})),
		action.TriggerAutomaticEpisodeSearch: read[models.CommandResponse](with(func(p action.EpisodeRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "EpisodeSearch", EpisodeIDs: []int64{p.EpisodeID}}}
		})),
		action.ToggleEpisodeMonitoring: write(with(func(p action.EpisodeMonitorParams) Request {
			return Request{Method: http.MethodPut, Path: "/episode/monitor",
				Body: models.MonitorEpisodeBody{EpisodeIDs: []int64{p.EpisodeID}, Monitored: p.Monitored}}
		})),
	}
}

func lidarrRoutes() routeTable {
	return routeTable{
		action.ListArtists: read[[]models.Artist](static(http.MethodGet, "/artist", nil)),
		action.GetArtistDetails: read[models.Artist](with(func(p action.ArtistRef) Request {
			return Request{Method: http.MethodGet, Path: "/artist/" + id(p.ArtistID)}
		})),
		action.ListAlbums: read[[]models.Album](with(func(p action.ArtistRef) Request {
			return Request{Method: http.MethodGet, Path: "/album", Query: values("artistId", id(p.ArtistID))}
		})),
		action.SearchNewArtist: read[[]models.Artist](with(func(p action.SearchQuery) Request {
			return Request{Method: http.MethodGet, Path: "/artist/lookup", Query: values("term", p.Term)}
		})),
		action.DeleteArtist: write(with(func(p action.DeleteArtistParams) Request {
			return Request{Method: http.MethodDelete, Path: "/artist/" + id(p.ArtistID),
				Query: deleteQuery(p.DeleteFiles, p.AddListExclusion, "addImportListExclusion")}
		})),
		action.RefreshArtist: read[models.CommandResponse](with(func(p action.ArtistRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "RefreshArtist", ArtistID: ptr(p.ArtistID)}}
		})),
		action.RefreshAllArtists: read[models.CommandResponse](command(models.Command{Name: "RefreshArtist"})),
	}
}

func readarrRoutes() routeTable {
	return routeTable{
		action.ListAuthors: read[[]models.Author](static(http.MethodGet, "/author", nil)),
		action.GetAuthorDetails: read[models.Author](with(func(p action.AuthorRef) Request {
			return Request{Method: http.MethodGet, Path: "/author/" + id(p.AuthorID)}
		})),
		action.ListBooks: read[[]models.Book](with(func(p action.AuthorRef) Request {
			return Request{Method: http.MethodGet, Path: "/book", Query: values("authorId", id(p.AuthorID))}
		})),
		action.SearchNewAuthor: read[[]models.Author](with(func(p action.SearchQuery) Request {
			return Request{Method: http.MethodGet, Path: "/author/lookup", Query: values("term", p.Term)}
		})),
		action.DeleteAuthor: write(with(func(p action.DeleteAuthorParams) Request {
			return Request{Method: http.MethodDelete, Path: "/author/" + id(p.AuthorID),
				Query: deleteQuery(p.DeleteFiles, p.AddListExclusion, "addImportListExclusion")}
		})),
		action.RefreshAuthor: read[models.CommandResponse](with(func(p action.AuthorRef) Request {
			return Request{Method: http.MethodPost, Path: "/command",
				Body: models.Command{Name: "RefreshAuthor", AuthorID: ptr(p.AuthorID)}}
		})),
		action.RefreshAllAuthors: read[models.CommandResponse](command(models.Command{Name: "RefreshAuthor"})),
	}
}

func prowlarrRoutes() routeTable {
	return routeTable{
		action.ListApplications: read[[]models.Application](static(http.MethodGet, "/applications", nil)),
		action.ListIndexerStats: read[models.IndexerStats](static(http.MethodGet, "/indexerstats", nil)),
		action.SearchReleases: read[[]models.SearchResult](with(func(p action.SearchQuery) Request {
			return Request{Method: http.MethodGet, Path: "/search", Query: values("query", p.Term, "type", "search")}
		})),
		action.ListHistory: read[models.HistoryResponse](static(http.MethodGet, "/history", values(
			"page", "1",
			"pageSize", strconv.Itoa(historyPageSize),
			"sortDirection", "descending",
			"sortKey", "date",
		))),
	}
}

// routesFor assembles the complete table of kind.
func routesFor(kind models.BackendKind) routeTable {
	var groups []routeTable
	switch kind {
	case models.Radarr:
		groups = []routeTable{radarrRoutes(), libraryRoutes(), systemRoutes()}
	case models.Sonarr, models.Whisparr:
		groups = []routeTable{seriesRoutes(), libraryRoutes(), systemRoutes()}
	case models.Lidarr:
		groups = []routeTable{lidarrRoutes(), libraryRoutes(), systemRoutes()}
	case models.Readarr:
		groups = []routeTable{readarrRoutes(), libraryRoutes(), systemRoutes()}
	case models.Prowlarr:
		groups = []routeTable{prowlarrRoutes(), systemRoutes()}
	}

	table := routeTable{}
	for _, g := range groups {
		for op, r := range g {
			table[op] = r
		}
	}
	return table
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
