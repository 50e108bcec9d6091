// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package action

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/MKhiriev/go-arr-keeper/models"
)

// Operation names one thing a backend can do. The string value is also the
// one-shot subcommand name.
type Operation string

// View names the piece of displayed state an operation populates.
type View string

// Views populated by query operations.
const (
	ViewStatus          View = "status"
	ViewHealth          View = "health"
	ViewLogs            View = "logs"
	ViewTasks           View = "tasks"
	ViewUpdates         View = "updates"
	ViewTags            View = "tags"
	ViewIndexers        View = "indexers"
	ViewDownloads       View = "downloads"
	ViewBlocklist       View = "blocklist"
	ViewRootFolders     View = "root-folders"
	ViewQualityProfiles View = "quality-profiles"
	ViewDiskSpace       View = "disk-space"
	ViewMovies          View = "movies"
	ViewMovieDetails    View = "movie-details"
	ViewMovieHistory    View = "movie-history"
	ViewMovieCredits    View = "movie-credits"
	ViewReleases        View = "releases"
	ViewMovieSearch     View = "movie-search"
	ViewCollections     View = "collections"
	ViewSeries          View = "series"
	ViewSeriesDetails   View = "series-details"
	ViewEpisodes        View = "episodes"
	ViewEpisodeDetails  View = "episode-details"
	ViewSeriesHistory   View = "series-history"
	ViewSeriesSearch    View = "series-search"
	ViewArtists         View = "artists"
	ViewArtistDetails   View = "artist-details"
	ViewAlbums          View = "albums"
	ViewArtistSearch    View = "artist-search"
	ViewAuthors         View = "authors"
	ViewAuthorDetails   View = "author-details"
	ViewBooks           View = "books"
	ViewAuthorSearch    View = "author-search"
	ViewApplications    View = "applications"
	ViewIndexerStats    View = "indexer-stats"
	ViewSearch          View = "search"
	ViewHistory         View = "history"
)

// Servarr operations shared across kinds.
const (
	GetSystemStatus     Operation = "get-system-status"
	ListHealth          Operation = "list-health"
	ListLogs            Operation = "list-logs"
	ListTasks           Operation = "list-tasks"
	StartTask           Operation = "start-task"
	ListUpdates         Operation = "list-updates"
	ListTags            Operation = "list-tags"
	AddTag              Operation = "add-tag"
	DeleteTag           Operation = "delete-tag"
	ListIndexers        Operation = "list-indexers"
	DeleteIndexer       Operation = "delete-indexer"
	TestAllIndexers     Operation = "test-all-indexers"
	ListDownloads       Operation = "list-downloads"
	DeleteDownload      Operation = "delete-download"
	RefreshDownloads    Operation = "refresh-downloads"
	ListBlocklist       Operation = "list-blocklist"
	DeleteBlocklistItem Operation = "delete-blocklist-item"
	ClearBlocklist      Operation = "clear-blocklist"
	ListRootFolders     Operation = "list-root-folders"
	AddRootFolder       Operation = "add-root-folder"
	DeleteRootFolder    Operation = "delete-root-folder"
	ListQualityProfiles Operation = "list-quality-profiles"
	ListDiskSpace       Operation = "list-disk-space"
)

// Radarr operations.
const (
	ListMovies                  Operation = "list-movies"
	GetMovieDetails             Operation = "get-movie-details"
	GetMovieHistory             Operation = "get-movie-history"
	GetMovieCredits             Operation = "get-movie-credits"
	ListReleases                Operation = "list-releases"
	SearchNewMovie              Operation = "search-new-movie"
	AddMovie                    Operation = "add-movie"
	EditMovie                   Operation = "edit-movie"
	DeleteMovie                 Operation = "delete-movie"
	ListCollections             Operation = "list-collections"
	RefreshMovie                Operation = "refresh-movie"
	RefreshAllMovies            Operation = "refresh-all-movies"
	RefreshCollections          Operation = "refresh-collections"
	TriggerAutomaticMovieSearch Operation = "trigger-automatic-movie-search"
	DownloadRelease             Operation = "download-release"
)

// Sonarr and Whisparr operations.
const (
	ListSeries                    Operation = "list-series"
	GetSeriesDetails              Operation = "get-series-details"
	ListEpisodes                  Operation = "list-episodes"
	GetEpisodeDetails             Operation = "get-episode-details"
	GetSeriesHistory              Operation = "get-series-history"
	SearchNewSeries               Operation = "search-new-series"
	DeleteSeries                  Operation = "delete-series"
	RefreshSeries                 Operation = "refresh-series"
	RefreshAllSeries              Operation = "refresh-all-series"
	TriggerAutomaticSeriesSearch  Operation = "trigger-automatic-series-search"
	TriggerAutomaticEpisodeSearch Operation = "trigger-automatic-episode-search"
	ToggleEpisodeMonitoring       Operation = "toggle-episode-monitoring"
)

// Lidarr operations.
const (
	ListArtists       Operation = "list-artists"
	GetArtistDetails  Operation = "get-artist-details"
	ListAlbums        Operation = "list-albums"
	SearchNewArtist   Operation = "search-new-artist"
	DeleteArtist      Operation = "delete-artist"
	RefreshArtist     Operation = "refresh-artist"
	RefreshAllArtists Operation = "refresh-all-artists"
)

// Readarr operations.
const (
	ListAuthors       Operation = "list-authors"
	GetAuthorDetails  Operation = "get-author-details"
	ListBooks         Operation = "list-books"
	SearchNewAuthor   Operation = "search-new-author"
	DeleteAuthor      Operation = "delete-author"
	RefreshAuthor     Operation = "refresh-author"
	RefreshAllAuthors Operation = "refresh-all-authors"
)

// Prowlarr operations.
const (
	ListApplications Operation = "list-applications"
	ListIndexerStats Operation = "list-indexer-stats"
	SearchReleases   Operation = "search-releases"
	ListHistory      Operation = "list-history"
)

// Spec is the catalogue entry of an operation.
type Spec struct {
	Operation   Operation
	Description string
	// View is the state the operation's result replaces; empty for mutations.
	View View
	// Mutating operations change backend state and run detached from view
	// refreshes.
	Mutating bool

	payload reflect.Type
}

// NewPayload returns a pointer to a zero payload of the operation's type.
func (s Spec) NewPayload() any {
	return reflect.New(s.payload).Interface()
}

// PayloadType returns the concrete payload type of the operation.
func (s Spec) PayloadType() reflect.Type {
	return s.payload
}

func query(op Operation, view View, p Payload, desc string) Spec {
	return Spec{Operation: op, Description: desc, View: view, payload: reflect.TypeOf(p)}
}

func command(op Operation, p Payload, desc string) Spec {
	return Spec{Operation: op, Description: desc, Mutating: true, payload: reflect.TypeOf(p)}
}

var catalogue = map[Operation]Spec{}

func register(specs ...Spec) {
	for _, s := range specs {
		if _, dup := catalogue[s.Operation]; dup {
			panic(fmt.Sprintf("operation %q registered twice", s.Operation))
		}
		catalogue[s.Operation] = s
	}
}

func init() {
	register(
		query(GetSystemStatus, ViewStatus, NoPayload{}, "Show version and runtime information"),
		query(ListHealth, ViewHealth, NoPayload{}, "List health check warnings"),
		query(ListLogs, ViewLogs, LogsQuery{}, "List recent log events, newest first"),
		query(ListTasks, ViewTasks, NoPayload{}, "List scheduled tasks"),
		command(StartTask, TaskName{}, "Start a scheduled task now"),
		query(ListUpdates, ViewUpdates, NoPayload{}, "List available application updates"),
		query(ListTags, ViewTags, NoPayload{}, "List tags"),
		command(AddTag, TagLabel{}, "Create a tag"),
		command(DeleteTag, TagRef{}, "Delete a tag"),
		query(ListIndexers, ViewIndexers, NoPayload{}, "List indexers"),
		command(DeleteIndexer, IndexerRef{}, "Delete an indexer"),
		command(TestAllIndexers, NoPayload{}, "Test every configured indexer"),
		query(ListDownloads, ViewDownloads, NoPayload{}, "List the download queue"),
		command(DeleteDownload, DownloadRef{}, "Remove an item from the download queue"),
		command(RefreshDownloads, NoPayload{}, "Refresh monitored downloads"),
		query(ListBlocklist, ViewBlocklist, NoPayload{}, "List blocklisted releases"),
		command(DeleteBlocklistItem, BlocklistItemRef{}, "Remove one blocklist entry"),
		command(ClearBlocklist, BlocklistIDs{}, "Remove the given blocklist entries"),
		query(ListRootFolders, ViewRootFolders, NoPayload{}, "List root folders"),
		command(AddRootFolder, RootFolderPath{}, "Add a root folder"),
		command(DeleteRootFolder, RootFolderRef{}, "Delete a root folder"),
		query(ListQualityProfiles, ViewQualityProfiles, NoPayload{}, "List quality profiles"),
		query(ListDiskSpace, ViewDiskSpace, NoPayload{}, "Show disk space"),

		query(ListMovies, ViewMovies, NoPayload{}, "List movies in the library"),
		query(GetMovieDetails, ViewMovieDetails, MovieRef{}, "Show one movie"),
		query(GetMovieHistory, ViewMovieHistory, MovieRef{}, "Show the history of one movie"),
		query(GetMovieCredits, ViewMovieCredits, MovieRef{}, "Show cast and crew of one movie"),
		query(ListReleases, ViewReleases, MovieRef{}, "Search indexers for releases of one movie"),
		query(SearchNewMovie, ViewMovieSearch, SearchQuery{}, "Look up movies to add"),
		command(AddMovie, AddMovieParams{}, "Add a movie to the library"),
		command(EditMovie, EditMovieParams{}, "Edit a movie"),
		command(DeleteMovie, DeleteMovieParams{}, "Delete a movie"),
		query(ListCollections, ViewCollections, NoPayload{}, "List collections"),
		command(RefreshMovie, MovieRef{}, "Refresh and rescan one movie"),
		command(RefreshAllMovies, NoPayload{}, "Refresh and rescan every movie"),
		command(RefreshCollections, NoPayload{}, "Refresh collections"),
		command(TriggerAutomaticMovieSearch, MovieRef{}, "Search for a movie automatically"),
		command(DownloadRelease, ReleaseParams{}, "Download a release"),

		query(ListSeries, ViewSeries, NoPayload{}, "List series in the library"),
		query(GetSeriesDetails, ViewSeriesDetails, SeriesRef{}, "Show one series"),
		query(ListEpisodes, ViewEpisodes, SeriesRef{}, "List the episodes of a series"),
		query(GetEpisodeDetails, ViewEpisodeDetails, EpisodeRef{}, "Show one episode"),
		query(GetSeriesHistory, ViewSeriesHistory, SeriesRef{}, "Show the history of one series"),
		query(SearchNewSeries, ViewSeriesSearch, SearchQuery{}, "Look up series to add"),
		command(DeleteSeries, DeleteSeriesParams{}, "Delete a series"),
		command(RefreshSeries, SeriesRef{}, "Refresh and rescan one series"),
		command(RefreshAllSeries, NoPayload{}, "Refresh and rescan every series"),
		command(TriggerAutomaticSeriesSearch, SeriesRef{}, "Search for a series automatically"),
		command(TriggerAutomaticEpisodeSearch, EpisodeRef{}, "Search for an episode automatically"),
		command(ToggleEpisodeMonitoring, EpisodeMonitorParams{}, "Monitor or unmonitor an episode"),

		query(ListArtists, ViewArtists, NoPayload{}, "List artists in the library"),
		query(GetArtistDetails, ViewArtistDetails, ArtistRef{}, "Show one artist"),
		query(ListAlbums, ViewAlbums, ArtistRef{}, "List the albums of an artist"),
		query(SearchNewArtist, ViewArtistSearch, SearchQuery{}, "Look up artists to add"),
		command(DeleteArtist, DeleteArtistParams{}, "Delete an artist"),
		command(RefreshArtist, ArtistRef{}, "Refresh and rescan one artist"),
		command(RefreshAllArtists, NoPayload{}, "Refresh and rescan every artist"),

		query(ListAuthors, ViewAuthors, NoPayload{}, "List authors in the library"),
		query(GetAuthorDetails, ViewAuthorDetails, AuthorRef{}, "Show one author"),
		query(ListBooks, ViewBooks, AuthorRef{}, "List the books of an author"),
		query(SearchNewAuthor, ViewAuthorSearch, SearchQuery{}, "Look up authors to add"),
		command(DeleteAuthor, DeleteAuthorParams{}, "Delete an author"),
		command(RefreshAuthor, AuthorRef{}, "Refresh and rescan one author"),
		command(RefreshAllAuthors, NoPayload{}, "Refresh and rescan every author"),

		query(ListApplications, ViewApplications, NoPayload{}, "List synced applications"),
		query(ListIndexerStats, ViewIndexerStats, NoPayload{}, "Show per-indexer statistics"),
		query(SearchReleases, ViewSearch, SearchQuery{}, "Search every indexer"),
		query(ListHistory, ViewHistory, NoPayload{}, "List indexer query and grab history"),
	)
}

var (
	systemOps = []Operation{
		GetSystemStatus, ListHealth, ListLogs, ListTasks, StartTask, ListUpdates,
		ListTags, AddTag, DeleteTag, ListIndexers, DeleteIndexer, TestAllIndexers,
	}
	libraryOps = []Operation{
		ListDownloads, DeleteDownload, RefreshDownloads,
		ListBlocklist, DeleteBlocklistItem, ClearBlocklist,
		ListRootFolders, AddRootFolder, DeleteRootFolder,
		ListQualityProfiles, ListDiskSpace,
	}
	seriesOps = []Operation{
		ListSeries, GetSeriesDetails, ListEpisodes, GetEpisodeDetails, GetSeriesHistory,
		SearchNewSeries, DeleteSeries, RefreshSeries, RefreshAllSeries,
		TriggerAutomaticSeriesSearch, TriggerAutomaticEpisodeSearch, ToggleEpisodeMonitoring,
	}

	supported = map[models.BackendKind][]Operation{
		models.Radarr: concat([]Operation{
			ListMovies, GetMovieDetails, GetMovieHistory, GetMovieCredits, ListReleases,
			SearchNewMovie, AddMovie, EditMovie, DeleteMovie, ListCollections,
			RefreshMovie, RefreshAllMovies, RefreshCollections, TriggerAutomaticMovieSearch,
			DownloadRelease,
		}, libraryOps, systemOps),
		models.Sonarr:   concat(seriesOps, libraryOps, systemOps),
		models.Whisparr: concat(seriesOps, libraryOps, systemOps),
		models.Lidarr: concat([]Operation{
			ListArtists, GetArtistDetails, ListAlbums, SearchNewArtist, DeleteArtist,
			RefreshArtist, RefreshAllArtists,
		}, libraryOps, systemOps),
		models.Readarr: concat([]Operation{
			ListAuthors, GetAuthorDetails, ListBooks, SearchNewAuthor, DeleteAuthor,
			RefreshAuthor, RefreshAllAuthors,
		}, libraryOps, systemOps),
		models.Prowlarr: concat([]Operation{
			ListApplications, ListIndexerStats, SearchReleases, ListHistory,
		}, systemOps),
	}
)

func concat(groups ...[]Operation) []Operation {
	var out []Operation
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Lookup returns the catalogue entry of op.
func Lookup(op Operation) (Spec, bool) {
	s, ok := catalogue[op]
	return s, ok
}

// Supported returns the operations kind supports, in catalogue order.
func Supported(kind models.BackendKind) []Operation {
	return slices.Clone(supported[kind])
}

// IsSupported reports whether kind implements op.
func IsSupported(kind models.BackendKind, op Operation) bool {
	return slices.Contains(supported[kind], op)
}

// Operations returns every known operation.
func Operations() []Operation {
	ops := make([]Operation, 0, len(catalogue))
	for op := range catalogue {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
