package tui

import (
	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/jmespath/go-jmespath"
)

// column is one table column. expr is a JMESPath expression evaluated
// against the JSON form of one record.
type column struct {
	title  string
	width  int
	expr   *jmespath.JMESPath
	format func(v any) string
}

func col(title string, width int, expr string) column {
	return column{title: title, width: width, expr: jmespath.MustCompile(expr), format: formatCell}
}

func bytesCol(title string, width int, expr string) column {
	c := col(title, width, expr)
	c.format = formatBytes
	return c
}

func timeCol(title string, width int, expr string) column {
	c := col(title, width, expr)
	c.format = formatTime
	return c
}

// tab is one view of one backend: the query that fills it, how records are
// found in its result and which operations the selection keys trigger.
type tab struct {
	title   string
	list    action.Operation
	records *jmespath.JMESPath
	columns []column

	// Selection bindings. Empty means the key does nothing on this tab.
	details action.Operation
	remove  action.Operation
	search  action.Operation
	rescan  action.Operation
	start   action.Operation
}

// listPayload is the payload of the tab's query.
func (t tab) listPayload() action.Payload {
	if t.list == action.ListLogs {
		return action.LogsQuery{Events: action.DefaultLogEvents}
	}
	return nil
}

var (
	everyRecord = jmespath.MustCompile("@")
	pageRecords = jmespath.MustCompile("records")
	asRecord    = jmespath.MustCompile("[@]")
)

func statusTab() tab {
	return tab{
		title: "Status", list: action.GetSystemStatus, records: asRecord,
		columns: []column{
			col("App", 12, "appName"),
			col("Version", 14, "version"),
			col("Branch", 10, "branch"),
			col("OS", 10, "osName"),
			timeCol("Started", 17, "startTime"),
		},
	}
}

func systemTabs() []tab {
	return []tab{
		{
			title: "Health", list: action.ListHealth, records: everyRecord,
			columns: []column{
				col("Source", 24, "source"),
				col("Type", 8, "type"),
				col("Message", 60, "message"),
			},
		},
		{
			title: "Tasks", list: action.ListTasks, records: everyRecord,
			start: action.StartTask,
			columns: []column{
				col("Name", 28, "name"),
				col("Command", 28, "taskName"),
				timeCol("Last run", 17, "lastExecution"),
				timeCol("Next run", 17, "nextExecution"),
			},
		},
		{
			title: "Logs", list: action.ListLogs, records: pageRecords,
			columns: []column{
				timeCol("Time", 17, "time"),
				col("Level", 6, "level"),
				col("Logger", 18, "logger"),
				col("Message", 60, "message"),
			},
		},
		{
			title: "Tags", list: action.ListTags, records: everyRecord,
			remove: action.DeleteTag,
			columns: []column{
				col("ID", 6, "id"),
				col("Label", 30, "label"),
			},
		},
		{
			title: "Indexers", list: action.ListIndexers, records: everyRecord,
			remove: action.DeleteIndexer, rescan: action.TestAllIndexers,
			columns: []column{
				col("ID", 6, "id"),
				col("Name", 28, "name"),
				col("Implementation", 18, "implementation"),
				col("Protocol", 9, "protocol"),
				col("Priority", 8, "priority"),
			},
		},
		{
			title: "Updates", list: action.ListUpdates, records: everyRecord,
			columns: []column{
				col("Version", 14, "version"),
				col("Branch", 10, "branch"),
				timeCol("Released", 17, "releaseDate"),
				col("Installed", 9, "installed"),
			},
		},
	}
}

func libraryTabs() []tab {
	return []tab{
		{
			title: "Queue", list: action.ListDownloads, records: pageRecords,
			remove: action.DeleteDownload, rescan: action.RefreshDownloads,
			columns: []column{
				col("ID", 8, "id"),
				col("Title", 48, "title"),
				col("Status", 12, "status"),
				col("Left", 10, "timeleft"),
				bytesCol("Size", 9, "size"),
			},
		},
		{
			title: "Blocklist", list: action.ListBlocklist, records: pageRecords,
			remove: action.DeleteBlocklistItem,
			columns: []column{
				col("ID", 6, "id"),
				col("Release", 48, "sourceTitle"),
				col("Indexer", 16, "indexer"),
				timeCol("Date", 17, "date"),
			},
		},
		{
			title: "Root folders", list: action.ListRootFolders, records: everyRecord,
			remove: action.DeleteRootFolder,
			columns: []column{
				col("ID", 6, "id"),
				col("Path", 40, "path"),
				col("Accessible", 10, "accessible"),
				bytesCol("Free", 9, "freeSpace"),
			},
		},
		{
			title: "Profiles", list: action.ListQualityProfiles, records: everyRecord,
			columns: []column{
				col("ID", 6, "id"),
				col("Name", 30, "name"),
			},
		},
		{
			title: "Disk", list: action.ListDiskSpace, records: everyRecord,
			columns: []column{
				col("Path", 30, "path"),
				col("Label", 16, "label"),
				bytesCol("Free", 9, "freeSpace"),
				bytesCol("Total", 9, "totalSpace"),
			},
		},
	}
}

func seriesTab() tab {
	return tab{
		title: "Series", list: action.ListSeries, records: everyRecord,
		details: action.GetSeriesDetails, remove: action.DeleteSeries,
		search: action.TriggerAutomaticSeriesSearch, rescan: action.RefreshSeries,
		columns: []column{
			col("ID", 6, "id"),
			col("Title", 40, "title"),
			col("Year", 5, "year"),
			col("Network", 14, "network"),
			col("Status", 10, "status"),
			col("Monitored", 9, "monitored"),
		},
	}
}

// backendTabs returns the tabs shown for kind. The first tab is the one
// opened when the backend is selected.
func backendTabs(kind models.BackendKind) []tab {
	var own []tab
	switch kind {
	case models.Radarr:
		own = []tab{
			{
				title: "Movies", list: action.ListMovies, records: everyRecord,
				details: action.GetMovieDetails, remove: action.DeleteMovie,
				search: action.TriggerAutomaticMovieSearch, rescan: action.RefreshMovie,
				columns: []column{
					col("ID", 6, "id"),
					col("Title", 40, "title"),
					col("Year", 5, "year"),
					col("Status", 10, "status"),
					col("Monitored", 9, "monitored"),
					col("File", 5, "hasFile"),
					bytesCol("Size", 9, "sizeOnDisk"),
				},
			},
			{
				title: "Collections", list: action.ListCollections, records: everyRecord,
				rescan: action.RefreshCollections,
				columns: []column{
					col("ID", 6, "id"),
					col("Title", 40, "title"),
					col("Monitored", 9, "monitored"),
					col("Availability", 12, "minimumAvailability"),
				},
			},
		}
	case models.Sonarr, models.Whisparr:
		own = []tab{seriesTab()}
	case models.Lidarr:
		own = []tab{{
			title: "Artists", list: action.ListArtists, records: everyRecord,
			details: action.GetArtistDetails, remove: action.DeleteArtist,
			rescan: action.RefreshArtist,
			columns: []column{
				col("ID", 6, "id"),
				col("Name", 40, "artistName"),
				col("Status", 10, "status"),
				col("Monitored", 9, "monitored"),
				bytesCol("Size", 9, "statistics.sizeOnDisk"),
			},
		}}
	case models.Readarr:
		own = []tab{{
			title: "Authors", list: action.ListAuthors, records: everyRecord,
			details: action.GetAuthorDetails, remove: action.DeleteAuthor,
			rescan: action.RefreshAuthor,
			columns: []column{
				col("ID", 6, "id"),
				col("Name", 40, "authorName"),
				col("Status", 10, "status"),
				col("Monitored", 9, "monitored"),
				bytesCol("Size", 9, "statistics.sizeOnDisk"),
			},
		}}
	case models.Prowlarr:
		return append([]tab{
			{
				title: "Applications", list: action.ListApplications, records: everyRecord,
				columns: []column{
					col("ID", 6, "id"),
					col("Name", 24, "name"),
					col("Implementation", 18, "implementation"),
					col("Sync", 12, "syncLevel"),
				},
			},
			{
				title: "Stats", list: action.ListIndexerStats, records: jmespath.MustCompile("indexers"),
				columns: []column{
					col("Indexer", 24, "indexerName"),
					col("Queries", 8, "numberOfQueries"),
					col("Grabs", 8, "numberOfGrabs"),
					col("Failed", 8, "numberOfFailedQueries"),
					col("Avg ms", 8, "averageResponseTime"),
				},
			},
			{
				title: "History", list: action.ListHistory, records: pageRecords,
				columns: []column{
					col("ID", 8, "id"),
					col("Indexer", 8, "indexerId"),
					col("Event", 16, "eventType"),
					col("OK", 5, "successful"),
					timeCol("Date", 17, "date"),
				},
			},
		}, append(systemTabs(), statusTab())...)
	}

	tabs := append(own, libraryTabs()...)
	tabs = append(tabs, systemTabs()...)
	return append(tabs, statusTab())
}
