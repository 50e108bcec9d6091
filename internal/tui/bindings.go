package tui

import (
	"reflect"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/models"
)

// binding is a selection key that maps to an operation of the active tab.
type binding int

const (
	bindDetails binding = iota
	bindRemove
	bindSearch
	bindRescan
	bindStart
)

func (t tab) operation(b binding) action.Operation {
	switch b {
	case bindDetails:
		return t.details
	case bindRemove:
		return t.remove
	case bindSearch:
		return t.search
	case bindRescan:
		return t.rescan
	case bindStart:
		return t.start
	}
	return ""
}

var noPayload = reflect.TypeOf(action.NoPayload{})

// resolve turns a selection key into an action. ok is false when the key
// means nothing on this tab or needs a selection and there is none. A
// record lacking the fields the operation needs yields a validation error.
func resolve(kind models.BackendKind, t tab, b binding, selected *row) (a action.Action, ok bool, err error) {
	op := t.operation(b)
	if op == "" {
		return action.Action{}, false, nil
	}
	spec, found := action.Lookup(op)
	if !found {
		return action.Action{}, false, nil
	}

	if spec.PayloadType() == noPayload {
		a, err = action.New(kind, op, nil)
		return a, err == nil, err
	}
	if selected == nil {
		return action.Action{}, false, nil
	}

	a, err = action.New(kind, op, selectionPayload(op, *selected))
	return a, err == nil, err
}

// selectionPayload builds the payload of op from the selected record.
func selectionPayload(op action.Operation, r row) action.Payload {
	id, _ := r.id("id")

	switch op {
	case action.GetMovieDetails, action.RefreshMovie, action.TriggerAutomaticMovieSearch:
		return action.MovieRef{MovieID: id}
	case action.DeleteMovie:
		return action.DeleteMovieParams{MovieID: id}
	case action.GetSeriesDetails, action.RefreshSeries, action.TriggerAutomaticSeriesSearch:
		return action.SeriesRef{SeriesID: id}
	case action.DeleteSeries:
		return action.DeleteSeriesParams{SeriesID: id}
	case action.GetArtistDetails, action.RefreshArtist:
		return action.ArtistRef{ArtistID: id}
	case action.DeleteArtist:
		return action.DeleteArtistParams{ArtistID: id}
	case action.GetAuthorDetails, action.RefreshAuthor:
		return action.AuthorRef{AuthorID: id}
	case action.DeleteAuthor:
		return action.DeleteAuthorParams{AuthorID: id}
	case action.DeleteTag:
		return action.TagRef{TagID: id}
	case action.DeleteIndexer:
		return action.IndexerRef{IndexerID: id}
	case action.DeleteDownload:
		return action.DownloadRef{DownloadID: id}
	case action.DeleteBlocklistItem:
		return action.BlocklistItemRef{BlocklistItemID: id}
	case action.DeleteRootFolder:
		return action.RootFolderRef{RootFolderID: id}
	case action.StartTask:
		return action.TaskName{Name: r.text("taskName")}
	}
	return nil
}
