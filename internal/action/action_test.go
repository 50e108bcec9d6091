package action

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_Valid(t *testing.T) {
	a, err := New(models.Radarr, GetMovieDetails, MovieRef{MovieID: 7})
	require.NoError(t, err)
	assert.Equal(t, models.Radarr, a.Backend())
	assert.Equal(t, GetMovieDetails, a.Operation())
	assert.Equal(t, MovieRef{MovieID: 7}, a.Payload())
	assert.Equal(t, View("movie-details"), a.View())
	assert.False(t, a.Mutating())
	assert.False(t, a.IsZero())
}

func TestNew_AcceptsPointerPayload(t *testing.T) {
	a, err := New(models.Sonarr, ListEpisodes, &SeriesRef{SeriesID: 3})
	require.NoError(t, err)
	assert.Equal(t, SeriesRef{SeriesID: 3}, a.Payload())
}

func TestNew_NilPayloadForArgumentlessOperation(t *testing.T) {
	a, err := New(models.Lidarr, ListArtists, nil)
	require.NoError(t, err)
	assert.Equal(t, NoPayload{}, a.Payload())
}

func TestNew_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		backend models.BackendKind
		op      Operation
		payload Payload
		want    error
	}{
		{name: "missing id", backend: models.Radarr, op: GetMovieDetails, payload: MovieRef{}, want: ErrNonPositiveID},
		{name: "empty query", backend: models.Sonarr, op: SearchNewSeries, payload: SearchQuery{Term: "  "}, want: ErrEmptyQuery},
		{name: "non-positive count", backend: models.Radarr, op: ListLogs, payload: LogsQuery{Events: 0}, want: ErrNonPositiveSize},
		{name: "empty id list", backend: models.Radarr, op: ClearBlocklist, payload: BlocklistIDs{}, want: ErrEmptyIDList},
		{name: "unsupported operation", backend: models.Sonarr, op: ListMovies, payload: nil, want: ErrUnsupportedOperation},
		{name: "prowlarr has no queue", backend: models.Prowlarr, op: ListDownloads, payload: nil, want: ErrUnsupportedOperation},
		{name: "wrong payload type", backend: models.Radarr, op: GetMovieDetails, payload: SeriesRef{SeriesID: 1}, want: ErrPayloadMismatch},
		{name: "unknown backend", backend: "plex", op: ListMovies, payload: nil, want: models.ErrUnknownBackend},
		{name: "nothing to edit", backend: models.Radarr, op: EditMovie, payload: EditMovieParams{MovieID: 1}, want: ErrNothingToChange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.backend, tt.op, tt.payload)
			require.Error(t, err)
			assert.True(t, a.IsZero())
			assert.ErrorIs(t, err, app.ErrValidation)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_UnknownOperation(t *testing.T) {
	_, err := New(models.Radarr, "launch-rockets", nil)
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestAddMovieParams_Validate(t *testing.T) {
	ok := AddMovieParams{
		TmdbID: 603, Title: "The Matrix", RootFolderPath: "/movies",
		QualityProfileID: 1, MinimumAvailability: "released", Monitor: "movieOnly",
	}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.MinimumAvailability = "someday"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownChoice)

	bad = ok
	bad.Title = ""
	assert.ErrorIs(t, bad.Validate(), ErrEmptyValue)
}

func TestEditMovieParams_Validate(t *testing.T) {
	monitored := true
	assert.NoError(t, EditMovieParams{MovieID: 1, Monitored: &monitored}.Validate())

	zero := int64(0)
	assert.ErrorIs(t, EditMovieParams{MovieID: 1, QualityProfileID: &zero}.Validate(), ErrNonPositiveID)
}

// ── catalogue ────────────────────────────────────────────────────────────────

func TestCatalogue_EverySupportedOperationIsRegistered(t *testing.T) {
	for _, kind := range models.AllBackendKinds() {
		ops := Supported(kind)
		require.NotEmpty(t, ops, kind)
		for _, op := range ops {
			spec, ok := Lookup(op)
			require.True(t, ok, "%s/%s", kind, op)
			assert.NotEmpty(t, spec.Description)
			if !spec.Mutating {
				assert.NotEmpty(t, spec.View, "query %s needs a view", op)
			}
		}
	}
}

func TestCatalogue_EveryOperationBelongsToAKind(t *testing.T) {
	for _, op := range Operations() {
		found := false
		for _, kind := range models.AllBackendKinds() {
			if IsSupported(kind, op) {
				found = true
				break
			}
		}
		assert.True(t, found, "%s is not supported by any backend", op)
	}
}

func TestCatalogue_NoDuplicatesPerKind(t *testing.T) {
	for _, kind := range models.AllBackendKinds() {
		seen := map[Operation]bool{}
		for _, op := range Supported(kind) {
			assert.False(t, seen[op], "%s listed twice for %s", op, kind)
			seen[op] = true
		}
	}
}

func TestSpec_NewPayloadIsPointerToPayloadType(t *testing.T) {
	spec, ok := Lookup(DeleteMovie)
	require.True(t, ok)
	p, isPtr := spec.NewPayload().(*DeleteMovieParams)
	require.True(t, isPtr)
	assert.Equal(t, DeleteMovieParams{}, *p)
}

// ── accessors ────────────────────────────────────────────────────────────────

func TestAction_MarshalJSON(t *testing.T) {
	a, err := New(models.Radarr, DeleteMovie, DeleteMovieParams{MovieID: 4, DeleteFiles: true})
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"backend":"radarr","operation":"delete-movie","payload":{"movieId":4,"deleteFiles":true,"addListExclusion":false}}`,
		string(data))
}

func TestPayloadAs(t *testing.T) {
	a, err := New(models.Readarr, ListBooks, AuthorRef{AuthorID: 9})
	require.NoError(t, err)

	p, err := PayloadAs[AuthorRef](a)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.AuthorID)

	_, err = PayloadAs[MovieRef](a)
	assert.ErrorIs(t, err, ErrPayloadMismatch)
}
