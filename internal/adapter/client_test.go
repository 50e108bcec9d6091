// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/testutil"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeClient(t *testing.T, fake *testutil.FakeBackend) BackendClient {
	t.Helper()
	c, err := NewBackendClient(fake.Descriptor(), 2*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func mustAction(t *testing.T, kind models.BackendKind, op action.Operation, p action.Payload) action.Action {
	t.Helper()
	a, err := action.New(kind, op, p)
	require.NoError(t, err)
	return a
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewBackendClient_MissingToken(t *testing.T) {
	_, err := NewBackendClient(models.BackendDescriptor{Kind: models.Radarr}, time.Second, nil)
	assert.ErrorIs(t, err, models.ErrMissingToken)
}

func TestNewBackendClient_BadCertificate(t *testing.T) {
	desc := models.BackendDescriptor{
		Kind: models.Radarr, APIToken: "k",
		SSLCertPath: filepath.Join(t.TempDir(), "missing.pem"),
	}
	_, err := NewBackendClient(desc, time.Second, nil)
	assert.Error(t, err)
}

func TestNewBackendClients_RejectsDuplicates(t *testing.T) {
	d := models.BackendDescriptor{Kind: models.Radarr, APIToken: "k"}
	_, err := NewBackendClients([]models.BackendDescriptor{d, d}, time.Second, nil)
	assert.Error(t, err)

	clients, err := NewBackendClients([]models.BackendDescriptor{d, {Kind: models.Sonarr, APIToken: "k"}}, time.Second, nil)
	require.NoError(t, err)
	assert.Len(t, clients, 2)
	assert.Equal(t, models.Sonarr, clients[models.Sonarr].Kind())
}

// ── Do: success ──────────────────────────────────────────────────────────────

func TestDo_DecodesTypedResult(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.JSON(http.MethodGet, "/movie", http.StatusOK, []models.Movie{{ID: 1, Title: "Alien", Year: 1979}})

	v, err := newFakeClient(t, fake).Do(context.Background(), mustAction(t, models.Radarr, action.ListMovies, nil))
	require.NoError(t, err)

	movies, ok := v.([]models.Movie)
	require.True(t, ok, "got %T", v)
	require.Len(t, movies, 1)
	assert.Equal(t, "Alien", movies[0].Title)
}

func TestDo_SendsHeadersAndQuery(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Sonarr)
	fake.JSON(http.MethodGet, "/episode", http.StatusOK, []models.Episode{})

	_, err := newFakeClient(t, fake).Do(context.Background(),
		mustAction(t, models.Sonarr, action.ListEpisodes, action.SeriesRef{SeriesID: 42}))
	require.NoError(t, err)

	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/api/v3/episode", req.Path)
	assert.Equal(t, "seriesId=42", req.RawQuery)
	assert.Equal(t, testutil.FakeToken, req.APIKey)
	assert.NotEmpty(t, req.RequestID)
}

func TestDo_PostsJSONBody(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Lidarr)
	fake.JSON(http.MethodPost, "/command", http.StatusCreated, models.CommandResponse{ID: 9, Name: "RefreshArtist", Status: "queued"})

	v, err := newFakeClient(t, fake).Do(context.Background(),
		mustAction(t, models.Lidarr, action.RefreshArtist, action.ArtistRef{ArtistID: 4}))
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.(models.CommandResponse).ID)

	req, _ := fake.LastRequest()
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "RefreshArtist", body["name"])
	assert.Equal(t, float64(4), body["artistId"])
}

func TestDo_DeleteWithEmptyBodyIsSuccess(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodDelete, "/blocklist/bulk", http.StatusOK, "")

	v, err := newFakeClient(t, fake).Do(context.Background(),
		mustAction(t, models.Radarr, action.ClearBlocklist, action.BlocklistIDs{IDs: []int64{3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, models.Empty{}, v)

	req, _ := fake.LastRequest()
	assert.JSONEq(t, `{"ids":[3,4]}`, string(req.Body))
}

func TestDo_PutIgnoresResponseBody(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodPut, "/movie/editor", http.StatusAccepted, `[{"id": 1, "title": "whatever"}]`)

	monitored := false
	v, err := newFakeClient(t, fake).Do(context.Background(),
		mustAction(t, models.Radarr, action.EditMovie, action.EditMovieParams{MovieID: 1, Monitored: &monitored}))
	require.NoError(t, err)
	assert.Equal(t, models.Empty{}, v)
}

// ── Do: failures ─────────────────────────────────────────────────────────────

func TestDo_WrongTokenIsAuthError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	desc := fake.Descriptor()
	desc.APIToken = "wrong"

	c, err := NewBackendClient(desc, time.Second, nil)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), mustAction(t, models.Radarr, action.GetSystemStatus, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAuth)

	var appErr *app.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestDo_ForbiddenIsAuthError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Sonarr)
	fake.Raw(http.MethodGet, "/series", http.StatusForbidden, "forbidden")

	_, err := newFakeClient(t, fake).Do(context.Background(), mustAction(t, models.Sonarr, action.ListSeries, nil))
	assert.ErrorIs(t, err, app.ErrAuth)
}

func TestDo_ServerErrorIsResponseError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodGet, "/movie/5", http.StatusInternalServerError, "{\n  \"message\":   \"boom\"\n}")

	_, err := newFakeClient(t, fake).Do(context.Background(),
		mustAction(t, models.Radarr, action.GetMovieDetails, action.MovieRef{MovieID: 5}))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrResponse)

	var appErr *app.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, `{ "message": "boom" }`, appErr.Body)
}

func TestDo_UnknownRouteIsResponseError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Readarr)

	_, err := newFakeClient(t, fake).Do(context.Background(), mustAction(t, models.Readarr, action.ListAuthors, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrResponse)
}

func TestDo_MalformedBodyIsDecodeError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodGet, "/movie", http.StatusOK, `{"not": "a list"}`)

	_, err := newFakeClient(t, fake).Do(context.Background(), mustAction(t, models.Radarr, action.ListMovies, nil))
	assert.ErrorIs(t, err, app.ErrDecode)
}

func TestDo_EmptyBodyOnReadIsDecodeError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodGet, "/tag", http.StatusOK, "")

	_, err := newFakeClient(t, fake).Do(context.Background(), mustAction(t, models.Radarr, action.ListTags, nil))
	assert.ErrorIs(t, err, app.ErrDecode)
}

func TestDo_UnreachableIsConnectionError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Prowlarr)
	c := newFakeClient(t, fake)
	fake.Server.Close()

	_, err := c.Do(context.Background(), mustAction(t, models.Prowlarr, action.GetSystemStatus, nil))
	assert.ErrorIs(t, err, app.ErrConnection)
}

func TestDo_CancelledContextIsConnectionError(t *testing.T) {
	fake := testutil.NewFakeBackend(t, models.Radarr)
	release := make(chan struct{})
	fake.Handle(http.MethodGet, "/movie", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := newFakeClient(t, fake).Do(ctx, mustAction(t, models.Radarr, action.ListMovies, nil))
	assert.ErrorIs(t, err, app.ErrConnection)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── ParseResponse ────────────────────────────────────────────────────────────

func TestParseResponse_IsIndependentOfTransport(t *testing.T) {
	c := newClient(t, models.Radarr)
	a := mustAction(t, models.Radarr, action.GetSystemStatus, nil)

	v, err := c.ParseResponse(a, http.StatusOK, []byte(`{"appName":"Radarr","version":"5.1"}`))
	require.NoError(t, err)
	assert.Equal(t, "5.1", v.(models.SystemStatus).Version)

	_, err = c.ParseResponse(a, http.StatusBadGateway, []byte("upstream\tdown"))
	assert.ErrorIs(t, err, app.ErrResponse)
}
