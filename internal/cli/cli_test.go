package cli

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/client"
	"github.com/MKhiriev/go-arr-keeper/internal/config"
	"github.com/MKhiriev/go-arr-keeper/internal/testutil"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code    int
	stdout  string
	stderr  string
	appRuns int
}

// run executes args against the real runtime. The config comes from env
// variables pointing at fakes.
func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var res result

	opts := Options{
		BuildInfo: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		Stdout:    &stdout,
		Stderr:    &stderr,
		NewApp: func(flags *config.Flags) (*client.App, error) {
			res.appRuns++
			return client.NewApp(flags)
		},
		RunInteractive: func(ctx context.Context, a *client.App) error { return nil },
	}

	res.code = Execute(context.Background(), args, opts)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("ARRKEEPER_DISABLE_SPINNER", "true")
}

func configureFake(t *testing.T, fake *testutil.FakeBackend) {
	t.Helper()
	prefix := "ARRKEEPER_" + map[models.BackendKind]string{
		models.Radarr: "RADARR", models.Sonarr: "SONARR", models.Lidarr: "LIDARR",
		models.Readarr: "READARR", models.Prowlarr: "PROWLARR", models.Whisparr: "WHISPARR",
	}[fake.Kind]
	t.Setenv(prefix+"_URI", fake.Server.URL)
	t.Setenv(prefix+"_API_TOKEN", testutil.FakeToken)
}

// ── command tree ─────────────────────────────────────────────────────────────

// TestCommandTree_EverySupportedOperation verifies that each supported
// (backend, operation) pair has a subcommand and unsupported pairs have none.
func TestCommandTree_EverySupportedOperation(t *testing.T) {
	root := NewRootCommand(Options{})

	for _, kind := range models.AllBackendKinds() {
		for _, op := range action.Operations() {
			cmd, _, err := root.Find([]string{string(kind), string(op)})
			found := err == nil && cmd.Name() == string(op)
			assert.Equal(t, action.IsSupported(kind, op), found, "%s %s", kind, op)
		}
	}
}

func TestCommandTree_RequiredFlagsMarked(t *testing.T) {
	root := NewRootCommand(Options{})
	cmd, _, err := root.Find([]string{"radarr", "add-movie"})
	require.NoError(t, err)

	for _, name := range []string{"tmdb-id", "title", "root-folder-path", "quality-profile-id"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, []string{"true"}, f.Annotations[cobra.BashCompOneRequiredFlag], name)
	}
	assert.Equal(t, "released", cmd.Flags().Lookup("minimum-availability").DefValue)
}

// ── usage errors never reach the network ─────────────────────────────────────

func TestExecute_MissingRequiredFlag(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Radarr)
	configureFake(t, fake)

	res := run(t, "radarr", "get-movie-details")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, "movie-id")
	assert.Empty(t, res.stdout)
	assert.Zero(t, res.appRuns)
	assert.Empty(t, fake.Requests())
}

func TestExecute_InvalidPayload(t *testing.T) {
	isolateEnv(t)

	res := run(t, "radarr", "get-movie-details", "--movie-id", "0")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, action.ErrNonPositiveID.Error())
	assert.Zero(t, res.appRuns)
}

func TestExecute_UnsupportedOperation(t *testing.T) {
	isolateEnv(t)

	res := run(t, "prowlarr", "list-downloads")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, "unknown command")
	assert.Zero(t, res.appRuns)
}

func TestExecute_BackendWithoutOperationPrintsHelp(t *testing.T) {
	res := run(t, "sonarr")
	assert.Equal(t, app.ExitOK, res.code)
	assert.Contains(t, res.stdout, "list-series")
	assert.Zero(t, res.appRuns)
}

func TestExecute_BadFlagValue(t *testing.T) {
	isolateEnv(t)

	res := run(t, "radarr", "get-movie-details", "--movie-id", "seven")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

func TestExecute_BadOutputFormat(t *testing.T) {
	isolateEnv(t)

	res := run(t, "radarr", "list-movies", "-o", "xml")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Zero(t, res.appRuns)
}

func TestExecute_NoConfig(t *testing.T) {
	isolateEnv(t)

	res := run(t, "radarr", "list-movies")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, config.ErrNoBackendsConfigs.Error())
}

func TestExecute_BackendNotConfigured(t *testing.T) {
	isolateEnv(t)
	configureFake(t, testutil.NewFakeBackend(t, models.Radarr))

	res := run(t, "lidarr", "list-artists")
	assert.Equal(t, app.ExitValidation, res.code)
	assert.Contains(t, res.stderr, "not configured")
	assert.Empty(t, res.stdout)
}

// ── one-shot success ─────────────────────────────────────────────────────────

func TestExecute_OneShotYAML(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.JSON(http.MethodGet, "/movie/7", http.StatusOK, models.Movie{ID: 7, Title: "Alien"})
	configureFake(t, fake)

	res := run(t, "radarr", "get-movie-details", "--movie-id", "7", "--output", "yaml")
	require.Equal(t, app.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "title: Alien")
	assert.Empty(t, res.stderr)
}

func TestExecute_DefaultFromTag(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Sonarr)
	fake.JSON(http.MethodGet, "/log", http.StatusOK, models.LogResponse{})
	configureFake(t, fake)

	res := run(t, "sonarr", "list-logs")
	require.Equal(t, app.ExitOK, res.code, res.stderr)

	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.Contains(t, req.RawQuery, "pageSize=500")
}

func TestExecute_OptionalAndSliceFlags(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.Raw(http.MethodPut, "/movie/editor", http.StatusAccepted, "")
	configureFake(t, fake)

	res := run(t, "radarr", "edit-movie", "--movie-id", "3", "--monitored=false", "--tag", "1,2", "--tag", "5")
	require.Equal(t, app.ExitOK, res.code, res.stderr)

	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.JSONEq(t, `{"movieIds":[3],"monitored":false,"moveFiles":false,"tags":[1,2,5],"applyTags":"replace"}`, string(req.Body))
}

func TestExecute_QueryFlag(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Lidarr)
	fake.JSON(http.MethodGet, "/artist", http.StatusOK, []models.Artist{{ID: 1, ArtistName: "Low"}, {ID: 2, ArtistName: "Can"}})
	configureFake(t, fake)

	res := run(t, "lidarr", "list-artists", "--query", "[].artistName")
	require.Equal(t, app.ExitOK, res.code, res.stderr)
	assert.JSONEq(t, `["Low","Can"]`, res.stdout)
}

func TestExecute_QueryFlagOnSearch(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Radarr)
	fake.JSON(http.MethodGet, "/movie/lookup", http.StatusOK, []models.Movie{{TmdbID: 348, Title: "Alien"}, {TmdbID: 8077, Title: "Alien 3"}})
	configureFake(t, fake)

	res := run(t, "radarr", "search-new-movie", "--term", "alien", "--query", "[].title")
	require.Equal(t, app.ExitOK, res.code, res.stderr)
	assert.JSONEq(t, `["Alien","Alien 3"]`, res.stdout)

	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.Contains(t, req.RawQuery, "term=alien")
}

func TestCommandTree_PayloadFlagsKeepGlobals(t *testing.T) {
	root := NewRootCommand(Options{})
	for _, kind := range models.AllBackendKinds() {
		for _, op := range action.Supported(kind) {
			cmd, _, err := root.Find([]string{string(kind), string(op)})
			require.NoError(t, err)
			cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
				assert.Nil(t, root.PersistentFlags().Lookup(f.Name), "%s %s --%s", kind, op, f.Name)
			})
		}
	}
}

func TestExecute_AuthFailure(t *testing.T) {
	isolateEnv(t)
	fake := testutil.NewFakeBackend(t, models.Readarr)
	configureFake(t, fake)
	t.Setenv("ARRKEEPER_READARR_API_TOKEN", "wrong")

	res := run(t, "readarr", "list-authors")
	assert.Equal(t, app.ExitAuth, res.code)
	assert.Empty(t, res.stdout)
}

// ── other commands ───────────────────────────────────────────────────────────

func TestExecute_Check(t *testing.T) {
	isolateEnv(t)
	configureFake(t, testutil.NewFakeBackend(t, models.Radarr))
	configureFake(t, testutil.NewFakeBackend(t, models.Prowlarr))

	res := run(t, "check")
	require.Equal(t, app.ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"backend": "radarr"`)
	assert.Contains(t, res.stdout, `"backend": "prowlarr"`)
}

func TestExecute_Version(t *testing.T) {
	res := run(t, "version")
	require.Equal(t, app.ExitOK, res.code)
	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-01-01\nBuild commit: abc123\n", res.stdout)
}

func TestExecute_NoArgsStartsInteractive(t *testing.T) {
	isolateEnv(t)
	configureFake(t, testutil.NewFakeBackend(t, models.Radarr))

	res := run(t)
	assert.Equal(t, app.ExitOK, res.code, res.stderr)
	assert.Equal(t, 1, res.appRuns)
}

func TestExecute_UnknownCommand(t *testing.T) {
	res := run(t, "plex")
	assert.Equal(t, app.ExitValidation, res.code)
}
