package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/adapter"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/mock"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/MKhiriev/go-arr-keeper/internal/store"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMovies = []models.Movie{
	{ID: 7, Title: "Alien", Year: 1979, Monitored: true},
	{ID: 8, Title: "Heat", Year: 1995},
}

// fakeBackend answers like a small Radarr and records every action it saw.
type fakeBackend struct {
	mu   sync.Mutex
	seen []action.Action
	fail map[action.Operation]error
}

func (f *fakeBackend) answer(ctx context.Context, a action.Action) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, app.NewConnectionError(a.Backend(), string(a.Operation()), err)
	}

	f.mu.Lock()
	f.seen = append(f.seen, a)
	err := f.fail[a.Operation()]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	switch a.Operation() {
	case action.ListMovies:
		return testMovies, nil
	case action.ListSeries:
		return []models.Series{{ID: 3, Title: "Dark", Year: 2017}}, nil
	case action.GetSystemStatus:
		return models.SystemStatus{AppName: a.Backend().Title(), Version: "5.0"}, nil
	case action.GetMovieDetails:
		p, _ := action.PayloadAs[action.MovieRef](a)
		return models.Movie{ID: p.MovieID, Title: "Alien", Overview: "In space no one can hear you scream"}, nil
	case action.TriggerAutomaticMovieSearch, action.RefreshMovie:
		return models.CommandResponse{ID: 1, Status: "queued"}, nil
	}
	return models.Empty{}, nil
}

func (f *fakeBackend) operations() []action.Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]action.Operation, len(f.seen))
	for i, a := range f.seen {
		ops[i] = a.Operation()
	}
	return ops
}

func (f *fakeBackend) last(op action.Operation) (action.Action, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.seen) - 1; i >= 0; i-- {
		if f.seen[i].Operation() == op {
			return f.seen[i], true
		}
	}
	return action.Action{}, false
}

type harness struct {
	exec    *network.Executor
	views   store.ViewRepository
	backend *fakeBackend
}

func newHarness(t *testing.T, kinds ...models.BackendKind) *harness {
	t.Helper()
	if len(kinds) == 0 {
		kinds = []models.BackendKind{models.Radarr}
	}

	ctrl := gomock.NewController(t)
	fake := &fakeBackend{fail: map[action.Operation]error{}}
	clients := make(map[models.BackendKind]adapter.BackendClient, len(kinds))
	for _, k := range kinds {
		c := mock.NewMockBackendClient(ctrl)
		c.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(fake.answer).AnyTimes()
		clients[k] = c
	}

	return &harness{
		exec:    network.NewExecutor(clients, time.Second),
		views:   store.NewViewRepository(),
		backend: fake,
	}
}

func (h *harness) model() model {
	m := newModel(context.Background(), h.exec, h.views, time.Minute, logger.Nop())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return updated.(model)
}

// run executes cmd and the commands it batches and returns the messages that
// arrive within a short wait. Timers do not fire within it. Spinner ticks
// are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch msg := msg.(type) {
		case nil, spinner.TickMsg:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, run(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// settle feeds the messages produced by cmd back into m until no command
// produces any.
func settle(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for i := 0; len(pending) > 0; i++ {
		require.Less(t, i, 20, "update loop did not settle")
		var next []tea.Cmd
		for _, c := range pending {
			for _, msg := range run(c) {
				updated, out := m.Update(msg)
				m = updated.(model)
				next = append(next, out)
			}
		}
		pending = next
	}
	return m
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, k := range msgs {
		updated, cmd := m.Update(k)
		m = updated.(model)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

var moviesKey = network.ViewKey{Backend: models.Radarr, View: action.ViewMovies}

// loaded returns a model showing the Radarr movie list.
func loaded(t *testing.T, h *harness) model {
	t.Helper()
	m := h.model()
	m = settle(t, m, m.initCmd)
	require.Equal(t, phaseIdle, m.state.phase)
	return m
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNew_NoBackends(t *testing.T) {
	exec := network.NewExecutor(map[models.BackendKind]adapter.BackendClient{}, time.Second)
	_, err := New(exec, store.NewViewRepository(), time.Second, nil)
	assert.ErrorIs(t, err, ErrNoBackends)
}

// ── startup ──────────────────────────────────────────────────────────────────

func TestModel_StartupFetchesFirstTab(t *testing.T) {
	h := newHarness(t)
	m := h.model()

	assert.Equal(t, awaiting(moviesKey), m.state)
	assert.True(t, h.views.Read(moviesKey).Loading)

	m = settle(t, m, m.initCmd)
	assert.Equal(t, idle(), m.state)

	d := h.views.Read(moviesKey)
	assert.False(t, d.Loading)
	assert.Equal(t, testMovies, d.Value)
	assert.Contains(t, m.View(), "Alien")
	assert.Contains(t, m.View(), "Heat")
}

func TestModel_PrefetchFillsStatus(t *testing.T) {
	h := newHarness(t, models.Radarr, models.Sonarr)
	m := loaded(t, h)

	m = settle(t, m, m.cmdPrefetch())

	for _, kind := range []models.BackendKind{models.Radarr, models.Sonarr} {
		d := h.views.Read(network.ViewKey{Backend: kind, View: action.ViewStatus})
		require.True(t, d.HasValue(), kind)
		assert.Equal(t, "5.0", d.Value.(models.SystemStatus).Version)
	}
	assert.Contains(t, m.View(), "Radarr 5.0")
}

func TestModel_PrefetchKeepsRequestedView(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)
	statusKey := network.ViewKey{Backend: models.Radarr, View: action.ViewStatus}
	h.views.Begin(statusKey)

	a, err := action.New(models.Radarr, action.GetSystemStatus, nil)
	require.NoError(t, err)
	m.onPrefetch(prefetchMsg{
		actions: []action.Action{a},
		results: []network.Result{{Value: models.SystemStatus{Version: "old"}}},
	})

	assert.False(t, h.views.Read(statusKey).HasValue())
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestModel_FailureShowsErrorAndEscDismisses(t *testing.T) {
	h := newHarness(t)
	h.backend.fail[action.ListMovies] = app.NewStatusError(models.Radarr, "list-movies", 401, "")
	m := h.model()

	m = settle(t, m, m.initCmd)
	assert.Equal(t, errorDisplayed(moviesKey), m.state)
	assert.Contains(t, m.View(), app.MsgCheckToken)

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, idle(), m.state)
	assert.NoError(t, h.views.Read(moviesKey).Err)
	assert.NotContains(t, m.View(), app.MsgCheckToken)
}

func TestModel_RetryAfterError(t *testing.T) {
	h := newHarness(t)
	h.backend.fail[action.ListMovies] = app.NewConnectionError(models.Radarr, "list-movies", context.DeadlineExceeded)
	m := h.model()
	m = settle(t, m, m.initCmd)
	require.Equal(t, phaseError, m.state.phase)

	delete(h.backend.fail, action.ListMovies)
	m, cmd := press(t, m, runeKey("r"))
	assert.Equal(t, awaiting(moviesKey), m.state)

	m = settle(t, m, cmd)
	assert.Equal(t, idle(), m.state)
	assert.Equal(t, testMovies, h.views.Read(moviesKey).Value)
}

func TestModel_ErrorKeepsLastValue(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	h.backend.fail[action.ListMovies] = app.NewStatusError(models.Radarr, "list-movies", 500, "boom")
	m, cmd := press(t, m, runeKey("r"))
	m = settle(t, m, cmd)

	require.Equal(t, phaseError, m.state.phase)
	d := h.views.Read(moviesKey)
	assert.Equal(t, testMovies, d.Value)
	assert.ErrorIs(t, d.Err, app.ErrResponse)
}

// ── supersession and cancellation ────────────────────────────────────────────

func TestModel_ViewChangeCancelsInFlight(t *testing.T) {
	h := newHarness(t)
	m := h.model()
	first := m.initCmd

	m, cmd := press(t, m, keyRight)
	collectionsKey := network.ViewKey{Backend: models.Radarr, View: action.ViewCollections}
	assert.Equal(t, awaiting(collectionsKey), m.state)

	m = settle(t, m, first)
	d := h.views.Read(moviesKey)
	assert.False(t, d.Loading)
	assert.False(t, d.HasValue(), "cancelled request must not be applied")
	assert.Equal(t, awaiting(collectionsKey), m.state)

	m = settle(t, m, cmd)
	assert.Equal(t, idle(), m.state)
	assert.NotContains(t, h.backend.operations(), action.ListMovies)
}

func TestModel_RefreshSupersedesPrevious(t *testing.T) {
	h := newHarness(t)
	m := h.model()
	first := m.initCmd

	m, second := press(t, m, runeKey("r"))
	m = settle(t, m, first)
	assert.Equal(t, awaiting(moviesKey), m.state, "superseded completion must not settle")

	m = settle(t, m, second)
	assert.Equal(t, idle(), m.state)
	assert.Equal(t, testMovies, h.views.Read(moviesKey).Value)
}

func TestModel_ViewChangeUnderMutationErrorCancelsInFlight(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)
	before := h.views.Read(moviesKey)

	m, refresh := press(t, m, runeKey("r"))
	require.Equal(t, awaiting(moviesKey), m.state)

	a, err := action.New(models.Radarr, action.RefreshMovie, action.MovieRef{MovieID: 7})
	require.NoError(t, err)
	updated, _ := m.Update(outcomeMsg{outcome: network.Outcome{
		Action: a,
		Result: network.Result{Err: app.NewStatusError(models.Radarr, "refresh-movie", 500, "queue full")},
	}})
	m = updated.(model)
	require.Equal(t, errorDisplayed(moviesKey), m.state)

	m, _ = press(t, m, keyRight)
	collectionsKey := network.ViewKey{Backend: models.Radarr, View: action.ViewCollections}
	assert.Equal(t, awaiting(collectionsKey), m.state)
	assert.False(t, h.exec.Pending(moviesKey))

	m = settle(t, m, refresh)
	after := h.views.Read(moviesKey)
	assert.Equal(t, before.Generation, after.Generation)
	assert.Equal(t, before.RefreshedAt, after.RefreshedAt)
	assert.False(t, after.Loading)
	assert.Equal(t, awaiting(collectionsKey), m.state)
}

func TestModel_RepeatedRefreshIsIdempotent(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)
	first := h.views.Read(moviesKey)

	m, cmd := press(t, m, runeKey("r"))
	m = settle(t, m, cmd)
	second := h.views.Read(moviesKey)

	m, cmd = press(t, m, runeKey("r"))
	m = settle(t, m, cmd)
	third := h.views.Read(moviesKey)

	assert.Equal(t, idle(), m.state)
	for _, d := range []store.ViewData{second, third} {
		assert.Equal(t, first.Value, d.Value)
		assert.Equal(t, first.Err, d.Err)
		assert.Equal(t, first.Loading, d.Loading)
	}
}

func TestModel_RefreshTickReissuesActiveView(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	updated, cmd := m.Update(refreshTickMsg{at: time.Now()})
	m = updated.(model)
	assert.Equal(t, awaiting(moviesKey), m.state)
	require.NotNil(t, cmd)
}

func TestModel_RefreshTickLeavesErrorAlone(t *testing.T) {
	h := newHarness(t)
	h.backend.fail[action.ListMovies] = app.NewStatusError(models.Radarr, "list-movies", 500, "")
	m := h.model()
	m = settle(t, m, m.initCmd)

	updated, _ := m.Update(refreshTickMsg{at: time.Now()})
	m = updated.(model)
	assert.Equal(t, errorDisplayed(moviesKey), m.state)
}

func TestModel_QuitCancelsEverything(t *testing.T) {
	h := newHarness(t)
	m := h.model()
	first := m.initCmd

	updated, cmd := m.Update(runeKey("q"))
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())

	for _, msg := range run(first) {
		c := msg.(completionMsg).completion
		assert.True(t, c.Result.Cancelled())
		assert.False(t, h.exec.Settle(c))
	}
	assert.False(t, h.views.Read(moviesKey).HasValue())
}

// ── navigation ───────────────────────────────────────────────────────────────

func TestModel_SwitchBackend(t *testing.T) {
	h := newHarness(t, models.Radarr, models.Sonarr)
	m := loaded(t, h)

	m, cmd := press(t, m, keyTab)
	seriesKey := network.ViewKey{Backend: models.Sonarr, View: action.ViewSeries}
	assert.Equal(t, awaiting(seriesKey), m.state)

	m = settle(t, m, cmd)
	assert.Contains(t, m.View(), "Dark")

	m, _ = press(t, m, keyTab)
	assert.Equal(t, models.Radarr, m.kind())
}

func TestModel_CursorStaysInRange(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, _ = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, 1, m.cursor)

	m, _ = press(t, m, runeKey("k"), runeKey("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Filter(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, _ = press(t, m, runeKey("/"), runeKey("h"), runeKey("e"), runeKey("a"))
	assert.True(t, m.filter.editing)

	m, _ = press(t, m, keyEnter)
	assert.False(t, m.filter.editing)

	rows, err := m.rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Heat", rows[0].text("title"))

	m, _ = press(t, m, keyEsc)
	rows, _ = m.rows()
	assert.Len(t, rows, 2)
}

// ── details ──────────────────────────────────────────────────────────────────

func TestModel_DetailsFetchAndBack(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, m.detail)
	detailKey := network.ViewKey{Backend: models.Radarr, View: action.ViewMovieDetails}
	assert.Equal(t, awaiting(detailKey), m.state)

	m = settle(t, m, cmd)
	assert.Equal(t, idle(), m.state)
	assert.Contains(t, m.View(), "In space no one can hear you scream")

	a, ok := h.backend.last(action.GetMovieDetails)
	require.True(t, ok)
	p, err := action.PayloadAs[action.MovieRef](a)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.MovieID)

	m, cmd = press(t, m, keyEsc)
	assert.Nil(t, m.detail)
	assert.Equal(t, awaiting(moviesKey), m.state)
	settle(t, m, cmd)
}

func TestModel_EnterWithoutRowsDoesNothing(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, cmd := press(t, m, keyRight)
	m = settle(t, m, cmd)

	// The fake answers list-collections with an empty document.
	m, cmd = press(t, m, keyEnter)
	assert.Nil(t, m.detail)
	assert.Empty(t, run(cmd))
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, cmd := press(t, m, runeKey("d"))
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Delete")
	assert.Empty(t, run(cmd))

	m, _ = press(t, m, runeKey("n"))
	assert.Nil(t, m.confirm)
	assert.NotContains(t, h.backend.operations(), action.DeleteMovie)

	m, _ = press(t, m, runeKey("d"))
	m, cmd = press(t, m, runeKey("y"))
	assert.Nil(t, m.confirm)

	m = settle(t, m, cmd)
	a, ok := h.backend.last(action.DeleteMovie)
	require.True(t, ok)
	p, err := action.PayloadAs[action.DeleteMovieParams](a)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.MovieID)

	ops := h.backend.operations()
	assert.Equal(t, action.ListMovies, ops[len(ops)-1], "the list is refreshed after a mutation")
	assert.Equal(t, idle(), m.state)
}

func TestModel_SearchSubmitsCommand(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, runeKey("s"))
	m = settle(t, m, cmd)

	a, ok := h.backend.last(action.TriggerAutomaticMovieSearch)
	require.True(t, ok)
	p, _ := action.PayloadAs[action.MovieRef](a)
	assert.Equal(t, int64(8), p.MovieID)
	assert.Contains(t, m.status, "done")
}

func TestModel_MutationFailureShowsError(t *testing.T) {
	h := newHarness(t)
	h.backend.fail[action.RefreshMovie] = app.NewStatusError(models.Radarr, "refresh-movie", 500, "queue full")
	m := loaded(t, h)

	m, cmd := press(t, m, runeKey("u"))
	m = settle(t, m, cmd)

	assert.Equal(t, errorDisplayed(moviesKey), m.state)
	assert.Contains(t, m.View(), "queue full")

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, idle(), m.state)
}

func TestModel_KeyWithoutOperation(t *testing.T) {
	h := newHarness(t)
	m := loaded(t, h)

	m, _ = press(t, m, runeKey("t"))
	assert.Equal(t, "nothing to do here", m.status)
	assert.Equal(t, idle(), m.state)
}

// ── clipboard ────────────────────────────────────────────────────────────────

func TestModel_CopySelectionAsJSON(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	h := newHarness(t)
	m := loaded(t, h)

	m, cmd := press(t, m, runeKey("c"))
	m = settle(t, m, cmd)

	assert.Contains(t, copied, `"title": "Alien"`)
	assert.Equal(t, "copied to clipboard", m.status)
}
