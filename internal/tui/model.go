package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/MKhiriev/go-arr-keeper/internal/store"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// chromeHeight is the number of lines around the table: padding, tab
	// bars, dividers, status and help.
	chromeHeight = 14
)

type rowCache struct {
	refreshedAt time.Time
	generation  uint64
	rows        []row
	err         error
}

// model is the dispatcher. Only Update mutates it and the view storage;
// network I/O runs in the commands it returns.
type model struct {
	ctx     context.Context
	exec    Executor
	views   store.ViewRepository
	refresh time.Duration
	logger  *logger.Logger

	backends []models.BackendKind
	tabs     [][]tab
	backend  int
	tab      int
	cursor   int

	state     dispatchState
	actionErr error
	filter    filterModel
	detail    *detailModel
	confirm   *confirmModel
	status    string

	spinner  spinner.Model
	spinning bool
	cache    map[network.ViewKey]rowCache

	width    int
	height   int
	quitting bool

	// initCmd carries the first fetch issued by newModel.
	initCmd tea.Cmd
}

func newModel(ctx context.Context, exec Executor, views store.ViewRepository, refresh time.Duration, log *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	backends := exec.Backends()
	tabs := make([][]tab, len(backends))
	for i, kind := range backends {
		tabs[i] = backendTabs(kind)
	}

	m := model{
		ctx:      ctx,
		exec:     exec,
		views:    views,
		refresh:  refresh,
		logger:   log,
		backends: backends,
		tabs:     tabs,
		state:    idle(),
		filter:   newFilterModel(),
		spinner:  s,
		cache:    make(map[network.ViewKey]rowCache),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	var cmd tea.Cmd
	m, cmd = m.fetchActive()
	m.initCmd = cmd
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.cmdPrefetch(), cmdRefreshTick(m.refresh))
}

// ── navigation helpers ───────────────────────────────────────────────────────

func (m model) kind() models.BackendKind {
	return m.backends[m.backend]
}

func (m model) activeTab() tab {
	return m.tabs[m.backend][m.tab]
}

func tabKey(kind models.BackendKind, t tab) network.ViewKey {
	spec, _ := action.Lookup(t.list)
	return network.ViewKey{Backend: kind, View: spec.View}
}

// activeKey is the view the user is looking at: the fetched details pane if
// one is open, the active tab otherwise.
func (m model) activeKey() network.ViewKey {
	if m.detail != nil && m.detail.fetched {
		return m.detail.key
	}
	return tabKey(m.kind(), m.activeTab())
}

func (m model) rows() ([]row, error) {
	t := m.activeTab()
	key := tabKey(m.kind(), t)
	d := m.views.Read(key)

	c, ok := m.cache[key]
	if !ok || !c.refreshedAt.Equal(d.RefreshedAt) || c.generation != d.Generation {
		rows, err := t.rows(d.Value)
		c = rowCache{refreshedAt: d.RefreshedAt, generation: d.Generation, rows: rows, err: err}
		m.cache[key] = c
	}
	if c.err != nil {
		return nil, c.err
	}
	return m.filter.apply(c.rows), nil
}

func (m model) selected() (row, bool) {
	rows, err := m.rows()
	if err != nil || m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m model) tableHeight() int {
	return max(m.height-chromeHeight, 3)
}

// ── requests ─────────────────────────────────────────────────────────────────

// issue starts a view-scoped request. A request for the active view moves
// the dispatcher to AwaitingResponse.
func (m model) issue(key network.ViewKey, a action.Action) (model, tea.Cmd) {
	m.views.Begin(key)
	req := m.exec.Issue(m.ctx, key, a)
	if key == m.activeKey() {
		m.state = awaiting(key)
	}
	m.logger.Debug().
		Str("view", key.String()).
		Uint64("generation", req.Generation).
		Str("operation", string(a.Operation())).
		Msg("request issued")

	var spin tea.Cmd
	if !m.spinning {
		m.spinning = true
		spin = m.spinner.Tick
	}
	return m, tea.Batch(cmdAwait(req), spin)
}

// fetchActive issues the refresh action of the active view.
func (m model) fetchActive() (model, tea.Cmd) {
	if len(m.backends) == 0 {
		return m, nil
	}
	if m.detail != nil {
		if !m.detail.fetched {
			return m, nil
		}
		return m.issue(m.detail.key, m.detail.action)
	}

	t := m.activeTab()
	a, err := action.New(m.kind(), t.list, t.listPayload())
	if err != nil {
		m.logger.Error().Err(err).Str("tab", t.title).Msg("build list action")
		return m.showError(err), nil
	}
	return m.issue(network.KeyOf(a), a)
}

// submit runs a mutation detached from the view requests.
func (m model) submit(a action.Action) (model, tea.Cmd) {
	spec, _ := action.Lookup(a.Operation())
	m.status = spec.Description + "..."
	m.logger.Info().
		Str("backend", string(a.Backend())).
		Str("operation", string(a.Operation())).
		Msg("mutation submitted")
	return m, cmdRun(m.exec.Submit(m.ctx, a))
}

// leaveView cancels the requests of the view being left and dismisses its
// error, so that the next view starts Idle. An error overlay raised by a
// mutation can hide a view request still in flight, so pending requests are
// looked up on the executor rather than taken from the dispatcher state.
func (m model) leaveView() model {
	left := []network.ViewKey{m.activeKey()}
	if m.state.phase != phaseIdle && m.state.view != left[0] {
		left = append(left, m.state.view)
	}
	for _, key := range left {
		if !m.exec.Pending(key) {
			continue
		}
		m.exec.Cancel(key)
		// Drop the loading flag; the cancelled completion will not settle.
		m.views.Apply(key, 0, network.Result{Err: context.Canceled})
	}
	if m.state.phase == phaseError {
		m.views.ClearError(m.state.view)
	}
	m.actionErr = nil
	m.state = idle()
	return m
}

func (m model) showError(err error) model {
	m.actionErr = err
	m.state = errorDisplayed(m.activeKey())
	return m
}

func (m model) dismissError() model {
	if m.state.phase == phaseError {
		m.views.ClearError(m.state.view)
	}
	m.actionErr = nil
	m.state = idle()
	return m
}

func (m model) quit() (model, tea.Cmd) {
	m.quitting = true
	m.exec.CancelAll()
	return m, tea.Quit
}

// ── Update ───────────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.detail != nil {
			d := m.detail.resize(m.width-4, m.tableHeight())
			m.detail = &d
		}
		return m, nil
	case completionMsg:
		return m.onCompletion(msg.completion)
	case outcomeMsg:
		return m.onOutcome(msg.outcome)
	case prefetchMsg:
		return m.onPrefetch(msg), nil
	case refreshTickMsg:
		return m.onRefreshTick()
	case copiedMsg:
		m.status = "copied to clipboard"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.state.phase != phaseAwaiting {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	if m.filter.editing {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) onCompletion(c network.Completion) (tea.Model, tea.Cmd) {
	if !m.exec.Settle(c) {
		m.logger.Debug().Str("view", c.Key.String()).Uint64("generation", c.Generation).Msg("stale completion dropped")
		return m, nil
	}

	m.views.Apply(c.Key, c.Generation, c.Result)
	if c.Result.Err != nil && !c.Result.Cancelled() {
		m.logger.Error().Err(c.Result.Err).Str("view", c.Key.String()).Msg("request failed")
	}

	if m.state.phase == phaseAwaiting && m.state.view == c.Key {
		if c.Result.Err != nil && !c.Result.Cancelled() {
			m.state = errorDisplayed(c.Key)
		} else {
			m.state = idle()
		}
	}

	if m.detail != nil && m.detail.fetched && m.detail.key == c.Key && c.Result.OK() {
		d := m.detail.setContent(c.Result.Value)
		m.detail = &d
	}
	if rows, err := m.rows(); err == nil && m.cursor >= len(rows) {
		m.cursor = max(len(rows)-1, 0)
	}
	return m, nil
}

func (m model) onOutcome(o network.Outcome) (tea.Model, tea.Cmd) {
	if o.Result.Cancelled() {
		return m, nil
	}
	if o.Result.Err != nil {
		m.status = ""
		m.logger.Error().Err(o.Result.Err).Str("operation", string(o.Action.Operation())).Msg("mutation failed")
		return m.showError(o.Result.Err), nil
	}

	spec, _ := action.Lookup(o.Action.Operation())
	m.status = spec.Description + ": done"
	m, cmd := m.fetchActive()
	return m, tea.Batch(cmd, cmdClearStatus())
}

// onPrefetch stores the startup status probes. A view the user already
// requested is left alone.
func (m model) onPrefetch(msg prefetchMsg) model {
	for i, a := range msg.actions {
		if i >= len(msg.results) {
			break
		}
		key := network.KeyOf(a)
		d := m.views.Read(key)
		if d.Loading || d.HasValue() || d.Err != nil {
			continue
		}
		res := msg.results[i]
		m.views.Apply(key, 0, res)
		if res.Err != nil {
			m.logger.Warn().Err(res.Err).Str("backend", string(a.Backend())).Msg("status probe failed")
		}
	}
	return m
}

func (m model) onRefreshTick() (tea.Model, tea.Cmd) {
	next := cmdRefreshTick(m.refresh)
	if m.quitting || m.state.phase == phaseError || m.confirm != nil {
		return m, next
	}
	m, cmd := m.fetchActive()
	return m, tea.Batch(cmd, next)
}

func (m model) onKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(k, keys.forceQuit) {
		return m.quit()
	}

	if m.confirm != nil {
		switch {
		case key.Matches(k, keys.yes):
			a := m.confirm.action
			m.confirm = nil
			return m.submit(a)
		case key.Matches(k, keys.no), key.Matches(k, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.filter.editing {
		switch {
		case key.Matches(k, keys.enter):
			m.filter = m.filter.stop()
			return m, nil
		case key.Matches(k, keys.esc):
			m.filter = m.filter.clear()
			m.cursor = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.update(k)
		m.cursor = 0
		return m, cmd
	}

	if m.state.phase == phaseError {
		switch {
		case key.Matches(k, keys.enter), key.Matches(k, keys.esc):
			return m.dismissError(), nil
		case key.Matches(k, keys.refresh):
			return m.dismissError().fetchActive()
		case key.Matches(k, keys.quit),
			key.Matches(k, keys.tab), key.Matches(k, keys.backtab),
			key.Matches(k, keys.left), key.Matches(k, keys.right):
		default:
			return m, nil
		}
	}

	switch {
	case key.Matches(k, keys.quit):
		return m.quit()
	case key.Matches(k, keys.tab):
		return m.switchBackend(1)
	case key.Matches(k, keys.backtab):
		return m.switchBackend(-1)
	case key.Matches(k, keys.right):
		return m.switchTab(1)
	case key.Matches(k, keys.left):
		return m.switchTab(-1)
	case key.Matches(k, keys.refresh):
		return m.fetchActive()
	case key.Matches(k, keys.esc):
		if m.detail != nil {
			return m.closeDetail()
		}
		if m.filter.pattern() != "" {
			m.filter = m.filter.clear()
			m.cursor = 0
		}
		return m, nil
	case key.Matches(k, keys.up), key.Matches(k, keys.down),
		key.Matches(k, keys.pageUp), key.Matches(k, keys.pageDown):
		return m.move(k)
	case key.Matches(k, keys.enter):
		if m.detail != nil {
			return m, nil
		}
		return m.openDetail()
	case key.Matches(k, keys.remove):
		return m.onSelection(bindRemove)
	case key.Matches(k, keys.search):
		return m.onSelection(bindSearch)
	case key.Matches(k, keys.rescan):
		return m.onSelection(bindRescan)
	case key.Matches(k, keys.startTask):
		return m.onSelection(bindStart)
	case key.Matches(k, keys.copy):
		return m.copySelection()
	case key.Matches(k, keys.filter):
		if m.detail != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.start()
		return m, cmd
	}
	return m, nil
}

func (m model) move(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		d, cmd := m.detail.update(k)
		m.detail = &d
		return m, cmd
	}

	rows, _ := m.rows()
	switch {
	case key.Matches(k, keys.up):
		m.cursor--
	case key.Matches(k, keys.down):
		m.cursor++
	case key.Matches(k, keys.pageUp):
		m.cursor -= m.tableHeight()
	case key.Matches(k, keys.pageDown):
		m.cursor += m.tableHeight()
	}
	m.cursor = min(m.cursor, len(rows)-1)
	m.cursor = max(m.cursor, 0)
	return m, nil
}

func (m model) switchBackend(delta int) (tea.Model, tea.Cmd) {
	n := len(m.backends)
	if n == 0 {
		return m, nil
	}
	m = m.leaveView()
	m.detail = nil
	m.backend = (m.backend + delta + n) % n
	m.tab = 0
	m.cursor = 0
	m.filter = m.filter.clear()
	return m.fetchActive()
}

func (m model) switchTab(delta int) (tea.Model, tea.Cmd) {
	if len(m.backends) == 0 {
		return m, nil
	}
	n := len(m.tabs[m.backend])
	m = m.leaveView()
	m.detail = nil
	m.tab = (m.tab + delta + n) % n
	m.cursor = 0
	m.filter = m.filter.clear()
	return m.fetchActive()
}

func (m model) openDetail() (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok {
		return m, nil
	}

	a, fetch, err := resolve(m.kind(), m.activeTab(), bindDetails, &sel)
	if err != nil {
		return m.showError(err), nil
	}

	m = m.leaveView()
	d := newDetailModel(fitText(sel.label, 60), m.width-4, m.tableHeight())
	d = d.setContent(sel.record)
	if !fetch {
		m.detail = &d
		return m, nil
	}

	d.fetched = true
	d.key = network.KeyOf(a)
	d.action = a
	m.detail = &d
	// The key is shared by every entity of the same kind.
	m.views.Invalidate(d.key)
	return m.issue(d.key, a)
}

func (m model) closeDetail() (tea.Model, tea.Cmd) {
	m = m.leaveView()
	m.detail = nil
	return m.fetchActive()
}

func (m model) onSelection(b binding) (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	var selected *row
	if ok {
		selected = &sel
	}

	a, ok, err := resolve(m.kind(), m.activeTab(), b, selected)
	if err != nil {
		return m.showError(err), nil
	}
	if !ok {
		m.status = "nothing to do here"
		return m, cmdClearStatus()
	}

	if b == bindRemove {
		m.confirm = &confirmModel{message: fitText(sel.label, 60), action: a}
		return m, nil
	}
	return m.submit(a)
}

func (m model) copySelection() (tea.Model, tea.Cmd) {
	var v any
	if m.detail != nil && m.detail.fetched {
		v = m.views.Read(m.detail.key).Value
	}
	if v == nil {
		sel, ok := m.selected()
		if !ok {
			return m, nil
		}
		v = sel.record
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return m.showError(fmt.Errorf("encode selection: %w", err)), nil
	}
	return m, cmdCopyToClipboard(string(out))
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.backends) == 0 {
		return appStyle.Render(renderPage(titleStyle.Render("arrkeeper"), "no backends configured", ""))
	}

	title := m.renderBackendBar() + "\n  " + m.renderTabBar()

	var body string
	if m.detail != nil {
		body = titleStyle.Render(m.detail.title) + "\n\n" + m.detail.View()
	} else {
		rows, err := m.rows()
		if err != nil {
			body = errorStyle.Render(err.Error())
		} else {
			body = renderTable(m.activeTab().columns, rows, m.cursor, m.tableHeight())
		}
		if f := m.filter.View(); f != "" {
			body += "\n\n" + f
		}
	}
	body += "\n\n" + m.renderStatus()

	page := renderPage(title, body, m.help())
	if m.confirm != nil {
		page += "\n\n" + m.confirm.View()
	}
	if m.state.phase == phaseError {
		page += "\n\n" + errorOverlayModel{err: m.activeError()}.View()
	}
	return appStyle.Render(page)
}

func (m model) activeError() error {
	if m.actionErr != nil {
		return m.actionErr
	}
	return m.views.Read(m.state.view).Err
}

func (m model) renderBackendBar() string {
	parts := make([]string, len(m.backends))
	for i, kind := range m.backends {
		label := kind.Title()
		status := m.views.Read(network.ViewKey{Backend: kind, View: action.ViewStatus})
		switch {
		case status.Err != nil:
			label += " !"
		case status.HasValue():
			if s, ok := status.Value.(models.SystemStatus); ok && s.Version != "" {
				label += " " + s.Version
			}
		}
		if i == m.backend {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = inactiveTabStyle.Render(label)
		}
	}
	return titleStyle.Render("arrkeeper") + "  " + strings.Join(parts, "  ")
}

func (m model) renderTabBar() string {
	tabs := m.tabs[m.backend]
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.tab {
			parts[i] = activeTabStyle.Render(t.title)
		} else {
			parts[i] = inactiveTabStyle.Render(t.title)
		}
	}
	return strings.Join(parts, " | ")
}

func (m model) renderStatus() string {
	d := m.views.Read(m.activeKey())

	var parts []string
	if m.state.phase == phaseAwaiting {
		parts = append(parts, m.spinner.View()+" loading")
	}
	if d.HasValue() {
		parts = append(parts, "updated "+d.RefreshedAt.Format("15:04:05"))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(valueOrDash(strings.Join(parts, "  ·  ")))
}

func (m model) help() string {
	if m.detail != nil {
		return "↑/↓ scroll  r refresh  c copy  esc back"
	}

	t := m.activeTab()
	parts := []string{"tab backend", "←/→ view", "r refresh"}
	if t.details != "" {
		parts = append(parts, "enter details")
	} else {
		parts = append(parts, "enter show")
	}
	if t.remove != "" {
		parts = append(parts, "d delete")
	}
	if t.search != "" {
		parts = append(parts, "s search")
	}
	if t.rescan != "" {
		parts = append(parts, "u refresh item")
	}
	if t.start != "" {
		parts = append(parts, "t start task")
	}
	return strings.Join(append(parts, "c copy", "/ filter"), "  ")
}
