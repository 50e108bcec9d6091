package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// filterModel narrows the rows of the active tab by fuzzy matching.
type filterModel struct {
	input   textinput.Model
	editing bool
}

func newFilterModel() filterModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	return filterModel{input: ti}
}

func (f filterModel) pattern() string {
	return f.input.Value()
}

func (f filterModel) start() (filterModel, tea.Cmd) {
	f.editing = true
	return f, f.input.Focus()
}

// stop leaves edit mode and keeps the pattern.
func (f filterModel) stop() filterModel {
	f.editing = false
	f.input.Blur()
	return f
}

// clear leaves edit mode and drops the pattern.
func (f filterModel) clear() filterModel {
	f = f.stop()
	f.input.Reset()
	return f
}

func (f filterModel) update(msg tea.Msg) (filterModel, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// apply returns the rows matching the pattern, best match first.
func (f filterModel) apply(rows []row) []row {
	pattern := f.pattern()
	if pattern == "" {
		return rows
	}

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.label
	}
	matches := fuzzy.Find(pattern, labels)

	out := make([]row, 0, len(matches))
	for _, m := range matches {
		out = append(out, rows[m.Index])
	}
	return out
}

func (f filterModel) View() string {
	if f.editing {
		return f.input.View()
	}
	if p := f.pattern(); p != "" {
		return helpStyle.Render("filter: " + p + "  (esc clears)")
	}
	return ""
}
