package tui

import (
	"fmt"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// detailModel is the details pane. A pane with a fetched view shows the
// data held for key; otherwise it shows the selected record as listed.
type detailModel struct {
	title   string
	fetched bool
	key     network.ViewKey
	action  action.Action

	viewport viewport.Model
}

func newDetailModel(title string, width, height int) detailModel {
	return detailModel{title: title, viewport: viewport.New(width, height)}
}

// setContent renders v into the viewport.
func (m detailModel) setContent(v any) detailModel {
	m.viewport.SetContent(renderDocument(v))
	return m
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) resize(width, height int) detailModel {
	m.viewport.Width = width
	m.viewport.Height = height
	return m
}

func (m detailModel) View() string {
	return m.viewport.View()
}

// renderDocument renders v as YAML, which reads better than JSON for nested
// entities.
func renderDocument(v any) string {
	if v == nil {
		return "-"
	}
	doc, err := toDocument(v)
	if err != nil {
		return err.Error()
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Sprintf("render: %v", err)
	}
	return string(out)
}
