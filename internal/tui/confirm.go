package tui

import "github.com/MKhiriev/go-arr-keeper/internal/action"

// confirmModel asks before a destructive action is submitted.
type confirmModel struct {
	message string
	action  action.Action
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}
