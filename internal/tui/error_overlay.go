package tui

import "github.com/MKhiriev/go-arr-keeper/internal/app"

type errorOverlayModel struct {
	err error
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + app.Describe(m.err) + "\n\n"
	content += helpStyle.Render("r retry    enter / esc close")
	return overlayBoxStyle.Render(content)
}
