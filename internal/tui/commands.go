package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdAwait(req network.Request) tea.Cmd {
	return func() tea.Msg {
		return completionMsg{completion: req.Run()}
	}
}

func cmdRun(run func() network.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{outcome: run()}
	}
}

// cmdPrefetch probes the status of every configured backend at once.
func (m model) cmdPrefetch() tea.Cmd {
	actions := make([]action.Action, 0, len(m.backends))
	for _, kind := range m.backends {
		a, err := action.New(kind, action.GetSystemStatus, nil)
		if err != nil {
			m.logger.Error().Err(err).Str("backend", string(kind)).Msg("build status probe")
			continue
		}
		actions = append(actions, a)
	}
	if len(actions) == 0 {
		return nil
	}

	ctx, exec := m.ctx, m.exec
	return func() tea.Msg {
		return prefetchMsg{actions: actions, results: exec.ExecuteAll(ctx, actions)}
	}
}

func cmdRefreshTick(every time.Duration) tea.Cmd {
	if every <= 0 {
		return nil
	}
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return refreshTickMsg{at: t}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
