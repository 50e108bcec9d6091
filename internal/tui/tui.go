// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive front end.
//
// The dispatcher is a bubbletea model. Key presses resolve to actions of the
// active backend and view; view-scoped requests go through the executor's
// Issue path and their completions are applied to the view storage inside
// Update only, so storage needs no locking. A completion whose generation is
// no longer current is dropped. Mutations are submitted detached and trigger
// a refresh of the active view when they succeed.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
	"github.com/MKhiriev/go-arr-keeper/internal/store"
	"github.com/MKhiriev/go-arr-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoBackends is returned by [New] when the executor has no backend.
var ErrNoBackends = errors.New("no backends to show")

// Executor is the part of the network executor the UI uses.
type Executor interface {
	Backends() []models.BackendKind
	Issue(ctx context.Context, key network.ViewKey, a action.Action) network.Request
	Settle(c network.Completion) bool
	Pending(key network.ViewKey) bool
	Cancel(key network.ViewKey)
	CancelAll()
	Submit(ctx context.Context, a action.Action) func() network.Outcome
	ExecuteAll(ctx context.Context, actions []action.Action) []network.Result
}

var _ Executor = (*network.Executor)(nil)

type TUI struct {
	exec    Executor
	views   store.ViewRepository
	refresh time.Duration
	logger  *logger.Logger
}

// New prepares the UI. refresh is the background refresh interval of the
// active view; zero disables it.
func New(exec Executor, views store.ViewRepository, refresh time.Duration, log *logger.Logger) (*TUI, error) {
	if len(exec.Backends()) == 0 {
		return nil, ErrNoBackends
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{exec: exec, views: views, refresh: refresh, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.exec, t.views, t.refresh, t.logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
