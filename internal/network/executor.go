// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network executes actions against configured backends.
//
// The [Executor] offers three paths. Execute is synchronous and is what the
// one-shot command uses. Issue and Settle form the view-scoped asynchronous
// path of the interactive UI: each (backend, view) key carries a generation
// counter, issuing a new request cancels the previous one for the same key,
// and a completion is applied only when its generation is still current.
// Submit runs mutations detached from any view so that a refresh never
// cancels a delete or an edit.
//
// Bookkeeping methods (Issue, Settle, Cancel, CancelAll, Submit) are meant to
// be called from the UI update loop; only the functions they return perform
// I/O and may run on other goroutines.
package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/adapter"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/models"
	"golang.org/x/sync/errgroup"
)

// DefaultFanOut bounds ExecuteAll concurrency.
const DefaultFanOut = 4

// ErrBackendNotConfigured is returned for actions addressed to a backend that
// has no descriptor in the configuration.
var ErrBackendNotConfigured = errors.New("backend is not configured")

type inflight struct {
	generation uint64
	cancel     context.CancelFunc
}

// Executor runs actions through the backend client of their kind.
type Executor struct {
	clients map[models.BackendKind]adapter.BackendClient
	timeout time.Duration
	fanOut  int
	logger  *logger.Logger

	mu          sync.Mutex
	generations map[ViewKey]uint64
	views       map[ViewKey]inflight
	detached    map[uint64]context.CancelFunc
	nextID      uint64
}

// Option customises an [Executor].
type Option func(*Executor)

// WithFanOut sets the ExecuteAll concurrency limit.
func WithFanOut(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.fanOut = n
		}
	}
}

// WithLogger sets the executor logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExecutor returns an executor over clients. A non-positive timeout
// disables the per-request deadline.
func NewExecutor(clients map[models.BackendKind]adapter.BackendClient, timeout time.Duration, opts ...Option) *Executor {
	e := &Executor{
		clients:     clients,
		timeout:     timeout,
		fanOut:      DefaultFanOut,
		logger:      logger.Nop(),
		generations: make(map[ViewKey]uint64),
		views:       make(map[ViewKey]inflight),
		detached:    make(map[uint64]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Backends returns the configured kinds in catalogue order.
func (e *Executor) Backends() []models.BackendKind {
	var kinds []models.BackendKind
	for _, k := range models.AllBackendKinds() {
		if _, ok := e.clients[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Has reports whether kind is configured.
func (e *Executor) Has(kind models.BackendKind) bool {
	_, ok := e.clients[kind]
	return ok
}

// Execute runs a synchronously and returns its result. Timeout expiry and
// unclassified transport failures are reported as connection errors.
func (e *Executor) Execute(ctx context.Context, a action.Action) Result {
	client, ok := e.clients[a.Backend()]
	if !ok {
		return Result{Err: app.NewValidationError(a.Backend(), string(a.Operation()), ErrBackendNotConfigured)}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	v, err := client.Do(ctx, a)
	if err != nil {
		return Result{Err: classify(a, err)}
	}
	return Result{Value: v}
}

func classify(a action.Action, err error) error {
	var appErr *app.Error
	if errors.As(err, &appErr) {
		return err
	}
	return app.NewConnectionError(a.Backend(), string(a.Operation()), err)
}

// Issue starts a view-scoped request for key. Any request still in flight
// for key is cancelled and its completion will not settle.
func (e *Executor) Issue(ctx context.Context, key ViewKey, a action.Action) Request {
	e.mu.Lock()
	gen := e.generations[key] + 1
	e.generations[key] = gen
	if prev, ok := e.views[key]; ok {
		prev.cancel()
		e.logger.Debug().Str("view", key.String()).Uint64("generation", prev.generation).Msg("request superseded")
	}
	reqCtx, cancel := context.WithCancel(ctx)
	e.views[key] = inflight{generation: gen, cancel: cancel}
	e.mu.Unlock()

	return Request{
		Key:        key,
		Generation: gen,
		Action:     a,
		run: func() Completion {
			return Completion{Key: key, Generation: gen, Action: a, Result: e.Execute(reqCtx, a)}
		},
	}
}

// Settle reports whether c is the current completion for its key and, if so,
// releases the request's resources. Stale completions return false and must
// be discarded.
func (e *Executor) Settle(c Completion) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.generations[c.Key] != c.Generation {
		return false
	}
	if cur, ok := e.views[c.Key]; ok && cur.generation == c.Generation {
		cur.cancel()
		delete(e.views, c.Key)
	}
	return true
}

// Pending reports whether key has a request in flight.
func (e *Executor) Pending(key ViewKey) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.views[key]
	return ok
}

// Cancel aborts the in-flight request for key, if any. Its completion will
// not settle.
func (e *Executor) Cancel(key ViewKey) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelLocked(key)
}

func (e *Executor) cancelLocked(key ViewKey) {
	cur, ok := e.views[key]
	if !ok {
		return
	}
	cur.cancel()
	delete(e.views, key)
	e.generations[key]++
}

// CancelAll aborts every view-scoped and detached request.
func (e *Executor) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key := range e.views {
		e.cancelLocked(key)
	}
	for id, cancel := range e.detached {
		cancel()
		delete(e.detached, id)
	}
}

// Submit prepares a detached execution of a. The returned function performs
// the request; it is only cancelled by CancelAll.
func (e *Executor) Submit(ctx context.Context, a action.Action) func() Outcome {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	reqCtx, cancel := context.WithCancel(ctx)
	e.detached[id] = cancel
	e.mu.Unlock()

	return func() Outcome {
		res := e.Execute(reqCtx, a)

		e.mu.Lock()
		if c, ok := e.detached[id]; ok {
			c()
			delete(e.detached, id)
		}
		e.mu.Unlock()

		return Outcome{Action: a, Result: res}
	}
}

// ExecuteAll runs actions concurrently, at most fanOut at a time, and
// returns their results in input order. A failed action does not stop the
// others.
func (e *Executor) ExecuteAll(ctx context.Context, actions []action.Action) []Result {
	results := make([]Result, len(actions))

	var g errgroup.Group
	g.SetLimit(e.fanOut)
	for i, a := range actions {
		g.Go(func() error {
			results[i] = e.Execute(ctx, a)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
