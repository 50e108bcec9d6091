package network

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/models"
)

// Result is the outcome of one executed action. Exactly one of Value and Err
// is set.
type Result struct {
	Value any
	Err   error
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Cancelled reports whether the action was aborted by its caller. Cancelled
// results are not failures and are never shown to the user.
func (r Result) Cancelled() bool {
	return r.Err != nil && errors.Is(r.Err, context.Canceled)
}

// ViewKey identifies one view of one backend. At most one view-scoped request
// per key is current at any time.
type ViewKey struct {
	Backend models.BackendKind
	View    action.View
}

func (k ViewKey) String() string {
	return string(k.Backend) + "/" + string(k.View)
}

// KeyOf returns the view key an action's result is stored under.
func KeyOf(a action.Action) ViewKey {
	return ViewKey{Backend: a.Backend(), View: a.View()}
}

// Completion is what a view-scoped [Request] produces when it finishes.
type Completion struct {
	Key        ViewKey
	Generation uint64
	Action     action.Action
	Result     Result
}

// Outcome is what a detached submission produces when it finishes.
type Outcome struct {
	Action action.Action
	Result Result
}

// Request is one issued view-scoped request. Run blocks until the backend
// answers, the per-request timeout expires or the request is superseded.
type Request struct {
	Key        ViewKey
	Generation uint64
	Action     action.Action

	run func() Completion
}

// Run performs the request and returns its only completion.
func (r Request) Run() Completion {
	return r.run()
}
