package tui

import (
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
)

// completionMsg carries a finished view-scoped request.
type completionMsg struct {
	completion network.Completion
}

// outcomeMsg carries a finished mutation.
type outcomeMsg struct {
	outcome network.Outcome
}

// prefetchMsg carries the startup status probes, in backend order.
type prefetchMsg struct {
	actions []action.Action
	results []network.Result
}

type refreshTickMsg struct {
	at time.Time
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
