package tui

import "github.com/MKhiriev/go-arr-keeper/internal/network"

type phase int

const (
	phaseIdle phase = iota
	phaseAwaiting
	phaseError
)

func (p phase) String() string {
	switch p {
	case phaseAwaiting:
		return "AwaitingResponse"
	case phaseError:
		return "ErrorDisplayed"
	default:
		return "Idle"
	}
}

// dispatchState is the dispatcher state machine. view is meaningful for the
// awaiting and error phases only.
type dispatchState struct {
	phase phase
	view  network.ViewKey
}

func idle() dispatchState {
	return dispatchState{phase: phaseIdle}
}

func awaiting(view network.ViewKey) dispatchState {
	return dispatchState{phase: phaseAwaiting, view: view}
}

func errorDisplayed(view network.ViewKey) dispatchState {
	return dispatchState{phase: phaseError, view: view}
}

func (s dispatchState) String() string {
	if s.phase == phaseIdle {
		return s.phase.String()
	}
	return s.phase.String() + "(" + s.view.String() + ")"
}
