package store

import (
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/network"
)

// ViewRepository holds the last known data of every (backend, view) pair the
// interactive UI has shown. It has a single writer: the UI update loop.
type ViewRepository interface {
	// Begin marks key as loading. The last known value stays readable.
	Begin(key network.ViewKey)
	// Apply records the settled result of a request for key. Success replaces
	// the value wholesale and clears the error; failure sets the error and
	// keeps the value.
	Apply(key network.ViewKey, generation uint64, res network.Result)
	// Read returns a copy of the data held for key.
	Read(key network.ViewKey) ViewData
	// ClearError dismisses the active error of key.
	ClearError(key network.ViewKey)
	// Invalidate drops the data of key so the next read shows it as empty.
	Invalidate(key network.ViewKey)
}

// ViewData is the state of one view.
type ViewData struct {
	Value       any
	Loading     bool
	RefreshedAt time.Time
	Err         error
	Generation  uint64
}

// HasValue reports whether a successful result was ever applied.
func (d ViewData) HasValue() bool {
	return !d.RefreshedAt.IsZero()
}
