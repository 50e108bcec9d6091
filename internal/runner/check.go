package runner

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/models"
)

// CheckEntry is the per-backend line of the check report.
type CheckEntry struct {
	Backend models.BackendKind `json:"backend"`
	OK      bool               `json:"ok"`
	Version string             `json:"version,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// Check fetches the system status of every backend concurrently and writes a
// report document. The exit code is the highest one observed, so any failure
// makes the command fail.
func (r *Runner) Check(ctx context.Context, backends []models.BackendKind) int {
	enc, err := newEncoder(r.opts.Output, r.opts.Query)
	if err != nil {
		return r.fail(app.NewValidationError("", "check", err))
	}

	actions := make([]action.Action, 0, len(backends))
	for _, kind := range backends {
		a, err := action.New(kind, action.GetSystemStatus, nil)
		if err != nil {
			return r.fail(err)
		}
		actions = append(actions, a)
	}

	var p *progress
	if r.opts.Spinner {
		p = startProgress(r.stderr, fmt.Sprintf("checking %d backends", len(actions)))
	}
	results := r.exec.ExecuteAll(ctx, actions)
	p.stop()

	report := make([]CheckEntry, len(results))
	code := app.ExitOK
	for i, res := range results {
		entry := CheckEntry{Backend: actions[i].Backend(), OK: res.OK()}
		if res.Err != nil {
			entry.Error = app.Describe(res.Err)
			code = max(code, app.ExitCode(res.Err))
		} else if status, ok := res.Value.(models.SystemStatus); ok {
			entry.Version = status.Version
		}
		report[i] = entry
	}

	out, err := enc.encode(report)
	if err != nil {
		return r.fail(err)
	}
	if _, err = r.stdout.Write(out); err != nil {
		return app.ExitInternal
	}
	return code
}
