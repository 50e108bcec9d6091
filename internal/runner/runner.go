// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package runner is the one-shot front end: it executes exactly one action,
// writes the decoded result as a single document to stdout and turns the
// failure class into the process exit code.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/network"
)

// Executor is the part of [network.Executor] the runner needs.
type Executor interface {
	Execute(ctx context.Context, a action.Action) network.Result
	ExecuteAll(ctx context.Context, actions []action.Action) []network.Result
}

// Options controls output rendering.
type Options struct {
	Output Format
	// Query is an optional JMESPath expression applied to the result.
	Query string
	// Spinner draws a progress indicator on stderr while waiting.
	Spinner bool
}

// Runner executes one action per call.
type Runner struct {
	exec   Executor
	stdout io.Writer
	stderr io.Writer
	opts   Options
	logger *logger.Logger
}

// New constructs a [Runner]. log may be nil.
func New(exec Executor, stdout, stderr io.Writer, opts Options, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Output == "" {
		opts.Output = FormatJSON
	}
	return &Runner{exec: exec, stdout: stdout, stderr: stderr, opts: opts, logger: log}
}

// Run executes a and returns the process exit code. On success exactly one
// document is written to stdout; on failure exactly one line is written to
// stderr and stdout is left untouched.
func (r *Runner) Run(ctx context.Context, a action.Action) int {
	enc, err := newEncoder(r.opts.Output, r.opts.Query)
	if err != nil {
		return r.fail(app.NewValidationError(a.Backend(), string(a.Operation()), err))
	}

	var p *progress
	if r.opts.Spinner {
		p = startProgress(r.stderr, fmt.Sprintf("%s: %s", a.Backend().Title(), a.Spec().Description))
	}
	res := r.exec.Execute(ctx, a)
	p.stop()

	if res.Err != nil {
		r.logger.Error().Err(res.Err).Str("action", a.String()).Msg("one-shot action failed")
		return r.fail(res.Err)
	}

	out, err := enc.encode(res.Value)
	if err != nil {
		return r.fail(app.NewDecodeError(a.Backend(), string(a.Operation()), err))
	}
	if _, err = r.stdout.Write(out); err != nil {
		r.logger.Error().Err(err).Msg("failed to write result")
		return app.ExitInternal
	}
	return app.ExitOK
}

// Fail reports err the way Run reports action failures and returns the exit
// code. It lets callers surface usage errors found before an action exists.
func (r *Runner) Fail(err error) int {
	return r.fail(err)
}

func (r *Runner) fail(err error) int {
	fmt.Fprintln(r.stderr, app.Describe(err))
	return app.ExitCode(err)
}
