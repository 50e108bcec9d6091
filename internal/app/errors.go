// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the failure taxonomy shared by every layer of arrkeeper.
//
// Every failure that reaches a front end is an [*Error] of exactly one
// [ErrorKind]. Callers classify errors with errors.Is against the Err*
// sentinels, so wrapping with fmt.Errorf("...: %w", err) keeps the class
// intact. The one-shot front end turns the class into a process exit code
// via [ExitCode]; the interactive front end renders [Describe].
package app

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-arr-keeper/models"
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	KindConnection ErrorKind = iota + 1
	KindAuth
	KindResponse
	KindDecode
	KindValidation
)

// Sentinels matched by [*Error.Is].
var (
	ErrConnection = errors.New("connection error")
	ErrAuth       = errors.New("authentication error")
	ErrResponse   = errors.New("response error")
	ErrDecode     = errors.New("decode error")
	ErrValidation = errors.New("validation error")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConnection:
		return ErrConnection
	case KindAuth:
		return ErrAuth
	case KindResponse:
		return ErrResponse
	case KindDecode:
		return ErrDecode
	case KindValidation:
		return ErrValidation
	}
	return nil
}

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindAuth:
		return "auth"
	case KindResponse:
		return "response"
	case KindDecode:
		return "decode"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is a classified failure of one action against one backend.
type Error struct {
	Kind      ErrorKind
	Backend   models.BackendKind
	Operation string
	// Status is the HTTP status for Auth and Response failures.
	Status int
	// Body is the response body with whitespace runs collapsed.
	Body string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Backend != "" {
		b.WriteString(string(e.Backend))
		if e.Operation != "" {
			b.WriteString(" ")
			b.WriteString(e.Operation)
		}
		b.WriteString(": ")
	}

	switch e.Kind {
	case KindConnection:
		b.WriteString(MsgSendFailed)
	case KindAuth:
		fmt.Fprintf(&b, "%s (status %d)", MsgAuthRejected, e.Status)
	case KindResponse:
		fmt.Fprintf(&b, "request failed. Received %d response code with body: %s", e.Status, e.Body)
	case KindDecode:
		b.WriteString(MsgParseFailed)
	case KindValidation:
		b.WriteString(MsgInvalidAction)
	default:
		b.WriteString("unknown failure")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewConnectionError classifies a transport failure (refused, DNS, TLS,
// timeout).
func NewConnectionError(backend models.BackendKind, op string, err error) *Error {
	return &Error{Kind: KindConnection, Backend: backend, Operation: op, Err: err}
}

// NewStatusError classifies a non-2xx response: 401 and 403 are auth
// failures, anything else is a response failure.
func NewStatusError(backend models.BackendKind, op string, status int, body string) *Error {
	kind := KindResponse
	if status == 401 || status == 403 {
		kind = KindAuth
	}
	return &Error{Kind: kind, Backend: backend, Operation: op, Status: status, Body: CollapseWhitespace(body)}
}

// NewDecodeError classifies a 2xx body that does not match the expected shape.
func NewDecodeError(backend models.BackendKind, op string, err error) *Error {
	return &Error{Kind: KindDecode, Backend: backend, Operation: op, Err: err}
}

// NewValidationError classifies an action rejected before any network call.
func NewValidationError(backend models.BackendKind, op string, err error) *Error {
	return &Error{Kind: KindValidation, Backend: backend, Operation: op, Err: err}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces every whitespace run with a single space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// KindOf extracts the kind of err, if it is classified.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
