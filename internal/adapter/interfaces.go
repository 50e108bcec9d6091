// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between arrkeeper and the
// servarr REST APIs.
//
// The primary abstraction is [BackendClient]: one instance per configured
// backend, built from its [models.BackendDescriptor] by [NewBackendClient].
// Every kind shares one implementation parameterised by a route table that
// maps each supported [action.Operation] to an HTTP method, a path, an
// optional body and a response decoder.
//
// Failures are classified into the taxonomy of package app by
// mapTransportError and mapHTTPError, so callers can use [errors.Is] against
// app.ErrConnection, app.ErrAuth, app.ErrResponse and app.ErrDecode.
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_client_mock.go -package=mock

// BackendClient turns actions into HTTP requests against one backend and
// turns the responses back into typed results. Implementations are read-only
// after construction and safe for concurrent use.
type BackendClient interface {
	// Kind returns the backend kind the client talks to.
	Kind() models.BackendKind

	// BuildRequest maps a to the HTTP request it would send, without sending
	// it. It fails with a validation error when a belongs to another kind or
	// its operation has no route.
	BuildRequest(a action.Action) (Request, error)

	// ParseResponse classifies a received response and decodes its body into
	// the typed result of a's operation.
	ParseResponse(a action.Action, status int, body []byte) (any, error)

	// Do sends a and returns the decoded result. ctx cancellation aborts the
	// request.
	Do(ctx context.Context, a action.Action) (any, error)
}

// Request is the transport-independent description of one HTTP call. Path is
// relative to the backend's API root.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is marshalled as JSON when non-nil.
	Body any
}
