// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/logger"
	"github.com/MKhiriev/go-arr-keeper/internal/utils"
	"github.com/MKhiriev/go-arr-keeper/models"
)

type servarrClient struct {
	kind   models.BackendKind
	client *utils.HTTPClient
	routes routeTable

	logger *logger.Logger
}

// NewBackendClient constructs the [BackendClient] for desc.
//
// The descriptor is validated first. When desc.SSLCertPath is set the PEM
// file is loaded as the trusted root set; a missing or unparsable file is
// reported here rather than on the first request. timeout bounds every
// request at the transport level.
func NewBackendClient(desc models.BackendDescriptor, timeout time.Duration, log *logger.Logger) (BackendClient, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend descriptor: %w", err)
	}

	client, err := utils.NewBackendHTTPClient(desc.BaseURL(), desc.APIToken, desc.SSLCertPath, timeout)
	if err != nil {
		return nil, fmt.Errorf("create %s http client: %w", desc.Kind, err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &servarrClient{
		kind:   desc.Kind,
		client: client,
		routes: routesFor(desc.Kind),
		logger: log,
	}, nil
}

// NewBackendClients builds one client per descriptor, keyed by kind.
func NewBackendClients(descs []models.BackendDescriptor, timeout time.Duration, log *logger.Logger) (map[models.BackendKind]BackendClient, error) {
	clients := make(map[models.BackendKind]BackendClient, len(descs))
	for _, d := range descs {
		if _, dup := clients[d.Kind]; dup {
			return nil, fmt.Errorf("backend %s configured twice", d.Kind)
		}
		c, err := NewBackendClient(d, timeout, log)
		if err != nil {
			return nil, err
		}
		clients[d.Kind] = c
	}
	return clients, nil
}

// Kind implements [BackendClient].
func (c *servarrClient) Kind() models.BackendKind {
	return c.kind
}

func (c *servarrClient) route(a action.Action) (route, error) {
	if a.Backend() != c.kind {
		return route{}, app.NewValidationError(a.Backend(), string(a.Operation()),
			fmt.Errorf("action addressed to %s sent to %s client", a.Backend(), c.kind))
	}
	r, ok := c.routes[a.Operation()]
	if !ok {
		return route{}, app.NewValidationError(a.Backend(), string(a.Operation()), action.ErrUnsupportedOperation)
	}
	return r, nil
}

// BuildRequest implements [BackendClient].
func (c *servarrClient) BuildRequest(a action.Action) (Request, error) {
	r, err := c.route(a)
	if err != nil {
		return Request{}, err
	}

	req, err := r.build(a)
	if err != nil {
		return Request{}, app.NewValidationError(a.Backend(), string(a.Operation()), err)
	}
	return req, nil
}

// ParseResponse implements [BackendClient]. Non-2xx statuses become auth or
// response failures; a 2xx body that cannot be decoded into the operation's
// result type becomes a decode failure.
func (c *servarrClient) ParseResponse(a action.Action, status int, body []byte) (any, error) {
	r, err := c.route(a)
	if err != nil {
		return nil, err
	}

	if err = mapHTTPError(a, status, body); err != nil {
		return nil, err
	}

	if len(body) == 0 && r.allowEmpty {
		return models.Empty{}, nil
	}

	v, err := r.decode(body)
	if err != nil {
		return nil, app.NewDecodeError(a.Backend(), string(a.Operation()), err)
	}
	return v, nil
}

// Do implements [BackendClient]. Each request carries the X-Request-Id of
// ctx, or a fresh one, and logs it.
func (c *servarrClient) Do(ctx context.Context, a action.Action) (any, error) {
	req, err := c.BuildRequest(a)
	if err != nil {
		return nil, err
	}

	ctx, requestID := utils.EnsureRequestID(ctx)

	r := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	started := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		c.logger.Error().Err(err).
			Str("backend", string(c.kind)).
			Str("operation", string(a.Operation())).
			Str("request_id", requestID).
			Msg("failed to send request")
		return nil, mapTransportError(a, err)
	}

	c.logger.Debug().
		Str("backend", string(c.kind)).
		Str("method", req.Method).
		Str("path", req.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("request done")

	v, err := c.ParseResponse(a, resp.StatusCode(), resp.Body())
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", requestID).Msg("request failed")
		return nil, err
	}
	return v, nil
}
