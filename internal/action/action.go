// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package action defines the Action model shared by both front ends.
//
// An [Action] names one backend, one [Operation] and a typed [Payload]. The
// interactive client builds actions from key presses and the one-shot client
// from parsed command lines; both go through [New], so an action that exists
// has already passed validation. The catalogue of operations, their payload
// types and the views they populate live in this package only.
package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/models"
)

// ErrUnsupportedOperation is wrapped when a kind does not implement an
// operation.
var ErrUnsupportedOperation = errors.New("operation not supported by backend")

// ErrPayloadMismatch is wrapped when the payload type does not belong to the
// operation.
var ErrPayloadMismatch = errors.New("payload type does not match operation")

// Action is an immutable, validated request to perform one operation against
// one backend.
type Action struct {
	backend models.BackendKind
	op      Operation
	payload Payload
}

// New validates and builds an [Action]. payload may be a value or a pointer
// to the operation's payload type; nil is accepted for operations without
// arguments.
//
// Every failure is an [app.ErrValidation].
func New(backend models.BackendKind, op Operation, payload Payload) (Action, error) {
	spec, ok := Lookup(op)
	if !ok {
		return Action{}, app.NewValidationError(backend, string(op), fmt.Errorf("unknown operation %q", op))
	}
	if !backend.Valid() {
		return Action{}, app.NewValidationError(backend, string(op), models.ErrUnknownBackend)
	}
	if !IsSupported(backend, op) {
		return Action{}, app.NewValidationError(backend, string(op), ErrUnsupportedOperation)
	}

	if payload == nil {
		payload = NoPayload{}
	}
	payload = deref(payload)
	if reflect.TypeOf(payload) != spec.payload {
		return Action{}, app.NewValidationError(backend, string(op),
			fmt.Errorf("%w: got %T", ErrPayloadMismatch, payload))
	}
	if err := payload.Validate(); err != nil {
		return Action{}, app.NewValidationError(backend, string(op), err)
	}

	return Action{backend: backend, op: op, payload: payload}, nil
}

func deref(p Payload) Payload {
	v := reflect.ValueOf(p)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		if inner, ok := v.Elem().Interface().(Payload); ok {
			return inner
		}
	}
	return p
}

func (a Action) Backend() models.BackendKind {
	return a.backend
}

func (a Action) Operation() Operation {
	return a.op
}

// Payload returns the validated payload value.
func (a Action) Payload() Payload {
	return a.payload
}

// Spec returns the catalogue entry of the action's operation.
func (a Action) Spec() Spec {
	s, _ := Lookup(a.op)
	return s
}

// View returns the view the action populates, empty for mutations.
func (a Action) View() View {
	return a.Spec().View
}

func (a Action) Mutating() bool {
	return a.Spec().Mutating
}

// IsZero reports whether a was not produced by [New].
func (a Action) IsZero() bool {
	return a.op == ""
}

func (a Action) String() string {
	return string(a.backend) + " " + string(a.op)
}

// MarshalJSON renders the action for logs and debugging output.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Backend   models.BackendKind `json:"backend"`
		Operation Operation          `json:"operation"`
		Payload   Payload            `json:"payload"`
	}{a.backend, a.op, a.payload})
}

// PayloadAs returns the payload of a as T.
func PayloadAs[T Payload](a Action) (T, error) {
	p, ok := a.payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s expects %T, got %T", ErrPayloadMismatch, a.op, zero, a.payload)
	}
	return p, nil
}
