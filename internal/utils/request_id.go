package utils

import (
	"context"

	"github.com/google/uuid"
)

// NewRequestID returns a time-ordered UUIDv7, or a random v4 when the clock
// source fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// EnsureRequestID returns the request id carried by ctx. A context without
// one gets a fresh id attached.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}
