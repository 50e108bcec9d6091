// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

const (
	// MsgSendFailed prefixes transport failures.
	MsgSendFailed = "failed to send request"

	// MsgParseFailed prefixes decode failures.
	MsgParseFailed = "failed to parse response"

	// MsgAuthRejected is used when the backend refuses the API token.
	MsgAuthRejected = "API token rejected"

	// MsgInvalidAction prefixes validation failures.
	MsgInvalidAction = "invalid action"

	// MsgBackendUnreachable is the user-facing text for connection failures.
	MsgBackendUnreachable = "backend unreachable, check host, port and certificate"

	// MsgCheckToken is the user-facing text for auth failures.
	MsgCheckToken = "API token rejected, check api_token in the config file"

	// MsgMalformedResponse is the user-facing text for decode failures.
	MsgMalformedResponse = "malformed response, the backend version may be unsupported"
)

// Process exit codes of the one-shot front end.
const (
	ExitOK         = 0
	ExitInternal   = 1
	ExitValidation = 2
	ExitConnection = 3
	ExitAuth       = 4
	ExitResponse   = 5
	ExitDecode     = 6
)

// ExitCode maps err to a process exit code. nil maps to [ExitOK] and an
// unclassified error to [ExitInternal].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrConnection):
		return ExitConnection
	case errors.Is(err, ErrAuth):
		return ExitAuth
	case errors.Is(err, ErrResponse):
		return ExitResponse
	case errors.Is(err, ErrDecode):
		return ExitDecode
	}
	return ExitInternal
}

// Describe renders err as a short human-readable line for the error overlay.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	prefix := ""
	if e.Backend != "" {
		prefix = e.Backend.Title() + ": "
	}

	switch e.Kind {
	case KindConnection:
		return prefix + MsgBackendUnreachable
	case KindAuth:
		return prefix + MsgCheckToken
	case KindDecode:
		return prefix + MsgMalformedResponse
	case KindResponse:
		if e.Body == "" {
			return fmt.Sprintf("%srequest failed with status %d", prefix, e.Status)
		}
		return fmt.Sprintf("%srequest failed with status %d: %s", prefix, e.Status, e.Body)
	case KindValidation:
		if e.Err != nil {
			return prefix + e.Err.Error()
		}
	}
	return e.Error()
}
