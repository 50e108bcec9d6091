package adapter

import (
	"net/http"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/MKhiriev/go-arr-keeper/internal/app"
)

// mapHTTPError classifies a response status. 2xx maps to nil, 401 and 403 to
// auth failures and every other status to a response failure carrying the
// whitespace-collapsed body.
func mapHTTPError(a action.Action, status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	text := app.CollapseWhitespace(string(body))
	if text == "" {
		text = http.StatusText(status)
	}

	return app.NewStatusError(a.Backend(), string(a.Operation()), status, text)
}

// mapTransportError classifies a failure to obtain any response: refused
// connections, DNS errors, TLS failures, timeouts and cancellation.
func mapTransportError(a action.Action, err error) error {
	return app.NewConnectionError(a.Backend(), string(a.Operation()), err)
}
