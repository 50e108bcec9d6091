package utils

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNoCertificates is returned when a certificate file holds no PEM blocks.
var ErrNoCertificates = errors.New("no PEM certificates found")

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBackendHTTPClient returns a client rooted at baseURL that sends the
// API key header on every request.
//
// When certPath is non-empty the PEM certificates it contains become the only
// trusted roots, which is how self-signed servarr installations are reached.
// timeout bounds each request; zero leaves resty's default.
func NewBackendHTTPClient(baseURL, apiKey, certPath string, timeout time.Duration) (*HTTPClient, error) {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("X-Api-Key", apiKey).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	if certPath != "" {
		tlsCfg, err := LoadTLSConfig(certPath)
		if err != nil {
			return nil, err
		}
		client.SetTLSClientConfig(tlsCfg)
	}

	return client, nil
}

// LoadTLSConfig builds a TLS configuration trusting only the certificates
// found in the PEM file at certPath.
func LoadTLSConfig(certPath string) (*tls.Config, error) {
	pem, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("read certificate %s: %w", certPath, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("certificate %s: %w", certPath, ErrNoCertificates)
	}

	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}
