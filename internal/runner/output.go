package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"
)

// Format is the document format of one-shot output.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts "json" and "yaml" in any case; empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q, expected json or yaml", ErrUnknownFormat, s)
}

// encoder renders decoded results as one document, optionally narrowed by a
// compiled JMESPath expression.
type encoder struct {
	format Format
	query  *jmespath.JMESPath
}

func newEncoder(format Format, query string) (*encoder, error) {
	e := &encoder{format: format}
	if strings.TrimSpace(query) == "" {
		return e, nil
	}

	jp, err := jmespath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query expression: %w", err)
	}
	e.query = jp
	return e, nil
}

// encode returns the rendered document, always newline terminated.
func (e *encoder) encode(v any) ([]byte, error) {
	if e.query == nil && e.format == FormatJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding result: %w", err)
		}
		return append(out, '\n'), nil
	}

	// JMESPath and YAML both work on generic data shaped by the JSON tags.
	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	if e.query != nil {
		generic, err = e.query.Search(generic)
		if err != nil {
			return nil, fmt.Errorf("error applying query: %w", err)
		}
	}

	switch e.format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return nil, fmt.Errorf("error encoding result: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("error encoding result: %w", err)
		}
		return buf.Bytes(), nil
	default:
		out, err := json.MarshalIndent(generic, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding result: %w", err)
		}
		return append(out, '\n'), nil
	}
}

func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding result: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("error encoding result: %w", err)
	}
	return generic, nil
}
