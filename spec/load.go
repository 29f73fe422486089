package spec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"
)

// SourceFormat represents the format of the source OpenAPI document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
)

// detectFormat attempts to detect the format from the content bytes.
// JSON documents start with '{' or '['; anything else is treated as YAML.
func detectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// Load parses an OpenAPI 3.x document from raw YAML or JSON bytes.
//
// Only 3.x documents are accepted; OpenAPI 2.0 (Swagger) input is rejected
// with a distinct error. The returned document retains the verbatim source
// bytes (Document.Raw) and must be treated as read-only.
func Load(data []byte) (*Document, error) {
	// Cheap version probe before the full decode, so version errors are
	// reported clearly instead of as field-level decode failures.
	var probe struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if probe.OpenAPI == "" {
		if probe.Swagger != "" {
			return nil, fmt.Errorf("OpenAPI 2.0 (Swagger) documents are not supported; convert to 3.x first")
		}
		return nil, fmt.Errorf("missing required 'openapi' version field")
	}
	if !strings.HasPrefix(probe.OpenAPI, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version %q: only 3.x documents are supported", probe.OpenAPI)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	doc.raw = append([]byte(nil), data...)
	doc.format = detectFormat(data)
	return &doc, nil
}

// LoadReader reads all bytes from r and parses them with Load.
func LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Load(data)
}
