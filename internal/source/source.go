// Package source acquires raw OpenAPI documents from a local file or an
// HTTP(S) URL. It is the engine's only suspending collaborator: everything
// downstream operates on the already-materialized document it returns.
//
// There is no caching and no retry here. Every Fetch reads the source fresh,
// so the served view always matches the document on disk or at the URL;
// retry policy, if any, belongs to the caller.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/erraggy/oasquery"
	"github.com/erraggy/oasquery/spec"
)

// DefaultMaxSize is the default limit for fetched document size.
// OpenAPI documents beyond 10MB are almost certainly a misconfiguration.
const DefaultMaxSize int64 = 10 * 1024 * 1024

// Source identifies where the OpenAPI document lives.
type Source struct {
	// Location is a filesystem path or an http(s) URL.
	Location string
	// IsURL is true when Location is an http(s) URL.
	IsURL bool
}

// Detect classifies a location string as a file path or URL.
// An empty location is an error: the engine cannot run without a document.
func Detect(location string) (Source, error) {
	if location == "" {
		return Source{}, fmt.Errorf("no spec source provided: set OASQUERY_SPEC or pass --spec")
	}
	isURL := strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
	return Source{Location: location, IsURL: isURL}, nil
}

// Fetch acquires and parses the document. maxSize <= 0 uses DefaultMaxSize.
// Acquisition failures (unreadable file, non-2xx status, oversized or
// malformed document) are hard errors: no partial spec can be queried.
func (s Source) Fetch(ctx context.Context, client *http.Client, maxSize int64) (*spec.Document, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	var data []byte
	var err error
	if s.IsURL {
		data, err = s.fetchURL(ctx, client, maxSize)
	} else {
		data, err = s.readFile(maxSize)
	}
	if err != nil {
		return nil, err
	}

	doc, err := spec.Load(data)
	if err != nil {
		return nil, fmt.Errorf("spec source %s: %w", s.Location, err)
	}
	return doc, nil
}

func (s Source) readFile(maxSize int64) ([]byte, error) {
	info, err := os.Stat(s.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("spec file %s is %d bytes, exceeding the %d byte limit", s.Location, info.Size(), maxSize)
	}
	data, err := os.ReadFile(s.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return data, nil
}

func (s Source) fetchURL(ctx context.Context, client *http.Client, maxSize int64) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid spec URL: %w", err)
	}
	req.Header.Set("User-Agent", oasquery.UserAgent())
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spec: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch spec: %s returned status %d", s.Location, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read spec response: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("spec at %s exceeds the %d byte limit", s.Location, maxSize)
	}
	return data, nil
}
