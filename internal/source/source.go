// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source performs the session's one asynchronous step: loading
// the ranking snapshot from a local CSV file, an http(s) URL, or a SQLite
// snapshot. A failed load is terminal; there is no retry and no fallback
// dataset.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/pdiddy/conference-rank/internal/decode"
	"github.com/pdiddy/conference-rank/internal/httputil"
	"github.com/pdiddy/conference-rank/internal/normalize"
	"github.com/pdiddy/conference-rank/internal/snapshot"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// Kind identifies how a source location is read.
type Kind string

const (
	KindFile     Kind = "file"
	KindHTTP     Kind = "http"
	KindSnapshot Kind = "snapshot"
)

// LoadError reports a terminal failure to load the snapshot.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Classify returns the kind of location.
func Classify(location string) Kind {
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindHTTP
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return KindSnapshot
	default:
		return KindFile
	}
}

// Loader reads records from a configured location.
type Loader struct {
	Client *http.Client
	HTTP   types.HTTPConfig
	Logger *slog.Logger
}

// NewLoader returns a Loader with an HTTP client using cfg's timeout.
func NewLoader(cfg types.HTTPConfig) *Loader {
	return &Loader{
		Client: &http.Client{Timeout: cfg.Timeout},
		HTTP:   cfg,
		Logger: slog.Default(),
	}
}

// Load reads and normalizes every record at location. Every failure is
// returned as a *LoadError.
func (l *Loader) Load(ctx context.Context, location string) ([]types.ConferenceRecord, error) {
	kind := Classify(location)

	var (
		records []types.ConferenceRecord
		err     error
	)
	if kind == KindSnapshot {
		records, err = l.loadSnapshot(ctx, location)
	} else {
		var text string
		text, err = l.Text(ctx, location)
		if err == nil {
			records, err = Parse(text)
		}
	}
	if err != nil {
		l.logger().Error("snapshot load failed", "source", location, "kind", kind, "error", err)
		return nil, &LoadError{Source: location, Err: err}
	}

	l.logger().Info("snapshot loaded", "source", location, "kind", kind, "records", len(records))
	return records, nil
}

// Text returns the raw CSV text at a file path or http(s) URL.
func (l *Loader) Text(ctx context.Context, location string) (string, error) {
	if Classify(location) == KindHTTP {
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		return httputil.GetText(ctx, client, location, l.HTTP.UserAgent, l.HTTP.Token)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Parse decodes and normalizes CSV text. A leading UTF-8 byte order mark
// is ignored.
func Parse(text string) ([]types.ConferenceRecord, error) {
	rows, err := decode.Decode(strings.TrimPrefix(text, "\ufeff"))
	if err != nil {
		return nil, err
	}
	return normalize.All(rows), nil
}

func (l *Loader) loadSnapshot(ctx context.Context, path string) ([]types.ConferenceRecord, error) {
	store, err := snapshot.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Records(ctx)
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
