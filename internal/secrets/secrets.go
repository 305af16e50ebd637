// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials kept outside the config file. A secrets
// directory holds one file per credential; the file name is the key and the
// trimmed contents are the value. The CLI reads SourceToken as the bearer
// token for private snapshot URLs.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const (
	// DefaultDir is where the CLI looks for secrets.
	DefaultDir = ".secrets"

	// SourceToken names the bearer token for remote snapshots.
	SourceToken = "source-token"
)

// Set maps credential names to values.
type Set map[string]string

// LoadDir reads the secrets directory at dir. A missing directory yields an
// empty Set.
func LoadDir(dir string) (Set, error) {
	s, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}
	return s, nil
}

// Load reads every regular, non-hidden file at the root of fsys. Blank
// files are skipped; unreadable ones are logged and skipped.
func Load(fsys fs.FS) (Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return Set{}, nil
	}
	if err != nil {
		return nil, err
	}

	s := make(Set, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			slog.Warn("skipping unreadable secret", "name", name, "error", err)
			continue
		}
		if v := strings.TrimSpace(string(raw)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}

// Lookup prefers an explicitly configured value over the stored secret.
func (s Set) Lookup(key, configured string) string {
	if configured != "" {
		return configured
	}
	return s[key]
}

// Names returns the loaded secret names, sorted. Values are never logged.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
