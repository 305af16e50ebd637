// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode parses the ranking snapshot's comma-delimited text into
// ordered rows keyed by header name.
//
// The dialect is deliberately small: a double quote toggles quoted mode,
// separators inside quotes are data, and quote characters are dropped from
// values. Escaped quotes ("") are not supported; an embedded quote is read
// as a toggle. Malformed rows degrade to empty fields instead of failing.
package decode

import (
	"errors"
	"strings"
)

// ErrMalformedInput is returned when the input has no header row.
var ErrMalformedInput = errors.New("malformed input: no header row")

const separator = ','

// Field is one named value of a decoded row.
type Field struct {
	Name  string
	Value string
}

// Row holds a data line's fields in header order. Every header has a field,
// so len(row) equals the header count.
type Row []Field

// Get returns the value for the named column, or "" if the column is absent.
func (r Row) Get(name string) string {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Decode splits text into lines, reads the first non-blank line as the
// header, and decodes each following non-blank line into a Row. Missing
// trailing fields are empty strings; surplus fields are ignored.
func Decode(text string) ([]Row, error) {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrMalformedInput
	}

	headers := Headers(lines[start])

	rows := make([]Row, 0, len(lines)-start-1)
	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := SplitLine(strings.TrimSuffix(line, "\r"))

		row := make(Row, len(headers))
		for i, h := range headers {
			row[i] = Field{Name: h}
			if i < len(values) {
				row[i].Value = values[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Headers decodes a header line into trimmed, unquoted column names.
func Headers(line string) []string {
	names := SplitLine(strings.TrimSuffix(line, "\r"))
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
	}
	return names
}

// SplitLine splits one line on separators outside quoted segments and drops
// the quote characters. It always returns at least one value.
func SplitLine(line string) []string {
	var (
		values   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == separator && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(values, current.String())
}
