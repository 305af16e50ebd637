// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter selects the records matching the active view criteria and
// lists the distinct values that populate the filter controls.
package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// Filter returns the records matching every active criterion, in input
// order. The input slice is not modified. The search term matches name OR
// acronym as a case-insensitive substring; year and category match exactly;
// classification matches exactly or, for types.NoClassification, selects
// records without a tier label.
func Filter(records []types.ConferenceRecord, c types.Criteria) []types.ConferenceRecord {
	out := make([]types.ConferenceRecord, 0, len(records))
	if c.IsEmpty() {
		return append(out, records...)
	}

	fold := cases.Fold()
	term := fold.String(c.SearchTerm)

	for _, r := range records {
		if term != "" &&
			!strings.Contains(fold.String(r.Name), term) &&
			!strings.Contains(fold.String(r.Acronym), term) {
			continue
		}
		if c.Year != "" && r.Year != c.Year {
			continue
		}
		if c.Category != "" && r.Category != c.Category {
			continue
		}
		if !matchClass(r.Classification, c.Classification) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchClass(class, want string) bool {
	switch want {
	case "":
		return true
	case types.NoClassification:
		return class == ""
	default:
		return class == want
	}
}

// Options holds the distinct values offered by each filter control.
type Options struct {
	Years           []string `json:"years" yaml:"years"`
	Categories      []string `json:"categories" yaml:"categories"`
	Classifications []string `json:"classifications" yaml:"classifications"`
}

// DistinctOptions collects the non-empty years, categories, and
// classifications present in records. Years sort newest first, categories
// alphabetically, classifications by tier rank.
func DistinctOptions(records []types.ConferenceRecord) Options {
	years := make(map[string]bool)
	cats := make(map[string]bool)
	classes := make(map[string]bool)
	for _, r := range records {
		if r.Year != "" {
			years[r.Year] = true
		}
		if r.Category != "" {
			cats[r.Category] = true
		}
		if r.Classification != "" {
			classes[r.Classification] = true
		}
	}

	opts := Options{
		Years:           keys(years),
		Categories:      keys(cats),
		Classifications: keys(classes),
	}
	slices.Reverse(opts.Years)
	slices.SortStableFunc(opts.Classifications, func(a, b string) int {
		return types.ClassRank(b) - types.ClassRank(a)
	})
	return opts
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
