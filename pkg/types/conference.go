// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the conference ranking
// table: the normalized ConferenceRecord, the view state that selects a
// page of records, and the summary statistics computed over the corpus.
package types

// Classification tier labels assigned by the external tiering scheme.
const (
	ClassTop10   = "Top10"
	ClassTop20   = "Top20"
	ClassGeneral = "General"
)

// NoClassification is the filter value that selects records without a tier
// label. It never appears as a record's Classification.
const NoClassification = "none"

// External identifier sources recognized when building outbound links.
const (
	SourceScholar = "scholar"
	SourceDBLP    = "dblp"
)

// ConferenceRecord is one row of the ranking snapshot after normalization.
// Numeric fields are never negative; missing values are zero.
type ConferenceRecord struct {
	// Name is the conference full name.
	Name string `json:"name" yaml:"name"`

	Acronym string `json:"acronym" yaml:"acronym"`

	// Year is kept verbatim so exact-match filtering round-trips the source text.
	Year string `json:"year" yaml:"year"`

	// Category is the topic or field label; may be empty.
	Category string `json:"category" yaml:"category"`

	PaperCount    int `json:"paper_count" yaml:"paper_count"`
	CitationCount int `json:"citation_count" yaml:"citation_count"`
	H5Index       int `json:"h5_index" yaml:"h5_index"`

	// H5Source is the provenance tag, optionally bracket-encoded (e.g. "[GS+DBLP]").
	H5Source string `json:"h5_source" yaml:"h5_source"`

	// Classification is the tier label, or empty when unclassified.
	Classification string `json:"classification" yaml:"classification"`

	// ExternalIDs maps a source name (scholar, dblp) to a bare identifier.
	// Always non-nil on normalized records.
	ExternalIDs map[string]string `json:"external_ids" yaml:"external_ids"`
}

// LinkCount returns the number of non-empty external identifiers.
func (r ConferenceRecord) LinkCount() int {
	n := 0
	for _, id := range r.ExternalIDs {
		if id != "" {
			n++
		}
	}
	return n
}

// ClassRank returns the ordinal rank of a classification label:
// Top10 > Top20 > General > unclassified. Unknown labels rank as unclassified.
func ClassRank(class string) int {
	switch class {
	case ClassTop10:
		return 3
	case ClassTop20:
		return 2
	case ClassGeneral:
		return 1
	default:
		return 0
	}
}
