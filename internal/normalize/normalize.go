// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps decoded snapshot rows onto ConferenceRecord.
// Normalization never fails: absent columns become empty strings and
// unparseable or negative counts become zero.
package normalize

import (
	"strconv"
	"strings"

	"github.com/pdiddy/conference-rank/internal/decode"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// Snapshot column names.
const (
	ColConference = "Conference"
	ColAcronym    = "Acronym"
	ColYear       = "Year"
	ColTopic      = "Topic"
	ColPapers     = "Papers(5Y)"
	ColCitations  = "Citations(5Y)"
	ColH5         = "h5"
	ColH5Source   = "h5_source"
	ColClass      = "SBC_Class"
	ColScholarID  = "Google_Scholar_ID"
	ColDBLPID     = "DBLP_ID"
)

// externalIDColumns maps identifier columns to their link source name.
var externalIDColumns = []struct {
	column string
	source string
}{
	{ColScholarID, types.SourceScholar},
	{ColDBLPID, types.SourceDBLP},
}

// Normalize converts one decoded row into a ConferenceRecord.
func Normalize(row decode.Row) types.ConferenceRecord {
	rec := types.ConferenceRecord{
		Name:           field(row, ColConference),
		Acronym:        field(row, ColAcronym),
		Year:           field(row, ColYear),
		Category:       field(row, ColTopic),
		PaperCount:     ParseCount(row.Get(ColPapers)),
		CitationCount:  ParseCount(row.Get(ColCitations)),
		H5Index:        ParseCount(row.Get(ColH5)),
		H5Source:       field(row, ColH5Source),
		Classification: field(row, ColClass),
		ExternalIDs:    make(map[string]string, len(externalIDColumns)),
	}
	for _, c := range externalIDColumns {
		if id := field(row, c.column); id != "" {
			rec.ExternalIDs[c.source] = id
		}
	}
	return rec
}

// All normalizes rows in order.
func All(rows []decode.Row) []types.ConferenceRecord {
	records := make([]types.ConferenceRecord, len(rows))
	for i, row := range rows {
		records[i] = Normalize(row)
	}
	return records
}

func field(row decode.Row, name string) string {
	return strings.TrimSpace(row.Get(name))
}

// ParseCount reads the leading integer prefix of s after optional
// whitespace and sign. It returns 0 when there is no digit prefix, when the
// value is negative, or when it overflows int.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i || negative {
		return 0
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0
	}
	return n
}

// H5Sources splits a bracket-encoded provenance tag such as "[GS+DBLP]"
// into its parts. A bare tag yields a single element; empty yields nil.
func H5Sources(tag string) []string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimSuffix(strings.TrimPrefix(tag, "["), "]")
	if tag == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(tag, "+") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
