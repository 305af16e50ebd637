// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"net/url"
	"slices"
	"strings"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// linkTemplates maps an external identifier source to its URL template.
// The identifier replaces {id}.
var linkTemplates = map[string]string{
	types.SourceScholar: "https://scholar.google.com/citations?view_op=list_hcore&venue={id}&hl=en",
	types.SourceDBLP:    "https://dblp.org/db/{id}",
}

// Link is one outbound link for a record.
type Link struct {
	Source string `json:"source" yaml:"source"`
	URL    string `json:"url" yaml:"url"`
}

// Links builds the outbound links of a record, sorted by source. Sources
// without a template and empty identifiers are skipped.
func Links(rec types.ConferenceRecord) []Link {
	var links []Link
	for source, id := range rec.ExternalIDs {
		tmpl, ok := linkTemplates[source]
		if !ok || id == "" {
			continue
		}
		escaped := url.QueryEscape(id)
		if source == types.SourceDBLP {
			escaped = url.PathEscape(id)
			escaped = strings.ReplaceAll(escaped, "%2F", "/")
		}
		links = append(links, Link{Source: source, URL: strings.ReplaceAll(tmpl, "{id}", escaped)})
	}
	slices.SortFunc(links, func(a, b Link) int { return strings.Compare(a.Source, b.Source) })
	return links
}
