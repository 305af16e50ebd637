// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortKey names the column a record subset is ordered by.
type SortKey string

const (
	SortName           SortKey = "name"
	SortAcronym        SortKey = "acronym"
	SortYear           SortKey = "year"
	SortCategory       SortKey = "category"
	SortH5Index        SortKey = "h5index"
	SortCitationCount  SortKey = "citationCount"
	SortPaperCount     SortKey = "paperCount"
	SortH5Source       SortKey = "h5source"
	SortClassification SortKey = "classification"
	SortLinkCount      SortKey = "linkCount"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Criteria holds the active filter selections. An empty field matches
// every record; active fields combine with AND.
type Criteria struct {
	SearchTerm     string `json:"search_term,omitempty" yaml:"search_term,omitempty"`
	Year           string `json:"year,omitempty" yaml:"year,omitempty"`
	Category       string `json:"category,omitempty" yaml:"category,omitempty"`
	Classification string `json:"classification,omitempty" yaml:"classification,omitempty"`
}

// IsEmpty reports whether no criterion is active.
func (c Criteria) IsEmpty() bool {
	return c.SearchTerm == "" && c.Year == "" && c.Category == "" && c.Classification == ""
}

// ViewState is the session-local selection of filters, sort order, and page.
// It is a value: mutations produce a new ViewState.
type ViewState struct {
	Criteria  Criteria      `json:"criteria" yaml:"criteria"`
	SortKey   SortKey       `json:"sort_key" yaml:"sort_key"`
	Direction SortDirection `json:"direction" yaml:"direction"`
	Page      int           `json:"page" yaml:"page"`
}

// DefaultViewState returns the initial state: h5-index descending, page 1,
// no filters.
func DefaultViewState() ViewState {
	return ViewState{
		SortKey:   SortH5Index,
		Direction: Descending,
		Page:      1,
	}
}

// PageWindow is the slice of records handed to the renderer.
//
// An empty match set has TotalPages == 0 and Page == 0; a non-empty set
// always has 1 <= Page <= TotalPages.
type PageWindow struct {
	Items         []ConferenceRecord `json:"items" yaml:"items"`
	Page          int                `json:"page" yaml:"page"`
	TotalPages    int                `json:"total_pages" yaml:"total_pages"`
	TotalMatching int                `json:"total_matching" yaml:"total_matching"`
	PageSize      int                `json:"page_size" yaml:"page_size"`
}

// Empty reports whether no record matched.
func (w PageWindow) Empty() bool {
	return w.TotalPages == 0
}

// HasPrev reports whether a previous page exists.
func (w PageWindow) HasPrev() bool {
	return w.Page > 1
}

// HasNext reports whether a following page exists.
func (w PageWindow) HasNext() bool {
	return w.Page < w.TotalPages
}
