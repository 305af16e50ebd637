// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view owns the session's ViewState. The Controller holds the
// immutable record set and the current state value, and recomputes the
// PageWindow after every mutation. The engines it calls are pure.
package view

import (
	"log/slog"
	"strings"

	"github.com/pdiddy/conference-rank/internal/filter"
	"github.com/pdiddy/conference-rank/internal/ordering"
	"github.com/pdiddy/conference-rank/internal/paginate"
	"github.com/pdiddy/conference-rank/internal/stats"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// Compute derives the visible page from the full record set and a state:
// filter, then sort, then paginate.
func Compute(records []types.ConferenceRecord, state types.ViewState, pageSize int) types.PageWindow {
	matched := filter.Filter(records, state.Criteria)
	sorted := ordering.Sort(matched, state.SortKey, state.Direction)
	return paginate.Paginate(sorted, pageSize, state.Page)
}

// Controller is the single owner of the current ViewState. It is not safe
// for concurrent use; each input event runs to completion before the next.
type Controller struct {
	records  []types.ConferenceRecord
	pageSize int
	state    types.ViewState
	window   types.PageWindow
	summary  types.Summary
	options  filter.Options
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for view transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithState replaces the default initial state.
func WithState(s types.ViewState) Option {
	return func(c *Controller) { c.state = s }
}

// New creates a controller over records. The slice is copied; the summary
// and filter options are computed once since the record set never changes.
func New(records []types.ConferenceRecord, pageSize int, opts ...Option) *Controller {
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	c := &Controller{
		records:  append([]types.ConferenceRecord(nil), records...),
		pageSize: pageSize,
		state:    types.DefaultViewState(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.summary = stats.Aggregate(c.records)
	c.options = filter.DistinctOptions(c.records)
	c.apply(c.state, "init")
	return c
}

// State returns the current view state.
func (c *Controller) State() types.ViewState { return c.state }

// Window returns the current page window.
func (c *Controller) Window() types.PageWindow { return c.window }

// Summary returns statistics over the full record set.
func (c *Controller) Summary() types.Summary { return c.summary }

// Options returns the distinct filter values.
func (c *Controller) Options() filter.Options { return c.options }

// Len returns the size of the full record set.
func (c *Controller) Len() int { return len(c.records) }

// SetCriteria replaces all filters and returns to page 1.
func (c *Controller) SetCriteria(cr types.Criteria) types.PageWindow {
	s := c.state
	s.Criteria = cr
	s.Page = 1
	return c.apply(s, "filter")
}

// SetSearch sets the search term and returns to page 1.
func (c *Controller) SetSearch(term string) types.PageWindow {
	cr := c.state.Criteria
	cr.SearchTerm = term
	return c.SetCriteria(cr)
}

// SetYear sets the year filter and returns to page 1.
func (c *Controller) SetYear(year string) types.PageWindow {
	cr := c.state.Criteria
	cr.Year = year
	return c.SetCriteria(cr)
}

// SetCategory sets the category filter and returns to page 1.
func (c *Controller) SetCategory(category string) types.PageWindow {
	cr := c.state.Criteria
	cr.Category = category
	return c.SetCriteria(cr)
}

// SetClassification sets the tier filter and returns to page 1. Use
// types.NoClassification to select unclassified records.
func (c *Controller) SetClassification(class string) types.PageWindow {
	cr := c.state.Criteria
	cr.Classification = class
	return c.SetCriteria(cr)
}

// ClearFilters removes every filter and returns to page 1.
func (c *Controller) ClearFilters() types.PageWindow {
	return c.SetCriteria(types.Criteria{})
}

// ToggleSort applies the header-click rule for key. The page is kept,
// clamped into range.
func (c *Controller) ToggleSort(key types.SortKey) types.PageWindow {
	return c.apply(ordering.Toggle(c.state, key), "sort")
}

// SetSort selects key and direction explicitly. Unsupported keys are ignored.
func (c *Controller) SetSort(key types.SortKey, dir types.SortDirection) types.PageWindow {
	if !ordering.Supported(key) {
		return c.window
	}
	s := c.state
	s.SortKey = key
	s.Direction = dir
	return c.apply(s, "sort")
}

// ChangePage moves by delta pages, staying within range.
func (c *Controller) ChangePage(delta int) types.PageWindow {
	s := c.state
	s.Page = paginate.Step(s.Page, delta, c.window.TotalPages)
	return c.apply(s, "page")
}

// GoToPage jumps to page n, clamped into range.
func (c *Controller) GoToPage(n int) types.PageWindow {
	s := c.state
	s.Page = n
	return c.apply(s, "page")
}

// Lookup finds a record by acronym, ignoring case.
func (c *Controller) Lookup(acronym string) (types.ConferenceRecord, bool) {
	acronym = strings.TrimSpace(acronym)
	for _, r := range c.records {
		if strings.EqualFold(r.Acronym, acronym) {
			return r, true
		}
	}
	return types.ConferenceRecord{}, false
}

func (c *Controller) apply(s types.ViewState, event string) types.PageWindow {
	w := Compute(c.records, s, c.pageSize)
	s.Page = max(w.Page, 1)
	c.state = s
	c.window = w

	c.logger.Debug("view updated",
		"event", event,
		"sort", s.SortKey,
		"direction", s.Direction,
		"page", w.Page,
		"total_pages", w.TotalPages,
		"matching", w.TotalMatching,
	)
	return w
}
