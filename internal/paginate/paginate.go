// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paginate slices an ordered record subset into fixed-size pages.
package paginate

import "github.com/pdiddy/conference-rank/pkg/types"

// TotalPages returns ceil(count/pageSize), or 0 for an empty set. It does
// not overflow for any positive pageSize.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}

// Clamp bounds page to [1, totalPages]. It returns 0 when totalPages is 0.
func Clamp(page, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	return min(max(page, 1), totalPages)
}

// Step moves page by delta without leaving [1, totalPages].
func Step(page, delta, totalPages int) int {
	return Clamp(page+delta, totalPages)
}

// Paginate returns the window for pageNumber, clamped into range. A
// non-positive pageSize falls back to types.DefaultPageSize. The returned
// Items slice shares no backing storage with records.
func Paginate(records []types.ConferenceRecord, pageSize, pageNumber int) types.PageWindow {
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	total := TotalPages(len(records), pageSize)
	w := types.PageWindow{
		Items:         []types.ConferenceRecord{},
		Page:          Clamp(pageNumber, total),
		TotalPages:    total,
		TotalMatching: len(records),
		PageSize:      pageSize,
	}
	if total == 0 {
		return w
	}

	start := (w.Page - 1) * pageSize
	end := min(start+pageSize, len(records))
	w.Items = append(w.Items, records[start:end]...)
	return w
}
