// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// corpus returns n records; the first half are "Networking" in 2024, the
// rest "Theory" in 2023. h5 descends with index.
func corpus(n int) []types.ConferenceRecord {
	recs := make([]types.ConferenceRecord, n)
	for i := range recs {
		cat, year := "Networking", "2024"
		if i >= n/2 {
			cat, year = "Theory", "2023"
		}
		recs[i] = types.ConferenceRecord{
			Name:        fmt.Sprintf("Conference %03d", i),
			Acronym:     fmt.Sprintf("C%03d", i),
			Year:        year,
			Category:    cat,
			H5Index:     n - i,
			ExternalIDs: map[string]string{},
		}
	}
	return recs
}

func TestNewDefaults(t *testing.T) {
	c := New(corpus(45), 20)
	s := c.State()
	assert.Equal(t, types.SortH5Index, s.SortKey)
	assert.Equal(t, types.Descending, s.Direction)
	assert.Equal(t, 1, s.Page)
	assert.True(t, s.Criteria.IsEmpty())

	w := c.Window()
	assert.Equal(t, 3, w.TotalPages)
	assert.Equal(t, 45, w.TotalMatching)
	assert.Equal(t, "C000", w.Items[0].Acronym)
	assert.Equal(t, 45, c.Summary().Count)
	assert.Equal(t, 45, c.Len())
}

func TestNavigationStaysInRange(t *testing.T) {
	c := New(corpus(45), 20)

	assert.Equal(t, 1, c.ChangePage(-1).Page)
	assert.Equal(t, 2, c.ChangePage(1).Page)
	assert.Equal(t, 3, c.ChangePage(1).Page)
	w := c.ChangePage(1)
	assert.Equal(t, 3, w.Page)
	assert.Len(t, w.Items, 5)

	assert.Equal(t, 1, c.GoToPage(-4).Page)
	assert.Equal(t, 3, c.GoToPage(99).Page)
}

func TestFilterResetsPage(t *testing.T) {
	c := New(corpus(45), 20)
	c.GoToPage(3)

	w := c.SetCategory("Theory")
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 23, w.TotalMatching)
	for _, r := range w.Items {
		assert.Equal(t, "Theory", r.Category)
	}
}

func TestSortKeepsPage(t *testing.T) {
	c := New(corpus(45), 20)
	c.GoToPage(2)

	w := c.ToggleSort(types.SortH5Index)
	assert.Equal(t, types.Ascending, c.State().Direction)
	assert.Equal(t, 2, w.Page)
	assert.Equal(t, "C024", w.Items[0].Acronym)
}

func TestSortIsReappliedAfterFiltering(t *testing.T) {
	c := New(corpus(10), 20)
	c.ToggleSort(types.SortH5Index) // ascending
	w := c.SetYear("2024")
	require.Len(t, w.Items, 5)
	assert.Equal(t, "C004", w.Items[0].Acronym)
	assert.Equal(t, "C000", w.Items[4].Acronym)
}

func TestToggleSortNewKeyDescends(t *testing.T) {
	c := New(corpus(5), 20)
	c.ToggleSort(types.SortH5Index)
	c.ToggleSort(types.SortAcronym)
	assert.Equal(t, types.SortAcronym, c.State().SortKey)
	assert.Equal(t, types.Descending, c.State().Direction)
	assert.Equal(t, "C004", c.Window().Items[0].Acronym)
}

func TestUnknownSortKeyIsIgnored(t *testing.T) {
	c := New(corpus(5), 20)
	before := c.State()
	c.ToggleSort(types.SortKey("bogus"))
	c.SetSort(types.SortKey("bogus"), types.Ascending)
	assert.Equal(t, before, c.State())
}

func TestEmptyResult(t *testing.T) {
	c := New(corpus(10), 20)
	w := c.SetSearch("no such conference")
	assert.True(t, w.Empty())
	assert.Equal(t, 0, w.Page)
	assert.Equal(t, 1, c.State().Page)
	assert.Equal(t, 0, c.ChangePage(1).Page)

	w = c.ClearFilters()
	assert.False(t, w.Empty())
	assert.Equal(t, 10, w.TotalMatching)
}

func TestClassificationFilter(t *testing.T) {
	recs := corpus(4)
	recs[1].Classification = types.ClassTop10
	c := New(recs, 20)

	assert.Equal(t, 1, c.SetClassification(types.ClassTop10).TotalMatching)
	assert.Equal(t, 3, c.SetClassification(types.NoClassification).TotalMatching)
}

func TestSummaryIgnoresFilters(t *testing.T) {
	c := New(corpus(10), 20)
	before := c.Summary()
	c.SetYear("2023")
	assert.Equal(t, before, c.Summary())
}

func TestLookup(t *testing.T) {
	c := New(corpus(3), 20)
	r, ok := c.Lookup(" c001 ")
	require.True(t, ok)
	assert.Equal(t, "Conference 001", r.Name)
	_, ok = c.Lookup("zzz")
	assert.False(t, ok)
}

func TestComputeIsPure(t *testing.T) {
	recs := corpus(30)
	state := types.ViewState{Criteria: types.Criteria{Year: "2024"}, SortKey: types.SortAcronym, Direction: types.Ascending, Page: 1}
	a := Compute(recs, state, 10)
	b := Compute(recs, state, 10)
	assert.Equal(t, a, b)
	assert.Equal(t, corpus(30), recs)
}

func TestWithState(t *testing.T) {
	state := types.ViewState{SortKey: types.SortAcronym, Direction: types.Ascending, Page: 2}
	c := New(corpus(45), 20, WithState(state))
	assert.Equal(t, 2, c.Window().Page)
	assert.Equal(t, "C020", c.Window().Items[0].Acronym)
}
