// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes summary statistics over the full record set.
// The summary always describes the whole corpus, never the filtered view.
package stats

import (
	"cmp"
	"slices"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// OtherCategory labels records with an empty category in the breakdown.
const OtherCategory = "Other"

// bucketBounds are the inclusive upper bounds of the h5-index histogram;
// the final bucket is unbounded.
var bucketBounds = []struct {
	label string
	min   int
	max   int
}{
	{"0-25", 0, 25},
	{"26-50", 26, 50},
	{"51-75", 51, 75},
	{"76-100", 76, 100},
	{"101+", 101, -1},
}

// Aggregate computes the corpus summary. Mean and median cover only
// records with a positive h5-index; the histogram counts every record.
func Aggregate(records []types.ConferenceRecord) types.Summary {
	s := types.Summary{
		Count:     len(records),
		Histogram: NewHistogram(),
	}

	var positive []int
	for _, r := range records {
		s.TotalPapers += r.PaperCount
		s.TotalCitations += r.CitationCount
		if r.H5Index > 0 {
			positive = append(positive, r.H5Index)
		}
		s.Histogram[bucketIndex(r.H5Index)].Count++
	}

	s.Mean = Mean(positive)
	s.Median = Median(positive)
	s.Categories = ByCategory(records)
	return s
}

// NewHistogram returns the empty h5-index buckets.
func NewHistogram() []types.Bucket {
	buckets := make([]types.Bucket, len(bucketBounds))
	for i, b := range bucketBounds {
		buckets[i] = types.Bucket{Label: b.label, Min: b.min, Max: b.max}
	}
	return buckets
}

func bucketIndex(h5 int) int {
	for i, b := range bucketBounds {
		if b.max < 0 || h5 <= b.max {
			return i
		}
	}
	return len(bucketBounds) - 1
}

// Mean returns the arithmetic mean of values, or 0 when empty.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Median returns the middle value of values, averaging the two central
// values for an even count. It returns 0 when empty and does not modify
// values.
func Median(values []int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// ByCategory groups records by category, sorted by category label. The
// per-category mean includes zero h5 values.
func ByCategory(records []types.ConferenceRecord) []types.CategoryStats {
	type acc struct {
		count, h5, citations int
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		cat := r.Category
		if cat == "" {
			cat = OtherCategory
		}
		a, ok := groups[cat]
		if !ok {
			a = &acc{}
			groups[cat] = a
		}
		a.count++
		a.h5 += r.H5Index
		a.citations += r.CitationCount
	}

	out := make([]types.CategoryStats, 0, len(groups))
	for cat, a := range groups {
		out = append(out, types.CategoryStats{
			Category:       cat,
			Count:          a.count,
			MeanH5:         float64(a.h5) / float64(a.count),
			TotalCitations: a.citations,
		})
	}
	slices.SortFunc(out, func(a, b types.CategoryStats) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
