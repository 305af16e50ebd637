// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Bucket is one histogram bin over h5-index values. Max < 0 means unbounded.
type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Min   int    `json:"min" yaml:"min"`
	Max   int    `json:"max" yaml:"max"`
	Count int    `json:"count" yaml:"count"`
}

// CategoryStats summarizes the records sharing one category label.
type CategoryStats struct {
	Category       string  `json:"category" yaml:"category"`
	Count          int     `json:"count" yaml:"count"`
	MeanH5         float64 `json:"mean_h5" yaml:"mean_h5"`
	TotalCitations int     `json:"total_citations" yaml:"total_citations"`
}

// Summary holds statistics computed over the full, unfiltered record set.
// Mean and Median consider only records with a positive h5-index; the
// histogram counts every record.
type Summary struct {
	Count          int             `json:"count" yaml:"count"`
	Mean           float64         `json:"mean" yaml:"mean"`
	Median         float64         `json:"median" yaml:"median"`
	Histogram      []Bucket        `json:"histogram" yaml:"histogram"`
	TotalPapers    int             `json:"total_papers" yaml:"total_papers"`
	TotalCitations int             `json:"total_citations" yaml:"total_citations"`
	Categories     []CategoryStats `json:"categories" yaml:"categories"`
}
