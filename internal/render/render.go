// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats page windows, record details, and corpus
// statistics for the terminal, and encodes them as JSON or YAML. The core
// engines hand it plain data; locale formatting and link construction
// happen only here.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/conference-rank/internal/normalize"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// DefaultLocale is the locale used for grouped numbers.
const DefaultLocale = "pt-BR"

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json, or yaml", s)
	}
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not an encoding", format)
	}
}

// Renderer writes human-readable output with locale-grouped integers.
type Renderer struct {
	p *message.Printer
}

// New returns a Renderer for the BCP 47 locale tag (e.g. "pt-BR", "en-US").
func New(locale string) (*Renderer, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Renderer{p: message.NewPrinter(tag)}, nil
}

// Int formats n with the locale's digit grouping.
func (r *Renderer) Int(n int) string {
	return r.p.Sprintf("%d", n)
}

// Table writes one page of records. Rows are numbered by their position in
// the full matching sequence.
func (r *Renderer) Table(w io.Writer, win types.PageWindow) {
	if win.Empty() {
		fmt.Fprintln(w, "No conferences match the current filters.")
		return
	}

	fmt.Fprintf(w, "%4s  %-40s  %-10s  %-4s  %4s  %10s  %7s  %-20s  %s\n",
		"#", "Conference", "Acronym", "Year", "h5", "Citations", "Papers", "Category", "Class")
	fmt.Fprintln(w, strings.Repeat("-", 122))

	offset := (win.Page - 1) * win.PageSize
	for i, rec := range win.Items {
		fmt.Fprintf(w, "%4d  %-40s  %-10s  %-4s  %4d  %10s  %7s  %-20s  %s\n",
			offset+i+1,
			truncate(rec.Name, 40),
			truncate(rec.Acronym, 10),
			truncate(rec.Year, 4),
			rec.H5Index,
			r.Int(rec.CitationCount),
			r.Int(rec.PaperCount),
			truncate(rec.Category, 20),
			rec.Classification,
		)
	}

	fmt.Fprintf(w, "\nPage %d of %d (%s conferences)", win.Page, win.TotalPages, r.Int(win.TotalMatching))
	var moves []string
	if win.HasPrev() {
		moves = append(moves, "prev")
	}
	if win.HasNext() {
		moves = append(moves, "next")
	}
	if len(moves) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(moves, " | "))
	}
	fmt.Fprintln(w)
}

// Detail writes every field of one record plus its outbound links.
func (r *Renderer) Detail(w io.Writer, rec types.ConferenceRecord) {
	fmt.Fprintf(w, "%s (%s)\n", rec.Name, rec.Acronym)
	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "  %-16s%s\n", label+":", value)
	}
	field("Year", rec.Year)
	field("Category", rec.Category)
	field("h5-index", fmt.Sprintf("%d", rec.H5Index))
	field("h5 source", strings.Join(normalize.H5Sources(rec.H5Source), ", "))
	field("Citations (5Y)", r.Int(rec.CitationCount))
	field("Papers (5Y)", r.Int(rec.PaperCount))
	field("Class", rec.Classification)
	for _, l := range Links(rec) {
		field(l.Source, l.URL)
	}
}

// Summary writes corpus statistics, the h5-index histogram, and the
// per-category breakdown.
func (r *Renderer) Summary(w io.Writer, s types.Summary) {
	fmt.Fprintf(w, "%-17s%s\n", "Conferences:", r.Int(s.Count))
	fmt.Fprintf(w, "%-17s%s\n", "Papers:", r.Int(s.TotalPapers))
	fmt.Fprintf(w, "%-17s%s\n", "Citations:", r.Int(s.TotalCitations))
	fmt.Fprintf(w, "%-17s%.1f\n", "Mean h5-index:", s.Mean)
	fmt.Fprintf(w, "%-17s%.1f\n", "Median h5-index:", s.Median)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "h5-index distribution")
	for _, b := range s.Histogram {
		fmt.Fprintf(w, "  %-8s%6s\n", b.Label, r.Int(b.Count))
	}

	if len(s.Categories) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-30s  %5s  %7s  %10s\n", "Category", "Count", "Mean h5", "Citations")
	fmt.Fprintln(w, strings.Repeat("-", 58))
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%-30s  %5s  %7.1f  %10s\n",
			truncate(c.Category, 30), r.Int(c.Count), c.MeanH5, r.Int(c.TotalCitations))
	}
}

// Options writes the filter choices, one list per control.
func (r *Renderer) Options(w io.Writer, years, categories, classes []string) {
	list := func(label string, values []string) {
		fmt.Fprintf(w, "%s (%d)\n", label, len(values))
		for _, v := range values {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
	list("Years", years)
	list("Categories", categories)
	list("Classes", append(slices.Clone(classes), types.NoClassification))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
