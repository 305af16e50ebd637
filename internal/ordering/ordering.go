// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ordering sorts record subsets by a column with type-aware
// comparators. Sorting is stable, so ties keep their prior relative order
// and repeated sorts never reshuffle the display.
package ordering

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/conference-rank/internal/normalize"
	"github.com/pdiddy/conference-rank/pkg/types"
)

type comparator func(a, b types.ConferenceRecord) int

var comparators = map[types.SortKey]func() comparator{
	types.SortName:     func() comparator { return foldCompare(func(r types.ConferenceRecord) string { return r.Name }) },
	types.SortAcronym:  func() comparator { return foldCompare(func(r types.ConferenceRecord) string { return r.Acronym }) },
	types.SortCategory: func() comparator { return foldCompare(func(r types.ConferenceRecord) string { return r.Category }) },
	types.SortYear: func() comparator {
		return intCompare(func(r types.ConferenceRecord) int { return YearValue(r.Year) })
	},
	types.SortH5Index: func() comparator {
		return intCompare(func(r types.ConferenceRecord) int { return r.H5Index })
	},
	types.SortCitationCount: func() comparator {
		return intCompare(func(r types.ConferenceRecord) int { return r.CitationCount })
	},
	types.SortPaperCount: func() comparator {
		return intCompare(func(r types.ConferenceRecord) int { return r.PaperCount })
	},
	types.SortH5Source: func() comparator {
		return func(a, b types.ConferenceRecord) int { return strings.Compare(a.H5Source, b.H5Source) }
	},
	types.SortClassification: func() comparator {
		return intCompare(func(r types.ConferenceRecord) int { return types.ClassRank(r.Classification) })
	},
	types.SortLinkCount: func() comparator {
		return intCompare(types.ConferenceRecord.LinkCount)
	},
}

// aliases maps legacy column names to sort keys.
var aliases = map[string]types.SortKey{
	"conference": types.SortName,
	"citations":  types.SortCitationCount,
	"papers":     types.SortPaperCount,
	"class":      types.SortClassification,
	"links":      types.SortLinkCount,
}

// Supported reports whether key has a comparator.
func Supported(key types.SortKey) bool {
	_, ok := comparators[key]
	return ok
}

// Keys returns the supported sort keys in table column order.
func Keys() []types.SortKey {
	return []types.SortKey{
		types.SortName, types.SortAcronym, types.SortYear, types.SortH5Index,
		types.SortCitationCount, types.SortPaperCount, types.SortCategory,
		types.SortH5Source, types.SortClassification, types.SortLinkCount,
	}
}

// ParseKey resolves a column name or legacy alias to a sort key. Matching
// is case-insensitive. ok is false for unknown names.
func ParseKey(name string) (types.SortKey, bool) {
	name = strings.TrimSpace(name)
	for _, k := range Keys() {
		if strings.EqualFold(string(k), name) {
			return k, true
		}
	}
	k, ok := aliases[strings.ToLower(name)]
	return k, ok
}

// ParseDirection resolves "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (types.SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return types.Ascending, true
	case "desc", "descending":
		return types.Descending, true
	default:
		return "", false
	}
}

// Sort returns a new slice ordered by key in the given direction. The input
// is not modified. An unsupported key returns an unchanged copy.
func Sort(records []types.ConferenceRecord, key types.SortKey, dir types.SortDirection) []types.ConferenceRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []types.ConferenceRecord{}
	}
	newCmp, ok := comparators[key]
	if !ok {
		return out
	}
	compare := newCmp()
	if dir == types.Descending {
		slices.SortStableFunc(out, func(a, b types.ConferenceRecord) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Toggle applies the header-click rule: selecting the active key flips the
// direction, selecting a new key sorts it descending. Unsupported keys leave
// the state unchanged.
func Toggle(state types.ViewState, key types.SortKey) types.ViewState {
	if !Supported(key) {
		return state
	}
	if state.SortKey == key {
		state.Direction = state.Direction.Flip()
	} else {
		state.SortKey = key
		state.Direction = types.Descending
	}
	return state
}

// YearValue returns the numeric value of a year string's leading integer,
// or 0 when it has none.
func YearValue(year string) int {
	return normalize.ParseCount(year)
}

func intCompare(value func(types.ConferenceRecord) int) comparator {
	return func(a, b types.ConferenceRecord) int {
		return cmp.Compare(value(a), value(b))
	}
}

func foldCompare(value func(types.ConferenceRecord) string) comparator {
	fold := cases.Fold()
	return func(a, b types.ConferenceRecord) int {
		return strings.Compare(fold.String(value(a)), fold.String(value(b)))
	}
}
