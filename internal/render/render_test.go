// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/conference-rank/internal/paginate"
	"github.com/pdiddy/conference-rank/internal/stats"
	"github.com/pdiddy/conference-rank/pkg/types"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func sampleRecords() []types.ConferenceRecord {
	return []types.ConferenceRecord{
		{
			Name: "ACM SIGKDD", Acronym: "KDD", Year: "2024", Category: "Data Mining",
			PaperCount: 150, CitationCount: 12000, H5Index: 120,
			H5Source: "[GS+DBLP]", Classification: types.ClassTop10,
			ExternalIDs: map[string]string{types.SourceScholar: "kdd", types.SourceDBLP: "conf/kdd"},
		},
		{
			Name: "IEEE INFOCOM", Acronym: "INFOCOM", Year: "2024", Category: "Networking",
			ExternalIDs: map[string]string{},
		},
	}
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(DefaultLocale)
	require.NoError(t, err)
	return r
}

func TestIntUsesLocaleGrouping(t *testing.T) {
	assert.Equal(t, "12.000", testRenderer(t).Int(12000))
	assert.Equal(t, "150", testRenderer(t).Int(150))

	en, err := New("en-US")
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", en.Int(1234567))
}

func TestNewRejectsBadLocale(t *testing.T) {
	_, err := New("not a locale!")
	assert.Error(t, err)
}

func TestTableGolden(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(t).Table(&buf, paginate.Paginate(sampleRecords(), 20, 1))
	golden(t).Assert(t, "table", buf.Bytes())
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(t).Table(&buf, paginate.Paginate(nil, 20, 1))
	assert.Equal(t, "No conferences match the current filters.\n", buf.String())
}

func TestTableNumbersRowsAcrossPages(t *testing.T) {
	recs := make([]types.ConferenceRecord, 25)
	for i := range recs {
		recs[i] = types.ConferenceRecord{Acronym: "X"}
	}
	var buf bytes.Buffer
	testRenderer(t).Table(&buf, paginate.Paginate(recs, 20, 2))
	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[2], "  21  "), lines[2])
	assert.Contains(t, buf.String(), "Page 2 of 2 (25 conferences)  [prev]\n")
}

func TestTableNavigationHint(t *testing.T) {
	recs := make([]types.ConferenceRecord, 45)
	for i := range recs {
		recs[i] = types.ConferenceRecord{Acronym: "X"}
	}
	for page, want := range map[int]string{
		1: "Page 1 of 3 (45 conferences)  [next]\n",
		2: "Page 2 of 3 (45 conferences)  [prev | next]\n",
		3: "Page 3 of 3 (45 conferences)  [prev]\n",
	} {
		var buf bytes.Buffer
		testRenderer(t).Table(&buf, paginate.Paginate(recs, 20, page))
		assert.True(t, strings.HasSuffix(buf.String(), want), buf.String())
	}
}

func TestDetailGolden(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(t).Detail(&buf, sampleRecords()[0])
	golden(t).Assert(t, "detail", buf.Bytes())
}

func TestSummaryGolden(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(t).Summary(&buf, stats.Aggregate(sampleRecords()))
	golden(t).Assert(t, "summary", buf.Bytes())
}

func TestLinks(t *testing.T) {
	links := Links(sampleRecords()[0])
	require.Len(t, links, 2)
	assert.Equal(t, Link{Source: types.SourceDBLP, URL: "https://dblp.org/db/conf/kdd"}, links[0])
	assert.Equal(t, Link{
		Source: types.SourceScholar,
		URL:    "https://scholar.google.com/citations?view_op=list_hcore&venue=kdd&hl=en",
	}, links[1])

	assert.Empty(t, Links(types.ConferenceRecord{ExternalIDs: map[string]string{"orcid": "x", types.SourceDBLP: ""}}))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	win := paginate.Paginate(sampleRecords(), 20, 1)

	var jb bytes.Buffer
	require.NoError(t, Encode(&jb, FormatJSON, win))
	var fromJSON types.PageWindow
	require.NoError(t, json.Unmarshal(jb.Bytes(), &fromJSON))
	assert.Equal(t, 2, fromJSON.TotalMatching)
	assert.Equal(t, "KDD", fromJSON.Items[0].Acronym)

	var yb bytes.Buffer
	require.NoError(t, Encode(&yb, FormatYAML, win))
	var fromYAML types.PageWindow
	require.NoError(t, yaml.Unmarshal(yb.Bytes(), &fromYAML))
	assert.Equal(t, 1, fromYAML.TotalPages)

	assert.Error(t, Encode(&yb, FormatText, win))
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	testRenderer(t).Options(&buf, []string{"2024"}, []string{"AI", "Networking"}, []string{types.ClassTop10})
	assert.Equal(t, "Years (1)\n  2024\nCategories (2)\n  AI\n  Networking\nClasses (2)\n  Top10\n  none\n", buf.String())
}
