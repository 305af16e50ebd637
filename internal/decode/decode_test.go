// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Conference,Acronym,Year,Topic,Papers(5Y),Citations(5Y),h5\n" +
	"\"ACM SIGKDD\",KDD,2024,Data Mining,150,12000,120\n" +
	"\"IEEE INFOCOM\",INFOCOM,2024,Networking,,,0\n"

func TestDecodeSample(t *testing.T) {
	rows, err := Decode(sampleCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ACM SIGKDD", rows[0].Get("Conference"))
	assert.Equal(t, "KDD", rows[0].Get("Acronym"))
	assert.Equal(t, "120", rows[0].Get("h5"))
	assert.Equal(t, "IEEE INFOCOM", rows[1].Get("Conference"))
	assert.Equal(t, "", rows[1].Get("Papers(5Y)"))
	assert.Equal(t, "0", rows[1].Get("h5"))
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \r\n\t\n"} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %q", in)
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	rows, err := Decode("Conference,Acronym\n")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	rows, err := Decode("A,B\n1,2\n   \n\n3,4\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "3", rows[1].Get("A"))
}

func TestDecodeShortRowPadsWithEmpty(t *testing.T) {
	rows, err := Decode("A,B,C\n1\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 3)
	assert.Equal(t, "1", rows[0].Get("A"))
	assert.Equal(t, "", rows[0].Get("B"))
	assert.Equal(t, "", rows[0].Get("C"))
	assert.Equal(t, "C", rows[0][2].Name)
}

func TestDecodeLongRowIgnoresSurplus(t *testing.T) {
	rows, err := Decode("A,B\n1,2,3,4\n")
	require.NoError(t, err)
	require.Len(t, rows[0], 2)
	assert.Equal(t, "2", rows[0].Get("B"))
}

func TestDecodeQuotedSeparator(t *testing.T) {
	rows, err := Decode("Name,Topic\n\"Systems, Networks\",\"A,B\"\n")
	require.NoError(t, err)
	assert.Equal(t, "Systems, Networks", rows[0].Get("Name"))
	assert.Equal(t, "A,B", rows[0].Get("Topic"))
}

func TestDecodeCRLF(t *testing.T) {
	rows, err := Decode("\"A\",B\r\n1,2\r\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Get("A"))
	assert.Equal(t, "2", rows[0].Get("B"))
}

func TestDecodeUnterminatedQuoteDegrades(t *testing.T) {
	rows, err := Decode("A,B\n\"open,1\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "open,1", rows[0].Get("A"))
	assert.Equal(t, "", rows[0].Get("B"))
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a,,b", []string{"a", "", "b"}},
		{`"x,y",z`, []string{"x,y", "z"}},
		{`a,`, []string{"a", ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLine(tt.line), "line %q", tt.line)
	}
}

// Records written by a standard CSV writer decode to the same values as
// long as no value contains a literal quote or line break.
func TestDecodeRoundTrip(t *testing.T) {
	records := [][]string{
		{"Conference", "Acronym", "Year", "Topic", "h5"},
		{"ACM SIGKDD", "KDD", "2024", "Data Mining", "120"},
		{"Systems, Networks and More", "SNM", "2023", "", "7"},
		{" leading space", "LS", "", "Theory", ""},
		{"Ünïcödé Conf", "UC", "2022", "Análise", "0"},
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	require.NoError(t, w.WriteAll(records))

	rows, err := Decode(buf.String())
	require.NoError(t, err)
	require.Len(t, rows, len(records)-1)

	header := records[0]
	for i, rec := range records[1:] {
		for j, name := range header {
			assert.Equal(t, rec[j], rows[i].Get(name), "row %d column %s", i, name)
		}
	}
}
