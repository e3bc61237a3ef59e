package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, 2009, ParseValue(" 2009 "))
	assert.Equal(t, 12.5, ParseValue("12.5"))
	assert.Equal(t, "NGA", ParseValue("NGA"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?year=2010&bad=abc", nil)

	v, err := QueryInt(r, "year", 2009)
	require.NoError(t, err)
	assert.Equal(t, 2010, v)

	v, err = QueryInt(r, "missing", 2009)
	require.NoError(t, err)
	assert.Equal(t, 2009, v)

	_, err = QueryInt(r, "bad", 0)
	assert.Error(t, err)
}

func TestQueryCode(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?country=gha", nil)
	assert.Equal(t, "GHA", QueryCode(r, "country", "NGA"))
	assert.Equal(t, "NGA", QueryCode(r, "other", "NGA"))
}

func TestResolveExportFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "csv"},
		{"CSV", "csv"},
		{"json", "json"},
		{"xlsx", "excel"},
		{"report.xlsx", "excel"},
		{"flows.json", "json"},
	}
	for _, tt := range tests {
		f, err := ResolveExportFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f.Name, tt.in)
	}

	_, err := ResolveExportFormat("pdf")
	assert.Error(t, err)
}

func TestDownloadFileName(t *testing.T) {
	f, _ := ResolveExportFormat("csv")
	assert.Equal(t, "trade_nga_2009_0123abcd.csv", DownloadFileName("NGA", 2009, "0123abcd-ffff", f))
}
