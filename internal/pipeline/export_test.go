package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/pkg/utils"
)

func exportDashboard(t *testing.T) *model.Dashboard {
	t.Helper()
	d, err := Run(context.Background(), testDeps(&fakeSource{records: sampleRecords()}),
		model.Selection{Year: 2009, Country: "NGA"})
	require.NoError(t, err)
	return d
}

func newExportManager(t *testing.T, format string) *ExportManager {
	t.Helper()
	f, err := utils.ResolveExportFormat(format)
	require.NoError(t, err)
	return &ExportManager{
		RunID:      "0f8fad5b-d9cb-469f-a165-70867728950e",
		Format:     f,
		ExportedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestExport_CSV(t *testing.T) {
	d := exportDashboard(t)
	var buf bytes.Buffer

	res, err := newExportManager(t, "csv").Export(&buf, d)
	require.NoError(t, err)
	assert.Equal(t, "csv", res.Type)
	assert.Equal(t, 3, res.RecordCount)
	assert.Equal(t, "trade_nga_2009_0f8fad5b.csv", res.FileName)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, recordHeader, rows[0])
	assert.Equal(t, []string{"NGA", "GHA", "2009", "100"}, rows[1][:4])
}

func TestExport_JSON(t *testing.T) {
	d := exportDashboard(t)
	var buf bytes.Buffer

	_, err := newExportManager(t, "json").Export(&buf, d)
	require.NoError(t, err)

	var out struct {
		ExportInfo struct {
			RunID       string `json:"run_id"`
			RecordCount int    `json:"record_count"`
			Status      string `json:"status"`
		} `json:"export_info"`
		Records []struct {
			Origin    string  `json:"origin"`
			Intensity float64 `json:"intensity"`
		} `json:"records"`
		Flows []model.AggregatedFlow `json:"flows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", out.ExportInfo.RunID)
	assert.Equal(t, 3, out.ExportInfo.RecordCount)
	assert.Equal(t, "Exports from Nigeria in 2009", out.ExportInfo.Status)
	require.Len(t, out.Records, 3)
	assert.Equal(t, d.Intensities[0], out.Records[0].Intensity)
	assert.Len(t, out.Flows, 2)
}

func TestExport_XLSX(t *testing.T) {
	d := exportDashboard(t)
	var buf bytes.Buffer

	res, err := newExportManager(t, "excel").Export(&buf, d)
	require.NoError(t, err)
	assert.Equal(t, "excel", res.Type)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Flows", "Aggregated"}, f.GetSheetList())

	flows, err := f.GetRows("Flows")
	require.NoError(t, err)
	require.Len(t, flows, 4)
	assert.Equal(t, "origin", flows[0][0])
	assert.Equal(t, "GHA", flows[1][1])

	agg, err := f.GetRows("Aggregated")
	require.NoError(t, err)
	require.Len(t, agg, 3)
	assert.Equal(t, []string{"NGA", "GHA", "130", "2"}, agg[1])
}

func TestExport_EmptySelection(t *testing.T) {
	d, err := Run(context.Background(), testDeps(&fakeSource{}), model.Selection{Year: 1999, Country: "NGA"})
	require.NoError(t, err)

	var buf bytes.Buffer
	res, err := newExportManager(t, "csv").Export(&buf, d)
	require.NoError(t, err)
	assert.Zero(t, res.RecordCount)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	em := &ExportManager{Format: utils.ExportFormat{Name: "pdf"}}
	_, err := em.Export(&bytes.Buffer{}, exportDashboard(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
