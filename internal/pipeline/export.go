package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/pkg/utils"
)

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json", "excel"
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}

// ExportManager writes one dashboard run in a chosen format
type ExportManager struct {
	RunID      string
	Format     utils.ExportFormat
	ExportedAt time.Time
}

var recordHeader = []string{
	"origin", "destination", "year", "metric_tons", "intensity",
	"origin_lat", "origin_lon", "dest_lat", "dest_lon",
}

var flowHeader = []string{"origin", "destination", "total_metric_tons", "record_count"}

// Export writes d to w and reports what was written
func (em *ExportManager) Export(w io.Writer, d *model.Dashboard) (ExportResult, error) {
	var err error
	switch em.Format.Name {
	case "csv":
		err = em.exportToCSV(w, d)
	case "json":
		err = em.exportToJSON(w, d)
	case "excel":
		err = em.exportToXLSX(w, d)
	default:
		err = fmt.Errorf("unsupported export format: %s", em.Format.Name)
	}
	if err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		Type:        em.Format.Name,
		FileName:    utils.DownloadFileName(d.Selection.Country, d.Selection.Year, em.RunID, em.Format),
		RecordCount: len(d.Records),
		ExportedAt:  em.ExportedAt,
	}, nil
}

func recordRow(rec model.TradeRecord, intensity float64) []string {
	return []string{
		rec.Origin,
		rec.Destination,
		strconv.Itoa(rec.Year),
		utils.FormatNumber(rec.Volume),
		strconv.FormatFloat(intensity, 'f', 4, 64),
		utils.FormatNumber(rec.OriginLat),
		utils.FormatNumber(rec.OriginLon),
		utils.FormatNumber(rec.DestLat),
		utils.FormatNumber(rec.DestLon),
	}
}

// exportToCSV writes the filtered records with their intensities
func (em *ExportManager) exportToCSV(w io.Writer, d *model.Dashboard) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range d.Records {
		if err := writer.Write(recordRow(rec, d.Intensities[i])); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type exportedRecord struct {
	model.TradeRecord
	Intensity float64 `json:"intensity"`
}

// exportToJSON writes records, aggregated flows and export metadata
func (em *ExportManager) exportToJSON(w io.Writer, d *model.Dashboard) error {
	records := make([]exportedRecord, len(d.Records))
	for i, rec := range d.Records {
		records[i] = exportedRecord{TradeRecord: rec, Intensity: d.Intensities[i]}
	}

	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"run_id":       em.RunID,
			"exported_at":  em.ExportedAt.UTC(),
			"record_count": len(d.Records),
			"selection":    d.Selection,
			"status":       d.Status,
		},
		"records": records,
		"flows":   d.Flows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// exportToXLSX writes a workbook with a "Flows" and an "Aggregated" sheet
func (em *ExportManager) exportToXLSX(w io.Writer, d *model.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	const flowsSheet, aggSheet = "Flows", "Aggregated"
	if err := f.SetSheetName("Sheet1", flowsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(aggSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFD580"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSheetRow(f, flowsSheet, 1, toCells(recordHeader)); err != nil {
		return err
	}
	for i, rec := range d.Records {
		row := []interface{}{
			rec.Origin, rec.Destination, rec.Year, rec.Volume, d.Intensities[i],
			rec.OriginLat, rec.OriginLon, rec.DestLat, rec.DestLon,
		}
		if err := writeSheetRow(f, flowsSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeSheetRow(f, aggSheet, 1, toCells(flowHeader)); err != nil {
		return err
	}
	for i, fl := range d.Flows {
		row := []interface{}{fl.Origin, fl.Destination, fl.TotalVolume, fl.RecordCount}
		if err := writeSheetRow(f, aggSheet, i+2, row); err != nil {
			return err
		}
	}

	for sheet, cols := range map[string]int{flowsSheet: len(recordHeader), aggSheet: len(flowHeader)} {
		last, err := excelize.CoordinatesToCellName(cols, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(header []string) []interface{} {
	out := make([]interface{}, len(header))
	for i, h := range header {
		out[i] = h
	}
	return out
}
