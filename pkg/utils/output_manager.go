package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExportFormat describes a downloadable export type
type ExportFormat struct {
	Name        string
	Extension   string
	ContentType string
}

var exportFormats = map[string]ExportFormat{
	"csv":   {Name: "csv", Extension: ".csv", ContentType: "text/csv"},
	"json":  {Name: "json", Extension: ".json", ContentType: "application/json"},
	"excel": {Name: "excel", Extension: ".xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
}

// GetFileType determines the file type based on extension
func GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".xlsx", ".xls":
		return "excel"
	default:
		return "unknown"
	}
}

// ResolveExportFormat accepts a format name ("csv", "json", "xlsx") or a file name
func ResolveExportFormat(nameOrFile string) (ExportFormat, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrFile))
	switch key {
	case "", "csv":
		return exportFormats["csv"], nil
	case "json":
		return exportFormats["json"], nil
	case "xlsx", "excel":
		return exportFormats["excel"], nil
	}
	if f, ok := exportFormats[GetFileType(key)]; ok {
		return f, nil
	}
	return ExportFormat{}, fmt.Errorf("unsupported export format: %s", nameOrFile)
}

// DownloadFileName builds the attachment name for an export
func DownloadFileName(country string, year int, runID string, f ExportFormat) string {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("trade_%s_%d_%s%s", strings.ToLower(country), year, short, f.Extension)
}
