package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go-trade-dashboard/internal/model"
)

// sourceClient bounds remote dataset fetches, body read included
var sourceClient = &http.Client{Timeout: 30 * time.Second}

// OpenSource opens a local file or, for http(s) locations, fetches it.
// Failures are reported as *model.LoadError.
func OpenSource(ctx context.Context, pathOrURL string) (io.ReadCloser, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
		if err != nil {
			return nil, &model.LoadError{Path: pathOrURL, Reason: "invalid url", Err: err}
		}
		resp, err := sourceClient.Do(req)
		if err != nil {
			return nil, &model.LoadError{Path: pathOrURL, Reason: "failed to GET CSV", Err: err}
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &model.LoadError{Path: pathOrURL, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
		}
		return resp.Body, nil
	}

	file, err := os.Open(pathOrURL)
	if err != nil {
		return nil, &model.LoadError{Path: pathOrURL, Reason: "failed to open CSV file", Err: err}
	}
	return file, nil
}

// ReadTradeCSV parses a delimited trade table. Every row must carry the eight
// columns named by cols; the first bad row aborts the whole read.
func ReadTradeCSV(r io.Reader, source string, cols model.Columns, delim rune) ([]model.TradeRecord, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delim
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, &model.LoadError{Path: source, Reason: "empty file"}
	}
	if err != nil {
		return nil, &model.LoadError{Path: source, Reason: "failed to read CSV header", Err: err}
	}

	index, err := headerIndex(headers, cols)
	if err != nil {
		return nil, &model.LoadError{Path: source, Reason: "invalid header", Err: err}
	}

	var records []model.TradeRecord
	line := 1
	for {
		row, err := csvReader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.LoadError{Path: source, Reason: "CSV read error", Err: err}
		}
		if isBlankRow(row) {
			continue
		}

		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, &model.LoadError{Path: source, Reason: fmt.Sprintf("line %d", line), Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

// columnIndex holds the position of each required column in a row
type columnIndex struct {
	origin, destination, year, volume int
	originLat, originLon, destLat, destLon int
}

// headerIndex locates every required column, reporting all missing ones at once
func headerIndex(headers []string, cols model.Columns) (columnIndex, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		pos[cleanHeader(h)] = i
	}

	var missing []string
	find := func(name string) int {
		i, ok := pos[cleanHeader(name)]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	idx := columnIndex{
		origin:      find(cols.Origin),
		destination: find(cols.Destination),
		year:        find(cols.Year),
		volume:      find(cols.Volume),
		originLat:   find(cols.OriginLat),
		originLon:   find(cols.OriginLon),
		destLat:     find(cols.DestLat),
		destLon:     find(cols.DestLon),
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// cleanHeader trims whitespace, a UTF-8 BOM and all quotes
func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

var errShortRow = errors.New("row has fewer fields than the header")

func parseRecord(row []string, idx columnIndex) (model.TradeRecord, error) {
	field := func(i int) (string, error) {
		if i >= len(row) {
			return "", errShortRow
		}
		return strings.TrimSpace(row[i]), nil
	}

	var (
		rec model.TradeRecord
		err error
		s   string
	)

	if s, err = field(idx.origin); err != nil {
		return rec, err
	}
	rec.Origin = strings.ToUpper(s)
	if s, err = field(idx.destination); err != nil {
		return rec, err
	}
	rec.Destination = strings.ToUpper(s)

	if s, err = field(idx.year); err != nil {
		return rec, err
	}
	if rec.Year, err = parseYear(s); err != nil {
		return rec, err
	}

	floats := []struct {
		name string
		i    int
		dst  *float64
	}{
		{"volume", idx.volume, &rec.Volume},
		{"origin latitude", idx.originLat, &rec.OriginLat},
		{"origin longitude", idx.originLon, &rec.OriginLon},
		{"destination latitude", idx.destLat, &rec.DestLat},
		{"destination longitude", idx.destLon, &rec.DestLon},
	}
	for _, f := range floats {
		if s, err = field(f.i); err != nil {
			return rec, err
		}
		if *f.dst, err = parseNumber(f.name, s); err != nil {
			return rec, err
		}
	}

	if err := validateRecord(rec); err != nil {
		return rec, err
	}
	return rec, nil
}
