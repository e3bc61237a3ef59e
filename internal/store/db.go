package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/internal/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS trade_flows (
	id INTEGER PRIMARY KEY,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	year INTEGER NOT NULL,
	volume REAL NOT NULL,
	origin_lat REAL NOT NULL,
	origin_lon REAL NOT NULL,
	dest_lat REAL NOT NULL,
	dest_lon REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trade_flows_selection ON trade_flows (year, origin);
`

// Dataset is the read-only trade table, held in an in-memory sqlite database.
// It is written once by Load and only queried afterwards, so it is safe for
// concurrent readers.
type Dataset struct {
	db       *sql.DB
	source   string
	loadedAt time.Time
}

// LoadOptions controls how the input file is parsed
type LoadOptions struct {
	Columns   model.Columns
	Delimiter rune
}

// Load reads the trade table at path (a file or an http(s) URL) into memory.
// Any failure is returned as *model.LoadError.
func Load(ctx context.Context, path string, opts LoadOptions) (*Dataset, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Columns == (model.Columns{}) {
		opts.Columns = model.DefaultColumns()
	}

	src, err := pipeline.OpenSource(ctx, path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	records, err := pipeline.ReadTradeCSV(src, path, opts.Columns, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &model.LoadError{Path: path, Reason: "no trade records"}
	}

	return FromRecords(ctx, path, records)
}

// FromRecords builds a Dataset from already parsed records, keeping their order
func FromRecords(ctx context.Context, source string, records []model.TradeRecord) (*Dataset, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, &model.LoadError{Path: source, Reason: "open dataset store", Err: err}
	}
	// Every connection to ":memory:" is a separate database; pin a single one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, &model.LoadError{Path: source, Reason: "create schema", Err: err}
	}

	if err := insertRecords(ctx, db, records); err != nil {
		db.Close()
		return nil, &model.LoadError{Path: source, Reason: "insert records", Err: err}
	}

	return &Dataset{db: db, source: source, loadedAt: time.Now().UTC()}, nil
}

func insertRecords(ctx context.Context, db *sql.DB, records []model.TradeRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO trade_flows
		(id, origin, destination, year, volume, origin_lat, origin_lon, dest_lat, dest_lon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i+1, r.Origin, r.Destination, r.Year, r.Volume,
			r.OriginLat, r.OriginLon, r.DestLat, r.DestLon); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// Source returns the path or URL the dataset was loaded from
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was loaded
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Close releases the in-memory database
func (d *Dataset) Close() error { return d.db.Close() }

// Count returns the number of records
func (d *Dataset) Count(ctx context.Context) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trade_flows`).Scan(&n)
	return n, err
}

// AllYears returns the distinct years present, ascending
func (d *Dataset) AllYears(ctx context.Context) ([]int, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT DISTINCT year FROM trade_flows ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// OriginCountries returns the distinct exporting country codes, ascending
func (d *Dataset) OriginCountries(ctx context.Context) ([]string, error) {
	return d.queryCodes(ctx, `SELECT DISTINCT origin FROM trade_flows ORDER BY origin`)
}

// Codes returns every country code referenced as origin or destination
func (d *Dataset) Codes(ctx context.Context) ([]string, error) {
	return d.queryCodes(ctx, `SELECT origin AS code FROM trade_flows
		UNION SELECT destination FROM trade_flows ORDER BY code`)
}

func (d *Dataset) queryCodes(ctx context.Context, query string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// RecordsFor returns the records of one exporting country in one year, in file
// order. No match yields an empty slice, not an error.
func (d *Dataset) RecordsFor(ctx context.Context, year int, origin string) ([]model.TradeRecord, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT origin, destination, year, volume,
		origin_lat, origin_lon, dest_lat, dest_lon
		FROM trade_flows WHERE year = ? AND origin = ? ORDER BY id`, year, origin)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []model.TradeRecord{}
	for rows.Next() {
		var r model.TradeRecord
		if err := rows.Scan(&r.Origin, &r.Destination, &r.Year, &r.Volume,
			&r.OriginLat, &r.OriginLon, &r.DestLat, &r.DestLon); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
