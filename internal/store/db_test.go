package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-trade-dashboard/internal/model"
)

const sampleCSV = `country1,country2,Year,Import trade _metric Tons,latitude1,longitude1,latitude2,longitude2
NGA,GHA,2009,100,9.08,8.67,7.95,-1.02
NGA,BEN,2009,50,9.08,8.67,9.31,2.32
NGA,GHA,2009,30,9.08,8.67,7.95,-1.02
KEN,UGA,2009,70,-0.02,37.91,1.37,32.29
NGA,GHA,2010,500,9.08,8.67,7.95,-1.02
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadSample(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(context.Background(), writeFile(t, "trade.csv", sampleCSV), LoadOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { ds.Close() })
	return ds
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	ds := loadSample(t)

	n, err := ds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, ds.LoadedAt().IsZero())
	assert.Contains(t, ds.Source(), "trade.csv")
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") }, "failed to open"},
		{"header only", func(t *testing.T) string {
			return writeFile(t, "empty.csv", "country1,country2,Year,Import trade _metric Tons,latitude1,longitude1,latitude2,longitude2\n")
		}, "no trade records"},
		{"missing column", func(t *testing.T) string {
			return writeFile(t, "bad.csv", "country1,country2,Year\nNGA,GHA,2009\n")
		}, "missing required columns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Load(ctx, tt.path(t), LoadOptions{})
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.True(t, model.IsLoadError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_CustomColumns(t *testing.T) {
	body := "src;dst;yr;tons;olat;olon;dlat;dlon\nNGA;GHA;2009;12;9;8;7;-1\n"
	cols := model.Columns{
		Origin: "src", Destination: "dst", Year: "yr", Volume: "tons",
		OriginLat: "olat", OriginLon: "olon", DestLat: "dlat", DestLon: "dlon",
	}
	ds, err := Load(context.Background(), writeFile(t, "custom.csv", body), LoadOptions{Columns: cols, Delimiter: ';'})
	require.NoError(t, err)
	defer ds.Close()

	records, err := ds.RecordsFor(context.Background(), 2009, "NGA")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 12.0, records[0].Volume)
}

func TestRecordsFor(t *testing.T) {
	ctx := context.Background()
	ds := loadSample(t)

	records, err := ds.RecordsFor(ctx, 2009, "NGA")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"GHA", "BEN", "GHA"},
		[]string{records[0].Destination, records[1].Destination, records[2].Destination})
	assert.Equal(t, model.TradeRecord{
		Origin: "NGA", Destination: "GHA", Year: 2009, Volume: 100,
		OriginLat: 9.08, OriginLon: 8.67, DestLat: 7.95, DestLon: -1.02,
	}, records[0])

	empty, err := ds.RecordsFor(ctx, 1999, "NGA")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAllYears(t *testing.T) {
	years, err := loadSample(t).AllYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2009, 2010}, years)
}

func TestCodes(t *testing.T) {
	ctx := context.Background()
	ds := loadSample(t)

	origins, err := ds.OriginCountries(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"NGA", "KEN"}, origins)

	codes, err := ds.Codes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"NGA", "KEN", "GHA", "BEN", "UGA"}, codes)
}

func TestFromRecords_ConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	ds, err := FromRecords(ctx, "memory", []model.TradeRecord{
		{Origin: "NGA", Destination: "GHA", Year: 2009, Volume: 1},
		{Origin: "NGA", Destination: "BEN", Year: 2009, Volume: 2},
	})
	require.NoError(t, err)
	defer ds.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := ds.RecordsFor(ctx, 2009, "NGA")
			if err == nil && len(records) != 2 {
				err = assert.AnError
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
