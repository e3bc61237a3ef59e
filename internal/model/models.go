package model

// TradeRecord is one row of the trade-flow table
type TradeRecord struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Year        int     `json:"year"`
	Volume      float64 `json:"volume"` // metric tons
	OriginLat   float64 `json:"origin_lat"`
	OriginLon   float64 `json:"origin_lon"`
	DestLat     float64 `json:"dest_lat"`
	DestLon     float64 `json:"dest_lon"`
}

// Columns maps each TradeRecord field to a header name in the input file
type Columns struct {
	Origin      string `mapstructure:"origin" json:"origin"`
	Destination string `mapstructure:"destination" json:"destination"`
	Year        string `mapstructure:"year" json:"year"`
	Volume      string `mapstructure:"volume" json:"volume"`
	OriginLat   string `mapstructure:"origin_lat" json:"origin_lat"`
	OriginLon   string `mapstructure:"origin_lon" json:"origin_lon"`
	DestLat     string `mapstructure:"dest_lat" json:"dest_lat"`
	DestLon     string `mapstructure:"dest_lon" json:"dest_lon"`
}

// DefaultColumns returns the headers used by the published trade dataset
func DefaultColumns() Columns {
	return Columns{
		Origin:      "country1",
		Destination: "country2",
		Year:        "Year",
		Volume:      "Import trade _metric Tons",
		OriginLat:   "latitude1",
		OriginLon:   "longitude1",
		DestLat:     "latitude2",
		DestLon:     "longitude2",
	}
}

// Required lists every header that must be present, in a stable order
func (c Columns) Required() []string {
	return []string{
		c.Origin, c.Destination, c.Year, c.Volume,
		c.OriginLat, c.OriginLon, c.DestLat, c.DestLon,
	}
}

// Selection is the (year, country) pair chosen by the user
type Selection struct {
	Year    int    `json:"year"`
	Country string `json:"country"`
}

// AggregatedFlow is the summed volume of one (origin, destination) pair
type AggregatedFlow struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	TotalVolume float64 `json:"total_volume"`
	RecordCount int     `json:"record_count"`
}

// YearOption is one entry of the year selector
type YearOption struct {
	Label int `json:"label"`
	Value int `json:"value"`
}

// CountryOption is one entry of the country selector
type CountryOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options holds everything the selectors need
type Options struct {
	Years     []YearOption    `json:"years"`
	Countries []CountryOption `json:"countries"`
	Default   Selection       `json:"default"`
}
