package model

// FlowSegment is one export line drawn from origin to destination
type FlowSegment struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Lon         [2]float64 `json:"lon"`
	Lat         [2]float64 `json:"lat"`
	Volume      float64    `json:"volume"`
	Intensity   float64    `json:"intensity"`
	Label       string     `json:"label"`
}

// ChoroplethEntry colors one destination region
type ChoroplethEntry struct {
	Location string  `json:"location"` // ISO-3
	Z        float64 `json:"z"`
	Volume   float64 `json:"customdata"`
	Text     string  `json:"text"`
	Hover    string  `json:"hover"`
}

// OriginMarker marks the exporting country on the map
type OriginMarker struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
	Color string  `json:"color"`
}

// CountryLabel is a country name placed at its boundary centroid
type CountryLabel struct {
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// MapLayout carries presentation hints for the flow map
type MapLayout struct {
	Title       string  `json:"title"`
	Scope       string  `json:"scope"`
	Projection  string  `json:"projection"`
	Colorscale  string  `json:"colorscale"`
	LineColor   string  `json:"line_color"`
	LineWidth   float64 `json:"line_width"`
	LineOpacity float64 `json:"line_opacity"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

// MapPayload is everything the presentation layer needs to draw the flow map
type MapPayload struct {
	Segments   []FlowSegment     `json:"segments"`
	Choropleth []ChoroplethEntry `json:"choropleth"`
	Origin     *OriginMarker     `json:"origin,omitempty"`
	Labels     []CountryLabel    `json:"labels,omitempty"`
	Layout     MapLayout         `json:"layout"`
}

// Bar is a single bar of the aggregated volume chart
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// BarLayout carries presentation hints for the bar chart
type BarLayout struct {
	Title      string `json:"title"`
	SeriesName string `json:"series_name"`
	XAxisTitle string `json:"x_axis_title"`
	YAxisTitle string `json:"y_axis_title"`
	Color      string `json:"color"`
	TickAngle  int    `json:"tick_angle"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// BarPayload is everything the presentation layer needs to draw the bar chart
type BarPayload struct {
	Bars   []Bar     `json:"bars"`
	Layout BarLayout `json:"layout"`
}

// Dashboard is the full output of one selection run
type Dashboard struct {
	Selection   Selection        `json:"selection"`
	Status      string           `json:"status"`
	Map         MapPayload       `json:"map"`
	Bar         BarPayload       `json:"bar"`
	Records     []TradeRecord    `json:"records"`
	Intensities []float64        `json:"intensities"`
	Flows       []AggregatedFlow `json:"flows"`
}
