package catalogue

// StopID identifies a stop within one Catalogue.
type StopID int

// BusID identifies a bus within one Catalogue.
type BusID int

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Stop is a named point. Placeholders created by AddBus or SetDistance have
// Declared == false until AddStop is called for the same name.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates Coordinates
	Declared    bool
}

// Bus is a named route over an ordered sequence of stops. Duplicates are allowed.
type Bus struct {
	ID          BusID
	Name        string
	Stops       []StopID
	IsRoundtrip bool
}

// BusInfo holds route statistics for a single bus.
type BusInfo struct {
	StopsCount       int     `json:"stop_count"`
	UniqueStopsCount int     `json:"unique_stop_count"`
	RouteLength      float64 `json:"route_length"`
	GeoLength        float64 `json:"geo_length"`
	Curvature        float64 `json:"curvature"`
}
