// Package weather defines the forecast records shown on every page.
package weather

// Location is a single forecast entry for the partial rendered in
// the page header.
type Location struct {
	Name        string `json:"name"`
	ForecastURL string `json:"forecastUrl"`
	IconURL     string `json:"iconUrl"`
	Weather     string `json:"weather"`
	Temp        string `json:"temp"`
}

// Snapshot is the weather context injected into the render pipeline.
type Snapshot struct {
	Locations []Location `json:"locations"`
}
