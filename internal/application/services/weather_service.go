// Package services provides the stateless application services wired by
// the container.
package services

import (
	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/weather"
)

// WeatherService decorates every rendered page with a forecast snapshot.
// The data is a fixed set of records; a live weather API is deliberately
// not part of this app.
type WeatherService struct{}

// NewWeatherService creates the weather snapshot provider
func NewWeatherService() *WeatherService {
	return &WeatherService{}
}

// CurrentSnapshot returns the forecast records for the page header.
// Pure and deterministic.
func (s *WeatherService) CurrentSnapshot() weather.Snapshot {
	return weather.Snapshot{
		Locations: []weather.Location{
			{
				Name:        "Portland",
				ForecastURL: "http://www.wunderground.com/US/OR/Portland.html",
				IconURL:     "http://icons-ak.wxug.com/i/c/k/cloudy.gif",
				Weather:     "Overcast",
				Temp:        "54.1 F (12.3 C)",
			},
			{
				Name:        "Bend",
				ForecastURL: "http://www.wunderground.com/US/OR/Bend.html",
				IconURL:     "http://icons-ak.wxug.com/i/c/k/partlycloudy.gif",
				Weather:     "Partly Cloudy",
				Temp:        "55.0 F (12.8 C)",
			},
			{
				Name:        "Manzanita",
				ForecastURL: "http://www.wunderground.com/US/OR/Manzanita.html",
				IconURL:     "http://icons-ak.wxug.com/i/c/k/rain.gif",
				Weather:     "Light Rain",
				Temp:        "55.0 F (12.8 C)",
			},
		},
	}
}
