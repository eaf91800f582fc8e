package domain

import "time"

type WeatherData struct {
	Location      string    `json:"location"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection int       `json:"wind_direction"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
}
