package models

// LocationQuery is the body of POST /api/location.
type LocationQuery struct {
	Address string `json:"address" example:"8 bd du Port, 56170 Sangatte"`
}

// LocationResult holds monthly climate estimates for an address.
// Coordinates come from the geocoder when it found the address.
type LocationResult struct {
	Address             string    `json:"address"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	PostalCode          *string   `json:"postalCode"`
	MonthlyTemperatures []float64 `json:"monthly_temperatures"`
	MonthlyRainfall     []float64 `json:"monthly_rainfall"`
	Confidence          string    `json:"confidence" enums:"low,medium,high"`
	SourceExplanation   string    `json:"source_explanation"`
}

// GeocodingResult is the first candidate returned by the geocoder.
// Found is false when there was no candidate or its geometry was unusable.
type GeocodingResult struct {
	Found      bool
	Latitude   float64
	Longitude  float64
	PostalCode string
	Label      string
}
