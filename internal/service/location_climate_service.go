package service

import (
	"context"
	"fmt"
	"strings"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/normalize"
	"agroclimate-api/internal/observability"

	"github.com/rs/zerolog"
)

// EndpointLocation labels metrics and logs for the location climate flow.
const EndpointLocation = "location"

const monthsPerYear = 12

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	Search(ctx context.Context, address string) (models.GeocodingResult, error)
}

// LocationClimateService geocodes an address and asks the model for its monthly climate.
type LocationClimateService struct {
	geocoder Geocoder
	asker    structuredAsker
}

// NewLocationClimateService creates a new location climate service
func NewLocationClimateService(geocoder Geocoder, client CompletionClient, metrics *observability.Metrics) *LocationClimateService {
	return &LocationClimateService{
		geocoder: geocoder,
		asker:    structuredAsker{client: client, metrics: metrics},
	}
}

// Climate geocodes the address, then asks the model for climate estimates.
// Geocoded coordinates always replace the model's.
func (s *LocationClimateService) Climate(ctx context.Context, query models.LocationQuery) (models.Answer[models.LocationResult], error) {
	address := strings.TrimSpace(query.Address)
	if address == "" {
		return models.Answer[models.LocationResult]{}, apperror.NewValidationError("Missing or invalid 'address' in body.")
	}

	geo, err := s.geocoder.Search(ctx, address)
	if err != nil {
		return models.Answer[models.LocationResult]{}, fmt.Errorf("service: geocode: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	var lat, lon *float64
	if geo.Found {
		lat, lon = &geo.Latitude, &geo.Longitude
		logger.Debug().
			Float64("latitude", geo.Latitude).
			Float64("longitude", geo.Longitude).
			Str("postcode", geo.PostalCode).
			Msg("address geocoded")
	} else {
		logger.Warn().Str("address", address).Msg("geocoding found no usable candidate, model will estimate")
	}

	return askJSON(ctx, s.asker, StructuredRequest[models.LocationResult]{
		Endpoint: EndpointLocation,
		Prompt: models.Prompt{
			System:      climateSystemPrompt,
			User:        climateUserPrompt(address, geo.PostalCode, lat, lon),
			MaxTokens:   climateMaxTokens,
			Temperature: 0,
		},
		Normalize: func(obj map[string]any) models.LocationResult {
			return normalizeClimate(obj, address, geo)
		},
	})
}

func normalizeClimate(obj map[string]any, address string, geo models.GeocodingResult) models.LocationResult {
	out := models.LocationResult{
		Address:             normalize.String(obj, "address", address),
		Latitude:            normalize.Number(obj, "latitude"),
		Longitude:           normalize.Number(obj, "longitude"),
		PostalCode:          normalize.OptionalString(obj, "postalCode"),
		MonthlyTemperatures: normalize.Series(obj, "monthly_temperatures", monthsPerYear),
		MonthlyRainfall:     normalize.Series(obj, "monthly_rainfall", monthsPerYear),
		Confidence:          normalize.Enum(obj, "confidence", models.ConfidenceLevels, models.ConfidenceLow),
		SourceExplanation:   normalize.String(obj, "source_explanation", ""),
	}

	if geo.Found {
		lat, lon := geo.Latitude, geo.Longitude
		out.Latitude, out.Longitude = &lat, &lon
	}
	if out.PostalCode == nil && geo.PostalCode != "" {
		pc := geo.PostalCode
		out.PostalCode = &pc
	}
	return out
}
