package service

import (
	"context"
	"strings"
	"testing"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const parisClimateJSON = `{
  "address": "10 rue de Rivoli, Paris",
  "latitude": 40.0,
  "longitude": -3.5,
  "postalCode": "75004",
  "monthly_temperatures": [5.0, 5.6, 8.8, 11.7, 15.3, 18.5, 20.6, 20.4, 16.9, 13.0, 8.3, 5.5],
  "monthly_rainfall": [51, 41, 48, 52, 63, 50, 62, 53, 48, 62, 51, 58],
  "confidence": "medium",
  "source_explanation": "Long-term Paris-Montsouris normals"
}`

var parisGeo = models.GeocodingResult{
	Found:      true,
	Latitude:   48.85626,
	Longitude:  2.360945,
	PostalCode: "75004",
	Label:      "10 Rue de Rivoli 75004 Paris",
}

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func newLocationService() (*LocationClimateService, *MockGeocoder, *MockCompletionClient) {
	geo := new(MockGeocoder)
	client := new(MockCompletionClient)
	return NewLocationClimateService(geo, client, observability.NewMetricsForTesting()), geo, client
}

func TestLocationClimateService_Validation(t *testing.T) {
	for _, address := range []string{"", "   "} {
		svc, geo, client := newLocationService()

		_, err := svc.Climate(context.Background(), models.LocationQuery{Address: address})

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		geo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	}
}

func TestLocationClimateService_GeocodedCoordinatesWin(t *testing.T) {
	svc, geo, client := newLocationService()
	geo.On("Search", mock.Anything, "10 rue de Rivoli, Paris").Return(parisGeo, nil)
	client.On("Complete", mock.Anything, mock.Anything).Return(parisClimateJSON, nil)

	answer, err := svc.Climate(context.Background(), models.LocationQuery{Address: " 10 rue de Rivoli, Paris "})
	require.NoError(t, err)
	require.True(t, answer.Parsed)

	result := answer.Value
	require.NotNil(t, result.Latitude)
	require.NotNil(t, result.Longitude)
	assert.Equal(t, 48.85626, *result.Latitude)
	assert.Equal(t, 2.360945, *result.Longitude)
	assert.Equal(t, stringPtr("75004"), result.PostalCode)
	assert.Len(t, result.MonthlyTemperatures, 12)
	assert.Len(t, result.MonthlyRainfall, 12)
	assert.Equal(t, 5.0, result.MonthlyTemperatures[0])
	assert.Equal(t, float64(58), result.MonthlyRainfall[11])
	assert.Equal(t, "medium", result.Confidence)
	assert.Equal(t, "Long-term Paris-Montsouris normals", result.SourceExplanation)

	geo.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestLocationClimateService_GeocodingMissFallsBackToModel(t *testing.T) {
	tests := []struct {
		name        string
		modelOutput string
		expectedLat *float64
		expectedLon *float64
	}{
		{
			name:        "model supplies coordinates",
			modelOutput: `{"latitude": 45.76, "longitude": 4.84, "confidence": "low"}`,
			expectedLat: float64Ptr(45.76),
			expectedLon: float64Ptr(4.84),
		},
		{
			name:        "model omits coordinates",
			modelOutput: `{"confidence": "low"}`,
		},
		{
			name:        "model sends non-numeric coordinates",
			modelOutput: `{"latitude": "45.76", "longitude": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, geo, client := newLocationService()
			geo.On("Search", mock.Anything, "Lyon").Return(models.GeocodingResult{}, nil)
			client.On("Complete", mock.Anything, mock.Anything).Return(tt.modelOutput, nil)

			answer, err := svc.Climate(context.Background(), models.LocationQuery{Address: "Lyon"})
			require.NoError(t, err)
			require.True(t, answer.Parsed)

			assert.Equal(t, tt.expectedLat, answer.Value.Latitude)
			assert.Equal(t, tt.expectedLon, answer.Value.Longitude)
			assert.Equal(t, "Lyon", answer.Value.Address)
		})
	}
}

func TestLocationClimateService_Defaults(t *testing.T) {
	svc, geo, client := newLocationService()
	geo.On("Search", mock.Anything, "Brest").Return(models.GeocodingResult{}, nil)
	client.On("Complete", mock.Anything, mock.Anything).Return(`{"monthly_temperatures":[1,2,3]}`, nil)

	answer, err := svc.Climate(context.Background(), models.LocationQuery{Address: "Brest"})
	require.NoError(t, err)

	assert.Equal(t, models.LocationResult{
		Address:             "Brest",
		MonthlyTemperatures: []float64{},
		MonthlyRainfall:     []float64{},
		Confidence:          "low",
	}, answer.Value)
}

func TestLocationClimateService_PostalCodeFallsBackToGeocoder(t *testing.T) {
	svc, geo, client := newLocationService()
	geo.On("Search", mock.Anything, "Amiens").Return(models.GeocodingResult{Found: true, Latitude: 49.89, Longitude: 2.29, PostalCode: "80000"}, nil)
	client.On("Complete", mock.Anything, mock.Anything).Return(`{"confidence":"high"}`, nil)

	answer, err := svc.Climate(context.Background(), models.LocationQuery{Address: "Amiens"})
	require.NoError(t, err)

	assert.Equal(t, stringPtr("80000"), answer.Value.PostalCode)
}

func TestLocationClimateService_Prompt(t *testing.T) {
	tests := []struct {
		name     string
		geo      models.GeocodingResult
		expected string
	}{
		{
			name:     "geocoded",
			geo:      parisGeo,
			expected: `Postal code: 75004; Address: "10 rue de Rivoli, Paris"; Latitude: 48.85626, Longitude: 2.360945. Provide monthly climate data as JSON.`,
		},
		{
			name:     "not geocoded",
			geo:      models.GeocodingResult{},
			expected: `Address: "10 rue de Rivoli, Paris". Provide monthly climate data as JSON.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, geo, client := newLocationService()
			geo.On("Search", mock.Anything, mock.Anything).Return(tt.geo, nil)
			client.On("Complete", mock.Anything, mock.MatchedBy(func(p models.Prompt) bool {
				return p.User == tt.expected &&
					p.MaxTokens == 600 &&
					p.Temperature == 0 &&
					strings.Contains(p.System, "exactly 12 numbers")
			})).Return(parisClimateJSON, nil)

			_, err := svc.Climate(context.Background(), models.LocationQuery{Address: "10 rue de Rivoli, Paris"})
			require.NoError(t, err)
			client.AssertExpectations(t)
		})
	}
}

func TestLocationClimateService_GeocoderError(t *testing.T) {
	svc, geo, client := newLocationService()
	geo.On("Search", mock.Anything, "Paris").Return(models.GeocodingResult{},
		&apperror.UpstreamError{Service: "geocoder", Message: "Geocoding API error", Status: 503, Detail: "maintenance"})

	_, err := svc.Climate(context.Background(), models.LocationQuery{Address: "Paris"})
	require.Error(t, err)

	u, ok := apperror.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, 503, u.Status)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestLocationClimateService_UnparseableOutput(t *testing.T) {
	svc, geo, client := newLocationService()
	geo.On("Search", mock.Anything, "Paris").Return(parisGeo, nil)
	client.On("Complete", mock.Anything, mock.Anything).Return("Paris is temperate.", nil)

	answer, err := svc.Climate(context.Background(), models.LocationQuery{Address: "Paris"})
	require.NoError(t, err)

	assert.False(t, answer.Parsed)
	assert.Equal(t, "Paris is temperate.", answer.Raw)
}
