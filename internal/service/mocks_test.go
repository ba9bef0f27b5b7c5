package service

import (
	"context"

	"agroclimate-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCompletionClient is a mock implementation of the CompletionClient interface
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt models.Prompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, address string) (models.GeocodingResult, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.GeocodingResult), args.Error(1)
}
