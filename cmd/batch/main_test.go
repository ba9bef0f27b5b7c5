package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCalendarService struct {
	mock.Mock
}

func (m *mockCalendarService) Calendar(ctx context.Context, q models.CropQuery) (models.Answer[models.CropResult], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(models.Answer[models.CropResult]), args.Error(1)
}

func TestParseCSV(t *testing.T) {
	input := "culture,region\nwheat,Beauce\n maïs \n,France\nrice,\"Camargue, France\"\n"

	queries, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []models.CropQuery{
		{Culture: "wheat", Region: "Beauce"},
		{Culture: "maïs"},
		{Culture: "rice", Region: "Camargue, France"},
	}, queries)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := parseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	svc := new(mockCalendarService)
	svc.On("Calendar", mock.Anything, models.CropQuery{Culture: "wheat"}).
		Return(models.Answer[models.CropResult]{Parsed: true, Value: models.CropResult{Culture: "wheat", Confidence: "high"}}, nil)
	svc.On("Calendar", mock.Anything, models.CropQuery{Culture: "xyz"}).
		Return(models.Answer[models.CropResult]{Raw: "unknown crop"}, nil)
	svc.On("Calendar", mock.Anything, models.CropQuery{Culture: "oats"}).
		Return(models.Answer[models.CropResult]{}, &apperror.UpstreamError{Service: "openai", Message: "OpenAI API error", Status: 500})

	var buf bytes.Buffer
	failed, err := run(context.Background(), svc, []models.CropQuery{
		{Culture: "wheat"}, {Culture: "xyz"}, {Culture: "oats"},
	}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first, second, third batchLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))

	require.NotNil(t, first.Result)
	assert.Equal(t, "high", first.Result.Confidence)
	require.NotNil(t, second.Warning)
	assert.Equal(t, "unknown crop", second.Warning.Raw)
	assert.Contains(t, third.Error, "status 500")
	svc.AssertExpectations(t)
}
