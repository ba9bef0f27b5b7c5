package service

import (
	"context"
	"regexp"
	"strings"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/normalize"
	"agroclimate-api/internal/observability"
)

// EndpointCulture labels metrics and logs for the crop calendar flow.
const EndpointCulture = "culture"

var (
	monthDayPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	colorHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// CropCalendarService asks the model for a crop's sowing and harvest window.
type CropCalendarService struct {
	asker structuredAsker
}

// NewCropCalendarService creates a new crop calendar service
func NewCropCalendarService(client CompletionClient, metrics *observability.Metrics) *CropCalendarService {
	return &CropCalendarService{asker: structuredAsker{client: client, metrics: metrics}}
}

// Calendar validates the query, asks the model and normalizes its answer.
func (s *CropCalendarService) Calendar(ctx context.Context, query models.CropQuery) (models.Answer[models.CropResult], error) {
	culture := strings.TrimSpace(query.Culture)
	if culture == "" {
		return models.Answer[models.CropResult]{}, apperror.NewValidationError("Missing or invalid 'culture' in body.")
	}
	region := strings.TrimSpace(query.Region)

	return askJSON(ctx, s.asker, StructuredRequest[models.CropResult]{
		Endpoint: EndpointCulture,
		Prompt: models.Prompt{
			System:      cropSystemPrompt,
			User:        cropUserPrompt(culture, region),
			MaxTokens:   cropMaxTokens,
			Temperature: 0,
		},
		Normalize: func(obj map[string]any) models.CropResult {
			return normalizeCrop(obj, culture, region)
		},
	})
}

func normalizeCrop(obj map[string]any, culture, region string) models.CropResult {
	return models.CropResult{
		Culture:           normalize.String(obj, "culture", culture),
		Region:            normalize.String(obj, "region", region),
		AverageSowingDate: normalize.Pattern(obj, "average_sowing_date", monthDayPattern, ""),
		EndOfSeason:       normalize.Pattern(obj, "end_of_season", monthDayPattern, ""),
		ColorHex:          normalize.Pattern(obj, "color_hex", colorHexPattern, ""),
		Confidence:        normalize.Enum(obj, "confidence", models.ConfidenceLevels, models.ConfidenceLow),
		SourceExplanation: normalize.String(obj, "source_explanation", ""),
	}
}
