package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"agroclimate-api/internal/config"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/observability"
	"agroclimate-api/internal/openai"
	"agroclimate-api/internal/service"

	"github.com/rs/zerolog/log"
)

// calendarService is implemented by service.CropCalendarService.
type calendarService interface {
	Calendar(context.Context, models.CropQuery) (models.Answer[models.CropResult], error)
}

// batchLine is one JSON line of output.
type batchLine struct {
	Query   models.CropQuery          `json:"query"`
	Result  *models.CropResult        `json:"result,omitempty"`
	Warning *models.ExtractionWarning `json:"warning,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

func main() {
	file := flag.String("file", "", "Path to a CSV file with culture,region columns")
	out := flag.String("out", "", "Output file for JSON lines (default stdout)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger := observability.SetupLogger(cfg.LogLevel, "console")

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *file).Msg("cannot open input")
	}
	defer f.Close()

	queries, err := parseCSV(f)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot parse CSV")
	}
	logger.Info().Int("rows", len(queries)).Msg("parsed input")

	var w io.Writer = os.Stdout
	if *out != "" {
		of, err := os.Create(*out)
		if err != nil {
			logger.Fatal().Err(err).Str("file", *out).Msg("cannot create output")
		}
		defer of.Close()
		w = of
	}

	client := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.UpstreamTimeout)
	svc := service.NewCropCalendarService(client, observability.NewMetrics())

	failed, err := run(logger.WithContext(context.Background()), svc, queries, w)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot write output")
	}
	logger.Info().Int("rows", len(queries)).Int("failed", failed).Msg("batch complete")
}

// parseCSV reads culture,region rows. The first row is a header; region may be omitted.
func parseCSV(r io.Reader) ([]models.CropQuery, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var queries []models.CropQuery
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		q := models.CropQuery{Culture: strings.TrimSpace(record[0])}
		if len(record) > 1 {
			q.Region = strings.TrimSpace(record[1])
		}
		queries = append(queries, q)
	}

	return queries, nil
}

// run looks up each query in order and writes one line per query.
// Lookup failures are written as error lines and counted; only write errors abort.
func run(ctx context.Context, svc calendarService, queries []models.CropQuery, w io.Writer) (int, error) {
	enc := json.NewEncoder(w)
	failed := 0
	for _, q := range queries {
		line := batchLine{Query: q}

		answer, err := svc.Calendar(ctx, q)
		switch {
		case err != nil:
			failed++
			line.Error = err.Error()
			log.Ctx(ctx).Warn().Err(err).Str("culture", q.Culture).Msg("lookup failed")
		case !answer.Parsed:
			line.Warning = &models.ExtractionWarning{Warning: models.ExtractionWarningMessage, Raw: answer.Raw}
		default:
			result := answer.Value
			line.Result = &result
		}

		if err := enc.Encode(line); err != nil {
			return failed, fmt.Errorf("write line: %w", err)
		}
	}
	return failed, nil
}
