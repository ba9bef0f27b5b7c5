//	@title			agroclimate-api
//	@version		1.0
//	@description	Crop calendars and monthly climate estimates backed by a chat completion model and the Base Adresse Nationale geocoder.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"agroclimate-api/internal/config"
	"agroclimate-api/internal/geocoder"
	"agroclimate-api/internal/handler"
	"agroclimate-api/internal/observability"
	"agroclimate-api/internal/openai"
	"agroclimate-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := observability.SetupLogger(config.LogLevel, config.LogFormat)
	metrics := observability.NewMetrics()

	// Upstream clients
	completionClient := openai.NewClient(config.OpenAIAPIKey, config.OpenAIBaseURL, config.OpenAIModel, config.UpstreamTimeout)
	geocodeClient := geocoder.NewClient(config.GeocoderBaseURL, config.UpstreamTimeout, metrics)

	// Initialize layers
	cropService := service.NewCropCalendarService(completionClient, metrics)
	climateService := service.NewLocationClimateService(geocodeClient, completionClient, metrics)

	cropHandler := handler.NewCropHandler(cropService)
	locationHandler := handler.NewLocationHandler(climateService)

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.RouterConfig{AllowedOrigins: config.CORSAllowedOrigins}, metrics, cropHandler, locationHandler)

	srv := &http.Server{
		Addr:    config.ServerAddress(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("model", completionClient.Model()).
			Msg("agroclimate-api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown error")
	}
	logger.Info().Msg("shutdown complete")
}
