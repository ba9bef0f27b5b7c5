package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config directory and overridden by environment variables.
type Config struct {
	OpenAIAPIKey       string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel        string        `mapstructure:"OPENAI_MODEL"`
	GeocoderBaseURL    string        `mapstructure:"GEOCODER_BASE_URL"`
	Port               string        `mapstructure:"PORT"`
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// ServerAddress is the listen address derived from Port.
func (c Config) ServerAddress() string {
	return ":" + c.Port
}

var defaults = map[string]any{
	"OPENAI_API_KEY":       "",
	"OPENAI_BASE_URL":      "https://api.openai.com/v1",
	"OPENAI_MODEL":         "gpt-4o-mini",
	"GEOCODER_BASE_URL":    "https://api-adresse.data.gouv.fr",
	"PORT":                 "80",
	"UPSTREAM_TIMEOUT":     "60s",
	"SHUTDOWN_TIMEOUT":     "10s",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"CORS_ALLOWED_ORIGINS": "*",
}

// LoadConfig reads configuration from file or environment variables.
// A missing app.env is not an error; a missing OPENAI_API_KEY is.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: decode: %w", err)
	}

	if config.OpenAIAPIKey == "" {
		return config, errors.New("config: OPENAI_API_KEY is required")
	}
	if config.Port == "" {
		config.Port = "80"
	}
	if config.UpstreamTimeout < 0 {
		return config, fmt.Errorf("config: invalid UPSTREAM_TIMEOUT %s", config.UpstreamTimeout)
	}

	return config, nil
}
