// Package geocoder queries the Base Adresse Nationale search API
// (api-adresse.data.gouv.fr).
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agroclimate-api/internal/apperror"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/observability"
)

const (
	serviceName    = "geocoder"
	defaultBaseURL = "https://api-adresse.data.gouv.fr"
)

// Client implements forward geocoding against the BAN API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
}

// NewClient creates a geocoding client. A zero timeout means no client-side timeout.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: metrics,
	}
}

// Search looks up an address and returns its first candidate.
// No candidate, or a candidate without a [lon, lat] pair, yields Found=false and no error.
func (c *Client) Search(ctx context.Context, address string) (models.GeocodingResult, error) {
	start := time.Now()
	result, err := c.search(ctx, address)
	c.metrics.GeocodeDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
	case !result.Found:
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
	default:
		c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	}
	return result, err
}

func (c *Client) search(ctx context.Context, address string) (models.GeocodingResult, error) {
	u := c.baseURL + "/search/?" + url.Values{"q": {address}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.GeocodingResult{}, fmt.Errorf("geocoder: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeocodingResult{}, &apperror.UpstreamError{Service: serviceName, Message: "Geocoding API error", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return models.GeocodingResult{}, &apperror.UpstreamError{
			Service: serviceName,
			Message: "Geocoding API error",
			Status:  resp.StatusCode,
			Detail:  string(body),
		}
	}

	var banResp response
	if err := json.NewDecoder(resp.Body).Decode(&banResp); err != nil {
		return models.GeocodingResult{}, &apperror.UpstreamError{
			Service: serviceName,
			Message: "Invalid response from geocoding API",
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	if len(banResp.Features) == 0 {
		return models.GeocodingResult{}, nil
	}
	return banResp.Features[0].toResult(), nil
}

// BAN API response types (GeoJSON FeatureCollection).

type response struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		Coordinates []any `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
	Properties struct {
		Label    any `json:"label"`
		Postcode any `json:"postcode"`
	} `json:"properties"`
}

func (f feature) toResult() models.GeocodingResult {
	coords := f.Geometry.Coordinates
	if len(coords) != 2 {
		return models.GeocodingResult{}
	}
	lon, okLon := coords[0].(float64)
	lat, okLat := coords[1].(float64)
	if !okLon || !okLat {
		return models.GeocodingResult{}
	}

	result := models.GeocodingResult{
		Found:     true,
		Latitude:  lat,
		Longitude: lon,
	}
	if pc, ok := f.Properties.Postcode.(string); ok {
		result.PostalCode = pc
	}
	if label, ok := f.Properties.Label.(string); ok {
		result.Label = label
	}
	return result
}
