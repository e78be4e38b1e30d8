package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=35.01&longitude=135.76&current=temperature_2m,precipitation_probability,weather_code&temperature_unit=celsius&timezone=auto
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// GetCurrentConditions fetches the current weather for the given coordinates.
// Temperatures are requested in Celsius and the timezone is resolved by the
// provider ("auto").
func (c *Client) GetCurrentConditions(latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"precipitation_probability",
		"weather_code",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("temperature_unit", "celsius")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current conditions", "latitude", latitude, "longitude", longitude)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch current conditions",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("open-meteo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp CurrentAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode open-meteo response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
