package overpass

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

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Queries are Overpass QL posted as a form field named "data".
const (
	baseURL = "https://overpass-api.de/api/interpreter"

	requestTimeout = 30 * time.Second
)

// tourismFilter matches the OSM tourism tags considered attractions.
const tourismFilter = "attraction|museum|viewpoint|gallery|theme_park"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// FindTourismElements queries node and way features tagged with a tourism
// category within radiusMeters of the coordinates. The query asks the server
// to cap the result body at 5 elements; callers must not rely on the server
// honoring it.
func (c *Client) FindTourismElements(latitude, longitude float64, radiusMeters int) (*InterpreterAPIResponse, error) {
	query := fmt.Sprintf(`
	[out:json][timeout:25];
	(
	  node["tourism"~"%[1]s"]
	    (around:%[2]d,%[3]f,%[4]f);
	  way["tourism"~"%[1]s"]
	    (around:%[2]d,%[3]f,%[4]f);
	);
	out body 5;
	>;
	out skel qt;
	`, tourismFilter, radiusMeters, latitude, longitude)

	form := url.Values{}
	form.Set("data", query)

	c.logger.Debug("querying overpass",
		"latitude", latitude,
		"longitude", longitude,
		"radius_meters", radiusMeters,
	)

	resp, err := c.httpClient.Post(c.baseURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("failed to query overpass",
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
		c.logger.Error("overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("overpass query complete", "element_count", len(apiResp.Elements))

	return &apiResp, nil
}
