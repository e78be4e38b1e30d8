package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Kyoto&format=json&limit=1
const (
	baseURL   = "https://nominatim.openstreetmap.org/search"
	userAgent = "TourismAgentSystem/1.0"

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
		baseURL:    baseURL,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search looks up a free-text place name and returns at most limit matches.
// Nominatim requires a User-Agent identifying the application.
func (c *Client) Search(query string, limit int) ([]SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", fmt.Sprintf("%d", limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("searching nominatim", "query", query, "limit", limit)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch nominatim search", "query", query, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("nominatim search returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("failed to decode nominatim response", "query", query, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("nominatim search complete", "query", query, "result_count", len(results))

	return results, nil
}
