package nominatim

import (
	"fmt"
	"strconv"
)

// SearchResult is a single match from the Nominatim search endpoint.
// Nominatim serializes coordinates as strings.
type SearchResult struct {
	PlaceId     int     `json:"place_id"`
	OsmType     string  `json:"osm_type"`
	OsmId       int     `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
	DisplayName string  `json:"display_name"`
}

// Coordinates parses the string lat/lon fields into floats.
func (r *SearchResult) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}
