package types

// Attraction is a point of interest near a resolved location. Coordinates
// are optional because Overpass omits them for some elements; website and
// description are present only when the upstream tags carry them.
type Attraction struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Latitude    *float64 `json:"lat,omitempty"`
	Longitude   *float64 `json:"lon,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
}

// PlacesResult is the outcome of an attractions lookup. On success
// Attractions holds up to five entries (possibly zero when nothing was
// found nearby); on failure Error and Details describe the problem and
// Attractions is empty. The two cases are distinguishable so callers can
// tell "nothing nearby" apart from "lookup failed".
type PlacesResult struct {
	Attractions []Attraction `json:"attractions"`
	Error       string       `json:"error,omitempty"`
	Details     string       `json:"details,omitempty"`
}

// Failed reports whether the lookup failed.
func (p *PlacesResult) Failed() bool {
	return p.Error != ""
}

// NewFailedPlacesResult builds the failure variant of a places lookup.
func NewFailedPlacesResult(details string) *PlacesResult {
	return &PlacesResult{
		Error:   "Unable to fetch tourist places",
		Details: details,
	}
}
