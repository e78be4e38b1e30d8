package types

// QueryResult is the top-level response for a processed query. On failure
// only Success and Message are set. Weather is present iff the query asked
// for weather, Places iff it asked for attractions; either may carry a
// failure marker instead of data.
type QueryResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Place    *Place          `json:"place,omitempty"`
	Weather  *WeatherSummary `json:"weather,omitempty"`
	Places   *PlacesResult   `json:"places,omitempty"`
	Response string          `json:"response,omitempty"`
}
