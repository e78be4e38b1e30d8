package types

// Intent is the parsed representation of what a user query is asking for.
// PlaceName is empty when no location could be extracted from the query.
type Intent struct {
	WantsWeather bool   `json:"wants_weather"`
	WantsPlaces  bool   `json:"wants_places"`
	PlaceName    string `json:"place_name"`
}
