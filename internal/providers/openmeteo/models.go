package openmeteo

// CurrentAPIResponse is the Open-Meteo forecast response restricted to the
// current-conditions block this service requests.
type CurrentAPIResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   Current `json:"current"`
}

type Current struct {
	Time                     string   `json:"time"`
	Temperature2M            *float64 `json:"temperature_2m"`
	PrecipitationProbability int      `json:"precipitation_probability"`
	WeatherCode              int      `json:"weather_code"`
}
