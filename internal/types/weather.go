package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky          WeatherCode = 0
	MainlyClear       WeatherCode = 1
	PartlyCloudy      WeatherCode = 2
	Overcast          WeatherCode = 3
	Fog               WeatherCode = 45
	DepositingRimeFog WeatherCode = 48
	DrizzleLight      WeatherCode = 51
	DrizzleModerate   WeatherCode = 53
	DrizzleDense      WeatherCode = 55
	RainSlight        WeatherCode = 61
	RainModerate      WeatherCode = 63
	RainHeavy         WeatherCode = 65
	SnowFallSlight    WeatherCode = 71
	SnowFallModerate  WeatherCode = 73
	SnowFallHeavy     WeatherCode = 75
	Thunderstorm      WeatherCode = 95
)

// weatherDescriptions maps weather codes to their descriptions
var weatherDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	95: "Thunderstorm",
}

// GetWeatherDescription returns the description for a given weather code.
// Codes outside the table map to "Unknown".
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// WeatherSummary holds current conditions for a location, or a failure
// marker when the lookup did not succeed. Exactly one of the two is
// populated: a summary has an empty Error, a failure carries only
// Error and Details.
type WeatherSummary struct {
	Temperature              *float64 `json:"temperature,omitempty"`
	TemperatureUnit          string   `json:"temperature_unit,omitempty"`
	PrecipitationProbability int      `json:"precipitation_probability,omitempty"`
	Description              string   `json:"weather_description,omitempty"`
	Timezone                 string   `json:"timezone,omitempty"`
	Error                    string   `json:"error,omitempty"`
	Details                  string   `json:"details,omitempty"`
}

// Failed reports whether the summary is a failure marker.
func (w *WeatherSummary) Failed() bool {
	return w.Error != ""
}

// NewFailedWeatherSummary builds the failure marker carried in place of a
// summary when the weather lookup fails.
func NewFailedWeatherSummary(details string) *WeatherSummary {
	return &WeatherSummary{
		Error:   "Unable to fetch weather data",
		Details: details,
	}
}
