package weather

import (
	"fmt"
	"log/slog"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/providers/openmeteo"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

const temperatureUnit = "°C"

// Service fetches current weather conditions for a coordinate.
type Service interface {
	Fetch(coords types.Coords) (*types.WeatherSummary, error)
}

// CurrentConditionsProvider defines the interface for weather data providers.
type CurrentConditionsProvider interface {
	GetCurrentConditions(latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
}

type weatherService struct {
	provider CurrentConditionsProvider
	logger   *slog.Logger
}

// NewService creates a weather service backed by Open-Meteo.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(openmeteo.NewClient(logger), logger)
}

// NewServiceWithProvider creates a weather service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider CurrentConditionsProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Fetch(coords types.Coords) (*types.WeatherSummary, error) {
	apiResp, err := s.provider.GetCurrentConditions(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("weather lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	timezone := apiResp.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	return &types.WeatherSummary{
		Temperature:              apiResp.Current.Temperature2M,
		TemperatureUnit:          temperatureUnit,
		PrecipitationProbability: apiResp.Current.PrecipitationProbability,
		Description:              types.GetWeatherDescription(apiResp.Current.WeatherCode),
		Timezone:                 timezone,
	}, nil
}
