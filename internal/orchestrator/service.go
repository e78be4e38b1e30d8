package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/composer"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/geocoding"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/intent"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/llm"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/places"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/weather"
)

const (
	msgNoPlaceName = "I couldn't identify a place name in your query. " +
		"Please specify which location you'd like information about."
	msgPlaceNotFound = "I don't know if the place '%s' exists, or I couldn't find its location. " +
		"Please check the spelling and try again."
)

// Service is the end-to-end query pipeline: analyze the query, resolve the
// location, gather the requested lookups, compose a reply. The sole entry
// point consumed by the web layer.
type Service interface {
	ProcessRequest(ctx context.Context, query string) types.QueryResult
}

type service struct {
	analyzer     intent.Analyzer
	geocoder     geocoding.Service
	weather      weather.Service
	places       places.Service
	composer     composer.Composer
	radiusMeters int
	logger       *slog.Logger
}

// NewService wires the pipeline with real providers.
func NewService(llmClient llm.Client, radiusMeters int, logger *slog.Logger) Service {
	return NewServiceWithDependencies(
		intent.NewAnalyzer(llmClient, logger),
		geocoding.NewService(logger),
		weather.NewService(logger),
		places.NewService(logger),
		composer.NewComposer(llmClient, logger),
		radiusMeters,
		logger,
	)
}

// NewServiceWithDependencies wires the pipeline with custom components.
// This is useful for testing with mocks.
func NewServiceWithDependencies(
	analyzer intent.Analyzer,
	geocoder geocoding.Service,
	weatherSvc weather.Service,
	placesSvc places.Service,
	replyComposer composer.Composer,
	radiusMeters int,
	logger *slog.Logger,
) Service {
	return &service{
		analyzer:     analyzer,
		geocoder:     geocoder,
		weather:      weatherSvc,
		places:       placesSvc,
		composer:     replyComposer,
		radiusMeters: radiusMeters,
		logger:       logger.With("component", "orchestrator"),
	}
}

// ProcessRequest runs the pipeline for one query. Steps execute strictly in
// sequence; weather and places failures are recovered into markers while a
// missing place name or an unresolvable location ends the query early.
func (s *service) ProcessRequest(ctx context.Context, query string) types.QueryResult {
	queryIntent := s.analyzer.Analyze(ctx, query)

	if queryIntent.PlaceName == "" {
		s.logger.Info("no place name extracted", "query", query)
		return types.QueryResult{
			Success: false,
			Message: msgNoPlaceName,
		}
	}

	place, err := s.geocoder.Resolve(queryIntent.PlaceName)
	if err != nil || place == nil {
		return types.QueryResult{
			Success: false,
			Message: fmt.Sprintf(msgPlaceNotFound, queryIntent.PlaceName),
		}
	}

	result := types.QueryResult{
		Success: true,
		Place:   place,
	}

	// Both lookups run to completion when requested; a failure in one is
	// recorded as a marker and never blocks the other.
	if queryIntent.WantsWeather {
		summary, err := s.weather.Fetch(place.Coordinates)
		if err != nil {
			result.Weather = types.NewFailedWeatherSummary(err.Error())
		} else {
			result.Weather = summary
		}
	}

	if queryIntent.WantsPlaces {
		attractions, err := s.places.Fetch(place.Coordinates, s.radiusMeters)
		if err != nil {
			result.Places = types.NewFailedPlacesResult(err.Error())
		} else {
			result.Places = &types.PlacesResult{Attractions: attractions}
		}
	}

	result.Response = s.composer.Compose(ctx, result, queryIntent)

	return result
}
