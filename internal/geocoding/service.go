package geocoding

import (
	"fmt"
	"log/slog"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/providers/nominatim"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

// Service resolves free-text place names to coordinates.
type Service interface {
	// Resolve returns the best match for the place name, or nil when the
	// geocoder found nothing. Transport and parse failures are returned as
	// errors; callers treat a nil place and an error identically.
	Resolve(placeName string) (*types.Place, error)
}

// SearchProvider defines the interface for geocoding search providers.
type SearchProvider interface {
	Search(query string, limit int) ([]nominatim.SearchResult, error)
}

type geocodingService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewService creates a geocoding service backed by Nominatim.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(nominatim.NewClient(logger), logger)
}

// NewServiceWithProvider creates a geocoding service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodingService{
		provider: provider,
		logger:   logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) Resolve(placeName string) (*types.Place, error) {
	results, err := s.provider.Search(placeName, 1)
	if err != nil {
		s.logger.Error("geocoding lookup failed", "place_name", placeName, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", placeName, err)
	}

	if len(results) == 0 {
		s.logger.Info("no geocoding match", "place_name", placeName)
		return nil, nil
	}

	first := results[0]
	lat, lon, err := first.Coordinates()
	if err != nil {
		s.logger.Error("geocoding response unparseable", "place_name", placeName, "error", err)
		return nil, fmt.Errorf("failed to parse geocoding result for %q: %w", placeName, err)
	}

	return &types.Place{
		Name:        placeName,
		FullName:    first.DisplayName,
		Coordinates: types.NewCoords(lat, lon),
	}, nil
}
