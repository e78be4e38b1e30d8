package places

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/providers/overpass"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

const (
	// maxAttractions caps the returned list regardless of the server-side
	// cap in the Overpass query.
	maxAttractions = 5

	defaultName = "Unnamed attraction"
)

// Service finds tourist attractions near a coordinate.
type Service interface {
	// Fetch returns up to 5 attractions within radiusMeters, in upstream
	// response order. An empty slice means nothing was found nearby; a
	// failed lookup returns an error.
	Fetch(coords types.Coords, radiusMeters int) ([]types.Attraction, error)
}

// TourismProvider defines the interface for point-of-interest providers.
type TourismProvider interface {
	FindTourismElements(latitude, longitude float64, radiusMeters int) (*overpass.InterpreterAPIResponse, error)
}

type placesService struct {
	provider TourismProvider
	titler   cases.Caser
	logger   *slog.Logger
}

// NewService creates a places service backed by the Overpass API.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProvider(overpass.NewClient(logger), logger)
}

// NewServiceWithProvider creates a places service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider TourismProvider, logger *slog.Logger) Service {
	return &placesService{
		provider: provider,
		titler:   cases.Title(language.English),
		logger:   logger.With("component", "places-service"),
	}
}

func (s *placesService) Fetch(coords types.Coords, radiusMeters int) ([]types.Attraction, error) {
	apiResp, err := s.provider.FindTourismElements(coords.Latitude, coords.Longitude, radiusMeters)
	if err != nil {
		s.logger.Error("places lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch tourist places: %w", err)
	}

	elements := apiResp.Elements
	if len(elements) > maxAttractions {
		elements = elements[:maxAttractions]
	}

	attractions := make([]types.Attraction, 0, len(elements))
	for _, element := range elements {
		attractions = append(attractions, s.translateElement(element))
	}

	return attractions, nil
}

// translateElement converts a raw Overpass element to a domain Attraction.
func (s *placesService) translateElement(element overpass.Element) types.Attraction {
	name := element.Tags["name"]
	if name == "" {
		name = defaultName
	}

	tourismType := element.Tags["tourism"]
	if tourismType == "" {
		tourismType = "attraction"
	}

	lat, lon := element.Coordinates()

	return types.Attraction{
		Name:        name,
		Type:        s.titler.String(strings.ReplaceAll(tourismType, "_", " ")),
		Latitude:    lat,
		Longitude:   lon,
		Website:     element.Tags["website"],
		Description: element.Tags["description"],
	}
}
