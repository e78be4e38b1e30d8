package places

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/providers/overpass"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

type mockTourismProvider struct {
	response *overpass.InterpreterAPIResponse
	err      error

	gotRadius int
}

func (m *mockTourismProvider) FindTourismElements(latitude, longitude float64, radiusMeters int) (*overpass.InterpreterAPIResponse, error) {
	m.gotRadius = radiusMeters
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(f float64) *float64 { return &f }

func TestPlacesService_Fetch_TruncatesToFive(t *testing.T) {
	// A misbehaving upstream may ignore the server-side cap
	elements := make([]overpass.Element, 12)
	for i := range elements {
		elements[i] = overpass.Element{
			Type: "node",
			Tags: map[string]string{"name": fmt.Sprintf("Attraction %d", i), "tourism": "museum"},
		}
	}

	provider := &mockTourismProvider{response: &overpass.InterpreterAPIResponse{Elements: elements}}
	service := NewServiceWithProvider(provider, testLogger())

	attractions, err := service.Fetch(types.NewCoords(48.8566, 2.3522), 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(attractions) != 5 {
		t.Fatalf("got %d attractions, want 5", len(attractions))
	}

	// Upstream order preserved, not re-sorted
	for i, a := range attractions {
		want := fmt.Sprintf("Attraction %d", i)
		if a.Name != want {
			t.Errorf("attractions[%d].Name = %q, want %q", i, a.Name, want)
		}
	}

	if provider.gotRadius != 5000 {
		t.Errorf("radius = %d, want 5000", provider.gotRadius)
	}
}

func TestPlacesService_Fetch_TranslatesElements(t *testing.T) {
	provider := &mockTourismProvider{
		response: &overpass.InterpreterAPIResponse{
			Elements: []overpass.Element{
				{
					Type: "node",
					Lat:  floatPtr(48.8606),
					Lon:  floatPtr(2.3376),
					Tags: map[string]string{
						"name":        "Louvre",
						"tourism":     "museum",
						"website":     "https://www.louvre.fr",
						"description": "World's largest art museum",
					},
				},
				{
					// Nameless element with an underscored category
					Type: "node",
					Tags: map[string]string{"tourism": "theme_park"},
				},
				{
					// Way with a center point instead of lat/lon
					Type:   "way",
					Center: &overpass.Center{Lat: 48.8584, Lon: 2.2945},
					Tags:   map[string]string{"name": "Champ de Mars", "tourism": "attraction"},
				},
			},
		},
	}
	service := NewServiceWithProvider(provider, testLogger())

	attractions, err := service.Fetch(types.NewCoords(48.8566, 2.3522), 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attractions) != 3 {
		t.Fatalf("got %d attractions, want 3", len(attractions))
	}

	louvre := attractions[0]
	if louvre.Name != "Louvre" {
		t.Errorf("Name = %q, want Louvre", louvre.Name)
	}
	if louvre.Type != "Museum" {
		t.Errorf("Type = %q, want Museum", louvre.Type)
	}
	if louvre.Website != "https://www.louvre.fr" {
		t.Errorf("Website = %q", louvre.Website)
	}
	if louvre.Description != "World's largest art museum" {
		t.Errorf("Description = %q", louvre.Description)
	}
	if louvre.Latitude == nil || *louvre.Latitude != 48.8606 {
		t.Errorf("Latitude = %v, want 48.8606", louvre.Latitude)
	}

	unnamed := attractions[1]
	if unnamed.Name != "Unnamed attraction" {
		t.Errorf("Name = %q, want %q", unnamed.Name, "Unnamed attraction")
	}
	if unnamed.Type != "Theme Park" {
		t.Errorf("Type = %q, want %q", unnamed.Type, "Theme Park")
	}
	if unnamed.Latitude != nil || unnamed.Longitude != nil {
		t.Error("expected absent coordinates for element without position")
	}
	if unnamed.Website != "" || unnamed.Description != "" {
		t.Error("optional fields must be absent when upstream omits them")
	}

	way := attractions[2]
	if way.Latitude == nil || *way.Latitude != 48.8584 {
		t.Errorf("way Latitude = %v, want center 48.8584", way.Latitude)
	}
}

func TestPlacesService_Fetch_EmptyAndFailure(t *testing.T) {
	// Zero attractions found: empty slice, no error
	provider := &mockTourismProvider{response: &overpass.InterpreterAPIResponse{}}
	service := NewServiceWithProvider(provider, testLogger())

	attractions, err := service.Fetch(types.NewCoords(0, 0), 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attractions) != 0 {
		t.Errorf("got %d attractions, want 0", len(attractions))
	}

	// Lookup failed: error, distinguishable from the empty case
	failing := &mockTourismProvider{err: errors.New("gateway timeout")}
	service = NewServiceWithProvider(failing, testLogger())

	attractions, err = service.Fetch(types.NewCoords(0, 0), 5000)
	if err == nil {
		t.Error("expected error but got none")
	}
	if attractions != nil {
		t.Errorf("expected nil attractions on failure, got %v", attractions)
	}
}
