package types

import "testing"

func TestGetWeatherDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Mainly clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Foggy"},
		{48, "Depositing rime fog"},
		{51, "Light drizzle"},
		{53, "Moderate drizzle"},
		{55, "Dense drizzle"},
		{61, "Slight rain"},
		{63, "Moderate rain"},
		{65, "Heavy rain"},
		{71, "Slight snow"},
		{73, "Moderate snow"},
		{75, "Heavy snow"},
		{95, "Thunderstorm"},
	}

	for _, tt := range tests {
		if got := GetWeatherDescription(tt.code); got != tt.want {
			t.Errorf("GetWeatherDescription(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestGetWeatherDescription_UnknownCodes(t *testing.T) {
	// Codes outside the fixed table map to "Unknown", never an error
	for _, code := range []int{4, 40, 50, 56, 77, 80, 96, 99, 100, 9999} {
		if got := GetWeatherDescription(code); got != "Unknown" {
			t.Errorf("GetWeatherDescription(%d) = %q, want %q", code, got, "Unknown")
		}
	}
}

func TestNewFailedWeatherSummary(t *testing.T) {
	summary := NewFailedWeatherSummary("connection refused")

	if !summary.Failed() {
		t.Error("expected failure marker")
	}
	if summary.Error != "Unable to fetch weather data" {
		t.Errorf("Error = %q, want %q", summary.Error, "Unable to fetch weather data")
	}
	if summary.Details != "connection refused" {
		t.Errorf("Details = %q, want %q", summary.Details, "connection refused")
	}
	if summary.Temperature != nil || summary.Description != "" {
		t.Error("failure marker must not carry summary fields")
	}
}

func TestNewFailedPlacesResult(t *testing.T) {
	result := NewFailedPlacesResult("timeout")

	if !result.Failed() {
		t.Error("expected failure marker")
	}
	if result.Error != "Unable to fetch tourist places" {
		t.Errorf("Error = %q, want %q", result.Error, "Unable to fetch tourist places")
	}
	if len(result.Attractions) != 0 {
		t.Errorf("failure result should carry no attractions, got %d", len(result.Attractions))
	}

	// An empty successful result is distinguishable from a failed one
	empty := &PlacesResult{Attractions: []Attraction{}}
	if empty.Failed() {
		t.Error("empty result must not be a failure")
	}
}
