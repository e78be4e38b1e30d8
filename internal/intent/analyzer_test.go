package intent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

// mockLLM returns a canned extraction result
type mockLLM struct {
	place string
	err   error
}

func (m *mockLLM) ExtractPlaceName(ctx context.Context, query string) (string, error) {
	return m.place, m.err
}

func (m *mockLLM) ComposeReply(ctx context.Context, placeName, dataContext string) (string, error) {
	return "", errors.New("not used")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyzer_Analyze_Flags(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantsWeather bool
		wantsPlaces  bool
	}{
		{
			name:         "weather only",
			query:        "What's the weather like in Paris?",
			wantsWeather: true,
			wantsPlaces:  false,
		},
		{
			name:         "places only",
			query:        "What attractions are in Rome?",
			wantsWeather: false,
			wantsPlaces:  true,
		},
		{
			name:         "both",
			query:        "Is it hot in Kyoto and what should I see there?",
			wantsWeather: true,
			wantsPlaces:  true,
		},
		{
			name:         "neither",
			query:        "Tell me about Lisbon",
			wantsWeather: false,
			wantsPlaces:  false,
		},
		{
			name:         "terms are case-insensitive",
			query:        "FORECAST for SIGHTSEEING in Oslo",
			wantsWeather: true,
			wantsPlaces:  true,
		},
		{
			name:         "substring matches count",
			query:        "anecdote", // contains "do"
			wantsWeather: false,
			wantsPlaces:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(&mockLLM{place: "Somewhere"}, testLogger())

			got := a.Analyze(context.Background(), tt.query)

			if got.WantsWeather != tt.wantsWeather {
				t.Errorf("WantsWeather = %v, want %v", got.WantsWeather, tt.wantsWeather)
			}
			if got.WantsPlaces != tt.wantsPlaces {
				t.Errorf("WantsPlaces = %v, want %v", got.WantsPlaces, tt.wantsPlaces)
			}
		})
	}
}

func TestAnalyzer_Analyze_PlaceName(t *testing.T) {
	tests := []struct {
		name       string
		extracted  string
		extractErr error
		want       string
	}{
		{
			name:      "place returned verbatim",
			extracted: "Paris",
			want:      "Paris",
		},
		{
			name:      "surrounding whitespace trimmed",
			extracted: "  Kyoto \n",
			want:      "Kyoto",
		},
		{
			name:      "unknown sentinel becomes absent",
			extracted: "unknown",
			want:      "",
		},
		{
			name:      "sentinel compare is case-insensitive",
			extracted: "Unknown",
			want:      "",
		},
		{
			name:      "empty extraction stays absent",
			extracted: "",
			want:      "",
		},
		{
			name:       "extraction failure is recovered",
			extractErr: errors.New("completion service down"),
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(&mockLLM{place: tt.extracted, err: tt.extractErr}, testLogger())

			got := a.Analyze(context.Background(), "what's the weather?")

			if got.PlaceName != tt.want {
				t.Errorf("PlaceName = %q, want %q", got.PlaceName, tt.want)
			}
		})
	}
}
