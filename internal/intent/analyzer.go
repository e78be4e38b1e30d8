package intent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/llm"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

// Keyword sets deciding which lookups a query asks for. Matching is
// case-insensitive substring containment; the two sets are independent.
var (
	weatherTerms = []string{"weather", "temperature", "rain", "forecast", "climate", "hot", "cold"}
	placesTerms  = []string{"visit", "places", "attractions", "see", "do", "trip", "tourism", "sightseeing"}
)

// noPlaceSentinel is the token the extraction prompt instructs the model to
// return when the query names no location. Compared case-insensitively.
const noPlaceSentinel = "unknown"

// Analyzer inspects a raw user query and produces an intent record.
type Analyzer interface {
	Analyze(ctx context.Context, query string) types.Intent
}

type analyzer struct {
	llmClient llm.Client
	logger    *slog.Logger
}

func NewAnalyzer(llmClient llm.Client, logger *slog.Logger) Analyzer {
	return &analyzer{
		llmClient: llmClient,
		logger:    logger.With("component", "intent-analyzer"),
	}
}

// Analyze determines which lookups the query wants and extracts the place
// name. Extraction delegates to the completion service exactly once; a
// failed or empty extraction yields an empty PlaceName rather than an error.
func (a *analyzer) Analyze(ctx context.Context, query string) types.Intent {
	queryLower := strings.ToLower(query)

	return types.Intent{
		WantsWeather: containsAny(queryLower, weatherTerms),
		WantsPlaces:  containsAny(queryLower, placesTerms),
		PlaceName:    a.extractPlaceName(ctx, query),
	}
}

func (a *analyzer) extractPlaceName(ctx context.Context, query string) string {
	name, err := a.llmClient.ExtractPlaceName(ctx, query)
	if err != nil {
		a.logger.Error("place extraction failed", "error", err)
		return ""
	}

	name = strings.TrimSpace(name)
	if strings.EqualFold(name, noPlaceSentinel) {
		return ""
	}
	return name
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
