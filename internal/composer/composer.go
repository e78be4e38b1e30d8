package composer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/llm"
	"github.com/rmxvidhya/Multi-agent-Tourism-System/internal/types"
)

// fallbackPrefix prefixes the structured context when the completion
// service is unavailable. This is the only deterministic reply path.
const fallbackPrefix = "Here's what I found: "

// Composer produces the final natural-language reply from gathered results.
type Composer interface {
	Compose(ctx context.Context, result types.QueryResult, intent types.Intent) string
}

type composer struct {
	llmClient llm.Client
	logger    *slog.Logger
}

func NewComposer(llmClient llm.Client, logger *slog.Logger) Composer {
	return &composer{
		llmClient: llmClient,
		logger:    logger.With("component", "response-composer"),
	}
}

// Compose builds a line-per-fact context from the result, skipping any
// failure markers, and asks the completion service to phrase it. On failure
// it returns the fallback prefix plus the context verbatim.
func (c *composer) Compose(ctx context.Context, result types.QueryResult, intent types.Intent) string {
	dataContext := buildContext(result)

	reply, err := c.llmClient.ComposeReply(ctx, intent.PlaceName, dataContext)
	if err != nil {
		c.logger.Error("reply composition failed, using fallback", "error", err)
		return fallbackPrefix + dataContext
	}
	return reply
}

func buildContext(result types.QueryResult) string {
	var lines []string

	lines = append(lines, "Location: "+locationName(result.Place))

	if w := result.Weather; w != nil && !w.Failed() {
		lines = append(lines, fmt.Sprintf("Weather: %s%s, %s, %d%% chance of rain",
			formatTemperature(w.Temperature), w.TemperatureUnit, w.Description, w.PrecipitationProbability))
	}

	if p := result.Places; p != nil && !p.Failed() && len(p.Attractions) > 0 {
		pairs := make([]string, 0, len(p.Attractions))
		for _, attraction := range p.Attractions {
			pairs = append(pairs, fmt.Sprintf("%s (%s)", attraction.Name, attraction.Type))
		}
		lines = append(lines, "Tourist attractions: "+strings.Join(pairs, ", "))
	}

	return strings.Join(lines, "\n")
}

func locationName(place *types.Place) string {
	if place == nil {
		return ""
	}
	if place.FullName != "" {
		return place.FullName
	}
	return place.Name
}

func formatTemperature(t *float64) string {
	if t == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*t, 'f', -1, 64)
}
