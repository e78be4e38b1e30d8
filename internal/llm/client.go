package llm

import "context"

// Client is the completion interface the pipeline depends on. Implementations
// must be safe for concurrent use; every query shares one handle.
type Client interface {
	// ExtractPlaceName returns the place name mentioned in the query, or the
	// literal "unknown" when none is present.
	ExtractPlaceName(ctx context.Context, query string) (string, error)

	// ComposeReply turns the gathered facts into a friendly conversational
	// reply. dataContext is the structured line-per-fact text block.
	ComposeReply(ctx context.Context, placeName, dataContext string) (string, error)
}
