package llm

import "fmt"

const extractPlaceSystemPrompt = "Extract only the location/place name from the user's query. " +
	"Return just the place name, nothing else. If no place is mentioned, return 'unknown'."

const composeReplySystemPrompt = "You are a helpful tourism assistant. " +
	"Create a friendly, concise response based on the data provided. " +
	"Include all relevant information but keep it conversational."

func buildComposeReplyUserPrompt(placeName, dataContext string) string {
	return fmt.Sprintf("User query: %s\n\nData:\n%s\n\nCreate a natural response.", placeName, dataContext)
}
