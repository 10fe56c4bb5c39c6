package constants

import "fmt"

const (
	// PendingResponse is held by a chat record until the completion step resolves.
	PendingResponse = "Pending"

	// EmptyCompletionResponse replaces a successful but empty completion.
	EmptyCompletionResponse = "Sorry, I couldn't generate a response."
)

// FallbackResponse is the reply stored when the completion API could not be reached.
func FallbackResponse(message string) string {
	return fmt.Sprintf("Please try again later to interact with the ChatBot. This is mock response for message \"%s\"", message)
}
