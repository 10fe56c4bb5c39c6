package constants

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

const (
	OpenAIModel   = "gpt-3.5-turbo"
	OpenAIBaseURL = "https://api.openai.com/v1"

	GeminiModel = "gemini-1.5-flash"
)
