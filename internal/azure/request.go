// Package azure talks to an Azure OpenAI chat-completions deployment: it
// builds the fixed two-message payload, posts it, and interprets the raw
// response body.
package azure

// Params are the sampling parameters sent with every request.
type Params struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// DefaultParams are the values the tool sends unless overridden by flag or
// config file.
func DefaultParams() Params {
	return Params{Temperature: 0.7, TopP: 0.95, MaxTokens: 16384}
}

// Content is one block of message content. Only text blocks exist here.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is a role-tagged entry in the conversation.
type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

// ChatRequest is the chat-completions wire payload.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	TopP        float32   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
}

// NewChatRequest builds the payload: the system prompt followed by the user
// input. Text of any size is passed through unvalidated.
func NewChatRequest(systemPrompt, input string, p Params) ChatRequest {
	return ChatRequest{
		Messages: []Message{
			{Role: "system", Content: []Content{{Type: "text", Text: systemPrompt}}},
			{Role: "user", Content: []Content{{Type: "text", Text: input}}},
		},
		Temperature: p.Temperature,
		TopP:        p.TopP,
		MaxTokens:   p.MaxTokens,
	}
}
