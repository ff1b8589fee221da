package ai

import "context"

// Provider abstracts a text completion backend. The default backend is the
// mock provider; the tool services fall back to their local template engines
// when the provider fails or is absent.
type Provider interface {
	// Complete sends a prompt and returns the generated text.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation so far. For single-turn tools this is
	// one user message.
	Messages []Message

	// MaxTokens caps the response length. Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the backend's output.
type Response struct {
	// Content is the generated text.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
