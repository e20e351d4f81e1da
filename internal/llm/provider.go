// Package llm is the collaborator interface to the text-generation
// service: a role-tagged message sequence in, generated text out,
// synchronously. The core never depends on streaming or partial
// output.
package llm

import "context"

// Provider is the abstraction over a text-generation backend.
type Provider interface {
	// Generate sends the prompt to the backend and returns the
	// generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is
	// configured to use.
	ModelID() string
}

// Request describes what to send to the text-generation service.
type Request struct {
	// System is the system instruction. Sets the model's role and
	// constraints.
	System string

	// Messages is the conversation. For single-turn generation (the
	// common case here) this contains one user message.
	Messages []Message

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Range 0.0 - 1.0; 0 when unset.
	Temperature float64
}

// Message is a single role-tagged message.
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

// Response holds the generated output.
type Response struct {
	// Text is the generated text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
