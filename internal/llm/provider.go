package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call. Implementations
// wrap a vendor SDK; the question source and the preview command only see
// this interface.
type Provider interface {
	// Generate sends req and returns the model output. With req.Schema set,
	// Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model name, after friendly-name mapping.
	ModelID() string
}

// Request is a single-turn prompt plus generation settings.
type Request struct {
	System   string
	Messages []Message

	// Schema asks the provider for native structured output. A nil Schema
	// yields the raw text wrapped as a JSON string.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Prompt builds the usual question-set request: one system prompt and one
// user turn.
func Prompt(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Schema is a JSON Schema with a name. Name doubles as the OpenAI schema
// name and the Gemini/Anthropic output label, so keep it kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the vendor finish reason folded into the two cases the
// callers act on.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage counts tokens for one call. It feeds the audit log and the cost
// table in `llm stats`.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
