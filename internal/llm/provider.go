package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The response Content will be the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system instruction. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. Every operation here is single
	// turn, so this holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Fingerprint identifies a request by content. Two requests with the same
// fingerprint would be sent to the provider byte for byte identically.
func (r Request) Fingerprint() string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	// Encoding errors are impossible for these field types; a schema with
	// an unencodable definition is rejected later by the provider.
	_ = enc.Encode(r.System)
	_ = enc.Encode(r.Messages)
	if r.Schema != nil {
		_ = enc.Encode(r.Schema.Name)
		_ = enc.Encode(r.Schema.Definition)
	}
	_ = enc.Encode(r.MaxTokens)
	_ = enc.Encode(r.Temperature)
	return hex.EncodeToString(h.Sum(nil))
}

// finishContent runs the checks every provider applies to the model's text
// once a call has returned: truncation, code fences and the schema.
func finishContent(req Request, content json.RawMessage, stopReason string) (json.RawMessage, error) {
	if stopReason == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if req.Schema == nil {
		return content, nil
	}
	content = StripCodeFence(content)
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI and
	// as the validator cache key). Kebab-case, e.g. "proof-synthesis".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map. Lists inside it
	// ("required", "enum") are []any.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string

	// Cached is set when the response was served from the request cache
	// without reaching the provider.
	Cached bool
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
