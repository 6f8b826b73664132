package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates text from a prompt. When the request carries a Schema
// the response Content is JSON validated against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string

	// Name returns the provider name, e.g. "anthropic".
	Name() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Hint lookups send a single
	// user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness in [0, 1]. Zero leaves the provider
	// default.
	Temperature float64
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
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
	// Name identifies this schema and keys the compiled-schema cache.
	// Kebab-case, e.g. "example-sentence".
	Name string

	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the validated JSON object when a Schema was requested and
	// the raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped: StopEnd for responses
	// that reach the caller.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
	StopFiltered  = "filtered"
)

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// completion is a provider reply before the checks shared by all providers.
type completion struct {
	content json.RawMessage
	stop    string
	usage   Usage
	model   string
}

// finish turns a provider reply into a Response. Filtered and truncated
// replies become errors, and structured replies are unfenced and validated
// against req.Schema.
func finish(provider string, req Request, c completion) (*Response, error) {
	switch c.stop {
	case StopFiltered:
		return nil, &ErrContentFiltered{Provider: provider}
	case StopMaxTokens:
		return nil, &ErrMaxTokensExceeded{Content: c.content}
	}

	content := c.content
	if req.Schema != nil {
		content = stripCodeFence(content)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty %s response", provider)}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}

	if c.usage.TotalTokens == 0 {
		c.usage.TotalTokens = c.usage.InputTokens + c.usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      c.usage,
		Model:      c.model,
		StopReason: StopEnd,
	}, nil
}

// stripCodeFence removes a ```json fence that some models put around
// structured output.
func stripCodeFence(raw json.RawMessage) json.RawMessage {
	s := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(s, []byte("```")) {
		return raw
	}
	nl := bytes.IndexByte(s, '\n')
	if nl < 0 {
		return raw
	}
	s = bytes.TrimSpace(s[nl+1:])
	s = bytes.TrimSuffix(s, []byte("```"))
	return json.RawMessage(bytes.TrimSpace(s))
}
