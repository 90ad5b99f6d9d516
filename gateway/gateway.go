// Package gateway defines the Gateway capability: a streaming proxy to a
// language model provider.
package gateway

import "context"

// Event types emitted on a gateway stream.
const (
	EventText     = "text"
	EventToolCall = "tool_call"
	EventThinking = "thinking"
	EventError    = "error"
	EventDone     = "done"
)

// Handler proxies chat completions.
type Handler interface {
	// Stream starts a completion and returns its events. The handler closes
	// the channel after the final event.
	Stream(ctx context.Context, req Request) (<-chan Event, error)
	// Cancel stops the in-flight request with the given id.
	Cancel(ctx context.Context, requestID string) error
}

// Poller is implemented by handlers that buffer events for hosts that cannot
// hold a stream open.
type Poller interface {
	Poll(ctx context.Context, requestID string) (events []Event, complete bool, err error)
}

// Message is one turn of the conversation.
type Message struct {
	Role       string
	Content    string
	ToolCallID string
	// ToolCalls is the provider-neutral JSON encoding of requested calls.
	ToolCalls string
}

// ToolDef advertises a tool the model may call.
type ToolDef struct {
	Name        string
	Description string
	InputSchema []byte
}

// User identifies who the completion is for.
type User struct {
	ID    string
	Plan  string
	Token string
}

// Request is a chat completion request.
type Request struct {
	RequestID   string
	Messages    []Message
	Tools       []ToolDef
	MaxTokens   int
	Temperature float64
	System      string
	User        User
	// Model overrides the handler's default model when set.
	Model string
}

// Event is one streamed fragment of a completion.
type Event struct {
	Type      string
	Content   string
	Model     string
	RequestID string
}
