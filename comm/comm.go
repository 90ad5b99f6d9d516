// Package comm defines the Comm capability: agent-to-agent messaging over a
// pluggable transport with topic subscriptions.
package comm

import (
	"context"
	"time"
)

// Handler implements one inter-agent transport.
type Handler interface {
	Name() string
	Version() string
	Connect(ctx context.Context, config map[string]string) error
	Disconnect(ctx context.Context) error
	IsConnected() bool
	Send(ctx context.Context, msg Message) error
	Subscribe(ctx context.Context, topic string) error
	Unsubscribe(ctx context.Context, topic string) error
	Register(ctx context.Context, agentID string, capabilities []string) error
	Deregister(ctx context.Context) error
	// Receive returns inbound messages for subscribed topics and direct
	// messages. The handler closes the channel on disconnect.
	Receive(ctx context.Context) (<-chan Message, error)
}

// Message is one inter-agent message.
type Message struct {
	ID             string
	From           string
	To             string
	Topic          string
	ConversationID string
	Type           string
	Content        string
	Metadata       map[string]string
	Timestamp      time.Time
	// HumanInjected marks messages a person typed into the conversation.
	HumanInjected bool
	HumanID       string
}
