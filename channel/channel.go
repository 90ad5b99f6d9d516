// Package channel defines the Channel capability: a bidirectional bridge to an
// external messaging platform.
package channel

import (
	"context"
	"time"
)

// Handler connects to one messaging platform.
type Handler interface {
	// ID names the platform, e.g. "telegram".
	ID() string
	Connect(ctx context.Context, config map[string]string) error
	Disconnect(ctx context.Context) error
	// Send delivers env and returns the platform's message id.
	Send(ctx context.Context, env Envelope) (string, error)
	// Receive returns inbound messages. The handler closes the channel when
	// no more messages will arrive.
	Receive(ctx context.Context) (<-chan Envelope, error)
}

// Sender identifies the author of a message.
type Sender struct {
	ID   string
	Name string
	Role string
	Bot  bool
}

// Attachment references media carried with a message.
type Attachment struct {
	Type     string
	URL      string
	Filename string
	MimeType string
	Size     int64
}

// Envelope is a message crossing the channel boundary in either direction.
type Envelope struct {
	MessageID   string
	ChannelID   string
	Sender      Sender
	Text        string
	Attachments []Attachment
	ReplyTo     string
	// PlatformData is opaque to the host.
	PlatformData []byte
	Metadata     map[string]string
	Timestamp    time.Time
}
