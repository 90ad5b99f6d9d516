package appsv0

type IdResponse struct {
	Id string `cbor:"id,omitempty"`
}

func (x *IdResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ChannelConnectRequest struct {
	Config map[string]string `cbor:"config,omitempty"`
}

func (x *ChannelConnectRequest) GetConfig() map[string]string {
	if x != nil {
		return x.Config
	}
	return nil
}

type ChannelConnectResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *ChannelConnectResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ChannelDisconnectResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *ChannelDisconnectResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

// MessageSender identifies who authored a channel envelope.
type MessageSender struct {
	Id   string `cbor:"id,omitempty"`
	Name string `cbor:"name,omitempty"`
	Role string `cbor:"role,omitempty"`
	Bot  bool   `cbor:"bot,omitempty"`
}

func (x *MessageSender) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MessageSender) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MessageSender) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *MessageSender) GetBot() bool {
	if x != nil {
		return x.Bot
	}
	return false
}

// Attachment references a file carried with a channel envelope.
type Attachment struct {
	Type     string `cbor:"type,omitempty"`
	Url      string `cbor:"url,omitempty"`
	Filename string `cbor:"filename,omitempty"`
	MimeType string `cbor:"mime_type,omitempty"`
	Size     int64  `cbor:"size,omitempty"`
}

func (x *Attachment) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Attachment) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Attachment) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Attachment) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Attachment) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

// ChannelEnvelope is one message exchanged with an external messaging platform.
type ChannelEnvelope struct {
	MessageId    string            `cbor:"message_id,omitempty"`
	ChannelId    string            `cbor:"channel_id,omitempty"`
	Sender       *MessageSender    `cbor:"sender,omitempty"`
	Text         string            `cbor:"text,omitempty"`
	Attachments  []*Attachment     `cbor:"attachments,omitempty"`
	ReplyTo      string            `cbor:"reply_to,omitempty"`
	PlatformData []byte            `cbor:"platform_data,omitempty"`
	Metadata     map[string]string `cbor:"metadata,omitempty"`
	Timestamp    int64             `cbor:"timestamp,omitempty"`
}

func (x *ChannelEnvelope) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ChannelEnvelope) GetChannelId() string {
	if x != nil {
		return x.ChannelId
	}
	return ""
}

func (x *ChannelEnvelope) GetSender() *MessageSender {
	if x != nil {
		return x.Sender
	}
	return nil
}

func (x *ChannelEnvelope) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ChannelEnvelope) GetAttachments() []*Attachment {
	if x != nil {
		return x.Attachments
	}
	return nil
}

func (x *ChannelEnvelope) GetReplyTo() string {
	if x != nil {
		return x.ReplyTo
	}
	return ""
}

func (x *ChannelEnvelope) GetPlatformData() []byte {
	if x != nil {
		return x.PlatformData
	}
	return nil
}

func (x *ChannelEnvelope) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *ChannelEnvelope) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

type ChannelSendRequest struct {
	Envelope *ChannelEnvelope `cbor:"envelope,omitempty"`
}

func (x *ChannelSendRequest) GetEnvelope() *ChannelEnvelope {
	if x != nil {
		return x.Envelope
	}
	return nil
}

type ChannelSendResponse struct {
	MessageId string `cbor:"message_id,omitempty"`
	Error     string `cbor:"error,omitempty"`
}

func (x *ChannelSendResponse) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *ChannelSendResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}
