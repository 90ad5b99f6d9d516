package appsv0

// CommMessage is one inter-agent communication message.
type CommMessage struct {
	Id             string            `cbor:"id,omitempty"`
	From           string            `cbor:"from,omitempty"`
	To             string            `cbor:"to,omitempty"`
	Topic          string            `cbor:"topic,omitempty"`
	ConversationId string            `cbor:"conversation_id,omitempty"`
	Type           string            `cbor:"type,omitempty"`
	Content        string            `cbor:"content,omitempty"`
	Metadata       map[string]string `cbor:"metadata,omitempty"`
	Timestamp      int64             `cbor:"timestamp,omitempty"`
	HumanInjected  bool              `cbor:"human_injected,omitempty"`
	HumanId        string            `cbor:"human_id,omitempty"`
}

func (x *CommMessage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CommMessage) GetFrom() string {
	if x != nil {
		return x.From
	}
	return ""
}

func (x *CommMessage) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *CommMessage) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *CommMessage) GetConversationId() string {
	if x != nil {
		return x.ConversationId
	}
	return ""
}

func (x *CommMessage) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *CommMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *CommMessage) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *CommMessage) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *CommMessage) GetHumanInjected() bool {
	if x != nil {
		return x.HumanInjected
	}
	return false
}

func (x *CommMessage) GetHumanId() string {
	if x != nil {
		return x.HumanId
	}
	return ""
}

type CommNameResponse struct {
	Name string `cbor:"name,omitempty"`
}

func (x *CommNameResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CommVersionResponse struct {
	Version string `cbor:"version,omitempty"`
}

func (x *CommVersionResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type CommConnectRequest struct {
	Config map[string]string `cbor:"config,omitempty"`
}

func (x *CommConnectRequest) GetConfig() map[string]string {
	if x != nil {
		return x.Config
	}
	return nil
}

type CommConnectResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommConnectResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommDisconnectResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommDisconnectResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommIsConnectedResponse struct {
	Connected bool `cbor:"connected,omitempty"`
}

func (x *CommIsConnectedResponse) GetConnected() bool {
	if x != nil {
		return x.Connected
	}
	return false
}

type CommSendRequest struct {
	Message *CommMessage `cbor:"message,omitempty"`
}

func (x *CommSendRequest) GetMessage() *CommMessage {
	if x != nil {
		return x.Message
	}
	return nil
}

type CommSendResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommSendResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommSubscribeRequest struct {
	Topic string `cbor:"topic,omitempty"`
}

func (x *CommSubscribeRequest) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

type CommSubscribeResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommSubscribeResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommUnsubscribeRequest struct {
	Topic string `cbor:"topic,omitempty"`
}

func (x *CommUnsubscribeRequest) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

type CommUnsubscribeResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommUnsubscribeResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommRegisterRequest struct {
	AgentId      string   `cbor:"agent_id,omitempty"`
	Capabilities []string `cbor:"capabilities,omitempty"`
}

func (x *CommRegisterRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *CommRegisterRequest) GetCapabilities() []string {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

type CommRegisterResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommRegisterResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type CommDeregisterResponse struct {
	Error string `cbor:"error,omitempty"`
}

func (x *CommDeregisterResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}
