package appsv0

// GatewayMessage is one role-tagged entry of a chat transcript.
type GatewayMessage struct {
	Role       string `cbor:"role,omitempty"`
	Content    string `cbor:"content,omitempty"`
	ToolCallId string `cbor:"tool_call_id,omitempty"`
	ToolCalls  string `cbor:"tool_calls,omitempty"`
}

func (x *GatewayMessage) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *GatewayMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *GatewayMessage) GetToolCallId() string {
	if x != nil {
		return x.ToolCallId
	}
	return ""
}

func (x *GatewayMessage) GetToolCalls() string {
	if x != nil {
		return x.ToolCalls
	}
	return ""
}

// GatewayToolDef describes a tool the model may call.
type GatewayToolDef struct {
	Name        string `cbor:"name,omitempty"`
	Description string `cbor:"description,omitempty"`
	InputSchema []byte `cbor:"input_schema,omitempty"`
}

func (x *GatewayToolDef) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *GatewayToolDef) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *GatewayToolDef) GetInputSchema() []byte {
	if x != nil {
		return x.InputSchema
	}
	return nil
}

// UserContext identifies the end user a gateway request is made for.
type UserContext struct {
	UserId string `cbor:"user_id,omitempty"`
	Plan   string `cbor:"plan,omitempty"`
	Token  string `cbor:"token,omitempty"`
}

func (x *UserContext) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UserContext) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

func (x *UserContext) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

// GatewayRequest is a chat completion request proxied through the gateway.
type GatewayRequest struct {
	RequestId   string            `cbor:"request_id,omitempty"`
	Messages    []*GatewayMessage `cbor:"messages,omitempty"`
	Tools       []*GatewayToolDef `cbor:"tools,omitempty"`
	MaxTokens   int32             `cbor:"max_tokens,omitempty"`
	Temperature float64           `cbor:"temperature,omitempty"`
	System      string            `cbor:"system,omitempty"`
	User        *UserContext      `cbor:"user,omitempty"`
	Model       string            `cbor:"model,omitempty"`
}

func (x *GatewayRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *GatewayRequest) GetMessages() []*GatewayMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *GatewayRequest) GetTools() []*GatewayToolDef {
	if x != nil {
		return x.Tools
	}
	return nil
}

func (x *GatewayRequest) GetMaxTokens() int32 {
	if x != nil {
		return x.MaxTokens
	}
	return 0
}

func (x *GatewayRequest) GetTemperature() float64 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

func (x *GatewayRequest) GetSystem() string {
	if x != nil {
		return x.System
	}
	return ""
}

func (x *GatewayRequest) GetUser() *UserContext {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *GatewayRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

// GatewayEvent is one streamed model event (text, tool call, thinking, error or done).
type GatewayEvent struct {
	Type      string `cbor:"type,omitempty"`
	Content   string `cbor:"content,omitempty"`
	Model     string `cbor:"model,omitempty"`
	RequestId string `cbor:"request_id,omitempty"`
}

func (x *GatewayEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *GatewayEvent) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *GatewayEvent) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *GatewayEvent) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type PollRequest struct {
	RequestId string `cbor:"request_id,omitempty"`
}

func (x *PollRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type PollResponse struct {
	Events   []*GatewayEvent `cbor:"events,omitempty"`
	Complete bool            `cbor:"complete,omitempty"`
}

func (x *PollResponse) GetEvents() []*GatewayEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *PollResponse) GetComplete() bool {
	if x != nil {
		return x.Complete
	}
	return false
}

type CancelRequest struct {
	RequestId string `cbor:"request_id,omitempty"`
}

func (x *CancelRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type CancelResponse struct {
	Cancelled bool   `cbor:"cancelled,omitempty"`
	Error     string `cbor:"error,omitempty"`
}

func (x *CancelResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

func (x *CancelResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}
