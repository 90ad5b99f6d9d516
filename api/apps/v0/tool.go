package appsv0

type NameResponse struct {
	Name string `cbor:"name,omitempty"`
}

func (x *NameResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type DescriptionResponse struct {
	Description string `cbor:"description,omitempty"`
}

func (x *DescriptionResponse) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

// SchemaResponse carries the JSON Schema describing accepted input.
type SchemaResponse struct {
	Schema []byte `cbor:"schema,omitempty"`
}

func (x *SchemaResponse) GetSchema() []byte {
	if x != nil {
		return x.Schema
	}
	return nil
}

// ExecuteRequest carries JSON-encoded tool input.
type ExecuteRequest struct {
	Input []byte `cbor:"input,omitempty"`
}

func (x *ExecuteRequest) GetInput() []byte {
	if x != nil {
		return x.Input
	}
	return nil
}

// ExecuteResponse carries tool output; IsError marks Content as an error message.
type ExecuteResponse struct {
	Content string `cbor:"content,omitempty"`
	IsError bool   `cbor:"is_error,omitempty"`
}

func (x *ExecuteResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ExecuteResponse) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

type ApprovalResponse struct {
	RequiresApproval bool `cbor:"requires_approval,omitempty"`
}

func (x *ApprovalResponse) GetRequiresApproval() bool {
	if x != nil {
		return x.RequiresApproval
	}
	return false
}
