package gateway

import appsv0 "github.com/louisbranch/capbridge/api/apps/v0"

func requestFromProto(in *appsv0.GatewayRequest) Request {
	req := Request{
		RequestID:   in.GetRequestId(),
		MaxTokens:   int(in.GetMaxTokens()),
		Temperature: in.GetTemperature(),
		System:      in.GetSystem(),
		Model:       in.GetModel(),
		User: User{
			ID:    in.GetUser().GetUserId(),
			Plan:  in.GetUser().GetPlan(),
			Token: in.GetUser().GetToken(),
		},
	}
	for _, m := range in.GetMessages() {
		req.Messages = append(req.Messages, Message{
			Role:       m.GetRole(),
			Content:    m.GetContent(),
			ToolCallID: m.GetToolCallId(),
			ToolCalls:  m.GetToolCalls(),
		})
	}
	for _, tool := range in.GetTools() {
		req.Tools = append(req.Tools, ToolDef{
			Name:        tool.GetName(),
			Description: tool.GetDescription(),
			InputSchema: tool.GetInputSchema(),
		})
	}
	return req
}

// RequestToProto converts a request to its wire form.
func RequestToProto(req Request) *appsv0.GatewayRequest {
	out := &appsv0.GatewayRequest{
		RequestId:   req.RequestID,
		MaxTokens:   int32(req.MaxTokens),
		Temperature: req.Temperature,
		System:      req.System,
		Model:       req.Model,
	}
	if req.User != (User{}) {
		out.User = &appsv0.UserContext{UserId: req.User.ID, Plan: req.User.Plan, Token: req.User.Token}
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, &appsv0.GatewayMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolCalls:  m.ToolCalls,
		})
	}
	for _, tool := range req.Tools {
		out.Tools = append(out.Tools, &appsv0.GatewayToolDef{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}
	return out
}

func eventToProto(ev Event) *appsv0.GatewayEvent {
	return &appsv0.GatewayEvent{
		Type:      ev.Type,
		Content:   ev.Content,
		Model:     ev.Model,
		RequestId: ev.RequestID,
	}
}
