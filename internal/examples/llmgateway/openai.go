package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"github.com/louisbranch/capbridge/gateway"
)

// OpenAIConfig configures the OpenAI Responses provider.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

// OpenAI streams completions through the Responses API.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI returns an OpenAI provider.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAI{client: openai.NewClient(opts...)}, nil
}

func (p *OpenAI) Name() string { return ProviderOpenAI }

func (p *OpenAI) Stream(ctx context.Context, req gateway.Request, emit func(gateway.Event) error) error {
	params := responses.ResponseNewParams{
		Model: req.Model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: openAIInput(req.Messages),
		},
	}
	if req.System != "" {
		params.Instructions = openai.String(req.System)
	}
	if req.MaxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.User.ID != "" {
		params.User = openai.String(req.User.ID)
	}
	if tools := openAITools(req.Tools); len(tools) > 0 {
		params.Tools = tools
	}

	stream := p.client.Responses.NewStreaming(ctx, params)
	defer stream.Close()

	calls := make(map[string]*ToolCall)
	var order []string
	for stream.Next() {
		event := stream.Current()
		switch variant := event.AsAny().(type) {
		case responses.ResponseTextDeltaEvent:
			if err := emit(gateway.Event{Type: gateway.EventText, Content: variant.Delta}); err != nil {
				return err
			}
		case responses.ResponseReasoningSummaryTextDeltaEvent:
			if err := emit(gateway.Event{Type: gateway.EventThinking, Content: variant.Delta}); err != nil {
				return err
			}
		case responses.ResponseReasoningTextDeltaEvent:
			if err := emit(gateway.Event{Type: gateway.EventThinking, Content: variant.Delta}); err != nil {
				return err
			}
		case responses.ResponseOutputItemAddedEvent:
			if variant.Item.Type == "function_call" {
				if _, ok := calls[variant.Item.ID]; !ok {
					order = append(order, variant.Item.ID)
				}
				calls[variant.Item.ID] = &ToolCall{ID: variant.Item.CallID, Name: variant.Item.Name}
			}
		case responses.ResponseFunctionCallArgumentsDeltaEvent:
			if tc, ok := calls[variant.ItemID]; ok {
				tc.Arguments += variant.Delta
			}
		case responses.ResponseOutputItemDoneEvent:
			if variant.Item.Type != "function_call" {
				continue
			}
			tc, ok := calls[variant.Item.ID]
			if !ok {
				continue
			}
			if tc.Name == "" {
				tc.Name = variant.Item.Name
			}
			if err := emit(gateway.Event{Type: gateway.EventToolCall, Content: EncodeToolCall(*tc)}); err != nil {
				return err
			}
			delete(calls, variant.Item.ID)
		case responses.ResponseFailedEvent:
			return fmt.Errorf("openai response failed")
		case responses.ResponseErrorEvent:
			return fmt.Errorf("openai: %s", variant.Message)
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("openai stream: %w", err)
	}
	// Calls the stream never closed are still reported.
	for _, id := range order {
		if tc, ok := calls[id]; ok {
			if err := emit(gateway.Event{Type: gateway.EventToolCall, Content: EncodeToolCall(*tc)}); err != nil {
				return err
			}
		}
	}
	return nil
}

func openAIInput(messages []gateway.Message) []responses.ResponseInputItemUnionParam {
	items := make([]responses.ResponseInputItemUnionParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, responses.EasyInputMessageRoleSystem))
		case "assistant":
			if m.Content != "" {
				items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, responses.EasyInputMessageRoleAssistant))
			}
			for _, tc := range DecodeToolCalls(m.ToolCalls) {
				items = append(items, responses.ResponseInputItemParamOfFunctionCall(tc.Arguments, tc.ID, tc.Name))
			}
		case "tool":
			items = append(items, responses.ResponseInputItemParamOfFunctionCallOutput(m.ToolCallID, m.Content))
		default:
			items = append(items, responses.ResponseInputItemParamOfMessage(m.Content, responses.EasyInputMessageRoleUser))
		}
	}
	return items
}

func openAITools(defs []gateway.ToolDef) []responses.ToolUnionParam {
	var tools []responses.ToolUnionParam
	for _, def := range defs {
		var params map[string]any
		if len(def.InputSchema) > 0 {
			_ = json.Unmarshal(def.InputSchema, &params)
		}
		tools = append(tools, responses.ToolUnionParam{
			OfFunction: &responses.FunctionToolParam{
				Name:        def.Name,
				Description: openai.String(def.Description),
				Parameters:  params,
			},
		})
	}
	return tools
}
