package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/louisbranch/capbridge/gateway"
)

// OllamaConfig configures the Ollama provider. An empty BaseURL reads
// OLLAMA_HOST.
type OllamaConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Ollama streams completions from an Ollama server.
type Ollama struct {
	client *api.Client
}

// NewOllama returns an Ollama provider.
func NewOllama(cfg OllamaConfig) (*Ollama, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("ollama client: %w", err)
		}
		return &Ollama{client: client}, nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ollama{client: api.NewClient(u, httpClient)}, nil
}

func (p *Ollama) Name() string { return ProviderOllama }

func (p *Ollama) Stream(ctx context.Context, req gateway.Request, emit func(gateway.Event) error) error {
	stream := true
	chatReq := &api.ChatRequest{
		Model:    req.Model,
		Messages: ollamaMessages(req.System, req.Messages),
		Tools:    ollamaTools(req.Tools),
		Stream:   &stream,
		Options:  map[string]any{},
	}
	if req.MaxTokens > 0 {
		chatReq.Options["num_predict"] = req.MaxTokens
	}
	if req.Temperature > 0 {
		chatReq.Options["temperature"] = req.Temperature
	}

	err := p.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		if resp.Message.Thinking != "" {
			if err := emit(gateway.Event{Type: gateway.EventThinking, Content: resp.Message.Thinking, Model: resp.Model}); err != nil {
				return err
			}
		}
		if resp.Message.Content != "" {
			if err := emit(gateway.Event{Type: gateway.EventText, Content: resp.Message.Content, Model: resp.Model}); err != nil {
				return err
			}
		}
		for _, tc := range resp.Message.ToolCalls {
			args, err := json.Marshal(tc.Function.Arguments)
			if err != nil {
				args = []byte("{}")
			}
			call := ToolCall{ID: tc.ID, Name: tc.Function.Name, Arguments: string(args)}
			if err := emit(gateway.Event{Type: gateway.EventToolCall, Content: EncodeToolCall(call), Model: resp.Model}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ollama chat: %w", err)
	}
	return nil
}

func ollamaMessages(system string, messages []gateway.Message) []api.Message {
	out := make([]api.Message, 0, len(messages)+1)
	if system != "" {
		out = append(out, api.Message{Role: "system", Content: system})
	}
	for _, m := range messages {
		msg := api.Message{Role: m.Role, Content: m.Content}
		if m.Role == "tool" {
			msg.ToolCallID = m.ToolCallID
		}
		for _, tc := range DecodeToolCalls(m.ToolCalls) {
			var args api.ToolCallFunctionArguments
			if tc.Arguments != "" {
				_ = json.Unmarshal([]byte(tc.Arguments), &args)
			}
			msg.ToolCalls = append(msg.ToolCalls, api.ToolCall{
				ID: tc.ID,
				Function: api.ToolCallFunction{
					Name:      tc.Name,
					Arguments: args,
				},
			})
		}
		out = append(out, msg)
	}
	return out
}

// ollamaTools converts through JSON because api.Tool nests its parameter
// schema in SDK-specific types.
func ollamaTools(defs []gateway.ToolDef) api.Tools {
	if len(defs) == 0 {
		return nil
	}
	raw := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		params := map[string]any{"type": "object"}
		if len(def.InputSchema) > 0 {
			_ = json.Unmarshal(def.InputSchema, &params)
		}
		raw = append(raw, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        def.Name,
				"description": def.Description,
				"parameters":  params,
			},
		})
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var tools api.Tools
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil
	}
	return tools
}
