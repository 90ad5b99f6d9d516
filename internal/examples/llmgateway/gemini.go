package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/louisbranch/capbridge/gateway"
)

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	// Thinking asks the model to stream its thoughts.
	Thinking bool
}

// Gemini streams completions from the Gemini API.
type Gemini struct {
	client   *genai.Client
	thinking bool
}

// NewGemini returns a Gemini provider.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{client: client, thinking: cfg.Thinking}, nil
}

func (p *Gemini) Name() string { return ProviderGemini }

func (p *Gemini) Stream(ctx context.Context, req gateway.Request, emit func(gateway.Event) error) error {
	contents, system := geminiContents(req.System, req.Messages)
	config := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Tools:             geminiTools(req.Tools),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if p.thinking {
		config.ThinkingConfig = &genai.ThinkingConfig{IncludeThoughts: true}
	}

	for resp, err := range p.client.Models.GenerateContentStream(ctx, req.Model, contents, config) {
		if err != nil {
			return fmt.Errorf("gemini stream: %w", err)
		}
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if err := emitGeminiPart(part, resp.ModelVersion, emit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func emitGeminiPart(part *genai.Part, model string, emit func(gateway.Event) error) error {
	if part == nil {
		return nil
	}
	if part.Text != "" {
		eventType := gateway.EventText
		if part.Thought {
			eventType = gateway.EventThinking
		}
		if err := emit(gateway.Event{Type: eventType, Content: part.Text, Model: model}); err != nil {
			return err
		}
	}
	if fc := part.FunctionCall; fc != nil {
		args, err := json.Marshal(fc.Args)
		if err != nil {
			args = []byte("{}")
		}
		call := ToolCall{ID: fc.ID, Name: fc.Name, Arguments: string(args)}
		if err := emit(gateway.Event{Type: gateway.EventToolCall, Content: EncodeToolCall(call), Model: model}); err != nil {
			return err
		}
	}
	return nil
}

// geminiContents maps the conversation onto Gemini roles. System turns join
// the system instruction; tool results answer the call with the same id.
func geminiContents(system string, messages []gateway.Message) ([]*genai.Content, *genai.Content) {
	var systemParts []*genai.Part
	if system != "" {
		systemParts = append(systemParts, &genai.Part{Text: system})
	}
	callNames := make(map[string]string)
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case "system":
			if m.Content != "" {
				systemParts = append(systemParts, &genai.Part{Text: m.Content})
			}
		case "assistant":
			var parts []*genai.Part
			if m.Content != "" {
				parts = append(parts, &genai.Part{Text: m.Content})
			}
			for _, tc := range DecodeToolCalls(m.ToolCalls) {
				callNames[tc.ID] = tc.Name
				var args map[string]any
				_ = json.Unmarshal([]byte(tc.Arguments), &args)
				parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{ID: tc.ID, Name: tc.Name, Args: args}})
			}
			if len(parts) > 0 {
				contents = append(contents, &genai.Content{Role: "model", Parts: parts})
			}
		case "tool":
			name := callNames[m.ToolCallID]
			if name == "" {
				name = m.ToolCallID
			}
			contents = append(contents, &genai.Content{
				Role: "user",
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						ID:       m.ToolCallID,
						Name:     name,
						Response: map[string]any{"result": m.Content},
					},
				}},
			})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}
	var instruction *genai.Content
	if len(systemParts) > 0 {
		instruction = &genai.Content{Parts: systemParts}
	}
	return contents, instruction
}

func geminiTools(defs []gateway.ToolDef) []*genai.Tool {
	if len(defs) == 0 {
		return nil
	}
	decls := make([]*genai.FunctionDeclaration, 0, len(defs))
	for _, def := range defs {
		decl := &genai.FunctionDeclaration{Name: def.Name, Description: def.Description}
		if len(def.InputSchema) > 0 {
			var schema genai.Schema
			if err := json.Unmarshal(def.InputSchema, &schema); err == nil {
				decl.Parameters = &schema
			}
		}
		decls = append(decls, decl)
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}
