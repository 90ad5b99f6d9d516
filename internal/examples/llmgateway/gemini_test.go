package llmgateway

import (
	"testing"

	"google.golang.org/genai"

	"github.com/louisbranch/capbridge/gateway"
)

func TestGeminiContents(t *testing.T) {
	contents, system := geminiContents("be brief", []gateway.Message{
		{Role: "system", Content: "use metric"},
		{Role: "user", Content: "2+2?"},
		{Role: "assistant", ToolCalls: `[{"id":"c1","name":"calc","arguments":"{\"a\":2}"}]`},
		{Role: "tool", ToolCallID: "c1", Content: "4"},
	})
	if system == nil || len(system.Parts) != 2 {
		t.Fatalf("system = %+v", system)
	}
	if len(contents) != 3 {
		t.Fatalf("contents = %d, want 3", len(contents))
	}
	if contents[1].Role != "model" || contents[1].Parts[0].FunctionCall.Name != "calc" {
		t.Fatalf("model turn = %+v", contents[1])
	}
	resp := contents[2].Parts[0].FunctionResponse
	if resp == nil || resp.Name != "calc" || resp.Response["result"] != "4" {
		t.Fatalf("function response = %+v", resp)
	}
}

func TestEmitGeminiPart(t *testing.T) {
	var events []gateway.Event
	emit := func(ev gateway.Event) error {
		events = append(events, ev)
		return nil
	}
	parts := []*genai.Part{
		{Text: "thinking...", Thought: true},
		{Text: "answer"},
		{FunctionCall: &genai.FunctionCall{ID: "f1", Name: "calc", Args: map[string]any{"a": 1}}},
		nil,
	}
	for _, part := range parts {
		if err := emitGeminiPart(part, "gemini-test", emit); err != nil {
			t.Fatalf("emit: %v", err)
		}
	}
	if len(events) != 3 {
		t.Fatalf("events = %+v", events)
	}
	if events[0].Type != gateway.EventThinking || events[1].Type != gateway.EventText || events[2].Type != gateway.EventToolCall {
		t.Fatalf("event types = %+v", events)
	}
	if events[2].Content != `{"id":"f1","name":"calc","arguments":"{\"a\":1}"}` {
		t.Fatalf("tool call = %s", events[2].Content)
	}
}

func TestGeminiTools(t *testing.T) {
	tools := geminiTools([]gateway.ToolDef{{Name: "calc", Description: "math"}})
	if len(tools) != 1 || tools[0].FunctionDeclarations[0].Name != "calc" {
		t.Fatalf("tools = %+v", tools)
	}
	if geminiTools(nil) != nil {
		t.Fatal("no definitions should produce no tools")
	}
}
