package llmgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/capbridge/gateway"
)

func sseEvent(data string) string {
	var head struct {
		Type string `json:"type"`
	}
	_ = json.Unmarshal([]byte(data), &head)
	return fmt.Sprintf("event: %s\ndata: %s\n\n", head.Type, data)
}

func TestOpenAIStream(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/responses") {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, data := range []string{
			`{"type":"response.output_text.delta","item_id":"msg_1","output_index":0,"content_index":0,"delta":"Hello","sequence_number":1}`,
			`{"type":"response.output_item.added","output_index":1,"sequence_number":2,"item":{"type":"function_call","id":"fc_1","call_id":"call_1","name":"calc","arguments":"","status":"in_progress"}}`,
			`{"type":"response.function_call_arguments.delta","item_id":"fc_1","output_index":1,"delta":"{\"a\":1}","sequence_number":3}`,
			`{"type":"response.output_item.done","output_index":1,"sequence_number":4,"item":{"type":"function_call","id":"fc_1","call_id":"call_1","name":"calc","arguments":"{\"a\":1}","status":"completed"}}`,
		} {
			_, _ = fmt.Fprint(w, sseEvent(data))
		}
	}))
	defer server.Close()

	provider, err := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new openai: %v", err)
	}
	var events []gateway.Event
	err = provider.Stream(context.Background(), gateway.Request{
		Model:    "gpt-test",
		System:   "be brief",
		Messages: []gateway.Message{{Role: "user", Content: "hello"}},
	}, func(ev gateway.Event) error {
		events = append(events, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("events = %+v", events)
	}
	if events[0].Type != gateway.EventText || events[0].Content != "Hello" {
		t.Fatalf("text event = %+v", events[0])
	}
	var call ToolCall
	if err := json.Unmarshal([]byte(events[1].Content), &call); err != nil {
		t.Fatalf("tool call content: %v", err)
	}
	if call.ID != "call_1" || call.Name != "calc" || call.Arguments != `{"a":1}` {
		t.Fatalf("tool call = %+v", call)
	}
	if got["model"] != "gpt-test" || got["instructions"] != "be brief" || got["stream"] != true {
		t.Fatalf("request = %v", got)
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI(OpenAIConfig{}); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestOpenAIInputMapsRoles(t *testing.T) {
	items := openAIInput([]gateway.Message{
		{Role: "system", Content: "rules"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "calling", ToolCalls: `[{"id":"c1","name":"calc","arguments":"{}"}]`},
		{Role: "tool", ToolCallID: "c1", Content: "4"},
	})
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}
	if items[3].OfFunctionCall == nil || items[3].OfFunctionCall.CallID != "c1" {
		t.Fatalf("function call item = %+v", items[3])
	}
	if items[4].OfFunctionCallOutput == nil || items[4].OfFunctionCallOutput.CallID != "c1" {
		t.Fatalf("function output item = %+v", items[4])
	}
}
