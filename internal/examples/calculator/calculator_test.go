package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/capbridge/apperr"
)

func TestExecute(t *testing.T) {
	calc := New()
	tests := []struct {
		input string
		want  string
	}{
		{`{"action":"add","a":2,"b":3}`, "2 add 3 = 5"},
		{`{"action":"subtract","a":10,"b":4}`, "10 subtract 4 = 6"},
		{`{"action":"multiply","a":2.5,"b":4}`, "2.5 multiply 4 = 10"},
		{`{"action":"divide","a":1,"b":4}`, "1 divide 4 = 0.25"},
	}
	for _, tt := range tests {
		got, err := calc.Execute(context.Background(), json.RawMessage(tt.input))
		if err != nil {
			t.Fatalf("execute %s: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("execute %s = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExecuteDivisionByZero(t *testing.T) {
	_, err := New().Execute(context.Background(), json.RawMessage(`{"action":"divide","a":1,"b":0}`))
	if err == nil || err.Error() != "division by zero" {
		t.Fatalf("expected division by zero, got %v", err)
	}
	if !errors.Is(err, &apperr.Error{Code: apperr.CodeExecution}) {
		t.Fatalf("expected EXECUTION code, got %s", apperr.CodeOf(err))
	}
}

func TestExecuteRejectsUnknownAction(t *testing.T) {
	_, err := New().Execute(context.Background(), json.RawMessage(`{"action":"modulo","a":1,"b":2}`))
	if apperr.CodeOf(err) != apperr.CodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestExecuteRejectsMissingOperand(t *testing.T) {
	_, err := New().Execute(context.Background(), json.RawMessage(`{"action":"add","a":1}`))
	if err == nil || !strings.Contains(err.Error(), "b") {
		t.Fatalf("expected missing operand error, got %v", err)
	}
}

func TestSchemaListsActions(t *testing.T) {
	var doc struct {
		Properties map[string]struct {
			Enum []string `json:"enum"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(New().Schema(), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if got := doc.Properties["action"].Enum; len(got) != 4 || got[0] != ActionAdd || got[3] != ActionDivide {
		t.Fatalf("action enum = %v", got)
	}
	if len(doc.Required) != 3 || doc.Required[0] != "action" {
		t.Fatalf("required = %v", doc.Required)
	}
}
