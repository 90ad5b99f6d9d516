// Package calculator is a reference Tool: four-function arithmetic over two
// numbers, dispatched by an "action" parameter.
package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/capbridge/apperr"
	"github.com/louisbranch/capbridge/schema"
)

// Actions accepted by the calculator.
const (
	ActionAdd      = "add"
	ActionSubtract = "subtract"
	ActionMultiply = "multiply"
	ActionDivide   = "divide"
)

type input struct {
	Action string  `json:"action"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
}

// Tool implements tool.Handler.
type Tool struct {
	schema json.RawMessage
}

// New returns a calculator tool.
func New() *Tool {
	return &Tool{
		schema: schema.New(ActionAdd, ActionSubtract, ActionMultiply, ActionDivide).
			Number("a", "First operand", true).
			Number("b", "Second operand", true).
			Build(),
	}
}

func (t *Tool) Name() string { return "calculator" }

func (t *Tool) Description() string {
	return "Performs basic arithmetic: add, subtract, multiply, divide"
}

func (t *Tool) Schema() json.RawMessage { return t.schema }

// Execute validates the input against the schema and returns
// "<a> <action> <b> = <result>".
func (t *Tool) Execute(_ context.Context, raw json.RawMessage) (string, error) {
	if err := schema.Validate(t.schema, raw); err != nil {
		return "", err
	}
	var in input
	if err := json.Unmarshal(raw, &in); err != nil {
		return "", apperr.Wrap(apperr.CodeInvalidInput, "invalid input", err)
	}

	var result float64
	switch in.Action {
	case ActionAdd:
		result = in.A + in.B
	case ActionSubtract:
		result = in.A - in.B
	case ActionMultiply:
		result = in.A * in.B
	case ActionDivide:
		if in.B == 0 {
			return "", apperr.Execution("division by zero")
		}
		result = in.A / in.B
	default:
		return "", apperr.Errorf(apperr.CodeInvalidInput, "unknown action: %s", in.Action)
	}
	return fmt.Sprintf("%g %s %g = %g", in.A, in.Action, in.B, result), nil
}
