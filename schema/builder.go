// Package schema builds tool input schemas in the action-dispatch shape
// (a required "action" enum plus typed parameters) and validates input
// against them.
package schema

import (
	"encoding/json"
	"strings"
)

type property struct {
	name string
	def  map[string]any
}

// Builder accumulates parameters for a tool schema. The zero value is not
// usable; call New.
type Builder struct {
	actions    []string
	properties []property
	required   []string
}

// New starts a schema whose "action" property accepts one of actions.
func New(actions ...string) *Builder {
	return &Builder{actions: append([]string(nil), actions...)}
}

// String adds a string parameter.
func (b *Builder) String(name, description string, required bool) *Builder {
	return b.add(name, map[string]any{"type": "string", "description": description}, required)
}

// Number adds a number parameter.
func (b *Builder) Number(name, description string, required bool) *Builder {
	return b.add(name, map[string]any{"type": "number", "description": description}, required)
}

// Integer adds an integer parameter.
func (b *Builder) Integer(name, description string, required bool) *Builder {
	return b.add(name, map[string]any{"type": "integer", "description": description}, required)
}

// Boolean adds a boolean parameter.
func (b *Builder) Boolean(name, description string, required bool) *Builder {
	return b.add(name, map[string]any{"type": "boolean", "description": description}, required)
}

// Enum adds a string parameter restricted to values.
func (b *Builder) Enum(name, description string, required bool, values ...string) *Builder {
	return b.add(name, map[string]any{
		"type":        "string",
		"enum":        append([]string(nil), values...),
		"description": description,
	}, required)
}

func (b *Builder) add(name string, def map[string]any, required bool) *Builder {
	b.properties = append(b.properties, property{name: name, def: def})
	if required {
		b.required = append(b.required, name)
	}
	return b
}

// Build renders the JSON Schema. "action" is always the first required
// property.
func (b *Builder) Build() json.RawMessage {
	properties := map[string]any{
		"action": map[string]any{
			"type":        "string",
			"enum":        b.actions,
			"description": "Action to perform: " + strings.Join(b.actions, ", "),
		},
	}
	for _, p := range b.properties {
		properties[p.name] = p.def
	}
	out, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   append([]string{"action"}, b.required...),
	})
	if err != nil {
		// Only strings and maps of strings reach Marshal.
		panic("schema: marshal: " + err.Error())
	}
	return out
}
