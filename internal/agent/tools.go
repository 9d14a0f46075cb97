// Package agent exposes the hotel operations as function-calling tools for
// the conversational orchestrator: declarative definitions the model can
// be prompted with, plus a dispatcher that routes an invocation to the
// backing service.
package agent

import (
	"context"
	"fmt"
)

type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Call        ToolFunc
}

// Definition renders the tool in OpenAI function-calling format.
func (t *Tool) Definition() map[string]any {
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"parameters":  t.Parameters,
		},
	}
}

type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

type Registry struct {
	tools []*Tool
	index map[string]*Tool
}

func NewRegistry(tools ...*Tool) *Registry {
	r := &Registry{tools: tools, index: make(map[string]*Tool, len(tools))}
	for _, t := range tools {
		r.index[t.Name] = t
	}
	return r
}

// Definitions lists every tool definition in registration order.
func (r *Registry) Definitions() []map[string]any {
	out := make([]map[string]any, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.Definition()
	}
	return out
}

// Execute dispatches one tool invocation. Operation rejections come back
// as the modules' typed errors, untouched.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.index[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	return t.Call(ctx, args)
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}
