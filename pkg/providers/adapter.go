// Package providers dispatches node executions to the external generative
// backends. Each adapter owns one provider's transport and envelope; the
// shared pre-dispatch pipeline (numeric coercion, seed rolling, port
// remapping) lives here so every adapter behaves the same way.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/registry"
)

// ErrUnknownProvider means a node definition names a provider no adapter is
// registered for. Fatal and non-retryable for that node.
var ErrUnknownProvider = errors.New("unknown provider")

// Request is what an adapter receives for one node execution: the node's
// definition plus its fully resolved, coerced and remapped inputs.
type Request struct {
	Definition *registry.Definition
	Inputs     map[string]any
}

// Adapter executes one node against its backend and returns outputs keyed
// by the definition's declared output port ids.
type Adapter interface {
	Execute(ctx context.Context, req Request) (map[string]any, error)
}

// Registry maps provider names to adapters and applies the shared
// pre-dispatch pipeline before handing off.
type Registry struct {
	adapters map[models.Provider]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[models.Provider]Adapter)}
}

func (r *Registry) Register(provider models.Provider, adapter Adapter) {
	r.adapters[provider] = adapter
}

// Execute coerces and remaps inputs, then dispatches to the adapter
// registered for the definition's provider.
func (r *Registry) Execute(ctx context.Context, def *registry.Definition, inputs map[string]any) (map[string]any, error) {
	adapter, ok := r.adapters[def.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, def.Provider)
	}

	prepared := CoerceInputs(inputs)
	prepared = RemapPorts(def.Provider, def.ProviderModel, prepared)

	return adapter.Execute(ctx, Request{Definition: def, Inputs: prepared})
}
