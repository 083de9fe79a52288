package registry

import (
	"fmt"

	"github.com/haus-node/haus/pkg/models"
)

// Registry holds node definitions keyed by type id. Insertion order is kept
// so catalog listings are stable.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// NewWithDefaults creates a registry populated with the built-in catalog.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()

	return r
}

// Register adds or replaces a definition.
func (r *Registry) Register(def *Definition) {
	if _, exists := r.defs[def.ID]; !exists {
		r.order = append(r.order, def.ID)
	}

	r.defs[def.ID] = def
}

// Get returns the definition for a node type id.
func (r *Registry) Get(typeID string) (*Definition, bool) {
	def, ok := r.defs[typeID]

	return def, ok
}

// All returns every definition in registration order.
func (r *Registry) All() []*Definition {
	defs := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.defs[id])
	}

	return defs
}

// ByCategory returns all definitions in a category, in registration order.
func (r *Registry) ByCategory(category Category) []*Definition {
	var defs []*Definition

	for _, id := range r.order {
		if r.defs[id].Category == category {
			defs = append(defs, r.defs[id])
		}
	}

	return defs
}

// EstimateCost sums the credit cost of every node in the snapshot. Nodes
// with no registry entry cost nothing, mirroring the engine's skip policy.
func (r *Registry) EstimateCost(nodes []*models.WorkflowNode) int {
	total := 0

	for _, node := range nodes {
		if def, ok := r.defs[node.Type]; ok {
			total += def.CreditCost
		}
	}

	return total
}

// ValidateEdges checks that no two edges terminate at the same
// (target, targetHandle) pair. Each input port has a single writer; the
// engine's merge rule assumes it.
func (r *Registry) ValidateEdges(edges []*models.WorkflowEdge) error {
	seen := make(map[string]string, len(edges))

	for _, edge := range edges {
		key := edge.Target + ":" + edge.TargetHandle
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: edges %q and %q both target %s.%s",
				ErrDuplicateTargetPort, prev, edge.ID, edge.Target, edge.TargetHandle)
		}

		seen[key] = edge.ID
	}

	return nil
}
