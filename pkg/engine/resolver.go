package engine

import (
	"fmt"

	"github.com/haus-node/haus/pkg/models"
)

// ResolveInputs merges a node's effective inputs from three tiers, lowest
// precedence first:
//
//  1. the node's own saved parameters,
//  2. values flowing in over edges from upstream node outputs,
//  3. job-level overrides keyed "<nodeId>.<param>".
//
// Edges whose source node has produced no output for the named port are
// skipped; when several edges target the same handle the last one in edge
// order wins. The outputs map is keyed by node id then port id.
func ResolveInputs(node *models.WorkflowNode, edges []*models.WorkflowEdge, outputs map[string]map[string]any, overrides map[string]any) map[string]any {
	resolved := make(map[string]any, len(node.Data.Parameters))

	for key, value := range node.Data.Parameters {
		resolved[key] = value
	}

	for _, edge := range edges {
		if edge.Target != node.ID {
			continue
		}

		upstream, ok := outputs[edge.Source]
		if !ok {
			continue
		}

		value, ok := upstream[edge.SourceHandle]
		if !ok {
			continue
		}

		resolved[edge.TargetHandle] = value
	}

	for key, value := range overrides {
		prefix := node.ID + "."
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			resolved[key[len(prefix):]] = value
		}
	}

	return resolved
}

// OverrideKey builds the job-input key addressing one parameter of one node.
func OverrideKey(nodeID, param string) string {
	return fmt.Sprintf("%s.%s", nodeID, param)
}
