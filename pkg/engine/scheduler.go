package engine

import "github.com/haus-node/haus/pkg/models"

// Schedule orders the graph's nodes so that every edge source precedes its
// target (Kahn's algorithm). Ties break in node declaration order, keeping
// execution deterministic; disconnected zero-in-degree nodes run in their
// original order. If any nodes remain unscheduled they form one or more
// cycles and a *CycleError naming all of them is returned.
func Schedule(nodes []*models.WorkflowNode, edges []*models.WorkflowEdge) ([]*models.WorkflowNode, error) {
	inDegree := make(map[string]int, len(nodes))
	successors := make(map[string][]string, len(nodes))
	byID := make(map[string]*models.WorkflowNode, len(nodes))

	for _, node := range nodes {
		inDegree[node.ID] = 0
		byID[node.ID] = node
	}

	for _, edge := range edges {
		if _, ok := byID[edge.Source]; !ok {
			continue
		}

		if _, ok := byID[edge.Target]; !ok {
			continue
		}

		inDegree[edge.Target]++
		successors[edge.Source] = append(successors[edge.Source], edge.Target)
	}

	queue := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if inDegree[node.ID] == 0 {
			queue = append(queue, node.ID)
		}
	}

	sorted := make([]*models.WorkflowNode, 0, len(nodes))
	scheduled := make(map[string]bool, len(nodes))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		sorted = append(sorted, byID[id])
		scheduled[id] = true

		for _, next := range successors[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(nodes) {
		missing := make([]string, 0, len(nodes)-len(sorted))

		for _, node := range nodes {
			if !scheduled[node.ID] {
				missing = append(missing, node.ID)
			}
		}

		return nil, &CycleError{NodeIDs: missing}
	}

	return sorted, nil
}
